package eraser

import (
	"github.com/loshunter/HeroByte-sub004/internal/geometry"
	"github.com/loshunter/HeroByte-sub004/internal/model"
)

// Kind classifies what an eraser gesture does to one drawing.
type Kind int

const (
	KindNone    Kind = iota // Drawing is untouched
	KindDelete              // Drawing is removed entirely
	KindPartial             // Drawing is replaced by Result.Segments
)

func (k Kind) String() string {
	switch k {
	case KindDelete:
		return "delete"
	case KindPartial:
		return "partial"
	default:
		return "none"
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Result is the outcome of evaluating one drawing against an eraser path.
// Segments is only set for KindPartial.
type Result struct {
	Kind     Kind            `json:"kind"`
	Segments []model.Drawing `json:"segments,omitempty"`
}

// Evaluate classifies the effect of the eraser path (world space) on d.
//
// Freehand drawings may be split (KindPartial); a split that leaves nothing
// falls back to the whole-shape test before reporting KindDelete. Lines,
// rectangles and circles are only ever deleted or left alone. Eraser marks
// and empty paths always yield KindNone.
func Evaluate(d model.Drawing, path []model.Point, eraserWidth float64) Result {
	return evaluate(d, geometry.NewEraserPath(path), eraserWidth)
}

// EvaluateStroke is Evaluate for a model.EraserStroke.
func EvaluateStroke(d model.Drawing, e model.EraserStroke) Result {
	return Evaluate(d, e.Points, e.Width)
}

func evaluate(d model.Drawing, path geometry.EraserPath, eraserWidth float64) Result {
	if path.Empty() {
		return Result{Kind: KindNone}
	}

	switch d.Type {
	case model.ShapeFreehand:
		segments := splitFreehand(d, path, eraserWidth)
		if len(segments) == 0 {
			if hitsShape(d, path, eraserWidth) {
				return Result{Kind: KindDelete}
			}
			return Result{Kind: KindNone}
		}
		if len(segments) == 1 && samePoints(segments[0].Points, d.Points) {
			return Result{Kind: KindNone}
		}
		return Result{Kind: KindPartial, Segments: segments}

	case model.ShapeLine, model.ShapeRect, model.ShapeCircle:
		if hitsShape(d, path, eraserWidth) {
			return Result{Kind: KindDelete}
		}
		return Result{Kind: KindNone}

	default:
		return Result{Kind: KindNone}
	}
}

func samePoints(a, b []model.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
