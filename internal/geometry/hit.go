package geometry

import (
	"math"

	"github.com/loshunter/HeroByte-sub004/internal/model"
)

// EraserPath is a world-space eraser path together with its bounding box,
// computed once and shared by every hit test against it.
type EraserPath struct {
	Points []model.Point
	Bounds Rect
}

// NewEraserPath wraps points. The slice is not copied and must not be
// modified while the path is in use.
func NewEraserPath(points []model.Point) EraserPath {
	return EraserPath{Points: points, Bounds: BoundsOf(points...)}
}

// Empty reports whether the path has no points.
func (e EraserPath) Empty() bool {
	return len(e.Points) == 0
}

// EdgeHit reports whether any eraser point is strictly closer than r to
// segment a-b.
//
// The edge's bounding box, grown by r, is checked against the path's bounds
// first and then against each eraser point; the exact distance is only
// computed for points that survive both checks.
func EdgeHit(a, b model.Point, path EraserPath, r float64) bool {
	if r <= 0 || path.Empty() {
		return false
	}
	box := BoundsOf(a, b).Expand(r)
	if !box.Overlaps(path.Bounds) {
		return false
	}
	for _, p := range path.Points {
		if !box.Contains(p) {
			continue
		}
		if distanceToSegment(p, a, b) < r {
			return true
		}
	}
	return false
}

// PolylineHit reports whether any edge of the world-space polyline is hit.
func PolylineHit(world []model.Point, path EraserPath, r float64) bool {
	for i := 0; i+1 < len(world); i++ {
		if EdgeHit(world[i], world[i+1], path, r) {
			return true
		}
	}
	return false
}

// LineHit reports whether the segment a-b is hit.
func LineHit(a, b model.Point, path EraserPath, r float64) bool {
	return EdgeHit(a, b, path, r)
}

// RectHit reports whether any eraser point falls inside the axis-aligned box
// spanned by corners a and b, inflated by r on every side.
//
// This is a bounding-box approximation: points anywhere in the interior
// count, as do points in the inflated corner regions.
func RectHit(a, b model.Point, path EraserPath, r float64) bool {
	if r <= 0 || path.Empty() {
		return false
	}
	box := BoundsOf(a, b).Expand(r)
	if !box.Overlaps(path.Bounds) {
		return false
	}
	for _, p := range path.Points {
		if box.ContainsStrict(p) {
			return true
		}
	}
	return false
}

// CircleHit reports whether any eraser point is strictly closer than r to the
// ring through rim centered on center. The interior is not a hit.
func CircleHit(center, rim model.Point, path EraserPath, r float64) bool {
	if r <= 0 || path.Empty() {
		return false
	}
	radius := Distance(center, rim)
	if !BoundsOf(center).Expand(radius + r).Overlaps(path.Bounds) {
		return false
	}
	for _, p := range path.Points {
		if math.Abs(Distance(p, center)-radius) < r {
			return true
		}
	}
	return false
}
