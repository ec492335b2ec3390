package model

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ShapeType identifies how a drawing's points are interpreted.
type ShapeType string

const (
	ShapeFreehand ShapeType = "freehand" // Polyline through every point
	ShapeLine     ShapeType = "line"     // First and last point are the endpoints
	ShapeRect     ShapeType = "rect"     // First and last point are opposite corners
	ShapeCircle   ShapeType = "circle"   // First point is the center, last is on the circumference
	ShapeEraser   ShapeType = "eraser"   // Transient eraser mark, never erasable
)

func (s ShapeType) String() string {
	return string(s)
}

// Valid reports whether s is one of the known shape types.
func (s ShapeType) Valid() bool {
	switch s {
	case ShapeFreehand, ShapeLine, ShapeRect, ShapeCircle, ShapeEraser:
		return true
	default:
		return false
	}
}

// Point represents a 2D coordinate, either in a drawing's local space or in
// world space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Transform maps a drawing's local coordinates into world space: scale, then
// rotate about the local origin, then translate.
//
// The zero value has scale 0 and collapses every point onto (X, Y). Start
// from IdentityTransform() and set the fields that differ; only JSON
// decoding fills missing scales with 1.
type Transform struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	ScaleX   float64 `json:"scaleX"`
	ScaleY   float64 `json:"scaleY"`
	Rotation float64 `json:"rotation"` // degrees
}

// IdentityTransform returns the transform that leaves points unchanged.
func IdentityTransform() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// UnmarshalJSON decodes a transform, defaulting missing scale fields to 1.
func (t *Transform) UnmarshalJSON(data []byte) error {
	type plain Transform
	v := plain(IdentityTransform())
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*t = Transform(v)
	return nil
}

// Drawing is a vector stroke on the canvas. Points are in local space,
// relative to Transform.
type Drawing struct {
	ID        string     `json:"id,omitempty"`
	Type      ShapeType  `json:"type"`
	Points    []Point    `json:"points"`
	Color     string     `json:"color"`
	Width     float64    `json:"width"` // local-space stroke thickness
	Opacity   float64    `json:"opacity"`
	Filled    bool       `json:"filled,omitempty"`
	Owner     string     `json:"owner,omitempty"`
	Selected  bool       `json:"selected,omitempty"`
	Transform *Transform `json:"transform,omitempty"` // nil means identity
}

func NewDrawing(shape ShapeType, points ...Point) Drawing {
	pts := make([]Point, len(points))
	copy(pts, points)
	return Drawing{
		ID:      uuid.New().String()[:8],
		Type:    shape,
		Points:  pts,
		Color:   "#000000",
		Width:   2,
		Opacity: 1,
	}
}

// TransformOrIdentity returns the drawing's transform, or the identity when
// none is set.
func (d Drawing) TransformOrIdentity() Transform {
	if d.Transform == nil {
		return IdentityTransform()
	}
	return *d.Transform
}

// Clone returns a deep copy of the drawing. The copy shares no slices or
// pointers with d.
func (d Drawing) Clone() Drawing {
	c := d
	if d.Points != nil {
		c.Points = make([]Point, len(d.Points))
		copy(c.Points, d.Points)
	}
	if d.Transform != nil {
		t := *d.Transform
		c.Transform = &t
	}
	return c
}

// Segment returns a copy of the drawing carrying the given points instead of
// its own. Identity and selection state are stripped: a segment is a new
// drawing and must be given a fresh ID by whoever stores it.
func (d Drawing) Segment(points []Point) Drawing {
	s := d.Clone()
	s.ID = ""
	s.Selected = false
	s.Points = make([]Point, len(points))
	copy(s.Points, points)
	return s
}

// EraserStroke is the path swept by the eraser tool, already in world space.
type EraserStroke struct {
	Points []Point `json:"points"`
	Width  float64 `json:"width"` // world-space thickness
}

// Empty reports whether the stroke has no points.
func (e EraserStroke) Empty() bool {
	return len(e.Points) == 0
}

// Scene is a named collection of drawings, in paint order.
type Scene struct {
	Name     string    `json:"name"`
	Drawings []Drawing `json:"drawings"`
}

func NewScene() Scene {
	return Scene{
		Name:     "Untitled",
		Drawings: []Drawing{},
	}
}

// Find returns the index of the drawing with the given ID, or -1.
func (s Scene) Find(id string) int {
	for i, d := range s.Drawings {
		if d.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the scene.
func (s Scene) Clone() Scene {
	c := Scene{Name: s.Name, Drawings: make([]Drawing, len(s.Drawings))}
	for i, d := range s.Drawings {
		c.Drawings[i] = d.Clone()
	}
	return c
}
