package model

import (
	"encoding/json"
	"testing"
)

func TestShapeTypeValid(t *testing.T) {
	for _, s := range []ShapeType{ShapeFreehand, ShapeLine, ShapeRect, ShapeCircle, ShapeEraser} {
		if !s.Valid() {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if ShapeType("triangle").Valid() {
		t.Error("unknown shape type should not be valid")
	}
}

func TestNewDrawingCopiesPoints(t *testing.T) {
	pts := []Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	d := NewDrawing(ShapeFreehand, pts...)

	if len(d.ID) != 8 {
		t.Errorf("expected 8-char ID, got %q", d.ID)
	}
	pts[0].X = 99
	if d.Points[0].X != 0 {
		t.Error("NewDrawing should not alias the caller's points")
	}
}

func TestTransformOrIdentity(t *testing.T) {
	d := NewDrawing(ShapeLine, Point{}, Point{X: 1})
	if got := d.TransformOrIdentity(); got != IdentityTransform() {
		t.Errorf("nil transform should be identity, got %+v", got)
	}

	d.Transform = &Transform{X: 5, ScaleX: 2, ScaleY: 2, Rotation: 90}
	if got := d.TransformOrIdentity(); got.X != 5 || got.ScaleX != 2 {
		t.Errorf("expected stored transform, got %+v", got)
	}
}

func TestTransformUnmarshalDefaultsScale(t *testing.T) {
	var tr Transform
	if err := json.Unmarshal([]byte(`{"x":10,"y":20}`), &tr); err != nil {
		t.Fatal(err)
	}
	if tr.ScaleX != 1 || tr.ScaleY != 1 {
		t.Errorf("missing scale should default to 1, got %+v", tr)
	}
	if tr.X != 10 || tr.Y != 20 || tr.Rotation != 0 {
		t.Errorf("unexpected transform %+v", tr)
	}

	if err := json.Unmarshal([]byte(`{"scaleX":3,"scaleY":-2,"rotation":45}`), &tr); err != nil {
		t.Fatal(err)
	}
	if tr.ScaleX != 3 || tr.ScaleY != -2 || tr.Rotation != 45 {
		t.Errorf("explicit values should be kept, got %+v", tr)
	}
}

func TestDrawingUnmarshalTransform(t *testing.T) {
	var d Drawing
	data := []byte(`{"type":"freehand","points":[{"x":0,"y":0},{"x":1,"y":0}],"transform":{"rotation":30}}`)
	if err := json.Unmarshal(data, &d); err != nil {
		t.Fatal(err)
	}
	if d.Transform == nil {
		t.Fatal("expected transform to be decoded")
	}
	if d.Transform.ScaleX != 1 || d.Transform.Rotation != 30 {
		t.Errorf("unexpected transform %+v", *d.Transform)
	}
}

func TestCloneIsDeep(t *testing.T) {
	d := NewDrawing(ShapeFreehand, Point{X: 1, Y: 2}, Point{X: 3, Y: 4})
	d.Transform = &Transform{ScaleX: 1, ScaleY: 1}

	c := d.Clone()
	c.Points[0].X = 100
	c.Transform.X = 50

	if d.Points[0].X != 1 {
		t.Error("Clone should not share points")
	}
	if d.Transform.X != 0 {
		t.Error("Clone should not share the transform")
	}
}

func TestSegmentStripsIdentity(t *testing.T) {
	d := NewDrawing(ShapeFreehand, Point{X: 0}, Point{X: 1}, Point{X: 2})
	d.Selected = true
	d.Color = "#ff0000"
	d.Owner = "player-1"

	s := d.Segment(d.Points[1:])

	if s.ID != "" {
		t.Errorf("segment should have no ID, got %q", s.ID)
	}
	if s.Selected {
		t.Error("segment should not be selected")
	}
	if s.Color != d.Color || s.Owner != d.Owner || s.Type != d.Type {
		t.Errorf("segment should keep attributes, got %+v", s)
	}
	if len(s.Points) != 2 || s.Points[0].X != 1 {
		t.Errorf("unexpected segment points %v", s.Points)
	}

	s.Points[0].X = 42
	if d.Points[1].X != 1 {
		t.Error("segment should not alias the source points")
	}
}

func TestSceneFindAndClone(t *testing.T) {
	s := NewScene()
	a := NewDrawing(ShapeLine, Point{}, Point{X: 1})
	b := NewDrawing(ShapeRect, Point{}, Point{X: 1, Y: 1})
	s.Drawings = append(s.Drawings, a, b)

	if got := s.Find(b.ID); got != 1 {
		t.Errorf("expected index 1, got %d", got)
	}
	if got := s.Find("missing"); got != -1 {
		t.Errorf("expected -1 for missing ID, got %d", got)
	}

	c := s.Clone()
	c.Drawings[0].Points[1].X = 9
	if s.Drawings[0].Points[1].X != 1 {
		t.Error("scene Clone should be deep")
	}
}

func TestEraserStrokeEmpty(t *testing.T) {
	if !(EraserStroke{}).Empty() {
		t.Error("zero stroke should be empty")
	}
	if (EraserStroke{Points: []Point{{}}}).Empty() {
		t.Error("single-point dab is not empty")
	}
}
