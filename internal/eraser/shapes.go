package eraser

import (
	"github.com/loshunter/HeroByte-sub004/internal/geometry"
	"github.com/loshunter/HeroByte-sub004/internal/model"
)

// HitsShape reports whether the eraser path touches the drawing anywhere,
// treating it as a single rigid shape.
//
// Lines, rectangles and circles use their first and last points only.
// Rectangles are tested against their inflated bounding box, circles against
// their ring. Shapes with fewer than two points and eraser marks never hit.
func HitsShape(d model.Drawing, path []model.Point, eraserWidth float64) bool {
	return hitsShape(d, geometry.NewEraserPath(path), eraserWidth)
}

func hitsShape(d model.Drawing, path geometry.EraserPath, eraserWidth float64) bool {
	if path.Empty() || len(d.Points) < 2 {
		return false
	}

	t := d.TransformOrIdentity()
	r := geometry.HitRadius(d.Width, t, eraserWidth)
	first := geometry.ToWorld(d.Points[0], t)
	last := geometry.ToWorld(d.Points[len(d.Points)-1], t)

	switch d.Type {
	case model.ShapeFreehand:
		return geometry.PolylineHit(geometry.ToWorldAll(d.Points, t), path, r)
	case model.ShapeLine:
		return geometry.LineHit(first, last, path, r)
	case model.ShapeRect:
		return geometry.RectHit(first, last, path, r)
	case model.ShapeCircle:
		return geometry.CircleHit(first, last, path, r)
	default:
		return false
	}
}
