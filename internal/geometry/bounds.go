package geometry

import "github.com/loshunter/HeroByte-sub004/internal/model"

// Rect is an axis-aligned bounding box.
type Rect struct {
	Min model.Point
	Max model.Point
}

// BoundsOf returns the bounding box of the points. The zero Rect is returned
// for an empty slice.
func BoundsOf(points ...model.Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		if p.X < r.Min.X {
			r.Min.X = p.X
		}
		if p.Y < r.Min.Y {
			r.Min.Y = p.Y
		}
		if p.X > r.Max.X {
			r.Max.X = p.X
		}
		if p.Y > r.Max.Y {
			r.Max.Y = p.Y
		}
	}
	return r
}

// Expand grows the box by d on every side.
func (r Rect) Expand(d float64) Rect {
	return Rect{
		Min: model.Point{X: r.Min.X - d, Y: r.Min.Y - d},
		Max: model.Point{X: r.Max.X + d, Y: r.Max.Y + d},
	}
}

// Overlaps reports whether the two boxes share any point, edges included.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X <= o.Max.X && o.Min.X <= r.Max.X &&
		r.Min.Y <= o.Max.Y && o.Min.Y <= r.Max.Y
}

// Contains reports whether p lies inside the box or on its edge.
func (r Rect) Contains(p model.Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ContainsStrict reports whether p lies strictly inside the box.
func (r Rect) ContainsStrict(p model.Point) bool {
	return p.X > r.Min.X && p.X < r.Max.X && p.Y > r.Min.Y && p.Y < r.Max.Y
}
