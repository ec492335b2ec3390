package geometry

import (
	"math"

	"github.com/loshunter/HeroByte-sub004/internal/model"
)

// ToWorld maps a local point into world space: scale each axis, rotate by
// t.Rotation degrees about the local origin, then translate by (t.X, t.Y).
func ToWorld(p model.Point, t model.Transform) model.Point {
	sin, cos := math.Sincos(t.Rotation * math.Pi / 180)
	return toWorld(p, t, sin, cos)
}

// ToWorldAll maps every point into world space. The input is not modified.
func ToWorldAll(points []model.Point, t model.Transform) []model.Point {
	sin, cos := math.Sincos(t.Rotation * math.Pi / 180)
	world := make([]model.Point, len(points))
	for i, p := range points {
		world[i] = toWorld(p, t, sin, cos)
	}
	return world
}

func toWorld(p model.Point, t model.Transform, sin, cos float64) model.Point {
	x := p.X * t.ScaleX
	y := p.Y * t.ScaleY
	return model.Point{
		X: x*cos - y*sin + t.X,
		Y: x*sin + y*cos + t.Y,
	}
}

// ScaleFactor returns how much a transform stretches stroke thickness.
// Non-uniform scale is approximated by the mean of the absolute axis scales
// rather than an elliptical footprint.
func ScaleFactor(t model.Transform) float64 {
	if t.ScaleX == t.ScaleY {
		return math.Abs(t.ScaleX)
	}
	return (math.Abs(t.ScaleX) + math.Abs(t.ScaleY)) / 2
}

// HitRadius is the combined half-thickness of a stroke and the eraser, in
// world units. An eraser point closer than this to the stroke touches it.
func HitRadius(strokeWidth float64, t model.Transform, eraserWidth float64) float64 {
	return (strokeWidth*ScaleFactor(t) + eraserWidth) / 2
}
