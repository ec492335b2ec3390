package geometry

import (
	"math"

	"github.com/loshunter/HeroByte-sub004/internal/model"
)

// distanceToSegment is the primitive every hit test goes through.
// Tests replace it to count how often the exact computation runs.
var distanceToSegment = DistancePointToSegment

// DistancePointToSegment returns the distance from p to the closest point of
// segment a-b. The projection of p onto the line through a and b is clamped
// to the segment; when a == b the result is the distance to a.
func DistancePointToSegment(p, a, b model.Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y

	t := 0.0
	if lenSq := dx*dx + dy*dy; lenSq > 0 {
		t = ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
		t = math.Max(0, math.Min(1, t))
	}

	cx := a.X + t*dx
	cy := a.Y + t*dy
	return Distance(p, model.Point{X: cx, Y: cy})
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b model.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
