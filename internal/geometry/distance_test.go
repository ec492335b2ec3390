package geometry

import (
	"testing"

	"github.com/loshunter/HeroByte-sub004/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestDistancePointToSegment_Perpendicular(t *testing.T) {
	d := DistancePointToSegment(model.Point{X: 5, Y: 3}, model.Point{X: 0, Y: 0}, model.Point{X: 10, Y: 0})
	assert.InDelta(t, 3.0, d, 1e-9)
}

func TestDistancePointToSegment_ClampsToEndpoints(t *testing.T) {
	a := model.Point{X: 0, Y: 0}
	b := model.Point{X: 10, Y: 0}

	// Before the start
	d := DistancePointToSegment(model.Point{X: -3, Y: 4}, a, b)
	assert.InDelta(t, 5.0, d, 1e-9)

	// Past the end
	d = DistancePointToSegment(model.Point{X: 13, Y: -4}, a, b)
	assert.InDelta(t, 5.0, d, 1e-9)
}

func TestDistancePointToSegment_Degenerate(t *testing.T) {
	a := model.Point{X: 2, Y: 2}
	d := DistancePointToSegment(model.Point{X: 5, Y: 6}, a, a)
	assert.InDelta(t, 5.0, d, 1e-9, "zero-length segment measures distance to its start")
}

func TestDistancePointToSegment_OnSegment(t *testing.T) {
	d := DistancePointToSegment(model.Point{X: 1, Y: 1}, model.Point{X: 0, Y: 0}, model.Point{X: 2, Y: 2})
	assert.InDelta(t, 0.0, d, 1e-9)
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(model.Point{X: 0, Y: 0}, model.Point{X: 3, Y: 4}), 1e-9)
}
