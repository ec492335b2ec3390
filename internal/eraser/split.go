// Package eraser decides what an eraser gesture removes from a drawing.
//
// Freehand strokes are split into the runs of vertices the eraser did not
// touch; lines, rectangles and circles are either deleted whole or left
// alone. Nothing in this package mutates its inputs, logs, or keeps state
// between calls, so evaluations of different drawings may run concurrently.
package eraser

import (
	"github.com/loshunter/HeroByte-sub004/internal/geometry"
	"github.com/loshunter/HeroByte-sub004/internal/model"
)

// SplitFreehand returns the pieces of a freehand drawing that survive the
// eraser path (world space) swept with the given width.
//
// An edge is erased when any eraser point is strictly within the hit radius
// of it. Removing an edge keeps both of its vertices: one ends the run before
// it and the other starts the run after it. Runs shorter than two points are
// dropped. When nothing is erased, or the path is empty, the result is a
// single copy of the whole stroke. An empty result means the stroke was
// consumed entirely.
//
// Returned segments carry every attribute of d except ID and Selected.
func SplitFreehand(d model.Drawing, path []model.Point, eraserWidth float64) []model.Drawing {
	return splitFreehand(d, geometry.NewEraserPath(path), eraserWidth)
}

func splitFreehand(d model.Drawing, path geometry.EraserPath, eraserWidth float64) []model.Drawing {
	if path.Empty() || len(d.Points) < 2 {
		return []model.Drawing{d.Segment(d.Points)}
	}

	erased, hit := erasedEdges(d, path, eraserWidth)
	if !hit {
		return []model.Drawing{d.Segment(d.Points)}
	}

	var segments []model.Drawing
	start := 0
	for i, cut := range erased {
		if !cut {
			continue
		}
		if i+1-start >= 2 {
			segments = append(segments, d.Segment(d.Points[start:i+1]))
		}
		start = i + 1
	}
	if len(d.Points)-start >= 2 {
		segments = append(segments, d.Segment(d.Points[start:]))
	}
	return segments
}

// erasedEdges marks edge i (vertex i to i+1) when the eraser touches it.
func erasedEdges(d model.Drawing, path geometry.EraserPath, eraserWidth float64) ([]bool, bool) {
	t := d.TransformOrIdentity()
	r := geometry.HitRadius(d.Width, t, eraserWidth)
	world := geometry.ToWorldAll(d.Points, t)

	if !geometry.BoundsOf(world...).Expand(r).Overlaps(path.Bounds) {
		return nil, false
	}

	erased := make([]bool, len(world)-1)
	hit := false
	for i := range erased {
		if geometry.EdgeHit(world[i], world[i+1], path, r) {
			erased[i] = true
			hit = true
		}
	}
	return erased, hit
}
