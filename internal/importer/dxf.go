package importer

import (
	"fmt"
	"math"

	"github.com/loshunter/HeroByte-sub004/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// SceneResult holds the drawings imported from a file.
type SceneResult struct {
	Drawings []model.Drawing
	Errors   []string
	Warnings []string
}

// arcSegments is the number of chords used to approximate an arc.
const arcSegments = 32

// ImportDXF imports drawings from a DXF file. LWPOLYLINEs and ARCs become
// freehand strokes, LINEs become lines and CIRCLEs become circles. Other
// entity types are skipped.
func ImportDXF(path string) SceneResult {
	result := SceneResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	skipped := 0
	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			points := lwPolylineToPoints(e)
			if len(points) < 2 {
				result.Warnings = append(result.Warnings, "Skipped LWPOLYLINE with fewer than 2 vertices")
				continue
			}
			result.Drawings = append(result.Drawings, model.NewDrawing(model.ShapeFreehand, points...))

		case *entity.Line:
			result.Drawings = append(result.Drawings, model.NewDrawing(model.ShapeLine,
				model.Point{X: e.Start[0], Y: e.Start[1]},
				model.Point{X: e.End[0], Y: e.End[1]},
			))

		case *entity.Circle:
			if e.Radius <= 0 {
				result.Warnings = append(result.Warnings, "Skipped CIRCLE with zero radius")
				continue
			}
			cx, cy := e.Center[0], e.Center[1]
			result.Drawings = append(result.Drawings, model.NewDrawing(model.ShapeCircle,
				model.Point{X: cx, Y: cy},
				model.Point{X: cx + e.Radius, Y: cy},
			))

		case *entity.Arc:
			result.Drawings = append(result.Drawings, model.NewDrawing(model.ShapeFreehand, arcToPoints(e, arcSegments)...))

		default:
			skipped++
		}
	}

	if skipped > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Skipped %d unsupported entities", skipped))
	}
	if len(result.Drawings) == 0 {
		result.Errors = append(result.Errors, "No drawable entities found in DXF file")
	}
	return result
}

// lwPolylineToPoints converts a DXF LWPOLYLINE to a vertex list. Bulged
// vertices are expanded into arc points; closed polylines repeat their first
// vertex at the end.
func lwPolylineToPoints(lw *entity.LwPolyline) []model.Point {
	var points []model.Point
	n := len(lw.Vertices)

	for i := 0; i < n; i++ {
		v := lw.Vertices[i]
		current := model.Point{X: v[0], Y: v[1]}

		bulge := 0.0
		if i < len(lw.Bulges) {
			bulge = lw.Bulges[i]
		}
		last := i == n-1 && !lw.Closed

		if math.Abs(bulge) > 1e-9 && !last {
			next := lw.Vertices[(i+1)%n]
			arc := bulgeArcPoints(current, model.Point{X: next[0], Y: next[1]}, bulge, arcSegments)
			// The next vertex adds itself
			points = append(points, arc[:len(arc)-1]...)
		} else {
			points = append(points, current)
		}
	}

	if lw.Closed && n > 1 {
		points = append(points, points[0])
	}
	return points
}

// bulgeArcPoints generates points along an arc defined by two endpoints and a
// DXF bulge factor. The bulge is the tangent of 1/4 the included angle.
func bulgeArcPoints(p1, p2 model.Point, bulge float64, numSegments int) []model.Point {
	mx := (p1.X + p2.X) / 2
	my := (p1.Y + p2.Y) / 2
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	chordLen := math.Sqrt(dx*dx + dy*dy)
	if chordLen < 1e-9 {
		return []model.Point{p1, p2}
	}

	sagitta := math.Abs(bulge) * chordLen / 2
	radius := (chordLen*chordLen/(4*sagitta) + sagitta) / 2

	// Left of p1->p2; a counter-clockwise (positive) bulge has its center there
	perpX := -dy / chordLen
	perpY := dx / chordLen
	dist := radius - sagitta
	if bulge < 0 {
		perpX, perpY = -perpX, -perpY
	}
	cx := mx + perpX*dist
	cy := my + perpY*dist

	startAngle := math.Atan2(p1.Y-cy, p1.X-cx)
	endAngle := math.Atan2(p2.Y-cy, p2.X-cx)

	if bulge < 0 {
		// Clockwise
		if endAngle > startAngle {
			endAngle -= 2 * math.Pi
		}
	} else if endAngle < startAngle {
		endAngle += 2 * math.Pi
	}

	pts := make([]model.Point, 0, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startAngle + t*(endAngle-startAngle)
		pts = append(pts, model.Point{
			X: cx + radius*math.Cos(angle),
			Y: cy + radius*math.Sin(angle),
		})
	}
	return pts
}

// arcToPoints converts a DXF ARC entity to a series of points.
func arcToPoints(a *entity.Arc, numSegments int) []model.Point {
	cx, cy := a.Circle.Center[0], a.Circle.Center[1]
	r := a.Circle.Radius

	startRad := a.Angle[0] * math.Pi / 180
	endRad := a.Angle[1] * math.Pi / 180
	if endRad <= startRad {
		endRad += 2 * math.Pi
	}

	pts := make([]model.Point, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startRad + t*(endRad-startRad)
		pts[i] = model.Point{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return pts
}
