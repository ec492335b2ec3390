package eraser

import "github.com/loshunter/HeroByte-sub004/internal/model"

func pts(coords ...float64) []model.Point {
	out := make([]model.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, model.Point{X: coords[i], Y: coords[i+1]})
	}
	return out
}

func freehand(width float64, points ...model.Point) model.Drawing {
	d := model.NewDrawing(model.ShapeFreehand, points...)
	d.Width = width
	d.Color = "#336699"
	d.Opacity = 0.8
	d.Owner = "player-7"
	return d
}

func shape(kind model.ShapeType, width float64, points ...model.Point) model.Drawing {
	d := model.NewDrawing(kind, points...)
	d.Width = width
	return d
}
