package render

import (
	"github.com/fogleman/gg"

	"github.com/opd-ai/creographics/internal/scene"
)

// Custom shape outlines in unit coordinates. Each segment is either a line
// to one point or a cubic to three.
type segment []scene.Point

var shapeOutlines = map[scene.ShapeKind][]segment{
	scene.ShapeHeart: {
		{{X: 0.5, Y: 0.25}},
		{{X: 0.5, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 0.25}},
		{{X: 0, Y: 0.5}, {X: 0.5, Y: 0.75}, {X: 0.5, Y: 1}},
		{{X: 0.5, Y: 0.75}, {X: 1, Y: 0.5}, {X: 1, Y: 0.25}},
		{{X: 1, Y: 0}, {X: 0.5, Y: 0}, {X: 0.5, Y: 0.25}},
	},
	scene.ShapeDiamond: {
		{{X: 0.5, Y: 0}},
		{{X: 1, Y: 0.5}},
		{{X: 0.5, Y: 1}},
		{{X: 0, Y: 0.5}},
	},
	scene.ShapeCloud: {
		{{X: 0.25, Y: 0.85}},
		{{X: 0, Y: 0.85}, {X: 0, Y: 0.5}, {X: 0.2, Y: 0.5}},
		{{X: 0.15, Y: 0.2}, {X: 0.5, Y: 0.1}, {X: 0.55, Y: 0.3}},
		{{X: 0.65, Y: 0.1}, {X: 0.95, Y: 0.2}, {X: 0.85, Y: 0.5}},
		{{X: 1, Y: 0.55}, {X: 1, Y: 0.85}, {X: 0.75, Y: 0.85}},
	},
	scene.ShapeLightning: {
		{{X: 0.55, Y: 0}},
		{{X: 0.15, Y: 0.55}},
		{{X: 0.45, Y: 0.55}},
		{{X: 0.35, Y: 1}},
		{{X: 0.85, Y: 0.4}},
		{{X: 0.55, Y: 0.4}},
		{{X: 0.7, Y: 0}},
	},
}

// traceShape appends the closed outline of kind fitted to the box at (x, y)
// with signed extent (w, h). Negative extents mirror the outline.
func traceShape(dc *gg.Context, kind scene.ShapeKind, x, y, w, h float64) {
	outline, ok := shapeOutlines[kind]
	if !ok {
		outline = shapeOutlines[scene.ShapeHeart]
	}
	at := func(p scene.Point) (float64, float64) {
		return x + p.X*w, y + p.Y*h
	}
	dc.NewSubPath()
	for i, seg := range outline {
		switch {
		case i == 0:
			dc.MoveTo(at(seg[0]))
		case len(seg) == 3:
			x1, y1 := at(seg[0])
			x2, y2 := at(seg[1])
			x3, y3 := at(seg[2])
			dc.CubicTo(x1, y1, x2, y2, x3, y3)
		default:
			dc.LineTo(at(seg[0]))
		}
	}
	dc.ClosePath()
}
