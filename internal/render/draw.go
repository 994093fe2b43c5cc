package render

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/opd-ai/creographics/internal/scene"
)

// canvas is one render pass. gg applies the current matrix to geometry and
// glyphs but not to line widths, dash lengths or gradient endpoints, which
// are given in device pixels, so those go through px.
type canvas struct {
	dc   *gg.Context
	zoom float64
	r    *Renderer
}

type drawFunc func(c *canvas, o *scene.Object)

// drawers dispatches on the object kind. Every kind has an entry.
var drawers = map[scene.Kind]drawFunc{
	scene.KindRectangle: drawRectangle,
	scene.KindEllipse:   drawEllipse,
	scene.KindLine:      drawLine,
	scene.KindText:      drawText,
	scene.KindPath:      drawPath,
	scene.KindPolygon:   drawPolygon,
	scene.KindStar:      drawStar,
	scene.KindGradient:  drawGradient,
	scene.KindCurve:     drawCurve,
	scene.KindArrow:     drawArrow,
	scene.KindImage:     drawImage,
	scene.KindShape:     drawShape,
}

func (c *canvas) object(o *scene.Object) {
	if fn, ok := drawers[o.Kind]; ok {
		fn(c, o)
	}
}

// px converts a scene length to device pixels.
func (c *canvas) px(v float64) float64 {
	return v * c.zoom
}

// stroke strokes the current path. A non-positive width discards it.
func (c *canvas) stroke(col color.RGBA, width float64, round bool) {
	if width <= 0 {
		c.dc.ClearPath()
		return
	}
	c.dc.SetColor(col)
	c.dc.SetLineWidth(c.px(width))
	if round {
		c.dc.SetLineCap(gg.LineCapRound)
		c.dc.SetLineJoin(gg.LineJoinRound)
	} else {
		c.dc.SetLineCap(gg.LineCapButt)
		c.dc.SetLineJoin(gg.LineJoinBevel)
	}
	c.dc.Stroke()
}

// fillStroke fills the current path with the style's fill and outlines it
// with its stroke.
func (c *canvas) fillStroke(st scene.Style) {
	c.dc.SetColor(st.Fill)
	c.dc.FillPreserve()
	c.stroke(st.Stroke, st.StrokeWidth, false)
}

func drawRectangle(c *canvas, o *scene.Object) {
	c.dc.DrawRectangle(o.X, o.Y, o.Width, o.Height)
	c.fillStroke(o.Style)
}

func drawEllipse(c *canvas, o *scene.Object) {
	c.dc.DrawEllipse(o.X+o.Width/2, o.Y+o.Height/2, math.Abs(o.Width/2), math.Abs(o.Height/2))
	c.fillStroke(o.Style)
}

func drawLine(c *canvas, o *scene.Object) {
	c.dc.DrawLine(o.X, o.Y, o.EndX, o.EndY)
	c.stroke(o.Style.Stroke, o.Style.StrokeWidth, false)
}

func drawText(c *canvas, o *scene.Object) {
	if o.Text == "" {
		return
	}
	st := o.Style
	c.dc.SetFontFace(c.r.fonts.Face(st.FontFamily, StyleOf(st), st.FontSize))
	c.dc.SetColor(st.Fill)
	ax := 0.0
	switch st.Align {
	case scene.AlignCenter:
		ax = 0.5
	case scene.AlignRight:
		ax = 1
	}
	c.dc.DrawStringAnchored(o.Text, o.X, o.Y, ax, 0)
	if st.Underline {
		w, _ := c.dc.MeasureString(o.Text)
		x := o.X - ax*w
		c.dc.DrawLine(x, o.Y+3, x+w, o.Y+3)
		c.stroke(st.Fill, math.Max(1, st.FontSize/16), false)
	}
}

func drawPath(c *canvas, o *scene.Object) {
	if len(o.Points) == 0 {
		return
	}
	c.dc.MoveTo(o.Points[0].X, o.Points[0].Y)
	for _, p := range o.Points[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	switch o.Stroke {
	case scene.StrokeBrush:
		c.stroke(o.Style.Stroke, o.Style.StrokeWidth*c.r.cfg.BrushMultiplier, true)
	case scene.StrokeEraser:
		c.stroke(c.r.cfg.Background, c.r.cfg.EraserWidth, true)
	default:
		c.stroke(o.Style.Stroke, o.Style.StrokeWidth, false)
	}
}

// radial traces a closed outline of n vertices around (cx, cy), the first one
// straight up. radius returns the distance of vertex i from the centre.
func (c *canvas) radial(cx, cy float64, n int, radius func(i int) float64) {
	if n < 1 {
		return
	}
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		a := step*float64(i) - math.Pi/2
		r := radius(i)
		c.dc.LineTo(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	c.dc.ClosePath()
}

func drawPolygon(c *canvas, o *scene.Object) {
	if o.Sides < 3 {
		return
	}
	c.dc.NewSubPath()
	c.radial(o.X, o.Y, o.Sides, func(int) float64 { return o.Radius })
	c.fillStroke(o.Style)
}

func drawStar(c *canvas, o *scene.Object) {
	if o.Sides < 2 {
		return
	}
	c.dc.NewSubPath()
	c.radial(o.X, o.Y, o.Sides*2, func(i int) float64 {
		if i%2 == 0 {
			return o.Radius
		}
		return o.Radius * o.InnerRatio
	})
	c.fillStroke(o.Style)
}

func drawGradient(c *canvas, o *scene.Object) {
	if o.X == o.EndX && o.Y == o.EndY {
		return
	}
	stops := o.Style.Gradient
	if len(stops) < 2 {
		stops = []color.RGBA{o.Style.Fill, o.Style.Stroke}
	}
	g := gg.NewLinearGradient(c.px(o.X), c.px(o.Y), c.px(o.EndX), c.px(o.EndY))
	for i, s := range stops {
		g.AddColorStop(float64(i)/float64(len(stops)-1), s)
	}
	b := o.Bounds()
	c.dc.DrawRectangle(b.X, b.Y, b.W, b.H)
	c.dc.SetFillStyle(g)
	c.dc.Fill()
}

func drawCurve(c *canvas, o *scene.Object) {
	if len(o.Points) != 4 {
		return
	}
	p := o.Points
	c.dc.MoveTo(p[0].X, p[0].Y)
	c.dc.CubicTo(p[1].X, p[1].Y, p[2].X, p[2].Y, p[3].X, p[3].Y)
	c.stroke(o.Style.Stroke, o.Style.StrokeWidth, false)
}

func drawArrow(c *canvas, o *scene.Object) {
	head := c.r.cfg.ArrowHead
	angle := math.Atan2(o.EndY-o.Y, o.EndX-o.X)
	c.dc.MoveTo(o.X, o.Y)
	c.dc.LineTo(o.EndX, o.EndY)
	c.dc.LineTo(o.EndX-head*math.Cos(angle-math.Pi/6), o.EndY-head*math.Sin(angle-math.Pi/6))
	c.dc.MoveTo(o.EndX, o.EndY)
	c.dc.LineTo(o.EndX-head*math.Cos(angle+math.Pi/6), o.EndY-head*math.Sin(angle+math.Pi/6))
	c.stroke(o.Style.Stroke, o.Style.StrokeWidth, false)
}

func drawImage(c *canvas, o *scene.Object) {
	nw, nh := o.Bitmap.Size()
	if nw == 0 || nh == 0 {
		return
	}
	c.dc.Push()
	c.dc.Translate(o.X, o.Y)
	c.dc.Scale(o.Width/float64(nw), o.Height/float64(nh))
	c.dc.DrawImage(o.Bitmap.Image(), 0, 0)
	c.dc.Pop()
}

func drawShape(c *canvas, o *scene.Object) {
	traceShape(c.dc, o.Shape, o.X, o.Y, o.Width, o.Height)
	c.fillStroke(o.Style)
}

// selectionBox outlines o with a dashed rectangle whose on-screen width,
// dash length and margin stay constant under zoom.
func (c *canvas) selectionBox(o *scene.Object) {
	b := o.Bounds().Expand(5 / c.zoom)
	c.dc.DrawRectangle(b.X, b.Y, b.W, b.H)
	c.dc.SetDash(c.px(5/c.zoom), c.px(5/c.zoom))
	c.stroke(c.r.cfg.SelectionColor, 1/c.zoom, false)
	c.dc.SetDash()
}

func (c *canvas) markers(pts []scene.Point) {
	if len(pts) == 0 {
		return
	}
	for _, p := range pts {
		c.dc.DrawCircle(p.X, p.Y, c.r.cfg.MarkerRadius/c.zoom)
	}
	c.dc.SetColor(c.r.cfg.MarkerColor)
	c.dc.Fill()
}

// cropOverlay darkens the whole surface except the crop rectangle. It runs in
// device space after the scene transform has been popped.
func (c *canvas) cropOverlay(r scene.Rect) {
	n := scene.NormRect(r.X, r.Y, r.W, r.H)
	b := c.dc.Image().Bounds()
	c.dc.DrawRectangle(0, 0, float64(b.Dx()), float64(b.Dy()))
	c.dc.DrawRectangle(c.px(n.X), c.px(n.Y), c.px(n.W), c.px(n.H))
	c.dc.SetFillRule(gg.FillRuleEvenOdd)
	c.dc.SetColor(c.r.cfg.OverlayColor)
	c.dc.Fill()
	c.dc.SetFillRule(gg.FillRuleWinding)
}
