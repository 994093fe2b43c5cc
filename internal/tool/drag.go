package tool

import (
	"image/color"
	"slices"

	"github.com/opd-ai/creographics/internal/render"
	"github.com/opd-ai/creographics/internal/scene"
)

// extendFunc recomputes the extent of a draft from the press point to the
// current pointer position.
type extendFunc func(o *scene.Object, start, cur scene.Point)

func boxExtent(o *scene.Object, start, cur scene.Point) {
	o.Width, o.Height = cur.X-start.X, cur.Y-start.Y
}

func segmentExtent(o *scene.Object, _, cur scene.Point) {
	o.EndX, o.EndY = cur.X, cur.Y
}

func radiusExtent(o *scene.Object, start, cur scene.Point) {
	o.Radius = start.Dist(cur)
}

// thresholder is implemented by tools with a commit threshold.
type thresholder interface {
	setThreshold(v float64)
}

// drag is the shared state machine of the drag-to-shape tools: press starts a
// zero-extent draft, moves resize it as a preview, release commits it when it
// is large enough.
type drag struct {
	kind      scene.Kind
	threshold float64
	extend    extendFunc

	start scene.Point
	draft *scene.Object
}

// begin starts a draft at the press point with the current style. init, when
// non-nil, applies tool parameters to it.
func (d *drag) begin(env Env, p Pointer, init func(o *scene.Object)) {
	o := scene.NewObject(d.kind, env.Style())
	o.X, o.Y = p.Pos.X, p.Pos.Y
	d.extend(o, p.Pos, p.Pos)
	if init != nil {
		init(o)
	}
	d.start, d.draft = p.Pos, o
	env.SetPreview(&render.Preview{Object: o})
}

func (d *drag) PointerMove(env Env, p Pointer) {
	if d.draft == nil {
		return
	}
	d.extend(d.draft, d.start, p.Pos)
	env.SetPreview(&render.Preview{Object: d.draft})
}

func (d *drag) PointerUp(env Env, p Pointer) {
	o := d.draft
	if o == nil {
		return
	}
	d.draft = nil
	env.ClearPreview()
	d.extend(o, d.start, p.Pos)
	if !o.Committable(d.threshold) {
		return
	}
	o.Normalize()
	env.Commit(env.Scene().Current(), o)
}

// Cancel drops the draft.
func (d *drag) Cancel() {
	d.draft = nil
}

func (d *drag) setThreshold(v float64) {
	d.threshold = v
}

// RectangleTool drags out rectangles.
type RectangleTool struct{ drag }

// NewRectangleTool returns a rectangle tool that discards drags whose width
// or height does not exceed threshold.
func NewRectangleTool(threshold float64) *RectangleTool {
	return &RectangleTool{drag{kind: scene.KindRectangle, threshold: threshold, extend: boxExtent}}
}

func (t *RectangleTool) PointerDown(env Env, p Pointer) { t.begin(env, p, nil) }

// EllipseTool drags out ellipses inscribed in the dragged box.
type EllipseTool struct{ drag }

// NewEllipseTool returns an ellipse tool with the same commit rule as
// rectangles.
func NewEllipseTool(threshold float64) *EllipseTool {
	return &EllipseTool{drag{kind: scene.KindEllipse, threshold: threshold, extend: boxExtent}}
}

func (t *EllipseTool) PointerDown(env Env, p Pointer) { t.begin(env, p, nil) }

// LineTool drags out straight lines.
type LineTool struct{ drag }

// NewLineTool returns a line tool that commits once either axis of the
// drag exceeds threshold.
func NewLineTool(threshold float64) *LineTool {
	return &LineTool{drag{kind: scene.KindLine, threshold: threshold, extend: segmentExtent}}
}

func (t *LineTool) PointerDown(env Env, p Pointer) { t.begin(env, p, nil) }

// ArrowTool drags out lines with a two-stroke head at the release end.
type ArrowTool struct{ drag }

// NewArrowTool returns an arrow tool with the same commit rule as lines.
func NewArrowTool(threshold float64) *ArrowTool {
	return &ArrowTool{drag{kind: scene.KindArrow, threshold: threshold, extend: segmentExtent}}
}

func (t *ArrowTool) PointerDown(env Env, p Pointer) { t.begin(env, p, nil) }

// PolygonTool drags out regular polygons centred on the press point.
type PolygonTool struct {
	drag
	// Sides applies to polygons started after it is changed.
	Sides int
}

// NewPolygonTool returns a polygon tool. sides is raised to at least 3.
func NewPolygonTool(threshold float64, sides int) *PolygonTool {
	return &PolygonTool{
		drag:  drag{kind: scene.KindPolygon, threshold: threshold, extend: radiusExtent},
		Sides: max(sides, 3),
	}
}

func (t *PolygonTool) PointerDown(env Env, p Pointer) {
	t.begin(env, p, func(o *scene.Object) { o.Sides = t.Sides })
}

// StarTool drags out stars centred on the press point.
type StarTool struct {
	drag
	Points     int
	InnerRatio float64
}

// NewStarTool returns a star tool. points is raised to at least 2, and
// innerRatio is the inner radius as a fraction of the outer one.
func NewStarTool(threshold float64, points int, innerRatio float64) *StarTool {
	return &StarTool{
		drag:       drag{kind: scene.KindStar, threshold: threshold, extend: radiusExtent},
		Points:     max(points, 2),
		InnerRatio: innerRatio,
	}
}

func (t *StarTool) PointerDown(env Env, p Pointer) {
	t.begin(env, p, func(o *scene.Object) {
		o.Sides, o.InnerRatio = t.Points, t.InnerRatio
	})
}

// GradientTool drags out a linear gradient filling the box spanned by the
// gradient line.
type GradientTool struct {
	drag
	// Colors are the evenly spaced stops given to new gradients.
	Colors []color.RGBA
}

// NewGradientTool returns a gradient tool using a copy of colors as stops.
func NewGradientTool(threshold float64, colors []color.RGBA) *GradientTool {
	return &GradientTool{
		drag:   drag{kind: scene.KindGradient, threshold: threshold, extend: segmentExtent},
		Colors: slices.Clone(colors),
	}
}

func (t *GradientTool) PointerDown(env Env, p Pointer) {
	t.begin(env, p, func(o *scene.Object) {
		if len(t.Colors) >= 2 {
			o.Style.Gradient = slices.Clone(t.Colors)
		}
	})
}

// ShapeTool drags out a custom shape fitted to the dragged box.
type ShapeTool struct {
	drag
	Shape scene.ShapeKind
}

// NewShapeTool returns a custom shape tool drawing shape.
func NewShapeTool(threshold float64, shape scene.ShapeKind) *ShapeTool {
	return &ShapeTool{
		drag:  drag{kind: scene.KindShape, threshold: threshold, extend: boxExtent},
		Shape: shape,
	}
}

func (t *ShapeTool) PointerDown(env Env, p Pointer) {
	t.begin(env, p, func(o *scene.Object) { o.Shape = t.Shape })
}
