package tool

import (
	"slices"

	"github.com/opd-ai/creographics/internal/render"
	"github.com/opd-ai/creographics/internal/scene"
)

// CurveTool builds a cubic Bézier from four clicks: start, first control,
// second control, end. The buffer survives between gestures and tool
// switches.
type CurveTool struct {
	points []scene.Point
}

// Pending returns a copy of the buffered points.
func (t *CurveTool) Pending() []scene.Point {
	return slices.Clone(t.points)
}

// Reset empties the buffer.
func (t *CurveTool) Reset() {
	t.points = nil
}

func (t *CurveTool) PointerDown(env Env, p Pointer) {
	t.points = append(t.points, p.Pos)
	if len(t.points) < 4 {
		env.SetPreview(&render.Preview{Markers: t.Pending()})
		return
	}
	o := scene.NewObject(scene.KindCurve, env.Style())
	o.Points = t.points
	t.points = nil
	env.ClearPreview()
	env.Commit(env.Scene().Current(), o)
}

// PointerMove refreshes the markers so they stay visible between clicks.
func (t *CurveTool) PointerMove(env Env, _ Pointer) {
	if len(t.points) > 0 {
		env.SetPreview(&render.Preview{Markers: t.Pending()})
	}
}

func (t *CurveTool) PointerUp(Env, Pointer) {}
