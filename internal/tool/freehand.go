package tool

import (
	"github.com/opd-ai/creographics/internal/render"
	"github.com/opd-ai/creographics/internal/scene"
)

// FreehandTool records the pointer trail as a path. Pen, brush and eraser
// differ only in the stroke mode stamped on the path.
type FreehandTool struct {
	mode  scene.StrokeMode
	draft *scene.Object
}

// NewPenTool returns a freehand tool drawing thin pen strokes.
func NewPenTool() *FreehandTool { return &FreehandTool{mode: scene.StrokePen} }

// NewBrushTool returns a freehand tool drawing wide strokes with round joins.
func NewBrushTool() *FreehandTool { return &FreehandTool{mode: scene.StrokeBrush} }

// NewEraserTool returns a freehand tool painting wide background-colored
// strokes over the scene.
func NewEraserTool() *FreehandTool { return &FreehandTool{mode: scene.StrokeEraser} }

func (t *FreehandTool) PointerDown(env Env, p Pointer) {
	o := scene.NewObject(scene.KindPath, env.Style())
	o.Stroke = t.mode
	o.Points = []scene.Point{p.Pos}
	t.draft = o
	env.SetPreview(&render.Preview{Object: o})
}

func (t *FreehandTool) PointerMove(env Env, p Pointer) {
	if t.draft == nil {
		return
	}
	t.draft.Points = append(t.draft.Points, p.Pos)
	env.SetPreview(&render.Preview{Object: t.draft})
}

func (t *FreehandTool) PointerUp(env Env, _ Pointer) {
	o := t.draft
	if o == nil {
		return
	}
	t.draft = nil
	env.ClearPreview()
	if o.Committable(0) {
		env.Commit(env.Scene().Current(), o)
	}
}

// Cancel drops the stroke in progress.
func (t *FreehandTool) Cancel() {
	t.draft = nil
}
