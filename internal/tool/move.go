package tool

import "github.com/opd-ai/creographics/internal/scene"

// MoveTool drags the selected object. The committed object itself moves; no
// preview is involved.
type MoveTool struct {
	target *scene.Object
	origin *scene.Object
	start  scene.Point
}

// PointerDown grabs the selection. Without one the gesture does nothing.
func (t *MoveTool) PointerDown(env Env, p Pointer) {
	sel := env.Scene().Selection()
	if sel == nil {
		return
	}
	t.target, t.origin, t.start = sel, sel.Clone(), p.Pos
}

func (t *MoveTool) PointerMove(env Env, p Pointer) {
	if t.target == nil {
		return
	}
	if !env.Scene().Contains(t.target) {
		t.Cancel()
		return
	}
	t.target.MoveFrom(t.origin, p.Pos.Sub(t.start))
}

// PointerUp settles the object at the release point and records a snapshot
// when it actually moved.
func (t *MoveTool) PointerUp(env Env, p Pointer) {
	if t.target == nil {
		return
	}
	target, origin, d := t.target, t.origin, p.Pos.Sub(t.start)
	t.Cancel()
	if !env.Scene().Contains(target) {
		return
	}
	target.MoveFrom(origin, d)
	if d != (scene.Point{}) {
		env.Checkpoint()
	}
}

// Cancel returns the dragged object to where the gesture found it. Only
// PointerUp commits a move.
func (t *MoveTool) Cancel() {
	if t.target != nil {
		t.target.MoveFrom(t.origin, scene.Point{})
	}
	t.target, t.origin = nil, nil
}
