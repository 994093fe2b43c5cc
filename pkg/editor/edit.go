package editor

import (
	"github.com/opd-ai/creographics/internal/history"
	"github.com/opd-ai/creographics/internal/scene"
)

// Style returns a copy of the current style.
func (s *Session) Style() scene.Style {
	return s.style.Clone()
}

// EditStyle applies edit to the current style. When an object is selected
// the same edit is applied to the selection's own style, so a style panel
// change restyles the selected object.
func (s *Session) EditStyle(edit func(st *scene.Style)) {
	edit(&s.style)
	if sel := s.scene.Selection(); sel != nil {
		edit(&sel.Style)
	}
}

// Selection returns the selected object, or nil.
func (s *Session) Selection() *scene.Object {
	return s.scene.Selection()
}

// DeleteSelected removes the selected object from whichever layer owns it and
// records a snapshot. It reports false when nothing is selected.
func (s *Session) DeleteSelected() bool {
	sel := s.scene.Selection()
	if sel == nil {
		return false
	}
	s.tools.Cancel(s.env())
	layer := s.scene.LayerOf(sel)
	s.scene.RemoveObject(sel)
	s.record()
	s.logger.Debug("object deleted", "kind", sel.Kind, "id", sel.ID, "layer", layer)
	return true
}

// Undo restores the previous snapshot. It reports false at the oldest
// snapshot, where nothing changes.
func (s *Session) Undo() bool {
	s.tools.Cancel(s.env())
	if !s.history.Undo(s.scene) {
		return false
	}
	s.metrics.IncrementUndos()
	s.updateGauges()
	s.logger.Debug("undo", "index", s.history.Index(), "snapshots", s.history.Len())
	return true
}

// Redo reapplies the next snapshot. It reports false at the newest snapshot,
// where nothing changes.
func (s *Session) Redo() bool {
	s.tools.Cancel(s.env())
	if !s.history.Redo(s.scene) {
		return false
	}
	s.metrics.IncrementRedos()
	s.updateGauges()
	s.logger.Debug("redo", "index", s.history.Index(), "snapshots", s.history.Len())
	return true
}

// CanUndo reports whether Undo would change the scene.
func (s *Session) CanUndo() bool {
	return s.history.CanUndo()
}

// CanRedo reports whether Redo would change the scene.
func (s *Session) CanRedo() bool {
	return s.history.CanRedo()
}

// History exposes the undo history for inspection.
func (s *Session) History() *history.Manager {
	return s.history
}

// NewDocument discards the scene and starts over with one empty layer and a
// fresh history holding a single baseline snapshot. The style and zoom are
// kept.
func (s *Session) NewDocument() {
	s.tools.Cancel(s.env())
	s.scene = scene.New()
	s.history = history.New(s.cfg.History.Capacity)
	s.history.Reset(s.scene)
	s.updateGauges()
	s.logger.Info("new document")
}
