package editor

import (
	"github.com/opd-ai/creographics/internal/scene"
	"github.com/opd-ai/creographics/internal/tool"
)

func (s *Session) pointer(x, y float64, mods tool.Modifiers) tool.Pointer {
	p := tool.Pointer{
		Pos:    s.viewport.ToScene(x, y),
		Screen: scene.Pt(x, y),
		Mods:   mods,
	}
	s.cursor = p.Pos
	return p
}

// PointerDown handles a button press at screen position (x, y).
func (s *Session) PointerDown(x, y float64, mods tool.Modifiers) {
	s.tools.PointerDown(s.env(), s.pointer(x, y, mods))
}

// PointerMove handles pointer motion to screen position (x, y).
func (s *Session) PointerMove(x, y float64, mods tool.Modifiers) {
	s.tools.PointerMove(s.env(), s.pointer(x, y, mods))
}

// PointerUp handles a button release at screen position (x, y).
func (s *Session) PointerUp(x, y float64, mods tool.Modifiers) {
	s.tools.PointerUp(s.env(), s.pointer(x, y, mods))
}

// Wheel applies a wheel event. Only precise events, such as a wheel turned
// with the zoom modifier held, change the zoom. It reports whether the zoom
// changed.
func (s *Session) Wheel(dy float64, precise bool) bool {
	before := s.viewport.Zoom()
	s.viewport.Wheel(dy, precise)
	return s.viewport.Zoom() != before
}

// ZoomIn multiplies the zoom by the configured step, clamped.
func (s *Session) ZoomIn() {
	s.viewport.ZoomIn()
}

// ZoomOut divides the zoom by the configured step, clamped.
func (s *Session) ZoomOut() {
	s.viewport.ZoomOut()
}

// SetZoom sets the zoom factor, clamped to the configured range.
func (s *Session) SetZoom(z float64) {
	s.viewport.SetZoom(z)
}

// Cursor returns the scene position of the last pointer event.
func (s *Session) Cursor() scene.Point {
	return s.cursor
}

// Tool returns the active tool.
func (s *Session) Tool() tool.Name {
	return s.tools.Active()
}

// SetTool activates the named tool, abandoning any gesture in progress.
func (s *Session) SetTool(n tool.Name) error {
	prev := s.tools.Active()
	if err := s.tools.SetActive(s.env(), n); err != nil {
		return err
	}
	if prev != n {
		s.logger.Debug("tool switched", "from", prev, "to", n)
	}
	return nil
}

// CancelGesture abandons the gesture in progress without switching tools.
func (s *Session) CancelGesture() {
	s.tools.Cancel(s.env())
}

// Tools exposes the tool controller, for instance to adjust the polygon
// tool's side count.
func (s *Session) Tools() *tool.Controller {
	return s.tools
}
