package tool

import "github.com/opd-ai/creographics/internal/scene"

// SelectTool selects the topmost object under the press point, or clears the
// selection when there is none.
type SelectTool struct{}

func (SelectTool) PointerDown(env Env, p Pointer) {
	s := env.Scene()
	s.Select(s.HitTest(p.Pos))
}

func (SelectTool) PointerMove(Env, Pointer) {}
func (SelectTool) PointerUp(Env, Pointer)   {}

// EyedropperTool copies the rendered color under the press point into the
// current fill.
type EyedropperTool struct{}

func (EyedropperTool) PointerDown(env Env, p Pointer) {
	if c, ok := env.Sample(p.Screen); ok {
		env.SetFill(c)
	}
}

func (EyedropperTool) PointerMove(Env, Pointer) {}
func (EyedropperTool) PointerUp(Env, Pointer)   {}

// TextPrompt is the label shown when the text tool asks for input.
const TextPrompt = "Enter text:"

// TextTool asks for a string and places it with its baseline at the press
// point.
type TextTool struct{}

func (TextTool) PointerDown(env Env, p Pointer) {
	text, ok := env.Prompt(TextPrompt)
	if !ok || text == "" {
		return
	}
	o := scene.NewObject(scene.KindText, env.Style())
	o.X, o.Y = p.Pos.X, p.Pos.Y
	o.Text = text
	o.Width, o.Height = env.MeasureText(text, o.Style)
	env.Commit(env.Scene().Current(), o)
}

func (TextTool) PointerMove(Env, Pointer) {}
func (TextTool) PointerUp(Env, Pointer)   {}
