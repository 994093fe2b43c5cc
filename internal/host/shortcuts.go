package host

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/opd-ai/creographics/internal/tool"
)

// Action is what a keyboard shortcut does.
type Action int

const (
	ActionNone Action = iota
	ActionTool
	ActionUndo
	ActionRedo
	ActionSave
	ActionOpen
	ActionNew
	ActionDelete
	ActionEscape
	ActionZoomIn
	ActionZoomOut
)

var actionNames = map[Action]string{
	ActionNone:    "none",
	ActionTool:    "tool",
	ActionUndo:    "undo",
	ActionRedo:    "redo",
	ActionSave:    "save",
	ActionOpen:    "open",
	ActionNew:     "new",
	ActionDelete:  "delete",
	ActionEscape:  "escape",
	ActionZoomIn:  "zoom in",
	ActionZoomOut: "zoom out",
}

func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return "unknown"
}

// Chord is a key together with the modifiers held when it was pressed. Ctrl
// also stands for the Meta key.
type Chord struct {
	Key   ebiten.Key
	Ctrl  bool
	Shift bool
}

// Command is the outcome of a shortcut lookup. Tool is set for ActionTool.
type Command struct {
	Action Action
	Tool   tool.Name
}

var ctrlShortcuts = map[ebiten.Key]Action{
	ebiten.KeyZ: ActionUndo,
	ebiten.KeyY: ActionRedo,
	ebiten.KeyS: ActionSave,
	ebiten.KeyO: ActionOpen,
	ebiten.KeyN: ActionNew,
}

var toolShortcuts = map[ebiten.Key]tool.Name{
	ebiten.KeyV:          tool.Select,
	ebiten.KeyM:          tool.Move,
	ebiten.KeyR:          tool.Rectangle,
	ebiten.KeyO:          tool.Circle,
	ebiten.KeyL:          tool.Line,
	ebiten.KeyT:          tool.Text,
	ebiten.KeyP:          tool.Pen,
	ebiten.KeyB:          tool.Brush,
	ebiten.KeyE:          tool.Eraser,
	ebiten.KeyI:          tool.Eyedropper,
	ebiten.KeyC:          tool.Crop,
	ebiten.KeyS:          tool.Shape,
	ebiten.KeyKPMultiply: tool.Star,
	ebiten.KeyG:          tool.Gradient,
	ebiten.KeyQ:          tool.Curve,
	ebiten.KeyA:          tool.Arrow,
	ebiten.KeyU:          tool.Image,
}

var plainShortcuts = map[ebiten.Key]Action{
	ebiten.KeyDelete:     ActionDelete,
	ebiten.KeyBackspace:  ActionDelete,
	ebiten.KeyEscape:     ActionEscape,
	ebiten.KeyEqual:      ActionZoomIn,
	ebiten.KeyKPAdd:      ActionZoomIn,
	ebiten.KeyMinus:      ActionZoomOut,
	ebiten.KeyKPSubtract: ActionZoomOut,
}

// Lookup resolves a chord against the shortcut table.
func Lookup(c Chord) (Command, bool) {
	if c.Ctrl {
		a, ok := ctrlShortcuts[c.Key]
		if !ok {
			return Command{}, false
		}
		if a == ActionUndo && c.Shift {
			a = ActionRedo
		}
		return Command{Action: a}, true
	}

	switch {
	case c.Shift && c.Key == ebiten.KeyP:
		return Command{Action: ActionTool, Tool: tool.Polygon}, true
	case c.Shift && c.Key == ebiten.KeyDigit8:
		return Command{Action: ActionTool, Tool: tool.Star}, true
	}
	if n, ok := toolShortcuts[c.Key]; ok {
		return Command{Action: ActionTool, Tool: n}, true
	}
	if a, ok := plainShortcuts[c.Key]; ok {
		return Command{Action: a}, true
	}
	return Command{}, false
}
