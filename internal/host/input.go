package host

import (
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/opd-ai/creographics/internal/tool"
)

// Input is the per-tick view of the devices. This allows for mocking in
// tests.
type Input interface {
	CursorPosition() (x, y int)
	MouseJustPressed() bool
	MouseJustReleased() bool
	Wheel() (dx, dy float64)
	JustPressedKeys() []ebiten.Key
	Modifiers() tool.Modifiers
	DroppedFiles() fs.FS
}

// ebitenInput reads the devices through ebiten and inpututil.
type ebitenInput struct {
	keys []ebiten.Key
}

func (in *ebitenInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (in *ebitenInput) MouseJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (in *ebitenInput) MouseJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

func (in *ebitenInput) Wheel() (float64, float64) {
	return ebiten.Wheel()
}

func (in *ebitenInput) JustPressedKeys() []ebiten.Key {
	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	return in.keys
}

func (in *ebitenInput) Modifiers() tool.Modifiers {
	var m tool.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= tool.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= tool.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= tool.ModAlt
	}
	return m
}

func (in *ebitenInput) DroppedFiles() fs.FS {
	return ebiten.DroppedFiles()
}
