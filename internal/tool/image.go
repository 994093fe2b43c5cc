package tool

import (
	"errors"
	"image"

	"github.com/opd-ai/creographics/internal/scene"
)

// ImageTool requests an image asset on press and places it, at its native
// size, when the asset arrives. The press position and the layer that was
// current at press time are captured, so the image lands there even if the
// user has moved on.
type ImageTool struct {
	// inflight counts requests whose completion has not run yet.
	inflight int
}

// InFlight returns the number of outstanding asset requests.
func (t *ImageTool) InFlight() int {
	return t.inflight
}

func (t *ImageTool) PointerDown(env Env, p Pointer) {
	pos, layer, style := p.Pos, env.Scene().Current(), env.Style()
	t.inflight++
	env.RequestAsset(func(img image.Image, err error) {
		t.inflight--
		if err == nil && img == nil {
			err = errors.New("asset loader returned no image")
		}
		if err != nil {
			env.Report(err)
			return
		}
		b := img.Bounds()
		if b.Empty() {
			env.Report(errors.New("asset has no pixels"))
			return
		}
		o := scene.NewObject(scene.KindImage, style)
		o.X, o.Y = pos.X, pos.Y
		o.Width, o.Height = float64(b.Dx()), float64(b.Dy())
		o.Bitmap = scene.NewBitmap(img)
		env.Commit(layer, o)
	})
}

func (t *ImageTool) PointerMove(Env, Pointer) {}
func (t *ImageTool) PointerUp(Env, Pointer)   {}
