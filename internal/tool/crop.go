package tool

import (
	"math"

	"github.com/opd-ai/creographics/internal/render"
	"github.com/opd-ai/creographics/internal/scene"
)

// CropTool drags a rectangle and, on release, replaces the whole scene with a
// single layer holding the rasterized contents of that rectangle.
type CropTool struct {
	threshold float64
	start     scene.Point
	rect      *scene.Rect
}

// NewCropTool returns a crop tool that ignores rectangles whose width or
// height does not exceed threshold.
func NewCropTool(threshold float64) *CropTool {
	return &CropTool{threshold: threshold}
}

func (t *CropTool) PointerDown(env Env, p Pointer) {
	t.start = p.Pos
	t.rect = &scene.Rect{X: p.Pos.X, Y: p.Pos.Y}
	env.SetPreview(&render.Preview{Crop: t.rect})
}

func (t *CropTool) PointerMove(env Env, p Pointer) {
	if t.rect == nil {
		return
	}
	t.rect.W, t.rect.H = p.Pos.X-t.start.X, p.Pos.Y-t.start.Y
	env.SetPreview(&render.Preview{Crop: t.rect})
}

func (t *CropTool) PointerUp(env Env, p Pointer) {
	r := t.rect
	if r == nil {
		return
	}
	t.rect = nil
	env.ClearPreview()
	r.W, r.H = p.Pos.X-t.start.X, p.Pos.Y-t.start.Y
	if math.Abs(r.W) <= t.threshold || math.Abs(r.H) <= t.threshold {
		return
	}
	img, ok := env.Crop(scene.NormRect(r.X, r.Y, r.W, r.H))
	if !ok {
		return
	}
	b := img.Bounds()
	o := scene.NewObject(scene.KindImage, env.Style())
	o.Width, o.Height = float64(b.Dx()), float64(b.Dy())
	o.Bitmap = scene.NewBitmap(img)

	l := scene.NewLayer("Layer 1")
	l.Objects = []*scene.Object{o}
	env.ReplaceLayers([]*scene.Layer{l})
}

// Cancel drops the crop rectangle.
func (t *CropTool) Cancel() {
	t.rect = nil
}

func (t *CropTool) setThreshold(v float64) {
	t.threshold = v
}
