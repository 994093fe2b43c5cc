package tool

import (
	"image"
	"image/color"

	"github.com/opd-ai/creographics/internal/render"
	"github.com/opd-ai/creographics/internal/scene"
)

// fakeEnv records every interaction a tool has with the editor.
type fakeEnv struct {
	scene       *scene.Scene
	style       scene.Style
	preview     *render.Preview
	commits     int
	checkpoints int
	replaced    int
	reports     []error

	sample    color.RGBA
	sampleOK  bool
	sampledAt scene.Point

	cropImg image.Image
	cropped scene.Rect

	promptText string
	promptOK   bool
	prompts    int

	pending []AssetFunc
}

func newFakeEnv() *fakeEnv {
	return &fakeEnv{scene: scene.New(), style: scene.DefaultStyle()}
}

func (e *fakeEnv) Style() scene.Style           { return e.style.Clone() }
func (e *fakeEnv) SetFill(c color.RGBA)         { e.style.Fill = c }
func (e *fakeEnv) Scene() *scene.Scene          { return e.scene }
func (e *fakeEnv) Checkpoint()                  { e.checkpoints++ }
func (e *fakeEnv) SetPreview(p *render.Preview) { e.preview = p }
func (e *fakeEnv) ClearPreview()                { e.preview = nil }
func (e *fakeEnv) Report(err error)             { e.reports = append(e.reports, err) }

func (e *fakeEnv) Commit(layer int, o *scene.Object) {
	if _, ok := e.scene.Layer(layer); !ok {
		layer = 0
	}
	_ = e.scene.AddObject(layer, o)
	e.commits++
}

func (e *fakeEnv) ReplaceLayers(layers []*scene.Layer) {
	_ = e.scene.ReplaceLayers(layers)
	_ = e.scene.SetCurrent(0)
	e.replaced++
}

func (e *fakeEnv) Sample(p scene.Point) (color.RGBA, bool) {
	e.sampledAt = p
	return e.sample, e.sampleOK
}

func (e *fakeEnv) Crop(r scene.Rect) (image.Image, bool) {
	e.cropped = r
	return e.cropImg, e.cropImg != nil
}

func (e *fakeEnv) Prompt(string) (string, bool) {
	e.prompts++
	return e.promptText, e.promptOK
}

func (e *fakeEnv) RequestAsset(done AssetFunc) {
	e.pending = append(e.pending, done)
}

func (e *fakeEnv) MeasureText(text string, st scene.Style) (float64, float64) {
	return float64(len(text)) * st.FontSize / 2, st.FontSize
}

// objects returns every object of layer i.
func (e *fakeEnv) objects(i int) []*scene.Object {
	l, _ := e.scene.Layer(i)
	return l.Objects
}

func at(x, y float64) Pointer {
	return Pointer{Pos: scene.Pt(x, y), Screen: scene.Pt(x, y)}
}
