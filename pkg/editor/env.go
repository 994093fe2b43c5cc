package editor

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/google/uuid"

	"github.com/opd-ai/creographics/internal/render"
	"github.com/opd-ai/creographics/internal/scene"
	"github.com/opd-ai/creographics/internal/tool"
)

// sessionEnv is the Session seen through the tool.Env capability set. It is
// kept as a separate type so the capabilities do not widen Session's API.
type sessionEnv Session

var _ tool.Env = (*sessionEnv)(nil)

func (e *sessionEnv) Style() scene.Style {
	return e.style.Clone()
}

func (e *sessionEnv) SetFill(c color.RGBA) {
	e.style.Fill = c
}

func (e *sessionEnv) Scene() *scene.Scene {
	return e.scene
}

func (e *sessionEnv) Commit(layer int, o *scene.Object) {
	s := (*Session)(e)
	if o == nil {
		s.report(scene.ErrNilObject)
		return
	}
	if err := s.scene.AddObject(layer, o); err != nil {
		s.logger.Debug("commit target gone, using layer 0", "layer", layer, "error", err)
		layer = 0
		if err := s.scene.AddObject(layer, o); err != nil {
			s.report(fmt.Errorf("commit %s: %w", o.Kind, err))
			return
		}
	}
	s.record()
	s.metrics.IncrementCommits()
	s.logger.Debug("commit", "kind", o.Kind, "layer", layer, "id", o.ID)
}

func (e *sessionEnv) ReplaceLayers(layers []*scene.Layer) {
	s := (*Session)(e)
	if err := s.scene.ReplaceLayers(layers); err != nil {
		s.report(err)
		return
	}
	_ = s.scene.SetCurrent(0)
	s.record()
	s.logger.Debug("scene replaced", "layers", len(layers))
}

func (e *sessionEnv) Checkpoint() {
	(*Session)(e).record()
}

func (e *sessionEnv) SetPreview(p *render.Preview) {
	e.preview = p
}

func (e *sessionEnv) ClearPreview() {
	e.preview = nil
}

func (e *sessionEnv) Sample(screen scene.Point) (color.RGBA, bool) {
	f := (*Session)(e).Frame()
	return f.Sample(int(math.Floor(screen.X)), int(math.Floor(screen.Y)))
}

func (e *sessionEnv) Crop(r scene.Rect) (image.Image, bool) {
	cfg := e.renderer.Config()
	zoom := e.viewport.Zoom()
	visible := image.Rect(0, 0,
		int(math.Ceil(float64(cfg.Width)/zoom)), int(math.Ceil(float64(cfg.Height)/zoom)))
	area := image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.W)), int(math.Ceil(r.Y+r.H)),
	).Intersect(visible)
	if area.Empty() {
		return nil, false
	}
	return e.renderer.Flatten(e.scene, area).Image(), true
}

func (e *sessionEnv) Prompt(label string) (string, bool) {
	if e.prompter == nil {
		return "", false
	}
	return e.prompter.Prompt(label)
}

func (e *sessionEnv) RequestAsset(done tool.AssetFunc) {
	s := (*Session)(e)
	loader := s.assets
	id := uuid.New()
	ctx := withRequestID(s.ctx, id)
	s.pending.Add(1)
	s.logger.Debug("asset requested", "request", id)
	go func() {
		var img image.Image
		err := ErrNoAssetLoader
		if loader != nil {
			img, err = loader.LoadAsset(ctx)
			if err != nil {
				err = fmt.Errorf("%w: %w", ErrAssetLoad, err)
			}
		}
		s.post(func() {
			s.pending.Add(-1)
			if err != nil {
				s.metrics.IncrementAssetFailures()
				s.logger.Warn("asset failed", "request", id, "error", err)
			} else {
				s.metrics.IncrementAssetsLoaded()
				s.logger.Debug("asset loaded", "request", id)
			}
			done(img, err)
		})
	}()
}

func (e *sessionEnv) MeasureText(text string, st scene.Style) (w, h float64) {
	return e.renderer.MeasureText(text, st)
}

func (e *sessionEnv) Report(err error) {
	(*Session)(e).report(err)
}
