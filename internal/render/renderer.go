package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"

	"github.com/opd-ai/creographics/internal/scene"
)

// Renderer projects a scene onto a raster frame. It holds no scene state, so
// it can be called on every pointer move of a drag.
//
// Renderer is not safe for concurrent use.
type Renderer struct {
	cfg   Config
	fonts *FontManager
	frame *Frame
}

// New creates a renderer. A nil font manager selects the embedded Go fonts.
func New(cfg Config, fonts *FontManager) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if fonts == nil {
		fonts = NewFontManager()
	}
	return &Renderer{cfg: cfg, fonts: fonts}, nil
}

// Config returns the renderer configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Configure replaces the renderer configuration. An invalid configuration
// is rejected and the previous one kept.
func (r *Renderer) Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	r.cfg = cfg
	return nil
}

// SetBackground changes the clear color used by subsequent renders.
func (r *Renderer) SetBackground(c color.RGBA) {
	r.cfg.Background = c
}

// Render clears the surface, draws every visible layer back to front at the
// given zoom, outlines the selection, and draws p on top. The returned frame
// is reused by the next call to Render.
func (r *Renderer) Render(s *scene.Scene, zoom float64, p *Preview) *Frame {
	if r.frame == nil || r.frame.Bounds().Dx() != r.cfg.Width || r.frame.Bounds().Dy() != r.cfg.Height {
		r.frame = newFrame(r.cfg.Width, r.cfg.Height)
	}
	r.draw(r.frame, s, zoom, scene.Point{}, p, true)
	return r.frame
}

// Flatten renders the confirmed scene at zoom 1 into a fresh frame covering
// the scene area, without selection outline or preview. Pixel (0, 0) of the
// frame is scene point area.Min. The area may lie outside the configured
// surface size.
func (r *Renderer) Flatten(s *scene.Scene, area image.Rectangle) *Frame {
	f := newFrame(area.Dx(), area.Dy())
	r.draw(f, s, 1, scene.Point{X: float64(area.Min.X), Y: float64(area.Min.Y)}, nil, false)
	return f
}

func (r *Renderer) draw(f *Frame, s *scene.Scene, zoom float64, origin scene.Point, p *Preview, selection bool) {
	if zoom <= 0 {
		zoom = 1
	}
	c := &canvas{dc: f.dc, zoom: zoom, r: r}
	c.dc.Identity()
	c.dc.ResetClip()
	c.dc.SetColor(r.cfg.Background)
	c.dc.Clear()

	c.dc.Push()
	c.dc.Scale(zoom, zoom)
	c.dc.Translate(-origin.X, -origin.Y)
	for _, l := range s.Layers() {
		if !l.Visible {
			continue
		}
		for _, o := range l.Objects {
			c.object(o)
		}
	}
	if sel := s.Selection(); selection && sel != nil {
		c.selectionBox(sel)
	}
	if !p.Empty() {
		if p.Object != nil {
			c.object(p.Object)
		}
		c.markers(p.Markers)
	}
	c.dc.Pop()

	if p != nil && p.Crop != nil {
		c.cropOverlay(*p.Crop)
	}
}

// MeasureText returns the advance width and line height of text set in the
// font selected by st, in scene units.
func (r *Renderer) MeasureText(text string, st scene.Style) (w, h float64) {
	face := r.fonts.Face(st.FontFamily, StyleOf(st), st.FontSize)
	return float64(font.MeasureString(face, text)) / 64, st.FontSize
}
