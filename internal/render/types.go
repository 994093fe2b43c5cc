// Package render rasterizes a scene onto an in-memory RGBA frame using
// fogleman/gg. The renderer is a pure projection: it never mutates the scene.
package render

import (
	"fmt"
	"image/color"

	"github.com/opd-ai/creographics/internal/scene"
)

// Config holds the rendering configuration options.
type Config struct {
	// Width is the surface width in pixels.
	Width int
	// Height is the surface height in pixels.
	Height int
	// Background is the color the surface is cleared to. The eraser paints
	// with it too.
	Background color.RGBA
	// BrushMultiplier scales the stroke width of brush paths.
	BrushMultiplier float64
	// EraserWidth is the fixed stroke width of eraser paths in scene units.
	EraserWidth float64
	// ArrowHead is the length of the two arrow head strokes in scene units.
	ArrowHead float64
	// MarkerRadius is the radius of the curve tool's point markers.
	MarkerRadius float64
	// SelectionColor is the color of the dashed selection outline.
	SelectionColor color.RGBA
	// OverlayColor darkens everything outside the crop rectangle.
	OverlayColor color.RGBA
	// MarkerColor fills the curve tool's point markers.
	MarkerColor color.RGBA
}

// DefaultConfig returns a Config with the stock editor look.
func DefaultConfig() Config {
	return Config{
		Width:           1024,
		Height:          768,
		Background:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
		BrushMultiplier: 3,
		EraserWidth:     20,
		ArrowHead:       20,
		MarkerRadius:    3,
		SelectionColor:  scene.MustParseColor("#0095ff"),
		OverlayColor:    color.RGBA{A: 128},
		MarkerColor:     color.RGBA{R: 255, A: 255},
	}
}

// Validate checks if the Config has valid values.
// Returns an error if Width or Height are not positive.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("height must be positive, got %d", c.Height)
	}
	if c.BrushMultiplier <= 0 || c.EraserWidth <= 0 {
		return fmt.Errorf("brush multiplier and eraser width must be positive")
	}
	return nil
}

// Preview is the transient, uncommitted state of a gesture in progress. It
// is drawn over the confirmed scene and never inserted into it.
type Preview struct {
	// Object is an in-progress object drawn on top of the scene.
	Object *scene.Object
	// Markers are scene positions drawn as small filled circles.
	Markers []scene.Point
	// Crop, when non-nil, is a scene rectangle left clear inside a darkened
	// overlay. Its extent may be negative while dragging.
	Crop *scene.Rect
}

// Empty reports whether p draws nothing.
func (p *Preview) Empty() bool {
	return p == nil || (p.Object == nil && len(p.Markers) == 0 && p.Crop == nil)
}
