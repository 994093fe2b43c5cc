// Package config provides the editor configuration: canvas, default style,
// history, zoom and tool parameters. Configurations are written either as a
// Lua script assigning editor.config or as a TOML document.
package config

import (
	"image/color"
)

// Config represents the complete editor configuration.
type Config struct {
	// Canvas contains the drawing surface settings.
	Canvas CanvasConfig
	// Style holds the attributes a new document starts drawing with.
	Style StyleConfig
	// History contains undo/redo settings.
	History HistoryConfig
	// Zoom contains the zoom range and step factors.
	Zoom ZoomConfig
	// Tools contains per-tool defaults.
	Tools ToolsConfig
}

// CanvasConfig holds the drawing surface settings.
type CanvasConfig struct {
	// Width is the surface width in pixels.
	Width int
	// Height is the surface height in pixels.
	Height int
	// Background is the color the surface is cleared to and the eraser
	// paints with.
	Background color.RGBA
}

// StyleConfig holds the initial current style.
type StyleConfig struct {
	Fill        color.RGBA
	Stroke      color.RGBA
	StrokeWidth float64
	FontFamily  string
	FontSize    float64
	// TextAlign is "left", "center" or "right".
	TextAlign string
	Bold      bool
	Italic    bool
	Underline bool
}

// HistoryConfig holds undo/redo settings.
type HistoryConfig struct {
	// Capacity is the number of snapshots kept before the oldest is evicted.
	Capacity int
}

// ZoomConfig holds the zoom range and the per-step factors.
type ZoomConfig struct {
	Min float64
	Max float64
	// In multiplies the zoom on a zoom-in wheel step.
	In float64
	// Out multiplies the zoom on a zoom-out wheel step.
	Out float64
}

// ToolsConfig holds per-tool defaults.
type ToolsConfig struct {
	// CommitThreshold is the extent, in scene units, a new object must exceed
	// to be kept.
	CommitThreshold float64
	PolygonSides    int
	StarPoints      int
	// StarInnerRatio is the inner radius of a star relative to its outer one.
	StarInnerRatio float64
	// Shape is the outline drawn by the shape tool: heart, diamond, cloud or
	// lightning.
	Shape           string
	BrushMultiplier float64
	// EraserWidth is the eraser stroke width in scene units.
	EraserWidth    float64
	GradientColors []color.RGBA
	// MarkerRadius is the on-screen radius of curve control point markers.
	MarkerRadius float64
	// ArrowHead is the length of arrow head strokes in scene units.
	ArrowHead float64
}
