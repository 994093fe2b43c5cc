package config

import (
	"image/color"
)

// Default values for configuration options.
const (
	// DefaultCanvasWidth is the default surface width in pixels.
	DefaultCanvasWidth = 1024
	// DefaultCanvasHeight is the default surface height in pixels.
	DefaultCanvasHeight = 768
	// DefaultFontFamily is the default text font family.
	DefaultFontFamily = "Arial"
	// DefaultFontSize is the default text size in scene units.
	DefaultFontSize = 16.0
	// DefaultHistoryCapacity is the default number of undo snapshots.
	DefaultHistoryCapacity = 50
)

// Default colors.
var (
	// White is the default fill and background.
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// Black is the default stroke.
	Black = color.RGBA{A: 255}
	// DefaultGradient holds the stops given to new gradients.
	DefaultGradient = []color.RGBA{{R: 255, A: 255}, {G: 255, A: 255}}
)

// DefaultConfig returns a Config with the stock editor defaults.
func DefaultConfig() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:      DefaultCanvasWidth,
			Height:     DefaultCanvasHeight,
			Background: White,
		},
		Style: StyleConfig{
			Fill:        White,
			Stroke:      Black,
			StrokeWidth: 1,
			FontFamily:  DefaultFontFamily,
			FontSize:    DefaultFontSize,
			TextAlign:   "left",
		},
		History: HistoryConfig{
			Capacity: DefaultHistoryCapacity,
		},
		Zoom: ZoomConfig{
			Min: 0.1,
			Max: 5,
			In:  1.1,
			Out: 0.9,
		},
		Tools: ToolsConfig{
			CommitThreshold: 1,
			PolygonSides:    6,
			StarPoints:      5,
			StarInnerRatio:  0.5,
			Shape:           "heart",
			BrushMultiplier: 3,
			EraserWidth:     20,
			GradientColors:  append([]color.RGBA(nil), DefaultGradient...),
			MarkerRadius:    3,
			ArrowHead:       20,
		},
	}
}
