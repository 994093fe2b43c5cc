package editor

import (
	"fmt"
	"slices"

	"github.com/opd-ai/creographics/internal/config"
	"github.com/opd-ai/creographics/internal/render"
	"github.com/opd-ai/creographics/internal/scene"
	"github.com/opd-ai/creographics/internal/tool"
	"github.com/opd-ai/creographics/internal/viewport"
)

// styleFromConfig returns the style a new document starts with.
func styleFromConfig(c config.StyleConfig) scene.Style {
	align, _ := scene.ParseAlign(c.TextAlign)
	return scene.Style{
		Fill:        c.Fill,
		Stroke:      c.Stroke,
		StrokeWidth: c.StrokeWidth,
		FontFamily:  c.FontFamily,
		FontSize:    c.FontSize,
		Bold:        c.Bold,
		Italic:      c.Italic,
		Underline:   c.Underline,
		Align:       align,
	}
}

func toolSettings(c config.ToolsConfig) tool.Settings {
	shape, _ := scene.ParseShapeKind(c.Shape)
	return tool.Settings{
		Threshold:      c.CommitThreshold,
		PolygonSides:   c.PolygonSides,
		StarPoints:     c.StarPoints,
		StarInnerRatio: c.StarInnerRatio,
		Shape:          shape,
		GradientColors: slices.Clone(c.GradientColors),
	}
}

func zoomLimits(c config.ZoomConfig) viewport.Limits {
	return viewport.Limits{Min: c.Min, Max: c.Max, In: c.In, Out: c.Out}
}

func renderConfig(c *config.Config) render.Config {
	rc := render.DefaultConfig()
	rc.Width = c.Canvas.Width
	rc.Height = c.Canvas.Height
	rc.Background = c.Canvas.Background
	rc.BrushMultiplier = c.Tools.BrushMultiplier
	rc.EraserWidth = c.Tools.EraserWidth
	rc.ArrowHead = c.Tools.ArrowHead
	rc.MarkerRadius = c.Tools.MarkerRadius
	return rc
}

// loadConfig validates cfg, substituting the defaults for nil.
func loadConfig(cfg *config.Config) (config.Config, error) {
	if cfg == nil {
		return config.DefaultConfig(), nil
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return *cfg, nil
}
