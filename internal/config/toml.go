package config

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/opd-ai/creographics/internal/scene"
)

// tomlDocument mirrors Config with colors written as strings.
type tomlDocument struct {
	Canvas  tomlCanvas  `toml:"canvas"`
	Style   tomlStyle   `toml:"style"`
	History tomlHistory `toml:"history"`
	Zoom    tomlZoom    `toml:"zoom"`
	Tools   tomlTools   `toml:"tools"`
}

type tomlCanvas struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

type tomlStyle struct {
	Fill        string  `toml:"fill"`
	Stroke      string  `toml:"stroke"`
	StrokeWidth float64 `toml:"stroke_width"`
	FontFamily  string  `toml:"font_family"`
	FontSize    float64 `toml:"font_size"`
	TextAlign   string  `toml:"text_align"`
	Bold        bool    `toml:"bold"`
	Italic      bool    `toml:"italic"`
	Underline   bool    `toml:"underline"`
}

type tomlHistory struct {
	Capacity int `toml:"capacity"`
}

type tomlZoom struct {
	Min float64 `toml:"min"`
	Max float64 `toml:"max"`
	In  float64 `toml:"in"`
	Out float64 `toml:"out"`
}

type tomlTools struct {
	CommitThreshold float64  `toml:"commit_threshold"`
	PolygonSides    int      `toml:"polygon_sides"`
	StarPoints      int      `toml:"star_points"`
	StarInnerRatio  float64  `toml:"star_inner_ratio"`
	Shape           string   `toml:"shape"`
	BrushMultiplier float64  `toml:"brush_multiplier"`
	EraserWidth     float64  `toml:"eraser_width"`
	GradientColors  []string `toml:"gradient_colors"`
	MarkerRadius    float64  `toml:"marker_radius"`
	ArrowHead       float64  `toml:"arrow_head"`
}

func documentFromConfig(cfg *Config) tomlDocument {
	stops := make([]string, len(cfg.Tools.GradientColors))
	for i, c := range cfg.Tools.GradientColors {
		stops[i] = scene.ToHex(c)
	}
	return tomlDocument{
		Canvas: tomlCanvas{
			Width:      cfg.Canvas.Width,
			Height:     cfg.Canvas.Height,
			Background: scene.ToHex(cfg.Canvas.Background),
		},
		Style: tomlStyle{
			Fill:        scene.ToHex(cfg.Style.Fill),
			Stroke:      scene.ToHex(cfg.Style.Stroke),
			StrokeWidth: cfg.Style.StrokeWidth,
			FontFamily:  cfg.Style.FontFamily,
			FontSize:    cfg.Style.FontSize,
			TextAlign:   cfg.Style.TextAlign,
			Bold:        cfg.Style.Bold,
			Italic:      cfg.Style.Italic,
			Underline:   cfg.Style.Underline,
		},
		History: tomlHistory{Capacity: cfg.History.Capacity},
		Zoom: tomlZoom{
			Min: cfg.Zoom.Min,
			Max: cfg.Zoom.Max,
			In:  cfg.Zoom.In,
			Out: cfg.Zoom.Out,
		},
		Tools: tomlTools{
			CommitThreshold: cfg.Tools.CommitThreshold,
			PolygonSides:    cfg.Tools.PolygonSides,
			StarPoints:      cfg.Tools.StarPoints,
			StarInnerRatio:  cfg.Tools.StarInnerRatio,
			Shape:           cfg.Tools.Shape,
			BrushMultiplier: cfg.Tools.BrushMultiplier,
			EraserWidth:     cfg.Tools.EraserWidth,
			GradientColors:  stops,
			MarkerRadius:    cfg.Tools.MarkerRadius,
			ArrowHead:       cfg.Tools.ArrowHead,
		},
	}
}

func (d *tomlDocument) toConfig() (*Config, error) {
	cfg := Config{
		Canvas: CanvasConfig{
			Width:  d.Canvas.Width,
			Height: d.Canvas.Height,
		},
		Style: StyleConfig{
			StrokeWidth: d.Style.StrokeWidth,
			FontFamily:  ExpandEnv(d.Style.FontFamily),
			FontSize:    d.Style.FontSize,
			TextAlign:   ExpandEnv(d.Style.TextAlign),
			Bold:        d.Style.Bold,
			Italic:      d.Style.Italic,
			Underline:   d.Style.Underline,
		},
		History: HistoryConfig{Capacity: d.History.Capacity},
		Zoom: ZoomConfig{
			Min: d.Zoom.Min,
			Max: d.Zoom.Max,
			In:  d.Zoom.In,
			Out: d.Zoom.Out,
		},
		Tools: ToolsConfig{
			CommitThreshold: d.Tools.CommitThreshold,
			PolygonSides:    d.Tools.PolygonSides,
			StarPoints:      d.Tools.StarPoints,
			StarInnerRatio:  d.Tools.StarInnerRatio,
			Shape:           ExpandEnv(d.Tools.Shape),
			BrushMultiplier: d.Tools.BrushMultiplier,
			EraserWidth:     d.Tools.EraserWidth,
			MarkerRadius:    d.Tools.MarkerRadius,
			ArrowHead:       d.Tools.ArrowHead,
		},
	}

	colors := []struct {
		key    string
		value  string
		target *color.RGBA
	}{
		{"canvas.background", d.Canvas.Background, &cfg.Canvas.Background},
		{"style.fill", d.Style.Fill, &cfg.Style.Fill},
		{"style.stroke", d.Style.Stroke, &cfg.Style.Stroke},
	}
	for _, f := range colors {
		c, err := scene.ParseColor(ExpandEnv(f.value))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", f.key, err)
		}
		*f.target = c
	}

	cfg.Tools.GradientColors = make([]color.RGBA, 0, len(d.Tools.GradientColors))
	for _, s := range d.Tools.GradientColors {
		c, err := scene.ParseColor(ExpandEnv(s))
		if err != nil {
			return nil, fmt.Errorf("invalid tools.gradient_colors: %w", err)
		}
		cfg.Tools.GradientColors = append(cfg.Tools.GradientColors, c)
	}
	return &cfg, nil
}

// ParseTOML decodes a TOML configuration. Keys that are absent keep their
// defaults; unknown keys are rejected.
func ParseTOML(content []byte) (*Config, error) {
	defaults := DefaultConfig()
	doc := documentFromConfig(&defaults)

	md, err := toml.Decode(string(content), &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML configuration: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown configuration keys: %s", strings.Join(keys, ", "))
	}
	return doc.toConfig()
}

// EncodeTOML writes cfg as a TOML document that ParseTOML reads back.
func EncodeTOML(w io.Writer, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	doc := documentFromConfig(cfg)
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("failed to encode TOML configuration: %w", err)
	}
	return nil
}
