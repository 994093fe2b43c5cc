package config

import (
	"errors"
	"math"
	"testing"
)

func TestValidateDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	result := cfg.Validate()
	if !result.IsValid() {
		t.Errorf("default config invalid: %v", result.Error())
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestValidateFields(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"zero width", func(c *Config) { c.Canvas.Width = 0 }, "canvas.width"},
		{"negative height", func(c *Config) { c.Canvas.Height = -1 }, "canvas.height"},
		{"negative stroke", func(c *Config) { c.Style.StrokeWidth = -2 }, "style.stroke_width"},
		{"zero font size", func(c *Config) { c.Style.FontSize = 0 }, "style.font_size"},
		{"empty font family", func(c *Config) { c.Style.FontFamily = "" }, "style.font_family"},
		{"bad alignment", func(c *Config) { c.Style.TextAlign = "justify" }, "style.text_align"},
		{"zero capacity", func(c *Config) { c.History.Capacity = 0 }, "history.capacity"},
		{"min above one", func(c *Config) { c.Zoom.Min = 1.5 }, "zoom.min"},
		{"max below one", func(c *Config) { c.Zoom.Max = 0.5 }, "zoom.max"},
		{"in step not growing", func(c *Config) { c.Zoom.In = 1 }, "zoom.in"},
		{"out step not shrinking", func(c *Config) { c.Zoom.Out = 1.2 }, "zoom.out"},
		{"nan threshold", func(c *Config) { c.Tools.CommitThreshold = math.NaN() }, "tools.commit_threshold"},
		{"two sides", func(c *Config) { c.Tools.PolygonSides = 2 }, "tools.polygon_sides"},
		{"one point", func(c *Config) { c.Tools.StarPoints = 1 }, "tools.star_points"},
		{"ratio of one", func(c *Config) { c.Tools.StarInnerRatio = 1 }, "tools.star_inner_ratio"},
		{"unknown shape", func(c *Config) { c.Tools.Shape = "blob" }, "tools.shape"},
		{"zero brush multiplier", func(c *Config) { c.Tools.BrushMultiplier = 0 }, "tools.brush_multiplier"},
		{"zero eraser", func(c *Config) { c.Tools.EraserWidth = 0 }, "tools.eraser_width"},
		{"single gradient stop", func(c *Config) { c.Tools.GradientColors = c.Tools.GradientColors[:1] }, "tools.gradient_colors"},
		{"zero marker radius", func(c *Config) { c.Tools.MarkerRadius = 0 }, "tools.marker_radius"},
		{"negative arrow head", func(c *Config) { c.Tools.ArrowHead = -1 }, "tools.arrow_head"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			result := cfg.Validate()
			if len(result.Errors) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(result.Errors), result.Errors)
			}
			if result.Errors[0].Field != tt.field {
				t.Errorf("field = %q, want %q", result.Errors[0].Field, tt.field)
			}
		})
	}
}

func TestValidateCollectsAll(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Canvas.Width = 0
	cfg.History.Capacity = 0
	cfg.Tools.Shape = "blob"

	err := ValidateConfig(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error %v does not unwrap to ValidationError", err)
	}
	if got := len(cfg.Validate().Errors); got != 3 {
		t.Errorf("got %d errors, want 3", got)
	}
}

func TestValidateWarnings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Canvas.Width = 20000
	cfg.Style.FontSize = 500

	result := cfg.Validate()
	if !result.IsValid() {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Warnings) != 2 {
		t.Errorf("got %d warnings, want 2: %v", len(result.Warnings), result.Warnings)
	}
}

func TestValidateConfigNil(t *testing.T) {
	if err := ValidateConfig(nil); err == nil {
		t.Error("expected error for nil config")
	}
}
