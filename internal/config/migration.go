package config

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"slices"
	"strings"

	"github.com/opd-ai/creographics/internal/scene"
)

// Migrator renders a Config as a Lua configuration script.
type Migrator struct {
	// includeComments adds section comments to the output.
	includeComments bool
	// preserveDefaults includes settings even when they match defaults.
	preserveDefaults bool
}

// MigratorOption is a functional option for configuring a Migrator.
type MigratorOption func(*Migrator)

// WithComments enables section comments in the Lua output.
func WithComments(include bool) MigratorOption {
	return func(m *Migrator) {
		m.includeComments = include
	}
}

// WithDefaults includes settings that match default values in the output.
func WithDefaults(preserve bool) MigratorOption {
	return func(m *Migrator) {
		m.preserveDefaults = preserve
	}
}

// NewMigrator creates a new Migrator with the given options.
func NewMigrator(opts ...MigratorOption) *Migrator {
	m := &Migrator{
		includeComments:  true,
		preserveDefaults: false,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MigrateToLua converts a Config to a Lua script assigning editor.config.
func (m *Migrator) MigrateToLua(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	if m.includeComments {
		buf.WriteString("-- creographics configuration\n\n")
	}
	buf.WriteString("editor.config = {\n")
	m.writeConfigTable(&buf, cfg)
	buf.WriteString("}\n")

	return buf.Bytes(), nil
}

func (m *Migrator) writeConfigTable(buf *bytes.Buffer, cfg *Config) {
	d := DefaultConfig()

	m.section(buf, "Canvas", true)
	m.writeInt(buf, "canvas_width", cfg.Canvas.Width, d.Canvas.Width)
	m.writeInt(buf, "canvas_height", cfg.Canvas.Height, d.Canvas.Height)
	m.writeColor(buf, "background", cfg.Canvas.Background, d.Canvas.Background)

	m.section(buf, "Style", false)
	m.writeColor(buf, "fill", cfg.Style.Fill, d.Style.Fill)
	m.writeColor(buf, "stroke", cfg.Style.Stroke, d.Style.Stroke)
	m.writeFloat(buf, "stroke_width", cfg.Style.StrokeWidth, d.Style.StrokeWidth)
	m.writeString(buf, "font_family", cfg.Style.FontFamily, d.Style.FontFamily)
	m.writeFloat(buf, "font_size", cfg.Style.FontSize, d.Style.FontSize)
	m.writeString(buf, "text_align", cfg.Style.TextAlign, d.Style.TextAlign)
	m.writeBool(buf, "bold", cfg.Style.Bold, d.Style.Bold)
	m.writeBool(buf, "italic", cfg.Style.Italic, d.Style.Italic)
	m.writeBool(buf, "underline", cfg.Style.Underline, d.Style.Underline)

	m.section(buf, "History and zoom", false)
	m.writeInt(buf, "history_capacity", cfg.History.Capacity, d.History.Capacity)
	m.writeFloat(buf, "zoom_min", cfg.Zoom.Min, d.Zoom.Min)
	m.writeFloat(buf, "zoom_max", cfg.Zoom.Max, d.Zoom.Max)
	m.writeFloat(buf, "zoom_in", cfg.Zoom.In, d.Zoom.In)
	m.writeFloat(buf, "zoom_out", cfg.Zoom.Out, d.Zoom.Out)

	m.section(buf, "Tools", false)
	m.writeFloat(buf, "commit_threshold", cfg.Tools.CommitThreshold, d.Tools.CommitThreshold)
	m.writeInt(buf, "polygon_sides", cfg.Tools.PolygonSides, d.Tools.PolygonSides)
	m.writeInt(buf, "star_points", cfg.Tools.StarPoints, d.Tools.StarPoints)
	m.writeFloat(buf, "star_inner_ratio", cfg.Tools.StarInnerRatio, d.Tools.StarInnerRatio)
	m.writeString(buf, "shape", cfg.Tools.Shape, d.Tools.Shape)
	m.writeFloat(buf, "brush_multiplier", cfg.Tools.BrushMultiplier, d.Tools.BrushMultiplier)
	m.writeFloat(buf, "eraser_width", cfg.Tools.EraserWidth, d.Tools.EraserWidth)
	m.writeGradient(buf, cfg.Tools.GradientColors, d.Tools.GradientColors)
	m.writeFloat(buf, "marker_radius", cfg.Tools.MarkerRadius, d.Tools.MarkerRadius)
	m.writeFloat(buf, "arrow_head", cfg.Tools.ArrowHead, d.Tools.ArrowHead)
}

func (m *Migrator) section(buf *bytes.Buffer, title string, first bool) {
	if !m.includeComments {
		return
	}
	if !first {
		buf.WriteString("\n")
	}
	fmt.Fprintf(buf, "    -- %s\n", title)
}

// writeBool writes a boolean setting to the buffer.
func (m *Migrator) writeBool(buf *bytes.Buffer, name string, value, def bool) {
	if m.preserveDefaults || value != def {
		fmt.Fprintf(buf, "    %s = %t,\n", name, value)
	}
}

// writeString writes a string setting to the buffer.
func (m *Migrator) writeString(buf *bytes.Buffer, name, value, def string) {
	if m.preserveDefaults || value != def {
		fmt.Fprintf(buf, "    %s = %s,\n", name, luaQuote(value))
	}
}

// writeInt writes an integer setting to the buffer.
func (m *Migrator) writeInt(buf *bytes.Buffer, name string, value, def int) {
	if m.preserveDefaults || value != def {
		fmt.Fprintf(buf, "    %s = %d,\n", name, value)
	}
}

// writeFloat writes a float setting to the buffer.
func (m *Migrator) writeFloat(buf *bytes.Buffer, name string, value, def float64) {
	if !m.preserveDefaults && value == def {
		return
	}
	// Format with minimal decimal places
	if value == float64(int(value)) {
		fmt.Fprintf(buf, "    %s = %.1f,\n", name, value)
	} else {
		fmt.Fprintf(buf, "    %s = %g,\n", name, value)
	}
}

func (m *Migrator) writeColor(buf *bytes.Buffer, name string, value, def color.RGBA) {
	if m.preserveDefaults || value != def {
		fmt.Fprintf(buf, "    %s = %s,\n", name, luaQuote(scene.ToHex(value)))
	}
}

func (m *Migrator) writeGradient(buf *bytes.Buffer, stops, def []color.RGBA) {
	if !m.preserveDefaults && slices.Equal(stops, def) {
		return
	}
	quoted := make([]string, len(stops))
	for i, c := range stops {
		quoted[i] = luaQuote(scene.ToHex(c))
	}
	fmt.Fprintf(buf, "    gradient_colors = { %s },\n", strings.Join(quoted, ", "))
}

// luaQuote returns s as a single-quoted Lua string literal.
func luaQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return "'" + s + "'"
}

// MigrateTOMLToLua parses a TOML configuration and renders it as Lua.
func MigrateTOMLToLua(content []byte, opts ...MigratorOption) ([]byte, error) {
	cfg, err := ParseTOML(content)
	if err != nil {
		return nil, err
	}
	return NewMigrator(opts...).MigrateToLua(cfg)
}

// MigrateTOMLFile reads a TOML configuration file and renders it as Lua.
func MigrateTOMLFile(path string, opts ...MigratorOption) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return MigrateTOMLToLua(content, opts...)
}
