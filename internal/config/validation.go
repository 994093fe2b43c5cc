package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/opd-ai/creographics/internal/scene"
)

// ValidationError represents a configuration validation error.
// It contains the field name and a description of the issue.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// ValidationResult holds the results of a configuration validation.
type ValidationResult struct {
	// Errors contains all validation errors found.
	Errors []ValidationError
	// Warnings contains non-fatal issues such as an unusually large canvas.
	Warnings []ValidationError
}

// IsValid returns true if there are no validation errors.
func (vr *ValidationResult) IsValid() bool {
	return len(vr.Errors) == 0
}

// Error joins every validation error, or returns nil if there are none.
// Each joined error unwraps to a ValidationError.
func (vr *ValidationResult) Error() error {
	if len(vr.Errors) == 0 {
		return nil
	}
	errs := make([]error, 0, len(vr.Errors))
	for _, e := range vr.Errors {
		errs = append(errs, e)
	}
	return fmt.Errorf("validation failed: %w", errors.Join(errs...))
}

// AddError adds a validation error.
func (vr *ValidationResult) AddError(field, format string, args ...any) {
	vr.Errors = append(vr.Errors, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// AddWarning adds a validation warning.
func (vr *ValidationResult) AddWarning(field, format string, args ...any) {
	vr.Warnings = append(vr.Warnings, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// maxDimension bounds the canvas before a warning is raised.
const maxDimension = 10000

// Validate checks every section of the configuration and collects all
// problems rather than stopping at the first.
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{}

	validateCanvas(&c.Canvas, result)
	validateStyle(&c.Style, result)
	validateHistory(&c.History, result)
	validateZoom(&c.Zoom, result)
	validateTools(&c.Tools, result)

	return result
}

func validateCanvas(cc *CanvasConfig, result *ValidationResult) {
	if cc.Width <= 0 {
		result.AddError("canvas.width", "must be positive, got %d", cc.Width)
	}
	if cc.Height <= 0 {
		result.AddError("canvas.height", "must be positive, got %d", cc.Height)
	}
	if cc.Width > maxDimension {
		result.AddWarning("canvas.width", "unusually large value %d", cc.Width)
	}
	if cc.Height > maxDimension {
		result.AddWarning("canvas.height", "unusually large value %d", cc.Height)
	}
}

func validateStyle(sc *StyleConfig, result *ValidationResult) {
	if !finite(sc.StrokeWidth) || sc.StrokeWidth < 0 {
		result.AddError("style.stroke_width", "must be non-negative, got %v", sc.StrokeWidth)
	}
	if !finite(sc.FontSize) || sc.FontSize <= 0 {
		result.AddError("style.font_size", "must be positive, got %v", sc.FontSize)
	}
	if sc.FontSize > 200 {
		result.AddWarning("style.font_size", "unusually large font size: %v", sc.FontSize)
	}
	if sc.FontFamily == "" {
		result.AddError("style.font_family", "must not be empty")
	}
	if _, err := scene.ParseAlign(sc.TextAlign); err != nil {
		result.AddError("style.text_align", "%v", err)
	}
}

func validateHistory(hc *HistoryConfig, result *ValidationResult) {
	if hc.Capacity < 1 {
		result.AddError("history.capacity", "must be at least 1, got %d", hc.Capacity)
	}
}

func validateZoom(zc *ZoomConfig, result *ValidationResult) {
	if !finite(zc.Min) || zc.Min <= 0 || zc.Min > 1 {
		result.AddError("zoom.min", "must be in (0, 1], got %v", zc.Min)
	}
	if !finite(zc.Max) || zc.Max < 1 {
		result.AddError("zoom.max", "must be at least 1, got %v", zc.Max)
	}
	if !finite(zc.In) || zc.In <= 1 {
		result.AddError("zoom.in", "must be greater than 1, got %v", zc.In)
	}
	if !finite(zc.Out) || zc.Out <= 0 || zc.Out >= 1 {
		result.AddError("zoom.out", "must be in (0, 1), got %v", zc.Out)
	}
}

func validateTools(tc *ToolsConfig, result *ValidationResult) {
	if !finite(tc.CommitThreshold) || tc.CommitThreshold < 0 {
		result.AddError("tools.commit_threshold", "must be non-negative, got %v", tc.CommitThreshold)
	}
	if tc.PolygonSides < 3 {
		result.AddError("tools.polygon_sides", "must be at least 3, got %d", tc.PolygonSides)
	}
	if tc.StarPoints < 2 {
		result.AddError("tools.star_points", "must be at least 2, got %d", tc.StarPoints)
	}
	if !finite(tc.StarInnerRatio) || tc.StarInnerRatio <= 0 || tc.StarInnerRatio >= 1 {
		result.AddError("tools.star_inner_ratio", "must be in (0, 1), got %v", tc.StarInnerRatio)
	}
	if _, err := scene.ParseShapeKind(tc.Shape); err != nil {
		result.AddError("tools.shape", "%v", err)
	}
	if !finite(tc.BrushMultiplier) || tc.BrushMultiplier <= 0 {
		result.AddError("tools.brush_multiplier", "must be positive, got %v", tc.BrushMultiplier)
	}
	if !finite(tc.EraserWidth) || tc.EraserWidth <= 0 {
		result.AddError("tools.eraser_width", "must be positive, got %v", tc.EraserWidth)
	}
	if len(tc.GradientColors) < 2 {
		result.AddError("tools.gradient_colors", "need at least 2 colors, got %d", len(tc.GradientColors))
	}
	if !finite(tc.MarkerRadius) || tc.MarkerRadius <= 0 {
		result.AddError("tools.marker_radius", "must be positive, got %v", tc.MarkerRadius)
	}
	if !finite(tc.ArrowHead) || tc.ArrowHead < 0 {
		result.AddError("tools.arrow_head", "must be non-negative, got %v", tc.ArrowHead)
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ValidateConfig validates cfg and returns nil if it is usable.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	return cfg.Validate().Error()
}
