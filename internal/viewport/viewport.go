// Package viewport maps between screen and scene coordinates under a single
// clamped zoom factor.
package viewport

import (
	"math"

	"github.com/opd-ai/creographics/internal/scene"
)

// Default zoom limits and step factors.
const (
	DefaultMin     = 0.1
	DefaultMax     = 5.0
	DefaultInStep  = 1.1
	DefaultOutStep = 0.9
)

// Limits configures the zoom range and the per-event step factors.
type Limits struct {
	Min, Max float64
	// In is applied for a zoom-in wheel event, Out for a zoom-out one.
	In, Out float64
}

// DefaultLimits returns the stock zoom range of [0.1, 5] with ×1.1 / ×0.9
// wheel steps.
func DefaultLimits() Limits {
	return Limits{Min: DefaultMin, Max: DefaultMax, In: DefaultInStep, Out: DefaultOutStep}
}

// Viewport holds the zoom factor. The origin is the canvas top-left and there
// is no panning, so scene = screen / zoom.
type Viewport struct {
	zoom   float64
	limits Limits
}

// New returns a viewport at zoom 1 with the given limits. Invalid limits fall
// back to the defaults.
func New(limits Limits) *Viewport {
	if limits.Min <= 0 || limits.Max < limits.Min || limits.In <= 1 || limits.Out <= 0 || limits.Out >= 1 {
		limits = DefaultLimits()
	}
	v := &Viewport{limits: limits}
	v.SetZoom(1)
	return v
}

// Zoom returns the current zoom factor.
func (v *Viewport) Zoom() float64 {
	return v.zoom
}

// Limits returns the configured zoom limits.
func (v *Viewport) Limits() Limits {
	return v.limits
}

// SetZoom sets the zoom factor, clamped into range. NaN is ignored.
func (v *Viewport) SetZoom(z float64) {
	if math.IsNaN(z) {
		return
	}
	v.zoom = math.Max(v.limits.Min, math.Min(v.limits.Max, z))
}

// ZoomBy multiplies the zoom factor by f and clamps the result.
func (v *Viewport) ZoomBy(f float64) {
	v.SetZoom(v.zoom * f)
}

// ZoomIn steps the zoom up by the configured in-factor.
func (v *Viewport) ZoomIn() {
	v.ZoomBy(v.limits.In)
}

// ZoomOut steps the zoom down by the reciprocal of the in-factor, so ZoomIn
// followed by ZoomOut returns to the same zoom when not clamped.
func (v *Viewport) ZoomOut() {
	v.ZoomBy(1 / v.limits.In)
}

// Wheel applies a wheel event. Only precise-zoom events (ctrl held) change the
// zoom: a positive delta zooms out, anything else zooms in. It reports whether
// the event was consumed.
func (v *Viewport) Wheel(dy float64, precise bool) bool {
	if !precise {
		return false
	}
	if dy > 0 {
		v.ZoomBy(v.limits.Out)
	} else {
		v.ZoomBy(v.limits.In)
	}
	return true
}

// ToScene converts a screen position to scene space.
func (v *Viewport) ToScene(x, y float64) scene.Point {
	return scene.Pt(x/v.zoom, y/v.zoom)
}

// ToScreen converts a scene position to screen space.
func (v *Viewport) ToScreen(p scene.Point) (x, y float64) {
	return p.X * v.zoom, p.Y * v.zoom
}
