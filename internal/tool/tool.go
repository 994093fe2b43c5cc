// Package tool implements the pointer-driven tool state machines of the
// editor and the controller that dispatches gestures to the active one.
//
// Tools never hold the editor state themselves. Everything they read or
// mutate goes through Env, which the editor session implements.
package tool

import (
	"fmt"
	"image"
	"image/color"
	"slices"

	"github.com/opd-ai/creographics/internal/render"
	"github.com/opd-ai/creographics/internal/scene"
)

// Name identifies a tool.
type Name string

// Tool names, in toolbar order.
const (
	Select     Name = "select"
	Move       Name = "move"
	Rectangle  Name = "rectangle"
	Circle     Name = "circle"
	Line       Name = "line"
	Text       Name = "text"
	Pen        Name = "pen"
	Brush      Name = "brush"
	Eraser     Name = "eraser"
	Eyedropper Name = "eyedropper"
	Polygon    Name = "polygon"
	Star       Name = "star"
	Gradient   Name = "gradient"
	Shape      Name = "shape"
	Curve      Name = "curve"
	Arrow      Name = "arrow"
	Image      Name = "image"
	Crop       Name = "crop"
)

// Names lists every tool in toolbar order.
var Names = []Name{
	Select, Move, Rectangle, Circle, Line, Text, Pen, Brush, Eraser,
	Eyedropper, Polygon, Star, Gradient, Shape, Curve, Arrow, Image, Crop,
}

// ParseName validates a tool name.
func ParseName(s string) (Name, error) {
	n := Name(s)
	if !slices.Contains(Names, n) {
		return "", fmt.Errorf("unknown tool: %q", s)
	}
	return n, nil
}

// Modifiers is a set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

// Pointer is one pointer event.
type Pointer struct {
	// Pos is the pointer position in scene space.
	Pos scene.Point
	// Screen is the pointer position on the rendered surface.
	Screen scene.Point
	Mods   Modifiers
}

// AssetFunc receives the outcome of an asset request. It runs on the editor's
// event goroutine, never concurrently with a gesture.
type AssetFunc func(img image.Image, err error)

// Env is the editor capability set a tool works against.
type Env interface {
	// Style returns a copy of the current style.
	Style() scene.Style
	// SetFill overwrites the fill color of the current style.
	SetFill(c color.RGBA)
	// Scene returns the live scene.
	Scene() *scene.Scene
	// Commit adds o to layer and records one history snapshot. An index that
	// no longer exists falls back to layer 0.
	Commit(layer int, o *scene.Object)
	// ReplaceLayers swaps the whole layer list, resets the current layer and
	// records one history snapshot.
	ReplaceLayers(layers []*scene.Layer)
	// Checkpoint records one history snapshot of the scene as it is.
	Checkpoint()
	// SetPreview shows p over the confirmed scene until replaced or cleared.
	SetPreview(p *render.Preview)
	ClearPreview()
	// Sample reads the rendered surface at a screen position.
	Sample(screen scene.Point) (color.RGBA, bool)
	// Crop rasterizes the confirmed scene inside r at zoom 1. r is in scene
	// units and is clipped to the part of the scene currently on screen.
	Crop(r scene.Rect) (image.Image, bool)
	// Prompt asks the user for a string. ok is false on cancel.
	Prompt(label string) (text string, ok bool)
	// RequestAsset starts loading an image and returns at once. done is
	// called later with the decoded image or an error.
	RequestAsset(done AssetFunc)
	// MeasureText returns the extent of text set in st, in scene units.
	MeasureText(text string, st scene.Style) (w, h float64)
	// Report surfaces a failure that has no caller to return to.
	Report(err error)
}

// Tool is a pointer gesture state machine.
type Tool interface {
	PointerDown(env Env, p Pointer)
	PointerMove(env Env, p Pointer)
	PointerUp(env Env, p Pointer)
}

// Canceler is implemented by tools that hold per-gesture state which must be
// dropped when the user switches away mid-gesture.
type Canceler interface {
	Cancel()
}

// Settings are the per-tool defaults.
type Settings struct {
	// Threshold is the minimum extent, in scene units, an object must exceed
	// to be committed.
	Threshold      float64
	PolygonSides   int
	StarPoints     int
	StarInnerRatio float64
	Shape          scene.ShapeKind
	GradientColors []color.RGBA
}

// DefaultSettings returns the stock tool parameters.
func DefaultSettings() Settings {
	return Settings{
		Threshold:      1,
		PolygonSides:   6,
		StarPoints:     5,
		StarInnerRatio: 0.5,
		Shape:          scene.ShapeHeart,
		GradientColors: []color.RGBA{{R: 255, A: 255}, {G: 255, A: 255}},
	}
}
