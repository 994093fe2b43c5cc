package scene

import (
	"fmt"
	"image/color"
	"slices"
	"strings"
)

// Align is the horizontal alignment of text relative to its anchor.
type Align int

const (
	// AlignLeft starts the text at the anchor.
	AlignLeft Align = iota
	// AlignCenter centers the text on the anchor.
	AlignCenter
	// AlignRight ends the text at the anchor.
	AlignRight
)

// String returns the document name of the alignment.
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlign parses "left", "center" or "right".
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	default:
		return AlignLeft, fmt.Errorf("unknown text alignment: %q", s)
	}
}

// Style is the bag of drawing attributes captured by an object when it is
// created. The editor keeps one current Style; tools copy it at gesture start.
type Style struct {
	Fill        color.RGBA
	Stroke      color.RGBA
	StrokeWidth float64
	FontFamily  string
	FontSize    float64
	Bold        bool
	Italic      bool
	Underline   bool
	Align       Align
	// Gradient holds evenly spaced color stops; only gradient fills use it.
	Gradient []color.RGBA
}

// DefaultStyle returns the attributes a fresh document starts with.
func DefaultStyle() Style {
	return Style{
		Fill:        color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Stroke:      color.RGBA{A: 255},
		StrokeWidth: 1,
		FontFamily:  "Arial",
		FontSize:    16,
		Align:       AlignLeft,
	}
}

// Clone returns a copy of s that shares no memory with it.
func (s Style) Clone() Style {
	s.Gradient = slices.Clone(s.Gradient)
	return s
}
