package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/google/uuid"
)

type styleJSON struct {
	Fill           string   `json:"fill"`
	Stroke         string   `json:"stroke"`
	StrokeWidth    float64  `json:"strokeWidth"`
	FontSize       float64  `json:"fontSize"`
	FontFamily     string   `json:"fontFamily"`
	TextAlign      string   `json:"textAlign"`
	Bold           bool     `json:"bold"`
	Italic         bool     `json:"italic"`
	Underline      bool     `json:"underline"`
	GradientColors []string `json:"gradientColors,omitempty"`
}

// MarshalJSON encodes the style with colors as hex strings.
func (s Style) MarshalJSON() ([]byte, error) {
	w := styleJSON{
		Fill:        ToHex(s.Fill),
		Stroke:      ToHex(s.Stroke),
		StrokeWidth: s.StrokeWidth,
		FontSize:    s.FontSize,
		FontFamily:  s.FontFamily,
		TextAlign:   s.Align.String(),
		Bold:        s.Bold,
		Italic:      s.Italic,
		Underline:   s.Underline,
	}
	for _, c := range s.Gradient {
		w.GradientColors = append(w.GradientColors, ToHex(c))
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes a style written by MarshalJSON. Colors must parse and
// sizes must be finite and non-negative.
func (s *Style) UnmarshalJSON(data []byte) error {
	var w styleJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	fill, err := ParseColor(w.Fill)
	if err != nil {
		return fmt.Errorf("invalid fill: %w", err)
	}
	stroke, err := ParseColor(w.Stroke)
	if err != nil {
		return fmt.Errorf("invalid stroke: %w", err)
	}
	align, err := ParseAlign(w.TextAlign)
	if err != nil {
		return err
	}
	if !nonNegative(w.StrokeWidth) || !nonNegative(w.FontSize) {
		return errors.New("stroke width and font size must be non-negative numbers")
	}
	var stops []color.RGBA
	for i, g := range w.GradientColors {
		c, err := ParseColor(g)
		if err != nil {
			return fmt.Errorf("invalid gradient color %d: %w", i, err)
		}
		stops = append(stops, c)
	}
	*s = Style{
		Fill:        fill,
		Stroke:      stroke,
		StrokeWidth: w.StrokeWidth,
		FontFamily:  w.FontFamily,
		FontSize:    w.FontSize,
		Bold:        w.Bold,
		Italic:      w.Italic,
		Underline:   w.Underline,
		Align:       align,
		Gradient:    stops,
	}
	return nil
}

type objectJSON struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	X          float64   `json:"x"`
	Y          float64   `json:"y"`
	Width      float64   `json:"width,omitempty"`
	Height     float64   `json:"height,omitempty"`
	EndX       float64   `json:"endX,omitempty"`
	EndY       float64   `json:"endY,omitempty"`
	Radius     float64   `json:"radius,omitempty"`
	Sides      int       `json:"sides,omitempty"`
	InnerRatio float64   `json:"innerRatio,omitempty"`
	Points     []Point   `json:"points,omitempty"`
	Text       string    `json:"text,omitempty"`
	Shape      string    `json:"shape,omitempty"`
	Mode       string    `json:"mode,omitempty"`
	Image      *Bitmap   `json:"image,omitempty"`
	Style      Style     `json:"style"`
}

// MarshalJSON encodes the object with its kind as the "type" tag.
func (o *Object) MarshalJSON() ([]byte, error) {
	w := objectJSON{
		ID:         o.ID,
		Type:       o.Kind.String(),
		X:          o.X,
		Y:          o.Y,
		Width:      o.Width,
		Height:     o.Height,
		EndX:       o.EndX,
		EndY:       o.EndY,
		Radius:     o.Radius,
		Sides:      o.Sides,
		InnerRatio: o.InnerRatio,
		Points:     o.Points,
		Text:       o.Text,
		Image:      o.Bitmap,
		Style:      o.Style,
	}
	switch o.Kind {
	case KindShape:
		w.Shape = o.Shape.String()
	case KindPath:
		w.Mode = o.Stroke.String()
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes an object and checks that the fields its kind needs
// are present and well-formed.
func (o *Object) UnmarshalJSON(data []byte) error {
	var w objectJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	kind, err := ParseKind(w.Type)
	if err != nil {
		return err
	}
	for _, f := range []float64{w.X, w.Y, w.Width, w.Height, w.EndX, w.EndY, w.Radius, w.InnerRatio} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%s: non-finite coordinate", kind)
		}
	}
	obj := Object{
		ID:         w.ID,
		Kind:       kind,
		X:          w.X,
		Y:          w.Y,
		Width:      w.Width,
		Height:     w.Height,
		EndX:       w.EndX,
		EndY:       w.EndY,
		Radius:     w.Radius,
		Sides:      w.Sides,
		InnerRatio: w.InnerRatio,
		Points:     w.Points,
		Text:       w.Text,
		Bitmap:     w.Image,
		Style:      w.Style,
	}
	if obj.ID == uuid.Nil {
		obj.ID = uuid.New()
	}
	switch kind {
	case KindPath:
		if len(w.Points) < 2 {
			return errors.New("path: needs at least two points")
		}
		if obj.Stroke, err = ParseStrokeMode(w.Mode); err != nil {
			return err
		}
	case KindCurve:
		if len(w.Points) != 4 {
			return fmt.Errorf("curve: needs exactly four points, got %d", len(w.Points))
		}
	case KindPolygon:
		if w.Sides < 3 {
			return fmt.Errorf("polygon: needs at least three sides, got %d", w.Sides)
		}
	case KindStar:
		if w.Sides < 2 {
			return fmt.Errorf("star: needs at least two points, got %d", w.Sides)
		}
	case KindShape:
		if obj.Shape, err = ParseShapeKind(w.Shape); err != nil {
			return err
		}
	case KindImage:
		if w.Image == nil {
			return errors.New("image: missing image data")
		}
	}
	*o = obj
	return nil
}

type layerJSON struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Visible bool      `json:"visible"`
	Objects []*Object `json:"objects"`
}

// MarshalJSON encodes the layer and its objects.
func (l *Layer) MarshalJSON() ([]byte, error) {
	objs := l.Objects
	if objs == nil {
		objs = []*Object{}
	}
	return json.Marshal(layerJSON{ID: l.ID, Name: l.Name, Visible: l.Visible, Objects: objs})
}

// UnmarshalJSON decodes a layer. Null entries in the object list are rejected.
func (l *Layer) UnmarshalJSON(data []byte) error {
	var w layerJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	for i, o := range w.Objects {
		if o == nil {
			return fmt.Errorf("layer %q: object %d is null", w.Name, i)
		}
	}
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	*l = Layer{ID: w.ID, Name: w.Name, Visible: w.Visible, Objects: w.Objects}
	return nil
}

func nonNegative(f float64) bool {
	return f >= 0 && !math.IsInf(f, 0)
}
