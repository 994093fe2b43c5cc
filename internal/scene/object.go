package scene

import (
	"fmt"
	"math"
	"slices"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Kind tags the variant of a drawable object.
type Kind int

const (
	KindRectangle Kind = iota
	KindEllipse
	KindLine
	KindText
	KindPath
	KindPolygon
	KindStar
	KindGradient
	KindCurve
	KindArrow
	KindImage
	KindShape

	kindCount
)

var kindNames = [kindCount]string{
	KindRectangle: "rectangle",
	KindEllipse:   "circle",
	KindLine:      "line",
	KindText:      "text",
	KindPath:      "path",
	KindPolygon:   "polygon",
	KindStar:      "star",
	KindGradient:  "gradient",
	KindCurve:     "curve",
	KindArrow:     "arrow",
	KindImage:     "image",
	KindShape:     "shape",
}

// String returns the document tag of the kind.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// ParseKind maps a document tag back to its Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown object type: %q", s)
}

// ShapeKind selects the outline of a custom shape.
type ShapeKind int

const (
	ShapeHeart ShapeKind = iota
	ShapeDiamond
	ShapeCloud
	ShapeLightning
)

var shapeNames = []string{"heart", "diamond", "cloud", "lightning"}

func (s ShapeKind) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return "heart"
	}
	return shapeNames[s]
}

// ParseShapeKind parses a custom shape name.
func ParseShapeKind(s string) (ShapeKind, error) {
	if i := slices.Index(shapeNames, s); i >= 0 {
		return ShapeKind(i), nil
	}
	return ShapeHeart, fmt.Errorf("unknown shape: %q", s)
}

// StrokeMode distinguishes the freehand tools that produce path objects.
type StrokeMode int

const (
	// StrokePen draws with the style's stroke width.
	StrokePen StrokeMode = iota
	// StrokeBrush multiplies the stroke width and rounds caps and joins.
	StrokeBrush
	// StrokeEraser paints the background color with a wide round stroke.
	StrokeEraser
)

var strokeNames = []string{"pen", "brush", "eraser"}

func (m StrokeMode) String() string {
	if m < 0 || int(m) >= len(strokeNames) {
		return "pen"
	}
	return strokeNames[m]
}

// ParseStrokeMode parses "pen", "brush" or "eraser".
func ParseStrokeMode(s string) (StrokeMode, error) {
	if s == "" {
		return StrokePen, nil
	}
	if i := slices.Index(strokeNames, s); i >= 0 {
		return StrokeMode(i), nil
	}
	return StrokePen, fmt.Errorf("unknown stroke mode: %q", s)
}

// Object is a drawable object. Which fields are meaningful depends on Kind:
//
//	rectangle, circle, shape, image  X, Y, Width, Height (signed extent while drafting)
//	line, arrow, gradient            X, Y (start) and EndX, EndY
//	polygon, star                    X, Y (centre), Radius, Sides, InnerRatio (star)
//	path, curve                      Points (curve: start, control1, control2, end)
//	text                             X, Y (baseline anchor), Text, Width/Height (measured)
//
// Objects are owned by exactly one Layer.
type Object struct {
	ID   uuid.UUID
	Kind Kind

	X, Y          float64
	Width, Height float64
	EndX, EndY    float64
	Radius        float64
	Sides         int
	InnerRatio    float64
	Points        []Point
	Text          string
	Shape         ShapeKind
	Stroke        StrokeMode
	Bitmap        *Bitmap

	// Style is the attribute snapshot taken when the object was created.
	Style Style
}

// NewObject returns an object of the given kind with a fresh identity and a
// private copy of style.
func NewObject(kind Kind, style Style) *Object {
	return &Object{ID: uuid.New(), Kind: kind, Style: style.Clone()}
}

// Clone returns a deep copy of o with the same identity. Bitmaps are immutable
// and shared.
func (o *Object) Clone() *Object {
	c := *o
	c.Points = slices.Clone(o.Points)
	c.Style = o.Style.Clone()
	return &c
}

// Start returns the anchor point of the object.
func (o *Object) Start() Point {
	if (o.Kind == KindPath || o.Kind == KindCurve) && len(o.Points) > 0 {
		return o.Points[0]
	}
	return Point{X: o.X, Y: o.Y}
}

// Bounds returns the normalized axis-aligned bounding rectangle of o.
func (o *Object) Bounds() Rect {
	switch o.Kind {
	case KindLine, KindArrow, KindGradient:
		return RectFromPoints(Pt(o.X, o.Y), Pt(o.EndX, o.EndY))
	case KindPolygon, KindStar:
		r := math.Abs(o.Radius)
		return Rect{X: o.X - r, Y: o.Y - r, W: 2 * r, H: 2 * r}
	case KindPath, KindCurve:
		return boundsOf(o.Points)
	case KindText:
		w, h := o.textExtent()
		x := o.X
		switch o.Style.Align {
		case AlignCenter:
			x -= w / 2
		case AlignRight:
			x -= w
		}
		return Rect{X: x, Y: o.Y - h, W: w, H: h}
	default:
		return NormRect(o.X, o.Y, o.Width, o.Height)
	}
}

// textExtent returns the measured size of a text object, or an estimate from
// the font size when the object was never measured.
func (o *Object) textExtent() (w, h float64) {
	w, h = o.Width, o.Height
	if h <= 0 {
		h = o.Style.FontSize
	}
	if w <= 0 {
		w = 0.6 * o.Style.FontSize * float64(utf8.RuneCountInString(o.Text))
	}
	return w, h
}

// MoveFrom sets the geometry of o to that of origin translated by d. origin is
// normally a clone of o taken when a move gesture started.
func (o *Object) MoveFrom(origin *Object, d Point) {
	o.X, o.Y = origin.X+d.X, origin.Y+d.Y
	o.EndX, o.EndY = origin.EndX, origin.EndY
	if o.Kind == KindLine || o.Kind == KindArrow || o.Kind == KindGradient {
		o.EndX += d.X
		o.EndY += d.Y
	}
	if len(o.Points) == len(origin.Points) {
		for i, p := range origin.Points {
			o.Points[i] = p.Add(d)
		}
	}
}

// Committable reports whether o is large enough to be kept when a gesture
// ends. threshold is in scene units.
func (o *Object) Committable(threshold float64) bool {
	switch o.Kind {
	case KindRectangle, KindEllipse, KindShape:
		return math.Abs(o.Width) > threshold && math.Abs(o.Height) > threshold
	case KindLine, KindArrow, KindGradient:
		return math.Abs(o.EndX-o.X) > threshold || math.Abs(o.EndY-o.Y) > threshold
	case KindPolygon, KindStar:
		return o.Radius > threshold
	case KindPath:
		return len(o.Points) >= 2
	case KindCurve:
		return len(o.Points) == 4
	case KindText:
		return o.Text != ""
	case KindImage:
		return o.Bitmap != nil && o.Width > 0 && o.Height > 0
	default:
		return false
	}
}

// Normalize flips negative extents of box-shaped objects so that X, Y is the
// top-left corner.
func (o *Object) Normalize() {
	switch o.Kind {
	case KindRectangle, KindEllipse, KindShape, KindImage:
		r := NormRect(o.X, o.Y, o.Width, o.Height)
		o.X, o.Y, o.Width, o.Height = r.X, r.Y, r.W, r.H
	}
}
