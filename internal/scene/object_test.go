package scene

import (
	"image/color"
	"testing"
)

func TestCommittable(t *testing.T) {
	tests := []struct {
		name string
		obj  Object
		want bool
	}{
		{"tiny rectangle", Object{Kind: KindRectangle, Width: 0.5, Height: 0.5}, false},
		{"thin rectangle", Object{Kind: KindRectangle, Width: 10, Height: 1}, false},
		{"rectangle", Object{Kind: KindRectangle, Width: 10, Height: 20}, true},
		{"negative ellipse", Object{Kind: KindEllipse, Width: -5, Height: -5}, true},
		{"flat shape", Object{Kind: KindShape, Width: 10, Height: 0}, false},
		{"horizontal line", Object{Kind: KindLine, X: 0, EndX: 2}, true},
		{"dot arrow", Object{Kind: KindArrow, X: 1, Y: 1, EndX: 1.5, EndY: 1.5}, false},
		{"vertical gradient", Object{Kind: KindGradient, EndY: -3}, true},
		{"small polygon", Object{Kind: KindPolygon, Radius: 1}, false},
		{"star", Object{Kind: KindStar, Radius: 1.5}, true},
		{"single point path", Object{Kind: KindPath, Points: []Point{{0, 0}}}, false},
		{"path", Object{Kind: KindPath, Points: []Point{{0, 0}, {0, 0}}}, true},
		{"three point curve", Object{Kind: KindCurve, Points: make([]Point, 3)}, false},
		{"empty text", Object{Kind: KindText}, false},
		{"text", Object{Kind: KindText, Text: "hi"}, true},
		{"image without bitmap", Object{Kind: KindImage, Width: 3, Height: 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.obj.Committable(1); got != tt.want {
				t.Errorf("Committable(1) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name string
		obj  Object
		want Rect
	}{
		{"rectangle", Object{Kind: KindRectangle, X: 10, Y: 10, Width: 10, Height: 20}, Rect{10, 10, 10, 20}},
		{"reversed line", Object{Kind: KindLine, X: 20, Y: 5, EndX: 10, EndY: 15}, Rect{10, 5, 10, 10}},
		{"polygon", Object{Kind: KindPolygon, X: 50, Y: 50, Radius: 5}, Rect{45, 45, 10, 10}},
		{"path", Object{Kind: KindPath, Points: []Point{{3, 9}, {1, 2}, {7, 4}}}, Rect{1, 2, 6, 7}},
		{
			"right aligned text",
			Object{Kind: KindText, X: 100, Y: 50, Width: 40, Height: 16, Style: Style{Align: AlignRight}},
			Rect{60, 34, 40, 16},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.obj.Bounds(); got != tt.want {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMoveFrom(t *testing.T) {
	line := NewObject(KindLine, DefaultStyle())
	line.X, line.Y, line.EndX, line.EndY = 0, 0, 10, 10
	origin := line.Clone()

	line.MoveFrom(origin, Pt(5, -2))
	line.MoveFrom(origin, Pt(3, 4))
	if line.X != 3 || line.Y != 4 || line.EndX != 13 || line.EndY != 14 {
		t.Errorf("line after move = (%v,%v)-(%v,%v), want (3,4)-(13,14)", line.X, line.Y, line.EndX, line.EndY)
	}

	path := NewObject(KindPath, DefaultStyle())
	path.Points = []Point{{1, 1}, {2, 3}}
	origin = path.Clone()
	path.MoveFrom(origin, Pt(1, 1))
	if path.Points[1] != Pt(3, 4) {
		t.Errorf("path point = %+v, want (3,4)", path.Points[1])
	}
}

func TestNormalize(t *testing.T) {
	o := Object{Kind: KindRectangle, X: 20, Y: 30, Width: -10, Height: -20}
	o.Normalize()
	if o.X != 10 || o.Y != 10 || o.Width != 10 || o.Height != 20 {
		t.Errorf("normalized = (%v,%v,%v,%v), want (10,10,10,20)", o.X, o.Y, o.Width, o.Height)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#ffffff", color.RGBA{255, 255, 255, 255}, false},
		{"#0095FF", color.RGBA{0, 0x95, 0xff, 255}, false},
		{"#f00", color.RGBA{255, 0, 0, 255}, false},
		{"#00000080", color.RGBA{0, 0, 0, 0x80}, false},
		{"Red", color.RGBA{255, 0, 0, 255}, false},
		{"ffffff", color.RGBA{}, true},
		{"#12345", color.RGBA{}, true},
		{"#gggggg", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
	if ToHex(color.RGBA{0, 0x95, 0xff, 255}) != "#0095ff" {
		t.Errorf("ToHex = %s, want #0095ff", ToHex(color.RGBA{0, 0x95, 0xff, 255}))
	}
}
