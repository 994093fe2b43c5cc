package render

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
)

// Frame is a rendered raster surface.
type Frame struct {
	dc  *gg.Context
	img *image.RGBA
}

func newFrame(w, h int) *Frame {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	return &Frame{dc: gg.NewContextForRGBA(img), img: img}
}

// Image returns the frame pixels. The caller must not modify them.
func (f *Frame) Image() *image.RGBA {
	return f.img
}

// Bounds returns the pixel rectangle of the frame.
func (f *Frame) Bounds() image.Rectangle {
	return f.img.Bounds()
}

// Sample returns the color of the pixel at (x, y). Points outside the frame
// report false.
func (f *Frame) Sample(x, y int) (color.RGBA, bool) {
	if !(image.Point{X: x, Y: y}.In(f.img.Bounds())) {
		return color.RGBA{}, false
	}
	return f.img.RGBAAt(x, y), true
}

// EncodePNG writes the frame as PNG.
func (f *Frame) EncodePNG(w io.Writer) error {
	return f.dc.EncodePNG(w)
}

// SavePNG writes the frame to a PNG file.
func (f *Frame) SavePNG(path string) error {
	return f.dc.SavePNG(path)
}
