package scene

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"
)

const pngDataURLPrefix = "data:image/png;base64,"

// Bitmap is immutable raster data referenced by image objects. Clones of an
// image object share the same Bitmap.
type Bitmap struct {
	img image.Image
}

// NewBitmap wraps img. The caller must not modify img afterwards.
func NewBitmap(img image.Image) *Bitmap {
	return &Bitmap{img: img}
}

// Image returns the underlying raster.
func (b *Bitmap) Image() image.Image {
	return b.img
}

// Size returns the native pixel dimensions.
func (b *Bitmap) Size() (width, height int) {
	if b == nil || b.img == nil {
		return 0, 0
	}
	r := b.img.Bounds()
	return r.Dx(), r.Dy()
}

// MarshalText encodes the bitmap as a PNG data URL.
func (b *Bitmap) MarshalText() ([]byte, error) {
	if b == nil || b.img == nil {
		return nil, errors.New("empty bitmap")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, b.img); err != nil {
		return nil, fmt.Errorf("encode bitmap: %w", err)
	}
	out := make([]byte, len(pngDataURLPrefix)+base64.StdEncoding.EncodedLen(buf.Len()))
	copy(out, pngDataURLPrefix)
	base64.StdEncoding.Encode(out[len(pngDataURLPrefix):], buf.Bytes())
	return out, nil
}

// UnmarshalText decodes a data URL produced by MarshalText. Any image format
// registered with the image package is accepted inside the URL.
func (b *Bitmap) UnmarshalText(text []byte) error {
	s := string(text)
	comma := strings.IndexByte(s, ',')
	if !strings.HasPrefix(s, "data:image/") || comma < 0 || !strings.HasSuffix(s[:comma], ";base64") {
		return errors.New("bitmap is not a base64 image data URL")
	}
	raw, err := base64.StdEncoding.DecodeString(s[comma+1:])
	if err != nil {
		return fmt.Errorf("decode bitmap: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("decode bitmap: %w", err)
	}
	b.img = img
	return nil
}
