package editor

import (
	"context"
	"fmt"
	"image"
	"io/fs"
	"os"
	"sync"

	// Decoders for the formats an image asset may arrive in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// AssetLoader produces an image for the image tool. LoadAsset runs on its own
// goroutine and may block; the session delivers the result through Pump.
type AssetLoader interface {
	LoadAsset(ctx context.Context) (image.Image, error)
}

// AssetLoaderFunc adapts a function to the AssetLoader interface.
type AssetLoaderFunc func(ctx context.Context) (image.Image, error)

// LoadAsset calls f.
func (f AssetLoaderFunc) LoadAsset(ctx context.Context) (image.Image, error) {
	return f(ctx)
}

// FileAssetLoader decodes the image at a path chosen by the host, for
// instance from a file dialog or a dropped file. Supported formats are PNG,
// JPEG, GIF, BMP, TIFF and WebP.
type FileAssetLoader struct {
	mu   sync.Mutex
	fsys fs.FS
	path string
}

// NewFileAssetLoader creates a loader reading from fsys. A nil fsys reads the
// host filesystem.
func NewFileAssetLoader(fsys fs.FS) *FileAssetLoader {
	return &FileAssetLoader{fsys: fsys}
}

// SetPath chooses the file the next request decodes.
func (l *FileAssetLoader) SetPath(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.path = path
}

// SetSource chooses both the filesystem and the file the next request
// decodes, for instance a file dropped onto the window.
func (l *FileAssetLoader) SetSource(fsys fs.FS, path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fsys, l.path = fsys, path
}

// Path returns the file the next request decodes.
func (l *FileAssetLoader) Path() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.path
}

// LoadAsset opens and decodes the current path.
func (l *FileAssetLoader) LoadAsset(ctx context.Context) (image.Image, error) {
	l.mu.Lock()
	fsys, path := l.fsys, l.path
	l.mu.Unlock()
	if path == "" {
		return nil, fmt.Errorf("no image file chosen")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		f   fs.File
		err error
	)
	if fsys != nil {
		f, err = fsys.Open(path)
	} else {
		f, err = os.Open(path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
