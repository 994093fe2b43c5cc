package editor

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/uuid"

	"github.com/opd-ai/creographics/internal/scene"
	"github.com/opd-ai/creographics/internal/tool"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// gatedLoader blocks each load until release is closed.
type gatedLoader struct {
	release chan struct{}
	img     image.Image
	err     error
}

func (g *gatedLoader) LoadAsset(ctx context.Context) (image.Image, error) {
	select {
	case <-g.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return g.img, g.err
}

func waitAssets(t *testing.T, s *Session) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Wait(ctx); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
}

func TestImageToolPlacesAsset(t *testing.T) {
	loader := &gatedLoader{release: make(chan struct{}), img: solidImage(30, 20, red)}
	opts := DefaultOptions()
	opts.Assets = loader
	s := newTestSession(t, &opts)
	useTool(t, s, tool.Image)

	s.AddLayer()
	if err := s.SelectLayer(1); err != nil {
		t.Fatalf("SelectLayer: %v", err)
	}
	click(s, 40, 50)
	if s.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", s.Pending())
	}

	// The user moves on before the asset arrives.
	if err := s.SelectLayer(0); err != nil {
		t.Fatalf("SelectLayer: %v", err)
	}
	useTool(t, s, tool.Rectangle)

	close(loader.release)
	waitAssets(t, s)

	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after Wait", s.Pending())
	}
	l, _ := s.Scene().Layer(1)
	if len(l.Objects) != 1 {
		t.Fatalf("layer 1 holds %d objects, want 1", len(l.Objects))
	}
	o := l.Objects[0]
	if o.Kind != scene.KindImage || o.X != 40 || o.Y != 50 || o.Width != 30 || o.Height != 20 {
		t.Errorf("image object = %+v", o)
	}
	if got := s.Metrics().Snapshot().AssetsLoaded; got != 1 {
		t.Errorf("AssetsLoaded = %d, want 1", got)
	}
	if s.History().Len() != 2 {
		t.Errorf("history len = %d, want 2", s.History().Len())
	}
}

func TestImageToolFallsBackWhenLayerDeleted(t *testing.T) {
	loader := &gatedLoader{release: make(chan struct{}), img: solidImage(5, 5, blue)}
	opts := DefaultOptions()
	opts.Assets = loader
	s := newTestSession(t, &opts)
	useTool(t, s, tool.Image)

	s.AddLayer()
	_ = s.SelectLayer(1)
	click(s, 10, 10)
	if err := s.DeleteCurrentLayer(); err != nil {
		t.Fatalf("DeleteCurrentLayer: %v", err)
	}

	close(loader.release)
	waitAssets(t, s)

	l, _ := s.Scene().Layer(0)
	if len(l.Objects) != 1 || l.Objects[0].Kind != scene.KindImage {
		t.Errorf("layer 0 objects = %v, want the image", l.Objects)
	}
}

func TestImageToolFailures(t *testing.T) {
	loadErr := errors.New("dialog dismissed")
	tests := []struct {
		name   string
		loader AssetLoader
		want   error
	}{
		{
			name: "loader error",
			loader: AssetLoaderFunc(func(context.Context) (image.Image, error) {
				return nil, loadErr
			}),
			want: ErrAssetLoad,
		},
		{
			name:   "no loader",
			loader: nil,
			want:   ErrNoAssetLoader,
		},
		{
			name: "empty image",
			loader: AssetLoaderFunc(func(context.Context) (image.Image, error) {
				return image.NewRGBA(image.Rect(0, 0, 0, 0)), nil
			}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reported []error
			opts := DefaultOptions()
			opts.Assets = tt.loader
			opts.ErrorHandler = func(err error) { reported = append(reported, err) }
			s := newTestSession(t, &opts)
			useTool(t, s, tool.Image)

			click(s, 10, 10)
			waitAssets(t, s)

			if len(reported) != 1 {
				t.Fatalf("reported %d errors, want 1", len(reported))
			}
			if tt.want != nil && !errors.Is(reported[0], tt.want) {
				t.Errorf("error %v does not wrap %v", reported[0], tt.want)
			}
			if n := len(allObjects(s)); n != 0 {
				t.Errorf("objects = %d, want 0", n)
			}
			if s.History().Len() != 1 {
				t.Errorf("history len = %d, want 1", s.History().Len())
			}
		})
	}
}

func TestErrorHandlerPanicRecovered(t *testing.T) {
	opts := DefaultOptions()
	opts.ErrorHandler = func(error) { panic("boom") }
	s := newTestSession(t, &opts)
	useTool(t, s, tool.Image)

	click(s, 10, 10)
	waitAssets(t, s)

	if got := s.Metrics().Snapshot().AssetFailures; got != 1 {
		t.Errorf("AssetFailures = %d, want 1", got)
	}
}

func TestWaitAfterClose(t *testing.T) {
	loader := &gatedLoader{release: make(chan struct{})}
	opts := DefaultOptions()
	opts.Assets = loader
	s := newTestSession(t, &opts)
	useTool(t, s, tool.Image)
	click(s, 10, 10)

	s.Close()
	if err := s.Wait(context.Background()); !errors.Is(err, ErrClosed) {
		t.Errorf("Wait after Close = %v, want ErrClosed", err)
	}
	if s.Post(func() {}) {
		t.Error("Post succeeded on a closed session")
	}
}

func TestPostAndPump(t *testing.T) {
	s := newTestSession(t, nil)
	ran := 0
	for i := 0; i < 3; i++ {
		if !s.Post(func() { ran++ }) {
			t.Fatal("Post failed")
		}
	}
	if n := s.Pump(); n != 3 || ran != 3 {
		t.Errorf("Pump() = %d, ran = %d, want 3 and 3", n, ran)
	}
	if n := s.Pump(); n != 0 {
		t.Errorf("second Pump() = %d, want 0", n)
	}
}

func TestFileAssetLoader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dot.png")
	if err := os.WriteFile(path, encodePNG(t, solidImage(4, 3, red)), 0o644); err != nil {
		t.Fatalf("write png: %v", err)
	}

	t.Run("host filesystem", func(t *testing.T) {
		l := NewFileAssetLoader(nil)
		l.SetPath(path)
		img, err := l.LoadAsset(context.Background())
		if err != nil {
			t.Fatalf("LoadAsset failed: %v", err)
		}
		if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
			t.Errorf("bounds = %v, want 4x3", b)
		}
	})

	fsys := fstest.MapFS{
		"ok.png":  {Data: encodePNG(t, solidImage(2, 2, blue))},
		"bad.png": {Data: []byte("not an image")},
	}
	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"decodes", "ok.png", ""},
		{"bad data", "bad.png", "decode bad.png"},
		{"missing", "gone.png", "open gone.png"},
		{"no path", "", "no image file chosen"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewFileAssetLoader(fsys)
			l.SetPath(tt.path)
			img, err := l.LoadAsset(context.Background())
			if tt.wantErr == "" {
				if err != nil || img == nil {
					t.Fatalf("LoadAsset = %v, %v", img, err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		l := NewFileAssetLoader(fsys)
		l.SetPath("ok.png")
		if _, err := l.LoadAsset(ctx); !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}

func TestFileAssetLoaderSetSource(t *testing.T) {
	l := NewFileAssetLoader(nil)
	l.SetSource(fstest.MapFS{"drop/pic.png": {Data: encodePNG(t, solidImage(6, 2, red))}}, "drop/pic.png")
	if l.Path() != "drop/pic.png" {
		t.Errorf("Path() = %q", l.Path())
	}
	img, err := l.LoadAsset(context.Background())
	if err != nil {
		t.Fatalf("LoadAsset failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 2 {
		t.Errorf("bounds = %v, want 6x2", b)
	}
}

func TestAssetRequestCarriesID(t *testing.T) {
	var ids []uuid.UUID
	opts := DefaultOptions()
	opts.Assets = AssetLoaderFunc(func(ctx context.Context) (image.Image, error) {
		id, ok := RequestIDFromContext(ctx)
		if !ok {
			return nil, errors.New("no request id")
		}
		ids = append(ids, id)
		return solidImage(2, 2, red), nil
	})
	s := newTestSession(t, &opts)
	useTool(t, s, tool.Image)

	click(s, 10, 10)
	waitAssets(t, s)
	click(s, 20, 20)
	waitAssets(t, s)

	if len(ids) != 2 || ids[0] == ids[1] || ids[0] == uuid.Nil {
		t.Errorf("request ids = %v, want two distinct ids", ids)
	}
	if _, ok := RequestIDFromContext(context.Background()); ok {
		t.Error("plain context reported a request id")
	}
}
