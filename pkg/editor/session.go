package editor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"sync/atomic"
	"time"

	"github.com/opd-ai/creographics/internal/config"
	"github.com/opd-ai/creographics/internal/history"
	"github.com/opd-ai/creographics/internal/render"
	"github.com/opd-ai/creographics/internal/scene"
	"github.com/opd-ai/creographics/internal/tool"
	"github.com/opd-ai/creographics/internal/viewport"
)

// Configuration format constants for use with NewFromReader.
const (
	// FormatLua indicates a Lua script assigning editor.config.
	FormatLua = "lua"
	// FormatTOML indicates a TOML document.
	FormatTOML = "toml"
)

// Session is one editing session: it owns the current style, the scene, the
// viewport, the undo history and the tool controller, and is the only path
// through which they change.
//
// A Session is not safe for concurrent use. All methods must be called from
// one goroutine, the host's event loop. Asynchronous work (asset loads,
// config reloads) is queued and applied by Pump on that goroutine.
type Session struct {
	cfg      config.Config
	logger   Logger
	metrics  *Metrics
	prompter Prompter
	assets   AssetLoader
	onError  ErrorHandler

	style    scene.Style
	scene    *scene.Scene
	viewport *viewport.Viewport
	history  *history.Manager
	tools    *tool.Controller
	renderer *render.Renderer
	frame    *render.Frame
	preview  *render.Preview
	cursor   scene.Point

	inbox   chan func()
	pending atomic.Int64
	ctx     context.Context
	cancel  context.CancelFunc
	closed  atomic.Bool

	configPath string
	watcher    *configWatch
}

// New creates a session from cfg. A nil cfg selects the defaults; a nil opts
// selects DefaultOptions. The session starts with one empty layer and a
// baseline history snapshot.
func New(cfg *config.Config, opts *Options) (*Session, error) {
	if opts == nil {
		defaultOpts := DefaultOptions()
		opts = &defaultOpts
	}
	c, err := loadConfig(cfg)
	if err != nil {
		return nil, err
	}

	renderer, err := render.New(renderConfig(&c), opts.Fonts)
	if err != nil {
		return nil, fmt.Errorf("renderer init: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = NopLogger()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = NewMetrics()
	}
	inboxSize := opts.InboxSize
	if inboxSize <= 0 {
		inboxSize = DefaultInboxSize
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		cfg:      c,
		logger:   logger,
		metrics:  metrics,
		prompter: opts.Prompter,
		assets:   opts.Assets,
		onError:  opts.ErrorHandler,
		style:    styleFromConfig(c.Style),
		scene:    scene.New(),
		viewport: viewport.New(zoomLimits(c.Zoom)),
		history:  history.New(c.History.Capacity),
		tools:    tool.NewController(toolSettings(c.Tools)),
		renderer: renderer,
		inbox:    make(chan func(), inboxSize),
		ctx:      ctx,
		cancel:   cancel,
	}
	s.history.Reset(s.scene)
	s.updateGauges()
	return s, nil
}

// NewFromFile creates a session configured from a Lua or TOML file. The file
// is remembered for ReloadConfig and, with Options.WatchConfig, watched for
// changes.
func NewFromFile(path string, opts *Options) (*Session, error) {
	cfg, err := parseConfigFile(path)
	if err != nil {
		return nil, err
	}
	s, err := New(cfg, opts)
	if err != nil {
		return nil, err
	}
	s.configPath = path

	if opts != nil && opts.WatchConfig {
		if err := s.watchConfig(opts.WatchDebounce); err != nil {
			s.Close()
			return nil, fmt.Errorf("watch config: %w", err)
		}
	}
	return s, nil
}

// NewFromFS creates a session configured from a file inside fsys, such as an
// embed.FS.
func NewFromFS(fsys fs.FS, path string, opts *Options) (*Session, error) {
	parser, err := config.NewParser()
	if err != nil {
		return nil, fmt.Errorf("parser init: %w", err)
	}
	defer parser.Close()

	cfg, err := parser.ParseFromFS(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("parse config from FS: %w", err)
	}
	return New(cfg, opts)
}

// NewFromReader creates a session from configuration content in the given
// format, FormatLua or FormatTOML.
func NewFromReader(r io.Reader, format string, opts *Options) (*Session, error) {
	if format != FormatLua && format != FormatTOML {
		return nil, fmt.Errorf("invalid format: %s (expected '%s' or '%s')", format, FormatLua, FormatTOML)
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	parser, err := config.NewParser()
	if err != nil {
		return nil, fmt.Errorf("parser init: %w", err)
	}
	defer parser.Close()

	cfg, err := parser.ParseReader(bytes.NewReader(content), format)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return New(cfg, opts)
}

func parseConfigFile(path string) (*config.Config, error) {
	parser, err := config.NewParser()
	if err != nil {
		return nil, fmt.Errorf("parser init: %w", err)
	}
	defer parser.Close()

	cfg, err := parser.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Close stops background work. Pending asset completions are dropped.
// Safe to call multiple times.
func (s *Session) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	s.cancel()
	if s.watcher != nil {
		<-s.watcher.done
	}
	return nil
}

// Config returns the configuration in effect.
func (s *Session) Config() config.Config {
	return s.cfg
}

// Metrics returns the metrics collector for this session.
func (s *Session) Metrics() *Metrics {
	return s.metrics
}

// SetErrorHandler registers a callback for asynchronous failures.
func (s *Session) SetErrorHandler(h ErrorHandler) {
	s.onError = h
}

// Scene returns the live scene for read access. Mutate it only through
// Session methods, or history and selection invariants break.
func (s *Session) Scene() *scene.Scene {
	return s.scene
}

// Zoom returns the current zoom factor.
func (s *Session) Zoom() float64 {
	return s.viewport.Zoom()
}

// Preview returns the transient preview of the gesture in progress, or nil.
func (s *Session) Preview() *render.Preview {
	return s.preview
}

// Render draws the scene, selection outline and preview at the current zoom.
// The returned frame is reused by the next call.
func (s *Session) Render() *render.Frame {
	start := time.Now()
	s.frame = s.renderer.Render(s.scene, s.viewport.Zoom(), s.preview)
	s.metrics.RecordRenderLatency(time.Since(start))
	return s.frame
}

// Frame returns the most recently rendered frame, rendering one if needed.
func (s *Session) Frame() *render.Frame {
	if s.frame == nil {
		return s.Render()
	}
	return s.frame
}

// record snapshots the scene after a completed edit.
func (s *Session) record() {
	s.history.Record(s.scene)
	s.metrics.IncrementSnapshots()
	s.updateGauges()
}

func (s *Session) updateGauges() {
	objects := 0
	for _, l := range s.scene.Layers() {
		objects += len(l.Objects)
	}
	s.metrics.SetSceneSize(objects, s.scene.LayerCount())
}

// report logs err and hands it to the error handler.
func (s *Session) report(err error) {
	s.metrics.IncrementErrors()
	s.logger.Warn("editor error", "error", err)
	safeInvoke(s.onError, err, s.logger)
}

// env returns the tool capability view of the session.
func (s *Session) env() *sessionEnv {
	return (*sessionEnv)(s)
}
