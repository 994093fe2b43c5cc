// Package host runs an editor session in an ebiten window. It turns mouse,
// wheel and keyboard input into session calls and shows the rendered frame.
package host

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/opd-ai/creographics/internal/config"
	"github.com/opd-ai/creographics/internal/render"
	"github.com/opd-ai/creographics/internal/tool"
	"github.com/opd-ai/creographics/pkg/editor"
)

// ErrGameTerminated is returned when the game loop is terminated via context cancellation.
var ErrGameTerminated = errors.New("game terminated")

// ErrNoProjectPath is reported by save and open shortcuts when the window was
// started without a project file.
var ErrNoProjectPath = errors.New("no project file given")

// Session is the part of an editor session the window drives.
type Session interface {
	Config() config.Config
	Pump() int
	PointerDown(x, y float64, mods tool.Modifiers)
	PointerMove(x, y float64, mods tool.Modifiers)
	PointerUp(x, y float64, mods tool.Modifiers)
	Wheel(dy float64, precise bool) bool
	ZoomIn()
	ZoomOut()
	Tool() tool.Name
	SetTool(n tool.Name) error
	Undo() bool
	Redo() bool
	DeleteSelected() bool
	NewDocument()
	SaveFile(path string) error
	LoadFile(path string) error
	Render() *render.Frame
}

var _ Session = (*editor.Session)(nil)

// DropTarget receives image files dropped onto the window.
type DropTarget interface {
	SetSource(fsys fs.FS, path string)
}

// Options configures a Game.
type Options struct {
	// Title is the window title.
	Title string
	// ProjectPath is the JSON document used by the save and open shortcuts.
	ProjectPath string
	// Drops, when set, receives dropped image files and the image tool is
	// activated so the next click places the image.
	Drops DropTarget
	// Logger receives shortcut and error messages.
	Logger editor.Logger
}

// Game implements ebiten.Game for an editor session.
type Game struct {
	session Session
	input   Input
	opts    Options
	logger  editor.Logger

	canvas  *ebiten.Image
	dirty   bool
	lastX   int
	lastY   int
	pressed bool

	mu      sync.Mutex
	ctx     context.Context
	running bool
}

// NewGame creates a Game reading the real input devices.
func NewGame(s Session, opts Options) *Game {
	return NewGameWithInput(s, &ebitenInput{}, opts)
}

// NewGameWithInput creates a Game with a custom input source.
// This is useful for testing.
func NewGameWithInput(s Session, in Input, opts Options) *Game {
	if opts.Title == "" {
		opts.Title = "creographics"
	}
	logger := opts.Logger
	if logger == nil {
		logger = editor.NopLogger()
	}
	return &Game{session: s, input: in, opts: opts, logger: logger, dirty: true}
}

// SetContext sets a context for the game loop. When the context is cancelled,
// the game loop will terminate gracefully.
func (g *Game) SetContext(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ctx = ctx
}

// Update implements ebiten.Game.Update. It runs queued session work, then
// applies this tick's input.
func (g *Game) Update() error {
	g.mu.Lock()
	ctx := g.ctx
	g.mu.Unlock()
	if ctx != nil {
		select {
		case <-ctx.Done():
			return ErrGameTerminated
		default:
		}
	}

	if g.session.Pump() > 0 {
		g.dirty = true
	}
	g.handleDrop()
	g.handleKeys()
	g.handlePointer()
	g.handleWheel()
	return nil
}

func (g *Game) handleDrop() {
	if g.opts.Drops == nil {
		return
	}
	fsys := g.input.DroppedFiles()
	if fsys == nil {
		return
	}
	name, ok := firstImage(fsys)
	if !ok {
		g.logger.Warn("dropped files contain no image")
		return
	}
	g.opts.Drops.SetSource(fsys, name)
	g.run(ActionTool, g.session.SetTool(tool.Image))
	g.logger.Info("image dropped", "file", name)
}

// firstImage returns the first file in fsys with an image extension.
func firstImage(fsys fs.FS) (string, bool) {
	var found string
	_ = fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		switch strings.ToLower(path.Ext(p)) {
		case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp":
			found = p
			return fs.SkipAll
		}
		return nil
	})
	return found, found != ""
}

func (g *Game) handleKeys() {
	keys := g.input.JustPressedKeys()
	if len(keys) == 0 {
		return
	}
	mods := g.input.Modifiers()
	for _, k := range keys {
		cmd, ok := Lookup(Chord{Key: k, Ctrl: mods&tool.ModCtrl != 0, Shift: mods&tool.ModShift != 0})
		if !ok {
			continue
		}
		g.Execute(cmd)
	}
}

// Execute performs a shortcut command against the session.
func (g *Game) Execute(cmd Command) {
	g.dirty = true
	s := g.session
	switch cmd.Action {
	case ActionTool:
		g.run(cmd.Action, s.SetTool(cmd.Tool))
	case ActionUndo:
		s.Undo()
	case ActionRedo:
		s.Redo()
	case ActionDelete:
		s.DeleteSelected()
	case ActionEscape:
		if s.Tool() != tool.Select {
			g.run(cmd.Action, s.SetTool(tool.Select))
		}
	case ActionZoomIn:
		s.ZoomIn()
	case ActionZoomOut:
		s.ZoomOut()
	case ActionNew:
		s.NewDocument()
	case ActionSave:
		g.run(cmd.Action, g.withProject(s.SaveFile))
	case ActionOpen:
		g.run(cmd.Action, g.withProject(s.LoadFile))
	}
}

func (g *Game) withProject(fn func(string) error) error {
	if g.opts.ProjectPath == "" {
		return ErrNoProjectPath
	}
	return fn(g.opts.ProjectPath)
}

func (g *Game) run(a Action, err error) {
	if err != nil {
		g.logger.Error("shortcut failed", "action", a, "error", err)
	}
}

func (g *Game) handlePointer() {
	x, y := g.input.CursorPosition()
	fx, fy := float64(x), float64(y)
	mods := g.input.Modifiers()

	switch {
	case g.input.MouseJustPressed():
		g.pressed = true
		g.session.PointerDown(fx, fy, mods)
		g.dirty = true
	case x != g.lastX || y != g.lastY:
		g.session.PointerMove(fx, fy, mods)
		g.dirty = true
	}
	if g.pressed && g.input.MouseJustReleased() {
		g.pressed = false
		g.session.PointerUp(fx, fy, mods)
		g.dirty = true
	}
	g.lastX, g.lastY = x, y
}

// handleWheel forwards vertical wheel motion. Ebiten reports scrolling up as
// positive, the session expects positive to mean away from the user.
func (g *Game) handleWheel() {
	_, dy := g.input.Wheel()
	if dy == 0 {
		return
	}
	precise := g.input.Modifiers()&tool.ModCtrl != 0
	if g.session.Wheel(-dy, precise) {
		g.dirty = true
	}
}

// Draw implements ebiten.Game.Draw. The scene is re-rendered only after
// something changed.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.dirty || g.canvas == nil {
		frame := g.session.Render()
		img := frame.Image()
		b := img.Bounds()
		if g.canvas == nil || g.canvas.Bounds().Size() != b.Size() {
			if g.canvas != nil {
				g.canvas.Deallocate()
			}
			g.canvas = ebiten.NewImage(b.Dx(), b.Dy())
		}
		g.canvas.WritePixels(img.Pix)
		g.dirty = false
	}
	screen.DrawImage(g.canvas, nil)
}

// Layout implements ebiten.Game.Layout. The logical screen is the canvas, so
// cursor positions arrive in frame pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	c := g.session.Config().Canvas
	return c.Width, c.Height
}

// Run starts the Ebiten game loop.
// This function blocks until the window is closed.
func (g *Game) Run() error {
	c := g.session.Config().Canvas
	ebiten.SetWindowSize(c.Width, c.Height)
	ebiten.SetWindowTitle(g.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g.mu.Lock()
	g.running = true
	g.mu.Unlock()

	err := ebiten.RunGame(g)

	g.mu.Lock()
	g.running = false
	g.mu.Unlock()

	if errors.Is(err, ErrGameTerminated) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// IsRunning returns whether the game loop is currently running.
func (g *Game) IsRunning() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running
}
