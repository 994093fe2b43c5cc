package config

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/arnodel/golua/lib"
	rt "github.com/arnodel/golua/runtime"

	"github.com/opd-ai/creographics/internal/scene"
)

// LuaConfigParser parses Lua configuration scripts. The script runs in a
// resource-limited Golua runtime and is expected to assign a table to
// editor.config.
type LuaConfigParser struct {
	runtime *rt.Runtime
	cleanup func()
	mu      sync.Mutex
}

// NewLuaConfigParser creates a new LuaConfigParser with a fresh Lua runtime.
func NewLuaConfigParser() (*LuaConfigParser, error) {
	return NewLuaConfigParserWithOutput(io.Discard)
}

// NewLuaConfigParserWithOutput creates a LuaConfigParser whose print output
// goes to stdout.
func NewLuaConfigParserWithOutput(stdout io.Writer) (*LuaConfigParser, error) {
	if stdout == nil {
		stdout = os.Stdout
	}

	runtime := rt.New(stdout)
	cleanup := lib.LoadAll(runtime)

	return &LuaConfigParser{
		runtime: runtime,
		cleanup: cleanup,
	}, nil
}

// Parse executes a Lua configuration and extracts editor.config. Keys that
// are absent keep their defaults.
func (p *LuaConfigParser) Parse(content []byte) (*Config, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.initEditorGlobal()

	closure, err := p.runtime.CompileAndLoadLuaChunk(
		"config",
		content,
		rt.TableValue(p.runtime.GlobalEnv()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile Lua configuration: %w", err)
	}

	if err := p.execute(closure); err != nil {
		return nil, err
	}

	return p.extractConfig()
}

// execute runs the compiled chunk under CPU and memory limits. Golua panics
// when a hard limit is exceeded; the panic is returned as an error.
func (p *LuaConfigParser) execute(closure *rt.Closure) (err error) {
	ctx := rt.RuntimeContextDef{
		HardLimits: rt.RuntimeResources{
			Cpu:    10_000_000,
			Memory: 50 * 1024 * 1024,
		},
	}
	p.runtime.PushContext(ctx)
	defer p.runtime.PopContext()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("Lua configuration exceeded resource limits: %v", r)
		}
	}()

	thread := p.runtime.MainThread()
	if _, err := rt.Call1(thread, rt.FunctionValue(closure)); err != nil {
		return fmt.Errorf("failed to execute Lua configuration: %w", err)
	}
	return nil
}

// initEditorGlobal resets the editor global to an empty config table so no
// state leaks from a previous parse.
func (p *LuaConfigParser) initEditorGlobal() {
	editor := rt.NewTable()
	editor.Set(rt.StringValue("config"), rt.TableValue(rt.NewTable()))
	p.runtime.GlobalEnv().Set(rt.StringValue("editor"), rt.TableValue(editor))
}

func (p *LuaConfigParser) extractConfig() (*Config, error) {
	cfg := DefaultConfig()

	editorVal := p.runtime.GlobalEnv().Get(rt.StringValue("editor"))
	if editorVal == rt.NilValue {
		return &cfg, nil
	}
	editor, ok := editorVal.TryTable()
	if !ok {
		return nil, fmt.Errorf("editor is not a table")
	}
	configVal := editor.Get(rt.StringValue("config"))
	if configVal == rt.NilValue {
		return &cfg, nil
	}
	table, ok := configVal.TryTable()
	if !ok {
		return nil, fmt.Errorf("editor.config is not a table")
	}
	if err := extractConfigTable(&cfg, table); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// extractConfigTable copies recognised keys of the editor.config table into
// cfg.
func extractConfigTable(cfg *Config, table *rt.Table) error {
	ints := []struct {
		key    string
		target *int
	}{
		{"canvas_width", &cfg.Canvas.Width},
		{"canvas_height", &cfg.Canvas.Height},
		{"history_capacity", &cfg.History.Capacity},
		{"polygon_sides", &cfg.Tools.PolygonSides},
		{"star_points", &cfg.Tools.StarPoints},
	}
	for _, f := range ints {
		if val := getTableInt(table, f.key); val != nil {
			*f.target = *val
		}
	}

	floats := []struct {
		key    string
		target *float64
	}{
		{"stroke_width", &cfg.Style.StrokeWidth},
		{"font_size", &cfg.Style.FontSize},
		{"zoom_min", &cfg.Zoom.Min},
		{"zoom_max", &cfg.Zoom.Max},
		{"zoom_in", &cfg.Zoom.In},
		{"zoom_out", &cfg.Zoom.Out},
		{"commit_threshold", &cfg.Tools.CommitThreshold},
		{"star_inner_ratio", &cfg.Tools.StarInnerRatio},
		{"brush_multiplier", &cfg.Tools.BrushMultiplier},
		{"eraser_width", &cfg.Tools.EraserWidth},
		{"marker_radius", &cfg.Tools.MarkerRadius},
		{"arrow_head", &cfg.Tools.ArrowHead},
	}
	for _, f := range floats {
		if val := getTableFloat(table, f.key); val != nil {
			*f.target = *val
		}
	}

	bools := []struct {
		key    string
		target *bool
	}{
		{"bold", &cfg.Style.Bold},
		{"italic", &cfg.Style.Italic},
		{"underline", &cfg.Style.Underline},
	}
	for _, f := range bools {
		if val := getTableBool(table, f.key); val != nil {
			*f.target = *val
		}
	}

	if val := getTableString(table, "font_family"); val != nil {
		cfg.Style.FontFamily = *val
	}
	if val := getTableString(table, "text_align"); val != nil {
		cfg.Style.TextAlign = *val
	}
	if val := getTableString(table, "shape"); val != nil {
		cfg.Tools.Shape = *val
	}

	colors := []struct {
		key    string
		target *color.RGBA
	}{
		{"background", &cfg.Canvas.Background},
		{"fill", &cfg.Style.Fill},
		{"stroke", &cfg.Style.Stroke},
	}
	for _, f := range colors {
		if val := getTableString(table, f.key); val != nil {
			c, err := scene.ParseColor(*val)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", f.key, err)
			}
			*f.target = c
		}
	}

	stops, err := getTableColors(table, "gradient_colors")
	if err != nil {
		return fmt.Errorf("invalid gradient_colors: %w", err)
	}
	if stops != nil {
		cfg.Tools.GradientColors = stops
	}
	return nil
}

// Close releases resources associated with the parser's Lua runtime.
func (p *LuaConfigParser) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cleanup != nil {
		p.cleanup()
		p.cleanup = nil
	}
	return nil
}

// getTableBool retrieves a boolean value from a Lua table.
// Returns nil if the key doesn't exist or is not a boolean.
func getTableBool(table *rt.Table, key string) *bool {
	val := table.Get(rt.StringValue(key))
	if val == rt.NilValue {
		return nil
	}

	if b, ok := val.TryBool(); ok {
		return &b
	}

	// Accept "yes"/"true" strings as well.
	if s, ok := val.TryString(); ok {
		b := parseBool(s)
		return &b
	}

	return nil
}

// getTableString retrieves a string value from a Lua table with environment
// references expanded. Returns nil if the key doesn't exist or is not a
// string.
func getTableString(table *rt.Table, key string) *string {
	val := table.Get(rt.StringValue(key))
	if val == rt.NilValue {
		return nil
	}

	if s, ok := val.TryString(); ok {
		s = ExpandEnv(s)
		return &s
	}

	return nil
}

// getTableFloat retrieves a float64 value from a Lua table.
// Returns nil if the key doesn't exist or is not a number.
func getTableFloat(table *rt.Table, key string) *float64 {
	val := table.Get(rt.StringValue(key))
	if val == rt.NilValue {
		return nil
	}

	if n, ok := val.TryFloat(); ok {
		return &n
	}

	if n, ok := val.TryInt(); ok {
		f := float64(n)
		return &f
	}

	return nil
}

// getTableInt retrieves an int value from a Lua table.
// Returns nil if the key doesn't exist or is not a number.
func getTableInt(table *rt.Table, key string) *int {
	val := table.Get(rt.StringValue(key))
	if val == rt.NilValue {
		return nil
	}

	if n, ok := val.TryInt(); ok {
		i := int(n)
		return &i
	}

	// Floats are truncated.
	if f, ok := val.TryFloat(); ok {
		i := int(f)
		return &i
	}

	return nil
}

// getTableColors reads a color list given either as a Lua array of strings
// or as one comma-separated string. Returns nil, nil if the key is absent.
func getTableColors(table *rt.Table, key string) ([]color.RGBA, error) {
	val := table.Get(rt.StringValue(key))
	if val == rt.NilValue {
		return nil, nil
	}

	var names []string
	if s, ok := val.TryString(); ok {
		names = strings.Split(ExpandEnv(s), ",")
	} else if arr, ok := val.TryTable(); ok {
		for i := int64(1); ; i++ {
			item := arr.Get(rt.IntValue(i))
			if item == rt.NilValue {
				break
			}
			s, ok := item.TryString()
			if !ok {
				return nil, fmt.Errorf("entry %d is not a string", i)
			}
			names = append(names, ExpandEnv(s))
		}
	} else {
		return nil, fmt.Errorf("expected a string or an array of strings")
	}

	out := make([]color.RGBA, 0, len(names))
	for _, n := range names {
		c, err := scene.ParseColor(n)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// parseBool interprets common truthy strings.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on":
		return true
	default:
		return false
	}
}
