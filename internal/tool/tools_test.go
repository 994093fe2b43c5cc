package tool

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/opd-ai/creographics/internal/scene"
)

func gesture(env *fakeEnv, tl Tool, pts ...Pointer) {
	tl.PointerDown(env, pts[0])
	for _, p := range pts[1:] {
		tl.PointerMove(env, p)
	}
	tl.PointerUp(env, pts[len(pts)-1])
}

func TestRectangleCommitThreshold(t *testing.T) {
	t.Run("below threshold discarded", func(t *testing.T) {
		env := newFakeEnv()
		gesture(env, NewRectangleTool(1), at(10, 10), at(10.5, 10.5))
		if env.commits != 0 || len(env.objects(0)) != 0 {
			t.Errorf("commits = %d, objects = %d, want none", env.commits, len(env.objects(0)))
		}
		if env.preview != nil {
			t.Error("preview left behind after discard")
		}
	})

	t.Run("above threshold committed", func(t *testing.T) {
		env := newFakeEnv()
		gesture(env, NewRectangleTool(1), at(10, 10), at(20, 30))
		objs := env.objects(0)
		if env.commits != 1 || len(objs) != 1 {
			t.Fatalf("commits = %d, objects = %d, want 1", env.commits, len(objs))
		}
		o := objs[0]
		if o.X != 10 || o.Y != 10 || o.Width != 10 || o.Height != 20 {
			t.Errorf("rectangle = (%v,%v,%v,%v), want (10,10,10,20)", o.X, o.Y, o.Width, o.Height)
		}
	})

	t.Run("release without move uses release point", func(t *testing.T) {
		env := newFakeEnv()
		tl := NewRectangleTool(1)
		tl.PointerDown(env, at(10, 10))
		tl.PointerUp(env, at(20, 30))
		if env.commits != 1 {
			t.Errorf("commits = %d, want 1", env.commits)
		}
	})

	t.Run("reverse drag normalized", func(t *testing.T) {
		env := newFakeEnv()
		gesture(env, NewRectangleTool(1), at(20, 30), at(10, 10))
		o := env.objects(0)[0]
		if o.X != 10 || o.Y != 10 || o.Width != 10 || o.Height != 20 {
			t.Errorf("rectangle = (%v,%v,%v,%v), want (10,10,10,20)", o.X, o.Y, o.Width, o.Height)
		}
	})
}

func TestDragToolsCaptureStyle(t *testing.T) {
	env := newFakeEnv()
	env.style.Fill = color.RGBA{R: 9, A: 255}
	tl := NewEllipseTool(1)
	tl.PointerDown(env, at(0, 0))
	env.style.Fill = color.RGBA{B: 9, A: 255}
	tl.PointerUp(env, at(20, 20))

	if got := env.objects(0)[0].Style.Fill; got.R != 9 {
		t.Errorf("fill = %v, want the style at press time", got)
	}
}

func TestDragToolsCommitToCurrentLayer(t *testing.T) {
	env := newFakeEnv()
	env.scene.AddLayer()
	_ = env.scene.SetCurrent(1)
	gesture(env, NewLineTool(1), at(0, 0), at(0, 5))
	if len(env.objects(1)) != 1 {
		t.Errorf("line not committed to current layer")
	}
}

func TestDragToolsPreviewWhileDragging(t *testing.T) {
	env := newFakeEnv()
	tl := NewArrowTool(1)
	tl.PointerDown(env, at(0, 0))
	tl.PointerMove(env, at(30, 40))
	if env.preview == nil || env.preview.Object == nil {
		t.Fatal("no preview object during drag")
	}
	if env.preview.Object.EndX != 30 || env.preview.Object.EndY != 40 {
		t.Errorf("preview end = (%v,%v), want (30,40)", env.preview.Object.EndX, env.preview.Object.EndY)
	}
	if len(env.objects(0)) != 0 {
		t.Error("preview inserted into the scene")
	}
}

func TestMoveWithoutPressIgnored(t *testing.T) {
	env := newFakeEnv()
	NewRectangleTool(1).PointerMove(env, at(5, 5))
	if env.preview != nil {
		t.Error("move without press produced a preview")
	}
}

func TestRadialTools(t *testing.T) {
	tests := []struct {
		name   string
		tool   Tool
		to     Pointer
		commit bool
	}{
		{"polygon", NewPolygonTool(1, 6), at(53, 54), true},
		{"tiny polygon", NewPolygonTool(1, 6), at(50.5, 50.5), false},
		{"star", NewStarTool(1, 5, 0.5), at(50, 60), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newFakeEnv()
			gesture(env, tt.tool, at(50, 50), tt.to)
			if got := env.commits == 1; got != tt.commit {
				t.Fatalf("committed = %v, want %v", got, tt.commit)
			}
			if !tt.commit {
				return
			}
			o := env.objects(0)[0]
			if o.X != 50 || o.Y != 50 || o.Radius != scene.Pt(50, 50).Dist(tt.to.Pos) {
				t.Errorf("object = centre (%v,%v) radius %v", o.X, o.Y, o.Radius)
			}
		})
	}
}

func TestStarParameters(t *testing.T) {
	env := newFakeEnv()
	tl := NewStarTool(1, 5, 0.5)
	tl.Points, tl.InnerRatio = 7, 0.3
	gesture(env, tl, at(0, 0), at(10, 0))
	o := env.objects(0)[0]
	if o.Sides != 7 || o.InnerRatio != 0.3 {
		t.Errorf("star = %d points ratio %v, want 7 and 0.3", o.Sides, o.InnerRatio)
	}
}

func TestGradientUsesToolColors(t *testing.T) {
	env := newFakeEnv()
	tl := NewGradientTool(1, DefaultSettings().GradientColors)
	gesture(env, tl, at(0, 0), at(100, 0))
	o := env.objects(0)[0]
	if len(o.Style.Gradient) != 2 || o.Style.Gradient[0] != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("gradient stops = %v, want red to green", o.Style.Gradient)
	}
	tl.Colors[0] = color.RGBA{B: 255, A: 255}
	if o.Style.Gradient[0].B != 0 {
		t.Error("committed gradient shares stops with the tool")
	}
}

func TestShapeTool(t *testing.T) {
	env := newFakeEnv()
	tl := NewShapeTool(1, scene.ShapeHeart)
	tl.Shape = scene.ShapeLightning
	gesture(env, tl, at(0, 0), at(20, 1))
	if env.commits != 0 {
		t.Fatal("flat shape committed")
	}
	gesture(env, tl, at(0, 0), at(20, 20))
	if o := env.objects(0)[0]; o.Shape != scene.ShapeLightning {
		t.Errorf("shape = %v, want lightning", o.Shape)
	}
}

func TestFreehand(t *testing.T) {
	tests := []struct {
		name string
		tool *FreehandTool
		mode scene.StrokeMode
	}{
		{"pen", NewPenTool(), scene.StrokePen},
		{"brush", NewBrushTool(), scene.StrokeBrush},
		{"eraser", NewEraserTool(), scene.StrokeEraser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newFakeEnv()
			gesture(env, tt.tool, at(0, 0), at(1, 1), at(2, 4))
			objs := env.objects(0)
			if len(objs) != 1 {
				t.Fatalf("objects = %d, want 1", len(objs))
			}
			if objs[0].Stroke != tt.mode || len(objs[0].Points) != 3 {
				t.Errorf("path = mode %v with %d points", objs[0].Stroke, len(objs[0].Points))
			}

			env = newFakeEnv()
			tt.tool.PointerDown(env, at(0, 0))
			tt.tool.PointerUp(env, at(0, 0))
			if env.commits != 0 {
				t.Error("single-point path committed")
			}
		})
	}
}

func TestCurveFourClicks(t *testing.T) {
	env := newFakeEnv()
	c := NewController(DefaultSettings())
	_ = c.SetActive(env, Curve)
	a, b, cc, d := at(0, 0), at(10, 20), at(30, 20), at(40, 0)

	for i, p := range []Pointer{a, b, cc} {
		c.PointerDown(env, p)
		c.PointerUp(env, p)
		if env.commits != 0 {
			t.Fatalf("committed after %d clicks", i+1)
		}
		if env.preview == nil || len(env.preview.Markers) != i+1 {
			t.Fatalf("markers after %d clicks = %+v", i+1, env.preview)
		}
	}
	c.PointerDown(env, d)
	c.PointerUp(env, d)

	objs := env.objects(0)
	if env.commits != 1 || len(objs) != 1 || objs[0].Kind != scene.KindCurve {
		t.Fatalf("commits = %d, objects = %+v, want one curve", env.commits, objs)
	}
	want := []scene.Point{a.Pos, b.Pos, cc.Pos, d.Pos}
	for i, p := range objs[0].Points {
		if p != want[i] {
			t.Errorf("point %d = %+v, want %+v", i, p, want[i])
		}
	}
	if n := len(c.Tool(Curve).(*CurveTool).Pending()); n != 0 {
		t.Errorf("buffer holds %d points after commit, want 0", n)
	}
	if env.preview != nil {
		t.Error("markers left after commit")
	}
}

func TestCurveBufferSurvivesToolSwitch(t *testing.T) {
	env := newFakeEnv()
	c := NewController(DefaultSettings())
	_ = c.SetActive(env, Curve)
	c.PointerDown(env, at(1, 1))
	c.PointerUp(env, at(1, 1))
	_ = c.SetActive(env, Select)
	_ = c.SetActive(env, Curve)
	if n := len(c.Tool(Curve).(*CurveTool).Pending()); n != 1 {
		t.Errorf("buffer = %d points, want 1", n)
	}
}

func TestSelectTool(t *testing.T) {
	env := newFakeEnv()
	o := scene.NewObject(scene.KindRectangle, scene.DefaultStyle())
	o.X, o.Y, o.Width, o.Height = 0, 0, 10, 10
	_ = env.scene.AddObject(0, o)

	SelectTool{}.PointerDown(env, at(5, 5))
	if env.scene.Selection() != o {
		t.Fatal("object under pointer not selected")
	}
	SelectTool{}.PointerDown(env, at(50, 50))
	if env.scene.Selection() != nil {
		t.Error("selection kept after clicking empty space")
	}
	if env.commits != 0 || env.checkpoints != 0 {
		t.Error("selection change recorded history")
	}
}

func TestMoveTool(t *testing.T) {
	newScene := func() (*fakeEnv, *scene.Object) {
		env := newFakeEnv()
		o := scene.NewObject(scene.KindLine, scene.DefaultStyle())
		o.X, o.Y, o.EndX, o.EndY = 0, 0, 10, 10
		_ = env.scene.AddObject(0, o)
		env.scene.Select(o)
		return env, o
	}

	t.Run("translates live", func(t *testing.T) {
		env, o := newScene()
		tl := &MoveTool{}
		tl.PointerDown(env, at(5, 5))
		tl.PointerMove(env, at(8, 5))
		if o.X != 3 || o.EndX != 13 {
			t.Errorf("after move x = %v endX = %v, want 3 and 13", o.X, o.EndX)
		}
		tl.PointerMove(env, at(5, 9))
		if o.X != 0 || o.Y != 4 || o.EndY != 14 {
			t.Errorf("after second move = (%v,%v) end y %v, want (0,4) and 14", o.X, o.Y, o.EndY)
		}
		tl.PointerUp(env, at(5, 9))
		if env.checkpoints != 1 {
			t.Errorf("checkpoints = %d, want 1", env.checkpoints)
		}
		if env.preview != nil {
			t.Error("move tool set a preview")
		}
	})

	t.Run("no displacement no snapshot", func(t *testing.T) {
		env, _ := newScene()
		gesture(env, &MoveTool{}, at(5, 5), at(5, 5))
		if env.checkpoints != 0 {
			t.Errorf("checkpoints = %d, want 0", env.checkpoints)
		}
	})

	t.Run("no selection", func(t *testing.T) {
		env, o := newScene()
		env.scene.Select(nil)
		gesture(env, &MoveTool{}, at(5, 5), at(50, 50))
		if o.X != 0 || env.checkpoints != 0 {
			t.Error("move tool acted without a selection")
		}
	})

	t.Run("cancel restores position", func(t *testing.T) {
		env, o := newScene()
		tl := &MoveTool{}
		tl.PointerDown(env, at(5, 5))
		tl.PointerMove(env, at(25, 35))
		tl.Cancel()
		tl.PointerUp(env, at(25, 35))
		if o.X != 0 || o.Y != 0 || o.EndX != 10 || o.EndY != 10 {
			t.Errorf("after cancel = (%v,%v)-(%v,%v), want (0,0)-(10,10)", o.X, o.Y, o.EndX, o.EndY)
		}
		if env.checkpoints != 0 {
			t.Errorf("checkpoints = %d, want 0", env.checkpoints)
		}
	})

	t.Run("target removed mid drag", func(t *testing.T) {
		env, o := newScene()
		tl := &MoveTool{}
		tl.PointerDown(env, at(5, 5))
		env.scene.RemoveObject(o)
		tl.PointerMove(env, at(9, 9))
		tl.PointerUp(env, at(9, 9))
		if env.checkpoints != 0 {
			t.Error("snapshot recorded for a removed object")
		}
	})
}

func TestEyedropper(t *testing.T) {
	env := newFakeEnv()
	env.sample, env.sampleOK = color.RGBA{R: 1, G: 2, B: 3, A: 255}, true
	EyedropperTool{}.PointerDown(env, Pointer{Pos: scene.Pt(5, 5), Screen: scene.Pt(10, 10)})

	if env.style.Fill != env.sample {
		t.Errorf("fill = %v, want %v", env.style.Fill, env.sample)
	}
	if env.sampledAt != scene.Pt(10, 10) {
		t.Errorf("sampled at %+v, want the screen position", env.sampledAt)
	}
	if env.commits != 0 || env.checkpoints != 0 {
		t.Error("eyedropper recorded history")
	}

	env.sampleOK = false
	env.style.Fill = color.RGBA{}
	EyedropperTool{}.PointerDown(env, at(-1, -1))
	if env.style.Fill != (color.RGBA{}) {
		t.Error("fill changed by an out-of-frame sample")
	}
}

func TestTextTool(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		ok     bool
		commit bool
	}{
		{"entered", "hello", true, true},
		{"empty", "", true, false},
		{"cancelled", "ignored", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newFakeEnv()
			env.promptText, env.promptOK = tt.text, tt.ok
			gesture(env, TextTool{}, at(10, 40))
			if env.prompts != 1 {
				t.Errorf("prompts = %d, want 1", env.prompts)
			}
			if got := env.commits == 1; got != tt.commit {
				t.Fatalf("committed = %v, want %v", got, tt.commit)
			}
			if !tt.commit {
				return
			}
			o := env.objects(0)[0]
			if o.Text != tt.text || o.X != 10 || o.Y != 40 || o.Width != 40 {
				t.Errorf("text object = %+v", o)
			}
		})
	}
}

func TestCropTool(t *testing.T) {
	t.Run("replaces scene", func(t *testing.T) {
		env := newFakeEnv()
		env.scene.AddLayer()
		_ = env.scene.AddObject(1, scene.NewObject(scene.KindRectangle, scene.DefaultStyle()))
		env.cropImg = image.NewRGBA(image.Rect(0, 0, 20, 10))

		tl := NewCropTool(1)
		tl.PointerDown(env, at(30, 20))
		tl.PointerMove(env, at(10, 10))
		if env.preview == nil || env.preview.Crop == nil {
			t.Fatal("no crop overlay while dragging")
		}
		tl.PointerUp(env, at(10, 10))

		if env.cropped != (scene.Rect{X: 10, Y: 10, W: 20, H: 10}) {
			t.Errorf("cropped %+v, want normalized (10,10,20,10)", env.cropped)
		}
		if env.replaced != 1 || env.scene.LayerCount() != 1 {
			t.Fatalf("replaced = %d, layers = %d, want one replacement with one layer", env.replaced, env.scene.LayerCount())
		}
		objs := env.objects(0)
		if len(objs) != 1 || objs[0].Kind != scene.KindImage || objs[0].X != 0 || objs[0].Width != 20 {
			t.Errorf("objects = %+v, want one 20x10 image at the origin", objs)
		}
		if env.preview != nil {
			t.Error("overlay left after crop")
		}
	})

	t.Run("small rectangle ignored", func(t *testing.T) {
		env := newFakeEnv()
		env.cropImg = image.NewRGBA(image.Rect(0, 0, 1, 1))
		gesture(env, NewCropTool(1), at(10, 10), at(11, 50))
		if env.replaced != 0 {
			t.Error("crop below threshold replaced the scene")
		}
	})
}

func TestImageTool(t *testing.T) {
	t.Run("commits into captured layer", func(t *testing.T) {
		env := newFakeEnv()
		env.scene.AddLayer()
		_ = env.scene.SetCurrent(1)
		tl := &ImageTool{}
		tl.PointerDown(env, at(7, 8))
		tl.PointerUp(env, at(7, 8))
		if len(env.pending) != 1 || tl.InFlight() != 1 {
			t.Fatalf("pending = %d, in flight = %d, want 1", len(env.pending), tl.InFlight())
		}
		if env.commits != 0 {
			t.Fatal("committed before the asset arrived")
		}

		_ = env.scene.SetCurrent(0)
		env.pending[0](image.NewRGBA(image.Rect(0, 0, 32, 16)), nil)

		objs := env.objects(1)
		if len(objs) != 1 {
			t.Fatalf("layer 1 objects = %d, want 1", len(objs))
		}
		o := objs[0]
		if o.X != 7 || o.Y != 8 || o.Width != 32 || o.Height != 16 {
			t.Errorf("image = (%v,%v,%v,%v), want (7,8,32,16)", o.X, o.Y, o.Width, o.Height)
		}
		if tl.InFlight() != 0 {
			t.Errorf("in flight = %d, want 0", tl.InFlight())
		}
	})

	t.Run("deleted layer falls back to layer 0", func(t *testing.T) {
		env := newFakeEnv()
		env.scene.AddLayer()
		_ = env.scene.SetCurrent(1)
		tl := &ImageTool{}
		tl.PointerDown(env, at(0, 0))
		_ = env.scene.DeleteLayer(1)
		env.pending[0](image.NewRGBA(image.Rect(0, 0, 4, 4)), nil)
		if len(env.objects(0)) != 1 {
			t.Error("image not placed on layer 0")
		}
	})

	t.Run("failure reported", func(t *testing.T) {
		env := newFakeEnv()
		tl := &ImageTool{}
		tl.PointerDown(env, at(0, 0))
		boom := errors.New("boom")
		env.pending[0](nil, boom)
		if env.commits != 0 {
			t.Error("failed load committed an object")
		}
		if len(env.reports) != 1 || !errors.Is(env.reports[0], boom) {
			t.Errorf("reports = %v, want boom", env.reports)
		}
	})
}
