package tool

import (
	"fmt"
	"slices"
)

// Controller owns one persistent instance of every tool and routes pointer
// events to the active one. Per-tool parameters, such as the side count of
// the polygon tool, survive tool switches.
//
// Controller is not safe for concurrent use.
type Controller struct {
	settings Settings
	tools    map[Name]Tool
	active   Name
	pressed  bool
}

// NewController creates every tool from settings and activates Select.
func NewController(settings Settings) *Controller {
	th := settings.Threshold
	return &Controller{
		settings: settings,
		active:   Select,
		tools: map[Name]Tool{
			Select:     &SelectTool{},
			Move:       &MoveTool{},
			Rectangle:  NewRectangleTool(th),
			Circle:     NewEllipseTool(th),
			Line:       NewLineTool(th),
			Text:       &TextTool{},
			Pen:        NewPenTool(),
			Brush:      NewBrushTool(),
			Eraser:     NewEraserTool(),
			Eyedropper: &EyedropperTool{},
			Polygon:    NewPolygonTool(th, settings.PolygonSides),
			Star:       NewStarTool(th, settings.StarPoints, settings.StarInnerRatio),
			Gradient:   NewGradientTool(th, settings.GradientColors),
			Shape:      NewShapeTool(th, settings.Shape),
			Curve:      &CurveTool{},
			Arrow:      NewArrowTool(th),
			Image:      &ImageTool{},
			Crop:       NewCropTool(th),
		},
	}
}

// Configure applies new settings to the existing tool instances, so the
// curve buffer and anything else they hold survives. A per-tool parameter is
// only overwritten when settings changes it, which keeps values tuned at
// runtime, such as PolygonTool.Sides.
func (c *Controller) Configure(settings Settings) {
	prev := c.settings
	c.settings = settings
	for _, t := range c.tools {
		if th, ok := t.(thresholder); ok {
			th.setThreshold(settings.Threshold)
		}
	}
	if t, ok := c.tools[Polygon].(*PolygonTool); ok && settings.PolygonSides != prev.PolygonSides {
		t.Sides = max(settings.PolygonSides, 3)
	}
	if t, ok := c.tools[Star].(*StarTool); ok {
		if settings.StarPoints != prev.StarPoints {
			t.Points = max(settings.StarPoints, 2)
		}
		if settings.StarInnerRatio != prev.StarInnerRatio {
			t.InnerRatio = settings.StarInnerRatio
		}
	}
	if t, ok := c.tools[Gradient].(*GradientTool); ok && !slices.Equal(settings.GradientColors, prev.GradientColors) {
		t.Colors = slices.Clone(settings.GradientColors)
	}
	if t, ok := c.tools[Shape].(*ShapeTool); ok && settings.Shape != prev.Shape {
		t.Shape = settings.Shape
	}
}

// Settings returns the settings last applied by NewController or Configure.
func (c *Controller) Settings() Settings {
	return c.settings
}

// Active returns the name of the active tool.
func (c *Controller) Active() Name {
	return c.active
}

// Tool returns the persistent instance of the named tool, or nil.
func (c *Controller) Tool(n Name) Tool {
	return c.tools[n]
}

// Pressed reports whether a pointer button is held.
func (c *Controller) Pressed() bool {
	return c.pressed
}

// SetActive switches tools. A gesture in progress on the previous tool is
// abandoned and its preview cleared.
func (c *Controller) SetActive(env Env, n Name) error {
	if _, ok := c.tools[n]; !ok {
		return fmt.Errorf("unknown tool: %q", n)
	}
	if n == c.active {
		return nil
	}
	if cn, ok := c.tools[c.active].(Canceler); ok {
		cn.Cancel()
	}
	c.pressed = false
	env.ClearPreview()
	c.active = n
	return nil
}

// PointerDown starts a gesture on the active tool.
func (c *Controller) PointerDown(env Env, p Pointer) {
	c.pressed = true
	c.tools[c.active].PointerDown(env, p)
}

// PointerMove forwards every move to the active tool. Tools ignore moves
// outside their own gestures, except the curve tool which previews its
// buffered points between clicks.
func (c *Controller) PointerMove(env Env, p Pointer) {
	c.tools[c.active].PointerMove(env, p)
}

// PointerUp ends a gesture. A release without a matching press, such as one
// that started outside the canvas, is dropped.
func (c *Controller) PointerUp(env Env, p Pointer) {
	if !c.pressed {
		return
	}
	c.pressed = false
	c.tools[c.active].PointerUp(env, p)
}

// Cancel abandons the gesture in progress on the active tool and clears its
// preview. The active tool stays selected.
func (c *Controller) Cancel(env Env) {
	if cn, ok := c.tools[c.active].(Canceler); ok {
		cn.Cancel()
	}
	c.pressed = false
	env.ClearPreview()
}
