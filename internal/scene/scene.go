package scene

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors for structural operations. Editor front-ends treat all of
// them as silent no-ops.
var (
	// ErrLastLayer is returned when deleting the only remaining layer.
	ErrLastLayer = errors.New("cannot delete the last layer")
	// ErrLayerIndex is returned for a layer index outside the scene.
	ErrLayerIndex = errors.New("layer index out of range")
	// ErrNotAdjacent is returned when swapping layers that are not neighbors.
	ErrNotAdjacent = errors.New("layers are not adjacent")
	// ErrNoSelection is returned by operations that need a selected object.
	ErrNoSelection = errors.New("no object selected")
	// ErrNilObject is returned when a nil object is added.
	ErrNilObject = errors.New("nil object")
)

// Scene is the editable document: an ordered stack of layers, the index of
// the current layer, and the selection.
//
// Scene is not safe for concurrent use; the editor mutates it from a single
// goroutine.
type Scene struct {
	layers    []*Layer
	current   int
	selection *Object
}

// New returns a scene with a single empty layer named "Layer 1".
func New() *Scene {
	return &Scene{layers: []*Layer{NewLayer("Layer 1")}}
}

// FromLayers builds a scene from existing layers, taking ownership of them.
// It fails if layers is empty.
func FromLayers(layers []*Layer) (*Scene, error) {
	if len(layers) == 0 {
		return nil, errors.New("scene needs at least one layer")
	}
	return &Scene{layers: layers}, nil
}

// Layers returns the layers back-to-front. The slice is owned by the scene and
// must be treated as read-only.
func (s *Scene) Layers() []*Layer {
	return s.layers
}

// LayerCount returns the number of layers.
func (s *Scene) LayerCount() int {
	return len(s.layers)
}

// Layer returns the layer at index i.
func (s *Scene) Layer(i int) (*Layer, bool) {
	if i < 0 || i >= len(s.layers) {
		return nil, false
	}
	return s.layers[i], true
}

// Current returns the index of the current layer.
func (s *Scene) Current() int {
	return s.current
}

// SetCurrent makes layer i current.
func (s *Scene) SetCurrent(i int) error {
	if i < 0 || i >= len(s.layers) {
		return fmt.Errorf("%w: %d", ErrLayerIndex, i)
	}
	s.current = i
	return nil
}

// AddObject appends o to layer i, making it the topmost object of that layer.
func (s *Scene) AddObject(i int, o *Object) error {
	if o == nil {
		return ErrNilObject
	}
	l, ok := s.Layer(i)
	if !ok {
		return fmt.Errorf("%w: %d", ErrLayerIndex, i)
	}
	l.Objects = append(l.Objects, o)
	return nil
}

// RemoveObject deletes o, by identity, from whichever layer holds it. The
// selection is cleared if it referenced o. It reports whether o was found.
func (s *Scene) RemoveObject(o *Object) bool {
	for _, l := range s.layers {
		if i := l.indexOf(o); i >= 0 {
			l.Objects = append(l.Objects[:i], l.Objects[i+1:]...)
			if s.selection == o {
				s.selection = nil
			}
			return true
		}
	}
	return false
}

// Contains reports whether o is held by any layer.
func (s *Scene) Contains(o *Object) bool {
	if o == nil {
		return false
	}
	for _, l := range s.layers {
		if l.indexOf(o) >= 0 {
			return true
		}
	}
	return false
}

// FindByID returns the object with the given identity, or nil.
func (s *Scene) FindByID(id uuid.UUID) *Object {
	for _, l := range s.layers {
		for _, o := range l.Objects {
			if o.ID == id {
				return o
			}
		}
	}
	return nil
}

// LayerOf returns the index of the layer holding o, or -1.
func (s *Scene) LayerOf(o *Object) int {
	for i, l := range s.layers {
		if l.indexOf(o) >= 0 {
			return i
		}
	}
	return -1
}

// AddLayer appends an empty visible layer named after the new layer count.
func (s *Scene) AddLayer() *Layer {
	l := NewLayer(fmt.Sprintf("Layer %d", len(s.layers)+1))
	s.layers = append(s.layers, l)
	return l
}

// DeleteLayer removes layer i and every object on it. The last remaining layer
// cannot be deleted. The current layer index keeps pointing at the same layer
// when possible and is clamped into range otherwise.
func (s *Scene) DeleteLayer(i int) error {
	if len(s.layers) <= 1 {
		return ErrLastLayer
	}
	l, ok := s.Layer(i)
	if !ok {
		return fmt.Errorf("%w: %d", ErrLayerIndex, i)
	}
	if s.selection != nil && l.indexOf(s.selection) >= 0 {
		s.selection = nil
	}
	s.layers = append(s.layers[:i], s.layers[i+1:]...)
	if i < s.current {
		s.current--
	}
	s.clampCurrent()
	return nil
}

// SwapLayers exchanges two adjacent layers. Each layer keeps its own object
// order.
func (s *Scene) SwapLayers(i, j int) error {
	if _, ok := s.Layer(i); !ok {
		return fmt.Errorf("%w: %d", ErrLayerIndex, i)
	}
	if _, ok := s.Layer(j); !ok {
		return fmt.Errorf("%w: %d", ErrLayerIndex, j)
	}
	if i-j != 1 && j-i != 1 {
		return ErrNotAdjacent
	}
	s.layers[i], s.layers[j] = s.layers[j], s.layers[i]
	return nil
}

// ToggleVisibility flips the visible flag of layer i. Hidden layers keep their
// objects.
func (s *Scene) ToggleVisibility(i int) error {
	l, ok := s.Layer(i)
	if !ok {
		return fmt.Errorf("%w: %d", ErrLayerIndex, i)
	}
	l.Visible = !l.Visible
	return nil
}

// Selection returns the selected object, or nil.
func (s *Scene) Selection() *Object {
	return s.selection
}

// Select sets the selection. Selecting nil, or an object that is not part of
// the scene, clears it.
func (s *Scene) Select(o *Object) {
	if !s.Contains(o) {
		s.selection = nil
		return
	}
	s.selection = o
}

// Clone returns a deep copy of the scene. The copy's selection refers to the
// copied object with the same identity.
func (s *Scene) Clone() *Scene {
	c := &Scene{layers: cloneLayers(s.layers), current: s.current}
	if s.selection != nil {
		c.selection = c.FindByID(s.selection.ID)
	}
	return c
}

// ReplaceLayers swaps in a new layer list, taking ownership of it. The
// current layer index is clamped and the selection is re-resolved by identity
// in the new layers.
func (s *Scene) ReplaceLayers(layers []*Layer) error {
	if len(layers) == 0 {
		return errors.New("scene needs at least one layer")
	}
	var selID uuid.UUID
	hadSelection := s.selection != nil
	if hadSelection {
		selID = s.selection.ID
	}
	s.layers = layers
	s.selection = nil
	if hadSelection {
		s.selection = s.FindByID(selID)
	}
	s.clampCurrent()
	return nil
}

// CloneLayers returns a deep copy of the layer list.
func (s *Scene) CloneLayers() []*Layer {
	return cloneLayers(s.layers)
}

func cloneLayers(layers []*Layer) []*Layer {
	out := make([]*Layer, len(layers))
	for i, l := range layers {
		out[i] = l.Clone()
	}
	return out
}

func (s *Scene) clampCurrent() {
	if s.current >= len(s.layers) {
		s.current = len(s.layers) - 1
	}
	if s.current < 0 {
		s.current = 0
	}
}
