package editor

import (
	"github.com/google/uuid"
)

// LayerInfo describes one layer for a layer panel.
type LayerInfo struct {
	ID      uuid.UUID
	Name    string
	Visible bool
	Objects int
	Current bool
}

// Layers lists the layers back to front.
func (s *Session) Layers() []LayerInfo {
	layers := s.scene.Layers()
	out := make([]LayerInfo, len(layers))
	for i, l := range layers {
		out[i] = LayerInfo{
			ID:      l.ID,
			Name:    l.Name,
			Visible: l.Visible,
			Objects: len(l.Objects),
			Current: i == s.scene.Current(),
		}
	}
	return out
}

// CurrentLayer returns the index of the layer new objects are added to.
func (s *Session) CurrentLayer() int {
	return s.scene.Current()
}

// AddLayer appends an empty visible layer named "Layer N" and returns its
// index. The current layer does not change.
func (s *Session) AddLayer() int {
	l := s.scene.AddLayer()
	s.updateGauges()
	s.logger.Debug("layer added", "name", l.Name)
	return s.scene.LayerCount() - 1
}

// SelectLayer makes layer i current.
func (s *Session) SelectLayer(i int) error {
	return s.layerOp("select layer", s.scene.SetCurrent(i))
}

// MoveLayerUp swaps the current layer with the one before it in the list and
// keeps it current. The first layer cannot move up.
func (s *Session) MoveLayerUp() error {
	i := s.scene.Current()
	if err := s.scene.SwapLayers(i, i-1); err != nil {
		return s.layerOp("move layer up", err)
	}
	return s.layerOp("move layer up", s.scene.SetCurrent(i-1))
}

// MoveLayerDown swaps the current layer with the one after it in the list and
// keeps it current. The last layer cannot move down.
func (s *Session) MoveLayerDown() error {
	i := s.scene.Current()
	if err := s.scene.SwapLayers(i, i+1); err != nil {
		return s.layerOp("move layer down", err)
	}
	return s.layerOp("move layer down", s.scene.SetCurrent(i+1))
}

// DeleteCurrentLayer removes the current layer with its objects and makes
// the layer before it current. The only remaining layer cannot be deleted;
// scene.ErrLastLayer is returned and nothing changes.
func (s *Session) DeleteCurrentLayer() error {
	i := s.scene.Current()
	if err := s.scene.DeleteLayer(i); err != nil {
		return s.layerOp("delete layer", err)
	}
	_ = s.scene.SetCurrent(max(0, i-1))
	s.updateGauges()
	return s.layerOp("delete layer", nil)
}

// ToggleVisibility shows or hides layer i.
func (s *Session) ToggleVisibility(i int) error {
	return s.layerOp("toggle visibility", s.scene.ToggleVisibility(i))
}

// layerOp logs the outcome of a layer operation. Rejected operations leave
// the scene unchanged.
func (s *Session) layerOp(op string, err error) error {
	if err != nil {
		s.logger.Debug(op+" rejected", "error", err)
		return err
	}
	s.logger.Debug(op, "current", s.scene.Current(), "layers", s.scene.LayerCount())
	return nil
}
