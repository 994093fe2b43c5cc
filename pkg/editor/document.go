package editor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/opd-ai/creographics/internal/history"
	"github.com/opd-ai/creographics/internal/scene"
)

// Document is the persisted form of a session: the layers, the current style
// and the zoom.
type Document struct {
	Layers     []*scene.Layer `json:"layers"`
	Properties scene.Style    `json:"properties"`
	Zoom       float64        `json:"zoom"`
}

// documentJSON detects missing fields on decode.
type documentJSON struct {
	Layers     *[]*scene.Layer `json:"layers"`
	Properties *scene.Style    `json:"properties"`
	Zoom       *float64        `json:"zoom"`
}

// Document returns a deep copy of the session's persisted state.
func (s *Session) Document() *Document {
	return &Document{
		Layers:     s.scene.CloneLayers(),
		Properties: s.style.Clone(),
		Zoom:       s.viewport.Zoom(),
	}
}

// Save writes the session as a JSON document.
func (s *Session) Save(w io.Writer) error {
	if err := json.NewEncoder(w).Encode(s.Document()); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	s.metrics.IncrementSaves()
	s.logger.Info("document saved", "layers", s.scene.LayerCount())
	return nil
}

// SaveFile writes the session as a JSON document to path.
func (s *Session) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := s.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// DecodeDocument reads and checks a JSON document without touching any
// session. Failures are *DeserializationError.
func DecodeDocument(r io.Reader) (*Document, error) {
	var raw documentJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, &DeserializationError{Op: "decode", Err: err}
	}
	if raw.Layers == nil {
		return nil, &DeserializationError{Op: "layers", Err: errors.New("missing field")}
	}
	if len(*raw.Layers) == 0 {
		return nil, &DeserializationError{Op: "layers", Err: errors.New("document has no layers")}
	}
	for i, l := range *raw.Layers {
		if l == nil {
			return nil, &DeserializationError{Op: "layers", Err: fmt.Errorf("layer %d is null", i)}
		}
	}
	if raw.Properties == nil {
		return nil, &DeserializationError{Op: "properties", Err: errors.New("missing field")}
	}
	if raw.Zoom == nil {
		return nil, &DeserializationError{Op: "zoom", Err: errors.New("missing field")}
	}
	if z := *raw.Zoom; math.IsNaN(z) || math.IsInf(z, 0) || z <= 0 {
		return nil, &DeserializationError{Op: "zoom", Err: fmt.Errorf("invalid zoom %v", z)}
	}
	return &Document{
		Layers:     *raw.Layers,
		Properties: *raw.Properties,
		Zoom:       *raw.Zoom,
	}, nil
}

// Load replaces the scene, style and zoom with a decoded document. Either
// all three change or, on a *DeserializationError, none do. A successful
// load resets the history to a single baseline snapshot.
func (s *Session) Load(r io.Reader) error {
	doc, err := DecodeDocument(r)
	if err != nil {
		s.metrics.IncrementLoadFailures()
		s.logger.Warn("document rejected", "error", err)
		return err
	}
	return s.apply(doc)
}

// LoadFile loads a JSON document from path.
func (s *Session) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return s.Load(f)
}

func (s *Session) apply(doc *Document) error {
	sc, err := scene.FromLayers(doc.Layers)
	if err != nil {
		s.metrics.IncrementLoadFailures()
		return &DeserializationError{Op: "layers", Err: err}
	}

	s.tools.Cancel(s.env())
	s.scene = sc
	s.style = doc.Properties.Clone()
	s.viewport.SetZoom(doc.Zoom)
	s.history = history.New(s.cfg.History.Capacity)
	s.history.Reset(s.scene)
	s.updateGauges()
	s.metrics.IncrementLoads()
	s.logger.Info("document loaded", "layers", sc.LayerCount(), "zoom", s.viewport.Zoom())
	return nil
}

// Export renders the current frame and writes it as PNG.
func (s *Session) Export(w io.Writer) error {
	if err := s.Render().EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	s.metrics.IncrementExports()
	s.logger.Info("frame exported")
	return nil
}

// ExportFile writes the current frame as a PNG file at path.
func (s *Session) ExportFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := s.Export(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
