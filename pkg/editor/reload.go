package editor

import (
	"errors"
	"fmt"

	"github.com/opd-ai/creographics/internal/config"
	"github.com/opd-ai/creographics/internal/viewport"
)

// ReloadConfig re-reads the configuration file the session was created from
// and applies it. On error the previous configuration stays in effect.
func (s *Session) ReloadConfig() error {
	if s.configPath == "" {
		return errors.New("session has no configuration file")
	}
	cfg, err := parseConfigFile(s.configPath)
	if err != nil {
		return err
	}
	return s.ApplyConfig(cfg)
}

// ApplyConfig switches to cfg without touching the document. Canvas, zoom
// range and tool parameters take effect at once; the zoom is re-clamped and
// the tools keep their state, though a gesture in progress is abandoned. The
// current style is the user's and is left alone. A new history capacity
// applies from the next NewDocument or Load.
func (s *Session) ApplyConfig(cfg *config.Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	c, err := loadConfig(cfg)
	if err != nil {
		return err
	}
	if err := s.renderer.Configure(renderConfig(&c)); err != nil {
		return fmt.Errorf("renderer config: %w", err)
	}

	zoom := s.viewport.Zoom()
	s.viewport = viewport.New(zoomLimits(c.Zoom))
	s.viewport.SetZoom(zoom)

	s.tools.Cancel(s.env())
	s.tools.Configure(toolSettings(c.Tools))

	s.cfg = c
	s.frame = nil
	s.metrics.IncrementConfigReloads()
	s.logger.Info("configuration applied", "canvas", fmt.Sprintf("%dx%d", c.Canvas.Width, c.Canvas.Height))
	return nil
}
