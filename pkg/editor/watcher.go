package editor

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDebounce is the default debounce interval for file watch events.
const DefaultWatchDebounce = 500 * time.Millisecond

// configWatch follows the session's configuration file until the session
// context is cancelled. done is closed once the watch goroutine has exited.
type configWatch struct {
	fsw  *fsnotify.Watcher
	done chan struct{}
}

// watchConfig starts following s.configPath. After a debounced burst of
// changes the file is parsed on the watch goroutine and the outcome queued
// for Pump, which applies it or reports the error.
func (s *Session) watchConfig(debounce time.Duration) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// The directory is watched so editors that save by rename are seen.
	if err := fsw.Add(filepath.Dir(s.configPath)); err != nil {
		fsw.Close()
		return err
	}
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}
	s.watcher = &configWatch{fsw: fsw, done: make(chan struct{})}
	go s.watchLoop(s.watcher, debounce)
	s.logger.Debug("watching configuration", "path", s.configPath, "debounce", debounce)
	return nil
}

func (s *Session) watchLoop(w *configWatch, debounce time.Duration) {
	defer close(w.done)
	defer w.fsw.Close()

	name := filepath.Base(s.configPath)
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-s.ctx.Done():
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != name || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			fire = timer.C

		case <-fire:
			timer, fire = nil, nil
			s.queueReload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			s.post(func() { s.report(fmt.Errorf("config watch: %w", err)) })
		}
	}
}

// queueReload parses the configuration file and posts the result.
func (s *Session) queueReload() {
	cfg, err := parseConfigFile(s.configPath)
	s.post(func() {
		if err == nil {
			err = s.ApplyConfig(cfg)
		}
		if err != nil {
			s.report(fmt.Errorf("config reload: %w", err))
		}
	})
}
