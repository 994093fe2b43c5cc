package main

import (
	"github.com/opd-ai/creographics/pkg/editor"
)

// newSession creates a session from --config, or from the defaults when no
// configuration file was given.
func (a *app) newSession(opts editor.Options) (*editor.Session, error) {
	opts.Logger = a.logger
	if a.configPath == "" {
		opts.WatchConfig = false
		return editor.New(nil, &opts)
	}
	return editor.NewFromFile(a.configPath, &opts)
}
