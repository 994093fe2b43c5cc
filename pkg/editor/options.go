package editor

import (
	"time"

	"github.com/opd-ai/creographics/internal/render"
)

// Options configures a Session's collaborators.
type Options struct {
	// Logger sets a custom logger for debug/info messages.
	// If nil, no logging is performed.
	Logger Logger

	// Metrics sets a custom metrics collector.
	// If nil, a private collector is created.
	Metrics *Metrics

	// Prompter supplies text for the text tool. If nil, text prompts are
	// treated as cancelled.
	Prompter Prompter

	// Assets loads images for the image tool. If nil, image requests fail
	// with ErrNoAssetLoader.
	Assets AssetLoader

	// Fonts overrides the font manager used for text. If nil, the embedded
	// Go fonts are used.
	Fonts *render.FontManager

	// ErrorHandler receives asynchronous failures.
	ErrorHandler ErrorHandler

	// WatchConfig enables automatic configuration hot-reloading when the
	// session was created from a configuration file.
	WatchConfig bool

	// WatchDebounce sets the debounce interval for file change events.
	// Zero means use the default (500ms).
	WatchDebounce time.Duration

	// InboxSize bounds the queue of asynchronous completions waiting for
	// Pump. Zero means DefaultInboxSize.
	InboxSize int
}

// DefaultInboxSize is the default capacity of the completion queue.
const DefaultInboxSize = 64

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Logger:    NopLogger(),
		InboxSize: DefaultInboxSize,
	}
}
