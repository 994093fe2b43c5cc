package editor

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

// Logger interface for custom logging.
// It follows the slog-style signature for compatibility with Go's structured logging.
type Logger interface {
	// Debug logs a debug-level message with optional key-value pairs.
	Debug(msg string, args ...any)
	// Info logs an info-level message with optional key-value pairs.
	Info(msg string, args ...any)
	// Warn logs a warning-level message with optional key-value pairs.
	Warn(msg string, args ...any)
	// Error logs an error-level message with optional key-value pairs.
	Error(msg string, args ...any)
}

// SlogAdapter wraps a *slog.Logger to implement the Logger interface.
//
// Example:
//
//	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
//	opts := editor.DefaultOptions()
//	opts.Logger = editor.NewSlogAdapter(slog.New(handler))
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a Logger adapter from a *slog.Logger.
// If logger is nil, slog.Default() is used.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

// Debug logs a debug-level message with optional key-value pairs.
func (s *SlogAdapter) Debug(msg string, args ...any) {
	s.logger.Debug(msg, args...)
}

// Info logs an info-level message with optional key-value pairs.
func (s *SlogAdapter) Info(msg string, args ...any) {
	s.logger.Info(msg, args...)
}

// Warn logs a warning-level message with optional key-value pairs.
func (s *SlogAdapter) Warn(msg string, args ...any) {
	s.logger.Warn(msg, args...)
}

// Error logs an error-level message with optional key-value pairs.
func (s *SlogAdapter) Error(msg string, args ...any) {
	s.logger.Error(msg, args...)
}

// charmHandler builds a charmbracelet/log logger, which doubles as a
// slog.Handler.
func charmHandler(w io.Writer, level slog.Level, opts log.Options) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts.Level = log.Level(level)
	return log.NewWithOptions(w, opts)
}

// DefaultLogger returns a Logger that writes timestamped text to stderr at
// Info level.
func DefaultLogger() Logger {
	return NewTextLogger(os.Stderr, slog.LevelInfo)
}

// NewTextLogger returns a Logger that writes timestamped text to w.
func NewTextLogger(w io.Writer, level slog.Level) Logger {
	h := charmHandler(w, level, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})
	return &SlogAdapter{logger: slog.New(h)}
}

// DebugLogger returns a Logger configured for debugging.
// It logs to stderr at Debug level, including the caller location.
func DebugLogger() Logger {
	h := charmHandler(os.Stderr, slog.LevelDebug, log.Options{
		ReportTimestamp: true,
		ReportCaller:    true,
		TimeFormat:      "15:04:05.00",
	})
	return &SlogAdapter{logger: slog.New(h)}
}

// JSONLogger returns a Logger that outputs JSON-formatted logs.
func JSONLogger(w io.Writer, level slog.Level) Logger {
	h := charmHandler(w, level, log.Options{
		ReportTimestamp: true,
		Formatter:       log.JSONFormatter,
	})
	return &SlogAdapter{logger: slog.New(h)}
}

// NopLogger returns a Logger that discards all log messages.
func NopLogger() Logger {
	return &nopLogger{}
}

// nopLogger implements Logger but discards all messages.
type nopLogger struct{}

func (n *nopLogger) Debug(msg string, args ...any) {}
func (n *nopLogger) Info(msg string, args ...any)  {}
func (n *nopLogger) Warn(msg string, args ...any)  {}
func (n *nopLogger) Error(msg string, args ...any) {}
