package editor

import (
	"errors"
	"fmt"
)

// ErrAssetLoad marks a failed image asset request. The image tool commits
// nothing when it sees one.
var ErrAssetLoad = errors.New("asset load failed")

// ErrNoAssetLoader is reported when the image tool is used on a session
// without an AssetLoader.
var ErrNoAssetLoader = fmt.Errorf("%w: no asset loader configured", ErrAssetLoad)

// ErrClosed is returned by operations on a closed session.
var ErrClosed = errors.New("session closed")

// DeserializationError reports a persisted document that could not be
// applied. The session is left exactly as it was.
type DeserializationError struct {
	// Op names the stage that failed, such as "decode" or "layers".
	Op string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *DeserializationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("deserialize %s", e.Op)
	}
	return fmt.Sprintf("deserialize %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives failures that have no caller to return to, such as
// a failed asset load or config reload. It runs on the goroutine that calls
// Pump.
type ErrorHandler func(err error)

// safeInvoke calls h and recovers from any panic it raises, so a buggy
// handler cannot take the editor down.
func safeInvoke(h ErrorHandler, err error, logger Logger) {
	if h == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Error("error handler panicked", "panic", r)
		}
	}()
	h(err)
}
