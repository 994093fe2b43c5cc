package editor

import (
	"context"

	"github.com/google/uuid"
)

// requestIDKey is the context key for asset request IDs.
type requestIDKey struct{}

// withRequestID returns a context carrying id.
func withRequestID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the ID of the asset request a LoadAsset call
// serves, so loaders can tag their own log lines with it.
func RequestIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	if ctx == nil {
		return uuid.Nil, false
	}
	id, ok := ctx.Value(requestIDKey{}).(uuid.UUID)
	return id, ok
}
