// Package ctxutil carries per-event values through context. The shell stamps
// every accepted input line with an event ID so service logs can be tied back
// to the line that triggered them.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const eventIDKey ctxKey = "event_id"

// NewEventID returns a fresh correlation ID for one input event.
func NewEventID() string {
	return uuid.NewString()
}

// WithEventID stores the event ID in the context.
func WithEventID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, eventIDKey, id)
}

// EventIDFromCtx extracts the event ID from the context.
// Returns an empty string if absent.
func EventIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(eventIDKey).(string)
	return id
}
