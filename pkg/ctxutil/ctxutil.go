// Package ctxutil carries the caller and request identity through a context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey int

const (
	callerKey ctxKey = iota
	requestKey
)

// WithUserID marks ctx as acting on behalf of the given user.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, callerKey, id)
}

// UserIDFromCtx returns the calling user. Anonymous contexts, and ones
// carrying uuid.Nil, report false.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(callerKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// ActorIDFromCtx is UserIDFromCtx shaped for audit records: nil when the
// call is anonymous.
func ActorIDFromCtx(ctx context.Context) *uuid.UUID {
	if id, ok := UserIDFromCtx(ctx); ok {
		return &id
	}
	return nil
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestKey, id)
}

// RequestIDFromCtx returns "" outside an HTTP request.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestKey).(string)
	return id
}
