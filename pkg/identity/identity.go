// Package identity carries the acting user and request id through
// context.Context so core operations never depend on how the caller was
// authenticated.
package identity

import "context"

type userKey struct{}

type requestIDKey struct{}

// WithUser returns a copy of ctx that carries userID as the acting user.
func WithUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userKey{}, userID)
}

// UserID returns the acting user, if one was injected.
func UserID(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(userKey{}).(string)
	return id, ok && id != ""
}

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	rid, _ := ctx.Value(requestIDKey{}).(string)
	return rid
}
