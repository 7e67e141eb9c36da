package identity

import (
	"context"

	"campusfeed/internal/models"
)

// Identity is who is making the request, as resolved by the auth middleware.
type Identity struct {
	UserID string
	Role   models.Role
}

type contextKey struct{}

func WithContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns false for anonymous requests.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	if !ok || id.UserID == "" {
		return Identity{}, false
	}
	return id, true
}
