// ABOUTME: Admin identity propagation through request contexts
// ABOUTME: Provides WithAdmin/IsAdmin for handlers behind the auth middleware

package auth

import (
	"context"
)

// adminContextKey is the key type for marking a context as admin-authenticated.
type adminContextKey struct{}

// WithAdmin returns a new context marked as carrying a verified admin token.
func WithAdmin(ctx context.Context) context.Context {
	return context.WithValue(ctx, adminContextKey{}, true)
}

// IsAdmin reports whether the context carries a verified admin token.
func IsAdmin(ctx context.Context) bool {
	admin, ok := ctx.Value(adminContextKey{}).(bool)
	return ok && admin
}
