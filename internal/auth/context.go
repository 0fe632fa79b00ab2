package auth

import (
	"context"

	"github.com/daybook/daybook/internal/model"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const authContextKey contextKey = "auth_context"

// ContextWithAuth adds AuthContext to the context.
func ContextWithAuth(ctx context.Context, auth *model.AuthContext) context.Context {
	return context.WithValue(ctx, authContextKey, auth)
}

// AuthFromContext retrieves AuthContext from the context.
// Returns nil if not present.
func AuthFromContext(ctx context.Context) *model.AuthContext {
	auth, ok := ctx.Value(authContextKey).(*model.AuthContext)
	if !ok {
		return nil
	}
	return auth
}

// UserIDFromContext returns the acting user id, or "" if unauthenticated.
// Every per-user repository call is scoped by this value.
func UserIDFromContext(ctx context.Context) string {
	if auth := AuthFromContext(ctx); auth != nil {
		return auth.UserID
	}
	return ""
}
