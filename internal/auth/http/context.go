// Package http provides HTTP handlers and middleware for authentication.
package http

import (
	"context"

	userDomain "github.com/allisson/imagevault/internal/user/domain"
)

// userKey is a context key type for storing authenticated users.
type userKey struct{}

// tokenKey is a context key type for storing the freshly minted token.
type tokenKey struct{}

// WithUser stores an authenticated user in the context. Called by the
// authentication middleware after a successful check.
func WithUser(ctx context.Context, user *userDomain.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// GetUser retrieves the authenticated user from the context.
// Returns (nil, false) if no user was set.
func GetUser(ctx context.Context) (*userDomain.User, bool) {
	user, ok := ctx.Value(userKey{}).(*userDomain.User)
	return user, ok
}

// WithToken stores the token minted for the current request in the context.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// GetToken retrieves the token minted for the current request.
// Returns ("", false) if no token was set.
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok
}
