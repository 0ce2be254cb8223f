// Package auth provides authentication context and authorization functions.
// All functions are pure; token verification happens in the shell.
package auth

import (
	"context"

	"github.com/hafedEfheij/school-management-system-sub001/internal/core/domain"
)

// =============================================================================
// Context Key
// =============================================================================

type contextKey string

const authContextKey contextKey = "auth"

// =============================================================================
// Types
// =============================================================================

// Context represents the authentication and authorization context for a
// request. The middleware builds it from a verified Bearer token and stores
// it in the request context.
type Context struct {
	// UserID is the account's ID from the users table.
	UserID string

	// Email is the account's login email.
	Email string

	// Role is the account's role (ADMIN, TEACHER, USER).
	Role domain.Role

	// TeacherID links a TEACHER account to its teacher record, if any.
	TeacherID string

	// Authenticated indicates whether the request carried a valid token.
	Authenticated bool
}

// =============================================================================
// Context Storage
// =============================================================================

// WithContext stores the auth context in the request context.
func WithContext(ctx context.Context, authCtx Context) context.Context {
	return context.WithValue(ctx, authContextKey, authCtx)
}

// FromContext retrieves the auth context from the request context.
// If no auth context is found, returns an unauthenticated context.
func FromContext(ctx context.Context) Context {
	if authCtx, ok := ctx.Value(authContextKey).(Context); ok {
		return authCtx
	}
	return Context{Authenticated: false}
}
