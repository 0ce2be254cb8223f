// Package middleware provides HTTP middleware for the school management API.
package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hafedEfheij/school-management-system-sub001/internal/core/auth"
	"github.com/hafedEfheij/school-management-system-sub001/internal/core/domain"
	"github.com/hafedEfheij/school-management-system-sub001/internal/shell/token"
)

// =============================================================================
// Verifier Interface
// =============================================================================

// Verifier validates a signed bearer token. The token service implements it.
type Verifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

// =============================================================================
// Auth Configuration
// =============================================================================

// AuthConfig holds configuration for the auth middleware.
type AuthConfig struct {
	// Verifier validates Bearer tokens. Required.
	Verifier Verifier

	// Logger for auth middleware logging.
	Logger *slog.Logger
}

// =============================================================================
// Auth Middleware
// =============================================================================

// AuthMiddleware verifies the Authorization header and stores the resulting
// auth context in the request context. Requests without a token pass through
// unauthenticated; RequireAuth rejects them at the route level.
type AuthMiddleware struct {
	config AuthConfig
}

// NewAuthMiddleware creates a new auth middleware with the given config.
func NewAuthMiddleware(cfg AuthConfig) *AuthMiddleware {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &AuthMiddleware{config: cfg}
}

// Handler returns the middleware handler function.
func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r.WithContext(auth.WithContext(r.Context(), auth.Context{})))
			return
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			writeJSONError(w, http.StatusUnauthorized, "invalid authorization header", "auth_error")
			return
		}

		claims, err := m.config.Verifier.Verify(raw)
		if err != nil {
			m.config.Logger.Warn("token rejected", "error", err, "path", r.URL.Path)
			writeJSONError(w, http.StatusUnauthorized, "invalid or expired token", "auth_error")
			return
		}

		authCtx := auth.Context{
			UserID:        claims.Subject,
			Email:         claims.Email,
			Role:          claims.Role,
			TeacherID:     claims.TeacherID,
			Authenticated: true,
		}
		next.ServeHTTP(w, r.WithContext(auth.WithContext(r.Context(), authCtx)))
	})
}

// =============================================================================
// Route Guards
// =============================================================================

// RequireAuth rejects unauthenticated requests with 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !auth.FromContext(r.Context()).Authenticated {
			writeJSONError(w, http.StatusUnauthorized, "authentication required", "auth_error")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects requests whose authenticated role is not in roles.
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	allowed := make(map[domain.Role]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := auth.FromContext(r.Context())
			if !ctx.Authenticated {
				writeJSONError(w, http.StatusUnauthorized, "authentication required", "auth_error")
				return
			}
			if !allowed[ctx.Role] {
				writeJSONError(w, http.StatusForbidden, "insufficient permissions", "auth_error")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeJSONError(w http.ResponseWriter, status int, message, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
		"code":  code,
	})
}
