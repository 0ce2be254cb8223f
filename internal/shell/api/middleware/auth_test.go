package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hafedEfheij/school-management-system-sub001/internal/core/auth"
	"github.com/hafedEfheij/school-management-system-sub001/internal/core/domain"
	"github.com/hafedEfheij/school-management-system-sub001/internal/shell/token"
)

// stubVerifier resolves fixed tokens to fixed claims.
type stubVerifier struct {
	claims map[string]*token.Claims
}

func (s *stubVerifier) Verify(tokenString string) (*token.Claims, error) {
	if c, ok := s.claims[tokenString]; ok {
		return c, nil
	}
	return nil, errors.New("unknown token")
}

func newTestMiddleware() *AuthMiddleware {
	return NewAuthMiddleware(AuthConfig{
		Verifier: &stubVerifier{
			claims: map[string]*token.Claims{
				"admin-token": {
					Email: "admin@school.edu",
					Role:  domain.RoleAdmin,
				},
				"user-token": {
					Email: "user@school.edu",
					Role:  domain.RoleUser,
				},
			},
		},
	})
}

func captureContext(t *testing.T) (http.Handler, *auth.Context) {
	t.Helper()
	captured := &auth.Context{}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = auth.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}), captured
}

func TestAuthMiddlewareNoHeader(t *testing.T) {
	next, captured := captureContext(t)
	handler := newTestMiddleware().Handler(next)

	req := httptest.NewRequest(http.MethodGet, "/api/teachers", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, captured.Authenticated)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	next, captured := captureContext(t)
	handler := newTestMiddleware().Handler(next)

	req := httptest.NewRequest(http.MethodGet, "/api/teachers", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, captured.Authenticated)
	assert.Equal(t, "admin@school.edu", captured.Email)
	assert.Equal(t, domain.RoleAdmin, captured.Role)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	next, _ := captureContext(t)
	handler := newTestMiddleware().Handler(next)

	req := httptest.NewRequest(http.MethodGet, "/api/teachers", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "auth_error", body["code"])
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	next, _ := captureContext(t)
	handler := newTestMiddleware().Handler(next)

	req := httptest.NewRequest(http.MethodGet, "/api/teachers", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth(t *testing.T) {
	next, _ := captureContext(t)
	handler := newTestMiddleware().Handler(RequireAuth(next))

	req := httptest.NewRequest(http.MethodGet, "/api/teachers", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/teachers", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole(t *testing.T) {
	next, _ := captureContext(t)
	handler := newTestMiddleware().Handler(RequireRole(domain.RoleAdmin)(next))

	tests := []struct {
		name   string
		token  string
		status int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"wrong role", "user-token", http.StatusForbidden},
		{"allowed role", "admin-token", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/register", nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
