package seed

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hafedEfheij/school-management-system-sub001/internal/core/domain"
	"github.com/hafedEfheij/school-management-system-sub001/internal/shell/store"
	"github.com/hafedEfheij/school-management-system-sub001/internal/shell/token"
)

func setupTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := store.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEnsureAdminCreatesAccount(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	err := EnsureAdmin(ctx, s, "admin@school.edu", "changeme", testLogger())
	require.NoError(t, err)

	admin, err := s.GetUserByEmail(ctx, "admin@school.edu")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.True(t, token.CheckPassword(admin.PasswordHash, "changeme"))
}

func TestEnsureAdminIdempotent(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, EnsureAdmin(ctx, s, "admin@school.edu", "changeme", testLogger()))
	first, err := s.GetUserByEmail(ctx, "admin@school.edu")
	require.NoError(t, err)

	// A second run with a different password must not touch the account.
	require.NoError(t, EnsureAdmin(ctx, s, "admin@school.edu", "other", testLogger()))
	second, err := s.GetUserByEmail(ctx, "admin@school.edu")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.PasswordHash, second.PasswordHash)
}

func TestEnsureAdminSkippedWithoutCredentials(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, EnsureAdmin(ctx, s, "", "", testLogger()))

	users, err := s.ListUsers(ctx, store.DefaultListOptions())
	require.NoError(t, err)
	assert.Empty(t, users)
}
