// Package seed bootstraps accounts the API cannot function without.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hafedEfheij/school-management-system-sub001/internal/core/domain"
	"github.com/hafedEfheij/school-management-system-sub001/internal/shell/store"
	"github.com/hafedEfheij/school-management-system-sub001/internal/shell/token"
)

// EnsureAdmin creates the configured ADMIN account if no account with that
// email exists yet. Registration requires an admin, so a fresh database
// would otherwise have no way in.
func EnsureAdmin(ctx context.Context, s store.Store, email, password string, logger *slog.Logger) error {
	if email == "" || password == "" {
		logger.Warn("admin seeding skipped, no credentials configured")
		return nil
	}

	_, err := s.GetUserByEmail(ctx, email)
	if err == nil {
		return nil
	}
	var storeErr *store.StoreError
	if !errors.As(err, &storeErr) || !errors.Is(storeErr.Unwrap(), store.ErrNotFound) {
		return fmt.Errorf("look up admin account: %w", err)
	}

	hash, err := token.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now().UTC()
	admin := &domain.User{
		ID:           domain.NewID(domain.PrefixUser),
		Email:        email,
		Name:         "Administrator",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.CreateUser(ctx, admin); err != nil {
		return fmt.Errorf("create admin account: %w", err)
	}

	logger.Info("admin account created", "user_id", admin.ID, "email", email)
	return nil
}
