package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hafedEfheij/school-management-system-sub001/internal/core/domain"
)

func TestContextRoundTrip(t *testing.T) {
	authCtx := Context{
		UserID:        "usr_12345678",
		Email:         "admin@school.edu",
		Role:          domain.RoleAdmin,
		Authenticated: true,
	}

	ctx := WithContext(context.Background(), authCtx)
	got := FromContext(ctx)

	assert.Equal(t, authCtx, got)
}

func TestFromContextMissing(t *testing.T) {
	got := FromContext(context.Background())
	assert.False(t, got.Authenticated)
	assert.Empty(t, got.UserID)
}
