package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hafedEfheij/school-management-system-sub001/internal/core/domain"
)

func authed(role domain.Role) Context {
	return Context{UserID: "usr_1", Role: role, Authenticated: true}
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, IsAdmin(authed(domain.RoleAdmin)))
	assert.False(t, IsAdmin(authed(domain.RoleTeacher)))
	assert.False(t, IsAdmin(Context{Role: domain.RoleAdmin, Authenticated: false}))
}

func TestCanManageRecords(t *testing.T) {
	assert.True(t, CanManageRecords(authed(domain.RoleAdmin)))
	assert.True(t, CanManageRecords(authed(domain.RoleTeacher)))
	assert.False(t, CanManageRecords(authed(domain.RoleUser)))
	assert.False(t, CanManageRecords(Context{}))
}

func TestCanManageUsers(t *testing.T) {
	assert.True(t, CanManageUsers(authed(domain.RoleAdmin)))
	assert.False(t, CanManageUsers(authed(domain.RoleTeacher)))
	assert.False(t, CanManageUsers(authed(domain.RoleUser)))
}

func TestCanExportReports(t *testing.T) {
	assert.True(t, CanExportReports(authed(domain.RoleTeacher)))
	assert.False(t, CanExportReports(authed(domain.RoleUser)))
}
