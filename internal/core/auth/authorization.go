package auth

import "github.com/hafedEfheij/school-management-system-sub001/internal/core/domain"

// =============================================================================
// Role Checks
// =============================================================================

// IsAdmin reports whether the context belongs to an authenticated ADMIN.
func IsAdmin(ctx Context) bool {
	return ctx.Authenticated && ctx.Role == domain.RoleAdmin
}

// IsTeacher reports whether the context belongs to an authenticated TEACHER.
func IsTeacher(ctx Context) bool {
	return ctx.Authenticated && ctx.Role == domain.RoleTeacher
}

// =============================================================================
// Operation Authorization
// =============================================================================

// CanManageRecords checks if the user can create, update, or delete records.
// Admins and teachers manage records; plain users are read-only.
func CanManageRecords(ctx Context) bool {
	return ctx.Authenticated && (ctx.Role == domain.RoleAdmin || ctx.Role == domain.RoleTeacher)
}

// CanManageUsers checks if the user can register accounts or change roles.
// Only admins administer accounts.
func CanManageUsers(ctx Context) bool {
	return IsAdmin(ctx)
}

// CanExportReports checks if the user can download exported workbooks.
func CanExportReports(ctx Context) bool {
	return CanManageRecords(ctx)
}
