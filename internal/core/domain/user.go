// Package domain contains the core domain types for the school management
// system. This is part of the Functional Core - all functions are pure with
// no I/O.
package domain

import "time"

// =============================================================================
// Role
// =============================================================================

// Role controls what a user account is allowed to do.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleTeacher Role = "TEACHER"
	RoleUser    Role = "USER"
)

// IsValid checks if the role is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleUser:
		return true
	default:
		return false
	}
}

// =============================================================================
// User
// =============================================================================

// User is an account that can authenticate against the API.
// PasswordHash holds the bcrypt hash and is never serialized.
type User struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	Name         string    `db:"name" json:"name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	TeacherID    *string   `db:"teacher_id" json:"teacherId,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
