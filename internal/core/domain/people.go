package domain

import "time"

// =============================================================================
// Teacher
// =============================================================================

// Teacher is a staff member who owns courses and schedules.
// A teacher cannot be deleted while a course still references it.
type Teacher struct {
	ID        string    `db:"id" json:"id"`
	FirstName string    `db:"first_name" json:"firstName"`
	LastName  string    `db:"last_name" json:"lastName"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone,omitempty"`
	Subject   string    `db:"subject" json:"subject"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// FullName returns the display name for rosters and exports.
func (t Teacher) FullName() string {
	return t.FirstName + " " + t.LastName
}

// =============================================================================
// Student
// =============================================================================

// Student owns enrollments, attendances, and grades.
// DateOfBirth is a calendar date in YYYY-MM-DD form.
type Student struct {
	ID          string    `db:"id" json:"id"`
	FirstName   string    `db:"first_name" json:"firstName"`
	LastName    string    `db:"last_name" json:"lastName"`
	Email       string    `db:"email" json:"email,omitempty"`
	Phone       string    `db:"phone" json:"phone,omitempty"`
	Address     string    `db:"address" json:"address,omitempty"`
	DateOfBirth string    `db:"date_of_birth" json:"dateOfBirth,omitempty"`
	GradeLevel  string    `db:"grade_level" json:"gradeLevel"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// FullName returns the display name for rosters and exports.
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
