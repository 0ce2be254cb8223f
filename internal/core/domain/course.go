package domain

import "time"

// DefaultCredits is applied when a course is created without a credit value.
const DefaultCredits = 1

// Course is a unit of teaching owned by one teacher.
type Course struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description,omitempty"`
	Credits     int       `db:"credits" json:"credits"`
	TeacherID   string    `db:"teacher_id" json:"teacherId"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// Enrollment links one student to one course.
// The (StudentID, CourseID) pair is unique.
type Enrollment struct {
	ID        string    `db:"id" json:"id"`
	StudentID string    `db:"student_id" json:"studentId"`
	CourseID  string    `db:"course_id" json:"courseId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Grade is a scored assessment for a student in a course.
// Value is a percentage in [0, 100]. Date is YYYY-MM-DD.
// A grade requires an existing enrollment for its (student, course) pair.
type Grade struct {
	ID        string    `db:"id" json:"id"`
	StudentID string    `db:"student_id" json:"studentId"`
	CourseID  string    `db:"course_id" json:"courseId"`
	Value     float64   `db:"value" json:"value"`
	Type      string    `db:"type" json:"type"`
	Date      string    `db:"date" json:"date"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
