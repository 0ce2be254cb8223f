package store

import (
	"context"

	"github.com/hafedEfheij/school-management-system-sub001/internal/core/domain"
)

// =============================================================================
// Store Interface
// =============================================================================

// Store defines the persistence interface for school records.
type Store interface {
	// User operations
	CreateUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	ListUsers(ctx context.Context, opts ListOptions) ([]domain.User, error)

	// Teacher operations
	CreateTeacher(ctx context.Context, teacher *domain.Teacher) error
	GetTeacher(ctx context.Context, id string) (*domain.Teacher, error)
	GetTeacherByEmail(ctx context.Context, email string) (*domain.Teacher, error)
	UpdateTeacher(ctx context.Context, teacher *domain.Teacher) error
	DeleteTeacher(ctx context.Context, id string) error
	ListTeachers(ctx context.Context, opts ListOptions) ([]domain.Teacher, error)

	// Student operations
	CreateStudent(ctx context.Context, student *domain.Student) error
	GetStudent(ctx context.Context, id string) (*domain.Student, error)
	GetStudentByEmail(ctx context.Context, email string) (*domain.Student, error)
	UpdateStudent(ctx context.Context, student *domain.Student) error
	DeleteStudent(ctx context.Context, id string) error
	ListStudents(ctx context.Context, filter StudentFilter, opts ListOptions) ([]domain.Student, error)

	// Course operations
	CreateCourse(ctx context.Context, course *domain.Course) error
	GetCourse(ctx context.Context, id string) (*domain.Course, error)
	UpdateCourse(ctx context.Context, course *domain.Course) error
	DeleteCourse(ctx context.Context, id string) error
	ListCourses(ctx context.Context, filter CourseFilter, opts ListOptions) ([]domain.Course, error)
	CountCoursesByTeacher(ctx context.Context, teacherID string) (int, error)

	// Schedule operations
	CreateSchedule(ctx context.Context, schedule *domain.Schedule) error
	GetSchedule(ctx context.Context, id string) (*domain.Schedule, error)
	UpdateSchedule(ctx context.Context, schedule *domain.Schedule) error
	DeleteSchedule(ctx context.Context, id string) error
	ListSchedules(ctx context.Context, filter ScheduleFilter, opts ListOptions) ([]domain.Schedule, error)

	// Enrollment operations
	CreateEnrollment(ctx context.Context, enrollment *domain.Enrollment) error
	GetEnrollment(ctx context.Context, id string) (*domain.Enrollment, error)
	GetEnrollmentByStudentCourse(ctx context.Context, studentID, courseID string) (*domain.Enrollment, error)
	DeleteEnrollment(ctx context.Context, id string) error
	ListEnrollments(ctx context.Context, filter EnrollmentFilter, opts ListOptions) ([]domain.Enrollment, error)

	// Grade operations
	CreateGrade(ctx context.Context, grade *domain.Grade) error
	GetGrade(ctx context.Context, id string) (*domain.Grade, error)
	UpdateGrade(ctx context.Context, grade *domain.Grade) error
	DeleteGrade(ctx context.Context, id string) error
	ListGrades(ctx context.Context, filter GradeFilter, opts ListOptions) ([]domain.Grade, error)

	// Attendance operations
	CreateAttendance(ctx context.Context, attendance *domain.Attendance) error
	GetAttendance(ctx context.Context, id string) (*domain.Attendance, error)
	GetAttendanceByStudentScheduleDate(ctx context.Context, studentID, scheduleID, date string) (*domain.Attendance, error)
	UpdateAttendance(ctx context.Context, attendance *domain.Attendance) error
	DeleteAttendance(ctx context.Context, id string) error
	ListAttendance(ctx context.Context, filter AttendanceFilter, opts ListOptions) ([]domain.Attendance, error)

	// Transaction support
	WithTx(ctx context.Context, fn func(Store) error) error

	// Lifecycle
	Close() error
}

// =============================================================================
// Filters
// =============================================================================

// StudentFilter narrows student listings. Search matches a substring of the
// first name, last name, or email, case-insensitively.
type StudentFilter struct {
	GradeLevel string
	Search     string
}

// CourseFilter narrows course listings. Empty fields match everything.
type CourseFilter struct {
	TeacherID string
}

// ScheduleFilter narrows schedule listings. Empty fields match everything;
// DayOfWeek filters only when non-nil.
type ScheduleFilter struct {
	CourseID  string
	TeacherID string
	DayOfWeek *int
}

// EnrollmentFilter narrows enrollment listings.
type EnrollmentFilter struct {
	StudentID string
	CourseID  string
}

// GradeFilter narrows grade listings.
type GradeFilter struct {
	StudentID string
	CourseID  string
}

// AttendanceFilter narrows attendance listings.
type AttendanceFilter struct {
	StudentID  string
	ScheduleID string
	Date       string
}

// =============================================================================
// Options
// =============================================================================

// ListOptions defines pagination options.
type ListOptions struct {
	Limit  int
	Offset int
}

// DefaultListOptions returns default list options.
func DefaultListOptions() ListOptions {
	return ListOptions{
		Limit:  100,
		Offset: 0,
	}
}

// Normalize ensures list options have valid values.
func (o ListOptions) Normalize() ListOptions {
	if o.Limit <= 0 {
		o.Limit = 100
	}
	if o.Limit > 1000 {
		o.Limit = 1000
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
	return o
}
