package api

import "time"

// =============================================================================
// Request Types
// =============================================================================

// LoginRequest is the request body for logging in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the request body for registering a user account.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	Role      string `json:"role,omitempty"`
	TeacherID string `json:"teacherId,omitempty"`
}

// CreateTeacherRequest is the request body for creating a teacher.
type CreateTeacherRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Subject   string `json:"subject"`
}

// UpdateTeacherRequest is the request body for updating a teacher.
// Empty fields keep their current values.
type UpdateTeacherRequest struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Subject   string `json:"subject,omitempty"`
}

// CreateStudentRequest is the request body for creating a student.
type CreateStudentRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	GradeLevel  string `json:"gradeLevel"`
}

// UpdateStudentRequest is the request body for updating a student.
type UpdateStudentRequest struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	GradeLevel  string `json:"gradeLevel,omitempty"`
}

// CreateCourseRequest is the request body for creating a course.
// Credits defaults to 1 when omitted.
type CreateCourseRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Credits     *int   `json:"credits,omitempty"`
	TeacherID   string `json:"teacherId"`
}

// UpdateCourseRequest is the request body for updating a course.
type UpdateCourseRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Credits     *int   `json:"credits,omitempty"`
	TeacherID   string `json:"teacherId,omitempty"`
}

// CreateScheduleRequest is the request body for creating a schedule slot.
type CreateScheduleRequest struct {
	DayOfWeek *int   `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Room      string `json:"room,omitempty"`
	CourseID  string `json:"courseId"`
	TeacherID string `json:"teacherId"`
}

// UpdateScheduleRequest is the request body for updating a schedule slot.
type UpdateScheduleRequest struct {
	DayOfWeek *int   `json:"dayOfWeek,omitempty"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	Room      string `json:"room,omitempty"`
	CourseID  string `json:"courseId,omitempty"`
	TeacherID string `json:"teacherId,omitempty"`
}

// CreateEnrollmentRequest is the request body for enrolling a student.
type CreateEnrollmentRequest struct {
	StudentID string `json:"studentId"`
	CourseID  string `json:"courseId"`
}

// CreateGradeRequest is the request body for recording a grade.
type CreateGradeRequest struct {
	StudentID string   `json:"studentId"`
	CourseID  string   `json:"courseId"`
	Value     *float64 `json:"value"`
	Type      string   `json:"type"`
	Date      string   `json:"date"`
}

// UpdateGradeRequest is the request body for updating a grade.
type UpdateGradeRequest struct {
	Value *float64 `json:"value,omitempty"`
	Type  string   `json:"type,omitempty"`
	Date  string   `json:"date,omitempty"`
}

// CreateAttendanceRequest is the request body for recording attendance.
type CreateAttendanceRequest struct {
	StudentID  string `json:"studentId"`
	ScheduleID string `json:"scheduleId"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// UpdateAttendanceRequest is the request body for updating an attendance record.
type UpdateAttendanceRequest struct {
	Date   string `json:"date,omitempty"`
	Status string `json:"status,omitempty"`
}

// =============================================================================
// Response Types
// =============================================================================

// TeacherResponse is the response for teacher operations.
type TeacherResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StudentResponse is the response for student operations.
type StudentResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	DateOfBirth string    `json:"dateOfBirth,omitempty"`
	GradeLevel  string    `json:"gradeLevel"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CourseResponse is the response for course operations.
// Teacher embeds the owning teacher when it could be resolved.
type CourseResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Credits     int              `json:"credits"`
	TeacherID   string           `json:"teacherId"`
	Teacher     *TeacherResponse `json:"teacher,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// ScheduleResponse is the response for schedule operations.
type ScheduleResponse struct {
	ID        string    `json:"id"`
	DayOfWeek int       `json:"dayOfWeek"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Room      string    `json:"room,omitempty"`
	CourseID  string    `json:"courseId"`
	TeacherID string    `json:"teacherId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EnrollmentResponse is the response for enrollment operations.
type EnrollmentResponse struct {
	ID        string    `json:"id"`
	StudentID string    `json:"studentId"`
	CourseID  string    `json:"courseId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GradeResponse is the response for grade operations.
type GradeResponse struct {
	ID        string    `json:"id"`
	StudentID string    `json:"studentId"`
	CourseID  string    `json:"courseId"`
	Value     float64   `json:"value"`
	Type      string    `json:"type"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AttendanceResponse is the response for attendance operations.
type AttendanceResponse struct {
	ID         string    `json:"id"`
	StudentID  string    `json:"studentId"`
	ScheduleID string    `json:"scheduleId"`
	Date       string    `json:"date"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// UserResponse is the response for user account operations.
// The password hash never leaves the server.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	TeacherID string    `json:"teacherId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LoginResponse is the response for a successful login or registration.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ListResponse wraps a listing with its pagination window. Clients page
// forward until a page comes back shorter than the limit.
type ListResponse[T any] struct {
	Items  []T `json:"items"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// MessageResponse is the response for delete operations.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HealthResponse is the response for health checks.
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadyResponse is the response for readiness checks.
type ReadyResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
