package domain

import "time"

// Schedule is a recurring weekly time slot for a course taught by a teacher.
// DayOfWeek is 0 (Sunday) through 6 (Saturday). StartTime and EndTime are
// 24-hour "HH:MM" strings with StartTime strictly before EndTime.
type Schedule struct {
	ID        string    `db:"id" json:"id"`
	DayOfWeek int       `db:"day_of_week" json:"dayOfWeek"`
	StartTime string    `db:"start_time" json:"startTime"`
	EndTime   string    `db:"end_time" json:"endTime"`
	Room      string    `db:"room" json:"room,omitempty"`
	CourseID  string    `db:"course_id" json:"courseId"`
	TeacherID string    `db:"teacher_id" json:"teacherId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// =============================================================================
// Attendance
// =============================================================================

// AttendanceStatus enumerates the allowed attendance markings.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceLate    AttendanceStatus = "LATE"
	AttendanceExcused AttendanceStatus = "EXCUSED"
)

// IsValid checks if the status is one of the four allowed values.
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return true
	default:
		return false
	}
}

// Attendance records one student's presence for one schedule slot on one date.
// The (StudentID, ScheduleID, Date) triple is unique. Date is YYYY-MM-DD.
type Attendance struct {
	ID         string           `db:"id" json:"id"`
	StudentID  string           `db:"student_id" json:"studentId"`
	ScheduleID string           `db:"schedule_id" json:"scheduleId"`
	Date       string           `db:"date" json:"date"`
	Status     AttendanceStatus `db:"status" json:"status"`
	CreatedAt  time.Time        `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time        `db:"updated_at" json:"updatedAt"`
}
