package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hafedEfheij/school-management-system-sub001/internal/core/domain"
)

// =============================================================================
// Business Rule Checks
// =============================================================================

var timeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ValidateGradeValue checks that a grade value is a percentage in [0, 100].
func ValidateGradeValue(value float64) (field, message string) {
	if value < 0 || value > 100 {
		return "value", "value must be between 0 and 100"
	}
	return "", ""
}

// ValidateDayOfWeek checks that the day is 0 (Sunday) through 6 (Saturday).
func ValidateDayOfWeek(day int) (field, message string) {
	if day < 0 || day > 6 {
		return "dayOfWeek", "dayOfWeek must be between 0 and 6"
	}
	return "", ""
}

// ValidateAttendanceStatus checks the status against the allowed enum.
func ValidateAttendanceStatus(status domain.AttendanceStatus) (field, message string) {
	if !status.IsValid() {
		return "status", fmt.Sprintf("status must be one of PRESENT, ABSENT, LATE, EXCUSED, got %q", status)
	}
	return "", ""
}

// ValidateRole checks the role against the allowed enum.
func ValidateRole(role domain.Role) (field, message string) {
	if !role.IsValid() {
		return "role", fmt.Sprintf("role must be one of ADMIN, TEACHER, USER, got %q", role)
	}
	return "", ""
}

// ValidateTimeRange checks that start and end are well-formed 24-hour "HH:MM"
// strings and that start is strictly before end within the same day.
func ValidateTimeRange(start, end string) (field, message string) {
	if !timeRe.MatchString(start) {
		return "startTime", "startTime must be in HH:MM format"
	}
	if !timeRe.MatchString(end) {
		return "endTime", "endTime must be in HH:MM format"
	}
	if MinuteOfDay(start) >= MinuteOfDay(end) {
		return "startTime", "startTime must be before endTime"
	}
	return "", ""
}

// ValidateDate checks that a date string is a real calendar date in
// YYYY-MM-DD form.
func ValidateDate(fieldName, date string) (field, message string) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fieldName, fieldName + " must be a valid date in YYYY-MM-DD format"
	}
	return "", ""
}

// MinuteOfDay converts a validated "HH:MM" string to minutes since midnight.
// Input must already match the HH:MM pattern; malformed input returns 0.
func MinuteOfDay(hhmm string) int {
	h, m, ok := strings.Cut(hhmm, ":")
	if !ok {
		return 0
	}
	hours, err := strconv.Atoi(h)
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return hours*60 + minutes
}

// CanDeleteTeacher checks if a teacher can be deleted.
// A teacher referenced by at least one course must not be removed.
// Returns whether deletion is allowed and an optional reason if not.
func CanDeleteTeacher(courseCount int) (allowed bool, reason string) {
	if courseCount > 0 {
		return false, fmt.Sprintf("teacher has %d assigned course(s); reassign or delete them first", courseCount)
	}
	return true, ""
}
