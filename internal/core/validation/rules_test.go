package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hafedEfheij/school-management-system-sub001/internal/core/domain"
)

func TestValidateGradeValue(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		wantField string
	}{
		{"zero", 0, ""},
		{"hundred", 100, ""},
		{"mid", 87.5, ""},
		{"negative", -0.5, "value"},
		{"over hundred", 100.01, "value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, _ := ValidateGradeValue(tt.value)
			assert.Equal(t, tt.wantField, field)
		})
	}
}

func TestValidateDayOfWeek(t *testing.T) {
	for day := 0; day <= 6; day++ {
		field, _ := ValidateDayOfWeek(day)
		assert.Empty(t, field)
	}

	field, _ := ValidateDayOfWeek(-1)
	assert.Equal(t, "dayOfWeek", field)

	field, _ = ValidateDayOfWeek(7)
	assert.Equal(t, "dayOfWeek", field)
}

func TestValidateAttendanceStatus(t *testing.T) {
	field, _ := ValidateAttendanceStatus(domain.AttendanceLate)
	assert.Empty(t, field)

	field, msg := ValidateAttendanceStatus(domain.AttendanceStatus("SICK"))
	assert.Equal(t, "status", field)
	assert.Contains(t, msg, "SICK")
}

func TestValidateRole(t *testing.T) {
	field, _ := ValidateRole(domain.RoleTeacher)
	assert.Empty(t, field)

	field, _ = ValidateRole(domain.Role("ROOT"))
	assert.Equal(t, "role", field)
}

func TestValidateTimeRange(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		wantField string
	}{
		{"valid morning slot", "09:00", "10:30", ""},
		{"valid across noon", "11:45", "13:15", ""},
		{"midnight start", "00:00", "23:59", ""},
		{"bad start format", "9:00", "10:30", "startTime"},
		{"bad end format", "09:00", "24:00", "endTime"},
		{"letters", "ab:cd", "10:30", "startTime"},
		{"start equals end", "09:00", "09:00", "startTime"},
		{"start after end", "14:00", "13:00", "startTime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, _ := ValidateTimeRange(tt.start, tt.end)
			assert.Equal(t, tt.wantField, field)
		})
	}
}

func TestValidateDate(t *testing.T) {
	field, _ := ValidateDate("date", "2026-03-15")
	assert.Empty(t, field)

	field, msg := ValidateDate("date", "2026-02-30")
	assert.Equal(t, "date", field)
	assert.Contains(t, msg, "YYYY-MM-DD")

	field, _ = ValidateDate("dateOfBirth", "15/03/2026")
	assert.Equal(t, "dateOfBirth", field)
}

func TestMinuteOfDay(t *testing.T) {
	assert.Equal(t, 0, MinuteOfDay("00:00"))
	assert.Equal(t, 570, MinuteOfDay("09:30"))
	assert.Equal(t, 1439, MinuteOfDay("23:59"))
}

func TestCanDeleteTeacher(t *testing.T) {
	allowed, reason := CanDeleteTeacher(0)
	assert.True(t, allowed)
	assert.Empty(t, reason)

	allowed, reason = CanDeleteTeacher(3)
	assert.False(t, allowed)
	assert.Contains(t, reason, "3 assigned course(s)")
}
