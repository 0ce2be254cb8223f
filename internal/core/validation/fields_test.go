package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTeacherFields(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		email     string
		subject   string
		wantField string
	}{
		{"valid", "Alan", "Turing", "alan@school.edu", "Math", ""},
		{"missing first name", "", "Turing", "alan@school.edu", "Math", "firstName"},
		{"missing last name", "Alan", "", "alan@school.edu", "Math", "lastName"},
		{"missing email", "Alan", "Turing", "", "Math", "email"},
		{"missing subject", "Alan", "Turing", "alan@school.edu", "", "subject"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, msg := ValidateTeacherFields(tt.firstName, tt.lastName, tt.email, tt.subject)
			assert.Equal(t, tt.wantField, field)
			if tt.wantField == "" {
				assert.Empty(t, msg)
			} else {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestValidateStudentFields(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		grade     string
		wantField string
	}{
		{"valid", "Ada", "Lovelace", "10", ""},
		{"missing first name", "", "Lovelace", "10", "firstName"},
		{"missing last name", "Ada", "", "10", "lastName"},
		{"missing grade level", "Ada", "Lovelace", "", "gradeLevel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, _ := ValidateStudentFields(tt.firstName, tt.lastName, tt.grade)
			assert.Equal(t, tt.wantField, field)
		})
	}
}

func TestValidateCourseFields(t *testing.T) {
	field, _ := ValidateCourseFields("Algebra I", "tch_12345678")
	assert.Empty(t, field)

	field, msg := ValidateCourseFields("", "tch_12345678")
	assert.Equal(t, "name", field)
	assert.Equal(t, "name is required", msg)

	field, _ = ValidateCourseFields("Algebra I", "")
	assert.Equal(t, "teacherId", field)
}

func TestValidateEnrollmentFields(t *testing.T) {
	field, _ := ValidateEnrollmentFields("stu_1", "crs_1")
	assert.Empty(t, field)

	field, _ = ValidateEnrollmentFields("", "crs_1")
	assert.Equal(t, "studentId", field)

	field, _ = ValidateEnrollmentFields("stu_1", "")
	assert.Equal(t, "courseId", field)
}

func TestValidateGradeFields(t *testing.T) {
	field, _ := ValidateGradeFields("stu_1", "crs_1", "exam", "2026-03-15")
	assert.Empty(t, field)

	tests := []struct {
		name      string
		student   string
		course    string
		gradeType string
		date      string
		wantField string
	}{
		{"missing student", "", "crs_1", "exam", "2026-03-15", "studentId"},
		{"missing course", "stu_1", "", "exam", "2026-03-15", "courseId"},
		{"missing type", "stu_1", "crs_1", "", "2026-03-15", "type"},
		{"missing date", "stu_1", "crs_1", "exam", "", "date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, _ := ValidateGradeFields(tt.student, tt.course, tt.gradeType, tt.date)
			assert.Equal(t, tt.wantField, field)
		})
	}
}

func TestValidateAttendanceFields(t *testing.T) {
	field, _ := ValidateAttendanceFields("stu_1", "sch_1", "2026-03-15")
	assert.Empty(t, field)

	field, _ = ValidateAttendanceFields("", "sch_1", "2026-03-15")
	assert.Equal(t, "studentId", field)

	field, _ = ValidateAttendanceFields("stu_1", "", "2026-03-15")
	assert.Equal(t, "scheduleId", field)

	field, _ = ValidateAttendanceFields("stu_1", "sch_1", "")
	assert.Equal(t, "date", field)
}

func TestValidateScheduleFields(t *testing.T) {
	field, _ := ValidateScheduleFields("09:00", "10:30", "crs_1", "tch_1")
	assert.Empty(t, field)

	field, _ = ValidateScheduleFields("", "10:30", "crs_1", "tch_1")
	assert.Equal(t, "startTime", field)

	field, _ = ValidateScheduleFields("09:00", "10:30", "", "tch_1")
	assert.Equal(t, "courseId", field)
}

func TestValidateLoginFields(t *testing.T) {
	field, _ := ValidateLoginFields("admin@school.edu", "secret")
	assert.Empty(t, field)

	field, _ = ValidateLoginFields("", "secret")
	assert.Equal(t, "email", field)

	field, _ = ValidateLoginFields("admin@school.edu", "")
	assert.Equal(t, "password", field)
}

func TestValidateRegisterFields(t *testing.T) {
	field, _ := ValidateRegisterFields("new@school.edu", "secret", "New User")
	assert.Empty(t, field)

	field, _ = ValidateRegisterFields("new@school.edu", "secret", "")
	assert.Equal(t, "name", field)
}
