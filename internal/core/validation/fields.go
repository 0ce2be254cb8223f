package validation

// =============================================================================
// Required-Field Validation Functions
// =============================================================================

// ValidateTeacherFields validates required fields for teacher creation.
// Returns the field name and error message if validation fails.
// Returns empty strings if all fields are valid.
func ValidateTeacherFields(firstName, lastName, email, subject string) (field, message string) {
	if firstName == "" {
		return "firstName", "firstName is required"
	}
	if lastName == "" {
		return "lastName", "lastName is required"
	}
	if email == "" {
		return "email", "email is required"
	}
	if subject == "" {
		return "subject", "subject is required"
	}
	return "", ""
}

// ValidateStudentFields validates required fields for student creation.
func ValidateStudentFields(firstName, lastName, gradeLevel string) (field, message string) {
	if firstName == "" {
		return "firstName", "firstName is required"
	}
	if lastName == "" {
		return "lastName", "lastName is required"
	}
	if gradeLevel == "" {
		return "gradeLevel", "gradeLevel is required"
	}
	return "", ""
}

// ValidateCourseFields validates required fields for course creation.
func ValidateCourseFields(name, teacherID string) (field, message string) {
	if name == "" {
		return "name", "name is required"
	}
	if teacherID == "" {
		return "teacherId", "teacherId is required"
	}
	return "", ""
}

// ValidateEnrollmentFields validates required fields for enrollment creation.
func ValidateEnrollmentFields(studentID, courseID string) (field, message string) {
	if studentID == "" {
		return "studentId", "studentId is required"
	}
	if courseID == "" {
		return "courseId", "courseId is required"
	}
	return "", ""
}

// ValidateGradeFields validates required fields for grade creation.
// The numeric range of the value is checked separately by ValidateGradeValue.
func ValidateGradeFields(studentID, courseID, gradeType, date string) (field, message string) {
	if studentID == "" {
		return "studentId", "studentId is required"
	}
	if courseID == "" {
		return "courseId", "courseId is required"
	}
	if gradeType == "" {
		return "type", "type is required"
	}
	if date == "" {
		return "date", "date is required"
	}
	return "", ""
}

// ValidateAttendanceFields validates required fields for attendance creation.
// The status enum is checked separately by ValidateAttendanceStatus.
func ValidateAttendanceFields(studentID, scheduleID, date string) (field, message string) {
	if studentID == "" {
		return "studentId", "studentId is required"
	}
	if scheduleID == "" {
		return "scheduleId", "scheduleId is required"
	}
	if date == "" {
		return "date", "date is required"
	}
	return "", ""
}

// ValidateScheduleFields validates required fields for schedule creation.
// Time format and ordering are checked separately by ValidateTimeRange.
func ValidateScheduleFields(startTime, endTime, courseID, teacherID string) (field, message string) {
	if startTime == "" {
		return "startTime", "startTime is required"
	}
	if endTime == "" {
		return "endTime", "endTime is required"
	}
	if courseID == "" {
		return "courseId", "courseId is required"
	}
	if teacherID == "" {
		return "teacherId", "teacherId is required"
	}
	return "", ""
}

// ValidateLoginFields validates required fields for a login request.
func ValidateLoginFields(email, password string) (field, message string) {
	if email == "" {
		return "email", "email is required"
	}
	if password == "" {
		return "password", "password is required"
	}
	return "", ""
}

// ValidateRegisterFields validates required fields for user registration.
func ValidateRegisterFields(email, password, name string) (field, message string) {
	if email == "" {
		return "email", "email is required"
	}
	if password == "" {
		return "password", "password is required"
	}
	if name == "" {
		return "name", "name is required"
	}
	return "", ""
}
