package domain

import "github.com/google/uuid"

// ID prefixes for each entity kind. Records carry short prefixed IDs
// (e.g. "stu_3f2a9c1d") so an ID is self-describing in logs and URLs.
const (
	PrefixUser       = "usr_"
	PrefixTeacher    = "tch_"
	PrefixStudent    = "stu_"
	PrefixCourse     = "crs_"
	PrefixSchedule   = "sch_"
	PrefixEnrollment = "enr_"
	PrefixGrade      = "grd_"
	PrefixAttendance = "att_"
)

// NewID generates a prefixed short ID for an entity.
func NewID(prefix string) string {
	return prefix + uuid.New().String()[:8]
}
