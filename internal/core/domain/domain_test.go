package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	id := NewID(PrefixStudent)
	assert.True(t, strings.HasPrefix(id, "stu_"))
	assert.Len(t, id, len(PrefixStudent)+8)

	// IDs must not collide in practice
	other := NewID(PrefixStudent)
	assert.NotEqual(t, id, other)
}

func TestRoleIsValid(t *testing.T) {
	tests := []struct {
		role  Role
		valid bool
	}{
		{RoleAdmin, true},
		{RoleTeacher, true},
		{RoleUser, true},
		{Role("SUPERUSER"), false},
		{Role("admin"), false},
		{Role(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.role.IsValid())
		})
	}
}

func TestAttendanceStatusIsValid(t *testing.T) {
	tests := []struct {
		status AttendanceStatus
		valid  bool
	}{
		{AttendancePresent, true},
		{AttendanceAbsent, true},
		{AttendanceLate, true},
		{AttendanceExcused, true},
		{AttendanceStatus("present"), false},
		{AttendanceStatus("SICK"), false},
		{AttendanceStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.status.IsValid())
		})
	}
}

func TestFullName(t *testing.T) {
	s := Student{FirstName: "Ada", LastName: "Lovelace"}
	assert.Equal(t, "Ada Lovelace", s.FullName())

	tc := Teacher{FirstName: "Alan", LastName: "Turing"}
	assert.Equal(t, "Alan Turing", tc.FullName())
}
