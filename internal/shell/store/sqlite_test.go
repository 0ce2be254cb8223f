package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hafedEfheij/school-management-system-sub001/internal/core/domain"
)

// =============================================================================
// Test Helpers
// =============================================================================

func setupTestStore(t *testing.T) Store {
	t.Helper()
	store, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

func createTestTeacher(t *testing.T, s Store) *domain.Teacher {
	t.Helper()
	teacher := &domain.Teacher{
		ID:        domain.NewID(domain.PrefixTeacher),
		FirstName: "Alan",
		LastName:  "Turing",
		Email:     domain.NewID("t") + "@school.edu",
		Subject:   "Mathematics",
		CreatedAt: now(),
		UpdatedAt: now(),
	}
	require.NoError(t, s.CreateTeacher(context.Background(), teacher))
	return teacher
}

func createTestStudent(t *testing.T, s Store) *domain.Student {
	t.Helper()
	student := &domain.Student{
		ID:         domain.NewID(domain.PrefixStudent),
		FirstName:  "Ada",
		LastName:   "Lovelace",
		GradeLevel: "10",
		CreatedAt:  now(),
		UpdatedAt:  now(),
	}
	require.NoError(t, s.CreateStudent(context.Background(), student))
	return student
}

func createTestCourse(t *testing.T, s Store, teacherID string) *domain.Course {
	t.Helper()
	course := &domain.Course{
		ID:        domain.NewID(domain.PrefixCourse),
		Name:      "Algebra I",
		Credits:   domain.DefaultCredits,
		TeacherID: teacherID,
		CreatedAt: now(),
		UpdatedAt: now(),
	}
	require.NoError(t, s.CreateCourse(context.Background(), course))
	return course
}

func createTestSchedule(t *testing.T, s Store, courseID, teacherID string) *domain.Schedule {
	t.Helper()
	schedule := &domain.Schedule{
		ID:        domain.NewID(domain.PrefixSchedule),
		DayOfWeek: 1,
		StartTime: "09:00",
		EndTime:   "10:30",
		Room:      "101",
		CourseID:  courseID,
		TeacherID: teacherID,
		CreatedAt: now(),
		UpdatedAt: now(),
	}
	require.NoError(t, s.CreateSchedule(context.Background(), schedule))
	return schedule
}

func createTestEnrollment(t *testing.T, s Store, studentID, courseID string) *domain.Enrollment {
	t.Helper()
	enrollment := &domain.Enrollment{
		ID:        domain.NewID(domain.PrefixEnrollment),
		StudentID: studentID,
		CourseID:  courseID,
		CreatedAt: now(),
		UpdatedAt: now(),
	}
	require.NoError(t, s.CreateEnrollment(context.Background(), enrollment))
	return enrollment
}

// =============================================================================
// Teacher Tests
// =============================================================================

func TestTeacherCRUD(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	teacher := createTestTeacher(t, s)

	got, err := s.GetTeacher(ctx, teacher.ID)
	require.NoError(t, err)
	assert.Equal(t, teacher.FirstName, got.FirstName)
	assert.Equal(t, teacher.Email, got.Email)

	got, err = s.GetTeacherByEmail(ctx, teacher.Email)
	require.NoError(t, err)
	assert.Equal(t, teacher.ID, got.ID)

	teacher.Subject = "Physics"
	teacher.UpdatedAt = now()
	require.NoError(t, s.UpdateTeacher(ctx, teacher))

	got, err = s.GetTeacher(ctx, teacher.ID)
	require.NoError(t, err)
	assert.Equal(t, "Physics", got.Subject)

	require.NoError(t, s.DeleteTeacher(ctx, teacher.ID))

	_, err = s.GetTeacher(ctx, teacher.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTeacherDuplicateEmail(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	teacher := createTestTeacher(t, s)

	dup := &domain.Teacher{
		ID:        domain.NewID(domain.PrefixTeacher),
		FirstName: "Other",
		LastName:  "Teacher",
		Email:     teacher.Email,
		Subject:   "History",
		CreatedAt: now(),
		UpdatedAt: now(),
	}
	err := s.CreateTeacher(ctx, dup)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestTeacherNotFound(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, err := s.GetTeacher(ctx, "tch_missing1")
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.DeleteTeacher(ctx, "tch_missing1")
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.UpdateTeacher(ctx, &domain.Teacher{
		ID: "tch_missing1", FirstName: "X", LastName: "Y",
		Email: "x@y.z", Subject: "Z", UpdatedAt: now(),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteTeacherWithCourseRestricted(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	teacher := createTestTeacher(t, s)
	createTestCourse(t, s, teacher.ID)

	err := s.DeleteTeacher(ctx, teacher.ID)
	assert.ErrorIs(t, err, ErrForeignKey)

	// Teacher must still exist after the failed delete
	_, err = s.GetTeacher(ctx, teacher.ID)
	require.NoError(t, err)
}

// =============================================================================
// Student Tests
// =============================================================================

func TestStudentCRUD(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	student := createTestStudent(t, s)

	got, err := s.GetStudent(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.FirstName)

	student.GradeLevel = "11"
	student.UpdatedAt = now()
	require.NoError(t, s.UpdateStudent(ctx, student))

	got, err = s.GetStudent(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "11", got.GradeLevel)

	require.NoError(t, s.DeleteStudent(ctx, student.ID))
	_, err = s.GetStudent(ctx, student.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStudentEmailOptionalButUnique(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	// Two students without email are fine
	createTestStudent(t, s)
	createTestStudent(t, s)

	a := &domain.Student{
		ID: domain.NewID(domain.PrefixStudent), FirstName: "A", LastName: "A",
		Email: "shared@school.edu", GradeLevel: "9",
		CreatedAt: now(), UpdatedAt: now(),
	}
	require.NoError(t, s.CreateStudent(ctx, a))

	b := &domain.Student{
		ID: domain.NewID(domain.PrefixStudent), FirstName: "B", LastName: "B",
		Email: "shared@school.edu", GradeLevel: "9",
		CreatedAt: now(), UpdatedAt: now(),
	}
	err := s.CreateStudent(ctx, b)
	assert.ErrorIs(t, err, ErrDuplicate)

	got, err := s.GetStudentByEmail(ctx, "shared@school.edu")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
}

func TestListStudentsPagination(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		createTestStudent(t, s)
	}

	page, err := s.ListStudents(ctx, StudentFilter{}, ListOptions{Limit: 2, Offset: 0})
	require.NoError(t, err)
	assert.Len(t, page, 2)

	rest, err := s.ListStudents(ctx, StudentFilter{}, ListOptions{Limit: 10, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, rest, 3)
}

func TestListStudentsFiltered(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	students := []*domain.Student{
		{ID: domain.NewID(domain.PrefixStudent), FirstName: "Amina", LastName: "Haddad",
			Email: "amina@school.edu", GradeLevel: "10", CreatedAt: now, UpdatedAt: now},
		{ID: domain.NewID(domain.PrefixStudent), FirstName: "Omar", LastName: "Benali",
			GradeLevel: "10", CreatedAt: now, UpdatedAt: now},
		{ID: domain.NewID(domain.PrefixStudent), FirstName: "Lina", LastName: "Haddad",
			GradeLevel: "11", CreatedAt: now, UpdatedAt: now},
	}
	for _, st := range students {
		require.NoError(t, s.CreateStudent(ctx, st))
	}

	tenth, err := s.ListStudents(ctx, StudentFilter{GradeLevel: "10"}, DefaultListOptions())
	require.NoError(t, err)
	assert.Len(t, tenth, 2)

	haddads, err := s.ListStudents(ctx, StudentFilter{Search: "haddad"}, DefaultListOptions())
	require.NoError(t, err)
	assert.Len(t, haddads, 2)

	both, err := s.ListStudents(ctx, StudentFilter{GradeLevel: "10", Search: "haddad"}, DefaultListOptions())
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "Amina", both[0].FirstName)

	byEmail, err := s.ListStudents(ctx, StudentFilter{Search: "amina@"}, DefaultListOptions())
	require.NoError(t, err)
	assert.Len(t, byEmail, 1)
}

// =============================================================================
// Course Tests
// =============================================================================

func TestCourseCRUD(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	teacher := createTestTeacher(t, s)
	course := createTestCourse(t, s, teacher.ID)

	got, err := s.GetCourse(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Algebra I", got.Name)
	assert.Equal(t, 1, got.Credits)

	course.Credits = 3
	course.UpdatedAt = now()
	require.NoError(t, s.UpdateCourse(ctx, course))

	got, err = s.GetCourse(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Credits)

	require.NoError(t, s.DeleteCourse(ctx, course.ID))
	_, err = s.GetCourse(ctx, course.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateCourseUnknownTeacher(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	course := &domain.Course{
		ID: domain.NewID(domain.PrefixCourse), Name: "Orphan", Credits: 1,
		TeacherID: "tch_missing1", CreatedAt: now(), UpdatedAt: now(),
	}
	err := s.CreateCourse(ctx, course)
	assert.ErrorIs(t, err, ErrForeignKey)
}

func TestCountCoursesByTeacher(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	teacher := createTestTeacher(t, s)
	other := createTestTeacher(t, s)

	createTestCourse(t, s, teacher.ID)
	createTestCourse(t, s, teacher.ID)

	count, err := s.CountCoursesByTeacher(ctx, teacher.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = s.CountCoursesByTeacher(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestListCoursesByTeacher(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	teacher := createTestTeacher(t, s)
	other := createTestTeacher(t, s)
	createTestCourse(t, s, teacher.ID)
	createTestCourse(t, s, other.ID)

	courses, err := s.ListCourses(ctx, CourseFilter{TeacherID: teacher.ID}, DefaultListOptions())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, teacher.ID, courses[0].TeacherID)

	all, err := s.ListCourses(ctx, CourseFilter{}, DefaultListOptions())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

// =============================================================================
// Schedule Tests
// =============================================================================

func TestScheduleCRUD(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	teacher := createTestTeacher(t, s)
	course := createTestCourse(t, s, teacher.ID)
	schedule := createTestSchedule(t, s, course.ID, teacher.ID)

	got, err := s.GetSchedule(ctx, schedule.ID)
	require.NoError(t, err)
	assert.Equal(t, "09:00", got.StartTime)
	assert.Equal(t, 1, got.DayOfWeek)

	schedule.Room = "202"
	schedule.UpdatedAt = now()
	require.NoError(t, s.UpdateSchedule(ctx, schedule))

	got, err = s.GetSchedule(ctx, schedule.ID)
	require.NoError(t, err)
	assert.Equal(t, "202", got.Room)

	require.NoError(t, s.DeleteSchedule(ctx, schedule.ID))
	_, err = s.GetSchedule(ctx, schedule.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListSchedulesFiltered(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	teacher := createTestTeacher(t, s)
	course := createTestCourse(t, s, teacher.ID)
	createTestSchedule(t, s, course.ID, teacher.ID)

	other := &domain.Schedule{
		ID: domain.NewID(domain.PrefixSchedule), DayOfWeek: 3,
		StartTime: "13:00", EndTime: "14:00",
		CourseID: course.ID, TeacherID: teacher.ID,
		CreatedAt: now(), UpdatedAt: now(),
	}
	require.NoError(t, s.CreateSchedule(ctx, other))

	day := 3
	schedules, err := s.ListSchedules(ctx, ScheduleFilter{DayOfWeek: &day}, DefaultListOptions())
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, "13:00", schedules[0].StartTime)

	schedules, err = s.ListSchedules(ctx, ScheduleFilter{CourseID: course.ID}, DefaultListOptions())
	require.NoError(t, err)
	assert.Len(t, schedules, 2)
}

func TestDeleteCourseCascadesSchedules(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	teacher := createTestTeacher(t, s)
	course := createTestCourse(t, s, teacher.ID)
	schedule := createTestSchedule(t, s, course.ID, teacher.ID)

	require.NoError(t, s.DeleteCourse(ctx, course.ID))

	_, err := s.GetSchedule(ctx, schedule.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

// =============================================================================
// Enrollment Tests
// =============================================================================

func TestEnrollmentCRUD(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	teacher := createTestTeacher(t, s)
	course := createTestCourse(t, s, teacher.ID)
	student := createTestStudent(t, s)
	enrollment := createTestEnrollment(t, s, student.ID, course.ID)

	got, err := s.GetEnrollment(ctx, enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, student.ID, got.StudentID)

	got, err = s.GetEnrollmentByStudentCourse(ctx, student.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, enrollment.ID, got.ID)

	require.NoError(t, s.DeleteEnrollment(ctx, enrollment.ID))
	_, err = s.GetEnrollment(ctx, enrollment.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDuplicateEnrollmentRejected(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	teacher := createTestTeacher(t, s)
	course := createTestCourse(t, s, teacher.ID)
	student := createTestStudent(t, s)
	createTestEnrollment(t, s, student.ID, course.ID)

	dup := &domain.Enrollment{
		ID:        domain.NewID(domain.PrefixEnrollment),
		StudentID: student.ID,
		CourseID:  course.ID,
		CreatedAt: now(),
		UpdatedAt: now(),
	}
	err := s.CreateEnrollment(ctx, dup)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestDeleteStudentCascadesEnrollments(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	teacher := createTestTeacher(t, s)
	course := createTestCourse(t, s, teacher.ID)
	student := createTestStudent(t, s)
	enrollment := createTestEnrollment(t, s, student.ID, course.ID)

	require.NoError(t, s.DeleteStudent(ctx, student.ID))

	_, err := s.GetEnrollment(ctx, enrollment.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

// =============================================================================
// Grade Tests
// =============================================================================

func TestGradeCRUD(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	teacher := createTestTeacher(t, s)
	course := createTestCourse(t, s, teacher.ID)
	student := createTestStudent(t, s)
	createTestEnrollment(t, s, student.ID, course.ID)

	grade := &domain.Grade{
		ID:        domain.NewID(domain.PrefixGrade),
		StudentID: student.ID,
		CourseID:  course.ID,
		Value:     87.5,
		Type:      "exam",
		Date:      "2026-03-15",
		CreatedAt: now(),
		UpdatedAt: now(),
	}
	require.NoError(t, s.CreateGrade(ctx, grade))

	got, err := s.GetGrade(ctx, grade.ID)
	require.NoError(t, err)
	assert.Equal(t, 87.5, got.Value)

	grade.Value = 92
	grade.UpdatedAt = now()
	require.NoError(t, s.UpdateGrade(ctx, grade))

	got, err = s.GetGrade(ctx, grade.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(92), got.Value)

	grades, err := s.ListGrades(ctx, GradeFilter{StudentID: student.ID}, DefaultListOptions())
	require.NoError(t, err)
	assert.Len(t, grades, 1)

	require.NoError(t, s.DeleteGrade(ctx, grade.ID))
	_, err = s.GetGrade(ctx, grade.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

// =============================================================================
// Attendance Tests
// =============================================================================

func TestAttendanceCRUD(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	teacher := createTestTeacher(t, s)
	course := createTestCourse(t, s, teacher.ID)
	schedule := createTestSchedule(t, s, course.ID, teacher.ID)
	student := createTestStudent(t, s)

	attendance := &domain.Attendance{
		ID:         domain.NewID(domain.PrefixAttendance),
		StudentID:  student.ID,
		ScheduleID: schedule.ID,
		Date:       "2026-03-16",
		Status:     domain.AttendancePresent,
		CreatedAt:  now(),
		UpdatedAt:  now(),
	}
	require.NoError(t, s.CreateAttendance(ctx, attendance))

	got, err := s.GetAttendance(ctx, attendance.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AttendancePresent, got.Status)

	got, err = s.GetAttendanceByStudentScheduleDate(ctx, student.ID, schedule.ID, "2026-03-16")
	require.NoError(t, err)
	assert.Equal(t, attendance.ID, got.ID)

	attendance.Status = domain.AttendanceLate
	attendance.UpdatedAt = now()
	require.NoError(t, s.UpdateAttendance(ctx, attendance))

	got, err = s.GetAttendance(ctx, attendance.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AttendanceLate, got.Status)

	require.NoError(t, s.DeleteAttendance(ctx, attendance.ID))
	_, err = s.GetAttendance(ctx, attendance.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDuplicateAttendanceRejected(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	teacher := createTestTeacher(t, s)
	course := createTestCourse(t, s, teacher.ID)
	schedule := createTestSchedule(t, s, course.ID, teacher.ID)
	student := createTestStudent(t, s)

	first := &domain.Attendance{
		ID: domain.NewID(domain.PrefixAttendance), StudentID: student.ID,
		ScheduleID: schedule.ID, Date: "2026-03-16",
		Status: domain.AttendancePresent, CreatedAt: now(), UpdatedAt: now(),
	}
	require.NoError(t, s.CreateAttendance(ctx, first))

	dup := &domain.Attendance{
		ID: domain.NewID(domain.PrefixAttendance), StudentID: student.ID,
		ScheduleID: schedule.ID, Date: "2026-03-16",
		Status: domain.AttendanceAbsent, CreatedAt: now(), UpdatedAt: now(),
	}
	err := s.CreateAttendance(ctx, dup)
	assert.ErrorIs(t, err, ErrDuplicate)

	// Same student and schedule on a different date is allowed
	other := &domain.Attendance{
		ID: domain.NewID(domain.PrefixAttendance), StudentID: student.ID,
		ScheduleID: schedule.ID, Date: "2026-03-17",
		Status: domain.AttendanceAbsent, CreatedAt: now(), UpdatedAt: now(),
	}
	require.NoError(t, s.CreateAttendance(ctx, other))
}

// =============================================================================
// User Tests
// =============================================================================

func TestUserCRUD(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	user := &domain.User{
		ID:           domain.NewID(domain.PrefixUser),
		Email:        "admin@school.edu",
		Name:         "Admin",
		PasswordHash: "$2a$10$fakehash",
		Role:         domain.RoleAdmin,
		CreatedAt:    now(),
		UpdatedAt:    now(),
	}
	require.NoError(t, s.CreateUser(ctx, user))

	got, err := s.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, got.Role)
	assert.Nil(t, got.TeacherID)

	got, err = s.GetUserByEmail(ctx, "admin@school.edu")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	dup := &domain.User{
		ID: domain.NewID(domain.PrefixUser), Email: "admin@school.edu",
		Name: "Other", PasswordHash: "x", Role: domain.RoleUser,
		CreatedAt: now(), UpdatedAt: now(),
	}
	err = s.CreateUser(ctx, dup)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserTeacherLink(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	teacher := createTestTeacher(t, s)
	user := &domain.User{
		ID:           domain.NewID(domain.PrefixUser),
		Email:        "alan@school.edu",
		Name:         "Alan Turing",
		PasswordHash: "$2a$10$fakehash",
		Role:         domain.RoleTeacher,
		TeacherID:    &teacher.ID,
		CreatedAt:    now(),
		UpdatedAt:    now(),
	}
	require.NoError(t, s.CreateUser(ctx, user))

	got, err := s.GetUser(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got.TeacherID)
	assert.Equal(t, teacher.ID, *got.TeacherID)
}

// =============================================================================
// Transaction Tests
// =============================================================================

func TestWithTxCommit(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	var teacherID string
	err := s.WithTx(ctx, func(tx Store) error {
		teacher := &domain.Teacher{
			ID: domain.NewID(domain.PrefixTeacher), FirstName: "Grace",
			LastName: "Hopper", Email: "grace@school.edu", Subject: "CS",
			CreatedAt: now(), UpdatedAt: now(),
		}
		teacherID = teacher.ID
		return tx.CreateTeacher(ctx, teacher)
	})
	require.NoError(t, err)

	_, err = s.GetTeacher(ctx, teacherID)
	assert.NoError(t, err)
}

func TestWithTxRollback(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	var teacherID string
	err := s.WithTx(ctx, func(tx Store) error {
		teacher := &domain.Teacher{
			ID: domain.NewID(domain.PrefixTeacher), FirstName: "Grace",
			LastName: "Hopper", Email: "grace@school.edu", Subject: "CS",
			CreatedAt: now(), UpdatedAt: now(),
		}
		teacherID = teacher.ID
		if err := tx.CreateTeacher(ctx, teacher); err != nil {
			return err
		}
		// Duplicate email forces the whole transaction to roll back
		return tx.CreateTeacher(ctx, &domain.Teacher{
			ID: domain.NewID(domain.PrefixTeacher), FirstName: "Dup",
			LastName: "Dup", Email: "grace@school.edu", Subject: "CS",
			CreatedAt: now(), UpdatedAt: now(),
		})
	})
	require.Error(t, err)

	_, err = s.GetTeacher(ctx, teacherID)
	assert.ErrorIs(t, err, ErrNotFound)
}

// =============================================================================
// Options Tests
// =============================================================================

func TestListOptionsNormalize(t *testing.T) {
	opts := ListOptions{Limit: 0, Offset: -5}.Normalize()
	assert.Equal(t, 100, opts.Limit)
	assert.Equal(t, 0, opts.Offset)

	opts = ListOptions{Limit: 5000, Offset: 10}.Normalize()
	assert.Equal(t, 1000, opts.Limit)
	assert.Equal(t, 10, opts.Offset)
}
