package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/hafedEfheij/school-management-system-sub001/internal/core/domain"
)

// =============================================================================
// Enrollment Operations
// =============================================================================

// enrollmentRow represents an enrollment row in the database.
type enrollmentRow struct {
	ID        string `db:"id"`
	StudentID string `db:"student_id"`
	CourseID  string `db:"course_id"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

func rowToEnrollment(row *enrollmentRow) (*domain.Enrollment, error) {
	createdAt, err := parseTime(row.CreatedAt)
	if err != nil {
		return nil, NewStoreError("rowToEnrollment", "enrollment", row.ID, err.Error(), ErrInvalidData)
	}
	updatedAt, err := parseTime(row.UpdatedAt)
	if err != nil {
		return nil, NewStoreError("rowToEnrollment", "enrollment", row.ID, err.Error(), ErrInvalidData)
	}

	return &domain.Enrollment{
		ID:        row.ID,
		StudentID: row.StudentID,
		CourseID:  row.CourseID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func (s *SQLiteStore) CreateEnrollment(ctx context.Context, enrollment *domain.Enrollment) error {
	return createEnrollment(ctx, s.db, enrollment)
}

func (s *SQLiteStore) GetEnrollment(ctx context.Context, id string) (*domain.Enrollment, error) {
	return getEnrollment(ctx, s.db, id)
}

func (s *SQLiteStore) GetEnrollmentByStudentCourse(ctx context.Context, studentID, courseID string) (*domain.Enrollment, error) {
	return getEnrollmentByStudentCourse(ctx, s.db, studentID, courseID)
}

func (s *SQLiteStore) DeleteEnrollment(ctx context.Context, id string) error {
	return deleteEnrollment(ctx, s.db, id)
}

func (s *SQLiteStore) ListEnrollments(ctx context.Context, filter EnrollmentFilter, opts ListOptions) ([]domain.Enrollment, error) {
	return listEnrollments(ctx, s.db, filter, opts)
}

func (s *txSQLiteStore) CreateEnrollment(ctx context.Context, enrollment *domain.Enrollment) error {
	return createEnrollment(ctx, s.tx, enrollment)
}

func (s *txSQLiteStore) GetEnrollment(ctx context.Context, id string) (*domain.Enrollment, error) {
	return getEnrollment(ctx, s.tx, id)
}

func (s *txSQLiteStore) GetEnrollmentByStudentCourse(ctx context.Context, studentID, courseID string) (*domain.Enrollment, error) {
	return getEnrollmentByStudentCourse(ctx, s.tx, studentID, courseID)
}

func (s *txSQLiteStore) DeleteEnrollment(ctx context.Context, id string) error {
	return deleteEnrollment(ctx, s.tx, id)
}

func (s *txSQLiteStore) ListEnrollments(ctx context.Context, filter EnrollmentFilter, opts ListOptions) ([]domain.Enrollment, error) {
	return listEnrollments(ctx, s.tx, filter, opts)
}

func createEnrollment(ctx context.Context, exec executor, enrollment *domain.Enrollment) error {
	query := `
		INSERT INTO enrollments (
			id, student_id, course_id, created_at, updated_at
		) VALUES (
			:id, :student_id, :course_id, :created_at, :updated_at
		)`

	row := map[string]any{
		"id":         enrollment.ID,
		"student_id": enrollment.StudentID,
		"course_id":  enrollment.CourseID,
		"created_at": enrollment.CreatedAt.Format(time.RFC3339),
		"updated_at": enrollment.UpdatedAt.Format(time.RFC3339),
	}

	if _, err := exec.NamedExecContext(ctx, query, row); err != nil {
		return classifyWriteError("CreateEnrollment", "enrollment", enrollment.ID, "enrollments", err)
	}

	return nil
}

func getEnrollment(ctx context.Context, exec executor, id string) (*domain.Enrollment, error) {
	query := `SELECT * FROM enrollments WHERE id = ?`

	var row enrollmentRow
	err := exec.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetEnrollment", "enrollment", id, "enrollment not found", ErrNotFound)
		}
		return nil, NewStoreError("GetEnrollment", "enrollment", id, err.Error(), err)
	}

	return rowToEnrollment(&row)
}

func getEnrollmentByStudentCourse(ctx context.Context, exec executor, studentID, courseID string) (*domain.Enrollment, error) {
	query := `SELECT * FROM enrollments WHERE student_id = ? AND course_id = ?`

	var row enrollmentRow
	err := exec.GetContext(ctx, &row, query, studentID, courseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetEnrollmentByStudentCourse", "enrollment", "", "enrollment not found", ErrNotFound)
		}
		return nil, NewStoreError("GetEnrollmentByStudentCourse", "enrollment", "", err.Error(), err)
	}

	return rowToEnrollment(&row)
}

func deleteEnrollment(ctx context.Context, exec executor, id string) error {
	query := `DELETE FROM enrollments WHERE id = ?`

	result, err := exec.ExecContext(ctx, query, id)
	if err != nil {
		return classifyWriteError("DeleteEnrollment", "enrollment", id, "enrollments", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("DeleteEnrollment", "enrollment", id, "enrollment not found", ErrNotFound)
	}

	return nil
}

func listEnrollments(ctx context.Context, exec executor, filter EnrollmentFilter, opts ListOptions) ([]domain.Enrollment, error) {
	opts = opts.Normalize()

	query := `SELECT * FROM enrollments WHERE 1=1`
	args := []any{}
	if filter.StudentID != "" {
		query += ` AND student_id = ?`
		args = append(args, filter.StudentID)
	}
	if filter.CourseID != "" {
		query += ` AND course_id = ?`
		args = append(args, filter.CourseID)
	}
	query += ` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args = append(args, opts.Limit, opts.Offset)

	var rows []enrollmentRow
	err := exec.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, NewStoreError("ListEnrollments", "enrollment", "", err.Error(), err)
	}

	enrollments := make([]domain.Enrollment, 0, len(rows))
	for _, row := range rows {
		enrollment, err := rowToEnrollment(&row)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, *enrollment)
	}

	return enrollments, nil
}
