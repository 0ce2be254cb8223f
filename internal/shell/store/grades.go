package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/hafedEfheij/school-management-system-sub001/internal/core/domain"
)

// =============================================================================
// Grade Operations
// =============================================================================

// gradeRow represents a grade row in the database.
type gradeRow struct {
	ID        string  `db:"id"`
	StudentID string  `db:"student_id"`
	CourseID  string  `db:"course_id"`
	Value     float64 `db:"value"`
	Type      string  `db:"type"`
	Date      string  `db:"date"`
	CreatedAt string  `db:"created_at"`
	UpdatedAt string  `db:"updated_at"`
}

func rowToGrade(row *gradeRow) (*domain.Grade, error) {
	createdAt, err := parseTime(row.CreatedAt)
	if err != nil {
		return nil, NewStoreError("rowToGrade", "grade", row.ID, err.Error(), ErrInvalidData)
	}
	updatedAt, err := parseTime(row.UpdatedAt)
	if err != nil {
		return nil, NewStoreError("rowToGrade", "grade", row.ID, err.Error(), ErrInvalidData)
	}

	return &domain.Grade{
		ID:        row.ID,
		StudentID: row.StudentID,
		CourseID:  row.CourseID,
		Value:     row.Value,
		Type:      row.Type,
		Date:      row.Date,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func (s *SQLiteStore) CreateGrade(ctx context.Context, grade *domain.Grade) error {
	return createGrade(ctx, s.db, grade)
}

func (s *SQLiteStore) GetGrade(ctx context.Context, id string) (*domain.Grade, error) {
	return getGrade(ctx, s.db, id)
}

func (s *SQLiteStore) UpdateGrade(ctx context.Context, grade *domain.Grade) error {
	return updateGrade(ctx, s.db, grade)
}

func (s *SQLiteStore) DeleteGrade(ctx context.Context, id string) error {
	return deleteGrade(ctx, s.db, id)
}

func (s *SQLiteStore) ListGrades(ctx context.Context, filter GradeFilter, opts ListOptions) ([]domain.Grade, error) {
	return listGrades(ctx, s.db, filter, opts)
}

func (s *txSQLiteStore) CreateGrade(ctx context.Context, grade *domain.Grade) error {
	return createGrade(ctx, s.tx, grade)
}

func (s *txSQLiteStore) GetGrade(ctx context.Context, id string) (*domain.Grade, error) {
	return getGrade(ctx, s.tx, id)
}

func (s *txSQLiteStore) UpdateGrade(ctx context.Context, grade *domain.Grade) error {
	return updateGrade(ctx, s.tx, grade)
}

func (s *txSQLiteStore) DeleteGrade(ctx context.Context, id string) error {
	return deleteGrade(ctx, s.tx, id)
}

func (s *txSQLiteStore) ListGrades(ctx context.Context, filter GradeFilter, opts ListOptions) ([]domain.Grade, error) {
	return listGrades(ctx, s.tx, filter, opts)
}

func createGrade(ctx context.Context, exec executor, grade *domain.Grade) error {
	query := `
		INSERT INTO grades (
			id, student_id, course_id, value, type, date, created_at, updated_at
		) VALUES (
			:id, :student_id, :course_id, :value, :type, :date, :created_at, :updated_at
		)`

	row := map[string]any{
		"id":         grade.ID,
		"student_id": grade.StudentID,
		"course_id":  grade.CourseID,
		"value":      grade.Value,
		"type":       grade.Type,
		"date":       grade.Date,
		"created_at": grade.CreatedAt.Format(time.RFC3339),
		"updated_at": grade.UpdatedAt.Format(time.RFC3339),
	}

	if _, err := exec.NamedExecContext(ctx, query, row); err != nil {
		return classifyWriteError("CreateGrade", "grade", grade.ID, "grades", err)
	}

	return nil
}

func getGrade(ctx context.Context, exec executor, id string) (*domain.Grade, error) {
	query := `SELECT * FROM grades WHERE id = ?`

	var row gradeRow
	err := exec.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetGrade", "grade", id, "grade not found", ErrNotFound)
		}
		return nil, NewStoreError("GetGrade", "grade", id, err.Error(), err)
	}

	return rowToGrade(&row)
}

func updateGrade(ctx context.Context, exec executor, grade *domain.Grade) error {
	query := `
		UPDATE grades SET
			student_id = :student_id,
			course_id = :course_id,
			value = :value,
			type = :type,
			date = :date,
			updated_at = :updated_at
		WHERE id = :id`

	row := map[string]any{
		"id":         grade.ID,
		"student_id": grade.StudentID,
		"course_id":  grade.CourseID,
		"value":      grade.Value,
		"type":       grade.Type,
		"date":       grade.Date,
		"updated_at": grade.UpdatedAt.Format(time.RFC3339),
	}

	result, err := exec.NamedExecContext(ctx, query, row)
	if err != nil {
		return classifyWriteError("UpdateGrade", "grade", grade.ID, "grades", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("UpdateGrade", "grade", grade.ID, "grade not found", ErrNotFound)
	}

	return nil
}

func deleteGrade(ctx context.Context, exec executor, id string) error {
	query := `DELETE FROM grades WHERE id = ?`

	result, err := exec.ExecContext(ctx, query, id)
	if err != nil {
		return classifyWriteError("DeleteGrade", "grade", id, "grades", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("DeleteGrade", "grade", id, "grade not found", ErrNotFound)
	}

	return nil
}

func listGrades(ctx context.Context, exec executor, filter GradeFilter, opts ListOptions) ([]domain.Grade, error) {
	opts = opts.Normalize()

	query := `SELECT * FROM grades WHERE 1=1`
	args := []any{}
	if filter.StudentID != "" {
		query += ` AND student_id = ?`
		args = append(args, filter.StudentID)
	}
	if filter.CourseID != "" {
		query += ` AND course_id = ?`
		args = append(args, filter.CourseID)
	}
	query += ` ORDER BY date DESC, created_at DESC LIMIT ? OFFSET ?`
	args = append(args, opts.Limit, opts.Offset)

	var rows []gradeRow
	err := exec.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, NewStoreError("ListGrades", "grade", "", err.Error(), err)
	}

	grades := make([]domain.Grade, 0, len(rows))
	for _, row := range rows {
		grade, err := rowToGrade(&row)
		if err != nil {
			return nil, err
		}
		grades = append(grades, *grade)
	}

	return grades, nil
}
