package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/hafedEfheij/school-management-system-sub001/internal/core/domain"
)

// =============================================================================
// Teacher Operations
// =============================================================================

// teacherRow represents a teacher row in the database.
type teacherRow struct {
	ID        string `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Email     string `db:"email"`
	Phone     string `db:"phone"`
	Subject   string `db:"subject"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

func rowToTeacher(row *teacherRow) (*domain.Teacher, error) {
	createdAt, err := parseTime(row.CreatedAt)
	if err != nil {
		return nil, NewStoreError("rowToTeacher", "teacher", row.ID, err.Error(), ErrInvalidData)
	}
	updatedAt, err := parseTime(row.UpdatedAt)
	if err != nil {
		return nil, NewStoreError("rowToTeacher", "teacher", row.ID, err.Error(), ErrInvalidData)
	}

	return &domain.Teacher{
		ID:        row.ID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Email:     row.Email,
		Phone:     row.Phone,
		Subject:   row.Subject,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func (s *SQLiteStore) CreateTeacher(ctx context.Context, teacher *domain.Teacher) error {
	return createTeacher(ctx, s.db, teacher)
}

func (s *SQLiteStore) GetTeacher(ctx context.Context, id string) (*domain.Teacher, error) {
	return getTeacher(ctx, s.db, id)
}

func (s *SQLiteStore) GetTeacherByEmail(ctx context.Context, email string) (*domain.Teacher, error) {
	return getTeacherByEmail(ctx, s.db, email)
}

func (s *SQLiteStore) UpdateTeacher(ctx context.Context, teacher *domain.Teacher) error {
	return updateTeacher(ctx, s.db, teacher)
}

func (s *SQLiteStore) DeleteTeacher(ctx context.Context, id string) error {
	return deleteTeacher(ctx, s.db, id)
}

func (s *SQLiteStore) ListTeachers(ctx context.Context, opts ListOptions) ([]domain.Teacher, error) {
	return listTeachers(ctx, s.db, opts)
}

func (s *txSQLiteStore) CreateTeacher(ctx context.Context, teacher *domain.Teacher) error {
	return createTeacher(ctx, s.tx, teacher)
}

func (s *txSQLiteStore) GetTeacher(ctx context.Context, id string) (*domain.Teacher, error) {
	return getTeacher(ctx, s.tx, id)
}

func (s *txSQLiteStore) GetTeacherByEmail(ctx context.Context, email string) (*domain.Teacher, error) {
	return getTeacherByEmail(ctx, s.tx, email)
}

func (s *txSQLiteStore) UpdateTeacher(ctx context.Context, teacher *domain.Teacher) error {
	return updateTeacher(ctx, s.tx, teacher)
}

func (s *txSQLiteStore) DeleteTeacher(ctx context.Context, id string) error {
	return deleteTeacher(ctx, s.tx, id)
}

func (s *txSQLiteStore) ListTeachers(ctx context.Context, opts ListOptions) ([]domain.Teacher, error) {
	return listTeachers(ctx, s.tx, opts)
}

func createTeacher(ctx context.Context, exec executor, teacher *domain.Teacher) error {
	query := `
		INSERT INTO teachers (
			id, first_name, last_name, email, phone, subject, created_at, updated_at
		) VALUES (
			:id, :first_name, :last_name, :email, :phone, :subject, :created_at, :updated_at
		)`

	row := map[string]any{
		"id":         teacher.ID,
		"first_name": teacher.FirstName,
		"last_name":  teacher.LastName,
		"email":      teacher.Email,
		"phone":      teacher.Phone,
		"subject":    teacher.Subject,
		"created_at": teacher.CreatedAt.Format(time.RFC3339),
		"updated_at": teacher.UpdatedAt.Format(time.RFC3339),
	}

	if _, err := exec.NamedExecContext(ctx, query, row); err != nil {
		return classifyWriteError("CreateTeacher", "teacher", teacher.ID, "teachers", err)
	}

	return nil
}

func getTeacher(ctx context.Context, exec executor, id string) (*domain.Teacher, error) {
	query := `SELECT * FROM teachers WHERE id = ?`

	var row teacherRow
	err := exec.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetTeacher", "teacher", id, "teacher not found", ErrNotFound)
		}
		return nil, NewStoreError("GetTeacher", "teacher", id, err.Error(), err)
	}

	return rowToTeacher(&row)
}

func getTeacherByEmail(ctx context.Context, exec executor, email string) (*domain.Teacher, error) {
	query := `SELECT * FROM teachers WHERE email = ?`

	var row teacherRow
	err := exec.GetContext(ctx, &row, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetTeacherByEmail", "teacher", email, "teacher not found", ErrNotFound)
		}
		return nil, NewStoreError("GetTeacherByEmail", "teacher", email, err.Error(), err)
	}

	return rowToTeacher(&row)
}

func updateTeacher(ctx context.Context, exec executor, teacher *domain.Teacher) error {
	query := `
		UPDATE teachers SET
			first_name = :first_name,
			last_name = :last_name,
			email = :email,
			phone = :phone,
			subject = :subject,
			updated_at = :updated_at
		WHERE id = :id`

	row := map[string]any{
		"id":         teacher.ID,
		"first_name": teacher.FirstName,
		"last_name":  teacher.LastName,
		"email":      teacher.Email,
		"phone":      teacher.Phone,
		"subject":    teacher.Subject,
		"updated_at": teacher.UpdatedAt.Format(time.RFC3339),
	}

	result, err := exec.NamedExecContext(ctx, query, row)
	if err != nil {
		return classifyWriteError("UpdateTeacher", "teacher", teacher.ID, "teachers", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("UpdateTeacher", "teacher", teacher.ID, "teacher not found", ErrNotFound)
	}

	return nil
}

func deleteTeacher(ctx context.Context, exec executor, id string) error {
	query := `DELETE FROM teachers WHERE id = ?`

	result, err := exec.ExecContext(ctx, query, id)
	if err != nil {
		return classifyWriteError("DeleteTeacher", "teacher", id, "teachers", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("DeleteTeacher", "teacher", id, "teacher not found", ErrNotFound)
	}

	return nil
}

func listTeachers(ctx context.Context, exec executor, opts ListOptions) ([]domain.Teacher, error) {
	opts = opts.Normalize()
	query := `SELECT * FROM teachers ORDER BY last_name, first_name LIMIT ? OFFSET ?`

	var rows []teacherRow
	err := exec.SelectContext(ctx, &rows, query, opts.Limit, opts.Offset)
	if err != nil {
		return nil, NewStoreError("ListTeachers", "teacher", "", err.Error(), err)
	}

	teachers := make([]domain.Teacher, 0, len(rows))
	for _, row := range rows {
		teacher, err := rowToTeacher(&row)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, *teacher)
	}

	return teachers, nil
}
