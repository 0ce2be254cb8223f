package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/hafedEfheij/school-management-system-sub001/internal/core/domain"
)

// =============================================================================
// Student Operations
// =============================================================================

// studentRow represents a student row in the database.
type studentRow struct {
	ID          string `db:"id"`
	FirstName   string `db:"first_name"`
	LastName    string `db:"last_name"`
	Email       string `db:"email"`
	Phone       string `db:"phone"`
	Address     string `db:"address"`
	DateOfBirth string `db:"date_of_birth"`
	GradeLevel  string `db:"grade_level"`
	CreatedAt   string `db:"created_at"`
	UpdatedAt   string `db:"updated_at"`
}

func rowToStudent(row *studentRow) (*domain.Student, error) {
	createdAt, err := parseTime(row.CreatedAt)
	if err != nil {
		return nil, NewStoreError("rowToStudent", "student", row.ID, err.Error(), ErrInvalidData)
	}
	updatedAt, err := parseTime(row.UpdatedAt)
	if err != nil {
		return nil, NewStoreError("rowToStudent", "student", row.ID, err.Error(), ErrInvalidData)
	}

	return &domain.Student{
		ID:          row.ID,
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		Email:       row.Email,
		Phone:       row.Phone,
		Address:     row.Address,
		DateOfBirth: row.DateOfBirth,
		GradeLevel:  row.GradeLevel,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

func (s *SQLiteStore) CreateStudent(ctx context.Context, student *domain.Student) error {
	return createStudent(ctx, s.db, student)
}

func (s *SQLiteStore) GetStudent(ctx context.Context, id string) (*domain.Student, error) {
	return getStudent(ctx, s.db, id)
}

func (s *SQLiteStore) GetStudentByEmail(ctx context.Context, email string) (*domain.Student, error) {
	return getStudentByEmail(ctx, s.db, email)
}

func (s *SQLiteStore) UpdateStudent(ctx context.Context, student *domain.Student) error {
	return updateStudent(ctx, s.db, student)
}

func (s *SQLiteStore) DeleteStudent(ctx context.Context, id string) error {
	return deleteStudent(ctx, s.db, id)
}

func (s *SQLiteStore) ListStudents(ctx context.Context, filter StudentFilter, opts ListOptions) ([]domain.Student, error) {
	return listStudents(ctx, s.db, filter, opts)
}

func (s *txSQLiteStore) CreateStudent(ctx context.Context, student *domain.Student) error {
	return createStudent(ctx, s.tx, student)
}

func (s *txSQLiteStore) GetStudent(ctx context.Context, id string) (*domain.Student, error) {
	return getStudent(ctx, s.tx, id)
}

func (s *txSQLiteStore) GetStudentByEmail(ctx context.Context, email string) (*domain.Student, error) {
	return getStudentByEmail(ctx, s.tx, email)
}

func (s *txSQLiteStore) UpdateStudent(ctx context.Context, student *domain.Student) error {
	return updateStudent(ctx, s.tx, student)
}

func (s *txSQLiteStore) DeleteStudent(ctx context.Context, id string) error {
	return deleteStudent(ctx, s.tx, id)
}

func (s *txSQLiteStore) ListStudents(ctx context.Context, filter StudentFilter, opts ListOptions) ([]domain.Student, error) {
	return listStudents(ctx, s.tx, filter, opts)
}

func createStudent(ctx context.Context, exec executor, student *domain.Student) error {
	query := `
		INSERT INTO students (
			id, first_name, last_name, email, phone, address, date_of_birth,
			grade_level, created_at, updated_at
		) VALUES (
			:id, :first_name, :last_name, :email, :phone, :address, :date_of_birth,
			:grade_level, :created_at, :updated_at
		)`

	row := map[string]any{
		"id":            student.ID,
		"first_name":    student.FirstName,
		"last_name":     student.LastName,
		"email":         student.Email,
		"phone":         student.Phone,
		"address":       student.Address,
		"date_of_birth": student.DateOfBirth,
		"grade_level":   student.GradeLevel,
		"created_at":    student.CreatedAt.Format(time.RFC3339),
		"updated_at":    student.UpdatedAt.Format(time.RFC3339),
	}

	if _, err := exec.NamedExecContext(ctx, query, row); err != nil {
		return classifyWriteError("CreateStudent", "student", student.ID, "students", err)
	}

	return nil
}

func getStudent(ctx context.Context, exec executor, id string) (*domain.Student, error) {
	query := `SELECT * FROM students WHERE id = ?`

	var row studentRow
	err := exec.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetStudent", "student", id, "student not found", ErrNotFound)
		}
		return nil, NewStoreError("GetStudent", "student", id, err.Error(), err)
	}

	return rowToStudent(&row)
}

func getStudentByEmail(ctx context.Context, exec executor, email string) (*domain.Student, error) {
	query := `SELECT * FROM students WHERE email = ? AND email != ''`

	var row studentRow
	err := exec.GetContext(ctx, &row, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetStudentByEmail", "student", email, "student not found", ErrNotFound)
		}
		return nil, NewStoreError("GetStudentByEmail", "student", email, err.Error(), err)
	}

	return rowToStudent(&row)
}

func updateStudent(ctx context.Context, exec executor, student *domain.Student) error {
	query := `
		UPDATE students SET
			first_name = :first_name,
			last_name = :last_name,
			email = :email,
			phone = :phone,
			address = :address,
			date_of_birth = :date_of_birth,
			grade_level = :grade_level,
			updated_at = :updated_at
		WHERE id = :id`

	row := map[string]any{
		"id":            student.ID,
		"first_name":    student.FirstName,
		"last_name":     student.LastName,
		"email":         student.Email,
		"phone":         student.Phone,
		"address":       student.Address,
		"date_of_birth": student.DateOfBirth,
		"grade_level":   student.GradeLevel,
		"updated_at":    student.UpdatedAt.Format(time.RFC3339),
	}

	result, err := exec.NamedExecContext(ctx, query, row)
	if err != nil {
		return classifyWriteError("UpdateStudent", "student", student.ID, "students", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("UpdateStudent", "student", student.ID, "student not found", ErrNotFound)
	}

	return nil
}

func deleteStudent(ctx context.Context, exec executor, id string) error {
	query := `DELETE FROM students WHERE id = ?`

	result, err := exec.ExecContext(ctx, query, id)
	if err != nil {
		return classifyWriteError("DeleteStudent", "student", id, "students", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("DeleteStudent", "student", id, "student not found", ErrNotFound)
	}

	return nil
}

func listStudents(ctx context.Context, exec executor, filter StudentFilter, opts ListOptions) ([]domain.Student, error) {
	opts = opts.Normalize()

	query := `SELECT * FROM students WHERE 1=1`
	args := []any{}
	if filter.GradeLevel != "" {
		query += ` AND grade_level = ?`
		args = append(args, filter.GradeLevel)
	}
	if filter.Search != "" {
		query += ` AND (first_name LIKE ? COLLATE NOCASE OR last_name LIKE ? COLLATE NOCASE OR email LIKE ? COLLATE NOCASE)`
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}
	query += ` ORDER BY last_name, first_name LIMIT ? OFFSET ?`
	args = append(args, opts.Limit, opts.Offset)

	var rows []studentRow
	err := exec.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, NewStoreError("ListStudents", "student", "", err.Error(), err)
	}

	students := make([]domain.Student, 0, len(rows))
	for _, row := range rows {
		student, err := rowToStudent(&row)
		if err != nil {
			return nil, err
		}
		students = append(students, *student)
	}

	return students, nil
}
