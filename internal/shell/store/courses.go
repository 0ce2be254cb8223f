package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/hafedEfheij/school-management-system-sub001/internal/core/domain"
)

// =============================================================================
// Course Operations
// =============================================================================

// courseRow represents a course row in the database.
type courseRow struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Credits     int    `db:"credits"`
	TeacherID   string `db:"teacher_id"`
	CreatedAt   string `db:"created_at"`
	UpdatedAt   string `db:"updated_at"`
}

func rowToCourse(row *courseRow) (*domain.Course, error) {
	createdAt, err := parseTime(row.CreatedAt)
	if err != nil {
		return nil, NewStoreError("rowToCourse", "course", row.ID, err.Error(), ErrInvalidData)
	}
	updatedAt, err := parseTime(row.UpdatedAt)
	if err != nil {
		return nil, NewStoreError("rowToCourse", "course", row.ID, err.Error(), ErrInvalidData)
	}

	return &domain.Course{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Credits:     row.Credits,
		TeacherID:   row.TeacherID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

func (s *SQLiteStore) CreateCourse(ctx context.Context, course *domain.Course) error {
	return createCourse(ctx, s.db, course)
}

func (s *SQLiteStore) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	return getCourse(ctx, s.db, id)
}

func (s *SQLiteStore) UpdateCourse(ctx context.Context, course *domain.Course) error {
	return updateCourse(ctx, s.db, course)
}

func (s *SQLiteStore) DeleteCourse(ctx context.Context, id string) error {
	return deleteCourse(ctx, s.db, id)
}

func (s *SQLiteStore) ListCourses(ctx context.Context, filter CourseFilter, opts ListOptions) ([]domain.Course, error) {
	return listCourses(ctx, s.db, filter, opts)
}

func (s *SQLiteStore) CountCoursesByTeacher(ctx context.Context, teacherID string) (int, error) {
	return countCoursesByTeacher(ctx, s.db, teacherID)
}

func (s *txSQLiteStore) CreateCourse(ctx context.Context, course *domain.Course) error {
	return createCourse(ctx, s.tx, course)
}

func (s *txSQLiteStore) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	return getCourse(ctx, s.tx, id)
}

func (s *txSQLiteStore) UpdateCourse(ctx context.Context, course *domain.Course) error {
	return updateCourse(ctx, s.tx, course)
}

func (s *txSQLiteStore) DeleteCourse(ctx context.Context, id string) error {
	return deleteCourse(ctx, s.tx, id)
}

func (s *txSQLiteStore) ListCourses(ctx context.Context, filter CourseFilter, opts ListOptions) ([]domain.Course, error) {
	return listCourses(ctx, s.tx, filter, opts)
}

func (s *txSQLiteStore) CountCoursesByTeacher(ctx context.Context, teacherID string) (int, error) {
	return countCoursesByTeacher(ctx, s.tx, teacherID)
}

func createCourse(ctx context.Context, exec executor, course *domain.Course) error {
	query := `
		INSERT INTO courses (
			id, name, description, credits, teacher_id, created_at, updated_at
		) VALUES (
			:id, :name, :description, :credits, :teacher_id, :created_at, :updated_at
		)`

	row := map[string]any{
		"id":          course.ID,
		"name":        course.Name,
		"description": course.Description,
		"credits":     course.Credits,
		"teacher_id":  course.TeacherID,
		"created_at":  course.CreatedAt.Format(time.RFC3339),
		"updated_at":  course.UpdatedAt.Format(time.RFC3339),
	}

	if _, err := exec.NamedExecContext(ctx, query, row); err != nil {
		return classifyWriteError("CreateCourse", "course", course.ID, "courses", err)
	}

	return nil
}

func getCourse(ctx context.Context, exec executor, id string) (*domain.Course, error) {
	query := `SELECT * FROM courses WHERE id = ?`

	var row courseRow
	err := exec.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetCourse", "course", id, "course not found", ErrNotFound)
		}
		return nil, NewStoreError("GetCourse", "course", id, err.Error(), err)
	}

	return rowToCourse(&row)
}

func updateCourse(ctx context.Context, exec executor, course *domain.Course) error {
	query := `
		UPDATE courses SET
			name = :name,
			description = :description,
			credits = :credits,
			teacher_id = :teacher_id,
			updated_at = :updated_at
		WHERE id = :id`

	row := map[string]any{
		"id":          course.ID,
		"name":        course.Name,
		"description": course.Description,
		"credits":     course.Credits,
		"teacher_id":  course.TeacherID,
		"updated_at":  course.UpdatedAt.Format(time.RFC3339),
	}

	result, err := exec.NamedExecContext(ctx, query, row)
	if err != nil {
		return classifyWriteError("UpdateCourse", "course", course.ID, "courses", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("UpdateCourse", "course", course.ID, "course not found", ErrNotFound)
	}

	return nil
}

func deleteCourse(ctx context.Context, exec executor, id string) error {
	query := `DELETE FROM courses WHERE id = ?`

	result, err := exec.ExecContext(ctx, query, id)
	if err != nil {
		return classifyWriteError("DeleteCourse", "course", id, "courses", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("DeleteCourse", "course", id, "course not found", ErrNotFound)
	}

	return nil
}

func listCourses(ctx context.Context, exec executor, filter CourseFilter, opts ListOptions) ([]domain.Course, error) {
	opts = opts.Normalize()

	query := `SELECT * FROM courses`
	args := []any{}
	if filter.TeacherID != "" {
		query += ` WHERE teacher_id = ?`
		args = append(args, filter.TeacherID)
	}
	query += ` ORDER BY name LIMIT ? OFFSET ?`
	args = append(args, opts.Limit, opts.Offset)

	var rows []courseRow
	err := exec.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, NewStoreError("ListCourses", "course", "", err.Error(), err)
	}

	courses := make([]domain.Course, 0, len(rows))
	for _, row := range rows {
		course, err := rowToCourse(&row)
		if err != nil {
			return nil, err
		}
		courses = append(courses, *course)
	}

	return courses, nil
}

func countCoursesByTeacher(ctx context.Context, exec executor, teacherID string) (int, error) {
	query := `SELECT COUNT(*) FROM courses WHERE teacher_id = ?`

	var count int
	if err := exec.GetContext(ctx, &count, query, teacherID); err != nil {
		return 0, NewStoreError("CountCoursesByTeacher", "course", teacherID, err.Error(), err)
	}

	return count, nil
}
