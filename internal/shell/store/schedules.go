package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/hafedEfheij/school-management-system-sub001/internal/core/domain"
)

// =============================================================================
// Schedule Operations
// =============================================================================

// scheduleRow represents a schedule row in the database.
type scheduleRow struct {
	ID        string `db:"id"`
	DayOfWeek int    `db:"day_of_week"`
	StartTime string `db:"start_time"`
	EndTime   string `db:"end_time"`
	Room      string `db:"room"`
	CourseID  string `db:"course_id"`
	TeacherID string `db:"teacher_id"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

func rowToSchedule(row *scheduleRow) (*domain.Schedule, error) {
	createdAt, err := parseTime(row.CreatedAt)
	if err != nil {
		return nil, NewStoreError("rowToSchedule", "schedule", row.ID, err.Error(), ErrInvalidData)
	}
	updatedAt, err := parseTime(row.UpdatedAt)
	if err != nil {
		return nil, NewStoreError("rowToSchedule", "schedule", row.ID, err.Error(), ErrInvalidData)
	}

	return &domain.Schedule{
		ID:        row.ID,
		DayOfWeek: row.DayOfWeek,
		StartTime: row.StartTime,
		EndTime:   row.EndTime,
		Room:      row.Room,
		CourseID:  row.CourseID,
		TeacherID: row.TeacherID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func (s *SQLiteStore) CreateSchedule(ctx context.Context, schedule *domain.Schedule) error {
	return createSchedule(ctx, s.db, schedule)
}

func (s *SQLiteStore) GetSchedule(ctx context.Context, id string) (*domain.Schedule, error) {
	return getSchedule(ctx, s.db, id)
}

func (s *SQLiteStore) UpdateSchedule(ctx context.Context, schedule *domain.Schedule) error {
	return updateSchedule(ctx, s.db, schedule)
}

func (s *SQLiteStore) DeleteSchedule(ctx context.Context, id string) error {
	return deleteSchedule(ctx, s.db, id)
}

func (s *SQLiteStore) ListSchedules(ctx context.Context, filter ScheduleFilter, opts ListOptions) ([]domain.Schedule, error) {
	return listSchedules(ctx, s.db, filter, opts)
}

func (s *txSQLiteStore) CreateSchedule(ctx context.Context, schedule *domain.Schedule) error {
	return createSchedule(ctx, s.tx, schedule)
}

func (s *txSQLiteStore) GetSchedule(ctx context.Context, id string) (*domain.Schedule, error) {
	return getSchedule(ctx, s.tx, id)
}

func (s *txSQLiteStore) UpdateSchedule(ctx context.Context, schedule *domain.Schedule) error {
	return updateSchedule(ctx, s.tx, schedule)
}

func (s *txSQLiteStore) DeleteSchedule(ctx context.Context, id string) error {
	return deleteSchedule(ctx, s.tx, id)
}

func (s *txSQLiteStore) ListSchedules(ctx context.Context, filter ScheduleFilter, opts ListOptions) ([]domain.Schedule, error) {
	return listSchedules(ctx, s.tx, filter, opts)
}

func createSchedule(ctx context.Context, exec executor, schedule *domain.Schedule) error {
	query := `
		INSERT INTO schedules (
			id, day_of_week, start_time, end_time, room, course_id, teacher_id,
			created_at, updated_at
		) VALUES (
			:id, :day_of_week, :start_time, :end_time, :room, :course_id, :teacher_id,
			:created_at, :updated_at
		)`

	row := map[string]any{
		"id":          schedule.ID,
		"day_of_week": schedule.DayOfWeek,
		"start_time":  schedule.StartTime,
		"end_time":    schedule.EndTime,
		"room":        schedule.Room,
		"course_id":   schedule.CourseID,
		"teacher_id":  schedule.TeacherID,
		"created_at":  schedule.CreatedAt.Format(time.RFC3339),
		"updated_at":  schedule.UpdatedAt.Format(time.RFC3339),
	}

	if _, err := exec.NamedExecContext(ctx, query, row); err != nil {
		return classifyWriteError("CreateSchedule", "schedule", schedule.ID, "schedules", err)
	}

	return nil
}

func getSchedule(ctx context.Context, exec executor, id string) (*domain.Schedule, error) {
	query := `SELECT * FROM schedules WHERE id = ?`

	var row scheduleRow
	err := exec.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetSchedule", "schedule", id, "schedule not found", ErrNotFound)
		}
		return nil, NewStoreError("GetSchedule", "schedule", id, err.Error(), err)
	}

	return rowToSchedule(&row)
}

func updateSchedule(ctx context.Context, exec executor, schedule *domain.Schedule) error {
	query := `
		UPDATE schedules SET
			day_of_week = :day_of_week,
			start_time = :start_time,
			end_time = :end_time,
			room = :room,
			course_id = :course_id,
			teacher_id = :teacher_id,
			updated_at = :updated_at
		WHERE id = :id`

	row := map[string]any{
		"id":          schedule.ID,
		"day_of_week": schedule.DayOfWeek,
		"start_time":  schedule.StartTime,
		"end_time":    schedule.EndTime,
		"room":        schedule.Room,
		"course_id":   schedule.CourseID,
		"teacher_id":  schedule.TeacherID,
		"updated_at":  schedule.UpdatedAt.Format(time.RFC3339),
	}

	result, err := exec.NamedExecContext(ctx, query, row)
	if err != nil {
		return classifyWriteError("UpdateSchedule", "schedule", schedule.ID, "schedules", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("UpdateSchedule", "schedule", schedule.ID, "schedule not found", ErrNotFound)
	}

	return nil
}

func deleteSchedule(ctx context.Context, exec executor, id string) error {
	query := `DELETE FROM schedules WHERE id = ?`

	result, err := exec.ExecContext(ctx, query, id)
	if err != nil {
		return classifyWriteError("DeleteSchedule", "schedule", id, "schedules", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("DeleteSchedule", "schedule", id, "schedule not found", ErrNotFound)
	}

	return nil
}

func listSchedules(ctx context.Context, exec executor, filter ScheduleFilter, opts ListOptions) ([]domain.Schedule, error) {
	opts = opts.Normalize()

	query := `SELECT * FROM schedules WHERE 1=1`
	args := []any{}
	if filter.CourseID != "" {
		query += ` AND course_id = ?`
		args = append(args, filter.CourseID)
	}
	if filter.TeacherID != "" {
		query += ` AND teacher_id = ?`
		args = append(args, filter.TeacherID)
	}
	if filter.DayOfWeek != nil {
		query += ` AND day_of_week = ?`
		args = append(args, *filter.DayOfWeek)
	}
	query += ` ORDER BY day_of_week, start_time LIMIT ? OFFSET ?`
	args = append(args, opts.Limit, opts.Offset)

	var rows []scheduleRow
	err := exec.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, NewStoreError("ListSchedules", "schedule", "", err.Error(), err)
	}

	schedules := make([]domain.Schedule, 0, len(rows))
	for _, row := range rows {
		schedule, err := rowToSchedule(&row)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, *schedule)
	}

	return schedules, nil
}
