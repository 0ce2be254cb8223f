package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/hafedEfheij/school-management-system-sub001/internal/core/domain"
)

// =============================================================================
// Attendance Operations
// =============================================================================

// attendanceRow represents an attendance row in the database.
type attendanceRow struct {
	ID         string `db:"id"`
	StudentID  string `db:"student_id"`
	ScheduleID string `db:"schedule_id"`
	Date       string `db:"date"`
	Status     string `db:"status"`
	CreatedAt  string `db:"created_at"`
	UpdatedAt  string `db:"updated_at"`
}

func rowToAttendance(row *attendanceRow) (*domain.Attendance, error) {
	createdAt, err := parseTime(row.CreatedAt)
	if err != nil {
		return nil, NewStoreError("rowToAttendance", "attendance", row.ID, err.Error(), ErrInvalidData)
	}
	updatedAt, err := parseTime(row.UpdatedAt)
	if err != nil {
		return nil, NewStoreError("rowToAttendance", "attendance", row.ID, err.Error(), ErrInvalidData)
	}

	return &domain.Attendance{
		ID:         row.ID,
		StudentID:  row.StudentID,
		ScheduleID: row.ScheduleID,
		Date:       row.Date,
		Status:     domain.AttendanceStatus(row.Status),
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}, nil
}

func (s *SQLiteStore) CreateAttendance(ctx context.Context, attendance *domain.Attendance) error {
	return createAttendance(ctx, s.db, attendance)
}

func (s *SQLiteStore) GetAttendance(ctx context.Context, id string) (*domain.Attendance, error) {
	return getAttendance(ctx, s.db, id)
}

func (s *SQLiteStore) GetAttendanceByStudentScheduleDate(ctx context.Context, studentID, scheduleID, date string) (*domain.Attendance, error) {
	return getAttendanceByStudentScheduleDate(ctx, s.db, studentID, scheduleID, date)
}

func (s *SQLiteStore) UpdateAttendance(ctx context.Context, attendance *domain.Attendance) error {
	return updateAttendance(ctx, s.db, attendance)
}

func (s *SQLiteStore) DeleteAttendance(ctx context.Context, id string) error {
	return deleteAttendance(ctx, s.db, id)
}

func (s *SQLiteStore) ListAttendance(ctx context.Context, filter AttendanceFilter, opts ListOptions) ([]domain.Attendance, error) {
	return listAttendance(ctx, s.db, filter, opts)
}

func (s *txSQLiteStore) CreateAttendance(ctx context.Context, attendance *domain.Attendance) error {
	return createAttendance(ctx, s.tx, attendance)
}

func (s *txSQLiteStore) GetAttendance(ctx context.Context, id string) (*domain.Attendance, error) {
	return getAttendance(ctx, s.tx, id)
}

func (s *txSQLiteStore) GetAttendanceByStudentScheduleDate(ctx context.Context, studentID, scheduleID, date string) (*domain.Attendance, error) {
	return getAttendanceByStudentScheduleDate(ctx, s.tx, studentID, scheduleID, date)
}

func (s *txSQLiteStore) UpdateAttendance(ctx context.Context, attendance *domain.Attendance) error {
	return updateAttendance(ctx, s.tx, attendance)
}

func (s *txSQLiteStore) DeleteAttendance(ctx context.Context, id string) error {
	return deleteAttendance(ctx, s.tx, id)
}

func (s *txSQLiteStore) ListAttendance(ctx context.Context, filter AttendanceFilter, opts ListOptions) ([]domain.Attendance, error) {
	return listAttendance(ctx, s.tx, filter, opts)
}

func createAttendance(ctx context.Context, exec executor, attendance *domain.Attendance) error {
	query := `
		INSERT INTO attendances (
			id, student_id, schedule_id, date, status, created_at, updated_at
		) VALUES (
			:id, :student_id, :schedule_id, :date, :status, :created_at, :updated_at
		)`

	row := map[string]any{
		"id":          attendance.ID,
		"student_id":  attendance.StudentID,
		"schedule_id": attendance.ScheduleID,
		"date":        attendance.Date,
		"status":      string(attendance.Status),
		"created_at":  attendance.CreatedAt.Format(time.RFC3339),
		"updated_at":  attendance.UpdatedAt.Format(time.RFC3339),
	}

	if _, err := exec.NamedExecContext(ctx, query, row); err != nil {
		return classifyWriteError("CreateAttendance", "attendance", attendance.ID, "attendances", err)
	}

	return nil
}

func getAttendance(ctx context.Context, exec executor, id string) (*domain.Attendance, error) {
	query := `SELECT * FROM attendances WHERE id = ?`

	var row attendanceRow
	err := exec.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetAttendance", "attendance", id, "attendance not found", ErrNotFound)
		}
		return nil, NewStoreError("GetAttendance", "attendance", id, err.Error(), err)
	}

	return rowToAttendance(&row)
}

func getAttendanceByStudentScheduleDate(ctx context.Context, exec executor, studentID, scheduleID, date string) (*domain.Attendance, error) {
	query := `SELECT * FROM attendances WHERE student_id = ? AND schedule_id = ? AND date = ?`

	var row attendanceRow
	err := exec.GetContext(ctx, &row, query, studentID, scheduleID, date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetAttendanceByStudentScheduleDate", "attendance", "", "attendance not found", ErrNotFound)
		}
		return nil, NewStoreError("GetAttendanceByStudentScheduleDate", "attendance", "", err.Error(), err)
	}

	return rowToAttendance(&row)
}

func updateAttendance(ctx context.Context, exec executor, attendance *domain.Attendance) error {
	query := `
		UPDATE attendances SET
			student_id = :student_id,
			schedule_id = :schedule_id,
			date = :date,
			status = :status,
			updated_at = :updated_at
		WHERE id = :id`

	row := map[string]any{
		"id":          attendance.ID,
		"student_id":  attendance.StudentID,
		"schedule_id": attendance.ScheduleID,
		"date":        attendance.Date,
		"status":      string(attendance.Status),
		"updated_at":  attendance.UpdatedAt.Format(time.RFC3339),
	}

	result, err := exec.NamedExecContext(ctx, query, row)
	if err != nil {
		return classifyWriteError("UpdateAttendance", "attendance", attendance.ID, "attendances", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("UpdateAttendance", "attendance", attendance.ID, "attendance not found", ErrNotFound)
	}

	return nil
}

func deleteAttendance(ctx context.Context, exec executor, id string) error {
	query := `DELETE FROM attendances WHERE id = ?`

	result, err := exec.ExecContext(ctx, query, id)
	if err != nil {
		return classifyWriteError("DeleteAttendance", "attendance", id, "attendances", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("DeleteAttendance", "attendance", id, "attendance not found", ErrNotFound)
	}

	return nil
}

func listAttendance(ctx context.Context, exec executor, filter AttendanceFilter, opts ListOptions) ([]domain.Attendance, error) {
	opts = opts.Normalize()

	query := `SELECT * FROM attendances WHERE 1=1`
	args := []any{}
	if filter.StudentID != "" {
		query += ` AND student_id = ?`
		args = append(args, filter.StudentID)
	}
	if filter.ScheduleID != "" {
		query += ` AND schedule_id = ?`
		args = append(args, filter.ScheduleID)
	}
	if filter.Date != "" {
		query += ` AND date = ?`
		args = append(args, filter.Date)
	}
	query += ` ORDER BY date DESC, created_at DESC LIMIT ? OFFSET ?`
	args = append(args, opts.Limit, opts.Offset)

	var rows []attendanceRow
	err := exec.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, NewStoreError("ListAttendance", "attendance", "", err.Error(), err)
	}

	attendances := make([]domain.Attendance, 0, len(rows))
	for _, row := range rows {
		attendance, err := rowToAttendance(&row)
		if err != nil {
			return nil, err
		}
		attendances = append(attendances, *attendance)
	}

	return attendances, nil
}
