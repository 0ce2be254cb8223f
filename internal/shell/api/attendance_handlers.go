package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hafedEfheij/school-management-system-sub001/internal/core/domain"
	"github.com/hafedEfheij/school-management-system-sub001/internal/core/validation"
	"github.com/hafedEfheij/school-management-system-sub001/internal/shell/store"
)

// =============================================================================
// Attendance Handlers
// =============================================================================

func (h *Handler) handleCreateAttendance(w http.ResponseWriter, r *http.Request) {
	if !h.requireManage(w, r) {
		return
	}

	var req CreateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	if field, msg := validation.ValidateAttendanceFields(req.StudentID, req.ScheduleID, req.Date); field != "" {
		h.writeError(w, http.StatusBadRequest, msg, "validation_error")
		return
	}
	if field, msg := validation.ValidateAttendanceStatus(domain.AttendanceStatus(req.Status)); field != "" {
		h.writeError(w, http.StatusBadRequest, msg, "validation_error")
		return
	}
	if field, msg := validation.ValidateDate("date", req.Date); field != "" {
		h.writeError(w, http.StatusBadRequest, msg, "validation_error")
		return
	}

	if _, err := h.store.GetStudent(r.Context(), req.StudentID); err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "student not found", "not_found")
			return
		}
		h.logger.Error("failed to get student", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to create attendance", "internal_error")
		return
	}
	if _, err := h.store.GetSchedule(r.Context(), req.ScheduleID); err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "schedule not found", "not_found")
			return
		}
		h.logger.Error("failed to get schedule", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to create attendance", "internal_error")
		return
	}

	// Pre-check for a friendly message; the unique triple index is the authority.
	if _, err := h.store.GetAttendanceByStudentScheduleDate(r.Context(), req.StudentID, req.ScheduleID, req.Date); err == nil {
		h.writeError(w, http.StatusBadRequest, "attendance is already recorded for this student, schedule, and date", "conflict")
		return
	} else if !isNotFound(err) {
		h.logger.Error("failed to check attendance", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to create attendance", "internal_error")
		return
	}

	now := time.Now().UTC()
	attendance := &domain.Attendance{
		ID:         domain.NewID(domain.PrefixAttendance),
		StudentID:  req.StudentID,
		ScheduleID: req.ScheduleID,
		Status:     domain.AttendanceStatus(req.Status),
		Date:       req.Date,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := h.store.CreateAttendance(r.Context(), attendance); err != nil {
		if isDuplicate(err) {
			h.writeError(w, http.StatusBadRequest, "attendance is already recorded for this student, schedule, and date", "conflict")
			return
		}
		if isForeignKey(err) {
			h.writeError(w, http.StatusNotFound, "student or schedule not found", "not_found")
			return
		}
		h.logger.Error("failed to create attendance", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to create attendance", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusCreated, attendanceToResponse(attendance))
}

func (h *Handler) handleGetAttendance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	attendance, err := h.store.GetAttendance(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "attendance record not found", "not_found")
			return
		}
		h.logger.Error("failed to get attendance", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get attendance", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusOK, attendanceToResponse(attendance))
}

func (h *Handler) handleListAttendance(w http.ResponseWriter, r *http.Request) {
	opts := parseListOptions(r)
	filter := store.AttendanceFilter{
		StudentID:  r.URL.Query().Get("studentId"),
		ScheduleID: r.URL.Query().Get("scheduleId"),
		Date:       r.URL.Query().Get("date"),
	}

	records, err := h.store.ListAttendance(r.Context(), filter, opts)
	if err != nil {
		h.logger.Error("failed to list attendance", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to list attendance", "internal_error")
		return
	}

	resp := ListResponse[AttendanceResponse]{
		Items:  make([]AttendanceResponse, 0, len(records)),
		Limit:  opts.Limit,
		Offset: opts.Offset,
	}
	for _, a := range records {
		resp.Items = append(resp.Items, attendanceToResponse(&a))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleUpdateAttendance(w http.ResponseWriter, r *http.Request) {
	if !h.requireManage(w, r) {
		return
	}

	id := chi.URLParam(r, "id")

	attendance, err := h.store.GetAttendance(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "attendance record not found", "not_found")
			return
		}
		h.logger.Error("failed to get attendance", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get attendance", "internal_error")
		return
	}

	var req UpdateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	if req.Status != "" {
		if field, msg := validation.ValidateAttendanceStatus(domain.AttendanceStatus(req.Status)); field != "" {
			h.writeError(w, http.StatusBadRequest, msg, "validation_error")
			return
		}
		attendance.Status = domain.AttendanceStatus(req.Status)
	}
	if req.Date != "" {
		if field, msg := validation.ValidateDate("date", req.Date); field != "" {
			h.writeError(w, http.StatusBadRequest, msg, "validation_error")
			return
		}
		attendance.Date = req.Date
	}
	attendance.UpdatedAt = time.Now().UTC()

	if err := h.store.UpdateAttendance(r.Context(), attendance); err != nil {
		if isDuplicate(err) {
			h.writeError(w, http.StatusBadRequest, "attendance is already recorded for this student, schedule, and date", "conflict")
			return
		}
		h.logger.Error("failed to update attendance", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to update attendance", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusOK, attendanceToResponse(attendance))
}

func (h *Handler) handleDeleteAttendance(w http.ResponseWriter, r *http.Request) {
	if !h.requireManage(w, r) {
		return
	}

	id := chi.URLParam(r, "id")

	if _, err := h.store.GetAttendance(r.Context(), id); err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "attendance record not found", "not_found")
			return
		}
		h.logger.Error("failed to get attendance", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get attendance", "internal_error")
		return
	}

	if err := h.store.DeleteAttendance(r.Context(), id); err != nil {
		h.logger.Error("failed to delete attendance", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to delete attendance", "internal_error")
		return
	}

	h.logger.Info("attendance deleted", "attendance_id", id)
	h.writeJSON(w, http.StatusOK, MessageResponse{Message: "attendance record deleted"})
}

func attendanceToResponse(a *domain.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID,
		StudentID:  a.StudentID,
		ScheduleID: a.ScheduleID,
		Status:     string(a.Status),
		Date:       a.Date,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}
