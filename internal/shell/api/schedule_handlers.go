package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hafedEfheij/school-management-system-sub001/internal/core/domain"
	"github.com/hafedEfheij/school-management-system-sub001/internal/core/validation"
	"github.com/hafedEfheij/school-management-system-sub001/internal/shell/store"
)

// =============================================================================
// Schedule Handlers
// =============================================================================

func (h *Handler) handleCreateSchedule(w http.ResponseWriter, r *http.Request) {
	if !h.requireManage(w, r) {
		return
	}

	var req CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	if field, msg := validation.ValidateScheduleFields(req.StartTime, req.EndTime, req.CourseID, req.TeacherID); field != "" {
		h.writeError(w, http.StatusBadRequest, msg, "validation_error")
		return
	}
	if req.DayOfWeek == nil {
		h.writeError(w, http.StatusBadRequest, "dayOfWeek is required", "validation_error")
		return
	}
	if field, msg := validation.ValidateDayOfWeek(*req.DayOfWeek); field != "" {
		h.writeError(w, http.StatusBadRequest, msg, "validation_error")
		return
	}
	if field, msg := validation.ValidateTimeRange(req.StartTime, req.EndTime); field != "" {
		h.writeError(w, http.StatusBadRequest, msg, "validation_error")
		return
	}

	if _, err := h.store.GetCourse(r.Context(), req.CourseID); err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "course not found", "not_found")
			return
		}
		h.logger.Error("failed to get course", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to create schedule", "internal_error")
		return
	}
	if _, err := h.store.GetTeacher(r.Context(), req.TeacherID); err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "teacher not found", "not_found")
			return
		}
		h.logger.Error("failed to get teacher", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to create schedule", "internal_error")
		return
	}

	now := time.Now().UTC()
	schedule := &domain.Schedule{
		ID:        domain.NewID(domain.PrefixSchedule),
		DayOfWeek: *req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Room:      req.Room,
		CourseID:  req.CourseID,
		TeacherID: req.TeacherID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.store.CreateSchedule(r.Context(), schedule); err != nil {
		if isForeignKey(err) {
			h.writeError(w, http.StatusNotFound, "course or teacher not found", "not_found")
			return
		}
		h.logger.Error("failed to create schedule", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to create schedule", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusCreated, scheduleToResponse(schedule))
}

func (h *Handler) handleGetSchedule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	schedule, err := h.store.GetSchedule(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "schedule not found", "not_found")
			return
		}
		h.logger.Error("failed to get schedule", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get schedule", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusOK, scheduleToResponse(schedule))
}

func (h *Handler) handleListSchedules(w http.ResponseWriter, r *http.Request) {
	opts := parseListOptions(r)
	filter := store.ScheduleFilter{
		CourseID:  r.URL.Query().Get("courseId"),
		TeacherID: r.URL.Query().Get("teacherId"),
	}
	if day := r.URL.Query().Get("dayOfWeek"); day != "" {
		if d, err := strconv.Atoi(day); err == nil {
			filter.DayOfWeek = &d
		}
	}

	schedules, err := h.store.ListSchedules(r.Context(), filter, opts)
	if err != nil {
		h.logger.Error("failed to list schedules", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to list schedules", "internal_error")
		return
	}

	resp := ListResponse[ScheduleResponse]{
		Items:  make([]ScheduleResponse, 0, len(schedules)),
		Limit:  opts.Limit,
		Offset: opts.Offset,
	}
	for _, s := range schedules {
		resp.Items = append(resp.Items, scheduleToResponse(&s))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleUpdateSchedule(w http.ResponseWriter, r *http.Request) {
	if !h.requireManage(w, r) {
		return
	}

	id := chi.URLParam(r, "id")

	schedule, err := h.store.GetSchedule(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "schedule not found", "not_found")
			return
		}
		h.logger.Error("failed to get schedule", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get schedule", "internal_error")
		return
	}

	var req UpdateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	if req.DayOfWeek != nil {
		if field, msg := validation.ValidateDayOfWeek(*req.DayOfWeek); field != "" {
			h.writeError(w, http.StatusBadRequest, msg, "validation_error")
			return
		}
		schedule.DayOfWeek = *req.DayOfWeek
	}

	// Validate the time window as it will be after the update.
	start, end := schedule.StartTime, schedule.EndTime
	if req.StartTime != "" {
		start = req.StartTime
	}
	if req.EndTime != "" {
		end = req.EndTime
	}
	if field, msg := validation.ValidateTimeRange(start, end); field != "" {
		h.writeError(w, http.StatusBadRequest, msg, "validation_error")
		return
	}
	schedule.StartTime = start
	schedule.EndTime = end

	if req.CourseID != "" && req.CourseID != schedule.CourseID {
		if _, err := h.store.GetCourse(r.Context(), req.CourseID); err != nil {
			if isNotFound(err) {
				h.writeError(w, http.StatusNotFound, "course not found", "not_found")
				return
			}
			h.logger.Error("failed to get course", "error", err)
			h.writeError(w, http.StatusInternalServerError, "failed to update schedule", "internal_error")
			return
		}
		schedule.CourseID = req.CourseID
	}
	if req.TeacherID != "" && req.TeacherID != schedule.TeacherID {
		if _, err := h.store.GetTeacher(r.Context(), req.TeacherID); err != nil {
			if isNotFound(err) {
				h.writeError(w, http.StatusNotFound, "teacher not found", "not_found")
				return
			}
			h.logger.Error("failed to get teacher", "error", err)
			h.writeError(w, http.StatusInternalServerError, "failed to update schedule", "internal_error")
			return
		}
		schedule.TeacherID = req.TeacherID
	}
	if req.Room != "" {
		schedule.Room = req.Room
	}
	schedule.UpdatedAt = time.Now().UTC()

	if err := h.store.UpdateSchedule(r.Context(), schedule); err != nil {
		if isForeignKey(err) {
			h.writeError(w, http.StatusNotFound, "course or teacher not found", "not_found")
			return
		}
		h.logger.Error("failed to update schedule", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to update schedule", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusOK, scheduleToResponse(schedule))
}

func (h *Handler) handleDeleteSchedule(w http.ResponseWriter, r *http.Request) {
	if !h.requireManage(w, r) {
		return
	}

	id := chi.URLParam(r, "id")

	if _, err := h.store.GetSchedule(r.Context(), id); err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "schedule not found", "not_found")
			return
		}
		h.logger.Error("failed to get schedule", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get schedule", "internal_error")
		return
	}

	if err := h.store.DeleteSchedule(r.Context(), id); err != nil {
		h.logger.Error("failed to delete schedule", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to delete schedule", "internal_error")
		return
	}

	h.logger.Info("schedule deleted", "schedule_id", id)
	h.writeJSON(w, http.StatusOK, MessageResponse{Message: "schedule deleted"})
}

func scheduleToResponse(s *domain.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:        s.ID,
		DayOfWeek: s.DayOfWeek,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Room:      s.Room,
		CourseID:  s.CourseID,
		TeacherID: s.TeacherID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
