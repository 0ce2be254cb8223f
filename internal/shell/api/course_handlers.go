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
// Course Handlers
// =============================================================================

func (h *Handler) handleCreateCourse(w http.ResponseWriter, r *http.Request) {
	if !h.requireManage(w, r) {
		return
	}

	var req CreateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	if field, msg := validation.ValidateCourseFields(req.Name, req.TeacherID); field != "" {
		h.writeError(w, http.StatusBadRequest, msg, "validation_error")
		return
	}

	credits := domain.DefaultCredits
	if req.Credits != nil {
		if *req.Credits <= 0 {
			h.writeError(w, http.StatusBadRequest, "credits must be positive", "validation_error")
			return
		}
		credits = *req.Credits
	}

	teacher, err := h.store.GetTeacher(r.Context(), req.TeacherID)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "teacher not found", "not_found")
			return
		}
		h.logger.Error("failed to get teacher", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to create course", "internal_error")
		return
	}

	now := time.Now().UTC()
	course := &domain.Course{
		ID:          domain.NewID(domain.PrefixCourse),
		Name:        req.Name,
		Description: req.Description,
		Credits:     credits,
		TeacherID:   req.TeacherID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.store.CreateCourse(r.Context(), course); err != nil {
		if isForeignKey(err) {
			h.writeError(w, http.StatusNotFound, "teacher not found", "not_found")
			return
		}
		h.logger.Error("failed to create course", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to create course", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusCreated, courseToResponse(course, teacher))
}

func (h *Handler) handleGetCourse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	course, err := h.store.GetCourse(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "course not found", "not_found")
			return
		}
		h.logger.Error("failed to get course", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get course", "internal_error")
		return
	}

	// Embed the owning teacher; a lookup failure only drops the embed.
	teacher, err := h.store.GetTeacher(r.Context(), course.TeacherID)
	if err != nil && !isNotFound(err) {
		h.logger.Warn("failed to resolve course teacher", "course_id", id, "error", err)
	}

	h.writeJSON(w, http.StatusOK, courseToResponse(course, teacher))
}

func (h *Handler) handleListCourses(w http.ResponseWriter, r *http.Request) {
	opts := parseListOptions(r)
	filter := store.CourseFilter{
		TeacherID: r.URL.Query().Get("teacherId"),
	}

	courses, err := h.store.ListCourses(r.Context(), filter, opts)
	if err != nil {
		h.logger.Error("failed to list courses", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to list courses", "internal_error")
		return
	}

	resp := ListResponse[CourseResponse]{
		Items:  make([]CourseResponse, 0, len(courses)),
		Limit:  opts.Limit,
		Offset: opts.Offset,
	}
	for _, c := range courses {
		resp.Items = append(resp.Items, courseToResponse(&c, nil))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleUpdateCourse(w http.ResponseWriter, r *http.Request) {
	if !h.requireManage(w, r) {
		return
	}

	id := chi.URLParam(r, "id")

	course, err := h.store.GetCourse(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "course not found", "not_found")
			return
		}
		h.logger.Error("failed to get course", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get course", "internal_error")
		return
	}

	var req UpdateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	if req.TeacherID != "" && req.TeacherID != course.TeacherID {
		if _, err := h.store.GetTeacher(r.Context(), req.TeacherID); err != nil {
			if isNotFound(err) {
				h.writeError(w, http.StatusNotFound, "teacher not found", "not_found")
				return
			}
			h.logger.Error("failed to get teacher", "error", err)
			h.writeError(w, http.StatusInternalServerError, "failed to update course", "internal_error")
			return
		}
		course.TeacherID = req.TeacherID
	}
	if req.Name != "" {
		course.Name = req.Name
	}
	if req.Description != "" {
		course.Description = req.Description
	}
	if req.Credits != nil {
		if *req.Credits <= 0 {
			h.writeError(w, http.StatusBadRequest, "credits must be positive", "validation_error")
			return
		}
		course.Credits = *req.Credits
	}
	course.UpdatedAt = time.Now().UTC()

	if err := h.store.UpdateCourse(r.Context(), course); err != nil {
		if isForeignKey(err) {
			h.writeError(w, http.StatusNotFound, "teacher not found", "not_found")
			return
		}
		h.logger.Error("failed to update course", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to update course", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusOK, courseToResponse(course, nil))
}

func (h *Handler) handleDeleteCourse(w http.ResponseWriter, r *http.Request) {
	if !h.requireManage(w, r) {
		return
	}

	id := chi.URLParam(r, "id")

	if _, err := h.store.GetCourse(r.Context(), id); err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "course not found", "not_found")
			return
		}
		h.logger.Error("failed to get course", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get course", "internal_error")
		return
	}

	// Schedules, enrollments, and grades cascade with the course row.
	if err := h.store.DeleteCourse(r.Context(), id); err != nil {
		h.logger.Error("failed to delete course", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to delete course", "internal_error")
		return
	}

	h.logger.Info("course deleted", "course_id", id)
	h.writeJSON(w, http.StatusOK, MessageResponse{Message: "course deleted"})
}

func courseToResponse(c *domain.Course, teacher *domain.Teacher) CourseResponse {
	resp := CourseResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Credits:     c.Credits,
		TeacherID:   c.TeacherID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if teacher != nil {
		t := teacherToResponse(teacher)
		resp.Teacher = &t
	}
	return resp
}
