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
// Grade Handlers
// =============================================================================

func (h *Handler) handleCreateGrade(w http.ResponseWriter, r *http.Request) {
	if !h.requireManage(w, r) {
		return
	}

	var req CreateGradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	if field, msg := validation.ValidateGradeFields(req.StudentID, req.CourseID, req.Type, req.Date); field != "" {
		h.writeError(w, http.StatusBadRequest, msg, "validation_error")
		return
	}
	if req.Value == nil {
		h.writeError(w, http.StatusBadRequest, "value is required", "validation_error")
		return
	}
	if field, msg := validation.ValidateGradeValue(*req.Value); field != "" {
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
		h.writeError(w, http.StatusInternalServerError, "failed to create grade", "internal_error")
		return
	}
	if _, err := h.store.GetCourse(r.Context(), req.CourseID); err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "course not found", "not_found")
			return
		}
		h.logger.Error("failed to get course", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to create grade", "internal_error")
		return
	}

	// A grade requires an active enrollment for the pair.
	if _, err := h.store.GetEnrollmentByStudentCourse(r.Context(), req.StudentID, req.CourseID); err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusBadRequest, "student is not enrolled in this course", "conflict")
			return
		}
		h.logger.Error("failed to check enrollment", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to create grade", "internal_error")
		return
	}

	now := time.Now().UTC()
	grade := &domain.Grade{
		ID:        domain.NewID(domain.PrefixGrade),
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Value:     *req.Value,
		Type:      req.Type,
		Date:      req.Date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.store.CreateGrade(r.Context(), grade); err != nil {
		if isForeignKey(err) {
			h.writeError(w, http.StatusNotFound, "student or course not found", "not_found")
			return
		}
		h.logger.Error("failed to create grade", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to create grade", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusCreated, gradeToResponse(grade))
}

func (h *Handler) handleGetGrade(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	grade, err := h.store.GetGrade(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "grade not found", "not_found")
			return
		}
		h.logger.Error("failed to get grade", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get grade", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusOK, gradeToResponse(grade))
}

func (h *Handler) handleListGrades(w http.ResponseWriter, r *http.Request) {
	opts := parseListOptions(r)
	filter := store.GradeFilter{
		StudentID: r.URL.Query().Get("studentId"),
		CourseID:  r.URL.Query().Get("courseId"),
	}

	grades, err := h.store.ListGrades(r.Context(), filter, opts)
	if err != nil {
		h.logger.Error("failed to list grades", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to list grades", "internal_error")
		return
	}

	resp := ListResponse[GradeResponse]{
		Items:  make([]GradeResponse, 0, len(grades)),
		Limit:  opts.Limit,
		Offset: opts.Offset,
	}
	for _, g := range grades {
		resp.Items = append(resp.Items, gradeToResponse(&g))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleUpdateGrade(w http.ResponseWriter, r *http.Request) {
	if !h.requireManage(w, r) {
		return
	}

	id := chi.URLParam(r, "id")

	grade, err := h.store.GetGrade(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "grade not found", "not_found")
			return
		}
		h.logger.Error("failed to get grade", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get grade", "internal_error")
		return
	}

	var req UpdateGradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	if req.Value != nil {
		if field, msg := validation.ValidateGradeValue(*req.Value); field != "" {
			h.writeError(w, http.StatusBadRequest, msg, "validation_error")
			return
		}
		grade.Value = *req.Value
	}
	if req.Date != "" {
		if field, msg := validation.ValidateDate("date", req.Date); field != "" {
			h.writeError(w, http.StatusBadRequest, msg, "validation_error")
			return
		}
		grade.Date = req.Date
	}
	if req.Type != "" {
		grade.Type = req.Type
	}
	grade.UpdatedAt = time.Now().UTC()

	if err := h.store.UpdateGrade(r.Context(), grade); err != nil {
		h.logger.Error("failed to update grade", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to update grade", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusOK, gradeToResponse(grade))
}

func (h *Handler) handleDeleteGrade(w http.ResponseWriter, r *http.Request) {
	if !h.requireManage(w, r) {
		return
	}

	id := chi.URLParam(r, "id")

	if _, err := h.store.GetGrade(r.Context(), id); err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "grade not found", "not_found")
			return
		}
		h.logger.Error("failed to get grade", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get grade", "internal_error")
		return
	}

	if err := h.store.DeleteGrade(r.Context(), id); err != nil {
		h.logger.Error("failed to delete grade", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to delete grade", "internal_error")
		return
	}

	h.logger.Info("grade deleted", "grade_id", id)
	h.writeJSON(w, http.StatusOK, MessageResponse{Message: "grade deleted"})
}

func gradeToResponse(g *domain.Grade) GradeResponse {
	return GradeResponse{
		ID:        g.ID,
		StudentID: g.StudentID,
		CourseID:  g.CourseID,
		Value:     g.Value,
		Type:      g.Type,
		Date:      g.Date,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}
