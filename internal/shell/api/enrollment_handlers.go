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
// Enrollment Handlers
// =============================================================================

func (h *Handler) handleCreateEnrollment(w http.ResponseWriter, r *http.Request) {
	if !h.requireManage(w, r) {
		return
	}

	var req CreateEnrollmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	if field, msg := validation.ValidateEnrollmentFields(req.StudentID, req.CourseID); field != "" {
		h.writeError(w, http.StatusBadRequest, msg, "validation_error")
		return
	}

	if _, err := h.store.GetStudent(r.Context(), req.StudentID); err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "student not found", "not_found")
			return
		}
		h.logger.Error("failed to get student", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to create enrollment", "internal_error")
		return
	}
	if _, err := h.store.GetCourse(r.Context(), req.CourseID); err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "course not found", "not_found")
			return
		}
		h.logger.Error("failed to get course", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to create enrollment", "internal_error")
		return
	}

	// Pre-check for a friendly message; the unique pair index is the authority.
	if _, err := h.store.GetEnrollmentByStudentCourse(r.Context(), req.StudentID, req.CourseID); err == nil {
		h.writeError(w, http.StatusBadRequest, "student is already enrolled in this course", "conflict")
		return
	} else if !isNotFound(err) {
		h.logger.Error("failed to check enrollment", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to create enrollment", "internal_error")
		return
	}

	now := time.Now().UTC()
	enrollment := &domain.Enrollment{
		ID:        domain.NewID(domain.PrefixEnrollment),
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.store.CreateEnrollment(r.Context(), enrollment); err != nil {
		if isDuplicate(err) {
			h.writeError(w, http.StatusBadRequest, "student is already enrolled in this course", "conflict")
			return
		}
		if isForeignKey(err) {
			h.writeError(w, http.StatusNotFound, "student or course not found", "not_found")
			return
		}
		h.logger.Error("failed to create enrollment", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to create enrollment", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusCreated, enrollmentToResponse(enrollment))
}

func (h *Handler) handleGetEnrollment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	enrollment, err := h.store.GetEnrollment(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "enrollment not found", "not_found")
			return
		}
		h.logger.Error("failed to get enrollment", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get enrollment", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusOK, enrollmentToResponse(enrollment))
}

func (h *Handler) handleListEnrollments(w http.ResponseWriter, r *http.Request) {
	opts := parseListOptions(r)
	filter := store.EnrollmentFilter{
		StudentID: r.URL.Query().Get("studentId"),
		CourseID:  r.URL.Query().Get("courseId"),
	}

	enrollments, err := h.store.ListEnrollments(r.Context(), filter, opts)
	if err != nil {
		h.logger.Error("failed to list enrollments", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to list enrollments", "internal_error")
		return
	}

	resp := ListResponse[EnrollmentResponse]{
		Items:  make([]EnrollmentResponse, 0, len(enrollments)),
		Limit:  opts.Limit,
		Offset: opts.Offset,
	}
	for _, e := range enrollments {
		resp.Items = append(resp.Items, enrollmentToResponse(&e))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleDeleteEnrollment(w http.ResponseWriter, r *http.Request) {
	if !h.requireManage(w, r) {
		return
	}

	id := chi.URLParam(r, "id")

	if _, err := h.store.GetEnrollment(r.Context(), id); err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "enrollment not found", "not_found")
			return
		}
		h.logger.Error("failed to get enrollment", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get enrollment", "internal_error")
		return
	}

	if err := h.store.DeleteEnrollment(r.Context(), id); err != nil {
		h.logger.Error("failed to delete enrollment", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to delete enrollment", "internal_error")
		return
	}

	h.logger.Info("enrollment deleted", "enrollment_id", id)
	h.writeJSON(w, http.StatusOK, MessageResponse{Message: "enrollment deleted"})
}

func enrollmentToResponse(e *domain.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:        e.ID,
		StudentID: e.StudentID,
		CourseID:  e.CourseID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
