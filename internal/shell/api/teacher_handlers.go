package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hafedEfheij/school-management-system-sub001/internal/core/domain"
	"github.com/hafedEfheij/school-management-system-sub001/internal/core/validation"
)

// =============================================================================
// Teacher Handlers
// =============================================================================

func (h *Handler) handleCreateTeacher(w http.ResponseWriter, r *http.Request) {
	if !h.requireManage(w, r) {
		return
	}

	var req CreateTeacherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	if field, msg := validation.ValidateTeacherFields(req.FirstName, req.LastName, req.Email, req.Subject); field != "" {
		h.writeError(w, http.StatusBadRequest, msg, "validation_error")
		return
	}

	// Pre-check for a friendly message; the unique index is the authority.
	if _, err := h.store.GetTeacherByEmail(r.Context(), req.Email); err == nil {
		h.writeError(w, http.StatusBadRequest, "a teacher with this email already exists", "conflict")
		return
	} else if !isNotFound(err) {
		h.logger.Error("failed to check teacher email", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to create teacher", "internal_error")
		return
	}

	now := time.Now().UTC()
	teacher := &domain.Teacher{
		ID:        domain.NewID(domain.PrefixTeacher),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.store.CreateTeacher(r.Context(), teacher); err != nil {
		if isDuplicate(err) {
			h.writeError(w, http.StatusBadRequest, "a teacher with this email already exists", "conflict")
			return
		}
		h.logger.Error("failed to create teacher", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to create teacher", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusCreated, teacherToResponse(teacher))
}

func (h *Handler) handleGetTeacher(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	teacher, err := h.store.GetTeacher(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "teacher not found", "not_found")
			return
		}
		h.logger.Error("failed to get teacher", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get teacher", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusOK, teacherToResponse(teacher))
}

func (h *Handler) handleListTeachers(w http.ResponseWriter, r *http.Request) {
	opts := parseListOptions(r)

	teachers, err := h.store.ListTeachers(r.Context(), opts)
	if err != nil {
		h.logger.Error("failed to list teachers", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to list teachers", "internal_error")
		return
	}

	resp := ListResponse[TeacherResponse]{
		Items:  make([]TeacherResponse, 0, len(teachers)),
		Limit:  opts.Limit,
		Offset: opts.Offset,
	}
	for _, t := range teachers {
		resp.Items = append(resp.Items, teacherToResponse(&t))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleUpdateTeacher(w http.ResponseWriter, r *http.Request) {
	if !h.requireManage(w, r) {
		return
	}

	id := chi.URLParam(r, "id")

	teacher, err := h.store.GetTeacher(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "teacher not found", "not_found")
			return
		}
		h.logger.Error("failed to get teacher", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get teacher", "internal_error")
		return
	}

	var req UpdateTeacherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	if req.Email != "" && req.Email != teacher.Email {
		if _, err := h.store.GetTeacherByEmail(r.Context(), req.Email); err == nil {
			h.writeError(w, http.StatusBadRequest, "a teacher with this email already exists", "conflict")
			return
		} else if !isNotFound(err) {
			h.logger.Error("failed to check teacher email", "error", err)
			h.writeError(w, http.StatusInternalServerError, "failed to update teacher", "internal_error")
			return
		}
		teacher.Email = req.Email
	}
	if req.FirstName != "" {
		teacher.FirstName = req.FirstName
	}
	if req.LastName != "" {
		teacher.LastName = req.LastName
	}
	if req.Phone != "" {
		teacher.Phone = req.Phone
	}
	if req.Subject != "" {
		teacher.Subject = req.Subject
	}
	teacher.UpdatedAt = time.Now().UTC()

	if err := h.store.UpdateTeacher(r.Context(), teacher); err != nil {
		if isDuplicate(err) {
			h.writeError(w, http.StatusBadRequest, "a teacher with this email already exists", "conflict")
			return
		}
		h.logger.Error("failed to update teacher", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to update teacher", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusOK, teacherToResponse(teacher))
}

func (h *Handler) handleDeleteTeacher(w http.ResponseWriter, r *http.Request) {
	if !h.requireManage(w, r) {
		return
	}

	id := chi.URLParam(r, "id")

	if _, err := h.store.GetTeacher(r.Context(), id); err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "teacher not found", "not_found")
			return
		}
		h.logger.Error("failed to get teacher", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get teacher", "internal_error")
		return
	}

	count, err := h.store.CountCoursesByTeacher(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to count courses", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to delete teacher", "internal_error")
		return
	}
	if allowed, reason := validation.CanDeleteTeacher(count); !allowed {
		h.writeError(w, http.StatusBadRequest, reason, "conflict")
		return
	}

	if err := h.store.DeleteTeacher(r.Context(), id); err != nil {
		if isForeignKey(err) {
			// A course slipped in between the count and the delete.
			h.writeError(w, http.StatusBadRequest, "teacher has assigned courses", "conflict")
			return
		}
		h.logger.Error("failed to delete teacher", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to delete teacher", "internal_error")
		return
	}

	h.logger.Info("teacher deleted", "teacher_id", id)
	h.writeJSON(w, http.StatusOK, MessageResponse{Message: "teacher deleted"})
}

func teacherToResponse(t *domain.Teacher) TeacherResponse {
	return TeacherResponse{
		ID:        t.ID,
		FirstName: t.FirstName,
		LastName:  t.LastName,
		Email:     t.Email,
		Phone:     t.Phone,
		Subject:   t.Subject,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
