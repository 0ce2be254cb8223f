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
// Student Handlers
// =============================================================================

func (h *Handler) handleCreateStudent(w http.ResponseWriter, r *http.Request) {
	if !h.requireManage(w, r) {
		return
	}

	var req CreateStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	if field, msg := validation.ValidateStudentFields(req.FirstName, req.LastName, req.GradeLevel); field != "" {
		h.writeError(w, http.StatusBadRequest, msg, "validation_error")
		return
	}
	if req.DateOfBirth != "" {
		if field, msg := validation.ValidateDate("dateOfBirth", req.DateOfBirth); field != "" {
			h.writeError(w, http.StatusBadRequest, msg, "validation_error")
			return
		}
	}

	if req.Email != "" {
		if _, err := h.store.GetStudentByEmail(r.Context(), req.Email); err == nil {
			h.writeError(w, http.StatusBadRequest, "a student with this email already exists", "conflict")
			return
		} else if !isNotFound(err) {
			h.logger.Error("failed to check student email", "error", err)
			h.writeError(w, http.StatusInternalServerError, "failed to create student", "internal_error")
			return
		}
	}

	now := time.Now().UTC()
	student := &domain.Student{
		ID:          domain.NewID(domain.PrefixStudent),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		DateOfBirth: req.DateOfBirth,
		GradeLevel:  req.GradeLevel,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.store.CreateStudent(r.Context(), student); err != nil {
		if isDuplicate(err) {
			h.writeError(w, http.StatusBadRequest, "a student with this email already exists", "conflict")
			return
		}
		h.logger.Error("failed to create student", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to create student", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusCreated, studentToResponse(student))
}

func (h *Handler) handleGetStudent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	student, err := h.store.GetStudent(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "student not found", "not_found")
			return
		}
		h.logger.Error("failed to get student", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get student", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusOK, studentToResponse(student))
}

func (h *Handler) handleListStudents(w http.ResponseWriter, r *http.Request) {
	opts := parseListOptions(r)
	filter := store.StudentFilter{
		GradeLevel: r.URL.Query().Get("gradeLevel"),
		Search:     r.URL.Query().Get("search"),
	}

	students, err := h.store.ListStudents(r.Context(), filter, opts)
	if err != nil {
		h.logger.Error("failed to list students", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to list students", "internal_error")
		return
	}

	resp := ListResponse[StudentResponse]{
		Items:  make([]StudentResponse, 0, len(students)),
		Limit:  opts.Limit,
		Offset: opts.Offset,
	}
	for _, s := range students {
		resp.Items = append(resp.Items, studentToResponse(&s))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleUpdateStudent(w http.ResponseWriter, r *http.Request) {
	if !h.requireManage(w, r) {
		return
	}

	id := chi.URLParam(r, "id")

	student, err := h.store.GetStudent(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "student not found", "not_found")
			return
		}
		h.logger.Error("failed to get student", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get student", "internal_error")
		return
	}

	var req UpdateStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	if req.DateOfBirth != "" {
		if field, msg := validation.ValidateDate("dateOfBirth", req.DateOfBirth); field != "" {
			h.writeError(w, http.StatusBadRequest, msg, "validation_error")
			return
		}
		student.DateOfBirth = req.DateOfBirth
	}
	if req.Email != "" && req.Email != student.Email {
		if _, err := h.store.GetStudentByEmail(r.Context(), req.Email); err == nil {
			h.writeError(w, http.StatusBadRequest, "a student with this email already exists", "conflict")
			return
		} else if !isNotFound(err) {
			h.logger.Error("failed to check student email", "error", err)
			h.writeError(w, http.StatusInternalServerError, "failed to update student", "internal_error")
			return
		}
		student.Email = req.Email
	}
	if req.FirstName != "" {
		student.FirstName = req.FirstName
	}
	if req.LastName != "" {
		student.LastName = req.LastName
	}
	if req.Phone != "" {
		student.Phone = req.Phone
	}
	if req.Address != "" {
		student.Address = req.Address
	}
	if req.GradeLevel != "" {
		student.GradeLevel = req.GradeLevel
	}
	student.UpdatedAt = time.Now().UTC()

	if err := h.store.UpdateStudent(r.Context(), student); err != nil {
		if isDuplicate(err) {
			h.writeError(w, http.StatusBadRequest, "a student with this email already exists", "conflict")
			return
		}
		h.logger.Error("failed to update student", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to update student", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusOK, studentToResponse(student))
}

func (h *Handler) handleDeleteStudent(w http.ResponseWriter, r *http.Request) {
	if !h.requireManage(w, r) {
		return
	}

	id := chi.URLParam(r, "id")

	if _, err := h.store.GetStudent(r.Context(), id); err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "student not found", "not_found")
			return
		}
		h.logger.Error("failed to get student", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get student", "internal_error")
		return
	}

	// Enrollments, grades, and attendance cascade with the student row.
	if err := h.store.DeleteStudent(r.Context(), id); err != nil {
		h.logger.Error("failed to delete student", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to delete student", "internal_error")
		return
	}

	h.logger.Info("student deleted", "student_id", id)
	h.writeJSON(w, http.StatusOK, MessageResponse{Message: "student deleted"})
}

func studentToResponse(s *domain.Student) StudentResponse {
	return StudentResponse{
		ID:          s.ID,
		FirstName:   s.FirstName,
		LastName:    s.LastName,
		Email:       s.Email,
		Phone:       s.Phone,
		Address:     s.Address,
		DateOfBirth: s.DateOfBirth,
		GradeLevel:  s.GradeLevel,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
