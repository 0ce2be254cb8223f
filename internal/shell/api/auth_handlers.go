package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/hafedEfheij/school-management-system-sub001/internal/core/auth"
	"github.com/hafedEfheij/school-management-system-sub001/internal/core/domain"
	"github.com/hafedEfheij/school-management-system-sub001/internal/core/validation"
	"github.com/hafedEfheij/school-management-system-sub001/internal/shell/token"
)

// =============================================================================
// Auth Handlers
// =============================================================================

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	if field, msg := validation.ValidateLoginFields(req.Email, req.Password); field != "" {
		h.writeError(w, http.StatusBadRequest, msg, "validation_error")
		return
	}

	// One generic message for unknown email and wrong password, so the
	// response does not reveal which accounts exist.
	user, err := h.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusUnauthorized, "Invalid email or password", "auth_error")
			return
		}
		h.logger.Error("failed to look up user", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to log in", "internal_error")
		return
	}

	if !token.CheckPassword(user.PasswordHash, req.Password) {
		h.writeError(w, http.StatusUnauthorized, "Invalid email or password", "auth_error")
		return
	}

	signed, err := h.tokens.Issue(*user)
	if err != nil {
		h.logger.Error("failed to issue token", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to log in", "internal_error")
		return
	}

	h.logger.Info("user logged in", "user_id", user.ID, "role", user.Role)
	h.writeJSON(w, http.StatusOK, LoginResponse{
		Token: signed,
		User:  userToResponse(user),
	})
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	if !auth.CanManageUsers(auth.FromContext(r.Context())) {
		h.writeError(w, http.StatusForbidden, "insufficient permissions", "auth_error")
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	if field, msg := validation.ValidateRegisterFields(req.Email, req.Password, req.Name); field != "" {
		h.writeError(w, http.StatusBadRequest, msg, "validation_error")
		return
	}

	role := domain.Role(req.Role)
	if req.Role == "" {
		role = domain.RoleUser
	}
	if field, msg := validation.ValidateRole(role); field != "" {
		h.writeError(w, http.StatusBadRequest, msg, "validation_error")
		return
	}

	var teacherID *string
	if req.TeacherID != "" {
		if _, err := h.store.GetTeacher(r.Context(), req.TeacherID); err != nil {
			if isNotFound(err) {
				h.writeError(w, http.StatusNotFound, "teacher not found", "not_found")
				return
			}
			h.logger.Error("failed to get teacher", "error", err)
			h.writeError(w, http.StatusInternalServerError, "failed to register user", "internal_error")
			return
		}
		teacherID = &req.TeacherID
	}

	hash, err := token.HashPassword(req.Password)
	if err != nil {
		h.logger.Error("failed to hash password", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to register user", "internal_error")
		return
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           domain.NewID(domain.PrefixUser),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         role,
		TeacherID:    teacherID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.store.CreateUser(r.Context(), user); err != nil {
		if isDuplicate(err) {
			h.writeError(w, http.StatusBadRequest, "a user with this email already exists", "conflict")
			return
		}
		h.logger.Error("failed to create user", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to register user", "internal_error")
		return
	}

	h.logger.Info("user registered", "user_id", user.ID, "role", user.Role)

	signed, err := h.tokens.Issue(*user)
	if err != nil {
		h.logger.Error("failed to issue token", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to register user", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusCreated, LoginResponse{
		Token: signed,
		User:  userToResponse(user),
	})
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	authCtx := auth.FromContext(r.Context())

	user, err := h.store.GetUser(r.Context(), authCtx.UserID)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusUnauthorized, "account no longer exists", "auth_error")
			return
		}
		h.logger.Error("failed to get user", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to load account", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusOK, userToResponse(user))
}

func userToResponse(u *domain.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.TeacherID != nil {
		resp.TeacherID = *u.TeacherID
	}
	return resp
}
