// Package api provides HTTP handlers for the school management API.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hafedEfheij/school-management-system-sub001/internal/core/auth"
	"github.com/hafedEfheij/school-management-system-sub001/internal/core/domain"
	"github.com/hafedEfheij/school-management-system-sub001/internal/shell/api/middleware"
	"github.com/hafedEfheij/school-management-system-sub001/internal/shell/store"
	"github.com/hafedEfheij/school-management-system-sub001/internal/shell/token"
)

// =============================================================================
// Handler
// =============================================================================

// Handler provides HTTP handlers for the API.
type Handler struct {
	store   store.Store
	tokens  *token.Service
	logger  *slog.Logger
	metrics *Metrics
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, tokens *token.Service, l *slog.Logger) *Handler {
	if l == nil {
		l = slog.Default()
	}
	return &Handler{
		store:   s,
		tokens:  tokens,
		logger:  l,
		metrics: NewMetrics(),
	}
}

// Routes returns the router with all routes configured.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(h.jsonContentType)
	r.Use(h.requestIDHeader)
	r.Use(h.metrics.Instrument)

	// Health endpoints
	r.Get("/health", h.handleHealth)
	r.Get("/ready", h.handleReady)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	authMW := middleware.NewAuthMiddleware(middleware.AuthConfig{
		Verifier: h.tokens,
		Logger:   h.logger,
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(authMW.Handler)

		// Auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.handleLogin)
			r.With(middleware.RequireAuth).Get("/me", h.handleMe)
			r.With(middleware.RequireRole(domain.RoleAdmin)).Post("/register", h.handleRegister)
		})

		// Record routes require a valid token
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Route("/teachers", func(r chi.Router) {
				r.Post("/", h.handleCreateTeacher)
				r.Get("/", h.handleListTeachers)
				r.Get("/{id}", h.handleGetTeacher)
				r.Put("/{id}", h.handleUpdateTeacher)
				r.Delete("/{id}", h.handleDeleteTeacher)
			})

			r.Route("/students", func(r chi.Router) {
				r.Post("/", h.handleCreateStudent)
				r.Get("/", h.handleListStudents)
				r.Get("/{id}", h.handleGetStudent)
				r.Put("/{id}", h.handleUpdateStudent)
				r.Delete("/{id}", h.handleDeleteStudent)
			})

			r.Route("/courses", func(r chi.Router) {
				r.Post("/", h.handleCreateCourse)
				r.Get("/", h.handleListCourses)
				r.Get("/{id}", h.handleGetCourse)
				r.Put("/{id}", h.handleUpdateCourse)
				r.Delete("/{id}", h.handleDeleteCourse)
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Post("/", h.handleCreateSchedule)
				r.Get("/", h.handleListSchedules)
				r.Get("/{id}", h.handleGetSchedule)
				r.Put("/{id}", h.handleUpdateSchedule)
				r.Delete("/{id}", h.handleDeleteSchedule)
			})

			r.Route("/enrollments", func(r chi.Router) {
				r.Post("/", h.handleCreateEnrollment)
				r.Get("/", h.handleListEnrollments)
				r.Get("/{id}", h.handleGetEnrollment)
				r.Delete("/{id}", h.handleDeleteEnrollment)
			})

			r.Route("/grades", func(r chi.Router) {
				r.Post("/", h.handleCreateGrade)
				r.Get("/", h.handleListGrades)
				r.Get("/{id}", h.handleGetGrade)
				r.Put("/{id}", h.handleUpdateGrade)
				r.Delete("/{id}", h.handleDeleteGrade)
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/", h.handleCreateAttendance)
				r.Get("/", h.handleListAttendance)
				r.Get("/{id}", h.handleGetAttendance)
				r.Put("/{id}", h.handleUpdateAttendance)
				r.Delete("/{id}", h.handleDeleteAttendance)
			})

			r.Get("/export/students.xlsx", h.handleExportStudents)
		})
	})

	return r
}

// =============================================================================
// Middleware
// =============================================================================

// jsonContentType sets Content-Type header to application/json.
func (h *Handler) jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// requestIDHeader copies the request ID to the response header.
func (h *Handler) requestIDHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if reqID := chimw.GetReqID(r.Context()); reqID != "" {
			w.Header().Set("X-Request-ID", reqID)
		}
		next.ServeHTTP(w, r)
	})
}

// =============================================================================
// Health Handlers
// =============================================================================

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string)

	if _, err := h.store.ListTeachers(r.Context(), store.ListOptions{Limit: 1}); err != nil {
		checks["database"] = "failed"
		h.writeJSON(w, http.StatusServiceUnavailable, ReadyResponse{
			Status: "not_ready",
			Checks: checks,
		})
		return
	}
	checks["database"] = "ok"

	h.writeJSON(w, http.StatusOK, ReadyResponse{
		Status: "ready",
		Checks: checks,
	})
}

// =============================================================================
// Helpers
// =============================================================================

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode JSON", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message, code string) {
	h.writeJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// requireManage rejects the request unless the caller may mutate records.
// Returns false after writing the error response.
func (h *Handler) requireManage(w http.ResponseWriter, r *http.Request) bool {
	if !auth.CanManageRecords(auth.FromContext(r.Context())) {
		h.writeError(w, http.StatusForbidden, "insufficient permissions", "auth_error")
		return false
	}
	return true
}

// parseListOptions reads limit/offset query parameters.
func parseListOptions(r *http.Request) store.ListOptions {
	opts := store.DefaultListOptions()
	if limit := r.URL.Query().Get("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil {
			opts.Limit = l
		}
	}
	if offset := r.URL.Query().Get("offset"); offset != "" {
		if o, err := strconv.Atoi(offset); err == nil {
			opts.Offset = o
		}
	}
	return opts
}

// isNotFound checks if an error is a not found error.
func isNotFound(err error) bool {
	var storeErr *store.StoreError
	if errors.As(err, &storeErr) {
		return errors.Is(storeErr.Unwrap(), store.ErrNotFound)
	}
	return false
}

// isDuplicate checks if an error is a uniqueness violation.
func isDuplicate(err error) bool {
	var storeErr *store.StoreError
	if errors.As(err, &storeErr) {
		inner := storeErr.Unwrap()
		return errors.Is(inner, store.ErrDuplicate) || errors.Is(inner, store.ErrDuplicateID)
	}
	return false
}

// isForeignKey checks if an error is a foreign key violation.
func isForeignKey(err error) bool {
	var storeErr *store.StoreError
	if errors.As(err, &storeErr) {
		return errors.Is(storeErr.Unwrap(), store.ErrForeignKey)
	}
	return false
}
