package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/hafedEfheij/school-management-system-sub001/internal/core/auth"
	"github.com/hafedEfheij/school-management-system-sub001/internal/core/domain"
	"github.com/hafedEfheij/school-management-system-sub001/internal/shell/export"
	"github.com/hafedEfheij/school-management-system-sub001/internal/shell/store"
)

// =============================================================================
// Export Handlers
// =============================================================================

// exportPageSize bounds each roster query; pages are walked until exhausted.
const exportPageSize = 500

func (h *Handler) handleExportStudents(w http.ResponseWriter, r *http.Request) {
	if !auth.CanExportReports(auth.FromContext(r.Context())) {
		h.writeError(w, http.StatusForbidden, "insufficient permissions", "auth_error")
		return
	}

	opts := store.ListOptions{Limit: exportPageSize}
	var students []domain.Student
	for {
		page, err := h.store.ListStudents(r.Context(), store.StudentFilter{}, opts)
		if err != nil {
			h.logger.Error("failed to list students for export", "error", err)
			h.writeError(w, http.StatusInternalServerError, "failed to export students", "internal_error")
			return
		}
		students = append(students, page...)
		if len(page) < exportPageSize {
			break
		}
		opts.Offset += exportPageSize
	}

	f, err := export.NewWorkbook([]export.SheetSpec{export.StudentsSheet(students)})
	if err != nil {
		h.logger.Error("failed to build workbook", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to export students", "internal_error")
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("students_%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	if _, err := f.WriteTo(w); err != nil {
		h.logger.Error("failed to write workbook", "error", err)
	}
}
