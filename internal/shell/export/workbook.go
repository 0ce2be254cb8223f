// Package export builds xlsx workbooks for report downloads.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/hafedEfheij/school-management-system-sub001/internal/core/domain"
)

// SheetSpec describes one sheet: a title, a header row, and data rows.
type SheetSpec struct {
	Title  string
	Header []string
	Rows   [][]string
}

// NewWorkbook renders the given sheets into a workbook with a bold,
// filterable header row and heuristic column widths.
func NewWorkbook(sheets []SheetSpec) (*excelize.File, error) {
	f := excelize.NewFile()

	bold, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	for i, s := range sheets {
		name := s.Title
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return nil, fmt.Errorf("new sheet: %w", err)
			}
		}

		for col, h := range s.Header {
			cell := fmt.Sprintf("%s1", colName(col+1))
			if err := f.SetCellStr(name, cell, h); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
		end := colName(len(s.Header)) + "1"
		_ = f.SetCellStyle(name, "A1", end, bold)
		_ = f.AutoFilter(name, "A1:"+end, nil)

		for r, row := range s.Rows {
			for c, val := range row {
				cell := fmt.Sprintf("%s%d", colName(c+1), r+2)
				if err := f.SetCellStr(name, cell, val); err != nil {
					return nil, fmt.Errorf("set cell %s: %w", cell, err)
				}
			}
		}

		// Width by the longest value among the header and the first rows.
		for c := 1; c <= len(s.Header); c++ {
			longest := len(s.Header[c-1])
			for r := 0; r < min(50, len(s.Rows)); r++ {
				if l := len(s.Rows[r][c-1]); l > longest {
					longest = l
				}
			}
			w := float64(longest) * 0.9
			if w < 12 {
				w = 12
			}
			if w > 40 {
				w = 40
			}
			_ = f.SetColWidth(name, colName(c), colName(c), w)
		}
	}
	return f, nil
}

// StudentsSheet lays out a student roster, one row per student.
func StudentsSheet(students []domain.Student) SheetSpec {
	rows := make([][]string, 0, len(students))
	for _, s := range students {
		rows = append(rows, []string{
			s.ID,
			s.FirstName,
			s.LastName,
			s.Email,
			s.Phone,
			s.GradeLevel,
			s.DateOfBirth,
			s.CreatedAt.Format("2006-01-02"),
		})
	}
	return SheetSpec{
		Title:  "Students",
		Header: []string{"ID", "First Name", "Last Name", "Email", "Phone", "Grade Level", "Date of Birth", "Registered"},
		Rows:   rows,
	}
}

// colName converts a 1-based column number to its letter form (1 -> A, 27 -> AA).
func colName(n int) string {
	s := ""
	for n > 0 {
		n--
		s = string(rune('A'+(n%26))) + s
		n /= 26
	}
	return s
}
