package export

import (
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"github.com/abhisek/studyplan/internal/sessions"
	"github.com/abhisek/studyplan/internal/stats"
)

const (
	sessionsSheet = "Sessions"
	subjectsSheet = "Subjects"
)

var sessionHeaders = []string{"Date", "Weekday", "Start", "End", "Minutes", "Subject", "Priority", "Status"}

// XLSX writes a workbook with a row per session and a sheet of completed
// time per subject.
func XLSX(w io.Writer, all []sessions.Session) error {
	if len(all) == 0 {
		return ErrNoSessions
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sessionsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	writeRow(f, sessionsSheet, 1, lo.ToAnySlice(sessionHeaders))
	styleHeader(f, sessionsSheet, len(sessionHeaders), headerStyle)
	f.SetColWidth(sessionsSheet, "A", "A", 12)
	f.SetColWidth(sessionsSheet, "B", "B", 11)
	f.SetColWidth(sessionsSheet, "F", "F", 32)

	for i, s := range all {
		writeRow(f, sessionsSheet, i+2, []any{
			s.DateKey(), s.Date.Weekday().String(), s.Start, s.End,
			s.Duration, s.Subject, string(s.Priority), string(s.Status),
		})
	}

	if _, err := f.NewSheet(subjectsSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	writeRow(f, subjectsSheet, 1, []any{"Subject", "Minutes", "Time"})
	styleHeader(f, subjectsSheet, 3, headerStyle)
	f.SetColWidth(subjectsSheet, "A", "A", 32)
	summary := stats.Compute(all, all[0].Date)
	for i, st := range summary.Subjects {
		writeRow(f, subjectsSheet, i+2, []any{st.Subject, st.Minutes, stats.FormatMinutes(st.Minutes)})
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) {
	for col, v := range values {
		cell, _ := excelize.CoordinatesToCellName(col+1, row)
		f.SetCellValue(sheet, cell, v)
	}
}

func styleHeader(f *excelize.File, sheet string, cols, style int) {
	first, _ := excelize.CoordinatesToCellName(1, 1)
	last, _ := excelize.CoordinatesToCellName(cols, 1)
	f.SetCellStyle(sheet, first, last, style)
}
