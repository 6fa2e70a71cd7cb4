// Package export renders a timesheet summary to spreadsheet form for payroll
// handoff.
package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/delamyth/timecard/timesheet"
)

const sheetName = "Summary"

// Workbook builds an .xlsx workbook for the summary: the reporting month, a
// header row, one row per employee in canonical order (nonzero totals first,
// then zero totals, both in row-encounter order), daily hours per detected day
// column, the weekly total, and a top-performer marker.
func Workbook(s timesheet.Summary) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetCellValue(sheetName, "A1", "Month"); err != nil {
		return nil, fmt.Errorf("write month label: %w", err)
	}
	if err := f.SetCellValue(sheetName, "B1", s.Month); err != nil {
		return nil, fmt.Errorf("write month: %w", err)
	}

	dayCols := dayColumns(s.Records)
	headers := []string{"Employee"}
	for _, d := range dayCols {
		headers = append(headers, fmt.Sprintf("Day %d", d))
	}
	headers = append(headers, "Weekly Total", "Top Performer")
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	byName := make(map[string]timesheet.EmployeeRecord, len(s.Records))
	for _, r := range s.Records {
		byName[r.Name] = r
	}
	top := make(map[string]bool, len(s.TopPerformers))
	for _, name := range s.TopPerformers {
		top[name] = true
	}

	for i, name := range s.Names() {
		rec := byName[name]
		row := i + 3
		values := []interface{}{name}
		for _, d := range dayCols {
			values = append(values, rec.DailyHours[d])
		}
		values = append(values, rec.WeeklyTotal)
		if top[name] {
			values = append(values, "yes")
		} else {
			values = append(values, "")
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("write %s row: %w", name, err)
			}
		}
	}
	return f, nil
}

// WriteXLSX renders the summary workbook to w.
func WriteXLSX(w io.Writer, s timesheet.Summary) error {
	f, err := Workbook(s)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// dayColumns returns the union of day columns across all records, ascending.
func dayColumns(records []timesheet.EmployeeRecord) []int {
	seen := make(map[int]struct{})
	for _, r := range records {
		for col := range r.DailyHours {
			seen[col] = struct{}{}
		}
	}
	cols := make([]int, 0, len(seen))
	for col := range seen {
		cols = append(cols, col)
	}
	sort.Ints(cols)
	return cols
}
