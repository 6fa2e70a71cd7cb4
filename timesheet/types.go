package timesheet

import "strconv"

// EmployeeRecord holds one employee's interpreted hours, in row order.
type EmployeeRecord struct {
	// Name is the cleaned employee name from column 1.
	Name string
	// DailyHours maps table column (one column per calendar day) to worked
	// hours at quarter-hour granularity.
	DailyHours map[int]float64
	// WeeklyTotal is the sum of DailyHours.
	WeeklyTotal float64
}

// Summary is the structured result for one timesheet document.
type Summary struct {
	// Month is the human-readable reporting month ("November 2023"), or
	// "Unknown" when no date pattern was found.
	Month string `json:"month"`
	// TopPerformers lists every employee tied at the maximum positive weekly
	// total, in row order. Empty when all totals are zero.
	TopPerformers []string `json:"top_performers"`
	// WeeklyTotals maps employee name to weekly hours.
	WeeklyTotals map[string]float64 `json:"weekly_totals"`
	// DailyHours maps employee name to column (as a string) to daily hours.
	DailyHours map[string]map[string]float64 `json:"daily_hours"`

	// Records carries the same data in row-encounter order for consumers that
	// need a stable ordering; it is not part of the wire format.
	Records []EmployeeRecord `json:"-"`
}

// Names returns employee names in the canonical order: employees with nonzero
// weekly totals in row order, followed by employees with zero totals in row
// order.
func (s Summary) Names() []string {
	names := make([]string, 0, len(s.Records))
	for _, r := range s.Records {
		if r.WeeklyTotal != 0 {
			names = append(names, r.Name)
		}
	}
	for _, r := range s.Records {
		if r.WeeklyTotal == 0 {
			names = append(names, r.Name)
		}
	}
	return names
}

func columnKey(col int) string {
	return strconv.Itoa(col)
}
