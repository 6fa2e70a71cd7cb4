package timesheet

import "math"

// QuarterHours converts elapsed seconds to hours rounded to the nearest
// quarter hour. Halfway values round away from zero (math.Round), so 2250s is
// 0.75h, not 0.5h; the result is always a multiple of 0.25.
func QuarterHours(seconds int) float64 {
	return math.Round(float64(seconds)/3600*4) / 4
}

// topPerformers returns every name tied at the maximum weekly total, in
// record order, excluding the case where the maximum itself is zero: an
// all-zero sheet names no winners.
func topPerformers(records []EmployeeRecord) []string {
	var max float64
	for _, r := range records {
		if r.WeeklyTotal > max {
			max = r.WeeklyTotal
		}
	}
	top := make([]string, 0, 1)
	if max <= 0 {
		return top
	}
	for _, r := range records {
		if r.WeeklyTotal == max {
			top = append(top, r.Name)
		}
	}
	return top
}

// summarize folds employee records into the wire-format summary.
func summarize(month string, records []EmployeeRecord) Summary {
	s := Summary{
		Month:         month,
		TopPerformers: topPerformers(records),
		WeeklyTotals:  make(map[string]float64, len(records)),
		DailyHours:    make(map[string]map[string]float64, len(records)),
		Records:       records,
	}
	for _, r := range records {
		s.WeeklyTotals[r.Name] = r.WeeklyTotal
		daily := make(map[string]float64, len(r.DailyHours))
		for col, hours := range r.DailyHours {
			daily[columnKey(col)] = hours
		}
		s.DailyHours[r.Name] = daily
	}
	return s
}
