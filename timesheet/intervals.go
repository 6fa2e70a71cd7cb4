package timesheet

import (
	"fmt"
	"time"
)

// clockLayout parses bare 24-hour clock times; no AM/PM marker is available
// on typical punch clocks.
const clockLayout = "15:04"

// Interval is one punch-in/punch-out segment with normalized clock times.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Seconds returns the elapsed seconds of the interval. When the raw end time
// is at or before the start, the punch is assumed to cross a 12-hour meridiem
// boundary lost by OCR and 12 hours are added before differencing. Punches
// whose times are more than 12 hours apart still difference negative; the
// heuristic cannot distinguish such a punch error from a legitimate shift.
func (iv Interval) Seconds() int {
	end := iv.End
	if !end.After(iv.Start) {
		end = end.Add(12 * time.Hour)
	}
	return int(end.Sub(iv.Start) / time.Second)
}

// PairIntervals consumes clock tokens two at a time in order. An unpaired
// trailing token is dropped. Tokens that fail to parse as valid times-of-day
// skip the pair via the onErr callback; onErr returning false aborts pairing.
func PairIntervals(times []string, onErr func(err error, fragment string) bool) ([]Interval, bool) {
	var intervals []Interval
	for i := 0; i+1 < len(times); i += 2 {
		start, err := time.Parse(clockLayout, times[i])
		if err != nil {
			if !onErr(fmt.Errorf("parse start: %w", err), times[i]) {
				return intervals, false
			}
			continue
		}
		end, err := time.Parse(clockLayout, times[i+1])
		if err != nil {
			if !onErr(fmt.Errorf("parse end: %w", err), times[i+1]) {
				return intervals, false
			}
			continue
		}
		intervals = append(intervals, Interval{Start: start, End: end})
	}
	return intervals, true
}
