package timesheet

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/delamyth/timecard/analyze"
)

// UnknownMonth is reported when no date pattern is found in the document.
const UnknownMonth = "Unknown"

// datePattern matches D/M/YY with 1-2 digit day and month and optional spaces
// around the slashes, the format handwritten on the sheets this pipeline was
// built for. This is a label heuristic, not a calendar parser: the day is not
// range-checked and the century is fixed to 2000.
var datePattern = regexp.MustCompile(`(\d{1,2})\s*/\s*(\d{1,2})\s*/\s*(\d{2})`)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// ExtractMonth scans every block's text in list order and returns the
// "Month 20YY" label for the first match with a valid month, or UnknownMonth.
func ExtractMonth(blocks []analyze.Block) string {
	for _, b := range blocks {
		if b.Text == "" {
			continue
		}
		m := datePattern.FindStringSubmatch(b.Text)
		if m == nil {
			continue
		}
		month, err := strconv.Atoi(m[2])
		if err != nil || month < 1 || month > 12 {
			continue
		}
		return fmt.Sprintf("%s 20%s", monthNames[month-1], m[3])
	}
	return UnknownMonth
}
