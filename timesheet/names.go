package timesheet

import (
	"regexp"
	"strings"
)

// standaloneIn strips a stray punch label that the table detector sometimes
// folds into the name cell. Case-sensitive on purpose: "Inez" must survive.
var standaloneIn = regexp.MustCompile(`\bIN\b`)

// headerTokens are column headings that mis-segment as data rows.
var headerTokens = map[string]struct{}{
	"DATE": {},
	"DAY":  {},
	"IN":   {},
	"OUT":  {},
}

// CleanName normalizes the employee-name cell and reports whether the row
// holds a real employee. Rows whose cleaned name is empty or a header token
// are label rows and contribute nothing.
func CleanName(raw string) (string, bool) {
	name := strings.TrimSpace(standaloneIn.ReplaceAllString(strings.TrimSpace(raw), ""))
	if name == "" {
		return "", false
	}
	if _, ok := headerTokens[strings.ToUpper(name)]; ok {
		return "", false
	}
	return name, true
}
