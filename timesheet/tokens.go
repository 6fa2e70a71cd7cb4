package timesheet

import (
	"regexp"
	"strings"
)

// OCR frequently fuses a punch label to its adjacent time ("IN9:00",
// "17:00OUT"); these repairs reinsert the missing separator so the label and
// the time split into distinct tokens.
var (
	fusedIn  = regexp.MustCompile(`IN(\d)`)
	fusedOut = regexp.MustCompile(`(\d)OUT`)
)

// clockPattern is the shape every usable punch token must have after
// correction: 1-2 digit hour, exactly 2 digit minute.
var clockPattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

// ocrSubstitutions corrects common misreads of digits and the colon separator.
var ocrSubstitutions = map[rune]rune{
	'!': '1', 'I': '1', 'l': '1', '|': '1',
	'O': '0', 'o': '0',
	'%': ':', ';': ':', ',': ':', '.': ':',
}

// CorrectToken repairs one whitespace-delimited token into HH:MM form. It
// applies the substitution table, strips non-digits, and reassembles a clock
// time from the digit count: four or more digits give HH:MM from the first
// four, exactly three digits assume a missing leading zero on the hour. Tokens
// with fewer digits are returned verbatim so the caller's format check can
// discard them.
func CorrectToken(token string) string {
	var sb strings.Builder
	sb.Grow(len(token))
	for _, r := range token {
		if sub, ok := ocrSubstitutions[r]; ok {
			sb.WriteRune(sub)
		} else {
			sb.WriteRune(r)
		}
	}
	var digits []byte
	for _, c := range []byte(sb.String()) {
		if c >= '0' && c <= '9' {
			digits = append(digits, c)
		}
	}
	switch {
	case len(digits) >= 4:
		return string(digits[:2]) + ":" + string(digits[2:4])
	case len(digits) == 3:
		return "0" + string(digits[:1]) + ":" + string(digits[1:3])
	}
	return token
}

// ExtractTimes tokenizes one day cell into corrected clock tokens, in
// left-to-right order. Tokens that still do not look like a clock time after
// correction are dropped.
func ExtractTimes(cellText string) []string {
	entry := fusedIn.ReplaceAllString(cellText, "IN $1")
	entry = fusedOut.ReplaceAllString(entry, "$1 OUT")

	var times []string
	for _, part := range strings.Fields(entry) {
		corrected := CorrectToken(part)
		if clockPattern.MatchString(corrected) {
			times = append(times, corrected)
		}
	}
	return times
}
