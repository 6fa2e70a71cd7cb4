package timesheet

import (
	"reflect"
	"testing"
)

func TestCorrectTokenIdempotentOnClockTimes(t *testing.T) {
	for _, tok := range []string{"09:00", "17:45", "23:59"} {
		if got := CorrectToken(tok); got != tok {
			t.Fatalf("CorrectToken(%q) = %q, want unchanged", tok, got)
		}
	}
}

func TestCorrectTokenSubstitutions(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"9.00", "09:00"},   // dot misread for colon
		{"9;00", "09:00"},   // semicolon misread
		{"9%00", "09:00"},   // percent misread
		{"9,00", "09:00"},   // comma misread
		{"!7:00", "17:00"},  // bang misread for 1
		{"I7:00", "17:00"},  // capital i misread for 1
		{"l7:00", "17:00"},  // lowercase L misread for 1
		{"|7:00", "17:00"},  // pipe misread for 1
		{"1O:30", "10:30"},  // capital o misread for 0
		{"1o:30", "10:30"},  // lowercase o misread for 0
	}
	for _, tc := range cases {
		if got := CorrectToken(tc.in); got != tc.want {
			t.Fatalf("CorrectToken(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCorrectTokenDigitCountPolicy(t *testing.T) {
	// Four or more digits: HH:MM from the first four, extras ignored.
	if got := CorrectToken("17005"); got != "17:00" {
		t.Fatalf("five digits: got %q", got)
	}
	if got := CorrectToken("1700"); got != "17:00" {
		t.Fatalf("four digits: got %q", got)
	}
	// Exactly three digits: assume a missing leading zero on the hour.
	if got := CorrectToken("900"); got != "09:00" {
		t.Fatalf("three digits: got %q", got)
	}
	// Fewer than three digits: verbatim, and it must fail the clock check.
	if got := CorrectToken("ab1"); got != "ab1" {
		t.Fatalf("short token should be verbatim: got %q", got)
	}
	if clockPattern.MatchString(CorrectToken("ab1")) {
		t.Fatalf("short token must not match the clock pattern")
	}
}

func TestExtractTimesFusedLabels(t *testing.T) {
	// "IN" fused to a following digit and "OUT" fused to a preceding digit
	// must split before tokenization.
	got := ExtractTimes("IN9:00 17:00OUT")
	if !reflect.DeepEqual(got, []string{"09:00", "17:00"}) {
		t.Fatalf("unexpected times: %v", got)
	}
}

func TestExtractTimesDropsNonClockTokens(t *testing.T) {
	got := ExtractTimes("IN 900 lunch 1700 OUT")
	if !reflect.DeepEqual(got, []string{"09:00", "17:00"}) {
		t.Fatalf("unexpected times: %v", got)
	}
}

func TestExtractTimesEmptyCell(t *testing.T) {
	if got := ExtractTimes(""); got != nil {
		t.Fatalf("empty cell should yield no times, got %v", got)
	}
	if got := ExtractTimes("  "); got != nil {
		t.Fatalf("blank cell should yield no times, got %v", got)
	}
}

func TestExtractTimesPreservesOrder(t *testing.T) {
	got := ExtractTimes("900 1230 1300 1700")
	want := []string{"09:00", "12:30", "13:00", "17:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order not preserved: %v", got)
	}
}
