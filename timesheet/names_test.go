package timesheet

import "testing"

func TestCleanName(t *testing.T) {
	cases := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{"JOHN", "JOHN", true},
		{"  JOHN SMITH  ", "JOHN SMITH", true},
		{"MARY IN", "MARY", true}, // stray punch label stripped
		{"IN MARY", "MARY", true},
		{"Inez", "Inez", true}, // word-boundary match must not eat names
		{"", "", false},
		{"   ", "", false},
		{"IN", "", false},
		{"DATE", "", false},
		{"date", "", false}, // header tokens are case-insensitive
		{"Day", "", false},
		{"OUT", "", false},
		{"out", "", false},
	}
	for _, tc := range cases {
		got, ok := CleanName(tc.raw)
		if ok != tc.wantOK || got != tc.want {
			t.Fatalf("CleanName(%q) = (%q, %v), want (%q, %v)", tc.raw, got, ok, tc.want, tc.wantOK)
		}
	}
}
