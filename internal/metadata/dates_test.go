package metadata

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		// Month + year.
		{"May 2015", "May 2015"},
		{"may 2015", "May 2015"},
		{"Jan 2020", "January 2020"},
		{"Sept 2019", "September 2019"},
		{"Dec, 1999", "December 1999"},

		// Month ranges.
		{"Jan-Feb 2020", "January-February 2020"},
		{"March-April 2023", "March-April 2023"},
		{"Mar/Apr 2023", "March-April 2023"},

		// Seasons and quarters.
		{"Spring 2023", "Spring 2023"},
		{"autumn 2021", "Fall 2021"},
		{"Winter 1999", "Winter 1999"},
		{"Q1 2023", "Q1 2023"},
		{"q3 2020", "Q3 2020"},

		// Full dates: the day is discarded.
		{"May 1, 2015", "May 2015"},
		{"May 12, 2015", "May 2015"},
		{"1 May 2015", "May 2015"},
		{"published May 12, 2015", "May 2015"},

		// Numeric forms.
		{"05/2015", "May 2015"},
		{"5/2015", "May 2015"},
		{"12-2015", "December 2015"},
		{"2015-05", "May 2015"},
		{"2015/12", "December 2015"},

		// Bare year, only when the whole string is the year.
		{"2023", "2023"},
		{"1995", "1995"},

		// Non-date sentinels pass through as cleaned.
		{"not specified", "not specified"},
		{"Unknown", "Unknown"},
		{"n/a", "n/a"},
		{"TBD", "TBD"},

		// No recognizable pattern: cleaned input returned unchanged.
		{"", ""},
		{"circa 2015 sometime", "circa 2015 sometime"},
		{"sometime in the nineties", "sometime in the nineties"},
		{"vol. 3", "vol. 3"},

		// Unicode cleanup feeds the same cascade.
		{"May\u00a02015", "May 2015"},
		{"Jan–Feb 2020", "January-February 2020"},
		{"  May   2015  ", "May 2015"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeRulePrecedence(t *testing.T) {
	// A month range beats the month+year rule even though both match.
	if got := Normalize("March-April 2023"); got != "March-April 2023" {
		t.Errorf("range should win over month+year, got %q", got)
	}

	// A season beats the month+year rule.
	if got := Normalize("Spring issue, May 2023"); got != "Spring 2023" {
		t.Errorf("season should win over month+year, got %q", got)
	}

	// A year anchors everything: without one no rule fires.
	if got := Normalize("Spring issue"); got != "Spring issue" {
		t.Errorf("season without year should pass through, got %q", got)
	}
}

func TestCleanToASCII(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"en–dash", "en-dash"},
		{"em—dash", "em-dash"},
		{"soft\u00adhyphen", "softhyphen"},
		{"zero\u200bwidth", "zerowidth"},
		{"non\u00a0breaking", "non breaking"},
		{"café", "caf"},
	}

	for _, tt := range tests {
		if got := CleanToASCII(tt.in); got != tt.want {
			t.Errorf("CleanToASCII(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
