package metadata

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// asciiReplacer maps common non-ASCII punctuation to ASCII equivalents
// before the remaining non-ASCII codepoints are stripped.
var asciiReplacer = strings.NewReplacer(
	"\u2013", "-", // en-dash
	"\u2014", "-", // em-dash
	"\u2010", "-", // hyphen
	"\u2011", "-", // non-breaking hyphen
	"\u2012", "-", // figure dash
	"\u2015", "-", // horizontal bar
	"\u00ad", "", // soft hyphen
	"\u00a0", " ", // non-breaking space
	"\u2002", " ", // en space
	"\u2003", " ", // em space
	"\u2009", " ", // thin space
	"\u200a", " ", // hair space
	"\u200b", "", // zero-width space
	"\u202f", " ", // narrow no-break space
	"\u205f", " ", // medium mathematical space
	"\u3000", " ", // ideographic space
)

// CleanToASCII replaces common non-ASCII punctuation with ASCII
// equivalents and drops every remaining non-ASCII codepoint.
func CleanToASCII(s string) string {
	s = asciiReplacer.Replace(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// nonDateSentinels are values that look like a date field but carry no
// date. They pass through normalization untouched.
var nonDateSentinels = map[string]bool{
	"not specified": true,
	"unknown":       true,
	"n/a":           true,
	"none":          true,
	"tbd":           true,
	"undated":       true,
}

// monthNames resolves month names and common abbreviations to their
// canonical full form.
var monthNames = map[string]string{
	"jan": "January", "january": "January",
	"feb": "February", "february": "February",
	"mar": "March", "march": "March",
	"apr": "April", "april": "April",
	"may": "May",
	"jun": "June", "june": "June",
	"jul": "July", "july": "July",
	"aug": "August", "august": "August",
	"sep": "September", "sept": "September", "september": "September",
	"oct": "October", "october": "October",
	"nov": "November", "november": "November",
	"dec": "December", "december": "December",
}

// seasonTable maps season and quarter keywords to canonical forms.
// Order matters: entries are tried first to last.
var seasonTable = []struct {
	keyword   string
	canonical string
}{
	{"spring", "Spring"},
	{"summer", "Summer"},
	{"fall", "Fall"},
	{"autumn", "Fall"},
	{"winter", "Winter"},
	{"q1", "Q1"},
	{"q2", "Q2"},
	{"q3", "Q3"},
	{"q4", "Q4"},
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	yearRe       = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	monthRangeRe = regexp.MustCompile(`([A-Za-z]+)\s*[-/]\s*([A-Za-z]+)`)
	monthYearRe  = regexp.MustCompile(`([A-Za-z]+)\s*,?\s*(\d{4})`)
	bareYearRe   = regexp.MustCompile(`^\s*(19|20)\d{2}\s*$`)

	// "Month Day, Year" then "Day Month Year".
	fullDateRes = []*regexp.Regexp{
		regexp.MustCompile(`([A-Za-z]+)\s+(\d{1,2}),?\s*(\d{4})`),
		regexp.MustCompile(`(\d{1,2})\s+([A-Za-z]+)\s*,?\s*(\d{4})`),
	}

	// Month-first then month-second numeric forms.
	numericDateRes = []struct {
		re         *regexp.Regexp
		monthGroup int
	}{
		{regexp.MustCompile(`(\d{1,2})[/-](\d{4})`), 1},
		{regexp.MustCompile(`(\d{4})[/-](\d{1,2})`), 2},
	}
)

// dateRule is one step of the normalization cascade. It receives the
// cleaned input and the anchoring year, and reports whether it produced
// a canonical form.
type dateRule func(cleaned, year string) (string, bool)

// dateRules is the prioritized rule list. Rules are evaluated in order
// and the first success wins; precedence is significant.
var dateRules = []dateRule{
	normalizeMonthRange,
	normalizeSeasonQuarter,
	normalizeMonthYear,
	normalizeFullDate,
	normalizeNumeric,
	normalizeBareYear,
}

// Normalize canonicalizes a free-text publication date to one of
// "Month Year", "Month1-Month2 Year", "Season Year", or "Year". Input
// that matches no rule is returned cleaned but otherwise unchanged,
// including strings that contain a year the rules cannot anchor to a
// month or season.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	cleaned := strings.TrimSpace(CleanToASCII(raw))
	cleaned = whitespaceRe.ReplaceAllString(cleaned, " ")

	if cleaned == "" || nonDateSentinels[strings.ToLower(cleaned)] {
		return cleaned
	}

	// A four-digit year is the anchor for every rule. Without one there
	// is nothing to normalize against.
	year := yearRe.FindString(cleaned)
	if year == "" {
		return cleaned
	}

	for _, rule := range dateRules {
		if out, ok := rule(cleaned, year); ok {
			return out
		}
	}
	return cleaned
}

// normalizeMonthRange handles forms like "March-April 2023" and
// "Jan/Feb 2020".
func normalizeMonthRange(cleaned, year string) (string, bool) {
	m := monthRangeRe.FindStringSubmatch(cleaned)
	if m == nil {
		return "", false
	}
	first, ok1 := monthNames[strings.ToLower(m[1])]
	second, ok2 := monthNames[strings.ToLower(m[2])]
	if !ok1 || !ok2 {
		return "", false
	}
	return first + "-" + second + " " + year, true
}

// normalizeSeasonQuarter handles forms like "Spring 2023" and "Q1 2023".
// Autumn canonicalizes to Fall.
func normalizeSeasonQuarter(cleaned, year string) (string, bool) {
	lower := strings.ToLower(cleaned)
	for _, s := range seasonTable {
		if strings.Contains(lower, s.keyword) {
			return s.canonical + " " + year, true
		}
	}
	return "", false
}

// normalizeMonthYear handles forms like "May 2015" and "Jan, 2020".
func normalizeMonthYear(cleaned, year string) (string, bool) {
	m := monthYearRe.FindStringSubmatch(cleaned)
	if m == nil {
		return "", false
	}
	month, ok := monthNames[strings.ToLower(m[1])]
	if !ok {
		return "", false
	}
	return month + " " + year, true
}

// normalizeFullDate handles "May 1, 2015" and "1 May 2015". The day
// component is discarded.
func normalizeFullDate(cleaned, year string) (string, bool) {
	for _, re := range fullDateRes {
		m := re.FindStringSubmatch(cleaned)
		if m == nil {
			continue
		}
		for _, g := range m[1:] {
			if month, ok := monthNames[strings.ToLower(g)]; ok {
				return month + " " + year, true
			}
		}
	}
	return "", false
}

// normalizeNumeric handles "05/2015", "5-2015", "2015/05", "2015-05".
func normalizeNumeric(cleaned, year string) (string, bool) {
	for _, p := range numericDateRes {
		m := p.re.FindStringSubmatch(cleaned)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[p.monthGroup])
		if err != nil || n < 1 || n > 12 {
			continue
		}
		return time.Month(n).String() + " " + year, true
	}
	return "", false
}

// normalizeBareYear emits the year alone, but only when the entire
// cleaned string is the year.
func normalizeBareYear(cleaned, year string) (string, bool) {
	if bareYearRe.MatchString(cleaned) {
		return year, true
	}
	return "", false
}
