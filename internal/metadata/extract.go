// Package metadata extracts bibliographic metadata from markdown
// document bodies and normalizes free-text publication dates.
package metadata

import (
	"regexp"
	"strings"
)

// Metadata holds the fields extracted from a markdown document body.
// Empty fields mean the corresponding line was absent in the source.
type Metadata struct {
	Title           string
	Authors         []string
	Book            string
	PublicationDate string
}

var (
	titleRe   = regexp.MustCompile(`(?m)^#\s+(.+)$`)
	authorsRe = regexp.MustCompile(`(?m)^\*\*Author\(s\):\*\*\s*(.+)$`)
	bookRe    = regexp.MustCompile(`(?m)^\*\*Publication:\*\*\s*(.+)$`)
	dateRe    = regexp.MustCompile(`(?m)^\*\*Date:\*\*\s*(.+)$`)

	// Authors split on comma, semicolon, ampersand, or the word "and".
	authorSplitRe = regexp.MustCompile(`[,;&]|\s+and\s+`)
)

// Extract parses a markdown body for the first H1 title, Author(s),
// Publication, and Date lines. Each field is independent; absence of
// any one of them is not an error. The date is run through Normalize.
func Extract(body string) Metadata {
	meta := Metadata{
		Title: firstMatch(titleRe, body),
		Book:  firstMatch(bookRe, body),
	}

	if raw := firstMatch(authorsRe, body); raw != "" {
		meta.Authors = splitAuthors(raw)
	}

	if raw := firstMatch(dateRe, body); raw != "" {
		meta.PublicationDate = Normalize(raw)
	}

	return meta
}

func firstMatch(re *regexp.Regexp, body string) string {
	m := re.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// splitAuthors splits a raw author line into individual names,
// preserving left-to-right order and dropping empty tokens.
func splitAuthors(raw string) []string {
	var authors []string
	for _, tok := range authorSplitRe.Split(raw, -1) {
		if tok = strings.TrimSpace(tok); tok != "" {
			authors = append(authors, tok)
		}
	}
	return authors
}
