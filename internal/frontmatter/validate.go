package frontmatter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/raplab/obsidian-kit/internal/metadata"
)

// Result holds the outcome of validating an injected document.
// Warnings are informational and never affect IsValid.
type Result struct {
	IsValid  bool
	Errors   []string
	Warnings []string
}

var (
	titleLineRe = regexp.MustCompile(`(?m)^Title:\s*"(.+?)"`)
	bookLineRe  = regexp.MustCompile(`(?m)^Book:\s*(.+?)$`)
	dateLineRe  = regexp.MustCompile(`(?m)^Date:\s*"(.+?)"`)
)

// Validate re-parses an injected document independently of Inject and
// checks that the expected metadata landed in the front matter. A
// missing delimiter pair short-circuits immediately; every other check
// collects its error and continues. Date mismatches are reported as
// warnings only, since normalization is best-effort.
func Validate(doc string, meta metadata.Metadata) Result {
	var errs, warnings []string

	m := delimiterRe.FindStringSubmatch(doc)
	if m == nil {
		errs = append(errs, "front matter delimiters (---) not found at start of file")
		return Result{IsValid: false, Errors: errs}
	}
	block := m[1]

	if tm := titleLineRe.FindStringSubmatch(block); tm == nil {
		errs = append(errs, "Title field not found in front matter")
	} else if tm[1] != meta.Title {
		errs = append(errs, fmt.Sprintf("Title mismatch: expected %q, found %q", meta.Title, tm[1]))
	}

	if !strings.Contains(block, "Authors:") {
		errs = append(errs, "Authors field not found in front matter")
	} else {
		for _, author := range meta.Authors {
			expected := `"[[` + author + `]]"`
			if !strings.Contains(block, expected) {
				errs = append(errs, fmt.Sprintf("author %q not found in expected format %s", author, expected))
			}
		}
	}

	expectedBook := `Book: "[[` + meta.Book + `]]"`
	if !strings.Contains(block, expectedBook) {
		if bookLineRe.FindStringSubmatch(block) == nil {
			errs = append(errs, "Book field not found in front matter")
		} else {
			errs = append(errs, fmt.Sprintf("Book field format incorrect: expected %q", expectedBook))
		}
	}

	if dm := dateLineRe.FindStringSubmatch(block); dm == nil {
		errs = append(errs, "Date field not found in front matter")
	} else if dm[1] != meta.PublicationDate {
		warnings = append(warnings, fmt.Sprintf("Date value %q differs from expected (normalized from original)", dm[1]))
	}

	if meta.Title == "" {
		warnings = append(warnings, "Title is empty - could not extract from markdown")
	}
	if len(meta.Authors) == 0 {
		warnings = append(warnings, "no authors found - could not extract from markdown")
	}
	if meta.Book == "" {
		warnings = append(warnings, "Book/Publication is empty - could not extract from markdown")
	}
	if meta.PublicationDate == "" {
		warnings = append(warnings, "Date is empty - could not extract from markdown")
	}

	return Result{IsValid: len(errs) == 0, Errors: errs, Warnings: warnings}
}
