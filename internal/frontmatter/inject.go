// Package frontmatter injects extracted metadata into a document's
// YAML front matter and validates the result. The write path works on
// the fixed `---` delimiter pair directly; it is not a YAML parser.
package frontmatter

import (
	"regexp"
	"strings"

	"github.com/raplab/obsidian-kit/internal/metadata"
)

// delimiterRe matches a front-matter block at the start of a document.
var delimiterRe = regexp.MustCompile(`(?s)^---\n(.*?)\n---`)

// Inject merges the extracted metadata into the document's front
// matter. The new fields (Title, Authors, Book, Date, in that order)
// are placed before any existing keys inside the same delimiter pair;
// existing key-value lines are preserved verbatim and unreordered. If
// the document has no front matter, a new block is prepended.
//
// Inject is append-only: it never deduplicates. Running it on already
// injected content yields a second copy of the four keys, and readers
// of the output must assume last-declared-wins.
func Inject(doc string, meta metadata.Metadata) string {
	fields := buildFields(meta)

	loc := delimiterRe.FindStringSubmatchIndex(doc)
	if loc == nil {
		return "---\n" + fields + "\n---\n" + doc
	}

	existing := strings.TrimSpace(doc[loc[2]:loc[3]])
	return "---\n" + fields + "\n" + existing + "\n---" + doc[loc[1]:]
}

// buildFields renders the new front-matter block: a quoted title, the
// authors as an indented sequence of quoted wiki-links, the book as a
// single wiki-link, and the normalized date.
func buildFields(meta metadata.Metadata) string {
	lines := make([]string, 0, len(meta.Authors))
	for _, author := range meta.Authors {
		lines = append(lines, `  - "[[`+author+`]]"`)
	}

	return `Title: "` + meta.Title + `"` + "\n" +
		"Authors:\n" + strings.Join(lines, "\n") + "\n" +
		`Book: "[[` + meta.Book + `]]"` + "\n" +
		`Date: "` + meta.PublicationDate + `"`
}
