package frontmatter

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// Inspect parses a document's existing front matter into a key-value
// map for display purposes. It returns the parsed fields, the document
// body without the front-matter block, and an error if the block is
// present but malformed. A document without front matter yields an
// empty map.
//
// Unlike the injection/validation path, which works on the raw
// delimiter block, this is a real YAML parse and is read-only.
func Inspect(doc string) (map[string]any, string, error) {
	fields := map[string]any{}

	body, err := frontmatter.Parse(bytes.NewReader([]byte(doc)), &fields)
	if err != nil {
		return nil, "", fmt.Errorf("parsing front matter: %w", err)
	}

	return fields, string(body), nil
}

// Block returns the raw front-matter block of a document, including
// delimiters, or "" if the document has none.
func Block(doc string) string {
	loc := delimiterRe.FindStringIndex(doc)
	if loc == nil {
		return ""
	}
	return doc[loc[0]:loc[1]]
}
