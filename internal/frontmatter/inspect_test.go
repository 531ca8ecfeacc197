package frontmatter

import (
	"strings"
	"testing"
)

func TestInspectInjectedOutput(t *testing.T) {
	out := Inject("# My Title\n\nBody.\n", testMeta)

	fields, body, err := Inspect(out)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}

	if fields["Title"] != "My Title" {
		t.Errorf("Title = %v", fields["Title"])
	}
	if fields["Date"] != "March 2020" {
		t.Errorf("Date = %v", fields["Date"])
	}
	authors, ok := fields["Authors"].([]any)
	if !ok || len(authors) != 2 {
		t.Fatalf("Authors = %v", fields["Authors"])
	}
	if authors[0] != "[[A. One]]" {
		t.Errorf("Authors[0] = %v", authors[0])
	}

	if !strings.Contains(body, "# My Title") {
		t.Errorf("body lost: %q", body)
	}
}

func TestInspectNoFrontmatter(t *testing.T) {
	fields, body, err := Inspect("just a body\n")
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if len(fields) != 0 {
		t.Errorf("fields = %v, want empty", fields)
	}
	if body != "just a body\n" {
		t.Errorf("body = %q", body)
	}
}

func TestBlock(t *testing.T) {
	out := Inject("Body.\n", testMeta)
	block := Block(out)

	if !strings.HasPrefix(block, "---\n") || !strings.HasSuffix(block, "\n---") {
		t.Errorf("block delimiters wrong: %q", block)
	}
	if Block("no front matter\n") != "" {
		t.Error("expected empty block for plain document")
	}
}
