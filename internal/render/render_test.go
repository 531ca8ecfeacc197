package render

import (
	"strings"
	"testing"

	"github.com/raplab/obsidian-kit/internal/frontmatter"
	"github.com/raplab/obsidian-kit/internal/metadata"
	"github.com/raplab/obsidian-kit/internal/syncer"
)

func init() {
	NoColor = true
}

func TestMetadataTable(t *testing.T) {
	out := MetadataTable(metadata.Metadata{
		Title:   "A Title",
		Authors: []string{"One", "Two"},
	})

	for _, want := range []string{"A Title", "One, Two", "(empty)"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestPlanTable(t *testing.T) {
	if out := PlanTable(nil); !strings.Contains(out, "No files to sync") {
		t.Errorf("empty plan output = %q", out)
	}

	out := PlanTable([]syncer.Candidate{
		{RelPath: "a/b.md", Reason: syncer.ReasonNewFile},
	})
	if !strings.Contains(out, "a/b.md") || !strings.Contains(out, "new") {
		t.Errorf("plan table missing row:\n%s", out)
	}
}

func TestValidationReport(t *testing.T) {
	ok := ValidationReport(frontmatter.Result{IsValid: true})
	if !strings.Contains(ok, "Validation passed") {
		t.Errorf("report = %q", ok)
	}

	bad := ValidationReport(frontmatter.Result{
		IsValid:  false,
		Errors:   []string{"boom"},
		Warnings: []string{"careful"},
	})
	for _, want := range []string{"Validation failed", "boom", "careful"} {
		if !strings.Contains(bad, want) {
			t.Errorf("report missing %q:\n%s", want, bad)
		}
	}
}

func TestSummaryPanel(t *testing.T) {
	out := SummaryPanel("Sync Summary", []string{"Synced: 2 file(s)"})
	if !strings.Contains(out, "Sync Summary") || !strings.Contains(out, "Synced: 2 file(s)") {
		t.Errorf("panel = %q", out)
	}
}

func TestFrontmatterPreview(t *testing.T) {
	doc := "---\nTitle: \"X\"\n---\nbody\n"
	if out := FrontmatterPreview(doc); !strings.Contains(out, `Title: "X"`) {
		t.Errorf("preview = %q", out)
	}
	if out := FrontmatterPreview("no block\n"); out != "" {
		t.Errorf("preview of plain doc = %q, want empty", out)
	}
}
