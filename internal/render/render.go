// Package render draws the CLI's tables, panels, and reports.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/raplab/obsidian-kit/internal/frontmatter"
	"github.com/raplab/obsidian-kit/internal/metadata"
	"github.com/raplab/obsidian-kit/internal/syncer"
)

// NoColor disables all styling when set (the --no-color flag).
var NoColor bool

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func style(s lipgloss.Style, text string) string {
	if NoColor {
		return text
	}
	return s.Render(text)
}

// MetadataTable renders the extracted metadata as a two-column table.
func MetadataTable(meta metadata.Metadata) string {
	authors := strings.Join(meta.Authors, ", ")

	t := newTable("Field", "Value")
	t.Row("Title", orEmpty(meta.Title))
	t.Row("Authors", orEmpty(authors))
	t.Row("Book", orEmpty(meta.Book))
	t.Row("Date", orEmpty(meta.PublicationDate))
	return t.Render()
}

// PlanTable renders the sync plan: one row per candidate with the
// reason it was selected.
func PlanTable(candidates []syncer.Candidate) string {
	if len(candidates) == 0 {
		return style(dimStyle, "No files to sync.")
	}

	t := newTable(fmt.Sprintf("File (%d)", len(candidates)), "Reason")
	for _, c := range candidates {
		t.Row(c.RelPath, c.Reason.String())
	}
	return t.Render()
}

// SummaryPanel renders lines inside a rounded-border box with a title.
func SummaryPanel(title string, lines []string) string {
	body := style(headerStyle, title) + "\n" + strings.Join(lines, "\n")
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if !NoColor {
		box = box.BorderForeground(lipgloss.Color("6"))
	}
	return box.Render(body)
}

// ValidationReport renders a validation outcome: pass/fail headline
// plus any errors and warnings.
func ValidationReport(res frontmatter.Result) string {
	var b strings.Builder

	if res.IsValid {
		b.WriteString(style(successStyle, "Validation passed."))
	} else {
		b.WriteString(style(errorStyle, "Validation failed!"))
	}

	if len(res.Errors) > 0 {
		b.WriteString("\n" + style(errorStyle, "Errors:"))
		for _, e := range res.Errors {
			b.WriteString("\n  " + style(errorStyle, e))
		}
	}
	if len(res.Warnings) > 0 {
		b.WriteString("\n" + style(warnStyle, "Warnings:"))
		for _, w := range res.Warnings {
			b.WriteString("\n  " + style(warnStyle, w))
		}
	}

	return b.String()
}

// FrontmatterPreview renders a document's front-matter block in a
// bordered panel, or "" if the document has none.
func FrontmatterPreview(doc string) string {
	block := frontmatter.Block(doc)
	if block == "" {
		return ""
	}
	return SummaryPanel("Front Matter Preview", []string{block})
}

func newTable(headers ...string) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
	if NoColor {
		return t
	}
	return t.
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == 0 {
				return headerStyle
			}
			return valueStyle.Padding(0, 1)
		})
}

func orEmpty(s string) string {
	if s == "" {
		return style(dimStyle, "(empty)")
	}
	return s
}
