// Package obsidiankit provides the public Go library API for
// obsidian-kit.
//
// obsidian-kit extracts bibliographic metadata from markdown documents
// and injects it as Obsidian-compatible YAML front matter, and mirrors
// markdown trees one way based on change detection.
//
// # Basic Usage
//
//	out, meta, validation := obsidiankit.AddFrontmatter(doc)
//	if !validation.IsValid {
//	    // inspect validation.Errors
//	}
//
//	result, skipped, err := obsidiankit.Sync("~/notes", "~/backup", obsidiankit.SyncOptions{})
package obsidiankit

import (
	"github.com/raplab/obsidian-kit/internal/frontmatter"
	"github.com/raplab/obsidian-kit/internal/metadata"
	"github.com/raplab/obsidian-kit/internal/syncer"
)

// SyncOptions configures a sync operation.
type SyncOptions struct {
	// DryRun reports what would be copied without touching the
	// destination.
	DryRun bool

	// Extensions overrides the markdown extension set. Empty means
	// the default (".md").
	Extensions []string
}

// AddFrontmatter extracts metadata from the document body, injects it
// into the front matter, and validates the result. The injected
// document is returned alongside the extracted metadata and the
// validation outcome; callers should not persist the output when
// validation fails.
func AddFrontmatter(doc string) (string, Metadata, ValidationResult) {
	meta := metadata.Extract(doc)
	injected := frontmatter.Inject(doc, meta)
	validation := frontmatter.Validate(injected, meta)
	return injected, meta, validation
}

// Sync mirrors markdown files from sourceDir into destDir, copying
// only files the change detector selects. It returns the execution
// result, the count of files skipped as up to date, and a fatal
// scanning error if the source tree could not be enumerated. Per-file
// copy failures are aggregated in the result, not returned as an
// error.
func Sync(sourceDir, destDir string, opts SyncOptions) (*SyncResult, int, error) {
	det := syncer.NewDetector()

	candidates, skipped, planErrs, err := syncer.Plan(sourceDir, destDir, opts.Extensions, det)
	if err != nil {
		return nil, 0, err
	}

	result := syncer.Execute(candidates, destDir, opts.DryRun)
	result.Errors = append(planErrs, result.Errors...)
	return result, len(skipped), nil
}
