package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raplab/obsidian-kit/internal/frontmatter"
	"github.com/raplab/obsidian-kit/internal/metadata"
	"github.com/raplab/obsidian-kit/internal/render"
)

var (
	fmOutputDir string
	fmDryRun    bool
)

var frontmatterCmd = &cobra.Command{
	Use:   "frontmatter <file>",
	Short: "Extract metadata and inject YAML front matter",
	Long: `Extracts the title, authors, publication, and date from a markdown
document's body and injects them as YAML front matter with
Obsidian-compatible wiki-links. The result is validated before writing;
any validation error aborts the write for that file. Output goes to a
separate directory under the same filename.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		if !fmDryRun {
			if err := os.MkdirAll(fmOutputDir, 0755); err != nil {
				return fmt.Errorf("creating output directory %s: %w", fmOutputDir, err)
			}
		}
		outputFile := filepath.Join(fmOutputDir, filepath.Base(path))

		info("Processing: %s", filepath.Base(path))

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		doc := string(data)

		meta := metadata.Extract(doc)
		if verbose {
			fmt.Println(render.MetadataTable(meta))
		}

		injected := frontmatter.Inject(doc, meta)
		validation := frontmatter.Validate(injected, meta)

		if verbose || !validation.IsValid {
			fmt.Println(render.ValidationReport(validation))
		}
		if !validation.IsValid {
			return fmt.Errorf("aborting %s due to validation errors", path)
		}

		if verbose || fmDryRun {
			if preview := render.FrontmatterPreview(injected); preview != "" {
				fmt.Println(preview)
			}
		}

		if fmDryRun {
			info("Dry run: would write to %s", outputFile)
			return nil
		}

		if err := os.WriteFile(outputFile, []byte(injected), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outputFile, err)
		}
		info("Written to: %s", outputFile)
		return nil
	},
}

func init() {
	frontmatterCmd.Flags().StringVarP(&fmOutputDir, "output-dir", "o", "", "output directory for processed files (required)")
	frontmatterCmd.Flags().BoolVarP(&fmDryRun, "dry-run", "n", false, "preview changes without writing the file")
	_ = frontmatterCmd.MarkFlagRequired("output-dir")
	rootCmd.AddCommand(frontmatterCmd)
}
