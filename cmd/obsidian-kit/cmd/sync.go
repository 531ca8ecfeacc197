package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raplab/obsidian-kit/internal/render"
	"github.com/raplab/obsidian-kit/internal/syncer"
)

var syncDryRun bool

var syncCmd = &cobra.Command{
	Use:   "sync <source-dir> <dest-dir>",
	Short: "Mirror changed markdown files from source to destination",
	Long: `Synchronizes markdown files from the source directory into the
destination, copying only files that changed. A file is copied when it is
missing from the destination, when its source mtime is newer, or when
mtimes tie but content hashes differ. Directory structure is preserved
and files are never deleted from the destination.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sourceDir, destDir := args[0], args[1]

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		info("Source:      %s", sourceDir)
		info("Destination: %s", destDir)
		if syncDryRun {
			info("Dry run mode, no files will be copied")
		}

		det := &syncer.Detector{Tolerance: cfg.MTimeTolerance()}
		candidates, skipped, planErrs, err := syncer.Plan(sourceDir, destDir, cfg.Extensions, det)
		if err != nil {
			return err
		}

		if verbose || syncDryRun {
			fmt.Println(render.PlanTable(candidates))
		}

		if len(candidates) == 0 && len(planErrs) == 0 {
			info("All files are up to date.")
			return nil
		}

		result := syncer.Execute(candidates, destDir, syncDryRun)
		result.Errors = append(planErrs, result.Errors...)

		for _, c := range result.Synced {
			detail("  %-15s %s", c.Reason, c.RelPath)
		}

		action := "Synced"
		if syncDryRun {
			action = "Would sync"
		}
		lines := []string{
			fmt.Sprintf("%s: %d file(s)", action, len(result.Synced)),
			fmt.Sprintf("Skipped: %d file(s)", len(skipped)),
		}
		if len(result.Errors) > 0 {
			lines = append(lines, fmt.Sprintf("Errors: %d", len(result.Errors)))
		}
		if !quiet {
			fmt.Println(render.SummaryPanel("Sync Summary", lines))
		}

		for _, e := range result.Errors {
			errorf("%s: %s", e.Path, e.Err)
		}
		if len(result.Errors) > 0 {
			return fmt.Errorf("%d file(s) failed", len(result.Errors))
		}
		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVarP(&syncDryRun, "dry-run", "n", false, "preview changes without copying files")
	rootCmd.AddCommand(syncCmd)
}
