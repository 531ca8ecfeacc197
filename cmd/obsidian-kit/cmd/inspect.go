package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/raplab/obsidian-kit/internal/frontmatter"
	"github.com/raplab/obsidian-kit/internal/render"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show a document's existing front matter",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		fields, _, err := frontmatter.Inspect(string(data))
		if err != nil {
			return fmt.Errorf("inspecting %s: %w", path, err)
		}

		if len(fields) == 0 {
			info("No front matter found in %s", path)
			return nil
		}

		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		lines := make([]string, 0, len(keys))
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("%s: %v", k, fields[k]))
		}
		fmt.Println(render.SummaryPanel("Front Matter", lines))
		return nil
	},
	Args: cobra.ExactArgs(1),
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
