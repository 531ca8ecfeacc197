package main

import (
	"os"

	"github.com/raplab/obsidian-kit/cmd/obsidian-kit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
