package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minopac/internal/maze/levels"
)

var flagLevelsDir string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available mazes",
	Long: `Shows every maze minopac can load: the embedded defaults plus any
YAML files found in the mazes directory.

Examples:
  minopac levels
  minopac levels --mazes-dir ./mazes`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "mazes-dir", "", "Directory searched for custom maze YAML files")
}

func runLevels(cmd *cobra.Command, args []string) {
	loader := levels.NewLoader(flagLevelsDir)
	all, err := loader.LoadAll()
	if err != nil {
		fmt.Printf("Warning: some mazes could not be loaded: %v\n\n", err)
	}

	if len(all) == 0 {
		fmt.Println("No mazes available.")
		return
	}

	fmt.Println("Available mazes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, lvl := range all {
		if len(lvl.ID) > maxIDLen {
			maxIDLen = len(lvl.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "ID", "Name", "Size")
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "--", "----", "----")

	// Print mazes
	for _, lvl := range all {
		rows := len(lvl.Rows)
		cols := 0
		if rows > 0 {
			cols = len(lvl.Rows[0])
		}
		fmt.Printf("  %-*s  %-20s  %dx%d\n", maxIDLen, lvl.ID, lvl.Name, cols, rows)
	}

	fmt.Println()
	fmt.Println("Run 'minopac play --maze <id>' to play a maze.")
}
