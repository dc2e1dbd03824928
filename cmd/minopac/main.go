// minopac is a terminal maze-chase game played locally or over SSH.
//
// Usage:
//
//	minopac play             - Play in the current terminal
//	minopac levels           - List available mazes
//	minopac scores           - Show high scores and recent runs
//	minopac serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.minopac/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-minopac/internal/games/minopac"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minopac",
	Short: "Minopac - A maze-chase game in your terminal",
	Long: `Minopac is a terminal maze-chase game: steer the player through a
wrap-around maze, eat every pellet, and dodge ghosts with distinct
chase personalities. Power pellets briefly turn the tables.

Available commands:
  play     - Play in the current terminal
  levels   - List available mazes
  scores   - View high scores and recent runs
  serve    - Start SSH server for remote play

Examples:
  minopac play
  minopac play --maze classic --difficulty hard
  minopac serve --ssh :2222
  minopac scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.minopac/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
