package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-minopac/internal/core"
	"github.com/vovakirdan/tui-minopac/internal/games/minopac"
	"github.com/vovakirdan/tui-minopac/internal/platform/tui"
	"github.com/vovakirdan/tui-minopac/internal/registry"
	"github.com/vovakirdan/tui-minopac/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMaze       string
	flagMazesDir   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play minopac",
	Long: `Start a minopac round in the current terminal.

Controls:
  WASD/Arrows - Steer
  P           - Pause
  R           - Restart (after the round ends)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower ghosts, longer fright, extra lives
  normal - Default balance
  hard   - Faster ghosts, shorter fright, fewer lives
  fixed  - Config values as-is, no preset adjustments

Examples:
  minopac play
  minopac play --difficulty hard
  minopac play --maze classic
  minopac play --mazes-dir ./mazes --maze spiral
  minopac play --config ./my-minopac.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagMaze, "maze", "", "Maze to play (see 'minopac levels')")
	playCmd.Flags().StringVar(&flagMazesDir, "mazes-dir", "", "Directory searched for custom maze YAML files")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Apply CLI settings before game creation
	minopac.SetConfigPath(flagConfig)
	minopac.SetDifficultyPreset(flagDifficulty)
	minopac.SetLevel(flagMaze)
	minopac.SetLevelsRoot(flagMazesDir)

	// Create game instance
	game, err := registry.Create("minopac")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
