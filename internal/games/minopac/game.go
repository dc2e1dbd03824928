// Package minopac implements the maze-chase game: a player eating pellets
// in a wrap-around maze while ghosts with pluggable personalities hunt it.
// The package contains pure simulation logic with no Bubble Tea dependency;
// the platform handles input mapping, timing, and terminal rendering.
package minopac

import (
	"math/rand"

	"github.com/vovakirdan/tui-minopac/internal/config"
	"github.com/vovakirdan/tui-minopac/internal/core"
	"github.com/vovakirdan/tui-minopac/internal/maze"
	"github.com/vovakirdan/tui-minopac/internal/maze/levels"
	"github.com/vovakirdan/tui-minopac/internal/registry"
)

// GameState constants
const (
	StatePlaying  = "playing"  // Round in progress
	StatePaused   = "paused"   // Game paused
	StateGameOver = "gameover" // No lives left
	StateWin      = "win"      // Maze cleared
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// levelID and levelsRoot select the maze, set via CLI
var (
	levelID    string
	levelsRoot string
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetLevel selects the maze to play by level ID.
func SetLevel(id string) {
	levelID = id
}

// SetLevelsRoot sets the directory searched for custom maze files.
func SetLevelsRoot(root string) {
	levelsRoot = root
}

// Game implements the minopac game logic.
type Game struct {
	// World
	level  levels.Level
	grid   *maze.Grid
	player *Player
	ghosts []*Ghost
	rng    *rand.Rand

	// Game state
	state        string
	score        int
	combo        int // ghosts eaten during the current fright wave
	elapsed      float64
	tick         uint64
	pelletsEaten int
	ghostsEaten  int

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.MinopacConfig

	// Layout (computed from screen size)
	mazeX          int // Screen column of the maze's left edge
	mazeY          int // Screen row of the maze's top edge
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new minopac game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "minopac"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Minopac"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadMinopac(configPath)
	if err != nil {
		cfg = config.DefaultMinopacConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyMinopacPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg

	// Load the maze
	g.level = g.loadLevel()
	grid, err := g.level.NewGrid()
	if err != nil {
		// Levels validate at load time; only the embedded default gets here.
		g.level = levels.Default()
		grid, _ = g.level.NewGrid()
	}
	g.grid = grid

	g.rng = rand.New(rand.NewSource(runtime.Seed))

	// Calculate layout and check screen size
	g.calculateLayout()

	// Initialize game state
	g.state = StatePlaying
	g.score = 0
	g.combo = 0
	g.elapsed = 0
	g.tick = 0
	g.pelletsEaten = 0
	g.ghostsEaten = 0

	// Spawn actors
	g.player = NewPlayer(g.grid, g.grid.PlayerSpawn(), cfg.Movement.PlayerSpeed, cfg.Gameplay.Lives)

	g.ghosts = make([]*Ghost, 0, len(cfg.Ghosts))
	for _, entry := range cfg.Ghosts {
		strategy, err := NewStrategy(entry, cfg)
		if err != nil {
			// Unknown personalities degrade to aimless drift rather than
			// killing the round.
			strategy = wanderer{}
		}
		spawn := g.grid.NextGhostSpawn()
		g.ghosts = append(g.ghosts, NewGhost(g.grid, spawn, strategy, cfg.Movement))
	}
}

// loadLevel resolves the CLI-selected level, falling back to the default.
func (g *Game) loadLevel() levels.Level {
	id := levelID
	if id == "" {
		id = levels.DefaultID
	}
	loader := levels.NewLoader(levelsRoot)
	lvl, err := loader.LoadByID(id)
	if err != nil {
		return levels.Default()
	}
	return lvl
}

// calculateLayout centers the maze under a two-row HUD.
func (g *Game) calculateLayout() {
	g.mazeY = 2
	g.mazeX = (g.runtime.ScreenW - g.grid.Width()) / 2
	if g.mazeX < 0 {
		g.mazeX = 0
	}

	g.minScreenW = g.grid.Width()
	g.minScreenH = g.grid.Height() + 3 // HUD rows plus overlay line
	g.screenTooSmall = g.runtime.ScreenW < g.minScreenW || g.runtime.ScreenH < g.minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	// Don't update if paused or the round is over
	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	dt := g.runtime.DeltaTime()
	g.elapsed += dt

	g.handleInput(in)

	// Advance all motion first so everyone sees the same world when
	// planning below.
	g.player.Advance(dt)
	for _, gh := range g.ghosts {
		gh.Speed = gh.EffectiveSpeed(g.elapsed)
		gh.Advance(dt)
		gh.TickMode(dt)
	}

	// Pellets are consumed the moment the player commits to a tile.
	g.eatPellet()
	if g.grid.RemainingPellets() == 0 {
		g.state = StateWin
		return core.StepResult{State: g.State()}
	}

	// Planning happens only for actors that settled this tick.
	g.player.Plan()
	ctx := ChaseContext{
		Grid:       g.grid,
		PlayerTile: g.player.Tile(),
		PlayerDir:  g.player.Facing(),
		Elapsed:    g.elapsed,
		Rand:       g.rng,
	}
	for _, gh := range g.ghosts {
		ctx.GhostTile = gh.Tile()
		ctx.GhostDir = gh.Facing()
		gh.Plan(ctx)
	}

	g.resolveCollisions()

	return core.StepResult{State: g.State()}
}

// handleInput buffers the player's steering for the next tile center.
func (g *Game) handleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.player.Queue(maze.DirUp)
	case in.Has(core.ActionLeft):
		g.player.Queue(maze.DirLeft)
	case in.Has(core.ActionDown):
		g.player.Queue(maze.DirDown)
	case in.Has(core.ActionRight):
		g.player.Queue(maze.DirRight)
	}
}

// eatPellet consumes whatever sits on a tile the player just arrived on.
// Only genuine arrivals count: a mid-edge reversal rewrites Tile to the
// destination the player turned back from, and that tile was never entered.
func (g *Game) eatPellet() {
	if !g.player.JustCommitted() {
		return
	}
	kind, ok := g.grid.EatPellet(g.player.Tile())
	if !ok {
		return
	}
	g.pelletsEaten++
	switch kind {
	case maze.CellPellet:
		g.score += g.cfg.Scoring.PelletPoints
	case maze.CellPowerPellet:
		g.score += g.cfg.Scoring.PowerPelletPoints
		g.combo = 0
		for _, gh := range g.ghosts {
			gh.Frighten(g.cfg.Fright.Duration)
		}
	}
}

// resolveCollisions checks the player against every ghost on interpolated
// pixel positions. A lost life resets all positions atomically and ends
// collision processing for this tick.
func (g *Game) resolveCollisions() {
	threshold := 2 * g.cfg.Movement.CollisionRadius * g.grid.TileSize()
	px, py := g.player.PixelPos()

	for _, gh := range g.ghosts {
		gx, gy := gh.PixelPos()
		if g.grid.PixelWrapDistance(px, py, gx, gy) > threshold {
			continue
		}
		switch gh.CollideWithPlayer() {
		case CollisionGhostEaten:
			g.score += g.ghostPoints()
			g.combo++
			g.ghostsEaten++
		case CollisionLifeLost:
			g.player.Lives--
			if g.player.Lives <= 0 {
				g.state = StateGameOver
			} else {
				g.resetPositions()
			}
			return
		}
	}
}

// ghostPoints returns the value of the next ghost in the current fright
// wave: base points doubling per ghost, capped.
func (g *Game) ghostPoints() int {
	points := g.cfg.Scoring.GhostPoints
	for i := 0; i < g.combo; i++ {
		points *= 2
		if points >= g.cfg.Scoring.MaxGhostPoints {
			return g.cfg.Scoring.MaxGhostPoints
		}
	}
	if points > g.cfg.Scoring.MaxGhostPoints {
		points = g.cfg.Scoring.MaxGhostPoints
	}
	return points
}

// resetPositions returns every actor to its spawn after a lost life.
// Pellets and score are untouched.
func (g *Game) resetPositions() {
	g.player.ResetPosition(g.grid.PlayerSpawn())
	for _, gh := range g.ghosts {
		gh.ResetPosition()
	}
	g.combo = 0
}

// frightRemaining returns the longest fright timer across ghosts, for HUD.
func (g *Game) frightRemaining() float64 {
	var max float64
	for _, gh := range g.ghosts {
		if gh.Mode() == ModeFrightened && gh.ModeTimer() > max {
			max = gh.ModeTimer()
		}
	}
	return max
}

// RunSummary reports the details of the current round for persistence.
func (g *Game) RunSummary() registry.RunSummary {
	outcome := "gameover"
	if g.state == StateWin {
		outcome = "win"
	}
	return registry.RunSummary{
		LevelID:      g.level.ID,
		Outcome:      outcome,
		DurationSecs: int(g.elapsed),
		PelletsEaten: g.pelletsEaten,
		GhostsEaten:  g.ghostsEaten,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("minopac", func() registry.Game {
		return New()
	})
}
