package minopac

import (
	"github.com/vovakirdan/tui-minopac/internal/config"
	"github.com/vovakirdan/tui-minopac/internal/maze"
)

// Mode is a ghost's behavioral state.
type Mode uint8

const (
	// ModeNormal pursues the target chosen by the ghost's strategy.
	ModeNormal Mode = iota
	// ModeFrightened flees the player at reduced speed; eating the ghost
	// sends it to ModeEaten. Expires back to ModeNormal on a timer.
	ModeFrightened
	// ModeEaten races back to the spawn tile, ignoring the player entirely.
	// Arriving at spawn restores ModeNormal.
	ModeEaten
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeFrightened:
		return "frightened"
	case ModeEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

// CollisionOutcome is the result of the player touching a ghost.
type CollisionOutcome uint8

const (
	CollisionNone CollisionOutcome = iota
	CollisionGhostEaten
	CollisionLifeLost
)

// Ghost is one maze adversary: a motion controller, a targeting strategy,
// and a mode state machine.
type Ghost struct {
	*Actor

	strategy Strategy
	mode     Mode
	timer    float64 // seconds of fright remaining
	spawn    maze.Tile
	movement config.MinopacMovement
}

// NewGhost creates a settled ghost at its spawn tile in ModeNormal.
func NewGhost(grid *maze.Grid, spawn maze.Tile, strategy Strategy, movement config.MinopacMovement) *Ghost {
	return &Ghost{
		Actor:    NewActor(grid, spawn, movement.GhostSpeed),
		strategy: strategy,
		spawn:    grid.Normalize(spawn),
		movement: movement,
	}
}

// Mode returns the ghost's current behavioral state.
func (gh *Ghost) Mode() Mode { return gh.mode }

// ModeTimer returns the seconds of fright remaining.
func (gh *Ghost) ModeTimer() float64 { return gh.timer }

// Personality returns the strategy name.
func (gh *Ghost) Personality() string { return gh.strategy.Name() }

// Spawn returns the ghost's home tile.
func (gh *Ghost) Spawn() maze.Tile { return gh.spawn }

// Frighten puts the ghost into ModeFrightened for the given duration and
// turns it around on the spot. Eaten ghosts are immune: they are already
// disembodied and keep heading home. Re-frightening an already frightened
// ghost restarts the timer and reverses again.
func (gh *Ghost) Frighten(duration float64) {
	if gh.mode == ModeEaten {
		return
	}
	gh.mode = ModeFrightened
	gh.timer = duration
	gh.ReverseCourse()
}

// TickMode advances the mode state machine by dt seconds: fright expiry and
// the eaten ghost's arrival home.
func (gh *Ghost) TickMode(dt float64) {
	switch gh.mode {
	case ModeFrightened:
		gh.timer -= dt
		if gh.timer <= 0 {
			gh.timer = 0
			gh.mode = ModeNormal
		}
	case ModeEaten:
		if !gh.Moving() && gh.Tile() == gh.spawn {
			gh.mode = ModeNormal
		}
	}
}

// CollideWithPlayer resolves a touch between this ghost and the player and
// transitions the ghost accordingly.
func (gh *Ghost) CollideWithPlayer() CollisionOutcome {
	switch gh.mode {
	case ModeEaten:
		return CollisionNone
	case ModeFrightened:
		gh.mode = ModeEaten
		gh.timer = 0
		return CollisionGhostEaten
	default:
		return CollisionLifeLost
	}
}

// EffectiveSpeed returns the ghost's speed in tiles per second for the
// current mode, including any strategy speed shaping in normal mode.
func (gh *Ghost) EffectiveSpeed(elapsed float64) float64 {
	base := gh.movement.GhostSpeed
	switch gh.mode {
	case ModeFrightened:
		return base * gh.movement.FrightenedMultiplier
	case ModeEaten:
		return base * gh.movement.EatenMultiplier
	}
	if shaper, ok := gh.strategy.(SpeedShaper); ok {
		return base * shaper.SpeedMultiplier(elapsed)
	}
	return base
}

// Plan picks the ghost's next course at a tile center. Normal mode steps
// greedily toward the strategy target; frightened mode steps away from the
// player; eaten mode follows the shortest path home. Reversing is allowed
// only when no other open direction exists, so ghosts commit to corridors
// instead of oscillating. Ties break in the fixed order up, left, down,
// right.
func (gh *Ghost) Plan(ctx ChaseContext) {
	if !gh.NeedsCourse() {
		return
	}

	if gh.mode == ModeEaten {
		if gh.planHomeward() {
			return
		}
		// Spawn unreachable from here (layout quirk); fall through to the
		// greedy step so the ghost still closes distance.
	}

	target := gh.spawn
	flee := false
	switch gh.mode {
	case ModeNormal:
		target = gh.strategy.Target(ctx)
	case ModeFrightened:
		target = ctx.PlayerTile
		flee = true
	}

	gh.SetCourse(gh.greedyStep(target, flee))
}

// planHomeward follows the shortest path to spawn. Returns false when no
// path exists.
func (gh *Ghost) planHomeward() bool {
	path := maze.ShortestPath(gh.grid, gh.Tile(), gh.spawn)
	if len(path) < 2 {
		return false
	}
	return gh.SetCourse(gh.grid.DirTo(path[0], path[1]))
}

// greedyStep returns the open direction that minimizes (or, fleeing,
// maximizes) the wrap-aware distance to the target. Backtracking is a last
// resort.
func (gh *Ghost) greedyStep(target maze.Tile, flee bool) maze.Dir {
	banned := gh.Facing().Opposite()

	best := maze.DirNone
	var bestDist float64
	for _, d := range maze.PlanOrder {
		if d == banned {
			continue
		}
		n := gh.grid.NeighborInDirection(gh.Tile(), d)
		if !gh.grid.IsOpen(n) {
			continue
		}
		dist := gh.grid.WrapDistance(n, target)
		if best == maze.DirNone || (flee && dist > bestDist) || (!flee && dist < bestDist) {
			best = d
			bestDist = dist
		}
	}

	if best == maze.DirNone && banned != maze.DirNone {
		n := gh.grid.NeighborInDirection(gh.Tile(), banned)
		if gh.grid.IsOpen(n) {
			return banned
		}
	}
	return best
}

// ResetPosition returns the ghost home, settled and in ModeNormal.
func (gh *Ghost) ResetPosition() {
	gh.Teleport(gh.spawn)
	gh.mode = ModeNormal
	gh.timer = 0
}
