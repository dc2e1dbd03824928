package minopac

import (
	"github.com/vovakirdan/tui-minopac/internal/maze"
)

// Player wraps the motion controller with input buffering and lives.
type Player struct {
	*Actor

	queued maze.Dir // most recent turn request, applied at tile centers
	Lives  int
}

// NewPlayer creates a player settled at the spawn tile.
func NewPlayer(grid *maze.Grid, spawn maze.Tile, speed float64, lives int) *Player {
	return &Player{
		Actor: NewActor(grid, spawn, speed),
		Lives: lives,
	}
}

// Queue records a turn request. The latest request wins; it is consumed at
// the next tile center, except that an exact reversal applies immediately.
func (p *Player) Queue(d maze.Dir) {
	if d == maze.DirNone {
		return
	}
	p.queued = d
	if p.Moving() && d == p.Facing().Opposite() {
		p.ReverseCourse()
		p.queued = maze.DirNone
	}
}

// Plan picks the player's next course at a tile center: the queued turn if
// that way is open, otherwise straight ahead, otherwise stop and wait. The
// queued request survives a blocked attempt so a pre-turn pressed early
// still fires at the corner.
func (p *Player) Plan() {
	if !p.NeedsCourse() {
		return
	}
	if p.queued != maze.DirNone && p.SetCourse(p.queued) {
		p.queued = maze.DirNone
		return
	}
	p.SetCourse(p.Facing())
}

// ResetPosition returns the player to a tile with no course and no buffered
// input. Lives are untouched.
func (p *Player) ResetPosition(spawn maze.Tile) {
	p.Teleport(spawn)
	p.queued = maze.DirNone
}
