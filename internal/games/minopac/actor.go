package minopac

import (
	"github.com/vovakirdan/tui-minopac/internal/maze"
)

// Actor is the tile-synchronized motion controller shared by the player and
// the ghosts. An actor is always either settled on a tile center or
// traversing the edge to an adjacent tile; positions between centers exist
// only as interpolation for rendering and collision checks. Decisions about
// where to go next happen exclusively at tile centers.
type Actor struct {
	grid *maze.Grid

	tile     maze.Tile // last committed tile
	next     maze.Tile // destination while moving
	facing   maze.Dir  // direction of the current or last course
	moving   bool
	progress float64 // fraction of the current edge traversed, [0,1)
	carry    float64 // overshoot from the last commit, spent on the next course

	// Speed is the traversal rate in tiles per second. Callers may change
	// it between ticks; mid-edge changes take effect immediately.
	Speed float64

	needsPlan bool
	committed bool // arrived on a tile center this tick
}

// NewActor creates a settled actor at the given spawn tile.
func NewActor(grid *maze.Grid, spawn maze.Tile, speed float64) *Actor {
	return &Actor{
		grid:      grid,
		tile:      grid.Normalize(spawn),
		facing:    maze.DirNone,
		Speed:     speed,
		needsPlan: true,
	}
}

// Tile returns the last committed tile. While moving this is the tile the
// actor departed from; logical position changes only on commit.
func (a *Actor) Tile() maze.Tile { return a.tile }

// CourseTarget returns the destination tile of the current course.
// Meaningful only while Moving.
func (a *Actor) CourseTarget() maze.Tile { return a.next }

// Facing returns the direction of the current or most recent course.
func (a *Actor) Facing() maze.Dir { return a.facing }

// Moving reports whether the actor is between tile centers.
func (a *Actor) Moving() bool { return a.moving }

// NeedsCourse reports whether the actor has settled and is waiting for a
// new course. The flag is raised on arrival and at spawn, and cleared by a
// successful SetCourse.
func (a *Actor) NeedsCourse() bool { return a.needsPlan }

// JustCommitted reports whether the actor arrived on a tile center during
// the last Advance (or was just placed by Teleport). Unlike Tile, which a
// mid-edge reversal rewrites, this only fires for tiles genuinely reached,
// so tile-entry events key off it.
func (a *Actor) JustCommitted() bool { return a.committed }

// Advance moves the actor along its current course by Speed*dt tiles.
// When the edge is fully traversed the actor commits to the destination
// tile, raises the planning flag, and banks any overshoot so the next
// course starts partway in instead of losing distance.
func (a *Actor) Advance(dt float64) {
	a.committed = false
	if !a.moving {
		return
	}
	a.progress += a.Speed * dt
	if a.progress < 1 {
		return
	}
	a.carry = a.progress - 1
	// One planning stop per tile even at absurd speeds.
	if a.carry >= 1 {
		a.carry = 0.999
	}
	a.tile = a.next
	a.moving = false
	a.progress = 0
	a.needsPlan = true
	a.committed = true
}

// SetCourse starts traversal toward the neighbor in the given direction.
// Returns false without changing state when the direction is DirNone or the
// neighbor is a wall. Banked overshoot from the previous commit is applied
// as initial progress.
func (a *Actor) SetCourse(d maze.Dir) bool {
	if d == maze.DirNone {
		return false
	}
	n := a.grid.NeighborInDirection(a.tile, d)
	if !a.grid.IsOpen(n) {
		return false
	}
	a.next = n
	a.facing = d
	a.moving = true
	a.progress = a.carry
	a.carry = 0
	a.needsPlan = false
	return true
}

// ReverseCourse turns the actor around in place. Mid-edge, the origin and
// destination swap and progress inverts so the pixel position is unchanged.
// Settled actors just flip their facing and ask for a new plan.
func (a *Actor) ReverseCourse() {
	if !a.moving {
		a.facing = a.facing.Opposite()
		a.needsPlan = true
		return
	}
	a.tile, a.next = a.next, a.tile
	a.facing = a.facing.Opposite()
	a.progress = 1 - a.progress
}

// Teleport places the actor settled on a tile, discarding any course and
// banked overshoot. Used for spawn resets.
func (a *Actor) Teleport(t maze.Tile) {
	a.tile = a.grid.Normalize(t)
	a.moving = false
	a.facing = maze.DirNone
	a.progress = 0
	a.carry = 0
	a.needsPlan = true
	a.committed = true
}

// PixelPos returns the actor's pixel position: the tile center when
// settled, the wrap-aware interpolation along the edge while moving.
func (a *Actor) PixelPos() (float64, float64) {
	if !a.moving {
		return a.grid.GridToPixel(a.tile)
	}
	return a.grid.Interpolate(a.tile, a.next, a.progress)
}

// Progress returns the fraction of the current edge traversed.
func (a *Actor) Progress() float64 { return a.progress }
