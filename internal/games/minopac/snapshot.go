package minopac

import (
	"math"

	"github.com/vovakirdan/tui-minopac/internal/maze"
)

// Snapshot captures the complete observable game state at one tick.
// Uses primitive types only for stable serialization; used by determinism
// tests and replay verification.
type Snapshot struct {
	Tick    uint64
	Score   int
	Lives   int
	Combo   int
	State   string
	Elapsed float64

	// Player state
	PlayerCol      int
	PlayerRow      int
	PlayerFacing   int
	PlayerMoving   bool
	PlayerProgress float64

	// Ghost state (each ghost is 7 values: col, row, facing, moving,
	// mode, progress, timer)
	GhostCount int
	GhostData  []float64

	// Pellet state: remaining count plus the kind of every cell
	PelletsRemaining int
	CellData         []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	ghostData := make([]float64, 0, len(g.ghosts)*7)
	for _, gh := range g.ghosts {
		t := gh.Tile()
		moving := 0.0
		if gh.Moving() {
			moving = 1
		}
		ghostData = append(ghostData,
			float64(t.Col), float64(t.Row),
			float64(gh.Facing()), moving,
			float64(gh.Mode()), gh.Progress(), gh.ModeTimer(),
		)
	}

	cellData := make([]int, 0, g.grid.Width()*g.grid.Height())
	for row := 0; row < g.grid.Height(); row++ {
		for col := 0; col < g.grid.Width(); col++ {
			cellData = append(cellData, int(g.grid.CellAt(maze.T(col, row))))
		}
	}

	pt := g.player.Tile()
	return Snapshot{
		Tick:    g.tick,
		Score:   g.score,
		Lives:   g.player.Lives,
		Combo:   g.combo,
		State:   g.state,
		Elapsed: g.elapsed,

		PlayerCol:      pt.Col,
		PlayerRow:      pt.Row,
		PlayerFacing:   int(g.player.Facing()),
		PlayerMoving:   g.player.Moving(),
		PlayerProgress: g.player.Progress(),

		GhostCount: len(g.ghosts),
		GhostData:  ghostData,

		PelletsRemaining: g.grid.RemainingPellets(),
		CellData:         cellData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Combo)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerCol)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerRow)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerFacing)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.GhostCount)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PelletsRemaining) //#nosec G115 -- hash computation

	for _, c := range snap.State {
		h = h*31 + uint64(c)
	}
	if snap.PlayerMoving {
		h = h*31 + 1
	}
	h = h*31 + math.Float64bits(snap.PlayerProgress)
	h = h*31 + math.Float64bits(snap.Elapsed)

	for _, v := range snap.GhostData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.CellData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
