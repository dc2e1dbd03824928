package minopac

import (
	"testing"

	"github.com/vovakirdan/tui-minopac/internal/core"
	"github.com/vovakirdan/tui-minopac/internal/maze"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(testRuntime())
	if g.screenTooSmall {
		t.Fatal("test runtime should fit the default maze")
	}
	return g
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t)

	if g.state != StatePlaying {
		t.Errorf("state = %q, expected playing", g.state)
	}
	if g.score != 0 || g.tick != 0 {
		t.Errorf("fresh game: score=%d tick=%d", g.score, g.tick)
	}
	if g.player.Lives != g.cfg.Gameplay.Lives {
		t.Errorf("lives = %d, expected %d", g.player.Lives, g.cfg.Gameplay.Lives)
	}
	if len(g.ghosts) != len(g.cfg.Ghosts) {
		t.Errorf("ghosts = %d, expected %d", len(g.ghosts), len(g.cfg.Ghosts))
	}
	if g.player.Tile() != g.grid.PlayerSpawn() {
		t.Errorf("player at %v, expected spawn %v", g.player.Tile(), g.grid.PlayerSpawn())
	}

	// Play some, then reset clears everything.
	for i := 0; i < 30; i++ {
		in := core.NewInputFrame()
		in.Set(core.ActionLeft)
		g.Step(in)
	}
	g.Reset(testRuntime())
	if g.score != 0 || g.tick != 0 || g.state != StatePlaying {
		t.Errorf("reset did not clear state: score=%d tick=%d state=%q", g.score, g.tick, g.state)
	}
}

func TestPelletScoring(t *testing.T) {
	g := newTestGame(t)

	// The tile left of the default spawn holds a pellet; at 5 tiles/s and
	// 60fps the player commits within 13 ticks.
	for i := 0; i < 15; i++ {
		in := core.NewInputFrame()
		in.Set(core.ActionLeft)
		g.Step(in)
	}
	if g.score < g.cfg.Scoring.PelletPoints {
		t.Errorf("score = %d, expected at least one pellet eaten", g.score)
	}
}

func TestPelletsEatenOnlyOnce(t *testing.T) {
	g := newTestGame(t)
	before := g.grid.RemainingPellets()

	// Walk left, then back right over the same tiles.
	for i := 0; i < 30; i++ {
		in := core.NewInputFrame()
		in.Set(core.ActionLeft)
		g.Step(in)
	}
	midScore := g.score
	eaten := before - g.grid.RemainingPellets()
	if eaten == 0 {
		t.Fatal("setup: no pellets eaten walking left")
	}

	for i := 0; i < 30; i++ {
		in := core.NewInputFrame()
		in.Set(core.ActionRight)
		g.Step(in)
	}
	// Walking back right re-crosses cleared tiles before reaching new
	// pellets on the far side of spawn.
	wantMax := midScore + g.cfg.Scoring.PelletPoints*3
	if g.score > wantMax {
		t.Errorf("score %d grew too much re-crossing cleared tiles (was %d)", g.score, midScore)
	}
}

func TestReversalDoesNotEatUnreachedPellet(t *testing.T) {
	g := newTestGame(t)
	target := g.grid.NeighborInDirection(g.player.Tile(), maze.DirLeft)
	if g.grid.CellAt(target) != maze.CellPellet {
		t.Fatalf("setup: expected a pellet left of spawn at %v", target)
	}

	// Head toward the pellet, then turn back a quarter of the way in.
	for i := 0; i < 4; i++ {
		in := core.NewInputFrame()
		in.Set(core.ActionLeft)
		g.Step(in)
	}
	if !g.player.Moving() {
		t.Fatal("setup: player should be mid-edge")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	g.Step(in)
	if g.grid.CellAt(target) != maze.CellPellet {
		t.Fatal("reversal consumed the pellet on a tile never entered")
	}

	// Settle back on the spawn tile; the abandoned pellet stays put.
	for i := 0; i < 5; i++ {
		in := core.NewInputFrame()
		in.Set(core.ActionRight)
		g.Step(in)
	}
	if g.grid.CellAt(target) != maze.CellPellet {
		t.Error("pellet vanished without the player reaching its tile")
	}
	if g.score != 0 {
		t.Errorf("score = %d, expected 0 with no pellet tile entered", g.score)
	}
}

func TestPowerPelletFrightensGhosts(t *testing.T) {
	g := newTestGame(t)

	// Drop the player onto a power pellet and consume it directly.
	g.player.ResetPosition(maze.T(1, 2))
	g.eatPellet()

	if g.score != g.cfg.Scoring.PowerPelletPoints {
		t.Errorf("score = %d, expected %d", g.score, g.cfg.Scoring.PowerPelletPoints)
	}
	for i, gh := range g.ghosts {
		if gh.Mode() != ModeFrightened {
			t.Errorf("ghost %d mode = %v, expected frightened", i, gh.Mode())
		}
		if gh.ModeTimer() != g.cfg.Fright.Duration {
			t.Errorf("ghost %d timer = %v, expected %v", i, gh.ModeTimer(), g.cfg.Fright.Duration)
		}
	}
}

func TestGhostComboScoring(t *testing.T) {
	g := newTestGame(t)

	for _, gh := range g.ghosts {
		gh.mode = ModeFrightened
		gh.timer = 5
		gh.Teleport(g.player.Tile())
	}
	g.resolveCollisions()

	// 200 + 400 + 800 + 1600 with the default four-ghost roster.
	want := 0
	points := g.cfg.Scoring.GhostPoints
	for range g.ghosts {
		want += points
		points *= 2
		if points > g.cfg.Scoring.MaxGhostPoints {
			points = g.cfg.Scoring.MaxGhostPoints
		}
	}
	if g.score != want {
		t.Errorf("combo score = %d, expected %d", g.score, want)
	}
	for i, gh := range g.ghosts {
		if gh.Mode() != ModeEaten {
			t.Errorf("ghost %d mode = %v, expected eaten", i, gh.Mode())
		}
	}
}

func TestGhostPointsCap(t *testing.T) {
	g := newTestGame(t)
	g.combo = 10
	if got := g.ghostPoints(); got != g.cfg.Scoring.MaxGhostPoints {
		t.Errorf("deep combo points = %d, expected cap %d", got, g.cfg.Scoring.MaxGhostPoints)
	}
}

func TestLifeLostResetsPositions(t *testing.T) {
	g := newTestGame(t)
	livesBefore := g.player.Lives
	pelletsBefore := g.grid.RemainingPellets()
	g.score = 70

	// Move everyone off their spawns, then force a collision.
	for i := 0; i < 20; i++ {
		in := core.NewInputFrame()
		in.Set(core.ActionLeft)
		g.Step(in)
	}
	scoreBefore := g.score
	g.ghosts[0].Teleport(g.player.Tile())
	g.resolveCollisions()

	if g.player.Lives != livesBefore-1 {
		t.Errorf("lives = %d, expected %d", g.player.Lives, livesBefore-1)
	}
	if g.state != StatePlaying {
		t.Errorf("state = %q, expected playing with lives remaining", g.state)
	}
	if g.player.Tile() != g.grid.PlayerSpawn() {
		t.Errorf("player not reset to spawn: %v", g.player.Tile())
	}
	for i, gh := range g.ghosts {
		if gh.Tile() != gh.Spawn() || gh.Moving() {
			t.Errorf("ghost %d not reset: tile=%v moving=%v", i, gh.Tile(), gh.Moving())
		}
		if gh.Mode() != ModeNormal {
			t.Errorf("ghost %d mode = %v after reset", i, gh.Mode())
		}
	}
	if g.score != scoreBefore {
		t.Errorf("score changed on life loss: %d -> %d", scoreBefore, g.score)
	}
	if eaten := pelletsBefore - g.grid.RemainingPellets(); eaten == 0 {
		t.Error("setup: expected some pellets eaten before the collision")
	}
}

func TestLastLifeEndsGame(t *testing.T) {
	g := newTestGame(t)
	g.player.Lives = 1

	g.ghosts[0].Teleport(g.player.Tile())
	g.resolveCollisions()

	if g.state != StateGameOver {
		t.Errorf("state = %q, expected gameover", g.state)
	}
	if !g.State().GameOver {
		t.Error("GameState should report game over")
	}
}

func TestEatenGhostDoesNotKill(t *testing.T) {
	g := newTestGame(t)
	lives := g.player.Lives

	g.ghosts[0].mode = ModeEaten
	g.ghosts[0].Teleport(g.player.Tile())
	g.resolveCollisions()

	if g.player.Lives != lives {
		t.Errorf("eaten ghost cost a life: %d -> %d", lives, g.player.Lives)
	}
}

func TestWinWhenMazeCleared(t *testing.T) {
	g := newTestGame(t)

	// Clear the board directly, then one tick flips the state.
	for row := 0; row < g.grid.Height(); row++ {
		for col := 0; col < g.grid.Width(); col++ {
			g.grid.EatPellet(maze.T(col, row))
		}
	}
	g.Step(core.NewInputFrame())

	if g.state != StateWin {
		t.Errorf("state = %q, expected win", g.state)
	}
	if !g.State().GameOver {
		t.Error("win should report GameOver to the platform")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if g.state != StatePaused || !g.State().Paused {
		t.Fatalf("state = %q, expected paused", g.state)
	}

	tickBefore := g.tick
	for i := 0; i < 10; i++ {
		in := core.NewInputFrame()
		in.Set(core.ActionLeft)
		g.Step(in)
	}
	if g.tick != tickBefore {
		t.Error("paused game should not advance ticks")
	}

	g.Step(pause)
	if g.state != StatePlaying {
		t.Errorf("state = %q, expected playing after unpause", g.state)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t)
	g.player.Lives = 1
	g.ghosts[0].Teleport(g.player.Tile())
	g.resolveCollisions()
	if g.state != StateGameOver {
		t.Fatal("setup: expected game over")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)

	if g.state != StatePlaying || g.score != 0 {
		t.Errorf("restart: state=%q score=%d", g.state, g.score)
	}
	if g.player.Lives != g.cfg.Gameplay.Lives {
		t.Errorf("restart lives = %d", g.player.Lives)
	}
}

func TestGameDeterminism(t *testing.T) {
	script := func(i int) core.InputFrame {
		in := core.NewInputFrame()
		switch {
		case i < 50:
			in.Set(core.ActionLeft)
		case i < 100:
			in.Set(core.ActionUp)
		case i < 150:
			in.Set(core.ActionRight)
		default:
			in.Set(core.ActionDown)
		}
		return in
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testRuntime())
		for i := 0; i < 300; i++ {
			if res := g.Step(script(i)); res.State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("determinism failed: hashes differ (%d vs %d)", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("determinism failed: scores differ (%d vs %d)", snap1.Score, snap2.Score)
	}
}

func TestRenderFitsBuffer(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// HUD present and some maze drawn.
	if screen.Row(0) == "" {
		t.Fatal("empty screen row")
	}
	found := false
	for y := 0; y < screen.Height() && !found; y++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.Get(x, y) == WallChar {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no maze walls rendered")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: 60, Seed: 1})
	if !g.screenTooSmall {
		t.Fatal("10x5 should be too small for the default maze")
	}

	// Stepping is a no-op and rendering shows the hint.
	tick := g.tick
	g.Step(core.NewInputFrame())
	if g.tick != tick {
		t.Error("too-small game should not simulate")
	}
	screen := core.NewScreen(10, 5)
	g.Render(screen)
}
