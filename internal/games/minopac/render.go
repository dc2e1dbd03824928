package minopac

import (
	"fmt"

	"github.com/vovakirdan/tui-minopac/internal/core"
	"github.com/vovakirdan/tui-minopac/internal/maze"
)

// Visual characters for rendering
const (
	WallChar        = '█'
	PelletChar      = '·'
	PowerPelletChar = '●'
	PlayerChar      = '@'
	GhostChar       = 'M'
	FrightenedChar  = 'm'
	EatenChar       = '"' // just the eyes heading home
)

// personalityColors maps ghost personalities to their normal-mode color.
var personalityColors = map[string]core.Color{
	"chaser":      core.ColorRed,
	"ambusher":    core.ColorMagenta,
	"wanderer":    core.ColorCyan,
	"accelerator": core.ColorOrange,
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderMaze(dst)
	g.renderGhosts(dst)
	g.renderPlayer(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the score, lives, and pellet count.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(1, 0, scoreText)

	livesText := fmt.Sprintf("Lives: %d", g.player.Lives)
	dst.DrawTextCentered(0, livesText)

	pelletsText := fmt.Sprintf("Pellets: %d", g.grid.RemainingPellets())
	dst.DrawText(dst.Width()-len(pelletsText)-1, 0, pelletsText)

	// Fright countdown on row 1, separator otherwise
	if fr := g.frightRemaining(); fr > 0 {
		dst.DrawTextColored(1, 1, fmt.Sprintf("FRIGHT %.1fs", fr), core.ColorBrightBlue)
	} else {
		dst.DrawHLine(0, 1, dst.Width(), '─')
	}
}

// renderMaze draws walls and uneaten pellets.
func (g *Game) renderMaze(dst *core.Screen) {
	for row := 0; row < g.grid.Height(); row++ {
		for col := 0; col < g.grid.Width(); col++ {
			x := g.mazeX + col
			y := g.mazeY + row
			switch g.grid.CellAt(maze.T(col, row)) {
			case maze.CellWall:
				dst.SetColored(x, y, WallChar, core.ColorBlue)
			case maze.CellPellet:
				dst.SetColored(x, y, PelletChar, core.ColorWhite)
			case maze.CellPowerPellet:
				dst.SetColored(x, y, PowerPelletChar, core.ColorYellow)
			}
		}
	}
}

// actorScreenPos maps an actor's interpolated pixel position to the screen
// cell containing it.
func (g *Game) actorScreenPos(a *Actor) (int, int) {
	px, py := a.PixelPos()
	t := g.grid.PixelToGrid(px, py)
	return g.mazeX + t.Col, g.mazeY + t.Row
}

// renderPlayer draws the player on top of everything else.
func (g *Game) renderPlayer(dst *core.Screen) {
	x, y := g.actorScreenPos(g.player.Actor)
	dst.SetColored(x, y, PlayerChar, core.ColorBrightYellow)
}

// renderGhosts draws each ghost in its mode's glyph and color.
func (g *Game) renderGhosts(dst *core.Screen) {
	for _, gh := range g.ghosts {
		x, y := g.actorScreenPos(gh.Actor)
		switch gh.Mode() {
		case ModeFrightened:
			dst.SetColored(x, y, FrightenedChar, core.ColorBrightBlue)
		case ModeEaten:
			dst.SetColored(x, y, EatenChar, core.ColorGray)
		default:
			color, ok := personalityColors[gh.Personality()]
			if !ok {
				color = core.ColorRed
			}
			dst.SetColored(x, y, GhostChar, color)
		}
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "MAZE CLEARED!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
