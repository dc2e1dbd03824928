package maze

import "fmt"

// Layout characters understood by ParseLayout.
//
//	'#'  wall
//	'.'  pellet
//	'o'  power pellet (case-insensitive)
//	' '  open corridor with nothing to eat
//	'P'  player spawn (open)
//	'G'  ghost spawn (open)
const layoutChars = "#.o OPG"

// ParseLayout builds a Grid from textual rows. The layout must be
// rectangular, contain exactly one player spawn and at least one ghost
// spawn, and every spawn must have at least one open neighbor.
func ParseLayout(rows []string, tileSize float64) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("maze: empty layout")
	}
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}

	width := len(rows[0])
	height := len(rows)
	if width == 0 {
		return nil, fmt.Errorf("maze: empty first row")
	}

	g := &Grid{
		width:    width,
		height:   height,
		tileSize: tileSize,
		cells:    make([]CellKind, width*height),
	}

	playerFound := false
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("maze: row %d has length %d, expected %d", y, len(row), width)
		}
		for x, ch := range row {
			idx := y*width + x
			switch ch {
			case '#':
				g.cells[idx] = CellWall
			case '.':
				g.cells[idx] = CellPellet
				g.pelletCount++
			case 'o', 'O':
				g.cells[idx] = CellPowerPellet
				g.pelletCount++
			case ' ':
				g.cells[idx] = CellEmpty
			case 'P':
				if playerFound {
					return nil, fmt.Errorf("maze: multiple player spawns")
				}
				playerFound = true
				g.cells[idx] = CellOpen
				g.playerSpawn = T(x, y)
			case 'G':
				g.cells[idx] = CellOpen
				g.ghostSpawns = append(g.ghostSpawns, T(x, y))
			default:
				return nil, fmt.Errorf("maze: unknown layout char %q at (%d,%d), expected one of %q", ch, x, y, layoutChars)
			}
		}
	}

	if !playerFound {
		return nil, fmt.Errorf("maze: no player spawn (P) in layout")
	}
	if len(g.ghostSpawns) == 0 {
		return nil, fmt.Errorf("maze: no ghost spawns (G) in layout")
	}

	if len(g.OpenNeighbors(g.playerSpawn)) == 0 {
		return nil, fmt.Errorf("maze: player spawn %v has no open neighbor", g.playerSpawn)
	}
	for _, s := range g.ghostSpawns {
		if len(g.OpenNeighbors(s)) == 0 {
			return nil, fmt.Errorf("maze: ghost spawn %v has no open neighbor", s)
		}
	}

	return g, nil
}
