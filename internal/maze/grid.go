package maze

import "math"

// CellKind classifies a single maze cell.
type CellKind uint8

const (
	CellWall CellKind = iota
	CellOpen
	CellPellet
	CellPowerPellet
	CellEmpty // walkable corridor with nothing to eat (tunnels, ghost house)
)

// DefaultTileSize is the default edge length of one cell in pixels.
const DefaultTileSize = 36.0

// Grid is the maze for one level: a rectangular matrix of cells with
// wrap-around neighbor lookup on both axes. The layout itself is fixed at
// construction; only pellet cells change state, and only through EatPellet.
type Grid struct {
	width    int
	height   int
	tileSize float64
	cells    []CellKind // row-major, length width*height

	pelletCount int
	playerSpawn Tile
	ghostSpawns []Tile
	spawnCursor int
}

// Width returns the grid width in tiles.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in tiles.
func (g *Grid) Height() int { return g.height }

// TileSize returns the pixel edge length of one cell.
func (g *Grid) TileSize() float64 { return g.tileSize }

// PixelWidth returns the maze width in pixels.
func (g *Grid) PixelWidth() float64 { return float64(g.width) * g.tileSize }

// PixelHeight returns the maze height in pixels.
func (g *Grid) PixelHeight() float64 { return float64(g.height) * g.tileSize }

// PlayerSpawn returns the tile marked as the player start.
func (g *Grid) PlayerSpawn() Tile { return g.playerSpawn }

// GhostSpawns returns all tiles marked as ghost starts.
func (g *Grid) GhostSpawns() []Tile {
	out := make([]Tile, len(g.ghostSpawns))
	copy(out, g.ghostSpawns)
	return out
}

// NextGhostSpawn returns the next spawn tile, cycling through the layout's
// ghost spawn positions in order.
func (g *Grid) NextGhostSpawn() Tile {
	t := g.ghostSpawns[g.spawnCursor%len(g.ghostSpawns)]
	g.spawnCursor++
	return t
}

// Normalize wraps a tile's coordinates into grid bounds using modulo
// arithmetic on both axes (toroidal topology).
func (g *Grid) Normalize(t Tile) Tile {
	return Tile{
		Col: ((t.Col % g.width) + g.width) % g.width,
		Row: ((t.Row % g.height) + g.height) % g.height,
	}
}

// CellAt returns the kind of the cell at the given tile, wrap-aware.
func (g *Grid) CellAt(t Tile) CellKind {
	n := g.Normalize(t)
	return g.cells[n.Row*g.width+n.Col]
}

// IsOpen reports whether the tile can be entered: every kind except wall.
func (g *Grid) IsOpen(t Tile) bool {
	return g.CellAt(t) != CellWall
}

// NeighborInDirection applies the direction's unit offset and wraps.
// It does not check openness; callers filter with IsOpen.
func (g *Grid) NeighborInDirection(t Tile, d Dir) Tile {
	dc, dr := d.Delta()
	return g.Normalize(Tile{Col: t.Col + dc, Row: t.Row + dr})
}

// OpenNeighbors returns the open cardinal neighbors of a tile in the fixed
// visitation order up, left, down, right.
func (g *Grid) OpenNeighbors(t Tile) []Tile {
	out := make([]Tile, 0, 4)
	for _, d := range PlanOrder {
		n := g.NeighborInDirection(t, d)
		if g.IsOpen(n) {
			out = append(out, n)
		}
	}
	return out
}

// DirTo returns the direction that moves one wrapped step from a tile to an
// adjacent tile, or DirNone if the tiles are not wrap-aware neighbors.
func (g *Grid) DirTo(from, to Tile) Dir {
	from = g.Normalize(from)
	to = g.Normalize(to)
	for _, d := range PlanOrder {
		if g.NeighborInDirection(from, d) == to {
			return d
		}
	}
	return DirNone
}

// GridToPixel returns the pixel center of a tile.
func (g *Grid) GridToPixel(t Tile) (float64, float64) {
	n := g.Normalize(t)
	return (float64(n.Col) + 0.5) * g.tileSize, (float64(n.Row) + 0.5) * g.tileSize
}

// PixelToGrid returns the tile containing a pixel position. Exact inverse of
// GridToPixel on tile centers.
func (g *Grid) PixelToGrid(x, y float64) Tile {
	return g.Normalize(Tile{
		Col: int(math.Floor(x / g.tileSize)),
		Row: int(math.Floor(y / g.tileSize)),
	})
}

// wrapStep returns the minimal signed tile delta from a to b along one axis
// of length n, treating the axis as circular.
func wrapStep(a, b, n int) int {
	d := b - a
	half := n / 2
	if d > half {
		d -= n
	} else if d < -half {
		d += n
	}
	return d
}

// Interpolate returns the pixel position a fraction of the way through a
// move between two adjacent tiles, taking the short way across wrapped
// edges so agents glide through tunnels instead of flying across the map.
func (g *Grid) Interpolate(from, to Tile, progress float64) (float64, float64) {
	from = g.Normalize(from)
	to = g.Normalize(to)

	sx, sy := g.GridToPixel(from)
	dc := wrapStep(from.Col, to.Col, g.width)
	dr := wrapStep(from.Row, to.Row, g.height)

	x := sx + float64(dc)*g.tileSize*progress
	y := sy + float64(dr)*g.tileSize*progress

	// Normalize back into the visible pixel range after a wrap move.
	x = math.Mod(x+g.PixelWidth(), g.PixelWidth())
	y = math.Mod(y+g.PixelHeight(), g.PixelHeight())
	return x, y
}

// WrapDistance returns the straight-line distance between two tiles in tile
// units, measured on the torus (shortest way around each axis).
func (g *Grid) WrapDistance(a, b Tile) float64 {
	a = g.Normalize(a)
	b = g.Normalize(b)
	dc := float64(wrapStep(a.Col, b.Col, g.width))
	dr := float64(wrapStep(a.Row, b.Row, g.height))
	return math.Sqrt(dc*dc + dr*dr)
}

// PixelWrapDistance returns the toroidal distance between two pixel
// positions. Used for collision checks on settled positions.
func (g *Grid) PixelWrapDistance(ax, ay, bx, by float64) float64 {
	dx := math.Abs(ax - bx)
	if w := g.PixelWidth(); dx > w/2 {
		dx = w - dx
	}
	dy := math.Abs(ay - by)
	if h := g.PixelHeight(); dy > h/2 {
		dy = h - dy
	}
	return math.Sqrt(dx*dx + dy*dy)
}

// EatPellet consumes a pellet or power pellet at the given tile. It returns
// the kind that was eaten (CellPellet or CellPowerPellet) and true, or
// (CellOpen, false) when there was nothing to eat.
func (g *Grid) EatPellet(t Tile) (CellKind, bool) {
	n := g.Normalize(t)
	idx := n.Row*g.width + n.Col
	switch g.cells[idx] {
	case CellPellet:
		g.cells[idx] = CellOpen
		g.pelletCount--
		return CellPellet, true
	case CellPowerPellet:
		g.cells[idx] = CellOpen
		g.pelletCount--
		return CellPowerPellet, true
	default:
		return CellOpen, false
	}
}

// RemainingPellets counts pellets plus power pellets still uneaten.
func (g *Grid) RemainingPellets() int {
	return g.pelletCount
}

// NearestOpenTile returns the preferred tile when it is open, or the
// closest open tile found by a breadth-first ring search otherwise.
func (g *Grid) NearestOpenTile(preferred Tile) Tile {
	preferred = g.Normalize(preferred)
	if g.IsOpen(preferred) {
		return preferred
	}
	visited := map[Tile]bool{preferred: true}
	queue := []Tile{preferred}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range PlanOrder {
			n := g.NeighborInDirection(cur, d)
			if visited[n] {
				continue
			}
			if g.IsOpen(n) {
				return n
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}
	// A maze with no open tile at all fails validation at parse time.
	return preferred
}
