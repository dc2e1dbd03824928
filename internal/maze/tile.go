// Package maze provides the grid model for the maze-chase engine: cell
// lookup with toroidal wrap-around, pixel conversion, pellet bookkeeping,
// and shortest-path search. This package is UI-agnostic and deterministic.
package maze

import "fmt"

// Tile identifies a single grid cell by integer column and row.
type Tile struct {
	Col int
	Row int
}

// T is a convenience constructor for Tile.
func T(col, row int) Tile {
	return Tile{Col: col, Row: row}
}

// String returns a string representation of the tile.
func (t Tile) String() string {
	return fmt.Sprintf("(%d,%d)", t.Col, t.Row)
}

// Dir represents a movement direction: one of the four cardinals, or none.
type Dir uint8

const (
	DirNone Dir = iota
	DirUp
	DirLeft
	DirDown
	DirRight
)

// PlanOrder is the fixed direction priority used everywhere a tie between
// candidate moves must break deterministically.
var PlanOrder = [4]Dir{DirUp, DirLeft, DirDown, DirRight}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirUp:
		return "Up"
	case DirLeft:
		return "Left"
	case DirDown:
		return "Down"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the (dcol, drow) offset for moving one step in this
// direction. Up decreases Row, Down increases Row (screen coordinates).
func (d Dir) Delta() (dcol, drow int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirDown:
		return 0, 1
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction. DirNone is its own opposite.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirLeft:
		return DirRight
	case DirDown:
		return DirUp
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}
