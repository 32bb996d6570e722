// Package game implements the rules of the 2048 sliding-tile puzzle:
// board state, directional tilts that slide and merge tiles, score
// tracking, and terminal-condition checks. It contains no UI or
// platform dependencies so the logic stays pure and testable.
package game

import "fmt"

// Tile is an immutable numbered piece occupying a single board cell.
// Tiles are created when placed on a board (by a spawner or a merge)
// and discarded when merged into another tile or when the board is
// cleared. Values are positive powers of two.
type Tile struct {
	value int
	col   int
	row   int
}

// NewTile creates a tile with the given value at (col, row).
func NewTile(value, col, row int) *Tile {
	return &Tile{value: value, col: col, row: row}
}

// Value returns the tile's value.
func (t *Tile) Value() int {
	return t.value
}

// Col returns the tile's current column.
func (t *Tile) Col() int {
	return t.col
}

// Row returns the tile's current row.
func (t *Tile) Row() int {
	return t.row
}

// String returns a short debug representation.
func (t *Tile) String() string {
	return fmt.Sprintf("%d@(%d,%d)", t.value, t.col, t.row)
}
