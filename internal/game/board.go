package game

import (
	"errors"
	"fmt"
)

// DefaultSize is the classic 2048 board dimension.
const DefaultSize = 4

// ErrOccupied is returned when a tile is added to a non-empty cell.
var ErrOccupied = errors.New("game: cell already occupied")

// ErrOutOfRange is returned when a coordinate falls outside the board.
var ErrOutOfRange = errors.New("game: coordinate out of range")

// Board is an N×N grid of optional tiles, addressed by (column, row)
// with (0, 0) at the lower-left corner. The board owns its tiles
// exclusively; each cell holds at most one tile.
type Board struct {
	size int
	grid [][]*Tile // indexed [col][row]
}

// NewBoard creates an empty board of the given dimension.
func NewBoard(size int) *Board {
	if size < 2 {
		panic(fmt.Sprintf("game: board size %d too small", size))
	}
	b := &Board{size: size}
	b.allocate()
	return b
}

// BoardFromRows creates a board from tile values given in visual order:
// rows[0] is the top row, rows[len-1] the bottom row, and a zero means
// an empty cell. Handy for tests and debugging.
func BoardFromRows(rows [][]int) *Board {
	b := NewBoard(len(rows))
	for r, rowVals := range rows {
		if len(rowVals) != b.size {
			panic(fmt.Sprintf("game: row %d has %d values, want %d", r, len(rowVals), b.size))
		}
		row := b.size - 1 - r
		for col, v := range rowVals {
			if v != 0 {
				b.grid[col][row] = NewTile(v, col, row)
			}
		}
	}
	return b
}

func (b *Board) allocate() {
	b.grid = make([][]*Tile, b.size)
	for col := range b.grid {
		b.grid[col] = make([]*Tile, b.size)
	}
}

// Size returns the number of cells on one side of the board.
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether (col, row) is a valid cell coordinate.
func (b *Board) InBounds(col, row int) bool {
	return col >= 0 && col < b.size && row >= 0 && row < b.size
}

// Tile returns the tile at (col, row), or nil for an empty cell.
func (b *Board) Tile(col, row int) *Tile {
	return b.grid[col][row]
}

// AddTile places a tile on the board. The target cell must be empty;
// adding onto an occupied or out-of-range cell is a contract error.
func (b *Board) AddTile(t *Tile) error {
	if !b.InBounds(t.col, t.row) {
		return fmt.Errorf("game: add tile at (%d,%d): %w", t.col, t.row, ErrOutOfRange)
	}
	if b.grid[t.col][t.row] != nil {
		return fmt.Errorf("game: add tile at (%d,%d): %w", t.col, t.row, ErrOccupied)
	}
	b.grid[t.col][t.row] = t
	return nil
}

// Move relocates t to (col, row), merging if the destination holds a
// tile of equal value. Returns true iff a merge occurred. The engine
// only ever moves a tile onto an empty cell or an equal-valued tile;
// anything else indicates a bug in the caller.
func (b *Board) Move(col, row int, t *Tile) bool {
	dst := b.grid[col][row]
	b.grid[t.col][t.row] = nil

	if dst == nil {
		b.grid[col][row] = NewTile(t.value, col, row)
		return false
	}
	if dst.value != t.value {
		panic(fmt.Sprintf("game: cannot move %v onto %v", t, dst))
	}
	b.grid[col][row] = NewTile(2*t.value, col, row)
	return true
}

// Clear removes all tiles from the board.
func (b *Board) Clear() {
	b.allocate()
}

// Equal reports whether two boards hold the same tile values in the
// same cells. Comparison is structural, cell by cell.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	for col := 0; col < b.size; col++ {
		for row := 0; row < b.size; row++ {
			tv, ov := 0, 0
			if t := b.grid[col][row]; t != nil {
				tv = t.value
			}
			if t := other.grid[col][row]; t != nil {
				ov = t.value
			}
			if tv != ov {
				return false
			}
		}
	}
	return true
}
