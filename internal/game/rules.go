package game

// MaxPiece is the default winning tile value.
const MaxPiece = 2048

// Cell is a board coordinate.
type Cell struct {
	Col, Row int
}

// EmptySpaceExists reports whether any cell on the board is empty.
func EmptySpaceExists(b *Board) bool {
	for col := 0; col < b.Size(); col++ {
		for row := 0; row < b.Size(); row++ {
			if b.Tile(col, row) == nil {
				return true
			}
		}
	}
	return false
}

// MaxTileExists reports whether any tile has reached the target value.
func MaxTileExists(b *Board, target int) bool {
	for col := 0; col < b.Size(); col++ {
		for row := 0; row < b.Size(); row++ {
			if t := b.Tile(col, row); t != nil && t.Value() == target {
				return true
			}
		}
	}
	return false
}

// AtLeastOneMoveExists reports whether any tilt could change the board:
// either an empty cell exists, or two orthogonally adjacent tiles hold
// equal values.
func AtLeastOneMoveExists(b *Board) bool {
	if EmptySpaceExists(b) {
		return true
	}
	for col := 0; col < b.Size(); col++ {
		for row := 0; row < b.Size(); row++ {
			value := b.Tile(col, row).Value()
			if row > 0 && b.Tile(col, row-1).Value() == value {
				return true
			}
			if row < b.Size()-1 && b.Tile(col, row+1).Value() == value {
				return true
			}
			if col > 0 && b.Tile(col-1, row).Value() == value {
				return true
			}
			if col < b.Size()-1 && b.Tile(col+1, row).Value() == value {
				return true
			}
		}
	}
	return false
}

// IsGameOver reports whether the game has reached a terminal state:
// the target tile exists, or no legal move remains.
func IsGameOver(b *Board, target int) bool {
	return MaxTileExists(b, target) || !AtLeastOneMoveExists(b)
}

// MaxTile returns the highest tile value on the board, or 0 if empty.
func MaxTile(b *Board) int {
	maxVal := 0
	for col := 0; col < b.Size(); col++ {
		for row := 0; row < b.Size(); row++ {
			if t := b.Tile(col, row); t != nil && t.Value() > maxVal {
				maxVal = t.Value()
			}
		}
	}
	return maxVal
}

// EmptyCells returns the coordinates of all empty cells.
func EmptyCells(b *Board) []Cell {
	var cells []Cell
	for col := 0; col < b.Size(); col++ {
		for row := 0; row < b.Size(); row++ {
			if b.Tile(col, row) == nil {
				cells = append(cells, Cell{Col: col, Row: row})
			}
		}
	}
	return cells
}
