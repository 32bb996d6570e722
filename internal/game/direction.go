package game

// Direction is one of the four tilt directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// view presents a board under the perspective that makes dir look like
// "up", so the tilt algorithm only ever slides toward increasing rows.
// It is a pure coordinate remapping threaded through each tilt call;
// no tile data is copied and no orientation state is mutated.
type view struct {
	b   *Board
	dir Direction
}

// mapCoords translates view coordinates to board coordinates. In view
// space, increasing row always points toward the tilt direction.
func (v view) mapCoords(col, row int) (int, int) {
	n := v.b.Size() - 1
	switch v.dir {
	case DirDown:
		return col, n - row
	case DirLeft:
		return n - row, col
	case DirRight:
		return row, col
	default:
		return col, row
	}
}

func (v view) size() int {
	return v.b.Size()
}

func (v view) tile(col, row int) *Tile {
	bc, br := v.mapCoords(col, row)
	return v.b.Tile(bc, br)
}

func (v view) move(col, row int, t *Tile) bool {
	bc, br := v.mapCoords(col, row)
	return v.b.Move(bc, br, t)
}
