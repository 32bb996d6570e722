package game

// moveTrace records, per cell, whether the tile there is the result of
// a merge during the current tilt. A merged tile never merges again in
// the same tilt. The trace lives for exactly one tilt.
type moveTrace [][]bool

func newMoveTrace(size int) moveTrace {
	t := make(moveTrace, size)
	for i := range t {
		t[i] = make([]bool, size)
	}
	return t
}

// Tilt slides all tiles toward dir, merging adjacent equal pairs in the
// direction of motion. It mutates b in place and returns whether any
// tile moved or merged, plus the total value of tiles created by merges
// (the score delta for this move).
//
// The algorithm only knows how to slide "up"; the view remaps board
// coordinates so the requested direction becomes up. Rows are processed
// top-down within each column so the leading tiles settle first: three
// equal tiles in a row merge only the pair closest to the target edge.
func Tilt(b *Board, dir Direction) (changed bool, scoreDelta int) {
	v := view{b: b, dir: dir}
	size := v.size()
	merged := newMoveTrace(size)

	for col := 0; col < size; col++ {
		for row := size - 1; row >= 0; row-- {
			t := v.tile(col, row)
			if t == nil {
				continue
			}
			dest := destinationRow(v, merged, col, row)
			if dest == row {
				continue
			}
			changed = true
			if v.move(col, dest, t) {
				scoreDelta += 2 * t.Value()
				merged[col][dest] = true
			}
		}
	}
	return changed, scoreDelta
}

// destinationRow scans upward from (col, row) for the row the tile
// lands on. An equal-valued tile that has not merged this tilt is a
// merge target; any other occupied cell stops the slide just below it.
func destinationRow(v view, merged moveTrace, col, row int) int {
	value := v.tile(col, row).Value()
	dest := row
	for r := row + 1; r < v.size(); r++ {
		dest = r
		t := v.tile(col, r)
		if t == nil {
			continue
		}
		if t.Value() != value || merged[col][r] {
			dest = r - 1
		}
		break
	}
	return dest
}
