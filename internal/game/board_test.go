package game

import (
	"errors"
	"testing"
)

func TestBoardFromRows(t *testing.T) {
	b := BoardFromRows([][]int{
		{0, 0, 0, 8},
		{0, 0, 0, 0},
		{0, 4, 0, 0},
		{2, 0, 0, 0},
	})

	// rows[0] is the top row, so the 2 sits at the lower-left corner.
	if tile := b.Tile(0, 0); tile == nil || tile.Value() != 2 {
		t.Errorf("Tile(0,0) = %v, want 2", tile)
	}
	if tile := b.Tile(1, 1); tile == nil || tile.Value() != 4 {
		t.Errorf("Tile(1,1) = %v, want 4", tile)
	}
	if tile := b.Tile(3, 3); tile == nil || tile.Value() != 8 {
		t.Errorf("Tile(3,3) = %v, want 8", tile)
	}
	if tile := b.Tile(2, 2); tile != nil {
		t.Errorf("Tile(2,2) = %v, want empty", tile)
	}
}

func TestBoardAddTile(t *testing.T) {
	b := NewBoard(4)

	if err := b.AddTile(NewTile(2, 1, 2)); err != nil {
		t.Fatalf("AddTile() failed: %v", err)
	}
	if tile := b.Tile(1, 2); tile == nil || tile.Value() != 2 {
		t.Errorf("Tile(1,2) = %v, want 2", tile)
	}

	// Occupied cell is a contract error.
	err := b.AddTile(NewTile(4, 1, 2))
	if !errors.Is(err, ErrOccupied) {
		t.Errorf("AddTile onto occupied cell: err = %v, want ErrOccupied", err)
	}

	// Out-of-range cells are contract errors too.
	err = b.AddTile(NewTile(2, 4, 0))
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("AddTile out of range: err = %v, want ErrOutOfRange", err)
	}
	err = b.AddTile(NewTile(2, 0, -1))
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("AddTile negative row: err = %v, want ErrOutOfRange", err)
	}
}

func TestBoardMoveRelocate(t *testing.T) {
	b := NewBoard(4)
	tile := NewTile(2, 0, 0)
	if err := b.AddTile(tile); err != nil {
		t.Fatalf("AddTile() failed: %v", err)
	}

	merged := b.Move(0, 3, tile)

	if merged {
		t.Error("moving onto an empty cell should not report a merge")
	}
	if b.Tile(0, 0) != nil {
		t.Error("origin cell should be empty after move")
	}
	dst := b.Tile(0, 3)
	if dst == nil || dst.Value() != 2 {
		t.Errorf("Tile(0,3) = %v, want 2", dst)
	}
	if dst.Col() != 0 || dst.Row() != 3 {
		t.Errorf("moved tile position = (%d,%d), want (0,3)", dst.Col(), dst.Row())
	}
}

func TestBoardMoveMerge(t *testing.T) {
	b := NewBoard(4)
	mover := NewTile(2, 0, 0)
	if err := b.AddTile(mover); err != nil {
		t.Fatalf("AddTile() failed: %v", err)
	}
	if err := b.AddTile(NewTile(2, 0, 3)); err != nil {
		t.Fatalf("AddTile() failed: %v", err)
	}

	merged := b.Move(0, 3, mover)

	if !merged {
		t.Error("moving onto an equal tile should report a merge")
	}
	if b.Tile(0, 0) != nil {
		t.Error("origin cell should be empty after merge")
	}
	dst := b.Tile(0, 3)
	if dst == nil || dst.Value() != 4 {
		t.Errorf("Tile(0,3) = %v, want 4 after merge", dst)
	}
}

func TestBoardClear(t *testing.T) {
	b := BoardFromRows([][]int{
		{2, 4},
		{8, 16},
	})

	b.Clear()

	for col := 0; col < b.Size(); col++ {
		for row := 0; row < b.Size(); row++ {
			if b.Tile(col, row) != nil {
				t.Fatalf("Tile(%d,%d) not empty after Clear", col, row)
			}
		}
	}
}

func TestBoardEqual(t *testing.T) {
	rows := [][]int{
		{2, 0, 0, 0},
		{0, 4, 0, 0},
		{0, 0, 8, 0},
		{0, 0, 0, 16},
	}

	a := BoardFromRows(rows)
	b := BoardFromRows(rows)
	if !a.Equal(b) {
		t.Error("identical boards should be equal")
	}

	if err := b.AddTile(NewTile(2, 0, 0)); err != nil {
		t.Fatalf("AddTile() failed: %v", err)
	}
	if a.Equal(b) {
		t.Error("boards with different contents should not be equal")
	}

	small := NewBoard(3)
	if a.Equal(small) {
		t.Error("boards of different sizes should not be equal")
	}
	if a.Equal(nil) {
		t.Error("a board should not equal nil")
	}
}
