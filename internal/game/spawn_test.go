package game

import "testing"

func TestSpawnerDeterministic(t *testing.T) {
	g1 := NewGame(4)
	g2 := NewGame(4)

	s1 := NewSpawner(12345, 0.10)
	s2 := NewSpawner(12345, 0.10)

	for i := 0; i < 2; i++ {
		s1.Spawn(g1)
		s2.Spawn(g2)
	}

	if !g1.Equal(g2) {
		t.Errorf("same seed should produce the same board:\n%v\nvs\n%v", g1, g2)
	}
}

func TestSpawnerFillsEmptyCell(t *testing.T) {
	g := NewGame(4)
	s := NewSpawner(42, 0.10)

	if !s.Spawn(g) {
		t.Fatal("Spawn() on an empty board should succeed")
	}

	if len(EmptyCells(g.board)) != 15 {
		t.Errorf("empty cells = %d after one spawn, want 15", len(EmptyCells(g.board)))
	}
	if mt := g.MaxTile(); mt != 2 && mt != 4 {
		t.Errorf("spawned tile value = %d, want 2 or 4", mt)
	}
}

func TestSpawnerFullBoard(t *testing.T) {
	g := NewGameFromRows([][]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2, 4},
		{8, 16, 32, 64},
	}, 0, 0)

	s := NewSpawner(7, 0.10)
	if s.Spawn(g) {
		t.Error("Spawn() on a full board should report failure")
	}
}

func TestSpawnerFourChance(t *testing.T) {
	// With fourChance 1.0 every spawn is a 4; with 0.0 every spawn is a 2.
	always4 := NewSpawner(1, 1.0)
	g := NewGame(4)
	always4.Spawn(g)
	if g.MaxTile() != 4 {
		t.Errorf("spawn with four chance 1.0 produced %d, want 4", g.MaxTile())
	}

	never4 := NewSpawner(1, 0.0)
	g2 := NewGame(4)
	never4.Spawn(g2)
	if g2.MaxTile() != 2 {
		t.Errorf("spawn with four chance 0.0 produced %d, want 2", g2.MaxTile())
	}
}
