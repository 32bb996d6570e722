package game

import "math/rand"

// Spawner places new tiles on random empty cells. It lives outside the
// tilt rules: the engine never spawns, the driving layer decides when.
type Spawner struct {
	rng        *rand.Rand
	fourChance float64
}

// NewSpawner creates a spawner with a deterministic seed. fourChance is
// the probability of spawning a 4 instead of a 2 (0.10 in the classic
// game).
func NewSpawner(seed int64, fourChance float64) *Spawner {
	return &Spawner{
		rng:        rand.New(rand.NewSource(seed)),
		fourChance: fourChance,
	}
}

// Spawn adds one tile to a uniformly random empty cell of g's board.
// Returns false if the board is full.
func (s *Spawner) Spawn(g *Game) bool {
	cells := EmptyCells(g.board)
	if len(cells) == 0 {
		return false
	}
	cell := cells[s.rng.Intn(len(cells))]

	value := 2
	if s.rng.Float64() < s.fourChance {
		value = 4
	}

	// The cell was just observed empty and the core is single-writer,
	// so AddTile cannot fail here.
	_ = g.AddTile(NewTile(value, cell.Col, cell.Row))
	return true
}
