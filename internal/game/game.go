package game

import (
	"fmt"
	"strings"
)

// Listener is notified synchronously after every committed change to a
// game: a tilt that moved something, a tile addition, or a clear.
// Notifications are fire-and-forget; the game does not depend on what
// listeners do.
type Listener interface {
	GameChanged(g *Game)
}

// Game holds the full state of one 2048 game: the owned board, the
// score, the high-water max score, and the game-over flag. It is the
// single writer of its board; all mutations re-evaluate the terminal
// condition immediately, so GameOver is always fresh.
type Game struct {
	board     *Board
	score     int
	maxScore  int
	gameOver  bool
	target    int
	listeners []Listener
}

// NewGame creates an empty game on a size×size board with the classic
// 2048 winning tile.
func NewGame(size int) *Game {
	return NewGameWithTarget(size, MaxPiece)
}

// NewGameWithTarget creates an empty game with a custom winning tile.
func NewGameWithTarget(size, target int) *Game {
	return &Game{
		board:  NewBoard(size),
		target: target,
	}
}

// NewGameFromRows creates a game from tile values in visual order (see
// BoardFromRows) with the given scores. The game-over flag is computed
// from the board. Used for testing.
func NewGameFromRows(rows [][]int, score, maxScore int) *Game {
	g := &Game{
		board:    BoardFromRows(rows),
		score:    score,
		maxScore: maxScore,
		target:   MaxPiece,
	}
	g.checkGameOver()
	return g
}

// AddListener registers a listener for change notifications.
func (g *Game) AddListener(l Listener) {
	g.listeners = append(g.listeners, l)
}

func (g *Game) notify() {
	for _, l := range g.listeners {
		l.GameChanged(g)
	}
}

// Tilt slides the board toward dir, applying merge scores and
// re-evaluating game over. Listeners are notified only if the board
// changed. Returns whether it did.
func (g *Game) Tilt(dir Direction) bool {
	changed, delta := Tilt(g.board, dir)
	g.score += delta
	g.checkGameOver()
	if changed {
		g.notify()
	}
	return changed
}

// AddTile places a tile on an empty cell and re-evaluates game over.
// Adding onto an occupied or out-of-range cell is a contract error.
func (g *Game) AddTile(t *Tile) error {
	if err := g.board.AddTile(t); err != nil {
		return err
	}
	g.checkGameOver()
	g.notify()
	return nil
}

// Clear empties the board and resets the score and game-over flag.
// The max score survives across games.
func (g *Game) Clear() {
	g.score = 0
	g.gameOver = false
	g.board.Clear()
	g.notify()
}

// checkGameOver recomputes the terminal state. On the transition to
// over, the max score high-water mark is raised to the current score.
func (g *Game) checkGameOver() {
	g.gameOver = IsGameOver(g.board, g.target)
	if g.gameOver && g.score > g.maxScore {
		g.maxScore = g.score
	}
}

// GameOver reports whether the game has ended, either by reaching the
// winning tile or by running out of moves.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// MaxScore returns the highest score reached at the end of any game.
func (g *Game) MaxScore() int {
	return g.maxScore
}

// WinningTile returns the tile value that ends the game when reached.
func (g *Game) WinningTile() int {
	return g.target
}

// Size returns the board dimension.
func (g *Game) Size() int {
	return g.board.Size()
}

// Tile returns the tile at (col, row), or nil for an empty cell.
func (g *Game) Tile(col, row int) *Tile {
	return g.board.Tile(col, row)
}

// MaxTile returns the highest tile value on the board.
func (g *Game) MaxTile() int {
	return MaxTile(g.board)
}

// Equal reports whether two games have the same board contents, score,
// and game-over state.
func (g *Game) Equal(other *Game) bool {
	if other == nil {
		return false
	}
	return g.score == other.score &&
		g.gameOver == other.gameOver &&
		g.board.Equal(other.board)
}

// String renders the game for debugging: the board top row first, then
// the score line.
func (g *Game) String() string {
	var sb strings.Builder
	sb.WriteString("\n[\n")
	for row := g.Size() - 1; row >= 0; row-- {
		for col := 0; col < g.Size(); col++ {
			if t := g.board.Tile(col, row); t == nil {
				sb.WriteString("|    ")
			} else {
				fmt.Fprintf(&sb, "|%4d", t.Value())
			}
		}
		sb.WriteString("|\n")
	}
	over := "not over"
	if g.gameOver {
		over = "over"
	}
	fmt.Fprintf(&sb, "] %d (max: %d) (game is %s)\n", g.score, g.maxScore, over)
	return sb.String()
}
