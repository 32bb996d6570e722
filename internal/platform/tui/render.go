package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"twenty48/internal/core"
	"twenty48/internal/game"
)

const (
	cellWidth  = 7 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)
	hudHeight  = 3
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
}

// tileColor maps a tile value to a cell color. The ramp repeats for
// values beyond the winning tile.
func tileColor(v int) core.Color {
	switch v {
	case 2:
		return core.ColorGray
	case 4:
		return core.ColorWhite
	case 8:
		return core.ColorYellow
	case 16:
		return core.ColorBrightYellow
	case 32:
		return core.ColorOrange
	case 64:
		return core.ColorRed
	case 128:
		return core.ColorBrightRed
	case 256:
		return core.ColorMagenta
	case 512:
		return core.ColorBrightMagenta
	case 1024:
		return core.ColorCyan
	case 2048:
		return core.ColorBrightCyan
	case 4096:
		return core.ColorGreen
	default:
		return core.ColorBrightGreen
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// boardDims returns the drawn size of the grid for a given board size.
func boardDims(size int) (w, h int) {
	return size*cellWidth + 1, size*cellHeight + 1
}

// minScreenDims returns the smallest screen that fits the board plus HUD.
func minScreenDims(size int) (w, h int) {
	bw, bh := boardDims(size)
	return bw + 2, bh + hudHeight + 2
}

// drawGame renders the full game view: HUD, grid, tiles and overlays.
func drawGame(dst *core.Screen, g *game.Game, best, peak int) {
	dst.Clear()

	minW, minH := minScreenDims(g.Size())
	if dst.Width() < minW || dst.Height() < minH {
		drawTooSmall(dst)
		return
	}

	boardW, boardH := boardDims(g.Size())
	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight + 1

	drawHUD(dst, g, boardX, boardW, best, peak)
	drawBoard(dst, g, boardX, boardY)
	drawOverlays(dst, g, boardX, boardY, boardW, boardH)
}

// drawTooSmall shows a "window too small" message.
func drawTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// drawHUD draws the title, score line and target info.
func drawHUD(dst *core.Screen, g *game.Game, boardX, boardW, best, peak int) {
	title := "2048"
	titleX := boardX + (boardW-len(title))/2
	dst.DrawText(titleX, 0, title)

	scoreStr := fmt.Sprintf("Score: %d", g.Score())
	dst.DrawText(boardX, 1, scoreStr)

	bestStr := fmt.Sprintf("Best: %d", best)
	bestX := core.Max(boardX+boardW-len(bestStr), boardX+len(scoreStr)+2)
	dst.DrawText(bestX, 1, bestStr)

	infoStr := fmt.Sprintf("Target: %d", g.WinningTile())
	dst.DrawText(boardX, 2, infoStr)

	peakStr := fmt.Sprintf("Peak: %d", peak)
	peakX := core.Max(boardX+boardW-len(peakStr), boardX+len(infoStr)+2)
	dst.DrawText(peakX, 2, peakStr)
}

// drawBoard draws the grid with tiles. Board row 0 is the bottom row,
// so screen rows are drawn in reverse.
func drawBoard(dst *core.Screen, g *game.Game, boardX, boardY int) {
	size := g.Size()

	// Draw grid borders
	for y := range size + 1 {
		for x := range size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < size {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}

			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Draw tiles
	for col := range size {
		for row := range size {
			t := g.Tile(col, row)
			if t == nil {
				continue
			}

			cellX := boardX + col*cellWidth + 1
			cellY := boardY + (size-1-row)*cellHeight + 1

			valStr := strconv.Itoa(t.Value())
			padLeft := core.Max((cellWidth-1-len(valStr))/2, 0)

			dst.DrawTextColored(cellX+padLeft, cellY, valStr, tileColor(t.Value()))
		}
	}
}

// drawOverlays draws the win or game over box.
func drawOverlays(dst *core.Screen, g *game.Game, boardX, boardY, boardW, boardH int) {
	if !g.GameOver() {
		return
	}

	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.MaxTile() >= g.WinningTile() {
		scoreStr := fmt.Sprintf("Score: %d", g.Score())
		drawOverlayBox(dst, centerX, centerY, "YOU WIN!", scoreStr, "Press R for a new game")
		return
	}

	maxStr := fmt.Sprintf("Max tile: %d", g.MaxTile())
	drawOverlayBox(dst, centerX, centerY, "GAME OVER", maxStr, "Press R for a new game")
}

// drawOverlayBox draws a centered boxed message over the board.
func drawOverlayBox(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.Rect{X: centerX - boxW/2, Y: centerY - boxH/2, W: boxW, H: boxH}

	// Clear area behind overlay
	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}
