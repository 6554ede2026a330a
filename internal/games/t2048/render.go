package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3

	boardWidth  = Size*cellWidth + 1  // +1 for right border
	boardHeight = Size*cellHeight + 1 // +1 for bottom border
)

// defaultPalette follows the classic tile colors: pale for 2 and 4, warming
// through orange and red, gold from 128 up.
var defaultPalette = map[int]core.Color{
	2:    core.ColorWhite,
	4:    core.ColorBrightWhite,
	8:    core.ColorOrange,
	16:   core.ColorOrange,
	32:   core.ColorBrightRed,
	64:   core.ColorRed,
	128:  core.ColorBrightYellow,
	256:  core.ColorBrightYellow,
	512:  core.ColorYellow,
	1024: core.ColorYellow,
	2048: core.ColorBrightGreen,
}

// themePalette layers configured tile colors over the default palette.
// Unknown color names are skipped.
func themePalette(theme config.ThemeConfig) map[int]core.Color {
	palette := make(map[int]core.Color, len(defaultPalette))
	for v, c := range defaultPalette {
		palette[v] = c
	}
	for v, name := range theme.TileColors {
		if c, ok := core.ParseColor(name); ok {
			palette[v] = c
		}
	}
	return palette
}

// tileColor returns the color of a tile value. Tiles beyond the palette are magenta.
func (g *Game) tileColor(v int) core.Color {
	if c, ok := g.palette[v]; ok {
		return c
	}
	return core.ColorBrightMagenta
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	// Calculate board position (centered)
	boardX := (g.screenW - boardWidth) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardWidth, boardHeight))
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and best score.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := "2048"
	dst.DrawTextColored(boardX+(boardWidth-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.session.Score))

	bestStr := fmt.Sprintf("Best: %d", g.session.BestScore)
	bestX := max(boardX+boardWidth-len(bestStr), boardX)
	dst.DrawText(bestX, 1, bestStr)

	info := fmt.Sprintf("Max: %d  Moves: %d", g.session.Board.MaxTile(), g.session.Moves)
	dst.DrawTextColored(boardX+(boardWidth-len(info))/2, 2, info, core.ColorGray)
}

// renderBoard draws the grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range Size + 1 {
		for x := range Size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.Set(px, py, gridCorner(x, y))

			if x < Size {
				dst.DrawHLine(px+1, py, cellWidth-1, '─')
			}
			if y < Size {
				dst.DrawVLine(px, py+1, cellHeight-1, '│')
			}
		}
	}

	for r := range Size {
		for c := range Size {
			val := g.session.Board.At(r, c)
			if val == 0 {
				continue
			}

			cellX := boardX + c*cellWidth + 1
			cellY := boardY + r*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := max((cellWidth-1-len(valStr))/2, 0)
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, g.tileColor(val))
		}
	}
}

// gridCorner picks the box-drawing rune for grid intersection (x, y).
func gridCorner(x, y int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == Size:
		return '┐'
	case y == Size && x == 0:
		return '└'
	case y == Size && x == Size:
		return '┘'
	case y == 0:
		return '┬'
	case y == Size:
		return '┴'
	case x == 0:
		return '├'
	case x == Size:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch {
	case g.paused:
		g.drawOverlay(dst, board, core.ColorDefault, "PAUSED", "Press P to resume")
	case g.session.GameOver:
		maxStr := fmt.Sprintf("Max tile: %d", g.session.Board.MaxTile())
		g.drawOverlay(dst, board, core.ColorBrightRed, "GAME OVER", maxStr, "Press R to restart")
	case g.winBanner:
		g.drawOverlay(dst, board, core.ColorBrightGreen, "YOU WIN!", "Keep going?")
	}
}

// drawOverlay draws a centered text box over the board.
func (g *Game) drawOverlay(dst *core.Screen, board core.Rect, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := board.Centered(maxLen+4, len(lines)+2)

	// Clear area behind overlay
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	centerX, _ := box.Center()
	for i, line := range lines {
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, color)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | P: Pause | R: New game | Q: Quit"
}
