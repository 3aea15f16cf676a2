package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/twenty48/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)
	hudHeight  = 3
)

// tileColor maps a tile value to a display color. Pairs of values share a
// color so the palette climbs with the powers of two.
func tileColor(val int) core.Color {
	switch {
	case val <= 2:
		return core.ColorWhite
	case val <= 8:
		return core.ColorCyan
	case val <= 32:
		return core.ColorMagenta
	case val <= 128:
		return core.ColorYellow
	case val <= 512:
		return core.ColorGreen
	case val <= 2048:
		return core.ColorRed
	default:
		return core.ColorOrange
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := BoardSize*cellWidth + 1  // +1 for right border
	boardH := BoardSize*cellHeight + 1 // +1 for bottom border

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the title, score, and move counter.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "Just another 2048 game"
	titleX := (g.screenW - len(title)) / 2
	dst.DrawText(titleX, 0, title)

	snap := g.session.Snapshot()

	// The "!" marker flags a rejected move, the "(+n)" suffix the score
	// gained by the last accepted one.
	marker := ' '
	if g.session.LastRejected() {
		marker = '!'
	}
	movesStr := fmt.Sprintf("Moves: %d %c", snap.Moves, marker)
	dst.DrawText(boardX, 1, movesStr)

	scoreStr := fmt.Sprintf("Score: %d", snap.Score)
	if g.session.LastDelta() > 0 {
		scoreStr = fmt.Sprintf("Score: %d (+%d)", snap.Score, g.session.LastDelta())
	}
	dst.DrawText(boardX, 2, scoreStr)

	var infoStr string
	if g.mode == ModeClassic {
		infoStr = fmt.Sprintf("Goal: %d", g.rules.WinningTile)
	} else {
		infoStr = fmt.Sprintf("Max: %d", snap.MaxTile)
	}
	infoX := boardX + boardW - len(infoStr)
	if infoX < boardX {
		infoX = boardX
	}
	dst.DrawText(infoX, 1, infoStr)
}

// renderBoard draws the 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	// Draw grid borders
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == BoardSize:
				corner = '┐'
			case y == BoardSize && x == 0:
				corner = '└'
			case y == BoardSize && x == BoardSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == BoardSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}

			if y < BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Draw tiles
	board := g.session.Board()
	for y := range BoardSize {
		for x := range BoardSize {
			val := board[y][x]
			if val == 0 {
				continue
			}

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := (cellWidth - 1 - len(valStr)) / 2
			if padLeft < 0 {
				padLeft = 0
			}

			dst.DrawTextColor(cellX+padLeft, cellY, valStr, tileColor(val))
		}
	}
}

// renderOverlays draws pause/win/loss overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	snap := g.session.Snapshot()

	switch snap.Status {
	case StatusWon:
		goalStr := fmt.Sprintf("You reached %d!", g.rules.WinningTile)
		g.drawOverlay(dst, centerX, centerY, "YOU WIN", goalStr, "Press R to restart")
	case StatusLost:
		maxStr := fmt.Sprintf("Max tile: %d", snap.MaxTile)
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press R to restart")
	}
}

// drawOverlay draws a centered boxed text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | P: Pause | R: Restart | Q: Quit"
}
