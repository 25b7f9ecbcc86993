package hex2048

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/vovakirdan/hexshift/internal/core"
)

// Honeycomb layout: column = x, row = z - y (equivalently 2z + x).
// Cells in one column sit two rows apart; neighbouring columns are offset
// by one row, so every direction maps onto a screen diagonal or vertical.
const (
	cellWidth  = 7 // Characters per cell label
	colStep    = 8 // Horizontal distance between columns
	hudHeight  = 3
	boardTop   = hudHeight + 1
	footHeight = 2
)

// tileColors indexes by log2 of the tile value.
var tileColors = []core.Color{
	core.ColorGray,          // unused (1)
	core.ColorWhite,         // 2
	core.ColorBrightWhite,   // 4
	core.ColorYellow,        // 8
	core.ColorOrange,        // 16
	core.ColorBrightRed,     // 32
	core.ColorRed,           // 64
	core.ColorBrightYellow,  // 128
	core.ColorGreen,         // 256
	core.ColorBrightGreen,   // 512
	core.ColorCyan,          // 1024
	core.ColorBrightMagenta, // 2048
}

// TileColor returns the display color of a tile value.
func TileColor(value int) core.Color {
	if value <= 0 {
		return core.ColorGray
	}
	i := bits.Len(uint(value)) - 1
	if i >= len(tileColors) {
		return core.ColorMagenta
	}
	return tileColors[i]
}

// boardSize returns the character footprint of a hexagon of the given radius.
func boardSize(radius int) (w, h int) {
	limit := radius - 1
	return 2*limit*colStep + cellWidth, 4*limit + 1
}

// layoutSize returns the minimum screen size for a board of the given radius.
func layoutSize(radius int) (w, h int) {
	bw, bh := boardSize(radius)
	return bw + 2, boardTop + bh + footHeight
}

// cellOrigin returns the screen position of the left edge of cell c.
func cellOrigin(c Cube, radius, boardX, boardY int) (x, y int) {
	limit := radius - 1
	return boardX + (c.X+limit)*colStep, boardY + c.Z - c.Y + 2*limit
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	radius := g.resolver.Radius
	boardW, boardH := boardSize(radius)
	boardX := (g.screenW - boardW) / 2

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardTop)
	dst.DrawTextCentered(boardTop+boardH+1, g.Controls())
	g.renderOverlays(dst, boardX, boardTop, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := layoutSize(g.resolver.Radius)
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, g.screenW, g.screenH))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and mode line.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	dst.DrawTextCentered(0, g.Title())

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.score))

	var info string
	switch {
	case g.mode == ModeCampaign:
		info = fmt.Sprintf("Level %d/%d  Target: %d", g.levelIndex+1, LevelCount(), g.resolver.WinValue)
	case g.resolver.WinValue > 0:
		info = fmt.Sprintf("Target: %d", g.resolver.WinValue)
	default:
		info = fmt.Sprintf("Max: %d", g.board.MaxTile())
	}
	infoX := max(boardX+boardW-len(info), boardX)
	dst.DrawText(infoX, 1, info)

	dst.DrawTextCentered(2, fmt.Sprintf("Radius %d  Moves %d", g.resolver.Radius, g.moves))
}

// renderBoard draws every cell of the hexagon.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	radius := g.resolver.Radius
	fresh := make(map[Cube]bool, len(g.lastSpawn))
	for _, t := range g.lastSpawn {
		fresh[t.Pos] = true
	}

	for _, c := range FieldCoords(radius) {
		x, y := cellOrigin(c, radius, boardX, boardY)
		value := g.board.Get(c)

		var label string
		switch {
		case g.showCoords:
			label = c.Key()
		case value == 0:
			label = "·"
		case fresh[c]:
			label = "[" + strconv.Itoa(value) + "]"
		default:
			label = strconv.Itoa(value)
		}

		color := core.ColorGray
		if value > 0 {
			color = TileColor(value)
		}
		dst.DrawTextColor(x+centerPad(label), y, label, color)
	}
}

// centerPad returns the left padding that centers label in a cell.
func centerPad(label string) int {
	n := len([]rune(label))
	return max((cellWidth-n)/2, 0)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.levelCleared:
		targetStr := fmt.Sprintf("Target %d reached!", g.resolver.WinValue)
		if g.levelIndex >= LevelCount()-1 {
			g.drawOverlay(dst, centerX, centerY, targetStr, "Final level complete!")
		} else {
			next := GetLevel(g.levelIndex + 1)
			g.drawOverlay(dst, centerX, centerY, targetStr, fmt.Sprintf("Next: %s (radius %d)", next.Name, next.Radius))
		}
	case g.won && g.mode == ModeCampaign:
		g.drawOverlay(dst, centerX, centerY, "CAMPAIGN COMPLETE!", fmt.Sprintf("Score: %d", g.score), "Press R to restart")
	case g.won:
		g.drawOverlay(dst, centerX, centerY, "YOU WIN!", fmt.Sprintf("%d reached in %d moves", g.resolver.WinValue, g.moves), "Press R to restart")
	case g.gameOver:
		g.drawOverlay(dst, centerX, centerY, "NO MOVES LEFT", fmt.Sprintf("Max tile: %d", g.board.MaxTile()), "Press R to restart")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.Centered(centerX, centerY, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Q W E / A S D: Shift | C: Coords | P: Pause | R: Restart | Esc: Menu"
}
