package slide

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/puzzle"
)

const (
	cellWidth    = 6 // Width of each cell (including left border)
	cellHeight   = 2 // Height of each cell (including top border)
	hudHeight    = 4 // Title, stats, status, spacer
	footerHeight = 2
)

// layout is the screen placement of the board grid.
type layout struct {
	size int
	grid core.Grid
}

func newLayout(size, screenW int) layout {
	g := core.Grid{Cols: size, Rows: size, CellW: cellWidth, CellH: cellHeight, Y: hudHeight}
	g.X = (screenW - g.Bounds().W) / 2
	return layout{size: size, grid: g}
}

// rect returns the board rectangle including borders.
func (l layout) rect() core.Rect {
	return l.grid.Bounds()
}

// indexAt maps a screen position inside a cell (not on a border) to a board index.
func (l layout) indexAt(x, y int) int {
	col, row, ok := l.grid.CellAt(x, y)
	if !ok {
		return -1
	}
	return row*l.size + col
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	g.renderHUD(dst, l)
	g.renderBoard(dst, l)
	g.renderFooter(dst, l)

	if g.session.Status() == puzzle.StatusWon {
		g.renderWin(dst, l)
	}
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

// renderHUD draws the title, move counter, clock and size.
func (g *Game) renderHUD(dst *core.Screen, l layout) {
	dst.DrawTextCentered(0, "S L I D I N G   P U Z Z L E")

	size := g.session.Size()
	stats := fmt.Sprintf("Moves: %d   Time: %s   Size: %dx%d",
		g.session.Moves(), puzzle.FormatElapsed(g.session.Elapsed()), size, size)
	dst.DrawTextCentered(1, stats)

	status := "Arrange the tiles in numerical order"
	if g.session.Status() == puzzle.StatusWon {
		status = "Solved! Press 3/4/5 to change size"
	}
	dst.DrawTextCentered(2, status)
}

// renderBoard draws the grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, l layout) {
	dst.DrawGrid(l.grid)

	board := g.session.Board()
	won := g.session.Status() == puzzle.StatusWon

	hinted := make(map[int]bool)
	if g.showHints && !won {
		for _, t := range puzzle.LegalTargets(board) {
			hinted[t] = true
		}
	}

	for i, n := 0, board.Len(); i < n; i++ {
		val := board.At(i)
		if val == puzzle.Blank {
			continue
		}

		row, col := board.RowCol(i)
		cellX, cellY := l.grid.Interior(col, row)

		color := core.ColorDefault
		switch {
		case won:
			color = core.ColorBrightGreen
		case g.cfg.UI.TileColors:
			color = core.TileColor(val)
		}

		valStr := strconv.Itoa(val)
		if hinted[i] {
			valStr = "[" + valStr + "]"
			color = core.ColorBrightWhite
		}

		padLeft := core.Clamp((cellWidth-1-len(valStr))/2, 0, cellWidth-1)
		dst.DrawTextColored(cellX+padLeft, cellY, valStr, color)
	}
}

// renderFooter draws the control hints below the board.
func (g *Game) renderFooter(dst *core.Screen, l layout) {
	y := l.rect().Bottom() + 1
	dst.DrawTextColored((g.screenW-len(g.Controls()))/2, y, g.Controls(), core.ColorGray)
}

// renderWin draws the congratulations overlay.
func (g *Game) renderWin(dst *core.Screen, l layout) {
	size := g.session.Size()
	summary := fmt.Sprintf("%dx%d in %d moves, %s", size, size,
		g.session.Moves(), puzzle.FormatElapsed(g.session.Elapsed()))

	cx, cy := l.rect().Center()
	g.drawOverlay(dst, cx, cy, "Congratulations!", summary, "R: New game")
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	x := core.Clamp(centerX-boxW/2, 0, max(g.screenW-boxW, 0))
	y := core.Clamp(centerY-boxH/2, 0, max(g.screenH-boxH, 0))
	box := core.NewRect(x, y, boxW, boxH)

	// Clear area behind overlay
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	for i, line := range lines {
		lineX := box.X + (boxW-len(line))/2
		dst.DrawTextColored(lineX, box.Y+1+i, line, core.ColorBrightYellow)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Slide | Click: Move tile | R: Restart | 3/4/5: Size | H: Hints | Q: Quit"
}
