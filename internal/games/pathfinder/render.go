package pathfinder

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/findpath/internal/config"
	"github.com/vovakirdan/findpath/internal/core"
	"github.com/vovakirdan/findpath/internal/maze"
)

const (
	cellWidth    = 3 // Screen columns per maze cell
	boardTop     = 4 // First screen row of the board frame
	buttonWidth  = 5 // "[ ▲ ]"
	buttonGap    = 1
	buttonsWidth = 3*buttonWidth + 2*buttonGap
	messageMaxW  = 64
)

// minSize returns the smallest screen that fits the board and controls.
func (g *Game) minSize() (w, h int) {
	grid := g.nav.Grid()
	w = core.Max(grid.Width()*cellWidth+2, buttonsWidth)
	h = boardTop + grid.Height() + 2
	if g.cfg.Controls.ShowButtons {
		h += 3
	}
	return w, h
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.buttons = g.buttons[:0]

	if g.nav.State().Completed {
		g.renderMessage(dst)
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	boxH := g.renderBoard(dst)

	if g.cfg.Controls.ShowButtons {
		g.renderButtons(dst, boardTop+boxH+1)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorRed)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

// renderHUD draws the title line and move counter.
func (g *Game) renderHUD(dst *core.Screen) {
	st := g.nav.State()
	title := fmt.Sprintf("%s - Stage %d", g.Title(), st.Stage)
	dst.DrawTextCentered(1, title, styleColor(g.cfg.Theme.Title))
	dst.DrawTextCentered(2, fmt.Sprintf("Moves: %d", st.Moves), core.ColorGray)
}

// renderBoard draws the active stage inside a frame and returns the frame height.
func (g *Game) renderBoard(dst *core.Screen) int {
	grid := g.nav.Grid()
	st := g.nav.State()

	boxW := grid.Width()*cellWidth + 2
	boxH := grid.Height() + 2
	boxX := (g.screenW - boxW) / 2

	dst.DrawBox(core.NewRect(boxX, boardTop, boxW, boxH), core.ColorDeepIndigo)

	for y := range grid.Height() {
		for x := range grid.Width() {
			p := maze.Position{X: x, Y: y}
			px := boxX + 1 + x*cellWidth
			py := boardTop + 1 + y

			style := g.styleFor(grid.At(p))
			if p == st.Position {
				style = g.cfg.Theme.Player
			}
			drawCell(dst, px, py, grid.At(p), style)
		}
	}

	return boxH
}

// drawCell fills one maze cell. Walls fill the full cell width; everything
// else is a centered glyph.
func drawCell(dst *core.Screen, x, y int, c maze.Cell, style config.CellStyle) {
	r, color := style.Rune(), style.ColorValue()
	if c == maze.Wall {
		for i := range cellWidth {
			dst.SetColored(x+i, y, r, color)
		}
		return
	}
	dst.SetColored(x+cellWidth/2, y, r, color)
}

// styleFor maps a cell value to its theme entry.
func (g *Game) styleFor(c maze.Cell) config.CellStyle {
	switch c {
	case maze.Wall:
		return g.cfg.Theme.Wall
	case maze.Advance:
		return g.cfg.Theme.Advance
	case maze.End:
		return g.cfg.Theme.End
	default:
		return g.cfg.Theme.Path
	}
}

// renderButtons draws the arrow pad and records its hit areas.
//
//	    [ ▲ ]
//	[ ◀ ] [ ▼ ] [ ▶ ]
func (g *Game) renderButtons(dst *core.Screen, top int) {
	left := (g.screenW - buttonsWidth) / 2
	step := buttonWidth + buttonGap

	g.addButton(dst, left+step, top, "▲", core.ActionUp)
	g.addButton(dst, left, top+1, "◀", core.ActionLeft)
	g.addButton(dst, left+step, top+1, "▼", core.ActionDown)
	g.addButton(dst, left+2*step, top+1, "▶", core.ActionRight)
}

func (g *Game) addButton(dst *core.Screen, x, y int, arrow string, action core.Action) {
	dst.DrawTextColored(x, y, "[ "+arrow+" ]", core.ColorWhite)
	g.buttons = append(g.buttons, button{
		rect:   core.NewRect(x, y, buttonWidth, 1),
		action: action,
	})
}

// renderMessage draws the closing message in a centered frame.
func (g *Game) renderMessage(dst *core.Screen) {
	boxW := core.Clamp(g.screenW-4, 12, messageMaxW)
	lines := core.WrapText(g.cfg.Message, boxW-4)

	// Frame, heart, blank, text, blank, hint.
	maxLines := core.Max(g.screenH-6, 1)
	if len(lines) > maxLines {
		lines = append(lines[:maxLines-1:maxLines-1], "…")
	}
	boxH := len(lines) + 6

	boxX := (g.screenW - boxW) / 2
	boxY := core.Max((g.screenH-boxH)/2, 0)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorPurple)

	end := g.cfg.Theme.End
	dst.DrawTextCentered(boxY+1, end.Glyph, end.ColorValue())

	msgColor := styleColor(g.cfg.Theme.Message)
	for i, line := range lines {
		x := boxX + (boxW-utf8.RuneCountInString(line))/2
		dst.DrawTextColored(x, boxY+3+i, line, msgColor)
	}

	dst.DrawTextCentered(boxY+boxH-2, "Enter/R: play again   Q: quit", core.ColorGray)
}

func styleColor(name string) core.Color {
	c, _ := core.ColorByName(name)
	return c
}
