package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/parameter"
)

// Board layout: one header row, then one row per grid row, parameter.GridCellWidth columns per cell
const (
	headerRow = 0
	boardTop  = 1
)

// FitGridSize picks the largest square grid that fits a w×h terminal
func FitGridSize(w, h int) int {
	n := min(w/parameter.GridCellWidth, h-parameter.GridReservedRows)
	if n < 1 {
		return parameter.GridDefaultSize
	}
	return n
}

// BoardRenderer paints a session to a tcell screen
type BoardRenderer struct {
	screen tcell.Screen
}

// NewBoardRenderer creates a renderer for the given screen
func NewBoardRenderer(screen tcell.Screen) *BoardRenderer {
	return &BoardRenderer{screen: screen}
}

// Render draws the full frame: header, board, overlays
func (r *BoardRenderer) Render(s *engine.Session) {
	r.screen.SetStyle(styleBackground)
	r.screen.Clear()

	game := s.Game()
	n := game.Size()

	r.drawText(0, headerRow, fmt.Sprintf("%s%d  Length: %d  Speed: %d",
		parameter.TextScore, game.Score(), game.SnakeLen(), s.Speed()), styleText)

	for i, c := range game.Board() {
		r.drawCell(i%n, i/n, c)
	}

	switch {
	case s.Dead():
		r.drawOverlay(n, parameter.TextGameOver, parameter.TextQuitHint)
	case s.Paused():
		r.drawOverlay(n, parameter.TextPaused, "")
	}

	r.screen.Show()
}

// drawCell fills the cell columns with background then places the glyph in the middle column
func (r *BoardRenderer) drawCell(x, y int, c engine.Cell) {
	sx := x * parameter.GridCellWidth
	sy := boardTop + y
	bg := CellStyle(c.Bg, c.Bg)
	for i := 0; i < parameter.GridCellWidth; i++ {
		r.screen.SetContent(sx+i, sy, ' ', nil, bg)
	}
	r.screen.SetContent(sx+parameter.GridCellWidth/2, sy, c.Glyph, nil, CellStyle(c.Fg, c.Bg))
}

// drawOverlay centers a title and an optional hint over the board
func (r *BoardRenderer) drawOverlay(n int, title, hint string) {
	width := n * parameter.GridCellWidth
	mid := boardTop + n/2
	r.drawText((width-len(title))/2, mid, title, styleOverlay)
	if hint != "" {
		r.drawText((width-len(hint))/2, mid+1, hint, styleText)
	}
}

func (r *BoardRenderer) drawText(x, y int, text string, style tcell.Style) {
	if x < 0 {
		x = 0
	}
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
