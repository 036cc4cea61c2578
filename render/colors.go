package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/parameter"
)

// PaletteColor maps a 256-color palette index to a tcell color
func PaletteColor(idx uint8) tcell.Color {
	return tcell.PaletteColor(int(idx))
}

// CellStyle returns the style for a foreground/background palette pair
func CellStyle(fg, bg uint8) tcell.Style {
	return tcell.StyleDefault.Foreground(PaletteColor(fg)).Background(PaletteColor(bg))
}

var (
	styleBackground = CellStyle(parameter.ColorBackground, parameter.ColorBackground)
	styleText       = CellStyle(parameter.ColorText, parameter.ColorBackground)
	styleOverlay    = CellStyle(parameter.ColorOverlay, parameter.ColorBackground).Bold(true)
)
