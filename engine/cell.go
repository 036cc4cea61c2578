package engine

import "github.com/lixenwraith/vi-snake/parameter"

// CellKind classifies a board cell
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellHead
	CellBody
	CellFruit
)

// Cell is one render-ready board position
// Colors are 256-color palette indices
type Cell struct {
	Kind  CellKind
	Glyph rune
	Fg    uint8
	Bg    uint8
}

func emptyCell() Cell {
	return Cell{
		Kind:  CellEmpty,
		Glyph: parameter.GlyphEmpty,
		Fg:    parameter.ColorBackground,
		Bg:    parameter.ColorBackground,
	}
}
