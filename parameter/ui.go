package parameter

// Board glyphs
const (
	GlyphHead  = '▣'
	GlyphBody  = '◼'
	GlyphEmpty = ' '
)

// Board colors as 256-color palette indices
const (
	ColorBackground uint8 = 233
	ColorHead       uint8 = 21
	ColorBody       uint8 = 32
	ColorText       uint8 = 252
	ColorOverlay    uint8 = 196
)

// Overlay text
const (
	TextPaused   = "PAUSED"
	TextGameOver = "GAME OVER"
	TextScore    = "Score: "
	TextQuitHint = "press any key to exit"
)
