package render

import "github.com/gdamore/tcell/v2"

// Cell is one composited screen cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// emptyCell is the cleared state; a zero rune flushes as a space
var emptyCell = Cell{Rune: 0, Style: tcell.StyleDefault.Background(RgbBackground)}
