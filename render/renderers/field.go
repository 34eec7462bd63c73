package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/whack/constants"
	"github.com/lixenwraith/whack/game"
	"github.com/lixenwraith/whack/render"
)

// FieldRenderer draws the grass, the molehills and every mole
type FieldRenderer struct {
	game *game.Game
}

// NewFieldRenderer creates a field renderer for g
func NewFieldRenderer(g *game.Game) *FieldRenderer {
	return &FieldRenderer{game: g}
}

// Render implements SystemRenderer
func (f *FieldRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	grass := tcell.StyleDefault.Background(render.RgbField)
	fieldHeight := ctx.Layout.FieldHeight()
	for y := 0; y < fieldHeight; y++ {
		buf.Fill(0, y, ctx.Width, ' ', grass)
	}

	moles := f.game.Moles()
	holes := min(ctx.Layout.Holes(), len(moles))
	for i := 0; i < holes; i++ {
		r := ctx.Layout.HoleRect(i)
		if r.Width == 0 || r.Height == 0 {
			continue
		}
		m := moles[i]

		// Whacked sprite lingers for the star burst
		switch {
		case m.Overlay().Active():
			drawCentered(buf, r, r.Y+1, constants.MoleHitGlyph, grass.Foreground(render.RgbMoleHit).Bold(true))
		case m.IsActive():
			drawCentered(buf, r, r.Y+1, constants.MoleUpGlyph, grass.Foreground(render.RgbMoleUp).Bold(true))
		}
		drawCentered(buf, r, r.Y+2, constants.HoleGlyph, grass.Foreground(render.RgbHole))
		drawCentered(buf, r, r.Y+3, constants.MolehillGlyph, grass.Foreground(render.RgbMolehill))
		drawCentered(buf, r, r.Y+4, holeLabel(i, m.IsActive()), grass.Foreground(render.RgbLabel))
	}
}

// holeLabel names the hot-key and shows a checkbox that is ticked while the hole is empty
func holeLabel(hole int, active bool) string {
	mark := "x"
	if active {
		mark = " "
	}
	return fmt.Sprintf("%d [%s]", hole+1, mark)
}

// drawCentered writes s centred in r on row y, clipped to r
func drawCentered(buf *render.RenderBuffer, r render.Rect, y int, s string, style tcell.Style) {
	if y < r.Y || y >= r.Y+r.Height {
		return
	}
	runes := []rune(s)
	x := r.X + (r.Width-len(runes))/2
	for _, ch := range runes {
		if x >= r.X && x < r.X+r.Width {
			buf.Set(x, y, ch, style)
		}
		x++
	}
}
