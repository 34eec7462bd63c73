package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/whack/constants"
	"github.com/lixenwraith/whack/game"
	"github.com/lixenwraith/whack/render"
)

// BannerRenderer shows the round-over box in the middle of the field
type BannerRenderer struct {
	game *game.Game
}

// NewBannerRenderer creates a round-over banner renderer
func NewBannerRenderer(g *game.Game) *BannerRenderer {
	return &BannerRenderer{game: g}
}

// IsVisible implements VisibilityToggle
func (b *BannerRenderer) IsVisible() bool {
	return b.game.Over()
}

// Render implements SystemRenderer
func (b *BannerRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	gameCtx := b.game.Context()
	lines := []string{
		constants.RoundOverText,
		fmt.Sprintf(" score %d · best %d ", gameCtx.PlayerScore(), gameCtx.BestScore()),
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	style := tcell.StyleDefault.Foreground(render.RgbBannerText).Background(render.RgbBannerBg).Bold(true)
	top := ctx.Layout.FieldHeight()/2 - len(lines)/2
	left := (ctx.Width - width) / 2

	for i, l := range lines {
		y := top + i
		buf.Fill(left, y, width, ' ', style)
		buf.SetString(left+(width-len([]rune(l)))/2, y, l, style)
	}
}
