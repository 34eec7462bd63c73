package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/whack/constants"
	"github.com/lixenwraith/whack/game"
	"github.com/lixenwraith/whack/render"
)

// StatusBarRenderer draws the two status lines at the bottom
type StatusBarRenderer struct {
	game  *game.Game
	debug bool
}

// NewStatusBarRenderer creates a status bar renderer; debug swaps the help line for metrics
func NewStatusBarRenderer(g *game.Game, debug bool) *StatusBarRenderer {
	return &StatusBarRenderer{game: g, debug: debug}
}

// Render implements SystemRenderer
func (s *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	statusY := ctx.Height - constants.StatusBarLines
	if statusY < 0 {
		return
	}
	gameCtx := s.game.Context()

	defaultStyle := tcell.StyleDefault.Background(render.RgbBackground)
	for i := 0; i < constants.StatusBarLines; i++ {
		buf.Fill(0, statusY+i, ctx.Width, ' ', defaultStyle)
	}

	x := 0
	y := statusY

	// Audio mute indicator - always visible
	audioText, audioBg := constants.AudioStr, render.RgbAudioUnmuted
	if gameCtx.IsMuted() {
		audioText, audioBg = constants.MutedStr, render.RgbAudioMuted
	}
	x = buf.SetString(x, y, audioText, defaultStyle.Foreground(tcell.ColorBlack).Background(audioBg))

	badge := defaultStyle.Foreground(render.RgbStatusText)
	x = buf.SetString(x+1, y, fmt.Sprintf(" SCORE %d ", gameCtx.PlayerScore()), badge.Background(render.RgbScoreBg))
	x = buf.SetString(x+1, y, fmt.Sprintf(" BEST %d ", gameCtx.BestScore()), badge.Background(render.RgbBestBg))
	remaining := gameCtx.TimeRemaining()
	x = buf.SetString(x+1, y, fmt.Sprintf(" TIME %d ", remaining), badge.Background(render.TimeColor(remaining)))

	// Round id right-aligned when it fits
	id := s.game.Round().ID().String()[:8]
	if idX := ctx.Width - len(id) - 1; idX > x {
		buf.SetString(idX, y, id, defaultStyle.Foreground(render.RgbRoundID))
	}

	if s.debug {
		buf.SetString(0, y+1, s.game.Registry().Format(), defaultStyle.Foreground(render.RgbDebugText))
	} else {
		buf.SetString(0, y+1, constants.HelpText, defaultStyle.Foreground(render.RgbStatusBar))
	}
}
