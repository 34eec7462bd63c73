package renderers

import (
	"cmp"
	"math"
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/whack/constants"
	"github.com/lixenwraith/whack/game"
	"github.com/lixenwraith/whack/mole"
	"github.com/lixenwraith/whack/render"
)

// starPattern holds the burst offsets from the hit point per animation frame, before tilt
var starPattern = [constants.StarFrames][][2]int{
	{{0, 0}},
	{{-2, 0}, {2, 0}, {0, -1}, {0, 1}},
	{{-4, 0}, {4, 0}, {-2, -1}, {2, -1}, {-2, 1}, {2, 1}},
}

// StarRenderer draws active hit bursts, higher z on top
type StarRenderer struct {
	game  *game.Game
	stars []*mole.Overlay
}

// NewStarRenderer creates a star burst renderer for g
func NewStarRenderer(g *game.Game) *StarRenderer {
	return &StarRenderer{game: g}
}

// Render implements SystemRenderer
func (s *StarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	s.stars = s.stars[:0]
	for _, m := range s.game.Moles() {
		if o := m.Overlay(); o.Frame(ctx.Now) >= 0 {
			s.stars = append(s.stars, o)
		}
	}
	slices.SortStableFunc(s.stars, func(a, b *mole.Overlay) int {
		return cmp.Compare(a.Z, b.Z)
	})

	for _, o := range s.stars {
		frame := o.Frame(ctx.Now)
		style := tcell.StyleDefault.Background(render.RgbField).Foreground(render.StarColor(frame)).Bold(frame == 0)
		cx, cy := o.Center()
		sin, cos := math.Sincos(float64(o.Angle) * math.Pi / 180)
		for _, off := range starPattern[frame] {
			dx, dy := float64(off[0]), float64(off[1])
			x := cx + int(math.Round(dx*cos-dy*sin))
			y := cy + int(math.Round(dx*sin+dy*cos))
			if y >= ctx.Layout.FieldHeight() {
				continue
			}
			buf.Set(x, y, constants.StarGlyph, style)
		}
	}
}
