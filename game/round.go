package game

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/whack/constants"
	"github.com/lixenwraith/whack/engine"
	"github.com/lixenwraith/whack/events"
	"github.com/lixenwraith/whack/mole"
)

// Round is one timed play session over a fixed set of moles
type Round struct {
	id      uuid.UUID
	started time.Time
	moles   []*mole.Mole

	countdown        *engine.Countdown
	countdownStarted bool

	// overSignalled guards the single EventRoundOver push; over is set by its handler
	overSignalled bool
	over          bool
	gameOverSound engine.Timer
}

// ID returns the round identifier
func (r *Round) ID() uuid.UUID { return r.id }

// Started returns the round creation time
func (r *Round) Started() time.Time { return r.started }

// CountdownStarted reports whether a mole tick has started the clock
func (r *Round) CountdownStarted() bool { return r.countdownStarted }

// GameOverPending reports whether the round-over sound is scheduled
func (r *Round) GameOverPending() bool { return r.gameOverSound.Active() }

func (r *Round) stop() {
	r.countdown.Stop()
	r.gameOverSound.Stop()
	for _, m := range r.moles {
		m.Stop()
	}
}

// countingSound forwards hit sounds and counts them
type countingSound struct {
	Sounds
	played *atomic.Int64
}

func (c *countingSound) PlayHit(variant int, pan float64) {
	c.Sounds.PlayHit(variant, pan)
	c.played.Add(1)
}

func (g *Game) registerHandlers() {
	g.router.Register(events.HandlerFunc[*Game]{
		Types: []events.EventType{events.EventRoundOver},
		Fn:    (*Game).handleRoundOver,
	})
	g.router.Register(events.HandlerFunc[*Game]{
		Types: []events.EventType{events.EventMoleHit, events.EventMoleWhiff},
		Fn:    (*Game).handlePress,
	})
	g.router.Register(events.HandlerFunc[*Game]{
		Types: []events.EventType{events.EventCountdownStart},
		Fn: func(g *Game, ev events.GameEvent) {
			g.log.Debug().Str("round", g.round.id.String()).Msg("countdown started")
		},
	})
	g.router.Register(events.HandlerFunc[*Game]{
		Types: []events.EventType{events.EventMuteToggle},
		Fn: func(g *Game, ev events.GameEvent) {
			muted := g.ctx.ToggleMute()
			g.statMuted.Store(muted)
			g.log.Debug().Bool("muted", muted).Msg("mute toggled")
		},
	})
	g.router.Register(events.HandlerFunc[*Game]{
		Types: []events.EventType{events.EventRoundReset},
		Fn: func(g *Game, ev events.GameEvent) {
			g.startRound(ev.Timestamp)
		},
	})
}

// handleRoundOver stops every mole and schedules the single game-over sound
func (g *Game) handleRoundOver(ev events.GameEvent) {
	r := g.round
	p, ok := ev.Payload.(*events.RoundOverPayload)
	if !ok || p.RoundID != r.id.String() || r.over {
		return
	}
	r.over = true

	for _, m := range r.moles {
		m.TimeUp()
	}
	if !g.ctx.IsMuted() {
		r.gameOverSound.Reset(constants.GameOverSoundDelay, ev.Timestamp)
	}

	g.log.Info().
		Str("round", p.RoundID).
		Int("score", p.Score).
		Int("best", p.Best).
		Dur("played", ev.Timestamp.Sub(r.started)).
		Msg("round over")
}

func (g *Game) handlePress(ev events.GameEvent) {
	p, ok := ev.Payload.(*events.MoleHitPayload)
	if !ok {
		return
	}
	if ev.Type == events.EventMoleHit {
		g.statHits.Add(1)
	} else {
		g.statWhiffs.Add(1)
	}
	g.log.Debug().
		Str("event", ev.Type.String()).
		Str("mole", p.MoleID).
		Int("x", p.X).
		Int("y", p.Y).
		Int("score", p.Score).
		Msg("press")
}
