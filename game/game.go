// Package game owns a round of moles: it builds the grid, drives the
// countdown, routes hits and dispatches the one-time round-over signal.
package game

import (
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/whack/constants"
	"github.com/lixenwraith/whack/engine"
	"github.com/lixenwraith/whack/events"
	"github.com/lixenwraith/whack/mole"
	"github.com/lixenwraith/whack/status"
	"github.com/rs/zerolog"
)

// Sounds is the audio surface the game drives
type Sounds interface {
	mole.SoundPlayer
	PlayGameOver(variant int)
}

// Settings fixes the shape of every round
type Settings struct {
	Holes   int
	Balance mole.Balance
	// Pans gives each hole's stereo position; missing entries are centered
	Pans []float64
}

// Game is the owner of the shared context and the current round
type Game struct {
	ctx      *engine.GameContext
	clock    engine.TimeProvider
	settings Settings
	sounds   Sounds
	rng      *rand.Rand
	log      zerolog.Logger

	queue  *events.EventQueue
	router *events.Router[*Game]

	round *Round

	// Cached metric pointers
	reg        *status.Registry
	statHits   *atomic.Int64
	statWhiffs *atomic.Int64
	statTicks  *atomic.Int64
	statRounds *atomic.Int64
	statPlayed *atomic.Int64
	statMuted  *atomic.Bool
}

// Option configures a Game
type Option func(*Game)

// WithSounds attaches audio feedback
func WithSounds(s Sounds) Option {
	return func(g *Game) { g.sounds = s }
}

// WithRand injects the random source shared by the game and its moles
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// WithLogger attaches a logger
func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithRegistry shares a metrics registry
func WithRegistry(r *status.Registry) Option {
	return func(g *Game) { g.reg = r }
}

// New creates a game and starts its first round
func New(ctx *engine.GameContext, clock engine.TimeProvider, settings Settings, opts ...Option) *Game {
	g := &Game{
		ctx:      ctx,
		clock:    clock,
		settings: settings,
		log:      zerolog.Nop(),
		queue:    events.NewEventQueue(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		seed := uint64(clock.Now().UnixNano())
		g.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if g.reg == nil {
		g.reg = status.NewRegistry()
	}
	g.statHits = g.reg.Ints.Get(status.MoleHits)
	g.statWhiffs = g.reg.Ints.Get(status.MoleWhiffs)
	g.statTicks = g.reg.Ints.Get(status.MoleTicks)
	g.statRounds = g.reg.Ints.Get(status.RoundCount)
	g.statPlayed = g.reg.Ints.Get(status.AudioPlayed)
	g.statMuted = g.reg.Bools.Get(status.AudioMuted)
	g.statMuted.Store(ctx.IsMuted())

	g.router = events.NewRouter[*Game](g.queue)
	g.registerHandlers()

	g.startRound(clock.Now())
	return g
}

// startRound tears down the current round and builds a fresh one
func (g *Game) startRound(now time.Time) {
	if g.round != nil {
		g.round.stop()
	}
	g.ctx.Reset()

	r := &Round{
		id:        uuid.New(),
		started:   now,
		countdown: engine.NewCountdown(g.ctx, constants.CountdownStep),
		moles:     make([]*mole.Mole, g.settings.Holes),
	}

	var sound mole.SoundPlayer
	if g.sounds != nil {
		sound = &countingSound{Sounds: g.sounds, played: g.statPlayed}
	}
	for i := range r.moles {
		opts := []mole.Option{
			mole.WithBalance(g.settings.Balance),
			mole.WithRand(g.rng),
		}
		if sound != nil {
			opts = append(opts, mole.WithSound(sound, g.pan(i)))
		}
		r.moles[i] = mole.New(moleID(i), i, g.ctx, now, opts...)
	}

	g.round = r
	g.statRounds.Add(1)
	g.log.Info().Str("round", r.id.String()).Int("holes", len(r.moles)).Msg("round started")
}

func (g *Game) pan(hole int) float64 {
	if hole < len(g.settings.Pans) {
		return g.settings.Pans[hole]
	}
	return 0
}

func moleID(hole int) string {
	return fmt.Sprintf("%s%d", constants.MoleIDPrefix, hole+1)
}

// Update advances one frame: countdown, events, moles, deferred sound
func (g *Game) Update(now time.Time) {
	r := g.round

	if g.ctx.CountdownActive() && !r.countdownStarted {
		r.countdownStarted = true
		g.push(events.EventCountdownStart, nil, now)
	}
	r.countdown.Update(now)

	if g.ctx.TimeRemaining() == 0 && !r.overSignalled {
		r.overSignalled = true
		g.push(events.EventRoundOver, &events.RoundOverPayload{
			RoundID: r.id.String(),
			Score:   g.ctx.PlayerScore(),
			Best:    g.ctx.BestScore(),
		}, now)
	}

	g.router.DispatchAll(g)

	// Dispatch may have replaced the round
	r = g.round
	for _, m := range r.moles {
		if m.Update(now) {
			g.statTicks.Add(1)
		}
	}

	if r.gameOverSound.Due(now) {
		r.gameOverSound.Stop()
		g.playGameOver()
	}
}

// Hit routes a press at cell (x, y) to the mole in hole; returns true if it scored
func (g *Game) Hit(hole, x, y int, now time.Time) bool {
	r := g.round
	if hole < 0 || hole >= len(r.moles) {
		return false
	}
	m := r.moles[hole]
	scored := m.Hit(x, y, now)

	evType := events.EventMoleWhiff
	if scored {
		evType = events.EventMoleHit
	}
	g.push(evType, &events.MoleHitPayload{
		MoleID: m.ID(),
		Hole:   hole,
		X:      x,
		Y:      y,
		Score:  g.ctx.PlayerScore(),
	}, now)
	return scored
}

// RequestMute queues a mute toggle for the next update
func (g *Game) RequestMute() {
	g.push(events.EventMuteToggle, nil, g.clock.Now())
}

// RequestReset queues a new round for the next update
func (g *Game) RequestReset() {
	g.push(events.EventRoundReset, nil, g.clock.Now())
}

// Close tears down the current round
func (g *Game) Close() {
	g.round.stop()
}

func (g *Game) push(t events.EventType, payload any, now time.Time) {
	g.queue.Push(events.GameEvent{Type: t, Payload: payload, Timestamp: now})
}

func (g *Game) playGameOver() {
	if g.sounds == nil || g.ctx.IsMuted() {
		return
	}
	g.sounds.PlayGameOver(g.rng.IntN(constants.GameOverSoundCount) + 1)
	g.statPlayed.Add(1)
}

// Context returns the shared round state
func (g *Game) Context() *engine.GameContext { return g.ctx }

// Round returns the current round
func (g *Game) Round() *Round { return g.round }

// Registry returns the metrics registry
func (g *Game) Registry() *status.Registry { return g.reg }

// Moles returns the moles of the current round in hole order
func (g *Game) Moles() []*mole.Mole { return g.round.moles }

// Over reports whether the current round has ended
func (g *Game) Over() bool { return g.round.over }
