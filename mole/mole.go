// Package mole implements one whack-a-mole target: its appearance timer,
// hit detection, score update and feedback triggers.
package mole

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/whack/constants"
	"github.com/lixenwraith/whack/engine"
)

// Context is the shared round state a mole reads and writes
type Context interface {
	TimeRemaining() int
	PlayerScore() int
	UpdateScore(next int)
	SetCountdownState(flag bool)
	IsMuted() bool
}

// SoundPlayer plays hit feedback; variant is 1-based, pan in [-1, 1]
type SoundPlayer interface {
	PlayHit(variant int, pan float64)
}

// State is the lifecycle state of a mole
type State int

const (
	Hidden State = iota
	Visible
	GameOver
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Visible:
		return "visible"
	case GameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Mole is one target in the grid
type Mole struct {
	id   string
	hole int
	ctx  Context

	balance Balance
	rng     *rand.Rand
	sound   SoundPlayer
	pan     float64

	active  bool
	running bool
	stopped bool

	delay   time.Duration
	timer   engine.Timer
	overlay *Overlay
}

// Option configures a Mole at construction
type Option func(*Mole)

// WithBalance overrides the default delays and difficulty curve
func WithBalance(b Balance) Option {
	return func(m *Mole) { m.balance = b }
}

// WithRand injects the random source used for delays, sounds and tilt
func WithRand(rng *rand.Rand) Option {
	return func(m *Mole) { m.rng = rng }
}

// WithSound attaches hit audio, panned to the mole's position
func WithSound(p SoundPlayer, pan float64) Option {
	return func(m *Mole) {
		m.sound = p
		m.pan = pan
	}
}

// WithAnimation sets the star burst length
func WithAnimation(d time.Duration) Option {
	return func(m *Mole) { m.overlay = NewOverlay(d) }
}

// New creates a hidden, running mole whose first toggle is a spawn delay after now
func New(id string, hole int, ctx Context, now time.Time, opts ...Option) *Mole {
	m := &Mole{
		id:      id,
		hole:    hole,
		ctx:     ctx,
		balance: DefaultBalance(),
		running: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(hole)))
	}
	if m.overlay == nil {
		m.overlay = NewOverlay(constants.StarAnimation)
	}

	m.delay = SpawnDelay(m.balance, m.rng)
	m.timer.Reset(m.delay, now)
	return m
}

// Update observes the shared context and advances the timer and overlay
// Returns true when the timer toggled the mole
func (m *Mole) Update(now time.Time) bool {
	if m.stopped {
		return false
	}

	// Time-up wins over a due tick so the mole never flickers up at round end
	if m.running && m.ctx.TimeRemaining() == 0 {
		m.TimeUp()
	}

	ticked := false
	if m.running && m.timer.Due(now) {
		m.active = !m.active
		m.ctx.SetCountdownState(true)
		ticked = true
	}

	m.overlay.Update(now)
	return ticked
}

// Hit handles a pointer or hot-key press at (x, y); returns true if it scored
// A hit on a hidden, finished or stopped mole changes nothing
func (m *Mole) Hit(x, y int, now time.Time) bool {
	if m.stopped || !m.running || !m.active {
		return false
	}

	score := m.ctx.PlayerScore()
	angle := m.rng.IntN(2*constants.StarMaxAngle+1) - constants.StarMaxAngle
	m.overlay.Trigger(x, y, score+1, angle, now)

	if m.sound != nil && !m.ctx.IsMuted() {
		m.sound.PlayHit(m.rng.IntN(constants.HitSoundCount)+1, m.pan)
	}

	next := score + 1
	m.ctx.UpdateScore(next)
	m.active = false

	m.delay = NextDelay(next, m.balance, m.rng)
	m.timer.Reset(m.delay, now)
	return true
}

// TimeUp ends the mole's round: hidden, not running, timer cancelled
func (m *Mole) TimeUp() {
	m.running = false
	m.active = false
	m.timer.Stop()
}

// Stop tears the mole down; it ignores all further updates and hits
func (m *Mole) Stop() {
	m.stopped = true
	m.timer.Stop()
}

// ID returns the identifier assigned at construction
func (m *Mole) ID() string { return m.id }

// Hole returns the grid index of the mole
func (m *Mole) Hole() int { return m.hole }

// IsActive reports whether the mole is up and hittable
func (m *Mole) IsActive() bool { return m.active }

// IsRunning reports whether the toggle timer is still scheduling
func (m *Mole) IsRunning() bool { return m.running }

// Delay returns the current toggle period
func (m *Mole) Delay() time.Duration { return m.delay }

// NextToggle returns the pending toggle time, zero when not scheduled
func (m *Mole) NextToggle() time.Time { return m.timer.Deadline() }

// Overlay returns the mole's star burst handle
func (m *Mole) Overlay() *Overlay { return m.overlay }

// Pan returns the stereo position used for hit sounds
func (m *Mole) Pan() float64 { return m.pan }

// State returns the lifecycle state
func (m *Mole) State() State {
	switch {
	case !m.running:
		return GameOver
	case m.active:
		return Visible
	default:
		return Hidden
	}
}
