package engine

import "sync"

// GameContext holds the state shared by every mole in a round
// All access is serialized so sibling moles never lose score increments
type GameContext struct {
	mu sync.RWMutex

	timeRemaining int
	roundSeconds  int

	score int
	best  int

	// Set by any mole tick; the countdown driver runs while true
	countdown bool

	muted bool
}

// NewGameContext creates a context for rounds of the given length in seconds
func NewGameContext(roundSeconds int, muted bool) *GameContext {
	return &GameContext{
		timeRemaining: roundSeconds,
		roundSeconds:  roundSeconds,
		muted:         muted,
	}
}

// TimeRemaining returns the countdown value in seconds
func (g *GameContext) TimeRemaining() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.timeRemaining
}

// RoundSeconds returns the configured round length
func (g *GameContext) RoundSeconds() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.roundSeconds
}

// DecrementTime lowers the countdown by one second, never below zero
func (g *GameContext) DecrementTime() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.timeRemaining > 0 {
		g.timeRemaining--
	}
	return g.timeRemaining
}

// PlayerScore returns the current score
func (g *GameContext) PlayerScore() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.score
}

// BestScore returns the session high-water score
func (g *GameContext) BestScore() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.best
}

// UpdateScore stores the next score value
func (g *GameContext) UpdateScore(next int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.setScoreLocked(next)
}

// IncrementScore adds one point atomically and returns the new score
func (g *GameContext) IncrementScore() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.setScoreLocked(g.score + 1)
	return g.score
}

func (g *GameContext) setScoreLocked(next int) {
	if next < 0 {
		next = 0
	}
	g.score = next
	if next > g.best {
		g.best = next
	}
}

// SetCountdownState records the request for the countdown driver to run
func (g *GameContext) SetCountdownState(flag bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.countdown = flag
}

// CountdownActive reports whether the countdown driver should run
func (g *GameContext) CountdownActive() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.countdown
}

// IsMuted reports whether new sound effects are suppressed
func (g *GameContext) IsMuted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.muted
}

// SetMuted sets the mute flag
func (g *GameContext) SetMuted(muted bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.muted = muted
}

// ToggleMute flips the mute flag and returns the new value
func (g *GameContext) ToggleMute() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.muted = !g.muted
	return g.muted
}

// Reset prepares the context for a new round; best score and mute survive
func (g *GameContext) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.timeRemaining = g.roundSeconds
	g.score = 0
	g.countdown = false
}
