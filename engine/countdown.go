package engine

import "time"

// Countdown drives GameContext.timeRemaining once a mole has requested it
type Countdown struct {
	ctx   *GameContext
	step  time.Duration
	timer Timer
}

// NewCountdown creates a countdown decrementing ctx once per step
func NewCountdown(ctx *GameContext, step time.Duration) *Countdown {
	return &Countdown{
		ctx:  ctx,
		step: step,
	}
}

// Update advances the countdown; returns true only on the call that reaches zero
func (c *Countdown) Update(now time.Time) bool {
	if !c.ctx.CountdownActive() || c.ctx.TimeRemaining() == 0 {
		c.timer.Stop()
		return false
	}

	if !c.timer.Active() {
		c.timer.Reset(c.step, now)
		return false
	}

	if !c.timer.Due(now) {
		return false
	}

	if c.ctx.DecrementTime() == 0 {
		c.timer.Stop()
		return true
	}
	return false
}

// Running reports whether a decrement is scheduled
func (c *Countdown) Running() bool {
	return c.timer.Active()
}

// Stop cancels the pending decrement
func (c *Countdown) Stop() {
	c.timer.Stop()
}
