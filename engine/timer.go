package engine

import "time"

// Timer is an owned, cancellable interval handle driven by caller-supplied time
// Exactly one deadline exists per handle: Reset replaces it, Stop cancels it
// The zero value is a stopped timer
type Timer struct {
	period   time.Duration
	deadline time.Time
	armed    bool
	fired    uint64
}

// Reset (re)arms the timer with a new period starting at now
// Any pending deadline is discarded
func (t *Timer) Reset(period time.Duration, now time.Time) {
	if period <= 0 {
		t.Stop()
		return
	}
	t.period = period
	t.deadline = now.Add(period)
	t.armed = true
}

// Stop cancels the pending deadline, safe to call repeatedly
func (t *Timer) Stop() {
	t.armed = false
}

// Active reports whether a deadline is pending
func (t *Timer) Active() bool {
	return t.armed
}

// Period returns the current interval
func (t *Timer) Period() time.Duration {
	return t.period
}

// Deadline returns the next firing time, zero if stopped
func (t *Timer) Deadline() time.Time {
	if !t.armed {
		return time.Time{}
	}
	return t.deadline
}

// Fired returns how many times the timer has fired since creation
func (t *Timer) Fired() uint64 {
	return t.fired
}

// Due reports whether the deadline has passed and advances it by one period
// Fires at most once per call; when more than two periods behind, the next
// deadline snaps to now+period instead of replaying the missed intervals
func (t *Timer) Due(now time.Time) bool {
	if !t.armed || now.Before(t.deadline) {
		return false
	}

	t.fired++
	t.deadline = t.deadline.Add(t.period)

	maxBehind := t.period * 2
	if now.Sub(t.deadline) > maxBehind {
		t.deadline = now.Add(t.period)
	}
	return true
}
