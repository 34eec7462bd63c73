package engine

import (
	"testing"
	"time"
)

func TestCountdownIdleUntilRequested(t *testing.T) {
	ctx := NewGameContext(3, false)
	cd := NewCountdown(ctx, time.Second)

	for i := 0; i < 5; i++ {
		cd.Update(epoch.Add(time.Duration(i) * time.Second))
	}
	if ctx.TimeRemaining() != 3 {
		t.Errorf("countdown ran without request: %d", ctx.TimeRemaining())
	}
	if cd.Running() {
		t.Error("countdown should not be scheduled")
	}
}

func TestCountdownReachesZeroOnce(t *testing.T) {
	ctx := NewGameContext(3, false)
	cd := NewCountdown(ctx, time.Second)
	ctx.SetCountdownState(true)

	cd.Update(epoch) // arms
	expirations := 0
	for i := 1; i <= 10; i++ {
		if cd.Update(epoch.Add(time.Duration(i) * time.Second)) {
			expirations++
		}
	}

	if ctx.TimeRemaining() != 0 {
		t.Errorf("TimeRemaining = %d, want 0", ctx.TimeRemaining())
	}
	if expirations != 1 {
		t.Errorf("expired %d times, want 1", expirations)
	}
	if cd.Running() {
		t.Error("countdown still scheduled after zero")
	}
}

func TestCountdownStepBoundary(t *testing.T) {
	ctx := NewGameContext(10, false)
	cd := NewCountdown(ctx, time.Second)
	ctx.SetCountdownState(true)

	cd.Update(epoch)
	cd.Update(epoch.Add(999 * time.Millisecond))
	if ctx.TimeRemaining() != 10 {
		t.Errorf("decremented early: %d", ctx.TimeRemaining())
	}
	cd.Update(epoch.Add(time.Second))
	if ctx.TimeRemaining() != 9 {
		t.Errorf("TimeRemaining = %d, want 9", ctx.TimeRemaining())
	}
}
