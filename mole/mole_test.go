package mole

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lixenwraith/whack/engine"
)

type hitRecord struct {
	variant int
	pan     float64
}

type recordingSound struct {
	hits []hitRecord
}

func (r *recordingSound) PlayHit(variant int, pan float64) {
	r.hits = append(r.hits, hitRecord{variant, pan})
}

func newTestMole(t *testing.T, ctx *engine.GameContext, sound *recordingSound) *Mole {
	t.Helper()
	return New("mole-1", 0, ctx, epoch,
		WithRand(rand.New(rand.NewPCG(11, 13))),
		WithSound(sound, -1),
	)
}

// raise advances time until the mole's timer shows it
func raise(t *testing.T, m *Mole) time.Time {
	t.Helper()
	at := m.NextToggle()
	if at.IsZero() {
		t.Fatal("mole has no pending toggle")
	}
	if !m.Update(at) {
		t.Fatal("expected toggle at deadline")
	}
	if !m.IsActive() {
		t.Fatal("expected mole to be visible after toggle")
	}
	return at
}

func TestNewMoleStartsHidden(t *testing.T) {
	ctx := engine.NewGameContext(30, false)
	m := newTestMole(t, ctx, &recordingSound{})

	if m.State() != Hidden {
		t.Errorf("state = %v, want hidden", m.State())
	}
	if !m.IsRunning() {
		t.Error("new mole should be running")
	}
	b := DefaultBalance()
	if m.Delay() < b.SpawnMin || m.Delay() > b.SpawnMax {
		t.Errorf("spawn delay %v outside range", m.Delay())
	}
	if m.ID() != "mole-1" || m.Hole() != 0 {
		t.Errorf("id/hole = %s/%d", m.ID(), m.Hole())
	}
}

// TestTickTogglesAndSignalsCountdown verifies each tick flips visibility and requests the countdown
func TestTickTogglesAndSignalsCountdown(t *testing.T) {
	ctx := engine.NewGameContext(30, false)
	m := newTestMole(t, ctx, &recordingSound{})

	at := raise(t, m)
	if !ctx.CountdownActive() {
		t.Error("tick did not signal countdown")
	}

	if m.Update(at.Add(m.Delay() - time.Millisecond)) {
		t.Error("toggled before period elapsed")
	}
	if !m.Update(at.Add(m.Delay())) {
		t.Fatal("no toggle after one period")
	}
	if m.State() != Hidden {
		t.Errorf("state = %v, want hidden after second tick", m.State())
	}
}

func TestHitOnHiddenIsNoop(t *testing.T) {
	ctx := engine.NewGameContext(30, false)
	sound := &recordingSound{}
	m := newTestMole(t, ctx, sound)

	deadline := m.NextToggle()
	delay := m.Delay()

	if m.Hit(10, 10, epoch.Add(time.Millisecond)) {
		t.Fatal("hidden mole scored")
	}
	if ctx.PlayerScore() != 0 {
		t.Errorf("score = %d, want 0", ctx.PlayerScore())
	}
	if len(sound.hits) != 0 || m.Overlay().Triggers() != 0 {
		t.Error("hidden hit produced feedback")
	}
	if !m.NextToggle().Equal(deadline) || m.Delay() != delay {
		t.Error("hidden hit rescheduled the timer")
	}
}

// TestHitOnVisibleFromZero covers the score 0 scenario
func TestHitOnVisibleFromZero(t *testing.T) {
	ctx := engine.NewGameContext(30, false)
	sound := &recordingSound{}
	m := newTestMole(t, ctx, sound)
	at := raise(t, m)

	hitAt := at.Add(40 * time.Millisecond)
	if !m.Hit(30, 12, hitAt) {
		t.Fatal("visible mole did not score")
	}

	if ctx.PlayerScore() != 1 {
		t.Errorf("score = %d, want 1", ctx.PlayerScore())
	}
	if m.State() != Hidden {
		t.Errorf("state = %v, want hidden", m.State())
	}

	lo, hi := time.Duration(1800*0.985*float64(time.Millisecond)), time.Duration(3300*0.985*float64(time.Millisecond))
	if m.Delay() < lo || m.Delay() > hi {
		t.Errorf("delay %v outside [%v, %v]", m.Delay(), lo, hi)
	}
	if want := hitAt.Add(m.Delay()); !m.NextToggle().Equal(want) {
		t.Errorf("timer not restarted from hit: %v, want %v", m.NextToggle(), want)
	}

	if len(sound.hits) != 1 {
		t.Fatalf("hit sounds = %d, want 1", len(sound.hits))
	}
	if v := sound.hits[0].variant; v < 1 || v > 16 {
		t.Errorf("variant %d out of pool", v)
	}
	if sound.hits[0].pan != -1 {
		t.Errorf("pan = %v, want -1", sound.hits[0].pan)
	}

	ov := m.Overlay()
	if !ov.Active() || ov.Z != 1 {
		t.Errorf("overlay active=%v z=%d", ov.Active(), ov.Z)
	}
	if ov.Angle < -20 || ov.Angle > 20 {
		t.Errorf("angle %d out of range", ov.Angle)
	}
}

func TestHitRespectsMute(t *testing.T) {
	ctx := engine.NewGameContext(30, true)
	sound := &recordingSound{}
	m := newTestMole(t, ctx, sound)
	at := raise(t, m)

	if !m.Hit(0, 0, at) {
		t.Fatal("muted hit should still score")
	}
	if len(sound.hits) != 0 {
		t.Error("sound played while muted")
	}
	if !m.Overlay().Active() {
		t.Error("visual feedback should ignore mute")
	}
}

// TestRapidDoubleHit covers a second hit during the animation window
func TestRapidDoubleHit(t *testing.T) {
	ctx := engine.NewGameContext(30, false)
	m := newTestMole(t, ctx, &recordingSound{})
	at := raise(t, m)

	m.Hit(5, 5, at)
	if m.Hit(5, 5, at.Add(50*time.Millisecond)) {
		t.Fatal("second hit 50ms later scored on a hidden mole")
	}
	if ctx.PlayerScore() != 1 {
		t.Fatalf("score = %d, want 1", ctx.PlayerScore())
	}

	// Timer brings it back; the next hit scores and retriggers the single burst
	up := m.NextToggle()
	m.Update(up)
	if !m.IsActive() {
		t.Fatal("mole did not re-appear")
	}
	if !m.Hit(6, 6, up) {
		t.Fatal("hit after re-activation did not score")
	}
	if ctx.PlayerScore() != 2 {
		t.Errorf("score = %d, want 2", ctx.PlayerScore())
	}
	ov := m.Overlay()
	if ov.Triggers() != 2 || ov.Z != 2 {
		t.Errorf("triggers=%d z=%d", ov.Triggers(), ov.Z)
	}
	if want := up.Add(300 * time.Millisecond); !ov.End().Equal(want) {
		t.Errorf("overlay end %v, want %v", ov.End(), want)
	}
}

// TestTimeUpIsTerminal verifies no tick or hit revives a finished mole
func TestTimeUpIsTerminal(t *testing.T) {
	ctx := engine.NewGameContext(1, false)
	m := newTestMole(t, ctx, &recordingSound{})
	at := raise(t, m)

	ctx.DecrementTime()
	m.Update(at.Add(time.Millisecond))

	if m.State() != GameOver || m.IsActive() || m.IsRunning() {
		t.Fatalf("state = %v active=%v running=%v", m.State(), m.IsActive(), m.IsRunning())
	}

	now := at
	for i := 0; i < 20; i++ {
		now = now.Add(time.Second)
		if m.Update(now) {
			t.Fatal("finished mole toggled")
		}
		if m.Hit(0, 0, now) {
			t.Fatal("finished mole scored")
		}
		if m.IsActive() {
			t.Fatal("finished mole became visible")
		}
	}
	if ctx.PlayerScore() != 0 {
		t.Errorf("score = %d, want 0", ctx.PlayerScore())
	}
}

// TestTimeUpBeatsDueTick verifies no flicker when time ends on a tick deadline
func TestTimeUpBeatsDueTick(t *testing.T) {
	ctx := engine.NewGameContext(1, false)
	m := newTestMole(t, ctx, &recordingSound{})

	deadline := m.NextToggle()
	ctx.DecrementTime()

	if m.Update(deadline) {
		t.Error("tick fired after time ran out")
	}
	if m.IsActive() {
		t.Error("mole flickered visible at round end")
	}
}

func TestStopCancelsTimer(t *testing.T) {
	ctx := engine.NewGameContext(30, false)
	m := newTestMole(t, ctx, &recordingSound{})

	m.Stop()
	if !m.NextToggle().IsZero() {
		t.Error("stopped mole still scheduled")
	}
	if m.Update(epoch.Add(time.Hour)) {
		t.Error("stopped mole toggled")
	}
	if ctx.CountdownActive() {
		t.Error("stopped mole signalled countdown")
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{Hidden: "hidden", Visible: "visible", GameOver: "gameover", State(9): "unknown"} {
		if s.String() != want {
			t.Errorf("%d.String() = %q, want %q", s, s.String(), want)
		}
	}
}
