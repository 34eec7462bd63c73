package mole

import (
	"time"

	"github.com/lixenwraith/whack/constants"
)

// Overlay is the star burst drawn where a mole was hit
// Each mole owns exactly one; re-triggering restarts the single animation
type Overlay struct {
	X, Y  int // Top-left cell of the burst
	Z     int // Stacking order, later bursts draw on top
	Angle int // Tilt in degrees, [-StarMaxAngle, StarMaxAngle]

	active   bool
	start    time.Time
	end      time.Time
	duration time.Duration
	triggers int
}

// NewOverlay creates an inactive overlay with the given animation length
func NewOverlay(duration time.Duration) *Overlay {
	if duration <= 0 {
		duration = constants.StarAnimation
	}
	return &Overlay{duration: duration}
}

// Trigger positions the burst over the hit point and (re)starts the animation
func (o *Overlay) Trigger(x, y, z, angle int, now time.Time) {
	o.X = x - constants.StarOffsetX
	o.Y = y - constants.StarOffsetY
	o.Z = z
	o.Angle = angle
	o.active = true
	o.start = now
	o.end = now.Add(o.duration)
	o.triggers++
}

// Update clears the active flag once the animation has ended
func (o *Overlay) Update(now time.Time) {
	if o.active && !now.Before(o.end) {
		o.active = false
	}
}

// Active reports whether the animation is playing
func (o *Overlay) Active() bool {
	return o.active
}

// End returns the pending animation end, zero when inactive
func (o *Overlay) End() time.Time {
	if !o.active {
		return time.Time{}
	}
	return o.end
}

// Center returns the hit point the burst box is laid out around
func (o *Overlay) Center() (int, int) {
	return o.X + constants.StarOffsetX, o.Y + constants.StarOffsetY
}

// Triggers returns how many times the burst was started
func (o *Overlay) Triggers() int {
	return o.triggers
}

// Frame returns the animation frame in [0, StarFrames), or -1 when inactive
func (o *Overlay) Frame(now time.Time) int {
	if !o.active {
		return -1
	}
	elapsed := now.Sub(o.start)
	if elapsed < 0 {
		return 0
	}
	frame := int(elapsed * constants.StarFrames / o.duration)
	if frame >= constants.StarFrames {
		frame = constants.StarFrames - 1
	}
	return frame
}
