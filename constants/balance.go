package constants

import "time"

// Mole Appearance Delays
const (
	// SpawnDelayMin and SpawnDelayMax bound the first delay of a fresh mole
	SpawnDelayMin = 1500 * time.Millisecond
	SpawnDelayMax = 3000 * time.Millisecond

	// HitDelayMin and HitDelayMax bound the delay after a hit at score 0
	// The ratio 1800:3300 is kept by every difficulty factor
	HitDelayMin = 1800 * time.Millisecond
	HitDelayMax = 3300 * time.Millisecond
)

// Difficulty Curve
const (
	// DelayFactorStep is subtracted from the delay factor per point scored
	DelayFactorStep = 0.015

	// MinDelayFactor floors the delay factor so ranges stay positive
	MinDelayFactor = 0.1

	// MaxCheckedScore is the upper score used when validating a balance
	MaxCheckedScore = 1000
)
