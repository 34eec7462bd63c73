package mole

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/whack/constants"
)

// Balance holds the tunables of mole timing and the difficulty curve
type Balance struct {
	// First delay of a fresh mole
	SpawnMin time.Duration
	SpawnMax time.Duration

	// Delay after a hit at score 0; scaled by the delay factor as score grows
	HitMin time.Duration
	HitMax time.Duration

	FactorStep float64
	MinFactor  float64
}

// DefaultBalance returns the stock game balance
func DefaultBalance() Balance {
	return Balance{
		SpawnMin:   constants.SpawnDelayMin,
		SpawnMax:   constants.SpawnDelayMax,
		HitMin:     constants.HitDelayMin,
		HitMax:     constants.HitDelayMax,
		FactorStep: constants.DelayFactorStep,
		MinFactor:  constants.MinDelayFactor,
	}
}

// DelayFactor returns 1 - step*score, floored at MinFactor
func DelayFactor(score int, b Balance) float64 {
	if score < 0 {
		score = 0
	}
	f := 1 - b.FactorStep*float64(score)
	if f < b.MinFactor {
		f = b.MinFactor
	}
	return f
}

// DelayRange returns the post-hit delay bounds for the given score
func DelayRange(score int, b Balance) (lo, hi time.Duration) {
	f := DelayFactor(score, b)
	lo = time.Duration(float64(b.HitMin) * f)
	hi = time.Duration(float64(b.HitMax) * f)
	return lo, hi
}

// NextDelay draws the post-hit delay for the given score
func NextDelay(score int, b Balance, rng *rand.Rand) time.Duration {
	lo, hi := DelayRange(score, b)
	return randomDuration(lo, hi, rng)
}

// SpawnDelay draws the first delay of a fresh mole
func SpawnDelay(b Balance, rng *rand.Rand) time.Duration {
	return randomDuration(b.SpawnMin, b.SpawnMax, rng)
}

// randomDuration returns a uniform value in [lo, hi]
func randomDuration(lo, hi time.Duration, rng *rand.Rand) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(rng.Int64N(int64(hi-lo)+1))
}
