package audio

import "github.com/lixenwraith/whack/constants"

// Pool identifies a family of interchangeable sound variants
type Pool int

const (
	PoolHit Pool = iota
	PoolGameOver
	poolCount
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled      bool
	SampleRate   int
	MasterVolume float64 // 0.0-1.0
	PoolVolumes  map[Pool]float64
}

// DefaultAudioConfig returns the stock audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		SampleRate:   constants.SampleRate,
		MasterVolume: constants.DefaultMasterVolume,
		PoolVolumes: map[Pool]float64{
			PoolHit:      constants.DefaultHitVolume,
			PoolGameOver: constants.DefaultGameOverVolume,
		},
	}
}

// volume returns the effective 0.0-1.0 gain for a pool
func (c *AudioConfig) volume(p Pool) float64 {
	v, ok := c.PoolVolumes[p]
	if !ok {
		v = 1
	}
	return clamp01(v) * clamp01(c.MasterVolume)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
