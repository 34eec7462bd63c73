package audio

import (
	"fmt"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/whack/constants"
)

// ResourceName returns the addressable name of a pool variant, e.g. hit-sfx3
func ResourceName(p Pool, variant int) string {
	switch p {
	case PoolHit:
		return fmt.Sprintf("%s%d", constants.HitSoundPrefix, variant)
	case PoolGameOver:
		return fmt.Sprintf("%s%d", constants.GameOverSoundPrefix, variant)
	default:
		return ""
	}
}

// PoolSize returns the number of variants in a pool
func PoolSize(p Pool) int {
	switch p {
	case PoolHit:
		return constants.HitSoundCount
	case PoolGameOver:
		return constants.GameOverSoundCount
	default:
		return 0
	}
}

// resource is one pre-rendered sound, replayable from position zero
type resource struct {
	pool   Pool
	buffer *beep.Buffer
}

// rewind returns a fresh streamer over the whole resource
func (r *resource) rewind() beep.StreamSeeker {
	return r.buffer.Streamer(0, r.buffer.Len())
}

// renderPools synthesizes every variant of every pool into memory
func renderPools(rate beep.SampleRate) map[string]*resource {
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	out := make(map[string]*resource, constants.HitSoundCount+constants.GameOverSoundCount)

	for p := Pool(0); p < poolCount; p++ {
		for v := 1; v <= PoolSize(p); v++ {
			buf := beep.NewBuffer(format)
			switch p {
			case PoolHit:
				buf.Append(CreateHitSound(v, rate))
			case PoolGameOver:
				buf.Append(CreateGameOverSound(v, rate))
			}
			out[ResourceName(p, v)] = &resource{pool: p, buffer: buf}
		}
	}
	return out
}
