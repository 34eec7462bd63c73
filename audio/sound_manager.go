package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/whack/constants"
)

// SoundManager owns the sound pools and the speaker
// Every call is safe before Initialize and after Cleanup; playback is best-effort
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	rate        beep.SampleRate
	resources   map[string]*resource
	initialized bool

	played atomic.Int64
}

// NewSoundManager renders all pools for cfg; nil selects DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = beep.SampleRate(constants.SampleRate)
	}

	return &SoundManager{
		cfg:       cfg,
		rate:      rate,
		resources: renderPools(rate),
	}
}

// Initialize opens the speaker; a no-op when disabled or already open
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constants.SpeakerBuffer)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	sm.initialized = true
	return nil
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops in-flight sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Has reports whether a named resource exists
func (sm *SoundManager) Has(name string) bool {
	_, ok := sm.resources[name]
	return ok
}

// Len returns the length in samples of a named resource, 0 if absent
func (sm *SoundManager) Len(name string) int {
	r, ok := sm.resources[name]
	if !ok {
		return 0
	}
	return r.buffer.Len()
}

// Play starts the named resource from position zero, panned left (-1) to right (1)
// Returns false when the resource is missing or the speaker is not open
func (sm *SoundManager) Play(name string, pan float64) bool {
	r, ok := sm.resources[name]
	if !ok {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return false
	}

	var s beep.Streamer = newVolume(r.rewind(), sm.cfg.volume(r.pool))
	if pan != 0 {
		s = &effects.Pan{Streamer: s, Pan: clampPan(pan)}
	}
	speaker.Play(s)
	sm.played.Add(1)
	return true
}

// PlayHit plays hit-sfx<variant>
func (sm *SoundManager) PlayHit(variant int, pan float64) {
	sm.Play(ResourceName(PoolHit, variant), pan)
}

// PlayGameOver plays gameover-sfx<variant>, centered
func (sm *SoundManager) PlayGameOver(variant int) {
	sm.Play(ResourceName(PoolGameOver, variant), 0)
}

// Played returns the number of sounds started
func (sm *SoundManager) Played() int64 {
	return sm.played.Load()
}

func clampPan(p float64) float64 {
	if p < -1 {
		return -1
	}
	if p > 1 {
		return 1
	}
	return p
}
