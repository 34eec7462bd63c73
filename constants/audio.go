package constants

import "time"

// Speaker
const (
	// SampleRate is the playback sample rate in Hz
	SampleRate = 48000

	// SpeakerBuffer is the speaker buffer length
	SpeakerBuffer = 100 * time.Millisecond
)

// Sound Pools
const (
	// HitSoundCount is the number of hit-sfx<N> variants
	HitSoundCount = 16

	// GameOverSoundCount is the number of gameover-sfx<N> variants
	GameOverSoundCount = 5

	// HitSoundPrefix and GameOverSoundPrefix name pool resources
	HitSoundPrefix      = "hit-sfx"
	GameOverSoundPrefix = "gameover-sfx"
)

// Hit Sound Timing
const (
	HitSoundDuration = 120 * time.Millisecond
	HitSoundAttack   = 3 * time.Millisecond
	HitSoundRelease  = 90 * time.Millisecond

	// HitSoundBaseFreq is the pitch of hit-sfx1; each variant steps up a semitone
	HitSoundBaseFreq = 220.0
)

// Game Over Sound Timing
const (
	GameOverNoteDuration = 180 * time.Millisecond
	GameOverNoteAttack   = 5 * time.Millisecond
	GameOverNoteRelease  = 120 * time.Millisecond
	GameOverRest         = 60 * time.Millisecond

	// GameOverNotes is the length of the descending phrase
	GameOverNotes = 4
)

// Volumes (0.0-1.0)
const (
	DefaultMasterVolume   = 0.8
	DefaultHitVolume      = 0.6
	DefaultGameOverVolume = 0.7
)
