package constants

import "time"

// Round Timing
const (
	// RoundSeconds is the default length of one round
	RoundSeconds = 30

	// CountdownStep is the amount of provider time per countdown decrement
	CountdownStep = time.Second

	// GameOverSoundDelay defers the round-over sound past the last hit sound
	GameOverSoundDelay = 300 * time.Millisecond
)

// Grid Layout
const (
	// GridRows and GridCols give the default 3x3 field
	GridRows = 3
	GridCols = 3

	// MaxHoles is bounded by the digit hot-keys 1-9
	MaxHoles = 9

	// MoleIDPrefix forms mole identifiers: mole-1 ... mole-N
	MoleIDPrefix = "mole-"
)
