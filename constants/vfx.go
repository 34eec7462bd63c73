package constants

import "time"

// Star Burst Overlay
const (
	// StarAnimation is the length of one star burst
	StarAnimation = 300 * time.Millisecond

	// StarFrames is the number of visual frames in one burst
	StarFrames = 3

	// StarOffsetX and StarOffsetY center the burst over the mole, in cells
	StarOffsetX = 4
	StarOffsetY = 2

	// StarMaxAngle bounds the random tilt of a burst, in degrees
	StarMaxAngle = 20
)
