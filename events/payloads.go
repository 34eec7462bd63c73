package events

// MoleHitPayload describes a press on a hole
type MoleHitPayload struct {
	MoleID string
	Hole   int
	X, Y   int
	Score  int // Score after the press
}

// RoundOverPayload summarizes the finished round
type RoundOverPayload struct {
	RoundID string
	Score   int
	Best    int
}
