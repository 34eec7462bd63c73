package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit       // q, Esc, Ctrl+C
	IntentToggleMute // m
	IntentNewRound   // r
	IntentResize     // Terminal resize event
	IntentHit        // Left press over a hole, or its digit key
)

// String returns the intent name for logs
func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentToggleMute:
		return "mute"
	case IntentNewRound:
		return "new_round"
	case IntentResize:
		return "resize"
	case IntentHit:
		return "hit"
	default:
		return "none"
	}
}

// Intent represents a parsed semantic action
// X and Y carry the hit cell for IntentHit and the new size for IntentResize
type Intent struct {
	Type IntentType
	Hole int
	X, Y int
}
