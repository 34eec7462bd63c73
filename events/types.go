package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventMoleHit signals a scoring hit
	// Trigger: Game.Hit | Payload: *MoleHitPayload
	EventMoleHit EventType = iota

	// EventMoleWhiff signals a press that landed on a hidden mole or empty cell
	// Trigger: Game.Hit | Payload: *MoleHitPayload
	EventMoleWhiff

	// EventCountdownStart signals the first mole tick of a round
	// Trigger: Game.Update when the countdown flag is first observed | Payload: nil
	EventCountdownStart

	// EventRoundOver signals the round timer reached zero
	// Pushed exactly once per round by the owner; moles never self-elect
	// Consumer: Game (time-up all moles, schedule game-over sound) | Payload: *RoundOverPayload
	EventRoundOver

	// EventMuteToggle signals a request to flip the mute flag
	// Trigger: input 'm' | Payload: nil
	EventMuteToggle

	// EventRoundReset signals a request to tear down the round and start a new one
	// Trigger: input 'r' | Payload: nil
	EventRoundReset
)

// String returns a log-friendly name
func (t EventType) String() string {
	switch t {
	case EventMoleHit:
		return "mole_hit"
	case EventMoleWhiff:
		return "mole_whiff"
	case EventCountdownStart:
		return "countdown_start"
	case EventRoundOver:
		return "round_over"
	case EventMuteToggle:
		return "mute_toggle"
	case EventRoundReset:
		return "round_reset"
	default:
		return "unknown"
	}
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
