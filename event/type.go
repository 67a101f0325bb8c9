package event

import "fmt"

// EventType represents the type of player action event
type EventType int

const (
	// EventThrow spawns an explosive at the player's hand
	// Trigger: input (throw) | Consumer: Player
	EventThrow EventType = iota

	// EventDetonate detonates the most recently thrown explosive
	// Trigger: input (detonate) | Consumer: Player
	EventDetonate

	// EventForceIncrease raises the global explosion force by Amount steps
	// Trigger: input (force_up) | Consumer: Player
	EventForceIncrease

	// EventForceDecrease lowers the global explosion force by Amount steps
	// Trigger: input (force_down) | Consumer: Player
	EventForceDecrease

	// EventFaceLeft and EventFaceRight turn the throwing hand
	// Trigger: input (face_left, face_right) | Consumer: Player
	EventFaceLeft
	EventFaceRight

	// EventReset clears explosives and returns the player to spawn
	// Trigger: input (reset) | Consumer: Player
	EventReset
)

var typeNames = map[EventType]string{
	EventThrow:         "EventThrow",
	EventDetonate:      "EventDetonate",
	EventForceIncrease: "EventForceIncrease",
	EventForceDecrease: "EventForceDecrease",
	EventFaceLeft:      "EventFaceLeft",
	EventFaceRight:     "EventFaceRight",
	EventReset:         "EventReset",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// Event is a single queued action
// Amount is a repeat count, treated as 1 when zero
type Event struct {
	Type   EventType
	Amount int
}

// Steps returns the effective repeat count
func (e Event) Steps() int {
	if e.Amount <= 0 {
		return 1
	}
	return e.Amount
}
