package input

import (
	"fmt"
	"sort"

	"github.com/lixenwraith/loco/event"
)

// Action is a semantic key binding target
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionThrow
	ActionDetonate
	ActionForceUp
	ActionForceDown
	ActionFaceLeft
	ActionFaceRight
	ActionReset
)

// actionRegistry maps canonical action names used in key config to actions
var actionRegistry = map[string]Action{
	"none":       ActionNone, // unbind sentinel
	"quit":       ActionQuit,
	"throw":      ActionThrow,
	"detonate":   ActionDetonate,
	"force_up":   ActionForceUp,
	"force_down": ActionForceDown,
	"face_left":  ActionFaceLeft,
	"face_right": ActionFaceRight,
	"reset":      ActionReset,
}

// actionEvents maps gameplay actions to queued events; quit and none stay in the host
var actionEvents = map[Action]event.EventType{
	ActionThrow:     event.EventThrow,
	ActionDetonate:  event.EventDetonate,
	ActionForceUp:   event.EventForceIncrease,
	ActionForceDown: event.EventForceDecrease,
	ActionFaceLeft:  event.EventFaceLeft,
	ActionFaceRight: event.EventFaceRight,
	ActionReset:     event.EventReset,
}

// ActionByName resolves a config action name
func ActionByName(name string) (Action, error) {
	a, ok := actionRegistry[name]
	if !ok {
		return ActionNone, fmt.Errorf("unknown action %q", name)
	}
	return a, nil
}

// ActionNames returns all registered action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for n := range actionRegistry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (a Action) String() string {
	for name, v := range actionRegistry {
		if v == a {
			return name
		}
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// Event returns the queued event for a gameplay action
func (a Action) Event() (event.EventType, bool) {
	t, ok := actionEvents[a]
	return t, ok
}
