package explosive

import "errors"

var (
	// ErrDisabled is returned by Spawn when the inventory capacity is zero
	ErrDisabled = errors.New("explosive: throwing disabled, capacity is 0")

	// ErrEmpty is returned by detonation when no explosive is live
	ErrEmpty = errors.New("explosive: no live explosives")
)
