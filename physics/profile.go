package physics

import (
	"github.com/lixenwraith/loco/parameter"
)

// Tuning holds the movement constants of one controller
type Tuning struct {
	// Gravity is a signed Y acceleration, negative pulls down
	Gravity float64

	// GroundFriction and AirDrag are non-negative decelerations applied per axis
	GroundFriction float64
	AirDrag        float64

	// StopThreshold snaps components at or below this magnitude to zero
	StopThreshold float64

	// ClampDecay stops a decaying component at zero instead of letting it cross over
	ClampDecay bool
}

// DefaultTuning returns the parameter defaults
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:        parameter.Gravity,
		GroundFriction: parameter.GroundFriction,
		AirDrag:        parameter.AirDrag,
		StopThreshold:  parameter.StopThreshold,
		ClampDecay:     parameter.ClampDecay,
	}
}

// decayRate selects the horizontal deceleration for the current contact state
func (t Tuning) decayRate(grounded bool) float64 {
	if grounded {
		return t.GroundFriction
	}
	return t.AirDrag
}
