package explosive

import (
	"log"

	"github.com/lixenwraith/loco/vmath"
)

// Force is the player's tunable explosion force, clamped to [min, max]
type Force struct {
	value     int
	min, max  int
	observers []ForceObserver
}

// NewForce creates a force clamped to [min, max]; initial is clamped as well
func NewForce(initial, min, max int) *Force {
	if min > max {
		panic("explosive: force bounds inverted")
	}
	return &Force{
		value: vmath.ClampInt(initial, min, max),
		min:   min,
		max:   max,
	}
}

// Value returns the current force
func (f *Force) Value() int { return f.value }

// Bounds returns the clamp range
func (f *Force) Bounds() (min, max int) { return f.min, f.max }

// Adjust adds delta, clamps and notifies observers; returns the new value
// Saturates instead of overflowing for deltas near the int limits
func (f *Force) Adjust(delta int) int {
	f.value = vmath.AddClampInt(f.value, delta, f.min, f.max)
	log.Printf("[Force] changed global explosion force to %d", f.value)
	for _, o := range f.observers {
		o.ForceChanged(f.value)
	}
	return f.value
}

// Subscribe registers o for change notifications
func (f *Force) Subscribe(o ForceObserver) {
	if o == nil {
		return
	}
	f.observers = append(f.observers, o)
}
