package physics

import (
	"sync/atomic"

	"github.com/lixenwraith/loco/status"
	"github.com/lixenwraith/loco/vmath"
)

// Controller integrates a body's velocity under gravity and ground/air deceleration
// Not safe for concurrent use; the owning tick loop is the only writer
type Controller struct {
	body     Body
	tuning   Tuning
	velocity vmath.Vec3
	grounded bool

	statImpulses *atomic.Int64
	statSpeed    *status.Gauge
}

// NewController binds a controller to body
// Panics on a nil body: a controller without a host entity is a wiring error
func NewController(body Body, tuning Tuning, stats *status.Registry) *Controller {
	if body == nil {
		panic("physics: controller requires a body")
	}
	if stats == nil {
		stats = status.NewRegistry()
	}
	return &Controller{
		body:         body,
		tuning:       tuning,
		statImpulses: stats.Counter(status.MovementImpulses),
		statSpeed:    stats.Gauge(status.MovementSpeed),
	}
}

// Tick advances the controller by dt seconds
func (c *Controller) Tick(dt float64) {
	if !c.grounded {
		c.velocity[1] += c.tuning.Gravity * dt
	}
	if c.grounded && c.velocity[1] < 0 {
		c.velocity[1] = 0
	}

	c.body.Move(c.velocity.Mul(dt))

	// Contact must reflect the displacement just applied
	c.grounded = c.body.IsGrounded()

	c.velocity[0] = c.DecayAxis(c.velocity[0], dt)
	c.velocity[2] = c.DecayAxis(c.velocity[2], dt)

	c.statSpeed.Set(c.velocity.Len())
}

// DecayAxis moves one horizontal component toward zero by the current decay rate
func (c *Controller) DecayAxis(v, dt float64) float64 {
	if v == 0 {
		return 0
	}
	if vmath.IsMinuscule(v, c.tuning.StopThreshold) {
		return 0
	}

	step := c.tuning.decayRate(c.grounded) * dt
	if c.tuning.ClampDecay {
		v = vmath.MoveToward(v, step)
	} else {
		v = vmath.MoveTowardUnclamped(v, step)
	}

	if vmath.IsMinuscule(v, c.tuning.StopThreshold) {
		return 0
	}
	return v
}

// ApplyImpulse adds p to the velocity, unbounded
func (c *Controller) ApplyImpulse(p vmath.Vec3) {
	c.velocity = c.velocity.Add(p)
	c.statImpulses.Add(1)
}

// Velocity returns the current velocity
func (c *Controller) Velocity() vmath.Vec3 {
	return c.velocity
}

// Grounded returns the contact state sampled on the last tick
func (c *Controller) Grounded() bool {
	return c.grounded
}

// Position returns the body position
func (c *Controller) Position() vmath.Vec3 {
	return c.body.Position()
}

// Tuning returns the controller constants
func (c *Controller) Tuning() Tuning {
	return c.tuning
}

// Reset zeroes velocity and clears contact
func (c *Controller) Reset() {
	c.velocity = vmath.Vec3{}
	c.grounded = false
	c.statSpeed.Set(0)
}
