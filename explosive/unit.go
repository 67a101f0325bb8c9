package explosive

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/lixenwraith/loco/vmath"
)

// State is the lifecycle state of a Unit
type State uint8

const (
	StateLive State = iota
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateLive:
		return "live"
	case StateDestroyed:
		return "destroyed"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Unit is one placed explosive backed by a host entity
// Live -> Destroyed is the only transition, by detonation or eviction
type Unit struct {
	id     uuid.UUID
	world  World
	radius float64
	force  float64
	state  State
}

func newUnit(world World, id uuid.UUID, force, radius float64) *Unit {
	return &Unit{
		id:     id,
		world:  world,
		radius: radius,
		force:  force,
		state:  StateLive,
	}
}

// ID returns the host entity id
func (u *Unit) ID() uuid.UUID { return u.id }

// Radius returns the blast radius
func (u *Unit) Radius() float64 { return u.radius }

// Force returns the force captured when the unit was thrown
func (u *Unit) Force() float64 { return u.force }

// State returns the lifecycle state
func (u *Unit) State() State { return u.state }

// IsLive reports whether the unit can still be detonated
func (u *Unit) IsLive() bool { return u.state == StateLive }

// Position reads the unit position from the host
// Panics if the host lost the entity of a live unit
func (u *Unit) Position() vmath.Vec3 {
	pos, ok := u.world.Position(u.id)
	if !ok {
		panic(fmt.Sprintf("explosive: host has no transform for unit %s", u.id))
	}
	return pos
}

// Detonate pushes target along the blast direction when it lies within radius, then despawns
// Returns true if the target was hit
func (u *Unit) Detonate(target Target, force float64) bool {
	if u.state != StateLive {
		panic(fmt.Sprintf("explosive: detonate on %s unit %s", u.state, u.id))
	}

	pos := u.Position()
	toTarget := target.Position().Sub(pos)
	// Inclusive, compared on the length itself
	dist := toTarget.Len()
	hit := dist <= u.radius
	if hit {
		log.Printf("[Explosive] %s hit target at distance %.2f", u.id, dist)
		target.ApplyImpulse(vmath.Direction(toTarget).Mul(force))
	}

	u.Despawn()
	return hit
}

// Despawn destroys the host entity; repeated calls are no-ops
func (u *Unit) Despawn() {
	if u.state == StateDestroyed {
		return
	}
	u.state = StateDestroyed
	u.world.Destroy(u.id)
}
