package physics

import (
	"github.com/lixenwraith/loco/vmath"
)

// Kinetic is a free-flying point mass integrated by the host world
type Kinetic struct {
	Pos      vmath.Vec3
	Vel      vmath.Vec3
	Grounded bool
}

// Integrate performs semi-implicit Euler integration: v = v + a*dt; p = p + v*dt
func Integrate(k *Kinetic, accel vmath.Vec3, dt float64) {
	k.Vel = k.Vel.Add(accel.Mul(dt))
	k.Pos = k.Pos.Add(k.Vel.Mul(dt))
}

// SetImpulse overrides velocity
func SetImpulse(k *Kinetic, v vmath.Vec3) {
	k.Vel = v
	if v[1] > 0 {
		k.Grounded = false
	}
}

// RestOnFloor clamps the point to the floor plane, returns true if it is in contact
// Downward velocity is cancelled on contact
func RestOnFloor(k *Kinetic, floor float64) bool {
	if k.Pos[1] > floor {
		k.Grounded = false
		return false
	}
	k.Pos[1] = floor
	if k.Vel[1] < 0 {
		k.Vel[1] = 0
	}
	k.Grounded = true
	return true
}

// StopBoundsX clamps X to [minX, maxX] and cancels velocity into the wall
// Returns true if the point was clamped
func StopBoundsX(k *Kinetic, minX, maxX float64) bool {
	x := vmath.Clamp(k.Pos[0], minX, maxX)
	if x == k.Pos[0] {
		return false
	}
	k.Pos[0] = x
	if (x == minX && k.Vel[0] < 0) || (x == maxX && k.Vel[0] > 0) {
		k.Vel[0] = 0
	}
	return true
}

// Roll decelerates horizontal velocity by friction while grounded
func Roll(k *Kinetic, friction, dt float64) {
	if !k.Grounded {
		return
	}
	step := friction * dt
	k.Vel[0] = vmath.MoveToward(k.Vel[0], step)
	k.Vel[2] = vmath.MoveToward(k.Vel[2], step)
}
