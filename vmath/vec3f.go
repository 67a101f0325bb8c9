package vmath

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is the float64 3D vector used for all positions, velocities and impulses
type Vec3 = mgl64.Vec3

// Direction returns the unit vector along v, zero-safe
// A zero-length input yields the zero vector instead of NaN components
func Direction(v Vec3) Vec3 {
	mag := v.Len()
	if mag == 0 {
		return Vec3{}
	}
	inv := 1.0 / mag
	return Vec3{v[0] * inv, v[1] * inv, v[2] * inv}
}

// MirrorX flips the X component when mirrored is true
func MirrorX(v Vec3, mirrored bool) Vec3 {
	if mirrored {
		return Vec3{-v[0], v[1], v[2]}
	}
	return v
}
