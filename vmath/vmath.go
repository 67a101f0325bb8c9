package vmath

import (
	"math"
)

// IsMinuscule reports whether v is non-zero with magnitude at or below threshold
func IsMinuscule(v, threshold float64) bool {
	return v != 0 && math.Abs(v) <= threshold
}

// MoveToward reduces |v| by step without crossing zero
// step is expected non-negative
func MoveToward(v, step float64) float64 {
	switch {
	case v > 0:
		v -= step
		if v < 0 {
			return 0
		}
	case v < 0:
		v += step
		if v > 0 {
			return 0
		}
	}
	return v
}

// MoveTowardUnclamped subtracts step in the direction of v's sign
// The result may cross zero when step exceeds |v|
func MoveTowardUnclamped(v, step float64) float64 {
	switch {
	case v > 0:
		return v - step
	case v < 0:
		return v + step
	}
	return v
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt restricts v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AddClampInt returns clamp(v+delta, lo, hi) without overflowing
// v must already lie in [lo, hi]
func AddClampInt(v, delta, lo, hi int) int {
	switch {
	case delta > hi-v:
		return hi
	case delta < lo-v:
		return lo
	}
	return v + delta
}
