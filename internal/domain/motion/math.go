package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the divisor magnitude below which SafeDivide returns zero.
const Epsilon = 1e-9

// Up is the default world up axis (Y-up).
var Up = mgl64.Vec3{0, 1, 0}

// SafeDivide returns a/b, or 0 when b is too close to zero.
func SafeDivide(a, b float64) float64 {
	if math.Abs(b) < Epsilon {
		return 0
	}
	return a / b
}

// SafeDivideVec divides every component of v by d, returning zero for a near-zero d.
func SafeDivideVec(v mgl64.Vec3, d float64) mgl64.Vec3 {
	if math.Abs(d) < Epsilon {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / d)
}

// SafeNormalize returns v scaled to unit length, or zero for a zero vector.
// mgl64's Normalize yields NaN components for a zero vector.
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < Epsilon {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// MoveTowards moves current toward target by at most maxDelta without overshooting.
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// MoveTowardsVec moves current toward target by at most maxDistance.
func MoveTowardsVec(current, target mgl64.Vec3, maxDistance float64) mgl64.Vec3 {
	diff := target.Sub(current)
	dist := diff.Len()
	if dist <= maxDistance || dist < Epsilon {
		return target
	}
	return current.Add(diff.Mul(maxDistance / dist))
}

// ClampMagnitude shortens v to maxLength if it is longer.
func ClampMagnitude(v mgl64.Vec3, maxLength float64) mgl64.Vec3 {
	if maxLength <= 0 {
		return mgl64.Vec3{}
	}
	l := v.Len()
	if l <= maxLength {
		return v
	}
	return v.Mul(maxLength / l)
}

// Horizontal removes the component of v along up.
func Horizontal(v, up mgl64.Vec3) mgl64.Vec3 {
	return v.Sub(up.Mul(v.Dot(up)))
}

// Vertical returns the signed component of v along up.
func Vertical(v, up mgl64.Vec3) float64 {
	return v.Dot(up)
}

// Clamp01 clamps x into [0, 1].
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Approx compares two floats with the given tolerance.
func Approx(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
