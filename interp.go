// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"github.com/chewxy/math32"
)

// Scalar blend functions for animation. Each unclamped form
// extrapolates freely outside [0, 1]; the Clamped forms clamp t
// first. Callers interpolate vectors by applying these componentwise.

// InterpCosine eases between a and b along a half cosine wave.
func InterpCosine(a, b, t float32) float32 {
	return Lerp(a, b, (1-math32.Cos(t*math32.Pi))/2)
}

// InterpCosineClamped is InterpCosine with t clamped to [0, 1].
func InterpCosineClamped(a, b, t float32) float32 {
	return InterpCosine(a, b, Clamp01(t))
}

// InterpSine eases out between a and b along a quarter sine wave.
func InterpSine(a, b, t float32) float32 {
	return Lerp(a, b, math32.Sin(t*math32.Pi/2))
}

// InterpSineClamped is InterpSine with t clamped to [0, 1].
func InterpSineClamped(a, b, t float32) float32 {
	return InterpSine(a, b, Clamp01(t))
}

// InterpCubic eases between a and b with the 3t²-2t³ blend.
func InterpCubic(a, b, t float32) float32 {
	return Lerp(a, b, t*t*(3-2*t))
}

// InterpCubicClamped is InterpCubic with t clamped to [0, 1].
func InterpCubicClamped(a, b, t float32) float32 {
	return InterpCubic(a, b, Clamp01(t))
}

// InterpQuintic eases between a and b with the 6t⁵-15t⁴+10t³ blend.
func InterpQuintic(a, b, t float32) float32 {
	return Lerp(a, b, t*t*t*(t*(t*6-15)+10))
}

// InterpQuinticClamped is InterpQuintic with t clamped to [0, 1].
func InterpQuinticClamped(a, b, t float32) float32 {
	return InterpQuintic(a, b, Clamp01(t))
}

// Hermite interpolates between value1 and value2 along the cubic with
// the given endpoint tangents. The polynomial coefficients are
// computed in float64 so extreme value/tangent magnitude ratios do
// not produce NaN in the intermediate products.
func Hermite(value1, tangent1, value2, tangent2, amount float32) float32 {
	v1 := float64(value1)
	v2 := float64(value2)
	t1 := float64(tangent1)
	t2 := float64(tangent2)
	a := float64(amount)
	squared := a * a
	cubed := a * squared
	var r float64
	switch amount {
	case 0:
		r = v1
	case 1:
		r = v2
	default:
		r = (2*v1-2*v2+t2+t1)*cubed + (3*v2-3*v1-2*t1-t2)*squared + t1*a + v1
	}
	return float32(r)
}

// CatmullRom interpolates between value2 and value3 along the
// Catmull-Rom spline through the four control values. Like Hermite,
// the coefficients are computed in float64.
func CatmullRom(value1, value2, value3, value4, amount float32) float32 {
	v1 := float64(value1)
	v2 := float64(value2)
	v3 := float64(value3)
	v4 := float64(value4)
	a := float64(amount)
	squared := a * a
	cubed := a * squared
	r := 0.5 * (2*v2 + (v3-v1)*a +
		(2*v1-5*v2+4*v3-v4)*squared +
		(3*v2-v1-3*v3+v4)*cubed)
	return float32(r)
}

// SmoothStep eases between a and b with zero-tangent Hermite blending
// and t clamped to [0, 1].
func SmoothStep(a, b, t float32) float32 {
	return Hermite(a, 0, b, 0, Clamp01(t))
}

// SmoothStepCubic is SmoothStep without the clamp.
func SmoothStepCubic(a, b, t float32) float32 {
	return Hermite(a, 0, b, 0, t)
}

// LerpAngle interpolates between angles in degrees along the shorter
// arc, with t clamped to [0, 1].
func LerpAngle(a, b, t float32) float32 {
	d := Repeat(b-a, 360)
	if d > 180 {
		d -= 360
	}
	return a + d*Clamp01(t)
}

// LerpAngleRad is LerpAngle for angles in radians.
func LerpAngleRad(a, b, t float32) float32 {
	d := Repeat(b-a, 2*math32.Pi)
	if d > math32.Pi {
		d -= 2 * math32.Pi
	}
	return a + d*Clamp01(t)
}

// MoveTowards steps current toward target by at most maxDelta,
// without overshooting.
func MoveTowards(current, target, maxDelta float32) float32 {
	if math32.Abs(target-current) <= maxDelta {
		return target
	}
	return current + CopySign(maxDelta, target-current)
}

// MoveTowardsAngle steps between angles in degrees by at most
// maxDelta along the shorter arc.
func MoveTowardsAngle(current, target, maxDelta float32) float32 {
	delta := DeltaAngle(current, target)
	if -maxDelta < delta && delta < maxDelta {
		return target
	}
	return MoveTowards(current, current+delta, maxDelta)
}
