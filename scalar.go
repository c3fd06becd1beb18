// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Epsilon is the smallest float32 that the host arithmetic
// distinguishes from zero: the smallest denormal, or the smallest
// normal number when the host flushes denormals to zero.
// It is resolved once, before any other package code runs.
var Epsilon = resolveEpsilon()

// minDenormal must be a variable so the comparison in resolveEpsilon
// happens at run time, where flush-to-zero applies.
var minDenormal = math.Float32frombits(1)

func resolveEpsilon() float32 {
	if minDenormal == 0 {
		return math.Float32frombits(0x00800000)
	}
	return minDenormal
}

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// ToRadians converts deg to radians. The multiply happens in float64
// and narrows afterwards.
func ToRadians(deg float32) float32 { return float32(float64(deg) * degToRad) }

// ToDegrees converts rad to degrees. The multiply happens in float64
// and narrows afterwards.
func ToDegrees(rad float32) float32 { return float32(float64(rad) * radToDeg) }

// WrapAngle reduces angle to the interval (-π, π].
func WrapAngle(angle float32) float32 {
	a := math32.Mod(angle, 2*math32.Pi)
	switch {
	case a <= -math32.Pi:
		a += 2 * math32.Pi
	case a > math32.Pi:
		a -= 2 * math32.Pi
	}
	return a
}

// Repeat wraps value into [0, length].
func Repeat(value, length float32) float32 {
	return Clamp(value-math32.Floor(value/length)*length, 0, length)
}

// PingPong bounces value between 0 and length as a triangle wave.
func PingPong(value, length float32) float32 {
	value = Repeat(value, 2*length)
	return length - math32.Abs(value-length)
}

// DeltaAngle returns the shortest signed delta between two angles in
// degrees. The result lies in (-180, 180].
func DeltaAngle(current, target float32) float32 {
	d := Repeat(target-current, 360)
	if d > 180 {
		d -= 360
	}
	return d
}

// DeltaAngleRad is DeltaAngle for angles in radians. The result lies
// in (-π, π].
func DeltaAngleRad(current, target float32) float32 {
	d := Repeat(target-current, 2*math32.Pi)
	if d > math32.Pi {
		d -= 2 * math32.Pi
	}
	return d
}

// CopySign returns x with y's sign bit. The transplant is bit-level,
// so NaN and ±0 keep their sign semantics.
func CopySign(x, y float32) float32 { return math32.Copysign(x, y) }

// Sign returns 1 for x >= 0 and -1 otherwise.
func Sign(x float32) float32 {
	if x >= 0 {
		return 1
	}
	return -1
}

// Approximately reports whether a and b are equal within a combined
// relative and absolute tolerance.
func Approximately(a, b float32) bool {
	return math32.Abs(b-a) < Max(1e-6*Max(math32.Abs(a), math32.Abs(b)), Epsilon*8)
}

// Clamp limits x to [lo, hi].
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Clamp01 limits x to [0, 1].
func Clamp01(x float32) float32 { return Clamp(x, 0, 1) }

// Lerp interpolates from a to b by t, unclamped.
func Lerp(a, b, t float32) float32 { return a + (b-a)*t }

// LerpClamped interpolates from a to b with t clamped to [0, 1].
func LerpClamped(a, b, t float32) float32 { return Lerp(a, b, Clamp01(t)) }

// Min returns the smallest of xs, or 0 when called with no arguments.
func Min[T constraints.Float](xs ...T) T {
	if len(xs) == 0 {
		return 0
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

// Max returns the largest of xs, or 0 when called with no arguments.
func Max[T constraints.Float](xs ...T) T {
	if len(xs) == 0 {
		return 0
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

// InvSqrt approximates 1/√x from the bit-shift initial guess plus one
// Newton-Raphson step. It trades precision for speed and is not
// bit-identical to 1/math32.Sqrt(x).
func InvSqrt(x float32) float32 {
	i := math.Float32bits(x)
	i = 0x5f3759df - i>>1
	y := math.Float32frombits(i)
	return y * (1.5 - 0.5*x*y*y)
}

// SmoothDamp moves current toward target like a critically damped
// spring. velocity persists across calls and is updated in place;
// maxSpeed limits the rate of approach. smoothTime is roughly the
// time the value lags behind the target and is floored at 1e-4.
func SmoothDamp(current, target float32, velocity *float32, smoothTime, maxSpeed, deltaTime float32) float32 {
	smoothTime = Max(smoothTime, 1e-4)
	omega := 2 / smoothTime

	// Rational approximation of exp(-omega*deltaTime).
	x := omega * deltaTime
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	original := target
	maxChange := maxSpeed * smoothTime
	change = Clamp(change, -maxChange, maxChange)
	target = current - change

	temp := (*velocity + omega*change) * deltaTime
	*velocity = (*velocity - omega*temp) * exp
	output := target + (change+temp)*exp

	// Snap when the spring passes the original target.
	if (original-current > 0) == (output > original) {
		output = original
		*velocity = (output - original) / deltaTime
	}
	return output
}

// SmoothDampAngle is SmoothDamp for angles in degrees. The target is
// first resolved to the nearest equivalent angle so the spring never
// takes the long way around a wrap boundary.
func SmoothDampAngle(current, target float32, velocity *float32, smoothTime, maxSpeed, deltaTime float32) float32 {
	target = current + DeltaAngle(current, target)
	return SmoothDamp(current, target, velocity, smoothTime, maxSpeed, deltaTime)
}

// LineIntersection returns the intersection of the infinite lines
// through p1, p2 and through p3, p4. ok is false when the lines are
// parallel.
func LineIntersection(p1, p2, p3, p4 Vec2) (p Vec2, ok bool) {
	bx := p2.X - p1.X
	by := p2.Y - p1.Y
	dx := p4.X - p3.X
	dy := p4.Y - p3.Y
	det := bx*dy - by*dx
	if det == 0 {
		return Vec2{}, false
	}
	cx := p3.X - p1.X
	cy := p3.Y - p1.Y
	t := (cx*dy - cy*dx) / det
	return Vec2{p1.X + t*bx, p1.Y + t*by}, true
}

// LineSegmentIntersection is LineIntersection restricted to the
// segments p1p2 and p3p4.
func LineSegmentIntersection(p1, p2, p3, p4 Vec2) (Vec2, bool) {
	bx := p2.X - p1.X
	by := p2.Y - p1.Y
	dx := p4.X - p3.X
	dy := p4.Y - p3.Y
	det := bx*dy - by*dx
	if det == 0 {
		return Vec2{}, false
	}
	cx := p3.X - p1.X
	cy := p3.Y - p1.Y
	t := (cx*dy - cy*dx) / det
	if t < 0 || t > 1 {
		return Vec2{}, false
	}
	u := (cx*by - cy*bx) / det
	if u < 0 || u > 1 {
		return Vec2{}, false
	}
	return Vec2{p1.X + t*bx, p1.Y + t*by}, true
}
