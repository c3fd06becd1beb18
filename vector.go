// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package linear implements vector, quaternion and scalar math for
// animation and motion.
//
// All types are immutable float32 values. Degenerate numeric inputs
// follow IEEE-754 propagation: normalizing a zero vector yields
// infinities or NaNs rather than an error, and any correction such as
// clamping or renormalization is explicit at the call site.
package linear

import (
	"github.com/chewxy/math32"
)

// Vec2 is a 2-component vector of float32.
type Vec2 struct {
	X, Y float32
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Mul returns the componentwise product of v and w.
func (v Vec2) Mul(w Vec2) Vec2 { return Vec2{v.X * w.X, v.Y * w.Y} }

// Div returns the componentwise quotient of v and w.
func (v Vec2) Div(w Vec2) Vec2 { return Vec2{v.X / w.X, v.Y / w.Y} }

// Scale returns s ⋅ v.
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

// Dot returns v ⋅ w.
func (v Vec2) Dot(w Vec2) float32 { return v.X*w.X + v.Y*w.Y }

// Cross returns the 2D scalar cross product, the determinant |v w|.
func (v Vec2) Cross(w Vec2) float32 { return v.X*w.Y - v.Y*w.X }

// LenSq returns the squared length of v. Prefer it over Len in hot
// paths that only compare magnitudes.
func (v Vec2) LenSq() float32 { return v.Dot(v) }

// Len returns the length of v.
func (v Vec2) Len() float32 { return math32.Sqrt(v.LenSq()) }

// Norm returns v normalized.
func (v Vec2) Norm() Vec2 { return v.Scale(1 / v.Len()) }

// NormFast returns v normalized using InvSqrt. Cheaper than Norm and
// not bit-identical to it.
func (v Vec2) NormFast() Vec2 { return v.Scale(InvSqrt(v.LenSq())) }

// Reflect returns v reflected off the plane with unit normal n.
func (v Vec2) Reflect(n Vec2) Vec2 { return v.Sub(n.Scale(2 * v.Dot(n))) }

// Abs returns the componentwise absolute value of v.
func (v Vec2) Abs() Vec2 { return Vec2{math32.Abs(v.X), math32.Abs(v.Y)} }

// Min returns the componentwise minimum of v and w.
func (v Vec2) Min(w Vec2) Vec2 { return Vec2{math32.Min(v.X, w.X), math32.Min(v.Y, w.Y)} }

// Max returns the componentwise maximum of v and w.
func (v Vec2) Max(w Vec2) Vec2 { return Vec2{math32.Max(v.X, w.X), math32.Max(v.Y, w.Y)} }

// Clamp limits v to the box [lo, hi] componentwise. The lower bound
// is applied first, so hi wins for components where lo exceeds hi.
// This matches shader clamp semantics and is intentional.
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{
		math32.Min(math32.Max(v.X, lo.X), hi.X),
		math32.Min(math32.Max(v.Y, lo.Y), hi.Y),
	}
}

// Lerp interpolates from v to w by t, unclamped.
func (v Vec2) Lerp(w Vec2, t float32) Vec2 { return v.Add(w.Sub(v).Scale(t)) }

// LerpClamped interpolates from v to w with t clamped to [0, 1].
func (v Vec2) LerpClamped(w Vec2, t float32) Vec2 { return v.Lerp(w, Clamp01(t)) }

// Distance returns the distance between v and w.
func (v Vec2) Distance(w Vec2) float32 { return v.Sub(w).Len() }

// DistanceSq returns the squared distance between v and w.
func (v Vec2) DistanceSq(w Vec2) float32 { return v.Sub(w).LenSq() }

// At returns the component at index i. The index wraps modulo the
// component count, so out-of-range and negative indices are
// tolerated rather than rejected.
func (v Vec2) At(i int) float32 {
	if (i%2+2)%2 == 0 {
		return v.X
	}
	return v.Y
}

// YX returns the components of v swapped.
func (v Vec2) YX() Vec2 { return Vec2{v.Y, v.X} }

// Vec3 returns v extended with a zero Z component.
func (v Vec2) Vec3() Vec3 { return Vec3{v.X, v.Y, 0} }

// TransformMat3x2 applies the planar affine transform m to v.
func (v Vec2) TransformMat3x2(m Mat3x2) Vec2 {
	return Vec2{
		v.X*m.M11 + v.Y*m.M21 + m.M31,
		v.X*m.M12 + v.Y*m.M22 + m.M32,
	}
}

// TransformMat4 applies the rotation and translation of m to v, with
// v treated as lying on the XY plane.
func (v Vec2) TransformMat4(m Mat4) Vec2 {
	return Vec2{
		v.X*m.M11 + v.Y*m.M21 + m.M41,
		v.X*m.M12 + v.Y*m.M22 + m.M42,
	}
}

// Vec3 is a 3-component vector of float32.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Mul returns the componentwise product of v and w.
func (v Vec3) Mul(w Vec3) Vec3 { return Vec3{v.X * w.X, v.Y * w.Y, v.Z * w.Z} }

// Div returns the componentwise quotient of v and w.
func (v Vec3) Div(w Vec3) Vec3 { return Vec3{v.X / w.X, v.Y / w.Y, v.Z / w.Z} }

// Scale returns s ⋅ v.
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns v ⋅ w.
func (v Vec3) Dot(w Vec3) float32 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// LenSq returns the squared length of v. Prefer it over Len in hot
// paths that only compare magnitudes.
func (v Vec3) LenSq() float32 { return v.Dot(v) }

// Len returns the length of v.
func (v Vec3) Len() float32 { return math32.Sqrt(v.LenSq()) }

// Norm returns v normalized.
func (v Vec3) Norm() Vec3 { return v.Scale(1 / v.Len()) }

// NormFast returns v normalized using InvSqrt. Cheaper than Norm and
// not bit-identical to it.
func (v Vec3) NormFast() Vec3 { return v.Scale(InvSqrt(v.LenSq())) }

// Reflect returns v reflected off the plane with unit normal n.
func (v Vec3) Reflect(n Vec3) Vec3 { return v.Sub(n.Scale(2 * v.Dot(n))) }

// Abs returns the componentwise absolute value of v.
func (v Vec3) Abs() Vec3 { return Vec3{math32.Abs(v.X), math32.Abs(v.Y), math32.Abs(v.Z)} }

// Min returns the componentwise minimum of v and w.
func (v Vec3) Min(w Vec3) Vec3 {
	return Vec3{math32.Min(v.X, w.X), math32.Min(v.Y, w.Y), math32.Min(v.Z, w.Z)}
}

// Max returns the componentwise maximum of v and w.
func (v Vec3) Max(w Vec3) Vec3 {
	return Vec3{math32.Max(v.X, w.X), math32.Max(v.Y, w.Y), math32.Max(v.Z, w.Z)}
}

// Clamp limits v to the box [lo, hi] componentwise. The lower bound
// is applied first, so hi wins for components where lo exceeds hi.
// This matches shader clamp semantics and is intentional.
func (v Vec3) Clamp(lo, hi Vec3) Vec3 {
	return Vec3{
		math32.Min(math32.Max(v.X, lo.X), hi.X),
		math32.Min(math32.Max(v.Y, lo.Y), hi.Y),
		math32.Min(math32.Max(v.Z, lo.Z), hi.Z),
	}
}

// Lerp interpolates from v to w by t, unclamped.
func (v Vec3) Lerp(w Vec3, t float32) Vec3 { return v.Add(w.Sub(v).Scale(t)) }

// LerpClamped interpolates from v to w with t clamped to [0, 1].
func (v Vec3) LerpClamped(w Vec3, t float32) Vec3 { return v.Lerp(w, Clamp01(t)) }

// Distance returns the distance between v and w.
func (v Vec3) Distance(w Vec3) float32 { return v.Sub(w).Len() }

// DistanceSq returns the squared distance between v and w.
func (v Vec3) DistanceSq(w Vec3) float32 { return v.Sub(w).LenSq() }

// At returns the component at index i. The index wraps modulo the
// component count, so out-of-range and negative indices are
// tolerated rather than rejected.
func (v Vec3) At(i int) float32 {
	switch (i%3 + 3) % 3 {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// XY returns the X and Y components of v.
func (v Vec3) XY() Vec2 { return Vec2{v.X, v.Y} }

// XZ returns the X and Z components of v.
func (v Vec3) XZ() Vec2 { return Vec2{v.X, v.Z} }

// YZ returns the Y and Z components of v.
func (v Vec3) YZ() Vec2 { return Vec2{v.Y, v.Z} }

// XZY returns v with the Y and Z components swapped.
func (v Vec3) XZY() Vec3 { return Vec3{v.X, v.Z, v.Y} }

// YXZ returns v with the X and Y components swapped.
func (v Vec3) YXZ() Vec3 { return Vec3{v.Y, v.X, v.Z} }

// YZX returns v with the components rotated left.
func (v Vec3) YZX() Vec3 { return Vec3{v.Y, v.Z, v.X} }

// ZXY returns v with the components rotated right.
func (v Vec3) ZXY() Vec3 { return Vec3{v.Z, v.X, v.Y} }

// ZYX returns v with the components reversed.
func (v Vec3) ZYX() Vec3 { return Vec3{v.Z, v.Y, v.X} }

// TransformMat4 applies the rotation and translation of m to v,
// treating v as a row vector.
func (v Vec3) TransformMat4(m Mat4) Vec3 {
	return Vec3{
		v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31 + m.M41,
		v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32 + m.M42,
		v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33 + m.M43,
	}
}

// TransformQuat rotates v by q without materializing a matrix. The
// expansion matches Quat.Mat4, so transforming by q and by q.Mat4()
// agree.
func (v Vec3) TransformQuat(q Quat) Vec3 {
	x := 2 * (q.Y*v.Z - q.Z*v.Y)
	y := 2 * (q.Z*v.X - q.X*v.Z)
	z := 2 * (q.X*v.Y - q.Y*v.X)
	return Vec3{
		v.X + x*q.W + q.Y*z - q.Z*y,
		v.Y + y*q.W + q.Z*x - q.X*z,
		v.Z + z*q.W + q.X*y - q.Y*x,
	}
}

// Dot2 returns v ⋅ w.
func Dot2(v, w Vec2) float32 { return v.Dot(w) }

// Dot3 returns v ⋅ w.
func Dot3(v, w Vec3) float32 { return v.Dot(w) }

// Cross returns v × w.
func Cross(v, w Vec3) Vec3 { return v.Cross(w) }

// Lerp2 interpolates from v to w by t, unclamped.
func Lerp2(v, w Vec2, t float32) Vec2 { return v.Lerp(w, t) }

// Lerp3 interpolates from v to w by t, unclamped.
func Lerp3(v, w Vec3, t float32) Vec3 { return v.Lerp(w, t) }
