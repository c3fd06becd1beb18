// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"github.com/chewxy/math32"
)

// Quat is a rotation expressed as a quaternion of float32. X, Y and Z
// hold the imaginary axis⋅sin(θ/2) part and W the real cos(θ/2) part.
//
// Operations never normalize their operands or results. Euler and
// axis-angle extraction are only correct for unit quaternions, and
// callers must renormalize after repeated composition to limit drift.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdent returns the identity rotation.
func QuatIdent() Quat { return Quat{W: 1} }

// QuatFromVS builds a quaternion from a vector part and a scalar part.
func QuatFromVS(v Vec3, s float32) Quat { return Quat{v.X, v.Y, v.Z, s} }

// QuatAxisAngle builds a rotation of angle radians about axis. The
// axis must already be unit length; it is not validated.
func QuatAxisAngle(axis Vec3, angle float32) Quat {
	half := angle * 0.5
	s := math32.Sin(half)
	return Quat{axis.X * s, axis.Y * s, axis.Z * s, math32.Cos(half)}
}

// QuatYawPitchRoll builds a rotation from yaw about Y, pitch about X
// and roll about Z, applied in roll, pitch, yaw order. The half-angle
// product combination fixes the handedness; do not reorder terms.
func QuatYawPitchRoll(yaw, pitch, roll float32) Quat {
	halfRoll := roll * 0.5
	sr, cr := math32.Sin(halfRoll), math32.Cos(halfRoll)
	halfPitch := pitch * 0.5
	sp, cp := math32.Sin(halfPitch), math32.Cos(halfPitch)
	halfYaw := yaw * 0.5
	sy, cy := math32.Sin(halfYaw), math32.Cos(halfYaw)
	return Quat{
		cy*sp*cr + sy*cp*sr,
		sy*cp*cr - cy*sp*sr,
		cy*cp*sr - sy*sp*cr,
		cy*cp*cr + sy*sp*sr,
	}
}

// QuatEuler builds a rotation from Euler angles in radians, with
// angles.X the pitch, angles.Y the yaw and angles.Z the roll.
func QuatEuler(angles Vec3) Quat {
	return QuatYawPitchRoll(angles.Y, angles.X, angles.Z)
}

// QuatEulerDeg is QuatEuler with angles in degrees.
func QuatEulerDeg(angles Vec3) Quat {
	return QuatYawPitchRoll(ToRadians(angles.Y), ToRadians(angles.X), ToRadians(angles.Z))
}

// QuatFromMat4 extracts the rotation of the upper-left 3×3 block of
// m, which must be orthonormal. The branch on the dominant diagonal
// element keeps every square root away from zero.
func QuatFromMat4(m Mat4) Quat {
	tr := m.M11 + m.M22 + m.M33
	if tr > 0 {
		s := math32.Sqrt(tr + 1)
		w := s * 0.5
		s = 0.5 / s
		return Quat{(m.M23 - m.M32) * s, (m.M31 - m.M13) * s, (m.M12 - m.M21) * s, w}
	}
	if m.M11 >= m.M22 && m.M11 >= m.M33 {
		s := math32.Sqrt(1 + m.M11 - m.M22 - m.M33)
		inv := 0.5 / s
		return Quat{0.5 * s, (m.M12 + m.M21) * inv, (m.M13 + m.M31) * inv, (m.M23 - m.M32) * inv}
	}
	if m.M22 > m.M33 {
		s := math32.Sqrt(1 + m.M22 - m.M11 - m.M33)
		inv := 0.5 / s
		return Quat{(m.M21 + m.M12) * inv, 0.5 * s, (m.M32 + m.M23) * inv, (m.M31 - m.M13) * inv}
	}
	s := math32.Sqrt(1 + m.M33 - m.M11 - m.M22)
	inv := 0.5 / s
	return Quat{(m.M31 + m.M13) * inv, (m.M32 + m.M23) * inv, 0.5 * s, (m.M12 - m.M21) * inv}
}

// Add returns q + r.
func (q Quat) Add(r Quat) Quat { return Quat{q.X + r.X, q.Y + r.Y, q.Z + r.Z, q.W + r.W} }

// Sub returns q - r.
func (q Quat) Sub(r Quat) Quat { return Quat{q.X - r.X, q.Y - r.Y, q.Z - r.Z, q.W - r.W} }

// Neg returns -q, which represents the same rotation as q.
func (q Quat) Neg() Quat { return Quat{-q.X, -q.Y, -q.Z, -q.W} }

// Scale returns s ⋅ q.
func (q Quat) Scale(s float32) Quat { return Quat{q.X * s, q.Y * s, q.Z * s, q.W * s} }

// Dot returns q ⋅ r.
func (q Quat) Dot(r Quat) float32 { return q.X*r.X + q.Y*r.Y + q.Z*r.Z + q.W*r.W }

// LenSq returns the squared length of q.
func (q Quat) LenSq() float32 { return q.Dot(q) }

// Len returns the length of q.
func (q Quat) Len() float32 { return math32.Sqrt(q.LenSq()) }

// Norm returns q normalized.
func (q Quat) Norm() Quat { return q.Scale(1 / q.Len()) }

// Conj returns the conjugate of q.
func (q Quat) Conj() Quat { return Quat{-q.X, -q.Y, -q.Z, q.W} }

// Inv returns the inverse of q. A zero quaternion yields infinite
// components, which propagate per IEEE-754.
func (q Quat) Inv() Quat { return q.Conj().Scale(1 / q.LenSq()) }

// Mul returns the Hamilton product q ⋅ r: vector part
// qv×rv + q.W⋅rv + r.W⋅qv, scalar part q.W⋅r.W - qv⋅rv. The product
// is non-commutative; transforming a vector by q ⋅ r applies r's
// rotation first.
func (q Quat) Mul(r Quat) Quat {
	qv := Vec3{q.X, q.Y, q.Z}
	rv := Vec3{r.X, r.Y, r.Z}
	u := qv.Cross(rv).Add(rv.Scale(q.W)).Add(qv.Scale(r.W))
	return Quat{u.X, u.Y, u.Z, q.W*r.W - qv.Dot(rv)}
}

// At returns the component at index i in X, Y, Z, W order. The index
// wraps modulo 4, so out-of-range and negative indices are tolerated
// rather than rejected.
func (q Quat) At(i int) float32 {
	switch (i%4 + 4) % 4 {
	case 0:
		return q.X
	case 1:
		return q.Y
	case 2:
		return q.Z
	default:
		return q.W
	}
}

// AxisAngle returns the rotation axis and the angle in radians.
// q must be normalized; the identity rotation has no defined axis and
// yields NaN components.
func (q Quat) AxisAngle() (Vec3, float32) {
	s := math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	return Vec3{q.X / s, q.Y / s, q.Z / s}, 2 * math32.Acos(q.W)
}

// Mat4 expands q into a row-major rotation matrix. QuatFromMat4
// inverts this expansion, and Vec3.TransformQuat agrees with it.
func (q Quat) Mat4() Mat4 {
	xx := q.X * q.X
	yy := q.Y * q.Y
	zz := q.Z * q.Z
	xy := q.X * q.Y
	xz := q.X * q.Z
	yz := q.Y * q.Z
	wx := q.W * q.X
	wy := q.W * q.Y
	wz := q.W * q.Z
	m := Mat4Ident()
	m.M11 = 1 - 2*(yy+zz)
	m.M12 = 2 * (xy + wz)
	m.M13 = 2 * (xz - wy)
	m.M21 = 2 * (xy - wz)
	m.M22 = 1 - 2*(xx+zz)
	m.M23 = 2 * (yz + wx)
	m.M31 = 2 * (xz + wy)
	m.M32 = 2 * (yz - wx)
	m.M33 = 1 - 2*(xx+yy)
	return m
}

// Euler returns the Euler angles of q in radians, with X the pitch,
// Y the yaw and Z the roll, each normalized to [0, 2π). q must be
// normalized.
//
// Within 0.05% of a pole the extraction collapses: pitch is fixed at
// ±π/2, yaw absorbs the recoverable rotation and roll is forced to 0.
// The 0.4995 threshold (rather than 0.5) leaves a dead zone that
// keeps asin inside its domain under float32 round-off.
func (q Quat) Euler() Vec3 {
	unit := q.LenSq()
	test := q.X*q.W - q.Y*q.Z
	switch {
	case test > 0.4995*unit:
		return NormalizeAngles(Vec3{math32.Pi / 2, 2 * math32.Atan2(q.Y, q.X), 0})
	case test < -0.4995*unit:
		return NormalizeAngles(Vec3{-math32.Pi / 2, -2 * math32.Atan2(q.Y, q.X), 0})
	}
	p := Quat{q.W, q.Z, q.X, q.Y}
	return NormalizeAngles(Vec3{
		math32.Asin(2 * (p.X*p.Z - p.W*p.Y)),
		math32.Atan2(2*p.X*p.W+2*p.Y*p.Z, 1-2*(p.Z*p.Z+p.W*p.W)),
		math32.Atan2(2*p.X*p.Y+2*p.Z*p.W, 1-2*(p.Y*p.Y+p.Z*p.Z)),
	})
}

// EulerDeg is Euler with the angles converted to degrees.
func (q Quat) EulerDeg() Vec3 {
	e := q.Euler()
	return Vec3{ToDegrees(e.X), ToDegrees(e.Y), ToDegrees(e.Z)}
}

// NormalizeAngles maps each component of v into [0, 2π).
func NormalizeAngles(v Vec3) Vec3 {
	return Vec3{normalizeAngle(v.X), normalizeAngle(v.Y), normalizeAngle(v.Z)}
}

func normalizeAngle(a float32) float32 {
	a = math32.Mod(a, 2*math32.Pi)
	if a < 0 {
		a += 2 * math32.Pi
	}
	return a
}

// Slerp interpolates between a and b along the shorter great-circle
// arc. When the inputs are nearly parallel the sin(omega) division is
// skipped in favor of a linear blend of the coefficients.
func Slerp(a, b Quat, t float32) Quat {
	cosOmega := a.Dot(b)
	flip := false
	if cosOmega < 0 {
		flip = true
		cosOmega = -cosOmega
	}
	var s1, s2 float32
	if cosOmega > 1-1e-6 {
		s1 = 1 - t
		s2 = t
	} else {
		omega := math32.Acos(cosOmega)
		invSin := 1 / math32.Sin(omega)
		s1 = math32.Sin((1-t)*omega) * invSin
		s2 = math32.Sin(t*omega) * invSin
	}
	if flip {
		s2 = -s2
	}
	return a.Scale(s1).Add(b.Scale(s2))
}

// QuatLerp blends from a toward b's nearer hemisphere:
// Normalize((b ⋅ sign(a⋅b) - a) ⋅ t). Note that a is not added back,
// so this is not the conventional nlerp; the formula is kept exactly
// as motion code expects it to behave.
func QuatLerp(a, b Quat, t float32) Quat {
	if a.Dot(b) < 0 {
		b = b.Neg()
	}
	return b.Sub(a).Scale(t).Norm()
}

// Concatenate returns the rotation that applies a first and then b,
// which is the product b ⋅ a.
func Concatenate(a, b Quat) Quat { return b.Mul(a) }
