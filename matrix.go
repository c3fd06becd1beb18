// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

// Mat4 is a row-major 4×4 affine transform. This package reads only
// the rotation and translation sub-blocks; construction and general
// matrix algebra belong to the caller.
type Mat4 struct {
	M11, M12, M13, M14 float32
	M21, M22, M23, M24 float32
	M31, M32, M33, M34 float32
	M41, M42, M43, M44 float32
}

// Mat4Ident returns the identity transform.
func Mat4Ident() Mat4 { return Mat4{M11: 1, M22: 1, M33: 1, M44: 1} }

// Translation returns the translation row of m.
func (m Mat4) Translation() Vec3 { return Vec3{m.M41, m.M42, m.M43} }

// Mat3x2 is a row-major 3×2 affine transform of the plane.
type Mat3x2 struct {
	M11, M12 float32
	M21, M22 float32
	M31, M32 float32
}

// Mat3x2Ident returns the identity transform.
func Mat3x2Ident() Mat3x2 { return Mat3x2{M11: 1, M22: 1} }

// Translation returns the translation row of m.
func (m Mat3x2) Translation() Vec2 { return Vec2{m.M31, m.M32} }
