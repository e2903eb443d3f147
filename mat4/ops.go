// SPDX-License-Identifier: MIT

// Package mat4 - arithmetic kernels.
//
// Purpose:
//   - Element-wise Add/Sub, scalar Scale, matrix product Mul.
//   - Matrix × vector (linear and projective) and matrix × box.
//
// Determinism:
//   - Fixed loop orders (i → j → k); no allocation beyond the result value.

package mat4

import (
	"github.com/katalvlaran/lvmath/box"
	"github.com/katalvlaran/lvmath/vec"
)

// Add returns the element-wise sum a + b.
func (a Mat4[T]) Add(b Mat4[T]) Mat4[T] {
	for i := range a.m {
		a.m[i] += b.m[i]
	}
	return a
}

// Sub returns the element-wise difference a - b.
func (a Mat4[T]) Sub(b Mat4[T]) Mat4[T] {
	for i := range a.m {
		a.m[i] -= b.m[i]
	}
	return a
}

// Scale returns a with every coefficient multiplied by s.
func (a Mat4[T]) Scale(s T) Mat4[T] {
	for i := range a.m {
		a.m[i] *= s
	}
	return a
}

// Mul returns the matrix product a×b: r[i][j] = Σ_k a[i][k]·b[k][j].
// Not commutative; b is applied first when the result multiplies a vector.
func (a Mat4[T]) Mul(b Mat4[T]) Mat4[T] {
	var r Mat4[T]
	var i, j, base int
	for i = 0; i < Dim; i++ {
		base = i * Dim
		for j = 0; j < Dim; j++ {
			r.m[base+j] = a.m[base]*b.m[j] +
				a.m[base+1]*b.m[Dim+j] +
				a.m[base+2]*b.m[2*Dim+j] +
				a.m[base+3]*b.m[3*Dim+j]
		}
	}
	return r
}

// MulVec4 applies a to the column vector v.
func (a Mat4[T]) MulVec4(v vec.Vec4[T]) vec.Vec4[T] {
	return vec.Vec4[T]{
		X: a.m[0]*v.X + a.m[1]*v.Y + a.m[2]*v.Z + a.m[3]*v.W,
		Y: a.m[4]*v.X + a.m[5]*v.Y + a.m[6]*v.Z + a.m[7]*v.W,
		Z: a.m[8]*v.X + a.m[9]*v.Y + a.m[10]*v.Z + a.m[11]*v.W,
		W: a.m[12]*v.X + a.m[13]*v.Y + a.m[14]*v.Z + a.m[15]*v.W,
	}
}

// MulVec3 transforms the point v: it is lifted to (x, y, z, 1), multiplied by
// a, and x, y, z are divided by the resulting w.
//
// A zero w follows IEEE division: components become ±Inf or NaN. Use
// MulVec3Checked when the caller cannot guarantee w != 0.
func (a Mat4[T]) MulVec3(v vec.Vec3[T]) vec.Vec3[T] {
	invW := 1 / (a.m[12]*v.X + a.m[13]*v.Y + a.m[14]*v.Z + a.m[15])
	return vec.Vec3[T]{
		X: (a.m[0]*v.X + a.m[1]*v.Y + a.m[2]*v.Z + a.m[3]) * invW,
		Y: (a.m[4]*v.X + a.m[5]*v.Y + a.m[6]*v.Z + a.m[7]) * invW,
		Z: (a.m[8]*v.X + a.m[9]*v.Y + a.m[10]*v.Z + a.m[11]) * invW,
	}
}

// MulVec3Checked is MulVec3 with an explicit guard on the divisor.
//
// Errors:
//   - ErrZeroW when the transformed w is exactly zero (point on the eye plane
//     of a perspective projection).
func (a Mat4[T]) MulVec3Checked(v vec.Vec3[T]) (vec.Vec3[T], error) {
	h := a.MulVec4(v.Homogeneous())
	if h.W == 0 {
		return vec.Vec3[T]{}, mat4Errorf(opMulVec3, ErrZeroW)
	}
	return h.Project(), nil
}

// MulBox returns a bounding box of b transformed by a: the 8 corners go
// through MulVec3 and an empty box is enlarged to hold each of them. The
// result bounds the image of b but is not the tightest possible box under
// perspective. An empty b yields an empty box.
//
// A corner with w == 0 follows the MulVec3 IEEE rule: ±Inf widens the box to
// infinity and NaN propagates into Min/Max through the builtin min/max. Check
// Min and Max with vec.Vec3.IsFinite when b may reach the eye plane.
func (a Mat4[T]) MulBox(b box.Box3[T]) box.Box3[T] {
	r := box.Empty[T]()
	if b.IsEmpty() {
		return r
	}
	for _, c := range b.Corners() {
		r = r.Enlarge(a.MulVec3(c))
	}
	return r
}
