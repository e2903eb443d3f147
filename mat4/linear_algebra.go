// SPDX-License-Identifier: MIT

// Package mat4 - structural kernels: transpose, adjugate, determinant, inverse.
//
// Implementation notes:
//   - Adjoint and Determinant share one 3x3 minor helper so that
//     Inverse = Adjoint · (1/Determinant) uses identical cofactors.
//   - Determinant is the Laplace expansion along row 0.

package mat4

import (
	"math"

	"github.com/katalvlaran/lvmath/mat3"
)

// Transpose returns aᵀ.
func (a Mat4[T]) Transpose() Mat4[T] {
	var r Mat4[T]
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			r.m[j*Dim+i] = a.m[i*Dim+j]
		}
	}
	return r
}

// minor returns the determinant of the 3x3 submatrix built from rows
// (r0, r1, r2) and columns (c0, c1, c2) of a.
func (a Mat4[T]) minor(r0, r1, r2, c0, c1, c2 int) T {
	m := &a.m
	return m[r0*Dim+c0]*(m[r1*Dim+c1]*m[r2*Dim+c2]-m[r2*Dim+c1]*m[r1*Dim+c2]) -
		m[r0*Dim+c1]*(m[r1*Dim+c0]*m[r2*Dim+c2]-m[r2*Dim+c0]*m[r1*Dim+c2]) +
		m[r0*Dim+c2]*(m[r1*Dim+c0]*m[r2*Dim+c1]-m[r2*Dim+c0]*m[r1*Dim+c1])
}

// Adjoint returns the classical adjugate of a (transpose of the cofactor
// matrix): entry (i,j) is (-1)^(i+j) times the minor that deletes row j and
// column i.
func (a Mat4[T]) Adjoint() Mat4[T] {
	return New(
		a.minor(1, 2, 3, 1, 2, 3),
		-a.minor(0, 2, 3, 1, 2, 3),
		a.minor(0, 1, 3, 1, 2, 3),
		-a.minor(0, 1, 2, 1, 2, 3),

		-a.minor(1, 2, 3, 0, 2, 3),
		a.minor(0, 2, 3, 0, 2, 3),
		-a.minor(0, 1, 3, 0, 2, 3),
		a.minor(0, 1, 2, 0, 2, 3),

		a.minor(1, 2, 3, 0, 1, 3),
		-a.minor(0, 2, 3, 0, 1, 3),
		a.minor(0, 1, 3, 0, 1, 3),
		-a.minor(0, 1, 2, 0, 1, 3),

		-a.minor(1, 2, 3, 0, 1, 2),
		a.minor(0, 2, 3, 0, 1, 2),
		-a.minor(0, 1, 3, 0, 1, 2),
		a.minor(0, 1, 2, 0, 1, 2),
	)
}

// Determinant returns det(a) by cofactor expansion along the first row.
func (a Mat4[T]) Determinant() T {
	return a.m[0]*a.minor(1, 2, 3, 1, 2, 3) -
		a.m[1]*a.minor(1, 2, 3, 0, 2, 3) +
		a.m[2]*a.minor(1, 2, 3, 0, 1, 3) -
		a.m[3]*a.minor(1, 2, 3, 0, 1, 2)
}

// Inverse returns a⁻¹ = adj(a) / det(a). Each cofactor is divided by det
// directly, so a tiny det whose reciprocal overflows T still inverts.
//
// Errors:
//   - ErrNonFinite when det(a) or any coefficient of the result is NaN or ±Inf.
//   - ErrSingular when |det(a)| <= eps (DefaultEpsilon unless WithEpsilon).
//
// Complexity:
//   - 16 3x3 minors (adjugate) + 4 (determinant); constant time, no allocation.
func (a Mat4[T]) Inverse(opts ...Option) (Mat4[T], error) {
	o := NewOptions(opts...)
	det := a.Determinant()
	d := float64(det)
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return Mat4[T]{}, mat4Errorf(opInverse, ErrNonFinite)
	}
	if math.Abs(d) <= o.eps {
		return Mat4[T]{}, mat4Errorf(opInverse, ErrSingular)
	}

	r := a.Adjoint()
	for i := range r.m {
		r.m[i] /= det
	}
	if !r.IsFinite() {
		return Mat4[T]{}, mat4Errorf(opInverse, ErrNonFinite)
	}
	return r, nil
}

// IsInvertible reports whether Inverse would succeed under the same options.
func (a Mat4[T]) IsInvertible(opts ...Option) bool {
	_, err := a.Inverse(opts...)
	return err == nil
}

// Mat3x3 returns the top-left linear block, dropping translation and the
// projective row.
func (a Mat4[T]) Mat3x3() mat3.Mat3[T] {
	return mat3.New(
		a.m[0], a.m[1], a.m[2],
		a.m[4], a.m[5], a.m[6],
		a.m[8], a.m[9], a.m[10],
	)
}

// Trace returns the sum of the diagonal.
func (a Mat4[T]) Trace() T {
	return a.m[0] + a.m[5] + a.m[10] + a.m[15]
}
