// SPDX-License-Identifier: MIT

// Package mat3 provides Mat3, the 3x3 linear block of a 4x4 transform.
//
// Storage is a single flat [9]T array in row-major order: element (i,j)
// lives at index i*3+j. Methods have value receivers and never mutate.
package mat3

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmath/vec"
)

// Dim is the row and column count of a Mat3.
const Dim = 3

// ErrOutOfRange indicates a row or column index outside [0,3).
var ErrOutOfRange = errors.New("mat3: index out of range")

// Mat3 is a 3x3 matrix in row-major order.
type Mat3[T vec.Float] struct {
	m [Dim * Dim]T
}

// Single- and double-precision instantiations.
type (
	Mat3f = Mat3[float32]
	Mat3d = Mat3[float64]
)

// New builds a matrix from 9 scalars given row by row.
func New[T vec.Float](
	m00, m01, m02,
	m10, m11, m12,
	m20, m21, m22 T,
) Mat3[T] {
	return Mat3[T]{m: [Dim * Dim]T{
		m00, m01, m02,
		m10, m11, m12,
		m20, m21, m22,
	}}
}

// FromArray builds a matrix from a row-major coefficient array.
func FromArray[T vec.Float](a [Dim * Dim]T) Mat3[T] {
	return Mat3[T]{m: a}
}

// Identity returns I₃.
func Identity[T vec.Float]() Mat3[T] {
	return New[T](1, 0, 0, 0, 1, 0, 0, 0, 1)
}

// At returns element (row, col).
//
// Errors:
//   - ErrOutOfRange when row or col is outside [0,3).
func (a Mat3[T]) At(row, col int) (T, error) {
	if row < 0 || row >= Dim || col < 0 || col >= Dim {
		return 0, fmt.Errorf("At: (%d,%d): %w", row, col, ErrOutOfRange)
	}
	return a.m[row*Dim+col], nil
}

// Coefficients returns a copy of the row-major coefficients.
func (a Mat3[T]) Coefficients() [Dim * Dim]T {
	return a.m
}

// Transpose returns aᵀ.
func (a Mat3[T]) Transpose() Mat3[T] {
	return New(
		a.m[0], a.m[3], a.m[6],
		a.m[1], a.m[4], a.m[7],
		a.m[2], a.m[5], a.m[8],
	)
}

// Mul returns the matrix product a×b.
func (a Mat3[T]) Mul(b Mat3[T]) Mat3[T] {
	var r Mat3[T]
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			r.m[i*Dim+j] = a.m[i*Dim]*b.m[j] + a.m[i*Dim+1]*b.m[Dim+j] + a.m[i*Dim+2]*b.m[2*Dim+j]
		}
	}
	return r
}

// MulVec3 applies a to v.
func (a Mat3[T]) MulVec3(v vec.Vec3[T]) vec.Vec3[T] {
	return vec.Vec3[T]{
		X: a.m[0]*v.X + a.m[1]*v.Y + a.m[2]*v.Z,
		Y: a.m[3]*v.X + a.m[4]*v.Y + a.m[5]*v.Z,
		Z: a.m[6]*v.X + a.m[7]*v.Y + a.m[8]*v.Z,
	}
}

// Determinant returns det(a) by expansion along the first row.
func (a Mat3[T]) Determinant() T {
	return a.m[0]*(a.m[4]*a.m[8]-a.m[7]*a.m[5]) -
		a.m[1]*(a.m[3]*a.m[8]-a.m[6]*a.m[5]) +
		a.m[2]*(a.m[3]*a.m[7]-a.m[6]*a.m[4])
}

// Convert casts every coefficient of a to U.
func Convert[U, T vec.Float](a Mat3[T]) Mat3[U] {
	var r Mat3[U]
	for i, v := range a.m {
		r.m[i] = U(v)
	}
	return r
}

// String renders one bracketed row per line.
func (a Mat3[T]) String() string {
	var sb strings.Builder
	for i := 0; i < Dim; i++ {
		fmt.Fprintf(&sb, "[%g, %g, %g]\n", a.m[i*Dim], a.m[i*Dim+1], a.m[i*Dim+2])
	}
	return sb.String()
}
