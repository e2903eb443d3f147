// SPDX-License-Identifier: MIT

// Package mat4 - Mat4 storage, constructors & accessors.
//
// Purpose:
//   - Hold 16 coefficients in one flat row-major array (offset = row*4 + col).
//   - Keep the public surface safe: At/Row/Col return errors instead of panicking.
//
// Complexity quicksheet:
//   - Every constructor and accessor is O(1) with no heap allocation.

package mat4

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvmath/mat3"
	"github.com/katalvlaran/lvmath/vec"
)

// Dim is the row and column count of a Mat4.
const Dim = 4

// Size is the number of coefficients of a Mat4.
const Size = Dim * Dim

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Mat4 is a 4x4 matrix stored row-major in a flat array.
// The zero value is the zero matrix.
type Mat4[T vec.Float] struct {
	m [Size]T
}

// Single- and double-precision instantiations.
type (
	Mat4f = Mat4[float32]
	Mat4d = Mat4[float64]
)

var _ fmt.Stringer = Mat4[float64]{}

// New builds a matrix from 16 scalars given row by row.
func New[T vec.Float](
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 T,
) Mat4[T] {
	return Mat4[T]{m: [Size]T{
		m00, m01, m02, m03,
		m10, m11, m12, m13,
		m20, m21, m22, m23,
		m30, m31, m32, m33,
	}}
}

// FromArray builds a matrix from a row-major coefficient array.
func FromArray[T vec.Float](a [Size]T) Mat4[T] {
	return Mat4[T]{m: a}
}

// FromSlice copies 16 row-major coefficients out of s.
//
// Errors:
//   - ErrBadLength when len(s) != 16.
func FromSlice[T vec.Float](s []T) (Mat4[T], error) {
	if len(s) != Size {
		return Mat4[T]{}, mat4Errorf(opFromSlice, ErrBadLength)
	}
	var r Mat4[T]
	copy(r.m[:], s)

	return r, nil
}

// FromRows builds a matrix from a 4×4 grid indexed [row][col].
func FromRows[T vec.Float](rows [Dim][Dim]T) Mat4[T] {
	var r Mat4[T]
	for i := 0; i < Dim; i++ {
		copy(r.m[i*Dim:(i+1)*Dim], rows[i][:])
	}
	return r
}

// FromMat3 embeds a pure linear transform: the identity with its top-left 3x3
// block replaced by a. Translation column, projection row and m33 = 1 are kept.
func FromMat3[T vec.Float](a mat3.Mat3[T]) Mat4[T] {
	return Identity[T]().WithMat3(a)
}

// Zero returns the all-zero matrix.
func Zero[T vec.Float]() Mat4[T] {
	return Mat4[T]{}
}

// Identity returns I₄.
func Identity[T vec.Float]() Mat4[T] {
	return New[T](
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// WithMat3 returns a copy of a whose top-left 3x3 block is replaced by b.
func (a Mat4[T]) WithMat3(b mat3.Mat3[T]) Mat4[T] {
	c := b.Coefficients()
	for i := 0; i < mat3.Dim; i++ {
		for j := 0; j < mat3.Dim; j++ {
			a.m[i*Dim+j] = c[i*mat3.Dim+j]
		}
	}
	return a
}

// indexOf bounds-checks (row, col) and returns the flat offset.
func indexOf(row, col int) (int, error) {
	if row < 0 || row >= Dim || col < 0 || col >= Dim {
		return 0, ErrOutOfRange
	}
	return row*Dim + col, nil
}

// At returns element (row, col).
//
// Errors:
//   - ErrOutOfRange when row or col is outside [0,4).
func (a Mat4[T]) At(row, col int) (T, error) {
	off, err := indexOf(row, col)
	if err != nil {
		return 0, mat4Errorf(opAt, fmt.Errorf("(%d,%d): %w", row, col, err))
	}
	return a.m[off], nil
}

// Row returns row i as an array.
func (a Mat4[T]) Row(i int) ([Dim]T, error) {
	if _, err := indexOf(i, 0); err != nil {
		return [Dim]T{}, mat4Errorf(opRow, fmt.Errorf("(%d): %w", i, err))
	}
	return [Dim]T{a.m[i*Dim], a.m[i*Dim+1], a.m[i*Dim+2], a.m[i*Dim+3]}, nil
}

// Col returns column j as an array.
func (a Mat4[T]) Col(j int) ([Dim]T, error) {
	if _, err := indexOf(0, j); err != nil {
		return [Dim]T{}, mat4Errorf(opCol, fmt.Errorf("(%d): %w", j, err))
	}
	return [Dim]T{a.m[j], a.m[Dim+j], a.m[2*Dim+j], a.m[3*Dim+j]}, nil
}

// Coefficients returns a copy of the row-major coefficients.
func (a Mat4[T]) Coefficients() [Size]T {
	return a.m
}

// Rows returns the coefficients as a [row][col] grid.
func (a Mat4[T]) Rows() [Dim][Dim]T {
	var g [Dim][Dim]T
	for i := 0; i < Dim; i++ {
		copy(g[i][:], a.m[i*Dim:(i+1)*Dim])
	}
	return g
}

// Equal reports exact element-wise equality (no tolerance; NaN != NaN).
func (a Mat4[T]) Equal(b Mat4[T]) bool {
	return a.m == b.m
}

// ApproxEqual reports whether |a[i]-b[i]| <= eps for every coefficient.
func (a Mat4[T]) ApproxEqual(b Mat4[T], eps T) bool {
	for i := range a.m {
		d := a.m[i] - b.m[i]
		if d < 0 {
			d = -d
		}
		if !(d <= eps) {
			return false
		}
	}
	return true
}

// IsFinite reports whether no coefficient is NaN or ±Inf.
func (a Mat4[T]) IsFinite() bool {
	for _, v := range a.m {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// Convert casts every coefficient of a to element type U. Narrowing
// (float64 → float32) is explicit at the call site.
func Convert[U, T vec.Float](a Mat4[T]) Mat4[U] {
	var r Mat4[U]
	for i, v := range a.m {
		r.m[i] = U(v)
	}
	return r
}

// String renders one bracketed row per line.
func (a Mat4[T]) String() string {
	var sb strings.Builder
	for i := 0; i < Dim; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < Dim; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", a.m[i*Dim+j])
		}
		sb.WriteString(_fmtRowClose)
	}
	return sb.String()
}
