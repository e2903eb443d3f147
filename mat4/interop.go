// SPDX-License-Identifier: MIT

// Package mat4 - interop with GL uploads and go-gl/mathgl.
//
// Mat4 is row-major; OpenGL uniforms (transpose=false) and mathgl matrices
// are column-major. Converting re-addresses the same 16 coefficients so the
// represented linear map is unchanged: element (i,j) goes to index j*4+i.

package mat4

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/lvmath/vec"
)

// ColumnMajor returns the coefficients in OpenGL upload order
// (glUniformMatrix4fv with transpose = GL_FALSE).
func (a Mat4[T]) ColumnMajor() [Size]T {
	return a.Transpose().m
}

// FromColumnMajor builds a matrix from coefficients in OpenGL order.
func FromColumnMajor[T vec.Float](c [Size]T) Mat4[T] {
	return Mat4[T]{m: c}.Transpose()
}

// ToMGL32 converts a to a mathgl single-precision matrix.
func ToMGL32[T vec.Float](a Mat4[T]) mgl32.Mat4 {
	var r mgl32.Mat4
	for i, v := range a.ColumnMajor() {
		r[i] = float32(v)
	}
	return r
}

// ToMGL64 converts a to a mathgl double-precision matrix.
func ToMGL64[T vec.Float](a Mat4[T]) mgl64.Mat4 {
	var r mgl64.Mat4
	for i, v := range a.ColumnMajor() {
		r[i] = float64(v)
	}
	return r
}

// FromMGL32 converts a mathgl single-precision matrix to Mat4[T].
func FromMGL32[T vec.Float](m mgl32.Mat4) Mat4[T] {
	var c [Size]T
	for i, v := range m {
		c[i] = T(v)
	}
	return FromColumnMajor(c)
}

// FromMGL64 converts a mathgl double-precision matrix to Mat4[T].
func FromMGL64[T vec.Float](m mgl64.Mat4) Mat4[T] {
	var c [Size]T
	for i, v := range m {
		c[i] = T(v)
	}
	return FromColumnMajor(c)
}
