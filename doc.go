// SPDX-License-Identifier: MIT

// Package lvmath is a small transform-algebra kit for OpenGL-style 3D
// pipelines, generic over float32 and float64.
//
// Packages:
//
//	vec/      - Float constraint, Vec3 and Vec4, gonum r3 bridges
//	box/      - Box3 axis-aligned bounding box (empty box + Enlarge)
//	mat3/     - Mat3 linear 3x3 block
//	mat4/     - Mat4 transforms: arithmetic, adjoint, determinant, inverse,
//	            translate/rotate/scale, perspective and orthographic
//	            projections, mathgl interop
//	viewport/ - reshape/projection pipeline and quadrant viewports
//	cmd/quadview - prints a triangle projected into four viewports
//
// Matrices are plain comparable values stored row-major in a flat array.
// Nothing mutates its receiver, so values are safe to share between
// goroutines.
//
// Quick start:
//
//	proj := mat4.MustPerspective(60.0, 4.0/3.0, 1.0, 100.0)
//	view := mat4.Translate(vec.Vec3d{Z: -5})
//	mvp := proj.Mul(view)
//	ndc := mvp.MulVec3(vec.Vec3d{X: 1})
//	inv, err := mvp.Inverse() // mat4.ErrSingular if det == 0
package lvmath
