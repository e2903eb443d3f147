// SPDX-License-Identifier: MIT

// Package mat4 - named transform factories.
//
// Conventions:
//   - Right-handed coordinates, column vectors (v' = M·v).
//   - Angles are in degrees; trigonometry is evaluated in float64 and
//     narrowed to T, so float32 and float64 share the same formulas.
//   - Projections follow the OpenGL clip-space convention (NDC z ∈ [-1, 1],
//     camera looking down -z).

package mat4

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/vec"
)

// Radians converts degrees to radians (deg·π/180).
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Translate returns the matrix moving points by v (fourth column = v).
func Translate[T vec.Float](v vec.Vec3[T]) Mat4[T] {
	return New[T](
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1,
	)
}

// Scaling returns the matrix scaling each axis by the matching component of s.
func Scaling[T vec.Float](s vec.Vec3[T]) Mat4[T] {
	return New[T](
		s.X, 0, 0, 0,
		0, s.Y, 0, 0,
		0, 0, s.Z, 0,
		0, 0, 0, 1,
	)
}

// cosSin returns (cos, sin) of deg degrees narrowed to T.
func cosSin[T vec.Float](deg T) (T, T) {
	s, c := math.Sincos(Radians(float64(deg)))
	return T(c), T(s)
}

// RotateX returns the rotation of angle degrees about +x (y toward z).
func RotateX[T vec.Float](angle T) Mat4[T] {
	ca, sa := cosSin(angle)
	return New[T](
		1, 0, 0, 0,
		0, ca, -sa, 0,
		0, sa, ca, 0,
		0, 0, 0, 1,
	)
}

// RotateY returns the rotation of angle degrees about +y (z toward x).
func RotateY[T vec.Float](angle T) Mat4[T] {
	ca, sa := cosSin(angle)
	return New[T](
		ca, 0, sa, 0,
		0, 1, 0, 0,
		-sa, 0, ca, 0,
		0, 0, 0, 1,
	)
}

// RotateZ returns the rotation of angle degrees about +z (x toward y).
func RotateZ[T vec.Float](angle T) Mat4[T] {
	ca, sa := cosSin(angle)
	return New[T](
		ca, -sa, 0, 0,
		sa, ca, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Perspective returns the OpenGL symmetric-frustum projection
// (gluPerspective): with f = 1/tan(radians(fovy)/2),
//
//	| f/aspect  0   0                      0                     |
//	| 0         f   0                      0                     |
//	| 0         0   (far+near)/(near-far)  2·far·near/(near-far) |
//	| 0         0  -1                      0                     |
//
// The near plane z = -near maps to NDC z = -1, the far plane to +1.
//
// Errors:
//   - ErrDegenerateProjection when aspect == 0, near == far, an input is not
//     finite, or fovy makes f infinite (fovy ≡ 0 mod 360).
func Perspective[T vec.Float](fovy, aspect, zNear, zFar T) (Mat4[T], error) {
	if !finite(fovy, aspect, zNear, zFar) {
		return Mat4[T]{}, mat4Errorf(opPerspective, fmt.Errorf("non-finite input: %w", ErrDegenerateProjection))
	}
	if aspect == 0 {
		return Mat4[T]{}, mat4Errorf(opPerspective, fmt.Errorf("aspect == 0: %w", ErrDegenerateProjection))
	}
	if zNear == zFar {
		return Mat4[T]{}, mat4Errorf(opPerspective, fmt.Errorf("zNear == zFar == %g: %w", zNear, ErrDegenerateProjection))
	}
	f := T(1 / math.Tan(Radians(float64(fovy))/2))
	if !finite(f) {
		return Mat4[T]{}, mat4Errorf(opPerspective, fmt.Errorf("fovy %g: %w", fovy, ErrDegenerateProjection))
	}
	nf := zNear - zFar

	return New[T](
		f/aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (zFar+zNear)/nf, (2*zFar*zNear)/nf,
		0, 0, -1, 0,
	), nil
}

// Ortho returns the orthographic projection mapping the box
// [xLeft,xRight]×[yBottom,yTop]×[-zNear,-zFar] onto the NDC cube (glOrtho).
//
// Errors:
//   - ErrDegenerateProjection when xRight == xLeft, yTop == yBottom,
//     zFar == zNear, or an input is not finite.
func Ortho[T vec.Float](xRight, xLeft, yTop, yBottom, zNear, zFar T) (Mat4[T], error) {
	if !finite(xRight, xLeft, yTop, yBottom, zNear, zFar) {
		return Mat4[T]{}, mat4Errorf(opOrtho, fmt.Errorf("non-finite input: %w", ErrDegenerateProjection))
	}
	switch {
	case xRight == xLeft:
		return Mat4[T]{}, mat4Errorf(opOrtho, fmt.Errorf("xRight == xLeft: %w", ErrDegenerateProjection))
	case yTop == yBottom:
		return Mat4[T]{}, mat4Errorf(opOrtho, fmt.Errorf("yTop == yBottom: %w", ErrDegenerateProjection))
	case zFar == zNear:
		return Mat4[T]{}, mat4Errorf(opOrtho, fmt.Errorf("zFar == zNear: %w", ErrDegenerateProjection))
	}
	rl, tb, fn := xRight-xLeft, yTop-yBottom, zFar-zNear
	tx := -(xRight + xLeft) / rl
	ty := -(yTop + yBottom) / tb
	tz := -(zFar + zNear) / fn

	return New[T](
		2/rl, 0, 0, tx,
		0, 2/tb, 0, ty,
		0, 0, -2/fn, tz,
		0, 0, 0, 1,
	), nil
}

// MustPerspective is Perspective for literal parameters; it panics on error.
func MustPerspective[T vec.Float](fovy, aspect, zNear, zFar T) Mat4[T] {
	m, err := Perspective(fovy, aspect, zNear, zFar)
	if err != nil {
		panic(err)
	}
	return m
}

// MustOrtho is Ortho for literal parameters; it panics on error.
func MustOrtho[T vec.Float](xRight, xLeft, yTop, yBottom, zNear, zFar T) Mat4[T] {
	m, err := Ortho(xRight, xLeft, yTop, yBottom, zNear, zFar)
	if err != nil {
		panic(err)
	}
	return m
}

func finite[T vec.Float](xs ...T) bool {
	for _, x := range xs {
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
