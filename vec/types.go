// SPDX-License-Identifier: MIT

// Package vec - vector value types.
//
// Purpose:
//   - Hold 3- and 4-component vectors for any Float element type.
//   - Keep every operation pure (value receiver → new value).
//
// Notes:
//   - Equality is exact (==); use ApproxEqual for tolerance-based checks.

package vec

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the numeric element constraint for lvmath types.
type Float interface {
	constraints.Float
}

// Vec3 is a 3-component vector.
type Vec3[T Float] struct {
	X, Y, Z T
}

// Vec4 is a 4-component homogeneous vector.
type Vec4[T Float] struct {
	X, Y, Z, W T
}

// Single- and double-precision instantiations.
type (
	Vec3f = Vec3[float32]
	Vec3d = Vec3[float64]
	Vec4f = Vec4[float32]
	Vec4d = Vec4[float64]
)

// Compile-time assertions for fmt.Stringer conformance.
var (
	_ fmt.Stringer = Vec3[float64]{}
	_ fmt.Stringer = Vec4[float64]{}
)

// ---------- Vec3 ----------

// Add returns v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v multiplied by s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the scalar product v·o.
func (v Vec3[T]) Dot(o Vec3[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the right-handed vector product v×o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean norm, evaluated in float64.
func (v Vec3[T]) Length() T {
	return T(math.Sqrt(float64(v.Dot(v))))
}

// Homogeneous lifts v to a point (x, y, z, 1).
func (v Vec3[T]) Homogeneous() Vec4[T] {
	return Vec4[T]{v.X, v.Y, v.Z, 1}
}

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec3[T]) ApproxEqual(o Vec3[T], eps T) bool {
	return absDiff(v.X, o.X) <= eps && absDiff(v.Y, o.Y) <= eps && absDiff(v.Z, o.Z) <= eps
}

// IsFinite reports whether no component is NaN or ±Inf.
func (v Vec3[T]) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// String implements fmt.Stringer.
func (v Vec3[T]) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// ---------- Vec4 ----------

// Add returns v + o.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub returns v - o.
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// Scale returns v multiplied by s.
func (v Vec4[T]) Scale(s T) Vec4[T] {
	return Vec4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Dot returns the 4D scalar product.
func (v Vec4[T]) Dot(o Vec4[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// XYZ drops the w component without dividing.
func (v Vec4[T]) XYZ() Vec3[T] {
	return Vec3[T]{v.X, v.Y, v.Z}
}

// Project performs the perspective divide (x/w, y/w, z/w).
// A zero w follows IEEE division and yields ±Inf or NaN components.
func (v Vec4[T]) Project() Vec3[T] {
	inv := 1 / v.W
	return Vec3[T]{v.X * inv, v.Y * inv, v.Z * inv}
}

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec4[T]) ApproxEqual(o Vec4[T], eps T) bool {
	return absDiff(v.X, o.X) <= eps && absDiff(v.Y, o.Y) <= eps &&
		absDiff(v.Z, o.Z) <= eps && absDiff(v.W, o.W) <= eps
}

// String implements fmt.Stringer.
func (v Vec4[T]) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}

// ---------- helpers ----------

func absDiff[T Float](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

func isFinite[T Float](x T) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
