// SPDX-License-Identifier: MIT

package vec

import "gonum.org/v1/gonum/spatial/r3"

// ConvertVec3 casts every component of v to U.
// Narrowing (float64 → float32) rounds to nearest; the conversion is always
// explicit at the call site.
func ConvertVec3[U, T Float](v Vec3[T]) Vec3[U] {
	return Vec3[U]{U(v.X), U(v.Y), U(v.Z)}
}

// ConvertVec4 casts every component of v to U.
func ConvertVec4[U, T Float](v Vec4[T]) Vec4[U] {
	return Vec4[U]{U(v.X), U(v.Y), U(v.Z), U(v.W)}
}

// ToR3 widens v into a gonum r3.Vec.
func ToR3[T Float](v Vec3[T]) r3.Vec {
	return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// FromR3 converts a gonum r3.Vec into a Vec3 of element type T.
func FromR3[T Float](v r3.Vec) Vec3[T] {
	return Vec3[T]{T(v.X), T(v.Y), T(v.Z)}
}
