// SPDX-License-Identifier: MIT

// Package box provides Box3, an axis-aligned bounding box over vec.Vec3.
//
// Purpose:
//   - Accumulate bounds point by point (Enlarge) starting from Empty.
//   - Serve as the input/output of mat4.Mat4.MulBox.
//
// Invariants:
//   - An empty box has Min = +Inf and Max = -Inf on every axis, so the first
//     Enlarge collapses it onto the point and Union with an empty box is a no-op.
//   - A non-empty box satisfies Min.i <= Max.i on every axis i.
package box

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/vec"
)

// Box3 is an axis-aligned box given by its minimum and maximum corners.
type Box3[T vec.Float] struct {
	Min, Max vec.Vec3[T]
}

// Single- and double-precision instantiations.
type (
	Box3f = Box3[float32]
	Box3d = Box3[float64]
)

// Empty returns the box that contains no point.
func Empty[T vec.Float]() Box3[T] {
	pos, neg := T(math.Inf(1)), T(math.Inf(-1))
	return Box3[T]{
		Min: vec.Vec3[T]{X: pos, Y: pos, Z: pos},
		Max: vec.Vec3[T]{X: neg, Y: neg, Z: neg},
	}
}

// New returns the box spanned by two opposite corners, in any order.
func New[T vec.Float](a, b vec.Vec3[T]) Box3[T] {
	return Empty[T]().Enlarge(a).Enlarge(b)
}

// IsEmpty reports whether b contains no point.
func (b Box3[T]) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Enlarge returns the smallest box containing both b and p.
func (b Box3[T]) Enlarge(p vec.Vec3[T]) Box3[T] {
	return Box3[T]{
		Min: vec.Vec3[T]{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y), Z: min(b.Min.Z, p.Z)},
		Max: vec.Vec3[T]{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y), Z: max(b.Max.Z, p.Z)},
	}
}

// Union returns the smallest box containing both b and o.
func (b Box3[T]) Union(o Box3[T]) Box3[T] {
	if o.IsEmpty() {
		return b
	}
	return b.Enlarge(o.Min).Enlarge(o.Max)
}

// Contains reports whether p lies inside b (bounds inclusive).
func (b Box3[T]) Contains(p vec.Vec3[T]) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Center returns the midpoint of b. Undefined for an empty box.
func (b Box3[T]) Center() vec.Vec3[T] {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent of b along each axis. Undefined for an empty box.
func (b Box3[T]) Size() vec.Vec3[T] {
	return b.Max.Sub(b.Min)
}

// Corners returns the 8 corners of b, x varying fastest, then y, then z.
func (b Box3[T]) Corners() [8]vec.Vec3[T] {
	lo, hi := b.Min, b.Max
	return [8]vec.Vec3[T]{
		{X: lo.X, Y: lo.Y, Z: lo.Z},
		{X: hi.X, Y: lo.Y, Z: lo.Z},
		{X: lo.X, Y: hi.Y, Z: lo.Z},
		{X: hi.X, Y: hi.Y, Z: lo.Z},
		{X: lo.X, Y: lo.Y, Z: hi.Z},
		{X: hi.X, Y: lo.Y, Z: hi.Z},
		{X: lo.X, Y: hi.Y, Z: hi.Z},
		{X: hi.X, Y: hi.Y, Z: hi.Z},
	}
}

// Convert casts both corners of b to element type U.
func Convert[U, T vec.Float](b Box3[T]) Box3[U] {
	return Box3[U]{Min: vec.ConvertVec3[U](b.Min), Max: vec.ConvertVec3[U](b.Max)}
}

// String implements fmt.Stringer.
func (b Box3[T]) String() string {
	if b.IsEmpty() {
		return "[empty]"
	}
	return fmt.Sprintf("[%v .. %v]", b.Min, b.Max)
}
