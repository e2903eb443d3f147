// SPDX-License-Identifier: MIT

// Package mat4 - public API facades.
//
// Purpose:
//   - Thin entry points that compose the canonical kernels; no loop duplication.

package mat4

import "github.com/katalvlaran/lvmath/vec"

// Compose returns ms[0]·ms[1]·…·ms[n-1]; the last matrix is applied first to
// a vector. Compose() with no argument is the identity.
func Compose[T vec.Float](ms ...Mat4[T]) Mat4[T] {
	r := Identity[T]()
	for _, m := range ms {
		r = r.Mul(m)
	}
	return r
}

// TransformPoints applies MulVec3 to every point and returns a new slice.
func TransformPoints[T vec.Float](a Mat4[T], pts []vec.Vec3[T]) []vec.Vec3[T] {
	out := make([]vec.Vec3[T], len(pts))
	for i, p := range pts {
		out[i] = a.MulVec3(p)
	}
	return out
}

// NormalMatrix returns the inverse-transpose of the linear block of a, used to
// transform surface normals under non-uniform scaling.
//
// Errors:
//   - Same as Inverse.
func NormalMatrix[T vec.Float](a Mat4[T], opts ...Option) (Mat4[T], error) {
	inv, err := FromMat3(a.Mat3x3()).Inverse(opts...)
	if err != nil {
		return Mat4[T]{}, err
	}
	return inv.Transpose(), nil
}
