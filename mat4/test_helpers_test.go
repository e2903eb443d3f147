// SPDX-License-Identifier: MIT
// Package mat4_test contains test helpers.
//
// Purpose:
//   - Deterministic fixtures (seeded RNG) for property tests.
//   - Tolerance comparisons with readable failure output.

package mat4_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmath/mat4"
	"github.com/katalvlaran/lvmath/vec"
	"github.com/stretchr/testify/require"
)

// Per-element tolerances for round-off sensitive properties.
const (
	tol32 = 1e-5
	tol64 = 1e-12
)

// sample is a fixed, non-symmetric, invertible matrix (det = -6, see
// TestDeterminant_Known).
func sample() mat4.Mat4d {
	return mat4.New[float64](
		2, 0, 1, 3,
		1, 1, 0, 2,
		0, 3, 1, 1,
		1, 0, 2, 0,
	)
}

// randomMat builds a diagonally dominant (hence well conditioned and
// invertible) matrix with entries in [-1, 1] off the diagonal.
func randomMat[T vec.Float](rng *rand.Rand) mat4.Mat4[T] {
	var c [mat4.Size]T
	for i := range c {
		c[i] = T(rng.Float64()*2 - 1)
	}
	for i := 0; i < mat4.Dim; i++ {
		c[i*mat4.Dim+i] += 5
	}
	return mat4.FromArray(c)
}

// randomAny builds a matrix with arbitrary entries in [-10, 10].
func randomAny[T vec.Float](rng *rand.Rand) mat4.Mat4[T] {
	var c [mat4.Size]T
	for i := range c {
		c[i] = T(rng.Float64()*20 - 10)
	}
	return mat4.FromArray(c)
}

// RequireMatNear fails the test if any coefficient differs by more than eps.
func RequireMatNear[T vec.Float](t *testing.T, want, got mat4.Mat4[T], eps T) {
	t.Helper()
	w, g := want.Coefficients(), got.Coefficients()
	for i := range w {
		require.InDeltaf(t, float64(w[i]), float64(g[i]), float64(eps),
			"element (%d,%d)\nwant:\n%v\ngot:\n%v", i/mat4.Dim, i%mat4.Dim, want, got)
	}
}

// RequireVec3Near fails the test if any component differs by more than eps.
func RequireVec3Near[T vec.Float](t *testing.T, want, got vec.Vec3[T], eps T) {
	t.Helper()
	require.Truef(t, want.ApproxEqual(got, eps), "want %v, got %v (eps %g)", want, got, eps)
}

func vecd(x, y, z float64) vec.Vec3d { return vec.Vec3d{X: x, Y: y, Z: z} }

func vecf(x, y, z float32) vec.Vec3f { return vec.Vec3f{X: x, Y: y, Z: z} }

// zero64 hides a literal zero from constant folding so 1/zero64() is +Inf.
func zero64() float64 { return 0 }
