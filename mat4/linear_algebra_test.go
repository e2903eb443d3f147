// SPDX-License-Identifier: MIT
// Package mat4_test contains unit tests for transpose, adjoint, determinant
// and inverse.
package mat4_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmath/mat3"
	"github.com/katalvlaran/lvmath/mat4"
	"github.com/stretchr/testify/require"
)

func TestTranspose(t *testing.T) {
	a := sample()
	want := mat4.New[float64](
		2, 1, 0, 1,
		0, 1, 3, 0,
		1, 0, 1, 2,
		3, 2, 1, 0,
	)
	require.Equal(t, want, a.Transpose())

	rng := rand.New(rand.NewSource(10))
	for n := 0; n < 50; n++ {
		m := randomAny[float32](rng)
		require.True(t, m.Transpose().Transpose().Equal(m))
	}
}

func TestDeterminant_IdentityAndZero(t *testing.T) {
	require.Equal(t, 1.0, mat4.Identity[float64]().Determinant())
	require.Equal(t, float32(1), mat4.Identity[float32]().Determinant())
	require.Equal(t, 0.0, mat4.Zero[float64]().Determinant())
	require.Equal(t, float32(0), mat4.Zero[float32]().Determinant())
}

func TestDeterminant_Known(t *testing.T) {
	require.Equal(t, -6.0, sample().Determinant())
	require.Equal(t, float32(-6), mat4.Convert[float32](sample()).Determinant())

	// det(Aᵀ) = det(A); det(kA) = k⁴·det(A).
	require.Equal(t, -6.0, sample().Transpose().Determinant())
	require.Equal(t, -96.0, sample().Scale(2).Determinant())

	// Linearly dependent rows.
	dep := mat4.New[float64](
		1, 2, 3, 4,
		2, 4, 6, 8,
		0, 1, 0, 1,
		5, 0, 5, 0,
	)
	require.Equal(t, 0.0, dep.Determinant())
}

func TestDeterminant_Multiplicative(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for n := 0; n < 30; n++ {
		a, b := randomMat[float64](rng), randomMat[float64](rng)
		want := a.Determinant() * b.Determinant()
		require.InEpsilon(t, want, a.Mul(b).Determinant(), 1e-12)
	}
}

func TestAdjoint_Known(t *testing.T) {
	want := mat4.New[float64](
		10, -18, 6, -8,
		4, -6, 0, -2,
		-5, 9, -3, 1,
		-7, 9, -3, 5,
	)
	require.Equal(t, want, sample().Adjoint())
}

func TestAdjoint_TimesMatrixIsDetIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for n := 0; n < 30; n++ {
		a := randomAny[float64](rng)
		detI := mat4.Identity[float64]().Scale(a.Determinant())
		RequireMatNear(t, detI, a.Adjoint().Mul(a), 1e-9)
		RequireMatNear(t, detI, a.Mul(a.Adjoint()), 1e-9)
	}
}

func TestInverse_Known(t *testing.T) {
	inv, err := sample().Inverse()
	require.NoError(t, err)
	RequireMatNear(t, sample().Adjoint().Scale(-1.0/6), inv, tol64)
	RequireMatNear(t, mat4.Identity[float64](), sample().Mul(inv), tol64)
}

func TestInverse_Property(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(13))
	for n := 0; n < 100; n++ {
		a := randomMat[float64](rng)
		inv, err := a.Inverse()
		require.NoError(t, err)
		RequireMatNear(t, mat4.Identity[float64](), a.Mul(inv), tol64)
		RequireMatNear(t, mat4.Identity[float64](), inv.Mul(a), tol64)

		f := randomMat[float32](rng)
		invf, err := f.Inverse()
		require.NoError(t, err)
		RequireMatNear(t, mat4.Identity[float32](), f.Mul(invf), tol32)
	}
}

func TestInverse_RigidTransform(t *testing.T) {
	m := mat4.Compose(
		mat4.Translate(vecd(3, -1, 2)),
		mat4.RotateY[float64](30),
		mat4.RotateX[float64](-45),
	)
	inv, err := m.Inverse()
	require.NoError(t, err)
	want := mat4.Compose(
		mat4.RotateX[float64](45),
		mat4.RotateY[float64](-30),
		mat4.Translate(vecd(-3, 1, -2)),
	)
	RequireMatNear(t, want, inv, tol64)
}

func TestInverse_Singular(t *testing.T) {
	for name, m := range map[string]mat4.Mat4d{
		"zero": mat4.Zero[float64](),
		"rank3": mat4.New[float64](
			1, 2, 3, 4,
			2, 4, 6, 8,
			0, 1, 0, 1,
			5, 0, 5, 0,
		),
		"flatten-z": mat4.Scaling(vecd(1, 1, 0)),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := m.Inverse()
			require.ErrorIs(t, err, mat4.ErrSingular)
			require.False(t, m.IsInvertible())
		})
	}
}

func TestInverse_EpsilonOption(t *testing.T) {
	tiny := mat4.Scaling(vecd(1e-4, 1e-4, 1e-4)) // det = 1e-12
	require.True(t, tiny.IsInvertible())
	_, err := tiny.Inverse()
	require.NoError(t, err)

	_, err = tiny.Inverse(mat4.WithEpsilon(1e-9))
	require.ErrorIs(t, err, mat4.ErrSingular)
	require.False(t, tiny.IsInvertible(mat4.WithEpsilon(1e-9)))
}

func TestInverse_NonFinite(t *testing.T) {
	m := mat4.Identity[float64]().Scale(math.NaN())
	_, err := m.Inverse()
	require.ErrorIs(t, err, mat4.ErrNonFinite)
	require.False(t, m.IsInvertible())
}

func TestWithEpsilon_PanicsOnInvalid(t *testing.T) {
	require.Panics(t, func() { mat4.WithEpsilon(-1) })
	require.Panics(t, func() { mat4.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { mat4.WithEpsilon(math.Inf(1)) })
	require.NotPanics(t, func() { mat4.WithEpsilon(0) })
	require.Equal(t, mat4.DefaultEpsilon, mat4.NewOptions().Epsilon())
	require.Equal(t, 1e-6, mat4.NewOptions(nil, mat4.WithEpsilon(1e-6)).Epsilon())
}

func TestMat3x3(t *testing.T) {
	got := sample().Mat3x3()
	require.Equal(t, mat3.New[float64](2, 0, 1, 1, 1, 0, 0, 3, 1), got)

	// Translation does not leak into the linear block.
	require.Equal(t, mat3.Identity[float64](), mat4.Translate(vecd(5, 6, 7)).Mat3x3())
}

func TestTrace(t *testing.T) {
	require.Equal(t, 4.0, sample().Trace())
}

func TestNormalMatrix(t *testing.T) {
	m := mat4.Compose(mat4.Translate(vecd(5, 6, 7)), mat4.Scaling(vecd(2, 4, 8)))
	n, err := mat4.NormalMatrix(m)
	require.NoError(t, err)
	RequireMatNear(t, mat4.Scaling(vecd(0.5, 0.25, 0.125)), n, tol64)

	_, err = mat4.NormalMatrix(mat4.Scaling(vecd(1, 0, 1)))
	require.ErrorIs(t, err, mat4.ErrSingular)
}

func TestInverse_TinyDeterminantFloat32(t *testing.T) {
	// det = 1e-39 is subnormal in float32; 1/det overflows but the inverse does not.
	a := mat4.Scaling(vecf(1e-13, 1e-13, 1e-13))
	require.True(t, a.IsInvertible())

	inv, err := a.Inverse()
	require.NoError(t, err)
	require.True(t, inv.IsFinite())
	for i := 0; i < 3; i++ {
		v, err := inv.At(i, i)
		require.NoError(t, err)
		require.InEpsilon(t, 1e13, v, 1e-4)
	}
	v, err := inv.At(3, 3)
	require.NoError(t, err)
	require.InEpsilon(t, 1.0, v, 1e-4)
	v, err = inv.At(0, 1)
	require.NoError(t, err)
	require.Zero(t, v)
}

func TestInverse_OverflowingResult(t *testing.T) {
	// det ≈ 1e-2 is finite, but 1/1e-40 exceeds float32 range.
	a := mat4.Scaling(vecf(1e-40, 1e19, 1e19))
	_, err := a.Inverse()
	require.ErrorIs(t, err, mat4.ErrNonFinite)
	require.False(t, a.IsInvertible())
}
