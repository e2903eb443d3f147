// SPDX-License-Identifier: MIT
// Package mat4_test contains unit tests for Mat4 arithmetic.
package mat4_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmath/box"
	"github.com/katalvlaran/lvmath/mat4"
	"github.com/katalvlaran/lvmath/vec"
	"github.com/stretchr/testify/require"
)

func TestMul_IdentityIsNeutral(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))
	I64 := mat4.Identity[float64]()
	I32 := mat4.Identity[float32]()
	for n := 0; n < 50; n++ {
		a := randomAny[float64](rng)
		require.True(t, a.Mul(I64).Equal(a))
		require.True(t, I64.Mul(a).Equal(a))

		f := randomAny[float32](rng)
		require.True(t, f.Mul(I32).Equal(f))
		require.True(t, I32.Mul(f).Equal(f))
	}
}

func TestAddSub_ZeroLaws(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(2))
	Z := mat4.Zero[float64]()
	for n := 0; n < 50; n++ {
		a := randomAny[float64](rng)
		require.True(t, a.Add(Z).Equal(a))
		require.True(t, a.Sub(a).Equal(Z))
	}
}

func TestAddSubScale_Values(t *testing.T) {
	a := sample()
	require.Equal(t, sample().Scale(2), a.Add(a))
	require.Equal(t, mat4.New[float64](
		1, 0, 1, 3,
		1, 0, 0, 2,
		0, 3, 0, 1,
		1, 0, 2, -1,
	), a.Sub(mat4.Identity[float64]()))
	require.Equal(t, mat4.Zero[float64](), a.Scale(0))
}

func TestMul_KnownProductAndNonCommutative(t *testing.T) {
	a := sample()
	b := mat4.New[float64](
		1, 2, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 3,
		0, 0, 0, 1,
	)
	ab := mat4.New[float64](
		2, 4, 1, 6,
		1, 3, 0, 2,
		0, 3, 1, 4,
		1, 2, 2, 6,
	)
	ba := mat4.New[float64](
		4, 2, 1, 7,
		1, 1, 0, 2,
		3, 3, 7, 1,
		1, 0, 2, 0,
	)
	require.Equal(t, ab, a.Mul(b))
	require.Equal(t, ba, b.Mul(a))
	require.False(t, a.Mul(b).Equal(b.Mul(a)))
}

func TestMul_Associative(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(3))
	for n := 0; n < 50; n++ {
		a, b, c := randomMat[float64](rng), randomMat[float64](rng), randomMat[float64](rng)
		RequireMatNear(t, a.Mul(b).Mul(c), a.Mul(b.Mul(c)), 1e-10)

		x, y, z := randomMat[float32](rng), randomMat[float32](rng), randomMat[float32](rng)
		RequireMatNear(t, x.Mul(y).Mul(z), x.Mul(y.Mul(z)), 1e-3)
	}
}

func TestMulVec4(t *testing.T) {
	v := vec.Vec4d{X: 1, Y: -1, Z: 2, W: 1}
	// rows of sample(): (2,0,1,3) (1,1,0,2) (0,3,1,1) (1,0,2,0)
	require.Equal(t, vec.Vec4d{X: 7, Y: 2, Z: 0, W: 5}, sample().MulVec4(v))
	require.Equal(t, v, mat4.Identity[float64]().MulVec4(v))
}

func TestMulVec3_HomogeneousDivide(t *testing.T) {
	// w row (0,0,0,2) halves every point.
	m := mat4.New[float64](
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 2,
	)
	require.Equal(t, vecd(0.5, 1, 1.5), m.MulVec3(vecd(1, 2, 3)))

	// MulVec3 agrees with MulVec4 followed by Project.
	rng := rand.New(rand.NewSource(4))
	for n := 0; n < 20; n++ {
		a := randomMat[float64](rng)
		p := vecd(rng.Float64(), rng.Float64(), rng.Float64())
		RequireVec3Near(t, a.MulVec4(p.Homogeneous()).Project(), a.MulVec3(p), tol64)
	}
}

func TestMulVec3_ZeroW(t *testing.T) {
	// Perspective projection of a point on the eye plane (z = 0) has w = 0.
	p := mat4.MustPerspective[float64](60, 1, 1, 100)
	onEye := vecd(1, 0, 0)

	got := p.MulVec3(onEye)
	require.True(t, math.IsInf(got.X, 1))
	require.True(t, math.IsNaN(got.Y)) // 0 * Inf

	_, err := p.MulVec3Checked(onEye)
	require.ErrorIs(t, err, mat4.ErrZeroW)

	ok, err := p.MulVec3Checked(vecd(0, 0, -1))
	require.NoError(t, err)
	require.InDelta(t, -1.0, ok.Z, tol64)
}

func TestMulBox_Translation(t *testing.T) {
	b := box.New(vecd(0, 0, 0), vecd(1, 1, 1))
	got := mat4.Translate(vecd(1, 2, 3)).MulBox(b)
	require.Equal(t, vecd(1, 2, 3), got.Min)
	require.Equal(t, vecd(2, 3, 4), got.Max)
}

func TestMulBox_Rotation(t *testing.T) {
	b := box.New(vecd(0, 0, 0), vecd(1, 2, 0.5))
	got := mat4.RotateZ[float64](90).MulBox(b)
	// (x, y) → (-y, x)
	RequireVec3Near(t, vecd(-2, 0, 0), got.Min, tol64)
	RequireVec3Near(t, vecd(0, 1, 0.5), got.Max, tol64)
}

func TestMulBox_ContainsEveryTransformedCorner(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	b := box.New(vecf(-1, -2, -3), vecf(4, 5, 6))
	for n := 0; n < 20; n++ {
		a := mat4.Compose(
			mat4.RotateX(float32(rng.Float64()*360)),
			mat4.RotateY(float32(rng.Float64()*360)),
			mat4.Translate(vecf(float32(rng.NormFloat64()), 0, 1)),
		)
		got := a.MulBox(b)
		for _, c := range b.Corners() {
			require.True(t, got.Contains(a.MulVec3(c)))
		}
	}
}

func TestMulBox_Empty(t *testing.T) {
	require.True(t, sample().MulBox(box.Empty[float64]()).IsEmpty())
}

func TestErrorsWrapSentinels(t *testing.T) {
	_, err := mat4.Identity[float64]().At(9, 0)
	require.True(t, errors.Is(err, mat4.ErrOutOfRange))
	require.Contains(t, err.Error(), "At")
	require.Contains(t, err.Error(), "(9,0)")
}

func TestTransformPoints(t *testing.T) {
	a := mat4.Translate(vecd(1, 2, 3))
	pts := []vec.Vec3d{vecd(0, 0, 0), vecd(-1, -2, -3)}
	got := mat4.TransformPoints(a, pts)
	require.Equal(t, []vec.Vec3d{vecd(1, 2, 3), vecd(0, 0, 0)}, got)
	require.Equal(t, vecd(0, 0, 0), pts[0]) // input untouched
	require.Empty(t, mat4.TransformPoints(a, nil))
}

func TestMulBox_CornerOnEyePlaneIsNotFinite(t *testing.T) {
	proj := mat4.MustPerspective(60.0, 1.0, 1.0, 10.0)
	// Corner (0,0,0) has clip w = 0, so 0·(1/0) = NaN reaches the box.
	got := proj.MulBox(box.New(vecd(0, 0, -1), vecd(1, 1, 0)))
	require.False(t, got.Min.IsFinite())
	require.False(t, got.Max.IsFinite())
}
