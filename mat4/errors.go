// SPDX-License-Identifier: MIT
// Package mat4: sentinel error set.
// Every operation that can fail returns one of these sentinels, wrapped with
// an operation tag via mat4Errorf. Tests and callers match with errors.Is.
// Panics are reserved for Must* helpers and invalid Option values.

package mat4

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular is returned by Inverse when |det| <= eps (see WithEpsilon).
	ErrSingular = errors.New("mat4: singular matrix")

	// ErrNonFinite is returned when a result depends on a NaN or ±Inf coefficient
	// (e.g. the determinant itself is not finite).
	ErrNonFinite = errors.New("mat4: NaN or Inf encountered")

	// ErrDegenerateProjection is returned by projection factories when a pair of
	// opposing clipping planes coincide, the aspect ratio is zero, or the field
	// of view yields an infinite focal scale.
	ErrDegenerateProjection = errors.New("mat4: degenerate projection parameters")

	// ErrOutOfRange indicates a row or column index outside [0,4).
	ErrOutOfRange = errors.New("mat4: index out of range")

	// ErrBadLength indicates a flat coefficient slice whose length is not 16.
	ErrBadLength = errors.New("mat4: coefficient slice must have 16 elements")

	// ErrZeroW is returned by MulVec3Checked when the homogeneous divisor is 0.
	ErrZeroW = errors.New("mat4: homogeneous w is zero")
)

// Operation tags for uniform error wrapping.
const (
	opAt          = "At"
	opRow         = "Row"
	opCol         = "Col"
	opFromSlice   = "FromSlice"
	opInverse     = "Inverse"
	opMulVec3     = "MulVec3Checked"
	opPerspective = "Perspective"
	opOrtho       = "Ortho"
)

// mat4Errorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func mat4Errorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
