// Package mat4 provides Mat4, the 4x4 transform matrix of a 3D rendering
// pipeline, generic over float32 and float64.
//
// What
//
//   - Construction: New (16 scalars), FromSlice (flat row-major), FromRows
//     (4×4 grid), FromMat3 (linear block, no translation), Zero, Identity.
//   - Arithmetic: Add, Sub, Mul, Scale, MulVec4, MulVec3 (homogeneous divide),
//     MulBox (transform-and-enlarge of an axis-aligned box).
//   - Structure: Transpose, Adjoint, Determinant, Inverse, Mat3x3, Trace.
//   - Factories: Translate, Scaling, RotateX/Y/Z (degrees), Perspective, Ortho.
//   - Interop: Convert between element types, column-major upload order, and
//     go-gl/mathgl Mat4 bridges.
//
// Layout
//
//	Coefficients live in a single flat [16]T array, row-major: element (i,j)
//	is at index i*4+j. Vectors are columns, so a transform chain reads right
//	to left: Projection.Mul(View).Mul(Model).MulVec3(p).
//
// Values
//
//	Mat4 is a comparable value type. Every method has a value receiver and
//	returns a new matrix; nothing mutates in place. The zero value is the
//	all-zero matrix. Values may be read from many goroutines without locks.
//
// Errors
//
//	Invalid numeric input is reported, never silently propagated:
//	  - Inverse of a singular matrix → ErrSingular.
//	  - Perspective/Ortho with coincident planes or zero aspect → ErrDegenerateProjection.
//	  - MulVec3Checked with w == 0 → ErrZeroW.
//	All errors wrap package sentinels; match them with errors.Is.
//	MulVec3 keeps IEEE semantics for w == 0 (±Inf/NaN) for hot paths that
//	guard elsewhere.
//
// Usage
//
//	proj, err := mat4.Perspective[float32](60, float32(w)/float32(h), 1, 20)
//	if err != nil {
//		return err
//	}
//	view := mat4.Translate(vec.Vec3f{Z: -5})
//	clip := proj.Mul(view).MulVec3(vec.Vec3f{X: 0.5, Y: 0.5})
package mat4
