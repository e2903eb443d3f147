// Package vec provides the small fixed-size vectors consumed by the transform
// types in mat3 and mat4.
//
// What
//
//   - Float: the element constraint shared by every generic type in lvmath
//     (float32 and float64, including named types built on them).
//   - Vec3[T]: a 3D point or direction (X, Y, Z).
//   - Vec4[T]: a homogeneous 4-component vector (X, Y, Z, W).
//   - Explicit element-type conversion (ConvertVec3, ConvertVec4) instead of
//     implicit narrowing.
//   - Bridges to gonum's spatial/r3 vectors (ToR3, FromR3).
//
// Values
//
//	All types are plain comparable structs passed by value. No method mutates
//	its receiver, so values can be shared between goroutines freely.
//
// Usage
//
//	p := vec.Vec3f{X: 1, Y: 2, Z: 3}
//	h := p.Homogeneous()        // (1, 2, 3, 1)
//	q := h.Scale(2).Project()   // (1, 2, 3) again after the w-divide
package vec
