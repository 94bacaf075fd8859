// Package xform provides the fixed-size 3-vector and 4x4 rigid-transform
// primitives used to express local frames and the changes between them.
//
// Every mapping correspondence in the mapping package carries one Mat4 per
// index pair; xform is where those matrices are built and combined. The
// surface is intentionally small: a handful of vector operations, matrix
// composition, and the frame-to-frame transform construction described by
// the geometry functions (triangulate, catmullclark).
//
// Degenerate inputs (a zero-length normal or tangent) do not error here —
// they fall back to a fixed axis, matching the "fallback, not failure"
// policy used throughout this module's geometric code.
package xform
