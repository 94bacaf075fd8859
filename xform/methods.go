// File: methods.go
// Role: Vec3 arithmetic and Mat4 construction/composition.
// Determinism: all operations are pure functions of their inputs.
// Concurrency: values are copied by value; safe to share across goroutines
// read-only, same as any other immutable Go value type.

package xform

import "math"

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the scalar dot product of v and w.
func (v Vec3) Dot(w Vec3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns the vector cross product v x w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length. If v is (within eps) the zero
// vector, it returns fallback instead of dividing by zero — callers supply
// the axis appropriate to their context.
func (v Vec3) Normalize(fallback Vec3) Vec3 {
	l := v.Length()
	if l < 1e-12 {
		return fallback
	}
	return v.Scale(1 / l)
}

// Mean returns the arithmetic mean of the given vectors, or the zero
// vector if vs is empty.
func Mean(vs []Vec3) Vec3 {
	if len(vs) == 0 {
		return Vec3{}
	}
	var sum Vec3
	for _, v := range vs {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float64(len(vs)))
}

// At returns the element at (row, col), both in [0,4).
func (m Mat4) At(row, col int) float64 { return m.data[row*4+col] }

// set writes the element at (row, col); unexported, used only while
// building a Mat4 during construction.
func (m *Mat4) set(row, col int, v float64) { m.data[row*4+col] = v }

// Mul returns a*b (matrix product, a applied after b when used on a
// column vector, i.e. standard row-major composition).
func Mul(a, b Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a.At(r, k) * b.At(k, c)
			}
			out.set(r, c, sum)
		}
	}
	return out
}

// MulPoint applies m to the point p (treating p as {p.X,p.Y,p.Z,1}) and
// returns the transformed point.
func (m Mat4) MulPoint(p Vec3) Vec3 {
	x := m.At(0, 0)*p.X + m.At(0, 1)*p.Y + m.At(0, 2)*p.Z + m.At(0, 3)
	y := m.At(1, 0)*p.X + m.At(1, 1)*p.Y + m.At(1, 2)*p.Z + m.At(1, 3)
	z := m.At(2, 0)*p.X + m.At(2, 1)*p.Y + m.At(2, 2)*p.Z + m.At(2, 3)
	return Vec3{x, y, z}
}

// fromBasisColumns builds the 3x3-in-4x4 matrix whose columns are t, b, n —
// the column-major basis matrix of a Frame — with identity translation/
// bottom row.
func fromBasisColumns(t, b, n Vec3) Mat4 {
	var m Mat4
	m.set(0, 0, t.X)
	m.set(1, 0, t.Y)
	m.set(2, 0, t.Z)
	m.set(0, 1, b.X)
	m.set(1, 1, b.Y)
	m.set(2, 1, b.Z)
	m.set(0, 2, n.X)
	m.set(1, 2, n.Y)
	m.set(2, 2, n.Z)
	m.set(3, 3, 1)
	return m
}

// transpose3 returns the transpose of the upper-left 3x3 block of m, with
// the rest of the matrix reset to identity (translation discarded — this
// is used only to invert a pure rotation's basis matrix).
func transpose3(m Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out.set(r, c, m.At(c, r))
		}
	}
	out.set(3, 3, 1)
	return out
}

// InvertRigid returns the inverse of m, assumed to be a rigid motion (pure
// rotation composed with translation, as produced by FrameToMatrix): the
// inverse rotation is the transpose of m's upper-left 3x3 block, and the
// inverse translation is -Rᵀ·t.
func InvertRigid(m Mat4) Mat4 {
	rt := transpose3(m)
	t := Vec3{m.At(0, 3), m.At(1, 3), m.At(2, 3)}
	inv := rt.MulPoint(t).Scale(-1)
	rt.set(0, 3, inv.X)
	rt.set(1, 3, inv.Y)
	rt.set(2, 3, inv.Z)
	return rt
}

// FrameToMatrix builds the rigid motion taking "from" to "to": rotation
// R = To * Fromᵀ (From/To are the column-major basis matrices of each
// frame), translation carries from.Origin to to.Origin.
//
// Stage 1 (Rotation): compose the two basis matrices.
// Stage 2 (Translation): solve t = to.Origin - R*from.Origin so that
// applying the result to from.Origin yields to.Origin exactly.
func FrameToMatrix(from, to Frame) Mat4 {
	// Stage 1: rotation.
	fromBasis := fromBasisColumns(from.T, from.B, from.N)
	toBasis := fromBasisColumns(to.T, to.B, to.N)
	rot := Mul(toBasis, transpose3(fromBasis))

	// Stage 2: translation.
	rotatedOrigin := rot.MulPoint(from.Origin)
	t := to.Origin.Sub(rotatedOrigin)

	out := rot
	out.set(0, 3, t.X)
	out.set(1, 3, t.Y)
	out.set(2, 3, t.Z)
	out.set(3, 3, 1)
	return out
}
