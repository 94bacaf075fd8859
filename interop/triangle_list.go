// File: triangle_list.go
// Role: FromTriangleList / ToTriangleList — the indexed-triangle-list
// boundary a host scene-graph object crosses to hand this module a mesh
// and to receive one back.
// Determinism: de-interleaving and re-interleaving are pure, order-
// preserving layout transforms; vertex i's position always lands at
// positions[3i:3i+3] on either side of the boundary.
// Concurrency: neither function retains a reference to its input slices;
// both allocate (FromTriangleList) or reuse the caller-owned buffer
// (ToTriangleList) independently of any Mesh/Geometry they touch.

package interop

import "github.com/arborglyph/meshkit/mesh"

// FromTriangleList de-interleaves a host's indexed triangle list into a
// PackedMesh: positions is 3V floats (x,y,z per vertex), indices is 3T
// integers, one triple per triangle. len(indices) not a multiple of 3 is
// ErrShapeMismatch.
func FromTriangleList(positions []float64, indices []int) (*mesh.PackedMesh, error) {
	if len(indices)%3 != 0 {
		return nil, ErrShapeMismatch
	}
	V := len(positions) / 3
	x := make([]float64, V)
	y := make([]float64, V)
	z := make([]float64, V)
	for i := 0; i < V; i++ {
		x[i] = positions[3*i]
		y[i] = positions[3*i+1]
		z[i] = positions[3*i+2]
	}

	triCount := len(indices) / 3
	outIndices := append([]int(nil), indices...)
	offsets := make([]int, triCount)
	for t := 0; t < triCount; t++ {
		offsets[t] = 3 * (t + 1)
	}

	return mesh.NewPackedMesh(x, y, z, outIndices, offsets, mesh.NewCreasedSet()), nil
}

// ToTriangleList re-interleaves m's positions and faces into a host-owned
// triangle list, writing through posOut/idxOut. Both output slices are
// resized only when the required length exceeds their current capacity,
// so a caller reusing the same backing buffers across frames avoids
// reallocating every call. Every face of m must have degree 3; a face of
// any other degree returns ErrShapeMismatch (callers needing an n-gon mesh
// re-interleaved first compose it through triangulate.Triangulate).
func ToTriangleList(m mesh.Mesh, posOut *[]float64, idxOut *[]int) error {
	V := m.VertexCount()
	F := m.FaceCount()

	*posOut = ensureLen(*posOut, 3*V)
	for i := 0; i < V; i++ {
		x, y, z, err := m.Vertex(i)
		if err != nil {
			return err
		}
		(*posOut)[3*i], (*posOut)[3*i+1], (*posOut)[3*i+2] = x, y, z
	}

	*idxOut = ensureLen(*idxOut, 3*F)
	for f := 0; f < F; f++ {
		fv, err := m.Face(f)
		if err != nil {
			return err
		}
		if fv.Degree != 3 {
			return ErrShapeMismatch
		}
		copy((*idxOut)[3*f:3*f+3], fv.Vertices)
	}
	return nil
}

// ensureLen returns s resized to exactly n elements, reusing its existing
// backing array when cap(s) >= n and allocating a fresh one otherwise.
func ensureLen[T any](s []T, n int) []T {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]T, n)
}
