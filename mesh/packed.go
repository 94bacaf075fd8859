// File: packed.go
// Role: PackedMesh, the contiguous-buffer Mesh implementation used for all
// hot-path topology queries.
// Determinism: Face/Vertex are pure reads; no iteration order to document.
// Concurrency: PackedMesh is immutable once constructed; safe to share
// read-only across goroutines, but this module never does so itself — all
// operations here are single-threaded and cooperative.

package mesh

import "github.com/arborglyph/meshkit/xform"

// PackedMesh stores positions as three parallel float64 slices and faces as
// a flat vertex-index buffer plus a 1-based end-offset sequence. Face f
// occupies Indices[start:IndicesOffset1[f]] where start is
// IndicesOffset1[f-1] (or 0 for f==0).
type PackedMesh struct {
	X, Y, Z        []float64
	Indices        []int
	IndicesOffset1 []int
	creased        CreasedSet
}

// NewPackedMesh constructs a PackedMesh from the given buffers. Callers
// must ensure the invariants documented on Mesh hold; NewPackedMesh does
// not re-validate them.
func NewPackedMesh(x, y, z []float64, indices, indicesOffset1 []int, creased CreasedSet) *PackedMesh {
	if creased == nil {
		creased = NewCreasedSet()
	}
	return &PackedMesh{X: x, Y: y, Z: z, Indices: indices, IndicesOffset1: indicesOffset1, creased: creased}
}

// VertexCount returns V.
func (m *PackedMesh) VertexCount() int { return len(m.X) }

// FaceCount returns F.
func (m *PackedMesh) FaceCount() int { return len(m.IndicesOffset1) }

// Modifiable always returns false for PackedMesh.
func (m *PackedMesh) Modifiable() bool { return false }

// Creased returns the creased-edge set.
func (m *PackedMesh) Creased() CreasedSet { return m.creased }

// Vertex returns the position of vertex i.
func (m *PackedMesh) Vertex(i int) (x, y, z float64, err error) {
	if i < 0 || i >= len(m.X) {
		return 0, 0, 0, ErrOutOfBounds
	}
	return m.X[i], m.Y[i], m.Z[i], nil
}

// faceStart returns the start offset of face f (IndicesOffset1[f-1], or 0
// for f==0).
func (m *PackedMesh) faceStart(f int) int {
	if f == 0 {
		return 0
	}
	return m.IndicesOffset1[f-1]
}

// Face returns a zero-copy view of face i.
func (m *PackedMesh) Face(i int) (FaceView, error) {
	if i < 0 || i >= len(m.IndicesOffset1) {
		return FaceView{}, ErrOutOfBounds
	}
	start := m.faceStart(i)
	end := m.IndicesOffset1[i]
	return FaceView{
		Index:    i,
		Degree:   end - start,
		Start:    start,
		End:      end,
		Vertices: m.Indices[start:end],
	}, nil
}

// Clone deep-copies this mesh. modifiable selects the returned flavor.
func (m *PackedMesh) Clone(modifiable bool) Mesh {
	if !modifiable {
		return NewPackedMesh(
			append([]float64(nil), m.X...),
			append([]float64(nil), m.Y...),
			append([]float64(nil), m.Z...),
			append([]int(nil), m.Indices...),
			append([]int(nil), m.IndicesOffset1...),
			cloneCreased(m.creased),
		)
	}
	faces := make([][]int, m.FaceCount())
	for f := range faces {
		fv, _ := m.Face(f)
		faces[f] = append([]int(nil), fv.Vertices...)
	}
	return &ModifiableMesh{
		X: append([]float64(nil), m.X...), Y: append([]float64(nil), m.Y...), Z: append([]float64(nil), m.Z...),
		Faces: faces, creased: cloneCreased(m.creased),
	}
}

func cloneCreased(s CreasedSet) CreasedSet {
	out := make(CreasedSet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

// FaceCentroid returns the arithmetic mean of face f's vertex positions.
func FaceCentroid(m *PackedMesh, f int) (xform.Vec3, error) {
	fv, err := m.Face(f)
	if err != nil {
		return xform.Vec3{}, err
	}
	var sum xform.Vec3
	for _, vi := range fv.Vertices {
		x, y, z, _ := m.Vertex(vi)
		sum.X += x
		sum.Y += y
		sum.Z += z
	}
	n := float64(len(fv.Vertices))
	return xform.Vec3{sum.X / n, sum.Y / n, sum.Z / n}, nil
}

// FaceNormal returns the unnormalized Newell-style normal of face f: the
// cross product of the edge 0->1 and edge 0->2 vectors.
func FaceNormal(m *PackedMesh, f int) (xform.Vec3, error) {
	fv, err := m.Face(f)
	if err != nil {
		return xform.Vec3{}, err
	}
	if len(fv.Vertices) < 3 {
		return xform.Vec3{}, nil
	}
	p := make([]xform.Vec3, len(fv.Vertices))
	for i, vi := range fv.Vertices {
		x, y, z, _ := m.Vertex(vi)
		p[i] = xform.Vec3{x, y, z}
	}
	e01 := p[1].Sub(p[0])
	e02 := p[2].Sub(p[0])
	return e01.Cross(e02), nil
}

// MeanCentroidAndNormal returns the mean centroid and mean (unnormalized)
// normal over the given set of faces. Used to build a local frame for a
// group of faces incident to a vertex.
func MeanCentroidAndNormal(m *PackedMesh, faces []int) (centroid, normal xform.Vec3, err error) {
	var centroids, normals []xform.Vec3
	for _, f := range faces {
		c, err := FaceCentroid(m, f)
		if err != nil {
			return xform.Vec3{}, xform.Vec3{}, err
		}
		n, err := FaceNormal(m, f)
		if err != nil {
			return xform.Vec3{}, xform.Vec3{}, err
		}
		centroids = append(centroids, c)
		normals = append(normals, n)
	}
	return xform.Mean(centroids), xform.Mean(normals), nil
}
