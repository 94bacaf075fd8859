package mesh

// ModifiableMesh stores positions as growable SoA slices and faces as a
// slice of per-face growable vertex-index slices, rather than one packed
// offset buffer. It is used while a refinement pass accumulates new
// vertices and faces; callers freeze the result with Clone(false) before
// publishing it.
type ModifiableMesh struct {
	X, Y, Z []float64
	Faces   [][]int
	creased CreasedSet
}

// NewModifiableMesh returns an empty ModifiableMesh ready to accumulate
// vertices and faces.
func NewModifiableMesh() *ModifiableMesh {
	return &ModifiableMesh{creased: NewCreasedSet()}
}

// AddVertex appends a vertex and returns its index.
func (m *ModifiableMesh) AddVertex(x, y, z float64) int {
	m.X = append(m.X, x)
	m.Y = append(m.Y, y)
	m.Z = append(m.Z, z)
	return len(m.X) - 1
}

// AddFace appends a face and returns its index. vertices is retained
// without copying; callers must not mutate it afterwards.
func (m *ModifiableMesh) AddFace(vertices []int) int {
	m.Faces = append(m.Faces, vertices)
	return len(m.Faces) - 1
}

// VertexCount returns V.
func (m *ModifiableMesh) VertexCount() int { return len(m.X) }

// FaceCount returns F.
func (m *ModifiableMesh) FaceCount() int { return len(m.Faces) }

// Modifiable always returns true for ModifiableMesh.
func (m *ModifiableMesh) Modifiable() bool { return true }

// Creased returns the creased-edge set.
func (m *ModifiableMesh) Creased() CreasedSet {
	if m.creased == nil {
		m.creased = NewCreasedSet()
	}
	return m.creased
}

// Vertex returns the position of vertex i.
func (m *ModifiableMesh) Vertex(i int) (x, y, z float64, err error) {
	if i < 0 || i >= len(m.X) {
		return 0, 0, 0, ErrOutOfBounds
	}
	return m.X[i], m.Y[i], m.Z[i], nil
}

// Face returns a view of face i. Start/End are -1: ModifiableMesh has no
// shared packed offset buffer for Vertices to be a slice of.
func (m *ModifiableMesh) Face(i int) (FaceView, error) {
	if i < 0 || i >= len(m.Faces) {
		return FaceView{}, ErrOutOfBounds
	}
	v := m.Faces[i]
	return FaceView{Index: i, Degree: len(v), Start: -1, End: -1, Vertices: v}, nil
}

// Clone deep-copies this mesh. modifiable selects the returned flavor;
// modifiable=false packs the per-face slices into one flat offset buffer
// (the "freeze" step that publishes an immutable PackedMesh).
func (m *ModifiableMesh) Clone(modifiable bool) Mesh {
	if modifiable {
		faces := make([][]int, len(m.Faces))
		for i, f := range m.Faces {
			faces[i] = append([]int(nil), f...)
		}
		return &ModifiableMesh{
			X: append([]float64(nil), m.X...), Y: append([]float64(nil), m.Y...), Z: append([]float64(nil), m.Z...),
			Faces: faces, creased: cloneCreased(m.Creased()),
		}
	}
	return m.Freeze()
}

// Freeze packs this ModifiableMesh into a new PackedMesh.
func (m *ModifiableMesh) Freeze() *PackedMesh {
	total := 0
	for _, f := range m.Faces {
		total += len(f)
	}
	indices := make([]int, 0, total)
	offsets := make([]int, len(m.Faces))
	for i, f := range m.Faces {
		indices = append(indices, f...)
		offsets[i] = len(indices)
	}
	return NewPackedMesh(
		append([]float64(nil), m.X...),
		append([]float64(nil), m.Y...),
		append([]float64(nil), m.Z...),
		indices, offsets, cloneCreased(m.Creased()),
	)
}

// Accelerated returns a PackedMesh view of m: m itself if m is already
// packed, else a frozen clone.
func Accelerated(m Mesh) *PackedMesh {
	switch mm := m.(type) {
	case *PackedMesh:
		return mm
	case *ModifiableMesh:
		return mm.Freeze()
	default:
		panic("mesh: unknown Mesh implementation")
	}
}
