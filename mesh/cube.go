package mesh

// NewUnitCube returns the canonical 8-vertex, 6-quad-face unit cube fixture
// used throughout this module's tests. Vertex i+4 sits directly above
// vertex i (z=1 vs z=0); face 0 is the bottom face [0,1,2,3], and the
// remaining faces are wound so that face_adjacent({0,0})=={2,0},
// face_adjacent({0,1})=={4,0}, face_adjacent({0,2})=={3,0},
// face_adjacent({0,3})=={5,0}.
func NewUnitCube() *PackedMesh {
	x := []float64{0, 1, 1, 0, 0, 1, 1, 0}
	y := []float64{0, 0, 1, 1, 0, 0, 1, 1}
	z := []float64{0, 0, 0, 0, 1, 1, 1, 1}

	faces := [][]int{
		{0, 1, 2, 3}, // face 0: bottom
		{5, 4, 7, 6}, // face 1: top
		{1, 0, 4, 5}, // face 2: shares edge (0,1) with face 0's edge 0
		{3, 2, 6, 7}, // face 3: shares edge (2,3) with face 0's edge 2
		{2, 1, 5, 6}, // face 4: shares edge (1,2) with face 0's edge 1
		{0, 3, 7, 4}, // face 5: shares edge (3,0) with face 0's edge 3
	}

	var indices []int
	offsets := make([]int, len(faces))
	for i, f := range faces {
		indices = append(indices, f...)
		offsets[i] = len(indices)
	}
	return NewPackedMesh(x, y, z, indices, offsets, NewCreasedSet())
}

// AllEdges returns the undirected edge key for every edge of every face in
// m, useful for test fixtures that crease an entire mesh.
func AllEdges(m *PackedMesh) []uint64 {
	seen := map[uint64]struct{}{}
	var out []uint64
	for f := 0; f < m.FaceCount(); f++ {
		fv, _ := m.Face(f)
		d := fv.Degree
		for e := 0; e < d; e++ {
			u := fv.Vertices[e]
			v := fv.Vertices[(e+1)%d]
			k := EdgeKey(u, v)
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				out = append(out, k)
			}
		}
	}
	return out
}
