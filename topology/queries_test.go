package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborglyph/meshkit/mesh"
)

func cubeQueries(t *testing.T) *Queries {
	t.Helper()
	return NewQueries(mesh.NewUnitCube())
}

func TestCubeFaceAdjacency(t *testing.T) {
	q := cubeQueries(t)
	cases := []struct {
		fe   FaceEdge
		want FaceEdge
	}{
		{FaceEdge{0, 0}, FaceEdge{2, 0}},
		{FaceEdge{0, 1}, FaceEdge{4, 0}},
		{FaceEdge{0, 2}, FaceEdge{3, 0}},
		{FaceEdge{0, 3}, FaceEdge{5, 0}},
	}
	for _, c := range cases {
		got, ok, err := q.FaceAdjacent(c.fe)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, c.want, got.FaceEdge)
	}
}

func TestAdjacencySymmetry(t *testing.T) {
	q := cubeQueries(t)
	m := q.Mesh()
	for f := 0; f < m.FaceCount(); f++ {
		fv, _ := m.Face(f)
		for e := 0; e < fv.Degree; e++ {
			fe := FaceEdge{Face: f, Edge: e}
			adj, ok, err := q.FaceAdjacent(fe)
			require.NoError(t, err)
			require.True(t, ok, "cube is closed: every edge has a neighbor")

			back, ok2, err := q.FaceAdjacent(adj.FaceEdge)
			require.NoError(t, err)
			require.True(t, ok2)
			assert.Equal(t, fe, back.FaceEdge)
			assert.NotEqual(t, adj.Orientation, back.Orientation)
		}
	}
}

func TestFaceAdjacentBoundaryNone(t *testing.T) {
	// A single quad face: every edge is a boundary edge.
	m := mesh.NewPackedMesh(
		[]float64{0, 1, 1, 0}, []float64{0, 0, 1, 1}, []float64{0, 0, 0, 0},
		[]int{0, 1, 2, 3}, []int{4}, mesh.NewCreasedSet(),
	)
	q := NewQueries(m)
	_, ok, err := q.FaceAdjacent(FaceEdge{0, 0})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVertexNeighborsClosedFan(t *testing.T) {
	q := cubeQueries(t)
	fan, err := q.VertexNeighbors(0, nil, true)
	require.NoError(t, err)
	assert.True(t, fan.Continuous)
	// vertex 0 is incident to 3 faces on the cube.
	assert.Len(t, fan.Neighbors, 3)

	// consecutive neighbors share one mesh edge: the outgoing face-edge of
	// one and the incoming face-edge of the next have the same endpoints.
	edgeKey := func(fe FaceEdge) uint64 {
		fv, err := q.Mesh().Face(fe.Face)
		require.NoError(t, err)
		return mesh.EdgeKey(fv.Vertices[fe.Edge], fv.Vertices[(fe.Edge+1)%fv.Degree])
	}
	for i := 0; i < len(fan.Neighbors); i++ {
		cur := fan.Neighbors[i]
		next := fan.Neighbors[(i+1)%len(fan.Neighbors)]
		assert.Equal(t, edgeKey(cur.Outgoing), edgeKey(next.Incoming))
	}
}

func TestVertexNeighborsOpenFan(t *testing.T) {
	// Two quads sharing one edge: a plane strip. The shared-edge vertices
	// (1 and 2, say) are interior-ish (2 faces) while the outer vertices
	// are pure boundary (1 face) but still "open" since the vertex also
	// touches a boundary edge on the free side.
	// Vertices: 0,1,2,3 (quad A), 1,4,5,2 (quad B) sharing edge (1,2).
	m := mesh.NewPackedMesh(
		[]float64{0, 1, 1, 0, 2, 2}, []float64{0, 0, 1, 1, 0, 1}, []float64{0, 0, 0, 0, 0, 0},
		[]int{0, 1, 2, 3, 1, 4, 5, 2}, []int{4, 8}, mesh.NewCreasedSet(),
	)
	q := NewQueries(m)
	fan, err := q.VertexNeighbors(1, nil, true)
	require.NoError(t, err)
	assert.False(t, fan.Continuous)
	assert.Len(t, fan.Neighbors, 2)
	assert.GreaterOrEqual(t, fan.GapIndex, 0)

	// the marker sits at the backward/forward boundary, not the end, and
	// carries false (the fan is not continuous).
	require.Len(t, fan.Sequence, 3)
	markerPos := -1
	for i, e := range fan.Sequence {
		if e.IsMarker {
			markerPos = i
		}
	}
	require.NotEqual(t, -1, markerPos)
	assert.Equal(t, fan.GapIndex, markerPos)
	assert.False(t, fan.Sequence[markerPos].Continuous)
}

func TestVertexNeighborsClosedFanSequenceMarkerAtEnd(t *testing.T) {
	q := cubeQueries(t)
	fan, err := q.VertexNeighbors(0, nil, true)
	require.NoError(t, err)
	require.Len(t, fan.Sequence, len(fan.Neighbors)+1)
	last := fan.Sequence[len(fan.Sequence)-1]
	assert.True(t, last.IsMarker)
	assert.True(t, last.Continuous)
}

func TestVertexNeighborsNoSequenceWithoutNoteDiscontinuity(t *testing.T) {
	q := cubeQueries(t)
	fan, err := q.VertexNeighbors(0, nil, false)
	require.NoError(t, err)
	assert.Nil(t, fan.Sequence)
}

func TestVertexNeighborsSeedMismatch(t *testing.T) {
	q := cubeQueries(t)
	bad := FaceEdge{Face: 99, Edge: 0}
	_, err := q.VertexNeighbors(0, &bad, false)
	assert.ErrorIs(t, err, ErrSeedMismatch)
}

func TestVertexNeighborsSeedRotation(t *testing.T) {
	q := cubeQueries(t)
	base, err := q.VertexNeighbors(0, nil, false)
	require.NoError(t, err)
	require.NotEmpty(t, base.Neighbors)

	seed := base.Neighbors[1].Incoming
	rotated, err := q.VertexNeighbors(0, &seed, false)
	require.NoError(t, err)
	assert.Equal(t, seed, rotated.Neighbors[0].Incoming)
	assert.Len(t, rotated.Neighbors, len(base.Neighbors))
}

func TestVertexOutOfBounds(t *testing.T) {
	q := cubeQueries(t)
	_, err := q.EdgesWith(99)
	assert.ErrorIs(t, err, mesh.ErrOutOfBounds)
}
