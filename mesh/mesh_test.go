package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaceViewCorrectness(t *testing.T) {
	c := NewUnitCube()
	for f := 0; f < c.FaceCount(); f++ {
		fv, err := c.Face(f)
		require.NoError(t, err)
		start := 0
		if f > 0 {
			start = c.IndicesOffset1[f-1]
		}
		end := c.IndicesOffset1[f]
		assert.Equal(t, c.Indices[start:end], fv.Vertices)
		assert.Equal(t, end-start, fv.Degree)
	}
}

func TestCubeFaceView(t *testing.T) {
	c := NewUnitCube()
	fv, err := c.Face(0)
	require.NoError(t, err)
	assert.Equal(t, 4, fv.Degree)
	assert.Equal(t, []int{0, 1, 2, 3}, fv.Vertices)
}

func TestVertexOutOfBounds(t *testing.T) {
	c := NewUnitCube()
	_, _, _, err := c.Vertex(8)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, _, _, err = c.Vertex(-1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestFaceOutOfBounds(t *testing.T) {
	c := NewUnitCube()
	_, err := c.Face(6)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestEdgeKeyOrientationFree(t *testing.T) {
	assert.Equal(t, EdgeKey(2, 5), EdgeKey(5, 2))
	assert.NotEqual(t, EdgeKey(2, 5), EdgeKey(2, 6))
}

func TestCreasedSet(t *testing.T) {
	s := NewCreasedSet()
	s.Add(1, 2)
	assert.True(t, s.Has(1, 2))
	assert.True(t, s.Has(2, 1))
	assert.False(t, s.Has(1, 3))
}

func TestClonePackedToModifiable(t *testing.T) {
	c := NewUnitCube()
	m := c.Clone(true).(*ModifiableMesh)
	assert.Equal(t, c.VertexCount(), m.VertexCount())
	assert.Equal(t, c.FaceCount(), m.FaceCount())
	fv0, _ := m.Face(0)
	assert.Equal(t, []int{0, 1, 2, 3}, fv0.Vertices)

	// Mutating the clone must not affect the original.
	m.X[0] = 99
	x0, _, _, _ := c.Vertex(0)
	assert.Equal(t, 0.0, x0)
}

func TestAcceleratedIdentityAndFreeze(t *testing.T) {
	c := NewUnitCube()
	assert.Same(t, c, Accelerated(c))

	mm := NewModifiableMesh()
	v0 := mm.AddVertex(0, 0, 0)
	v1 := mm.AddVertex(1, 0, 0)
	v2 := mm.AddVertex(0, 1, 0)
	mm.AddFace([]int{v0, v1, v2})

	packed := Accelerated(mm)
	require.Equal(t, 3, packed.VertexCount())
	require.Equal(t, 1, packed.FaceCount())
	fv, err := packed.Face(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, fv.Vertices)
}

func TestFaceCentroidAndNormal(t *testing.T) {
	c := NewUnitCube()
	centroid, err := FaceCentroid(c, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, centroid.X, 1e-9)
	assert.InDelta(t, 0.5, centroid.Y, 1e-9)
	assert.InDelta(t, 0.0, centroid.Z, 1e-9)

	normal, err := FaceNormal(c, 0)
	require.NoError(t, err)
	assert.NotZero(t, normal.X+normal.Y+normal.Z+1) // non-degenerate sanity
}

func TestAllEdgesCube(t *testing.T) {
	c := NewUnitCube()
	edges := AllEdges(c)
	assert.Len(t, edges, 12)
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	assert.True(t, o.BoundaryAsCrease)
	assert.EqualValues(t, 1, o.Iterations)
	assert.Equal(t, CatmullClark, o.Method)

	o2 := DefaultOptions(WithIterations(3), WithBoundaryAsCrease(false))
	assert.False(t, o2.BoundaryAsCrease)
	assert.EqualValues(t, 3, o2.Iterations)
}
