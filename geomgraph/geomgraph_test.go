package geomgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborglyph/meshkit/mapping"
	"github.com/arborglyph/meshkit/mesh"
)

func identityDerive(base mesh.Mesh, opts mesh.Options) (mesh.Mesh, mapping.GeometryMap, mapping.GeometryMap, error) {
	return base, mapping.Identity(base.VertexCount()), mapping.Identity(base.FaceCount()), nil
}

func TestMeshGeometryIsItsOwnBase(t *testing.T) {
	g := NewMeshGeometry(mesh.NewUnitCube())
	assert.Same(t, Geometry(g), g.Base())
}

func TestDerivedGeometryUpdate(t *testing.T) {
	root := NewMeshGeometry(mesh.NewUnitCube())
	calls := 0
	hooks := Hooks{OnDerivedGeometryUpdated: func() { calls++ }}
	d, err := NewDerivedGeometry(root, mesh.DefaultOptions(), identityDerive, hooks)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, root.Mesh().VertexCount(), d.Mesh().VertexCount())

	require.NoError(t, d.Update())
	assert.Equal(t, 2, calls)
}

func TestCompileToAncestorSingleLevel(t *testing.T) {
	root := NewMeshGeometry(mesh.NewUnitCube())
	d, err := NewDerivedGeometry(root, mesh.DefaultOptions(), identityDerive, Hooks{})
	require.NoError(t, err)

	vm, fm, err := CompileToAncestor(d, root)
	require.NoError(t, err)
	for i := 0; i < root.Mesh().VertexCount(); i++ {
		c, err := vm.FromBase(i)
		require.NoError(t, err)
		assert.Equal(t, []int{i}, c.Indices)
	}
	for i := 0; i < root.Mesh().FaceCount(); i++ {
		c, err := fm.FromBase(i)
		require.NoError(t, err)
		assert.Equal(t, []int{i}, c.Indices)
	}
}

func TestCompileToAncestorSelf(t *testing.T) {
	root := NewMeshGeometry(mesh.NewUnitCube())
	vm, fm, err := CompileToAncestor(root, root)
	require.NoError(t, err)
	c, err := vm.FromBase(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, c.Indices)
	_, err = fm.FromBase(0)
	require.NoError(t, err)
}

func TestCompileToAncestorNotFound(t *testing.T) {
	root := NewMeshGeometry(mesh.NewUnitCube())
	other := NewMeshGeometry(mesh.NewUnitCube())
	d, err := NewDerivedGeometry(root, mesh.DefaultOptions(), identityDerive, Hooks{})
	require.NoError(t, err)

	_, _, err = CompileToAncestor(d, other)
	assert.ErrorIs(t, err, ErrAncestorNotFound)
}
