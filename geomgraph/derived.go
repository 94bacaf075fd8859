package geomgraph

import (
	"github.com/arborglyph/meshkit/mapping"
	"github.com/arborglyph/meshkit/mesh"
)

// DeriveFunc computes a new mesh and its vertex/face maps back to base from
// a base mesh and options. Implemented by triangulate.Triangulate and
// catmullclark.Subdivide (wrapped per-call by their NewXGeometry helpers).
type DeriveFunc func(base mesh.Mesh, opts mesh.Options) (mesh.Mesh, mapping.GeometryMap, mapping.GeometryMap, error)

// DerivedGeometry is a Geometry built by applying a DeriveFunc to a base
// Geometry's mesh. Update re-runs the derivation and republishes the
// result; the mesh/maps currently published are cached until the next
// Update.
type DerivedGeometry struct {
	base   Geometry
	opts   mesh.Options
	derive DeriveFunc
	hooks  Hooks

	mesh      mesh.Mesh
	vertexMap mapping.GeometryMap
	faceMap   mapping.GeometryMap
}

// NewDerivedGeometry builds a DerivedGeometry and runs the first
// derivation immediately.
func NewDerivedGeometry(base Geometry, opts mesh.Options, derive DeriveFunc, hooks Hooks) (*DerivedGeometry, error) {
	hooks.fillDefaults()
	g := &DerivedGeometry{base: base, opts: opts, derive: derive, hooks: hooks}
	if err := g.Update(); err != nil {
		return nil, err
	}
	return g, nil
}

// Update re-runs the derivation against the current base mesh and
// republishes mesh/vertexMap/faceMap, firing the reassignment hooks.
func (g *DerivedGeometry) Update() error {
	m, vm, fm, err := g.derive(g.base.Mesh(), g.opts)
	if err != nil {
		return err
	}
	g.mesh, g.vertexMap, g.faceMap = m, vm, fm
	g.hooks.OnGeometryReassigned()
	g.hooks.OnDerivedGeometryUpdated()
	return nil
}

func (g *DerivedGeometry) Mesh() mesh.Mesh { return g.mesh }

func (g *DerivedGeometry) Base() Geometry { return g.base }

func (g *DerivedGeometry) VertexMap() mapping.GeometryMap { return g.vertexMap }

func (g *DerivedGeometry) FaceMap() mapping.GeometryMap { return g.faceMap }
