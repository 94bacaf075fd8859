package geomgraph

import (
	"github.com/arborglyph/meshkit/mapping"
	"github.com/arborglyph/meshkit/mesh"
)

// Geometry is a node in the derivation tree: a mesh together with the maps
// relating its indices back to its own Base(). The root of any tree is a
// MeshGeometry, whose Base() returns itself, guarding the root with a
// base==self sentinel instead of a nil base.
type Geometry interface {
	Mesh() mesh.Mesh
	Base() Geometry
	VertexMap() mapping.GeometryMap
	FaceMap() mapping.GeometryMap
}

// Hooks are host-observable events fired as derived geometries are built
// and refreshed. All fields default to no-ops; set only the ones a host
// needs.
type Hooks struct {
	// OnGeometryReassigned fires on every successful Update() (including
	// the one NewDerivedGeometry runs), just before OnDerivedGeometryUpdated,
	// whether or not the new Mesh() is a different value.
	OnGeometryReassigned func()
	// OnDerivedGeometryUpdated fires at the end of a successful Update().
	OnDerivedGeometryUpdated func()
	// OnHostBuffersRewritten is the hook for a host re-exporting a
	// geometry's mesh into host-owned buffers (e.g. via
	// interop.ToTriangleList). Nothing in this module calls it.
	OnHostBuffersRewritten func()
}

// DefaultHooks returns a Hooks with every callback set to a no-op.
func DefaultHooks() Hooks {
	return Hooks{
		OnGeometryReassigned:     func() {},
		OnDerivedGeometryUpdated: func() {},
		OnHostBuffersRewritten:   func() {},
	}
}

func (h *Hooks) fillDefaults() {
	if h.OnGeometryReassigned == nil {
		h.OnGeometryReassigned = func() {}
	}
	if h.OnDerivedGeometryUpdated == nil {
		h.OnDerivedGeometryUpdated = func() {}
	}
	if h.OnHostBuffersRewritten == nil {
		h.OnHostBuffersRewritten = func() {}
	}
}
