package geomgraph

import (
	"github.com/arborglyph/meshkit/mapping"
	"github.com/arborglyph/meshkit/mesh"
)

// MeshGeometry is a leaf geometry with no derivation: its own base, with
// identity vertex and face maps.
type MeshGeometry struct {
	m mesh.Mesh
}

// NewMeshGeometry wraps m as a root Geometry.
func NewMeshGeometry(m mesh.Mesh) *MeshGeometry { return &MeshGeometry{m: m} }

func (g *MeshGeometry) Mesh() mesh.Mesh { return g.m }

func (g *MeshGeometry) Base() Geometry { return g }

func (g *MeshGeometry) VertexMap() mapping.GeometryMap { return mapping.Identity(g.m.VertexCount()) }

func (g *MeshGeometry) FaceMap() mapping.GeometryMap { return mapping.Identity(g.m.FaceCount()) }
