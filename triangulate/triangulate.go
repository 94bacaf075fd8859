// File: triangulate.go
// Role: Triangulate — fan triangulation of every base face.
// Determinism: triangles are emitted in face order, then fan order within
// a face, so the output triangle index is a pure function of input order.

package triangulate

import (
	"github.com/arborglyph/meshkit/geomgraph"
	"github.com/arborglyph/meshkit/mapping"
	"github.com/arborglyph/meshkit/mesh"
	"github.com/arborglyph/meshkit/xform"
)

// Triangulate fan-triangulates base: each face of degree d contributes d-2
// triangles (v0,v1,v2), (v0,v2,v3), ... The vertex map is Identity (vertex
// positions are shared). The face map is an Array: base face f maps to the
// contiguous run of triangle indices it produced; each triangle maps back
// to the single base face it came from. All transforms are identity.
func Triangulate(base mesh.Mesh) (mesh.Mesh, mapping.GeometryMap, mapping.GeometryMap, error) {
	pm := mesh.Accelerated(base)
	faceCount := pm.FaceCount()

	// Upper bound on triangle count: |indices| - F - 1, tight for a single
	// n-gon. Allocate to it, then shrink to the true triangle count.
	upperBound := len(pm.Indices) - faceCount - 1
	if upperBound < 0 {
		upperBound = 0
	}

	outIndices := make([]int, 0, upperBound*3)
	triOffsets1 := make([]int, 0, upperBound)
	baseToSelfOffsets := make([]int, faceCount+1)
	baseToSelfIndices := make([]int, 0, upperBound)
	selfToBaseIndices := make([]int, 0, upperBound)

	for f := 0; f < faceCount; f++ {
		fv, err := pm.Face(f)
		if err != nil {
			return nil, nil, nil, err
		}
		d := fv.Degree
		for k := 1; k+1 < d; k++ {
			v0, v1, v2 := fv.Vertices[0], fv.Vertices[k], fv.Vertices[k+1]
			outIndices = append(outIndices, v0, v1, v2)
			triOffsets1 = append(triOffsets1, len(outIndices))

			t := len(triOffsets1) - 1
			baseToSelfIndices = append(baseToSelfIndices, t)
			selfToBaseIndices = append(selfToBaseIndices, f)
		}
		baseToSelfOffsets[f+1] = len(baseToSelfIndices)
	}
	triCount := len(triOffsets1)

	clone, _ := pm.Clone(false).(*mesh.PackedMesh)
	outMesh := mesh.NewPackedMesh(clone.X, clone.Y, clone.Z, outIndices, triOffsets1, clone.Creased())

	baseToSelf := mapping.CSR{
		Offsets:    baseToSelfOffsets,
		Indices:    baseToSelfIndices,
		Transforms: identityXfs(len(baseToSelfIndices)),
	}
	selfToBaseOffsets := make([]int, triCount+1)
	for i := range selfToBaseOffsets {
		selfToBaseOffsets[i] = i
	}
	selfToBase := mapping.CSR{
		Offsets:    selfToBaseOffsets,
		Indices:    selfToBaseIndices,
		Transforms: identityXfs(triCount),
	}

	vertexMap := mapping.Identity(pm.VertexCount())
	faceMap := mapping.NewArray(faceCount, triCount, baseToSelf, selfToBase)
	return outMesh, vertexMap, faceMap, nil
}

func identityXfs(n int) []xform.Mat4 {
	xf := make([]xform.Mat4, n)
	for i := range xf {
		xf[i] = xform.Identity4()
	}
	return xf
}

// NewTriangulatedGeometry wires Triangulate into a geomgraph.DerivedGeometry.
func NewTriangulatedGeometry(base geomgraph.Geometry) (*geomgraph.DerivedGeometry, error) {
	derive := func(m mesh.Mesh, _ mesh.Options) (mesh.Mesh, mapping.GeometryMap, mapping.GeometryMap, error) {
		return Triangulate(m)
	}
	return geomgraph.NewDerivedGeometry(base, mesh.DefaultOptions(), derive, geomgraph.Hooks{})
}
