// File: subdivide.go
// Role: Subdivide — one Catmull-Clark iteration, wiring adjacency + steps
// 1-4 into a refined mesh plus its vertex/face GeometryMaps, and
// NewSubdividedGeometry, which iterates it.
// Determinism: new vertices are laid out as [original V][face points in
// face order][edge points in ascending edge-key order], so repeated runs
// on the same mesh produce identical index assignments.

package catmullclark

import (
	"github.com/arborglyph/meshkit/geomgraph"
	"github.com/arborglyph/meshkit/mapping"
	"github.com/arborglyph/meshkit/mesh"
	"github.com/arborglyph/meshkit/xform"
)

// Subdivide runs one iteration of Catmull-Clark subdivision over base,
// honoring opts.BoundaryAsCrease and validating opts.Method. creased is
// taken as a parameter (rather than read off base) so callers can apply a
// crease set that differs from whatever base.Creased() currently holds.
func Subdivide(base mesh.Mesh, creased mesh.CreasedSet, opts mesh.Options) (mesh.Mesh, mapping.GeometryMap, mapping.GeometryMap, error) {
	if opts.Method != mesh.CatmullClark {
		return nil, nil, nil, ErrUnknownMethod
	}

	pm := mesh.Accelerated(base)
	V := pm.VertexCount()
	a := buildAdjacency(pm, creased, opts.BoundaryAsCrease)

	facePt := facePoints(pm)
	edgePt := edgePoints(a, facePt)
	F := len(facePt)
	E := len(edgePt)

	newPos := make([]xform.Vec3, V)
	for v := 0; v < V; v++ {
		newPos[v] = repositionedVertex(a, v, facePt)
	}

	rb := rebuildFaces(a, newPos, facePt, edgePt)

	x := make([]float64, 0, V+F+E)
	y := make([]float64, 0, V+F+E)
	z := make([]float64, 0, V+F+E)
	for _, p := range append(append(append([]xform.Vec3{}, newPos...), facePt...), edgePt...) {
		x = append(x, p.X)
		y = append(y, p.Y)
		z = append(z, p.Z)
	}

	newCreased := mesh.NewCreasedSet()
	for _, key := range a.sortedEdges {
		if _, sharp := a.sharpEdges[key]; !sharp {
			continue
		}
		ends := a.edgeVerts[key]
		eIdx := V + F + a.edgeOrdinal(key)
		newCreased.Add(ends[0], eIdx)
		newCreased.Add(eIdx, ends[1])
	}

	outMesh := mesh.NewPackedMesh(x, y, z, rb.indices, rb.offsets1, newCreased)

	vertexMap := buildVertexMap(a, pm, newPos, rb, V, F, E)
	faceMap := buildFaceMap(pm.FaceCount(), rb)

	return outMesh, vertexMap, faceMap, nil
}

func buildVertexMap(a *adjacency, pm *mesh.PackedMesh, newPos []xform.Vec3, rb *rebuildResult, V, F, E int) mapping.GeometryMap {
	selfN := V + F + E

	baseToSelf := mapping.CSR{Offsets: make([]int, V+1)}
	for v := 0; v < V; v++ {
		before := vertexFrameBefore(a, pm, v)
		after := vertexFrameAfter(v, newPos[v], rb)
		xf := xform.FrameToMatrix(before, after)

		baseToSelf.Indices = append(baseToSelf.Indices, v)
		baseToSelf.Transforms = append(baseToSelf.Transforms, xf)
		for _, f := range a.vertexFaces[v] {
			baseToSelf.Indices = append(baseToSelf.Indices, V+f)
			baseToSelf.Transforms = append(baseToSelf.Transforms, xform.Identity4())
		}
		for _, key := range a.vertexEdges[v] {
			baseToSelf.Indices = append(baseToSelf.Indices, V+F+a.edgeOrdinal(key))
			baseToSelf.Transforms = append(baseToSelf.Transforms, xform.Identity4())
		}
		baseToSelf.Offsets[v+1] = len(baseToSelf.Indices)
	}

	selfToBase := mapping.CSR{Offsets: make([]int, selfN+1)}
	for v := 0; v < V; v++ {
		before := vertexFrameBefore(a, pm, v)
		after := vertexFrameAfter(v, newPos[v], rb)
		xf := xform.InvertRigid(xform.FrameToMatrix(before, after))
		selfToBase.Indices = append(selfToBase.Indices, v)
		selfToBase.Transforms = append(selfToBase.Transforms, xf)
		selfToBase.Offsets[v+1] = len(selfToBase.Indices)
	}
	for f := 0; f < F; f++ {
		fv, _ := pm.Face(f)
		for _, bv := range fv.Vertices {
			selfToBase.Indices = append(selfToBase.Indices, bv)
			selfToBase.Transforms = append(selfToBase.Transforms, xform.Identity4())
		}
		selfToBase.Offsets[V+f+1] = len(selfToBase.Indices)
	}
	for i, key := range a.sortedEdges {
		ends := a.edgeVerts[key]
		selfToBase.Indices = append(selfToBase.Indices, ends[0], ends[1])
		selfToBase.Transforms = append(selfToBase.Transforms, xform.Identity4(), xform.Identity4())
		selfToBase.Offsets[V+F+i+1] = len(selfToBase.Indices)
	}

	return mapping.NewArray(V, selfN, baseToSelf, selfToBase)
}

func vertexFrameBefore(a *adjacency, pm *mesh.PackedMesh, v int) xform.Frame {
	px, py, pz, _ := pm.Vertex(v)
	origin := xform.Vec3{X: px, Y: py, Z: pz}

	var normals []xform.Vec3
	for _, f := range a.vertexFaces[v] {
		n, _ := mesh.FaceNormal(pm, f)
		normals = append(normals, n)
	}
	normalSeed := xform.Mean(normals)

	var tangentSeed xform.Vec3
	if edges := a.vertexEdges[v]; len(edges) > 0 {
		ends := a.edgeVerts[edges[0]]
		other := ends[0]
		if other == v {
			other = ends[1]
		}
		ox, oy, oz, _ := pm.Vertex(other)
		tangentSeed = xform.Vec3{X: ox, Y: oy, Z: oz}.Sub(origin)
	}
	return xform.VertexFrame(origin, normalSeed, tangentSeed)
}

func vertexFrameAfter(v int, newPos xform.Vec3, rb *rebuildResult) xform.Frame {
	count := rb.vertexNormalCount[v]
	var normalSeed xform.Vec3
	if count > 0 {
		normalSeed = rb.vertexNormalSum[v].Scale(1 / float64(count))
	}
	tangentSeed := rb.vertexTangent[v]
	return xform.VertexFrame(newPos, normalSeed, tangentSeed)
}

func buildFaceMap(baseFaceCount int, rb *rebuildResult) mapping.GeometryMap {
	quadCount := len(rb.quadBase)

	baseToSelf := mapping.CSR{Offsets: make([]int, baseFaceCount+1)}
	for f := 0; f < baseFaceCount; f++ {
		for _, q := range rb.faceQuads[f] {
			baseToSelf.Indices = append(baseToSelf.Indices, q)
			baseToSelf.Transforms = append(baseToSelf.Transforms, rb.quadTransform[q])
		}
		baseToSelf.Offsets[f+1] = len(baseToSelf.Indices)
	}

	selfToBase := mapping.CSR{
		Offsets:    make([]int, quadCount+1),
		Indices:    append([]int(nil), rb.quadBase...),
		Transforms: make([]xform.Mat4, quadCount),
	}
	for q := 0; q < quadCount; q++ {
		selfToBase.Transforms[q] = xform.InvertRigid(rb.quadTransform[q])
		selfToBase.Offsets[q+1] = q + 1
	}

	return mapping.NewArray(baseFaceCount, quadCount, baseToSelf, selfToBase)
}

// NewSubdividedGeometry iterates Subdivide opts.Iterations times, folding
// each iteration's vertex and face maps onto the accumulated pair via
// mapping.Compile so both remain relative to the original base mesh
// throughout the chain, matching what geomgraph.CompileToAncestor assumes
// of every Geometry's VertexMap()/FaceMap(). Composing indices this way
// also composes each entry's transform by matrix product; on the vertex
// map's identity-correspondence entries (a base vertex surviving as
// itself) that multiplies together one FrameToMatrix rotation per
// iteration, which is the accepted cost of keeping indices correct across
// levels.
func NewSubdividedGeometry(base geomgraph.Geometry, opts mesh.Options) (*geomgraph.DerivedGeometry, error) {
	iterations := opts.Iterations
	if iterations == 0 {
		iterations = 1
	}

	derive := func(m mesh.Mesh, o mesh.Options) (mesh.Mesh, mapping.GeometryMap, mapping.GeometryMap, error) {
		cur := m
		var vm, fm mapping.GeometryMap
		for i := uint(0); i < iterations; i++ {
			nm, vmi, fmi, err := Subdivide(cur, cur.Creased(), o)
			if err != nil {
				return nil, nil, nil, err
			}
			if i == 0 {
				vm, fm = vmi, fmi
			} else {
				var err error
				vm, err = mapping.Compile(vm, vmi)
				if err != nil {
					return nil, nil, nil, err
				}
				fm, err = mapping.Compile(fm, fmi)
				if err != nil {
					return nil, nil, nil, err
				}
			}
			cur = nm
		}
		return cur, vm, fm, nil
	}
	return geomgraph.NewDerivedGeometry(base, opts, derive, geomgraph.Hooks{})
}
