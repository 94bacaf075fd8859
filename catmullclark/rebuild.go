// File: rebuild.go
// Role: Step 4 (rebuild faces into quads) plus the local-frame / transform
// bookkeeping computed alongside face construction, since both need the
// same per-quad corner geometry.

package catmullclark

import (
	"github.com/arborglyph/meshkit/mesh"
	"github.com/arborglyph/meshkit/xform"
)

// quadFaceFrame returns the local frame of a quad given its four corners
// in emission order: mean of the two triangulated-fan normals, first-edge
// tangent.
func quadFaceFrame(corners [4]xform.Vec3) xform.Frame {
	origin := xform.Mean(corners[:])
	n0 := corners[1].Sub(corners[0]).Cross(corners[2].Sub(corners[0]))
	n1 := corners[2].Sub(corners[0]).Cross(corners[3].Sub(corners[0]))
	normalSeed := xform.Mean([]xform.Vec3{n0, n1})
	tangentSeed := corners[1].Sub(corners[0])
	return xform.FaceFrame(origin, normalSeed, tangentSeed)
}

// baseFaceFrame returns the local frame of a base (pre-subdivision) face,
// using its own corner positions.
func baseFaceFrame(corners []xform.Vec3) xform.Frame {
	origin := xform.Mean(corners)
	var n0, n1 xform.Vec3
	if len(corners) >= 3 {
		n0 = corners[1].Sub(corners[0]).Cross(corners[2].Sub(corners[0]))
		n1 = n0
		if len(corners) >= 4 {
			n1 = corners[2].Sub(corners[0]).Cross(corners[len(corners)-1].Sub(corners[0]))
		}
	}
	normalSeed := xform.Mean([]xform.Vec3{n0, n1})
	var tangentSeed xform.Vec3
	if len(corners) >= 2 {
		tangentSeed = corners[1].Sub(corners[0])
	}
	return xform.FaceFrame(origin, normalSeed, tangentSeed)
}

// rebuildResult carries everything step 4 produces: the new face buffers,
// per-quad face-map bookkeeping, and the per-vertex seeds needed to build
// each original vertex's "after" frame (vertexFrameAfter, used by
// buildVertexMap).
type rebuildResult struct {
	indices   []int
	offsets1  []int
	quadBase  []int   // self (quad) index -> base face index
	faceQuads [][]int // base face index -> its quad indices, emission order

	// quadTransform[q] is frameToMatrix(parentFaceFrame(f), quadFrame(q))
	// for the base face f that produced quad q.
	quadTransform []xform.Mat4

	// vertexNormalSum/vertexNormalCount accumulate, per original vertex,
	// the quad normals of every quad touching it (for its "after" frame).
	vertexNormalSum   map[int]xform.Vec3
	vertexNormalCount map[int]int
	// vertexTangent is the first quad-relative outgoing edge direction
	// recorded for a vertex (deterministic: lowest base-face index first).
	vertexTangent map[int]xform.Vec3
	vertexSeen    map[int]bool
}

func rebuildFaces(a *adjacency, newPos []xform.Vec3, facePt, edgePt []xform.Vec3) *rebuildResult {
	V := len(newPos)
	F := len(facePt)

	res := &rebuildResult{
		vertexNormalSum:   make(map[int]xform.Vec3),
		vertexNormalCount: make(map[int]int),
		vertexTangent:     make(map[int]xform.Vec3),
		vertexSeen:        make(map[int]bool),
	}
	res.faceQuads = make([][]int, F)

	for f := 0; f < F; f++ {
		fv, _ := a.m.Face(f)
		d := fv.Degree

		baseCorners := make([]xform.Vec3, d)
		for i, vi := range fv.Vertices {
			x, y, z, _ := a.m.Vertex(vi)
			baseCorners[i] = xform.Vec3{X: x, Y: y, Z: z}
		}
		parentFrame := baseFaceFrame(baseCorners)

		for i := 0; i < d; i++ {
			vi := fv.Vertices[i]
			vNext := fv.Vertices[(i+1)%d]
			vPrev := fv.Vertices[(i-1+d)%d]

			nextIdx := V + F + a.edgeOrdinal(mesh.EdgeKey(vi, vNext))
			prevIdx := V + F + a.edgeOrdinal(mesh.EdgeKey(vPrev, vi))
			facePtIdx := V + f

			quad := [4]int{vi, nextIdx, facePtIdx, prevIdx}
			quadCorners := [4]xform.Vec3{newPos[vi], pointAt(nextIdx, newPos, facePt, edgePt, V, F), facePt[f], pointAt(prevIdx, newPos, facePt, edgePt, V, F)}
			childFrame := quadFaceFrame(quadCorners)

			q := len(res.offsets1)
			res.indices = append(res.indices, quad[:]...)
			res.offsets1 = append(res.offsets1, len(res.indices))
			res.quadBase = append(res.quadBase, f)
			res.faceQuads[f] = append(res.faceQuads[f], q)
			res.quadTransform = append(res.quadTransform, xform.FrameToMatrix(parentFrame, childFrame))

			qn := quadCorners[1].Sub(quadCorners[0]).Cross(quadCorners[2].Sub(quadCorners[0]))
			res.vertexNormalSum[vi] = res.vertexNormalSum[vi].Add(qn)
			res.vertexNormalCount[vi]++
			if !res.vertexSeen[vi] {
				res.vertexSeen[vi] = true
				res.vertexTangent[vi] = quadCorners[1].Sub(quadCorners[0])
			}
		}
	}
	return res
}

func pointAt(idx int, newPos, facePt, edgePt []xform.Vec3, V, F int) xform.Vec3 {
	switch {
	case idx < V:
		return newPos[idx]
	case idx < V+F:
		return facePt[idx-V]
	default:
		return edgePt[idx-V-F]
	}
}
