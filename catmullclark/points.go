// File: points.go
// Role: Step 1 (face points) and Step 2 (edge points).

package catmullclark

import (
	"github.com/arborglyph/meshkit/mesh"
	"github.com/arborglyph/meshkit/xform"
)

// facePoints returns, per base face index, the centroid of its vertices.
func facePoints(m *mesh.PackedMesh) []xform.Vec3 {
	pts := make([]xform.Vec3, m.FaceCount())
	for f := range pts {
		c, _ := mesh.FaceCentroid(m, f)
		pts[f] = c
	}
	return pts
}

// edgePoints returns, per adjacency.sortedEdges position, the new vertex
// position for that edge: sharp -> midpoint; exactly 2 incident faces ->
// average of endpoints and the two face points; else -> midpoint fallback.
func edgePoints(a *adjacency, facePt []xform.Vec3) []xform.Vec3 {
	pts := make([]xform.Vec3, len(a.sortedEdges))
	for i, key := range a.sortedEdges {
		ends := a.edgeVerts[key]
		ux, uy, uz, _ := a.m.Vertex(ends[0])
		vx, vy, vz, _ := a.m.Vertex(ends[1])
		u := xform.Vec3{X: ux, Y: uy, Z: uz}
		v := xform.Vec3{X: vx, Y: vy, Z: vz}
		midpoint := xform.Mean([]xform.Vec3{u, v})

		_, sharp := a.sharpEdges[key]
		faces := a.edgeToFaces[key]
		switch {
		case sharp:
			pts[i] = midpoint
		case len(faces) == 2:
			pts[i] = xform.Mean([]xform.Vec3{u, v, facePt[faces[0]], facePt[faces[1]]})
		default:
			pts[i] = midpoint
		}
	}
	return pts
}
