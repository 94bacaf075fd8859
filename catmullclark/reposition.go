// File: reposition.go
// Role: Step 3 (reposition original vertices), including the two
// documented degenerate-case decisions: a k==1 "dart" vertex is smooth (it
// already falls under k<2), and a k==2 crease vertex whose two sharp edges
// share the same other endpoint is treated as a corner, per DESIGN.md.

package catmullclark

import (
	"github.com/arborglyph/meshkit/xform"
)

// repositionedVertex computes v's new position by dispatching on the
// smooth/crease/corner case determined by its sharp-edge valence.
func repositionedVertex(a *adjacency, v int, facePt []xform.Vec3) xform.Vec3 {
	px, py, pz, _ := a.m.Vertex(v)
	p := xform.Vec3{X: px, Y: py, Z: pz}

	edges := a.vertexEdges[v]
	n := float64(len(edges))

	var sharp []uint64
	for _, key := range edges {
		if _, ok := a.sharpEdges[key]; ok {
			sharp = append(sharp, key)
		}
	}
	k := len(sharp)

	switch {
	case k < 2:
		faces := a.vertexFaces[v]
		var fpts []xform.Vec3
		for _, f := range faces {
			fpts = append(fpts, facePt[f])
		}
		fbar := xform.Mean(fpts)

		var mids []xform.Vec3
		for _, key := range edges {
			ends := a.edgeVerts[key]
			other := ends[0]
			if other == v {
				other = ends[1]
			}
			ox, oy, oz, _ := a.m.Vertex(other)
			mids = append(mids, xform.Mean([]xform.Vec3{p, {X: ox, Y: oy, Z: oz}}))
		}
		ebar := xform.Mean(mids)

		sum := fbar.Add(ebar.Scale(2)).Add(p.Scale(n - 3))
		return sum.Scale(1 / n)

	case k == 2:
		otherOf := func(key uint64) int {
			ends := a.edgeVerts[key]
			if ends[0] == v {
				return ends[1]
			}
			return ends[0]
		}
		aIdx, bIdx := otherOf(sharp[0]), otherOf(sharp[1])
		if aIdx == bIdx {
			// Single distinct sharp neighbor: treat as corner.
			return p
		}
		ax, ay, az, _ := a.m.Vertex(aIdx)
		bx, by, bz, _ := a.m.Vertex(bIdx)
		aV := xform.Vec3{X: ax, Y: ay, Z: az}
		bV := xform.Vec3{X: bx, Y: by, Z: bz}
		sum := aV.Add(p.Scale(6)).Add(bV)
		return sum.Scale(1.0 / 8)

	default:
		return p
	}
}
