// File: queries.go
// Role: FaceAdjacent and EdgesWith over a PackedMesh (VertexNeighbors,
// built on EdgesWith, lives in neighbors.go). FaceAdjacent uses a
// precomputed edge map; EdgesWith scans every face.
// Determinism:
//   - FaceAdjacent returns the first match in (face index, edge ordinal)
//     scan order, matching a direct "scan all other faces" reading of the
//     spec even though it is backed by a precomputed edge map.
//   - EdgesWith returns face-edges in (face index, edge ordinal) order.
//   - VertexNeighbors picks its internal seed deterministically (lowest
//     (face, edge) pair) so repeated calls on the same mesh agree.
// Concurrency: Queries holds only a read reference to its mesh; safe to
// share read-only, never mutated internally.

package topology

import (
	"sort"

	"github.com/arborglyph/meshkit/mesh"
)

// Queries answers topology questions over a fixed PackedMesh.
type Queries struct {
	m *mesh.PackedMesh
	// edgeIndex maps an undirected edge key to every directed face-edge
	// sharing it, in (face, edge) order. Built once at construction so
	// FaceAdjacent avoids rescanning the whole mesh; EdgesWith, and so
	// VertexNeighbors, does not use it.
	edgeIndex map[uint64][]directedEdge
}

type directedEdge struct {
	fe       FaceEdge
	u, v     int // directed: u -> v
	vertices int // degree of the owning face, cached for convenience
}

// NewQueries builds a Queries over m.
func NewQueries(m *mesh.PackedMesh) *Queries {
	q := &Queries{m: m, edgeIndex: make(map[uint64][]directedEdge)}
	for f := 0; f < m.FaceCount(); f++ {
		fv, _ := m.Face(f)
		d := fv.Degree
		for e := 0; e < d; e++ {
			u := fv.Vertices[e]
			v := fv.Vertices[(e+1)%d]
			k := mesh.EdgeKey(u, v)
			q.edgeIndex[k] = append(q.edgeIndex[k], directedEdge{fe: FaceEdge{Face: f, Edge: e}, u: u, v: v, vertices: d})
		}
	}
	return q
}

// Mesh returns the underlying mesh.
func (q *Queries) Mesh() *mesh.PackedMesh { return q.m }

// FaceAdjacent returns the oriented face-edge on the other face sharing
// the same undirected edge as fe, or ok=false if fe is a boundary edge.
func (q *Queries) FaceAdjacent(fe FaceEdge) (OrientedFaceEdge, bool, error) {
	fv, err := q.m.Face(fe.Face)
	if err != nil {
		return OrientedFaceEdge{}, false, err
	}
	if fe.Edge < 0 || fe.Edge >= fv.Degree {
		return OrientedFaceEdge{}, false, mesh.ErrOutOfBounds
	}
	i0 := fv.Vertices[fe.Edge]
	i1 := fv.Vertices[(fe.Edge+1)%fv.Degree]
	k := mesh.EdgeKey(i0, i1)

	// Scan matches in (face, edge) order, skipping fe itself, and report
	// the first one — same semantics as a brute scan of "all other faces".
	candidates := append([]directedEdge(nil), q.edgeIndex[k]...)
	sort.Slice(candidates, func(a, b int) bool {
		if candidates[a].fe.Face != candidates[b].fe.Face {
			return candidates[a].fe.Face < candidates[b].fe.Face
		}
		return candidates[a].fe.Edge < candidates[b].fe.Edge
	})
	for _, c := range candidates {
		if c.fe == fe {
			continue
		}
		if c.u == i0 && c.v == i1 {
			return OrientedFaceEdge{FaceEdge: c.fe, Orientation: V01}, true, nil
		}
		if c.u == i1 && c.v == i0 {
			return OrientedFaceEdge{FaceEdge: c.fe, Orientation: V10}, true, nil
		}
	}
	return OrientedFaceEdge{}, false, nil
}

// EdgesWith returns every oriented face-edge incident to vertex v, in
// (face, edge) order. Orientation is V01 when the face-edge starts at v,
// else V10.
func (q *Queries) EdgesWith(v int) ([]OrientedFaceEdge, error) {
	if v < 0 || v >= q.m.VertexCount() {
		return nil, mesh.ErrOutOfBounds
	}
	var out []OrientedFaceEdge
	for f := 0; f < q.m.FaceCount(); f++ {
		fv, _ := q.m.Face(f)
		d := fv.Degree
		for e := 0; e < d; e++ {
			u := fv.Vertices[e]
			w := fv.Vertices[(e+1)%d]
			switch v {
			case u:
				out = append(out, OrientedFaceEdge{FaceEdge: FaceEdge{Face: f, Edge: e}, Orientation: V01})
			case w:
				out = append(out, OrientedFaceEdge{FaceEdge: FaceEdge{Face: f, Edge: e}, Orientation: V10})
			}
		}
	}
	return out, nil
}
