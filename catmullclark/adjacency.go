// File: adjacency.go
// Role: per-iteration adjacency precompute: edge-to-faces, vertex-to-faces,
// vertex-to-edges, and the sharp-edge set (user creases, optionally unioned
// with boundary edges).

package catmullclark

import (
	"sort"

	"github.com/arborglyph/meshkit/mesh"
)

type adjacency struct {
	m *mesh.PackedMesh

	edgeToFaces  map[uint64][]int
	edgeVerts    map[uint64][2]int // the two endpoints (u<v by EdgeKey's own ordering is not guaranteed; stored as seen)
	vertexFaces  map[int][]int     // deduped, ascending
	vertexEdges  map[int][]uint64  // deduped, ascending
	sharpEdges   map[uint64]struct{}
	sortedEdges  []uint64 // all distinct edge keys, ascending, for deterministic edge-point indexing
}

func buildAdjacency(m *mesh.PackedMesh, creased mesh.CreasedSet, boundaryAsCrease bool) *adjacency {
	a := &adjacency{
		m:           m,
		edgeToFaces: make(map[uint64][]int),
		edgeVerts:   make(map[uint64][2]int),
		vertexFaces: make(map[int][]int),
		vertexEdges: make(map[int][]uint64),
		sharpEdges:  make(map[uint64]struct{}, len(creased)),
	}
	for k := range creased {
		a.sharpEdges[k] = struct{}{}
	}

	vertexFacesSet := make(map[int]map[int]struct{})
	vertexEdgesSet := make(map[int]map[uint64]struct{})

	for f := 0; f < m.FaceCount(); f++ {
		fv, _ := m.Face(f)
		d := fv.Degree
		for e := 0; e < d; e++ {
			u := fv.Vertices[e]
			v := fv.Vertices[(e+1)%d]
			key := mesh.EdgeKey(u, v)
			a.edgeToFaces[key] = append(a.edgeToFaces[key], f)
			a.edgeVerts[key] = [2]int{u, v}

			for _, vertex := range [2]int{u, v} {
				if vertexFacesSet[vertex] == nil {
					vertexFacesSet[vertex] = make(map[int]struct{})
				}
				vertexFacesSet[vertex][f] = struct{}{}
				if vertexEdgesSet[vertex] == nil {
					vertexEdgesSet[vertex] = make(map[uint64]struct{})
				}
				vertexEdgesSet[vertex][key] = struct{}{}
			}
		}
	}

	for v, set := range vertexFacesSet {
		faces := make([]int, 0, len(set))
		for f := range set {
			faces = append(faces, f)
		}
		sort.Ints(faces)
		a.vertexFaces[v] = faces
	}
	for v, set := range vertexEdgesSet {
		edges := make([]uint64, 0, len(set))
		for k := range set {
			edges = append(edges, k)
		}
		sort.Slice(edges, func(i, j int) bool { return edges[i] < edges[j] })
		a.vertexEdges[v] = edges
	}

	for key, faces := range a.edgeToFaces {
		a.sortedEdges = append(a.sortedEdges, key)
		if boundaryAsCrease && len(faces) == 1 {
			a.sharpEdges[key] = struct{}{}
		}
	}
	sort.Slice(a.sortedEdges, func(i, j int) bool { return a.sortedEdges[i] < a.sortedEdges[j] })

	return a
}

func (a *adjacency) edgeOrdinal(key uint64) int {
	// sortedEdges is sorted, so a binary search finds key's position. It is
	// called once per face corner pair in rebuildFaces, once per sharp edge
	// when carrying creases over, and once per vertex edge in
	// buildVertexMap.
	lo, hi := 0, len(a.sortedEdges)
	for lo < hi {
		mid := (lo + hi) / 2
		if a.sortedEdges[mid] < key {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
