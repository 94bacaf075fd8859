// File: neighbors.go
// Role: VertexNeighbors — the ordered fan of faces around a vertex,
// including open-boundary detection, seed rotation, and an optional
// literal continuity-marker sequence.
// Determinism: the internal seed is the lowest (face, edge) pair touching
// v; documented so repeated calls agree without requiring callers to pass
// a seed.

package topology

import (
	"github.com/arborglyph/meshkit/mesh"
)

type neighborItem struct {
	ofe  OrientedFaceEdge
	key  uint64
	used bool
}

// otherFaceEdgeAt returns the other face-edge of fv that also touches v
// (every face touches an incident vertex via exactly two edges: the one
// starting there and the one ending there), along with that edge's
// orientation relative to v.
func otherFaceEdgeAt(fv mesh.FaceView, v int, at FaceEdge) (FaceEdge, Orientation) {
	d := fv.Degree
	startOrdinal, endOrdinal := -1, -1
	for k := 0; k < d; k++ {
		if fv.Vertices[k] == v {
			startOrdinal = k
		}
		if fv.Vertices[(k+1)%d] == v {
			endOrdinal = k
		}
	}
	if at.Edge == startOrdinal {
		return FaceEdge{Face: fv.Index, Edge: endOrdinal}, V10
	}
	return FaceEdge{Face: fv.Index, Edge: startOrdinal}, V01
}

// VertexNeighbors produces the ordered fan of faces around vertex v.
//
// Stage 1 (Collect): gather every oriented face-edge at v (EdgesWith).
// Stage 2 (Forward walk): pick a deterministic seed, then repeatedly pair
// each face-edge with its in-face partner at v (emitting one neighbor per
// face) and hop to the partner's cross-face twin, until no twin remains.
// Each neighbor's Incoming is the edge the walk entered the face by and
// its Outgoing the edge it left by.
// Stage 3 (Backward walk): if the forward walk did not close back onto the
// seed's edge, or face-edges remain unconsumed, the fan is open; walk
// backward from the twin of the seed (if it has one) and prepend the
// result with each neighbor's edge pair reversed.
// Stage 4 (Seed rotation): if the caller supplied a seed face-edge, rotate
// (and, if it matches a neighbor's second edge, mirror) the sequence to
// begin there.
// Stage 5 (Continuity marker): if noteDiscontinuity is true, populate
// fan.Sequence with the neighbor list plus one boolean marker spliced in
// at the end (closed fan) or at the forward/backward boundary (open fan).
func (q *Queries) VertexNeighbors(v int, seed *FaceEdge, noteDiscontinuity bool) (VertexNeighborFan, error) {
	entries, err := q.EdgesWith(v)
	if err != nil {
		return VertexNeighborFan{}, err
	}
	if len(entries) == 0 {
		return VertexNeighborFan{Continuous: true}, nil
	}

	items := make([]*neighborItem, len(entries))
	byFE := make(map[FaceEdge]int, len(entries))
	byKey := make(map[uint64][]int, len(entries))
	for i, oe := range entries {
		fv, _ := q.m.Face(oe.Face)
		u := fv.Vertices[oe.Edge]
		w := fv.Vertices[(oe.Edge+1)%fv.Degree]
		k := mesh.EdgeKey(u, w)
		items[i] = &neighborItem{ofe: oe, key: k}
		byFE[oe.FaceEdge] = i
		byKey[k] = append(byKey[k], i)
	}

	// Stage 1/2 setup: deterministic seed = lowest (face, edge).
	seedIdx := 0
	for i := 1; i < len(items); i++ {
		if lessFaceEdge(items[i].ofe.FaceEdge, items[seedIdx].ofe.FaceEdge) {
			seedIdx = i
		}
	}

	findUnusedTwin := func(key uint64, exclude int) (int, bool) {
		for _, idx := range byKey[key] {
			if idx != exclude && !items[idx].used {
				return idx, true
			}
		}
		return -1, false
	}

	// step consumes items[idx] and its in-face partner, emits one
	// neighbor, and returns the index of the partner's cross-face twin
	// (if any) to continue the walk from.
	step := func(idx int) (VertexNeighbor, int, bool) {
		cur := items[idx]
		cur.used = true
		fv, _ := q.m.Face(cur.ofe.Face)
		otherFE, _ := otherFaceEdgeAt(fv, v, cur.ofe.FaceEdge)
		otherIdx := byFE[otherFE]
		other := items[otherIdx]
		other.used = true

		var n VertexNeighbor
		n.Face = fv.Index
		n.Incoming, n.Outgoing = cur.ofe.FaceEdge, otherFE

		twinIdx, ok := findUnusedTwin(other.key, otherIdx)
		return n, twinIdx, ok
	}

	var forward []VertexNeighbor
	idx := seedIdx
	closed := false
	for {
		n, next, ok := step(idx)
		forward = append(forward, n)
		if !ok {
			// The walk closes only if it leaves by the seed's own edge.
			closed = items[byFE[n.Outgoing]].key == items[seedIdx].key
			break
		}
		idx = next
	}

	// Stage 3: a walk that did not close, or left face-edges unconsumed,
	// means an open fan.
	anyLeft := !closed
	for _, it := range items {
		if !it.used {
			anyLeft = true
			break
		}
	}

	fan := VertexNeighborFan{Neighbors: forward, Continuous: true, GapIndex: -1}
	if anyLeft {
		fan.Continuous = false
		var backward []VertexNeighbor
		if twinIdx, ok := findUnusedTwin(items[seedIdx].key, seedIdx); ok {
			bidx := twinIdx
			for {
				n, next, ok := step(bidx)
				n.Incoming, n.Outgoing = n.Outgoing, n.Incoming
				backward = append(backward, n)
				if !ok {
					break
				}
				bidx = next
			}
		}
		reverseNeighbors(backward)
		fan.GapIndex = len(backward)
		fan.Neighbors = append(backward, forward...)
	}

	if seed != nil {
		if err := rotateToSeed(&fan, *seed); err != nil {
			return VertexNeighborFan{}, err
		}
	}
	if noteDiscontinuity {
		fan.Sequence = buildFanSequence(fan)
	}
	return fan, nil
}

// buildFanSequence splices a single continuity marker into fan.Neighbors:
// at the very end for a closed fan, or between the backward and forward
// walks (fan.GapIndex) for an open one. The marker's Continuous field
// always carries fan.Continuous itself.
func buildFanSequence(fan VertexNeighborFan) []FanEntry {
	markerAt := len(fan.Neighbors)
	if !fan.Continuous {
		markerAt = fan.GapIndex
	}
	seq := make([]FanEntry, 0, len(fan.Neighbors)+1)
	for i, n := range fan.Neighbors {
		if i == markerAt {
			seq = append(seq, FanEntry{IsMarker: true, Continuous: fan.Continuous})
		}
		seq = append(seq, FanEntry{Neighbor: n})
	}
	if markerAt == len(fan.Neighbors) {
		seq = append(seq, FanEntry{IsMarker: true, Continuous: fan.Continuous})
	}
	return seq
}

func lessFaceEdge(a, b FaceEdge) bool {
	if a.Face != b.Face {
		return a.Face < b.Face
	}
	return a.Edge < b.Edge
}

func reverseNeighbors(ns []VertexNeighbor) {
	for i, j := 0, len(ns)-1; i < j; i, j = i+1, j-1 {
		ns[i], ns[j] = ns[j], ns[i]
	}
}

// rotateToSeed rotates (and, if necessary, mirrors) fan.Neighbors so the
// emitted fan begins at the neighbor matching seed. Matching is by
// FaceEdge equality against a neighbor's Incoming (treated as "first") or
// Outgoing ("second") edge.
func rotateToSeed(fan *VertexNeighborFan, seed FaceEdge) error {
	n := len(fan.Neighbors)
	matchIdx, matchSecond := -1, false
	for i, nb := range fan.Neighbors {
		if nb.Incoming == seed {
			matchIdx, matchSecond = i, false
			break
		}
		if nb.Outgoing == seed {
			matchIdx, matchSecond = i, true
			break
		}
	}
	if matchIdx == -1 {
		return ErrSeedMismatch
	}

	if matchSecond {
		for i := range fan.Neighbors {
			fan.Neighbors[i].Incoming, fan.Neighbors[i].Outgoing = fan.Neighbors[i].Outgoing, fan.Neighbors[i].Incoming
		}
		reverseNeighbors(fan.Neighbors)
		matchIdx = n - 1 - matchIdx
		if fan.GapIndex >= 0 {
			fan.GapIndex = n - fan.GapIndex
		}
	}

	if matchIdx != 0 {
		rotated := make([]VertexNeighbor, 0, n)
		rotated = append(rotated, fan.Neighbors[matchIdx:]...)
		rotated = append(rotated, fan.Neighbors[:matchIdx]...)
		fan.Neighbors = rotated
		if fan.GapIndex >= 0 {
			fan.GapIndex = ((fan.GapIndex-matchIdx)%n + n) % n
		}
	}
	return nil
}
