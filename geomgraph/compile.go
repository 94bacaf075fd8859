// File: compile.go
// Role: CompileToAncestor — folding per-level vertex/face maps along a
// derivation chain into one map relative to a chosen ancestor.

package geomgraph

import (
	"errors"

	"github.com/arborglyph/meshkit/mapping"
)

// ErrAncestorNotFound is returned when walking Base() pointers from g
// reaches a root (base == self) without encountering ancestor.
var ErrAncestorNotFound = errors.New("geomgraph: ancestor not found in base chain")

// CompileToAncestor walks g's Base() chain up to ancestor, composing each
// level's vertex and face maps into one effective pair relating ancestor
// (as base) to g (as self).
func CompileToAncestor(g Geometry, ancestor Geometry) (vertexMap, faceMap mapping.GeometryMap, err error) {
	var vMaps, fMaps []mapping.GeometryMap
	cur := g
	for cur != ancestor {
		if cur.Base() == cur {
			return nil, nil, ErrAncestorNotFound
		}
		vMaps = append(vMaps, cur.VertexMap())
		fMaps = append(fMaps, cur.FaceMap())
		cur = cur.Base()
	}

	// Collected walking g -> ancestor; composition must run ancestor -> g.
	reverse(vMaps)
	reverse(fMaps)

	n := ancestor.Mesh().VertexCount()
	vertexMap, err = mapping.CompileChain(vMaps, n)
	if err != nil {
		return nil, nil, err
	}
	n = ancestor.Mesh().FaceCount()
	faceMap, err = mapping.CompileChain(fMaps, n)
	if err != nil {
		return nil, nil, err
	}
	return vertexMap, faceMap, nil
}

func reverse(maps []mapping.GeometryMap) {
	for i, j := 0, len(maps)-1; i < j; i, j = i+1, j-1 {
		maps[i], maps[j] = maps[j], maps[i]
	}
}
