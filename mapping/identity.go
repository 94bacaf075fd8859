package mapping

import (
	"github.com/arborglyph/meshkit/mesh"
	"github.com/arborglyph/meshkit/xform"
)

// identityMap is the n-to-n correspondence where every index maps only to
// itself with an identity transform.
type identityMap struct{ n int }

// Identity returns the GeometryMap where base and self are the same
// n-element index space and every correspondence is the trivial one.
func Identity(n int) GeometryMap { return identityMap{n: n} }

func (m identityMap) Lengths() (base, self int) { return m.n, m.n }

func (m identityMap) FromBase(i int) (Correspondence, error) { return m.lookup(i) }

func (m identityMap) ToBase(j int) (Correspondence, error) { return m.lookup(j) }

func (m identityMap) lookup(i int) (Correspondence, error) {
	if i < 0 || i >= m.n {
		return Correspondence{}, mesh.ErrOutOfBounds
	}
	return Correspondence{Indices: []int{i}, Transforms: []xform.Mat4{xform.Identity4()}}, nil
}
