package mapping

import (
	"github.com/arborglyph/meshkit/mesh"
	"github.com/arborglyph/meshkit/xform"
)

// CSR is a compressed-sparse-row encoding of one direction of a many-to-many
// correspondence: element i's indices are Indices[Offsets[i]:Offsets[i+1]],
// with Transforms sliced the same way. len(Offsets) == n+1.
type CSR struct {
	Offsets    []int
	Indices    []int
	Transforms []xform.Mat4
}

func (c CSR) slice(i, n int) (Correspondence, error) {
	if i < 0 || i >= n {
		return Correspondence{}, mesh.ErrOutOfBounds
	}
	lo, hi := c.Offsets[i], c.Offsets[i+1]
	return Correspondence{
		Indices:    append([]int(nil), c.Indices[lo:hi]...),
		Transforms: append([]xform.Mat4(nil), c.Transforms[lo:hi]...),
	}, nil
}

// Array is a many-to-many GeometryMap storing both directions
// independently as CSR structures.
type Array struct {
	base, self int
	baseToSelf CSR
	selfToBase CSR
}

// NewArray builds an Array of the given base/self sizes from independently
// supplied CSR directions.
func NewArray(base, self int, baseToSelf, selfToBase CSR) *Array {
	return &Array{base: base, self: self, baseToSelf: baseToSelf, selfToBase: selfToBase}
}

func (a *Array) Lengths() (base, self int) { return a.base, a.self }

func (a *Array) FromBase(i int) (Correspondence, error) { return a.baseToSelf.slice(i, a.base) }

func (a *Array) ToBase(j int) (Correspondence, error) { return a.selfToBase.slice(j, a.self) }
