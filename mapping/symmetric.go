package mapping

import (
	"github.com/arborglyph/meshkit/mesh"
	"github.com/arborglyph/meshkit/xform"
)

// Symmetric is a one-to-one correspondence (a permutation) between two
// equal-size index spaces, each entry carrying a rigid transform. Both
// directions are produced atomically by the constructors below so they
// always agree; there is no mutation afterward.
type Symmetric struct {
	n int

	baseToSelf   []int
	baseToSelfXf []xform.Mat4

	selfToBase   []int
	selfToBaseXf []xform.Mat4
}

// NewSymmetricFromSelfToBase builds a Symmetric from the self->base
// direction: perm[j] is the base index corresponding to self index j, xf[j]
// the transform carrying self element j's frame to base element perm[j]'s
// frame. The base->self direction is derived by inverting the permutation
// and each transform.
func NewSymmetricFromSelfToBase(perm []int, xf []xform.Mat4) *Symmetric {
	n := len(perm)
	s := &Symmetric{
		n:            n,
		selfToBase:   append([]int(nil), perm...),
		selfToBaseXf: append([]xform.Mat4(nil), xf...),
		baseToSelf:   make([]int, n),
		baseToSelfXf: make([]xform.Mat4, n),
	}
	for j, i := range perm {
		s.baseToSelf[i] = j
		s.baseToSelfXf[i] = xform.InvertRigid(xf[j])
	}
	return s
}

// NewSymmetricFromBaseToSelf builds a Symmetric from the base->self
// direction: perm[i] is the self index corresponding to base index i. The
// self->base direction is derived symmetrically.
func NewSymmetricFromBaseToSelf(perm []int, xf []xform.Mat4) *Symmetric {
	n := len(perm)
	s := &Symmetric{
		n:            n,
		baseToSelf:   append([]int(nil), perm...),
		baseToSelfXf: append([]xform.Mat4(nil), xf...),
		selfToBase:   make([]int, n),
		selfToBaseXf: make([]xform.Mat4, n),
	}
	for i, j := range perm {
		s.selfToBase[j] = i
		s.selfToBaseXf[j] = xform.InvertRigid(xf[i])
	}
	return s
}

func (s *Symmetric) Lengths() (base, self int) { return s.n, s.n }

func (s *Symmetric) FromBase(i int) (Correspondence, error) {
	if i < 0 || i >= s.n {
		return Correspondence{}, mesh.ErrOutOfBounds
	}
	return Correspondence{Indices: []int{s.baseToSelf[i]}, Transforms: []xform.Mat4{s.baseToSelfXf[i]}}, nil
}

func (s *Symmetric) ToBase(j int) (Correspondence, error) {
	if j < 0 || j >= s.n {
		return Correspondence{}, mesh.ErrOutOfBounds
	}
	return Correspondence{Indices: []int{s.selfToBase[j]}, Transforms: []xform.Mat4{s.selfToBaseXf[j]}}, nil
}
