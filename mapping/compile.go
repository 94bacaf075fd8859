// File: compile.go
// Role: Compile/CompileChain — fusing adjacent GeometryMaps into one. The
// composed map is always materialized as an Array, since composition in
// general produces a many-to-many correspondence even when both inputs
// are one-to-one.

package mapping

import "github.com/arborglyph/meshkit/xform"

// Compile fuses A:X->Y and B:Y->Z into C:X->Z. A's self length must equal
// B's base length, else ErrLengthMismatch.
func Compile(a, b GeometryMap) (GeometryMap, error) {
	aBase, aSelf := a.Lengths()
	bBase, bSelf := b.Lengths()
	if aSelf != bBase {
		return nil, ErrLengthMismatch
	}

	baseToSelf, err := compileDirection(aBase, func(x int) (Correspondence, error) { return a.FromBase(x) }, func(y int) (Correspondence, error) { return b.FromBase(y) })
	if err != nil {
		return nil, err
	}
	selfToBase, err := compileDirection(bSelf, func(z int) (Correspondence, error) { return b.ToBase(z) }, func(y int) (Correspondence, error) { return a.ToBase(y) })
	if err != nil {
		return nil, err
	}
	return NewArray(aBase, bSelf, baseToSelf, selfToBase), nil
}

// compileDirection builds one CSR direction of a composed map: for each
// element i in [0,n), step through first(i) to reach intermediate elements,
// then step(y) from each, composing transforms as first then step
// (T_C = T_first · T_step).
func compileDirection(n int, first func(int) (Correspondence, error), step func(int) (Correspondence, error)) (CSR, error) {
	var csr CSR
	csr.Offsets = make([]int, n+1)
	for i := 0; i < n; i++ {
		mid, err := first(i)
		if err != nil {
			return CSR{}, err
		}
		for k, y := range mid.Indices {
			far, err := step(y)
			if err != nil {
				return CSR{}, err
			}
			for l, z := range far.Indices {
				csr.Indices = append(csr.Indices, z)
				csr.Transforms = append(csr.Transforms, xform.Mul(mid.Transforms[k], far.Transforms[l]))
			}
		}
		csr.Offsets[i+1] = len(csr.Indices)
	}
	return csr, nil
}

// CompileChain folds maps left-to-right via Compile into a single map. An
// empty chain collapses to Identity(n).
func CompileChain(maps []GeometryMap, n int) (GeometryMap, error) {
	if len(maps) == 0 {
		return Identity(n), nil
	}
	acc := maps[0]
	for _, m := range maps[1:] {
		var err error
		acc, err = Compile(acc, m)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}
