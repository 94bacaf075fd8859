package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborglyph/meshkit/xform"
)

func identityXfs(n int) []xform.Mat4 {
	xf := make([]xform.Mat4, n)
	for i := range xf {
		xf[i] = xform.Identity4()
	}
	return xf
}

func TestIdentityRoundTrip(t *testing.T) {
	m := Identity(4)
	for i := 0; i < 4; i++ {
		fb, err := m.FromBase(i)
		require.NoError(t, err)
		assert.Equal(t, []int{i}, fb.Indices)
		tb, err := m.ToBase(i)
		require.NoError(t, err)
		assert.Equal(t, []int{i}, tb.Indices)
	}
}

func TestIdentityOutOfBounds(t *testing.T) {
	m := Identity(2)
	_, err := m.FromBase(5)
	assert.Error(t, err)
}

func TestSymmetricRoundTrip(t *testing.T) {
	perm := []int{1, 4, 3, 5, 2, 0}
	s := NewSymmetricFromSelfToBase(perm, identityXfs(6))
	for j, i := range perm {
		fb, err := s.FromBase(i)
		require.NoError(t, err)
		assert.Equal(t, []int{j}, fb.Indices)

		tb, err := s.ToBase(j)
		require.NoError(t, err)
		assert.Equal(t, []int{i}, tb.Indices)
	}
}

func TestSymmetricBothConstructorsAgree(t *testing.T) {
	permSelfToBase := []int{1, 4, 3, 5, 2, 0}
	a := NewSymmetricFromSelfToBase(permSelfToBase, identityXfs(6))

	permBaseToSelf := make([]int, 6)
	for j, i := range permSelfToBase {
		permBaseToSelf[i] = j
	}
	b := NewSymmetricFromBaseToSelf(permBaseToSelf, identityXfs(6))

	for i := 0; i < 6; i++ {
		fa, err := a.FromBase(i)
		require.NoError(t, err)
		fb, err := b.FromBase(i)
		require.NoError(t, err)
		assert.Equal(t, fa.Indices, fb.Indices)
	}
}

func TestCompileIdentityLaw(t *testing.T) {
	c, err := Compile(Identity(4), Identity(4))
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		fb, err := c.FromBase(i)
		require.NoError(t, err)
		assert.Equal(t, []int{i}, fb.Indices)
	}
}

func TestCompileLengthMismatch(t *testing.T) {
	_, err := Compile(Identity(4), Identity(5))
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestCompileSymmetricPermutationComposition(t *testing.T) {
	permA := []int{1, 4, 3, 5, 2, 0} // self(A) -> base(A)
	permB := []int{4, 1, 2, 5, 3, 0} // self(B) -> base(B) == self(A)

	a := NewSymmetricFromSelfToBase(permA, identityXfs(6))
	b := NewSymmetricFromSelfToBase(permB, identityXfs(6))

	c, err := Compile(a, b)
	require.NoError(t, err)

	// Direct composition: base(A) -> self(A) -> self(B).
	// a.FromBase(i) = invPermA[i]; b.FromBase(invPermA[i]) = invPermB[invPermA[i]].
	invPermA := make([]int, 6)
	for j, i := range permA {
		invPermA[i] = j
	}
	invPermB := make([]int, 6)
	for j, i := range permB {
		invPermB[i] = j
	}
	for i := 0; i < 6; i++ {
		want := invPermB[invPermA[i]]
		got, err := c.FromBase(i)
		require.NoError(t, err)
		assert.Equal(t, []int{want}, got.Indices)
	}
}

func TestCompileAssociativity(t *testing.T) {
	permA := []int{1, 4, 3, 5, 2, 0}
	permB := []int{4, 1, 2, 5, 3, 0}
	permC := []int{2, 0, 1, 4, 5, 3}
	a := NewSymmetricFromSelfToBase(permA, identityXfs(6))
	b := NewSymmetricFromSelfToBase(permB, identityXfs(6))
	c := NewSymmetricFromSelfToBase(permC, identityXfs(6))

	ab, err := Compile(a, b)
	require.NoError(t, err)
	abc1, err := Compile(ab, c)
	require.NoError(t, err)

	bc, err := Compile(b, c)
	require.NoError(t, err)
	abc2, err := Compile(a, bc)
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		r1, err := abc1.FromBase(i)
		require.NoError(t, err)
		r2, err := abc2.FromBase(i)
		require.NoError(t, err)
		assert.ElementsMatch(t, r1.Indices, r2.Indices)
	}
}

func TestCompileChainEmpty(t *testing.T) {
	m, err := CompileChain(nil, 3)
	require.NoError(t, err)
	fb, err := m.FromBase(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, fb.Indices)
}

func TestArrayManyToMany(t *testing.T) {
	// base index 0 maps to self {0,1}; base index 1 maps to self {1}.
	baseToSelf := CSR{
		Offsets:    []int{0, 2, 3},
		Indices:    []int{0, 1, 1},
		Transforms: identityXfs(3),
	}
	selfToBase := CSR{
		Offsets:    []int{0, 1, 3},
		Indices:    []int{0, 0, 1},
		Transforms: identityXfs(3),
	}
	arr := NewArray(2, 2, baseToSelf, selfToBase)
	fb, err := arr.FromBase(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, fb.Indices)

	tb, err := arr.ToBase(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, tb.Indices)
}
