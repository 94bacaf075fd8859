package xform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approxVec3(t *testing.T, want, got Vec3) {
	t.Helper()
	require.InDelta(t, want.X, got.X, 1e-9)
	require.InDelta(t, want.Y, got.Y, 1e-9)
	require.InDelta(t, want.Z, got.Z, 1e-9)
}

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	approxVec3(t, Vec3{5, 7, 9}, a.Add(b))
	approxVec3(t, Vec3{-3, -3, -3}, a.Sub(b))
	approxVec3(t, Vec3{2, 4, 6}, a.Scale(2))
	assert.InDelta(t, 32, a.Dot(b), 1e-9)
}

func TestCrossProduct(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	approxVec3(t, Vec3{0, 0, 1}, x.Cross(y))
}

func TestNormalizeFallback(t *testing.T) {
	zero := Vec3{}
	approxVec3(t, Vec3{1, 0, 0}, zero.Normalize(Vec3{1, 0, 0}))
	unit := Vec3{3, 0, 0}.Normalize(Vec3{0, 0, 1})
	approxVec3(t, Vec3{1, 0, 0}, unit)
}

func TestIdentity4MulPoint(t *testing.T) {
	m := Identity4()
	p := Vec3{1, 2, 3}
	approxVec3(t, p, m.MulPoint(p))
}

func TestMulComposesInOrder(t *testing.T) {
	// Rotating 90 degrees about Z twice should equal rotating 180 degrees.
	quarter := fromBasisColumns(Vec3{0, 1, 0}, Vec3{-1, 0, 0}, Vec3{0, 0, 1})
	half := Mul(quarter, quarter)
	got := half.MulPoint(Vec3{1, 0, 0})
	approxVec3(t, Vec3{-1, 0, 0}, got)
}

func TestFrameToMatrixIdentity(t *testing.T) {
	f := Frame{Origin: Vec3{1, 2, 3}, T: Vec3{1, 0, 0}, B: Vec3{0, 1, 0}, N: Vec3{0, 0, 1}}
	m := FrameToMatrix(f, f)
	approxVec3(t, f.Origin, m.MulPoint(f.Origin))
	approxVec3(t, Vec3{5, 6, 7}, m.MulPoint(Vec3{5, 6, 7}))
}

func TestFrameToMatrixCarriesOrigin(t *testing.T) {
	from := Frame{Origin: Vec3{0, 0, 0}, T: Vec3{1, 0, 0}, B: Vec3{0, 1, 0}, N: Vec3{0, 0, 1}}
	to := Frame{Origin: Vec3{10, 20, 30}, T: Vec3{1, 0, 0}, B: Vec3{0, 1, 0}, N: Vec3{0, 0, 1}}
	m := FrameToMatrix(from, to)
	approxVec3(t, to.Origin, m.MulPoint(from.Origin))
}

func TestMeanEmpty(t *testing.T) {
	approxVec3(t, Vec3{}, Mean(nil))
}

func TestBuildFrameOrthonormal(t *testing.T) {
	f := FaceFrame(Vec3{1, 1, 1}, Vec3{0, 0, 5}, Vec3{3, 0, 0})
	approxVec3(t, Vec3{0, 0, 1}, f.N)
	approxVec3(t, Vec3{1, 0, 0}, f.T)
	approxVec3(t, Vec3{0, 1, 0}, f.B)
}

func TestBuildFrameDegenerateFallsBack(t *testing.T) {
	f := VertexFrame(Vec3{}, Vec3{}, Vec3{})
	approxVec3(t, Vec3{0, 0, 1}, f.N)
	approxVec3(t, Vec3{1, 0, 0}, f.T)
}

func TestInvertRigidRoundTrip(t *testing.T) {
	from := Frame{Origin: Vec3{1, 2, 3}, T: Vec3{1, 0, 0}, B: Vec3{0, 1, 0}, N: Vec3{0, 0, 1}}
	to := Frame{Origin: Vec3{-4, 5, 2}, T: Vec3{0, 1, 0}, B: Vec3{-1, 0, 0}, N: Vec3{0, 0, 1}}
	m := FrameToMatrix(from, to)
	inv := InvertRigid(m)

	approxVec3(t, from.Origin, inv.MulPoint(m.MulPoint(from.Origin)))
	approxVec3(t, to.Origin, m.MulPoint(inv.MulPoint(to.Origin)))
}
