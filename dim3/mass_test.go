package dim3

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertTensor(t *testing.T, want [3][3]float64, mp MassProperties, delta float64) {
	t.Helper()
	got := mp.Tensor()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, want[i][j], got[i][j], delta, "tensor[%d][%d]", i, j)
		}
	}
}

func diag(x, y, z float64) [3][3]float64 {
	return [3][3]float64{{x, 0, 0}, {0, y, 0}, {0, 0, z}}
}

func TestBallMass(t *testing.T) {
	mp := NewBall(2).MassProperties(1)
	m := 4.0 / 3 * math.Pi * 8
	assert.InDelta(t, m, mp.Mass, 1e-9)
	assert.Equal(t, Vector{}, mp.LocalCOM)
	assert.InDelta(t, m*4*2/5, mp.PrincipalInertia.X, 1e-9)
	assert.InDelta(t, 1/m, mp.InvMass(), 1e-12)
}

func TestTriMeshMassMatchesCuboid(t *testing.T) {
	cuboid := NewCuboid(1, 2, 0.5)
	vertices, indices := cuboid.ToTriMesh()
	want := cuboid.MassProperties(3)
	got := TriMeshMassProperties(3, vertices, indices)
	assert.True(t, want.ApproxEqual(got, 1e-9), "%+v != %+v", want, got)

	// Inverted faces give the same solid.
	for i := range indices {
		indices[i][1], indices[i][2] = indices[i][2], indices[i][1]
	}
	got = TriMeshMassProperties(3, vertices, indices)
	assert.True(t, want.ApproxEqual(got, 1e-9), "%+v != %+v", want, got)
}

func TestTriMeshMassOffCenter(t *testing.T) {
	vertices, indices := NewCuboid(1, 1, 1).ToTriMesh()
	for i := range vertices {
		vertices[i] = vertices[i].Add(Vec(5, -1, 2))
	}
	mp := TriMeshMassProperties(1, vertices, indices)
	assert.InDelta(t, 8, mp.Mass, 1e-9)
	assert.True(t, mp.LocalCOM.Near(Vec(5, -1, 2), 1e-9), "%v", mp.LocalCOM)
	i := 8.0 * 2 / 3
	assertTensor(t, diag(i, i, i), mp, 1e-9)
}

func TestMassAddHalves(t *testing.T) {
	half := CuboidMassProperties(1, Vec(0.5, 1, 1))
	left := half.Transform(Translation(-0.5, 0, 0))
	right := half.Transform(Translation(0.5, 0, 0))
	whole := CuboidMassProperties(1, Vec(1, 1, 1))
	assert.True(t, whole.ApproxEqual(left.Add(right), 1e-9))
}

func TestMassTransformRotatesTensor(t *testing.T) {
	mp := CuboidMassProperties(1, Vec(2, 1, 0.5))
	rotated := mp.Transform(NewIsometry(Vector{}, Vec(0, 0, math.Pi/2)))
	// The x and y axes swap.
	assertTensor(t, diag(mp.PrincipalInertia.Y, mp.PrincipalInertia.X, mp.PrincipalInertia.Z), rotated, 1e-9)
}

func TestMassAddRecoversPrincipalFrame(t *testing.T) {
	rod := CapsuleMassProperties(1, Vec(-1, -1, 0), Vec(1, 1, 0), 0.1)
	sum := rod.Add(MassProperties{})
	assert.True(t, rod.ApproxEqual(sum, 1e-9))

	// The long axis of the rod carries the smallest moment.
	axial := sum.PrincipalInertia.MinComponent()
	var axis Vector
	for i := 0; i < 3; i++ {
		if sum.PrincipalInertia.At(i) == axial {
			axis = sum.PrincipalFrame.Rotate(Vector{}.With(i, 1))
		}
	}
	assert.InDelta(t, 1, math.Abs(axis.Dot(Vec(1, 1, 0).Normalize())), 1e-9, "%v", axis)
}

func TestCapsuleMassAlongSegment(t *testing.T) {
	c := NewCapsule(Vec(0, -1, 0), Vec(0, 1, 0), 0.5)
	along := c.MassProperties(1)
	x := NewCapsule(Vec(-1, 0, 0), Vec(1, 0, 0), 0.5).MassProperties(1)
	assert.InDelta(t, along.Mass, x.Mass, 1e-12)
	assertTensor(t, diag(along.PrincipalInertia.Y, along.PrincipalInertia.X, along.PrincipalInertia.Z), x, 1e-9)

	wantMass := math.Pi*0.25*2 + 4.0/3*math.Pi*0.125
	assert.InDelta(t, wantMass, along.Mass, 1e-12)
}

func TestConeMassMatchesMesh(t *testing.T) {
	cone := NewCone(1, 0.5)
	want := cone.MassProperties(2)
	assert.InDelta(t, -0.5, want.LocalCOM.Y, 1e-12)

	vertices, indices := cone.ToTriMesh(512)
	got := TriMeshMassProperties(2, vertices, indices)
	assert.InEpsilon(t, want.Mass, got.Mass, 1e-3)
	assert.InDelta(t, want.LocalCOM.Y, got.LocalCOM.Y, 1e-3)
	assertTensor(t, want.Tensor(), got, 1e-3)
}

func TestCylinderMassMatchesMesh(t *testing.T) {
	cylinder := NewCylinder(1, 0.5)
	want := cylinder.MassProperties(1)
	vertices, indices := cylinder.ToTriMesh(512)
	got := TriMeshMassProperties(1, vertices, indices)
	assert.InEpsilon(t, want.Mass, got.Mass, 1e-3)
	assert.InDelta(t, 0, got.LocalCOM.Length(), 1e-9)
	assertTensor(t, want.Tensor(), got, 1e-3)
}

func TestBallMassMatchesMesh(t *testing.T) {
	ball := NewBall(1)
	vertices, indices := ball.ToTriMesh(128, 128)
	got := TriMeshMassProperties(1, vertices, indices)
	want := ball.MassProperties(1)
	assert.InEpsilon(t, want.Mass, got.Mass, 2e-3)
	assertTensor(t, want.Tensor(), got, 5e-3)
}

func TestZeroMass(t *testing.T) {
	var mp MassProperties
	assert.Equal(t, 0.0, mp.InvMass())
	assert.Equal(t, Vector{}, mp.InvPrincipalInertia())
	assertTensor(t, diag(0, 0, 0), mp, 0)
	require.NotPanics(t, func() { mp.Add(mp) })
}
