package dim2

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMassPropertiesTransform(t *testing.T) {
	mp := TriangleMassProperties(1, Vec(0, 0), Vec(3, 0), Vec(0, 3))
	moved := mp.Transform(NewIsometry(Vec(1, 1), math.Pi/2))
	assert.True(t, moved.LocalCOM.Near(Vec(0, 2), 1e-12), "%v", moved.LocalCOM)
	assert.Equal(t, mp.Mass, moved.Mass)
	assert.Equal(t, mp.PrincipalInertia, moved.PrincipalInertia)
}

func TestMassPropertiesAdd(t *testing.T) {
	// Two halves of a 2x2 square.
	left := CuboidMassProperties(1, Vec(0.5, 1))
	left.LocalCOM = Vec(-0.5, 0)
	right := left
	right.LocalCOM = Vec(0.5, 0)

	whole := CuboidMassProperties(1, Vec(1, 1))
	assert.True(t, left.Add(right).ApproxEqual(whole, 1e-12))

	assert.Equal(t, left, left.Add(MassProperties{}))
}

func TestMassPropertiesInverse(t *testing.T) {
	assert.Equal(t, 0.0, MassProperties{}.InvMass())
	assert.Equal(t, 0.0, MassProperties{}.InvPrincipalInertia())
	assert.Equal(t, 0.5, MassProperties{Mass: 2, PrincipalInertia: 4}.InvMass())
	assert.Equal(t, 0.25, MassProperties{Mass: 2, PrincipalInertia: 4}.InvPrincipalInertia())
}

func TestPolygonMassMatchesCuboid(t *testing.T) {
	square := []Vector{Vec(-1, -2), Vec(1, -2), Vec(1, 2), Vec(-1, 2)}
	assert.True(t, PolygonMassProperties(3, square).ApproxEqual(CuboidMassProperties(3, Vec(1, 2)), 1e-9))
	assert.InDelta(t, 8, AreaForPoly(square), 1e-12)
	assert.Equal(t, Vector{}, CentroidForPoly(square))
}
