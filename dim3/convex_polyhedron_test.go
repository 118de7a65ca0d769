package dim3

import (
	"math"
	"testing"

	"github.com/jakecoffman/collide"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvexPolyhedronCube(t *testing.T) {
	c := cube(t)
	assert.Len(t, c.Faces(), 12)
	// Twelve box edges and one diagonal per side.
	assert.Equal(t, 18, c.NumEdges())
	assert.Equal(t, NewAABB(Splat(-1), Splat(1)), c.LocalAABB())
	assert.InDelta(t, 8, c.MassProperties(1).Mass, 1e-12)
	assert.Equal(t, 1.0, c.CCDThickness())
	assert.Equal(t, math.Pi/4, c.CCDAngularThickness())

	for i, n := range c.FaceNormals() {
		assert.InDelta(t, 1, n.Abs().MaxComponent(), 1e-12, "face %d is axis aligned", i)
	}
}

func TestConvexPolyhedronSupportFeature(t *testing.T) {
	c := cube(t)
	up := Vec(0, 0, 1)
	f := c.LocalSupportFeature(Vec(0.1, 0.2, 1))
	require.Equal(t, 3, f.NumVertices)

	n, ok := c.FeatureNormalAtPoint(f.FID, Vector{})
	require.True(t, ok)
	assert.Equal(t, up, n)
	assert.True(t, featureNormal(f).Near(up, 1e-12))

	for k := 0; k < 3; k++ {
		assert.Equal(t, 1.0, f.Vertices[k].Z)

		en, ok := c.FeatureNormalAtPoint(f.EIDs[k], Vector{})
		require.True(t, ok)
		// Either the diagonal of the top side or a box edge at 45 degrees.
		assert.GreaterOrEqual(t, en.Dot(up), math.Sqrt2/2-1e-12, "edge %v", f.EIDs[k])

		vn, ok := c.FeatureNormalAtPoint(f.VIDs[k], Vector{})
		require.True(t, ok)
		assert.Greater(t, vn.Dot(f.Vertices[k]), 0.0)
		for axis := 0; axis < 3; axis++ {
			assert.Equal(t, math.Signbit(f.Vertices[k].At(axis)), math.Signbit(vn.At(axis)))
		}
	}

	_, ok = c.FeatureNormalAtPoint(collide.Face(12), Vector{})
	assert.False(t, ok)
	_, ok = c.FeatureNormalAtPoint(collide.Edge(18), Vector{})
	assert.False(t, ok)
}

func TestConvexPolyhedronOrientation(t *testing.T) {
	vertices, indices := NewCuboid(1, 1, 1).ToTriMesh()
	reversed := make([][3]uint32, len(indices))
	for i, f := range indices {
		reversed[i] = [3]uint32{f[0], f[2], f[1]}
	}
	poly, err := FromConvexMesh(vertices, reversed)
	require.NoError(t, err)
	assert.Equal(t, cube(t).FaceNormals(), poly.FaceNormals())
	assert.InDelta(t, 8, poly.MassProperties(1).Mass, 1e-12)
}

func TestConvexPolyhedronRejects(t *testing.T) {
	vertices, indices := NewCuboid(1, 1, 1).ToTriMesh()

	_, err := FromConvexMesh(vertices[:3], indices)
	assert.True(t, errors.Is(err, collide.ErrDegenerateShape), "%v", err)

	_, err = FromConvexMesh(vertices, [][3]uint32{{0, 1, 2}, {0, 2, 3}, {0, 3, 1}, {0, 1, 9}})
	assert.True(t, errors.Is(err, collide.ErrDegenerateShape), "%v", err)

	dented := append([]Vector(nil), vertices...)
	dented[7] = Splat(0.2)
	_, err = FromConvexMesh(dented, indices)
	assert.True(t, errors.Is(err, collide.ErrDegenerateShape), "%v", err)
	assert.Contains(t, err.Error(), "not convex")

	_, err = FromConvexMesh(vertices, indices[:11])
	assert.True(t, errors.Is(err, collide.ErrDegenerateShape), "%v", err)
	assert.Contains(t, err.Error(), "not closed")

	flat := append([]Vector(nil), vertices...)
	for i := range flat {
		flat[i].Z = 0
	}
	_, err = FromConvexMesh(flat, indices)
	assert.True(t, errors.Is(err, collide.ErrDegenerateShape), "%v", err)
}

func TestConvexPolyhedronScale(t *testing.T) {
	c := cube(t)
	s, err := c.Scale(Vec(2, -1, 0.5), 0)
	require.NoError(t, err)
	poly, ok := AsConvexPolyhedron(s)
	require.True(t, ok)
	assert.Equal(t, NewAABB(Vec(-2, -1, -0.5), Vec(2, 1, 0.5)), poly.LocalAABB())
	assert.InDelta(t, 8, poly.MassProperties(1).Mass, 1e-12)
	// Mirroring keeps the faces outward.
	for i, f := range poly.Faces() {
		n := poly.FaceNormals()[i]
		center := poly.Points()[f[0]].Add(poly.Points()[f[1]]).Add(poly.Points()[f[2]])
		assert.Greater(t, n.Dot(center), 0.0)
	}

	_, err = c.Scale(Vec(1, 0, 1), 0)
	assert.True(t, errors.Is(err, collide.ErrUnscalableShape), "%v", err)
}

func TestRoundConvexPolyhedron(t *testing.T) {
	r := must(NewRounded(cube(t), 0.1))
	assert.Equal(t, collide.RoundConvexPolyhedron, r.Kind())
	assert.True(t, NewAABB(Splat(-1.1), Splat(1.1)).ApproxEqual(r.LocalAABB(), 1e-12))
	assert.InDelta(t, 1.1, r.LocalSupportPoint(Vec(1, 0, 0)).X, 1e-12)

	clone := r.Clone().(*RoundConvexPolyhedron)
	assert.NotSame(t, r.Inner, clone.Inner)
	assert.Equal(t, r.Inner.Faces(), clone.Inner.Faces())
}
