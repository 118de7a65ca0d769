package dim2

import (
	"math"
	"testing"

	"github.com/jakecoffman/collide"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromConvexHull(t *testing.T) {
	points := []Vector{
		Vec(1, 1), Vec(0, 0), Vec(2, 2), Vec(1, 0),
		Vec(2, 0), Vec(0.5, 1.5), Vec(0, 2),
	}
	poly, err := FromConvexHull(points)
	require.NoError(t, err)

	assert.ElementsMatch(t, []Vector{Vec(0, 0), Vec(2, 0), Vec(2, 2), Vec(0, 2)}, poly.Points())
	assert.Greater(t, AreaForPoly(poly.Points()), 0.0)
	assert.Equal(t, Vec(1, 1), points[0], "input must not be modified")
}

func TestFromConvexPolyline(t *testing.T) {
	// Clockwise with a collinear vertex and a repeated closing point.
	poly, err := FromConvexPolyline([]Vector{
		Vec(0, 0), Vec(0, 2), Vec(2, 2), Vec(2, 1), Vec(2, 0), Vec(0, 0),
	})
	require.NoError(t, err)
	require.Len(t, poly.Points(), 4)
	assert.InDelta(t, 4, AreaForPoly(poly.Points()), 1e-12)

	for i, n := range poly.Normals() {
		a := poly.Points()[i]
		b := poly.Points()[(i+1)%4]
		assert.InDelta(t, 0, n.Dot(b.Sub(a)), 1e-12)
		assert.InDelta(t, 1, n.Length(), 1e-12)
		// Outward: the center lies behind every edge.
		assert.Less(t, n.Dot(Vec(1, 1).Sub(a)), 0.0)
	}
}

func TestFromConvexPolylineDegenerate(t *testing.T) {
	for _, points := range [][]Vector{
		nil,
		{Vec(0, 0), Vec(1, 1)},
		{Vec(0, 0), Vec(1, 0), Vec(2, 0)},
		{Vec(0, 0), Vec(0, 0), Vec(0, 0), Vec(0, 0)},
	} {
		poly, err := FromConvexPolyline(points)
		assert.Nil(t, poly)
		assert.True(t, errors.Is(err, collide.ErrDegenerateShape), "%v", points)
	}
}

func TestConvexPolygonFeatures(t *testing.T) {
	poly := must(FromConvexPolyline([]Vector{Vec(0, 0), Vec(2, 0), Vec(2, 2), Vec(0, 2)}))

	f := poly.LocalSupportFeature(Vec(0.1, -1))
	assert.Equal(t, collide.Face(0), f.FID)
	assert.Equal(t, [2]Vector{Vec(0, 0), Vec(2, 0)}, f.Vertices)
	assert.Equal(t, [2]collide.FeatureID{collide.Vertex(0), collide.Vertex(1)}, f.VIDs)

	n, ok := poly.FeatureNormalAtPoint(collide.Face(0), Vector{})
	require.True(t, ok)
	assert.Equal(t, Vec(0, -1), n)

	n, ok = poly.FeatureNormalAtPoint(collide.Vertex(0), Vector{})
	require.True(t, ok)
	assert.InDelta(t, -math.Sqrt2/2, n.X, 1e-12)
	assert.InDelta(t, -math.Sqrt2/2, n.Y, 1e-12)

	_, ok = poly.FeatureNormalAtPoint(collide.Face(4), Vector{})
	assert.False(t, ok)

	assert.Equal(t, Vec(2, 2), poly.LocalSupportPoint(Vec(1, 1)))
}

func TestConvexPolygonMassAndCCD(t *testing.T) {
	poly := must(FromConvexPolyline([]Vector{Vec(0, 0), Vec(4, 0), Vec(4, 2), Vec(0, 2)}))

	mp := poly.MassProperties(1)
	assert.InDelta(t, 8, mp.Mass, 1e-12)
	assert.True(t, mp.LocalCOM.Near(Vec(2, 1), 1e-12))
	assert.InDelta(t, 8*(16+4)/12.0, mp.PrincipalInertia, 1e-9)

	assert.Equal(t, 1.0, poly.CCDThickness())
	assert.Equal(t, math.Pi/4, poly.CCDAngularThickness())
}

func TestConvexPolygonScale(t *testing.T) {
	poly := must(FromConvexPolyline([]Vector{Vec(0, 0), Vec(1, 0), Vec(0, 1)}))

	s, err := poly.Scale(Vec(-2, 1), 0)
	require.NoError(t, err)
	scaled := s.(*ConvexPolygon)
	assert.Greater(t, AreaForPoly(scaled.Points()), 0.0)
	assert.Equal(t, NewAABB(Vec(-2, 0), Vec(0, 1)), scaled.LocalAABB())

	s, err = poly.Scale(Vec(1, 0), 0)
	assert.Nil(t, s)
	assert.True(t, errors.Is(err, collide.ErrUnscalableShape))
}
