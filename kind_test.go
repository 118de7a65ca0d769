package collide

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindValuesAreStable(t *testing.T) {
	assert.Equal(t, Kind(0), Ball)
	assert.Equal(t, Kind(8), HalfSpace)
	assert.Equal(t, Kind(10), Compound)
	assert.Equal(t, Kind(11), ConvexPolygon)
	assert.Equal(t, Kind(20), RoundConvexPolygon)
	assert.Equal(t, Kind(21), Custom)
}

func TestKindNames(t *testing.T) {
	kinds := Kinds()
	require.Len(t, kinds, 22)
	for i, k := range kinds {
		assert.Equal(t, Kind(i), k)
		assert.True(t, k.Valid())

		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	assert.False(t, Kind(22).Valid())
	assert.Equal(t, "Kind(200)", Kind(200).String())
	_, err := ParseKind("Sphere")
	assert.True(t, errors.Is(err, ErrUnknownKind), "%v", err)
}

func TestKindCategories(t *testing.T) {
	composite := map[Kind]bool{TriMesh: true, Polyline: true, HeightField: true, Compound: true}
	for _, k := range Kinds() {
		assert.Equal(t, composite[k], k.IsComposite(), k.String())
		assert.True(t, k.Supports2D() || k.Supports3D(), k.String())
	}

	assert.True(t, RoundCone.IsRound())
	assert.False(t, Cone.IsRound())
	assert.False(t, Voxels.IsComposite())

	assert.True(t, ConvexPolygon.Supports2D())
	assert.False(t, ConvexPolygon.Supports3D())
	assert.False(t, Cylinder.Supports2D())
	assert.True(t, RoundConvexPolyhedron.Supports3D())
	assert.True(t, Custom.Supports2D() && Custom.Supports3D())
	assert.False(t, Kind(99).Supports3D())
}

func TestFeatureID(t *testing.T) {
	assert.Equal(t, FeatureID{FeatureEdge, 3}, Edge(3))
	assert.Equal(t, "Face(1)", Face(1).String())
	assert.Equal(t, "Unknown", FeatureID{}.String())
	assert.NotEqual(t, Vertex(1), Face(1))
}
