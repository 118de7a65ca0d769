package dim2

import (
	"testing"

	"github.com/jakecoffman/collide"
	"github.com/jakecoffman/collide/partition"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ballAndBox(t *testing.T) []Child {
	t.Helper()
	return []Child{
		{Position: Identity(), Shape: Share(NewBall(1))},
		{Position: Translation(3, 0), Shape: Share(NewCuboid(1, 1))},
	}
}

func TestCompoundBallAndBox(t *testing.T) {
	c, err := NewCompound(ballAndBox(t))
	require.NoError(t, err)

	require.Len(t, c.Shapes(), 2)
	assert.Equal(t, NewAABB(Vec(-1, -1), Vec(1, 1)), c.AABBs()[0])
	assert.Equal(t, NewAABB(Vec(2, -1), Vec(4, 1)), c.AABBs()[1])
	assert.Equal(t, NewAABB(Vec(-1, -1), Vec(4, 1)), c.LocalAABB())
}

func TestCompoundRejectsNestedComposite(t *testing.T) {
	inner, err := NewCompound(ballAndBox(t))
	require.NoError(t, err)

	children := append(ballAndBox(t), Child{Position: Identity(), Shape: Share(inner)})
	_, err = NewCompound(children)
	assert.True(t, errors.Is(err, collide.ErrNestedComposite), "%v", err)

	line, err := NewPolyline([]Vector{Vec(0, 0), Vec(1, 0)}, nil)
	require.NoError(t, err)
	_, err = NewCompound([]Child{{Position: Identity(), Shape: Share(line)}})
	assert.True(t, errors.Is(err, collide.ErrNestedComposite), "%v", err)
}

func TestCompoundAcceptsCustomAndVoxels(t *testing.T) {
	voxels, err := NewVoxels(Vec(1, 1), []VoxelKey{{0, 0}})
	require.NoError(t, err)
	_, err = NewCompound([]Child{
		{Position: Identity(), Shape: Share(&blob{Ball{Radius: 1}})},
		{Position: Identity(), Shape: Share(voxels)},
	})
	assert.NoError(t, err)
}

func TestCompoundChildWithoutPosition(t *testing.T) {
	c, err := NewCompound([]Child{
		{Shape: Share(NewCuboid(1, 2))},
		{Position: Translation(4, 0), Shape: Share(NewBall(1))},
	})
	require.NoError(t, err)
	assert.Equal(t, NewAABB(Vec(-1, -2), Vec(1, 2)), c.AABBs()[0])
	assert.Equal(t, NewAABB(Vec(-1, -2), Vec(5, 2)), c.LocalAABB())
}

func TestCompoundEmpty(t *testing.T) {
	c, err := NewCompound(nil)
	assert.Nil(t, c)
	assert.True(t, errors.Is(err, collide.ErrEmptyCompound))
}

func TestCompoundBVHLeaves(t *testing.T) {
	var children []Child
	for i := 0; i < 20; i++ {
		children = append(children, Child{
			Position: NewIsometry(Vec(float64(i%5)*3, float64(i/5)*3), float64(i)*0.1),
			Shape:    Share(NewCuboid(1, 0.5)),
		})
	}
	c, err := NewCompound(children)
	require.NoError(t, err)

	union := InvalidAABB()
	for _, bb := range c.AABBs() {
		union = union.Merged(bb)
	}
	assert.Equal(t, union, c.LocalAABB())

	leaves := c.BVH().Leaves()
	require.Len(t, leaves, len(children))
	for i, leaf := range leaves {
		assert.Equal(t, uint32(i), leaf.Index)
		assert.Equal(t, c.AABBs()[i], leaf.Volume)
		assert.Equal(t, children[i].Shape.AABB(children[i].Position), leaf.Volume)
	}

	seen := map[uint32]bool{}
	c.BVH().Traverse(func(AABB) bool { return true }, func(l partition.Leaf[AABB]) bool {
		seen[l.Index] = true
		return true
	})
	assert.Len(t, seen, len(children))
}

func TestCompoundCCD(t *testing.T) {
	c, err := NewCompound([]Child{
		{Position: Identity(), Shape: Share(NewBall(3))},
		{Position: Translation(5, 0), Shape: Share(NewCuboid(0.5, 2))},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.5, c.CCDThickness())
	assert.Equal(t, NewBall(3).CCDAngularThickness(), c.CCDAngularThickness())
}

func TestCompoundMassProperties(t *testing.T) {
	c, err := NewCompound([]Child{
		{Position: Translation(-2, 0), Shape: Share(NewBall(1))},
		{Position: Translation(2, 0), Shape: Share(NewBall(1))},
	})
	require.NoError(t, err)

	single := NewBall(1).MassProperties(2)
	mp := c.MassProperties(2)
	assert.InDelta(t, 2*single.Mass, mp.Mass, 1e-9)
	assert.InDelta(t, 0, mp.LocalCOM.Length(), 1e-9)
	assert.InDelta(t, 2*(single.PrincipalInertia+single.Mass*4), mp.PrincipalInertia, 1e-9)
}

func TestCompoundScale(t *testing.T) {
	c, err := NewCompound(ballAndBox(t))
	require.NoError(t, err)

	scaled, err := c.Scale(Vec(2, 2), 0)
	require.NoError(t, err)
	sc, ok := AsCompound(scaled)
	require.True(t, ok)
	assert.Equal(t, Vec(6, 0), sc.Shapes()[1].Position.Translation)
	assert.Equal(t, collide.Ball, sc.Shapes()[0].Shape.Kind())
	assert.Equal(t, NewAABB(Vec(-2, -2), Vec(8, 2)), sc.LocalAABB())

	scaled, err = c.Scale(Vec(2, 1), 8)
	require.NoError(t, err)
	sc, ok = AsCompound(scaled)
	require.True(t, ok)
	assert.Equal(t, collide.ConvexPolygon, sc.Shapes()[0].Shape.Kind())
}

func TestCompoundScaleFailurePropagates(t *testing.T) {
	half, err := NewHalfSpace(Vec(0, 1))
	require.NoError(t, err)
	c, err := NewCompound([]Child{
		{Position: Identity(), Shape: Share(NewBall(1))},
		{Position: Identity(), Shape: Share(half)},
	})
	require.NoError(t, err)

	scaled, err := c.Scale(Vec(1, 0), 0)
	assert.Nil(t, scaled)
	assert.True(t, errors.Is(err, collide.ErrUnscalableShape), "%v", err)
}

func TestCompoundMapPartAt(t *testing.T) {
	c, err := NewCompound(ballAndBox(t))
	require.NoError(t, err)

	var got Shape
	var at *Isometry
	c.MapPartAt(1, func(pos *Isometry, part Shape, nc NormalConstraints) {
		got, at = part, pos
		assert.Nil(t, nc)
	})
	require.NotNil(t, at)
	assert.Equal(t, Vec(3, 0), at.Translation)
	assert.Equal(t, collide.Cuboid, got.Kind())

	called := false
	assert.False(t, c.MapTypedPartAt(2, func(*Isometry, Shape, NormalConstraints) { called = true }))
	assert.False(t, called)

	var _ TypedCompositeShape[Shape] = c
	var _ TypedCompositeShape[*Triangle] = &TriMesh{}
	var _ TypedCompositeShape[*Segment] = &Polyline{}
	var _ TypedCompositeShape[*Segment] = &HeightField{}
}

func squareMesh(t *testing.T, diagonal bool) *TriMesh {
	t.Helper()
	vertices := []Vector{Vec(0, 0), Vec(1, 0), Vec(1, 1), Vec(0, 1)}
	indices := [][3]uint32{{0, 1, 2}, {0, 2, 3}}
	if diagonal {
		indices = [][3]uint32{{0, 1, 3}, {1, 2, 3}}
	}
	mesh, err := NewTriMesh(vertices, indices)
	require.NoError(t, err)
	return mesh
}

func TestDecomposeSquare(t *testing.T) {
	for _, diagonal := range []bool{false, true} {
		c, err := DecomposeTriMesh(squareMesh(t, diagonal))
		require.NoError(t, err)
		require.Len(t, c.Shapes(), 1)

		child := c.Shapes()[0]
		assert.Equal(t, Identity(), child.Position)
		poly, ok := AsConvexPolygon(child.Shape)
		require.True(t, ok)
		assert.Len(t, poly.Points(), 4)
		assert.InDelta(t, 1, poly.MassProperties(1).Mass, 1e-9)
	}
}

func TestDecomposeKeepsConcaveTriangles(t *testing.T) {
	// An arrow head: merging the two triangles would make a reflex vertex.
	vertices := []Vector{Vec(0, 0), Vec(2, 1), Vec(0, 2), Vec(0.5, 1)}
	mesh, err := NewTriMesh(vertices, [][3]uint32{{0, 1, 3}, {3, 1, 2}})
	require.NoError(t, err)

	c, err := DecomposeTriMesh(mesh)
	require.NoError(t, err)
	require.Len(t, c.Shapes(), 2)
	for _, child := range c.Shapes() {
		assert.Equal(t, collide.Triangle, child.Shape.Kind())
	}
}

func TestDecomposeDegenerate(t *testing.T) {
	vertices := []Vector{Vec(0, 0), Vec(1, 0), Vec(2, 0)}
	mesh, err := NewTriMesh(vertices, [][3]uint32{{0, 1, 2}})
	require.NoError(t, err)

	c, err := DecomposeTriMesh(mesh)
	assert.Nil(t, c)
	assert.True(t, errors.Is(err, collide.ErrDegenerateDecomposition), "%v", err)
}
