package dim2

import (
	"math"
	"testing"

	"github.com/jakecoffman/collide"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blob is a user defined shape.
type blob struct {
	Ball
}

func (b *blob) Kind() collide.Kind {
	return collide.Custom
}

func (b *blob) Typed() TypedShape {
	return TypedShape{collide.Custom, b}
}

func (b *blob) Clone() Shape {
	c := *b
	return &c
}

func must[S Shape](s S, err error) S {
	if err != nil {
		panic(err)
	}
	return s
}

func testShapes(t *testing.T) map[string]Shape {
	t.Helper()
	square := []Vector{Vec(0, 0), Vec(1, 0), Vec(1, 1), Vec(0, 1)}
	hexagon := NewBall(1).ToPolyline(6)

	ball := Share(NewBall(0.5))
	return map[string]Shape{
		"ball":     NewBall(2),
		"cuboid":   NewCuboid(1, 2),
		"capsule":  NewCapsule(Vec(-1, 0), Vec(1, 1), 0.5),
		"segment":  NewSegment(Vec(-1, 0), Vec(2, 3)),
		"triangle": NewTriangle(Vec(0, 0), Vec(2, 0), Vec(0, 1)),
		"voxels":   must(NewVoxels(Vec(0.5, 0.5), []VoxelKey{{0, 0}, {1, 0}, {-2, 3}})),
		"trimesh": must(NewTriMesh(square, [][3]uint32{
			{0, 1, 2}, {0, 2, 3},
		})),
		"polyline":    must(NewPolyline(square, nil)),
		"halfspace":   must(NewHalfSpace(Vec(0, 1))),
		"heightfield": must(NewHeightField([]float64{0, 1, 0.5, 2}, Vec(4, 1))),
		"compound": must(NewCompound([]Child{
			{Position: Identity(), Shape: ball},
			{Position: NewIsometry(Vec(3, 0), 0.3), Shape: Share(NewCuboid(1, 0.5))},
			{Position: Translation(0, 4), Shape: ball},
		})),
		"convex":         must(FromConvexPolyline(hexagon)),
		"round-cuboid":   must(NewRoundCuboid(1, 2, 0.25)),
		"round-triangle": must(NewRoundTriangle(Vec(0, 0), Vec(2, 0), Vec(0, 1), 0.1)),
		"round-convex":   must(NewRounded(must(FromConvexPolyline(hexagon)), 0.3)),
		"custom":         &blob{Ball{Radius: 1}},
	}
}

func testPositions() []Isometry {
	return []Isometry{
		Identity(),
		Translation(3, -2),
		NewIsometry(Vec(-1, 5), math.Pi/3),
		NewIsometry(Vec(0.5, 0.25), -2.1),
	}
}

func TestAABBWithinTransformedLocalAABB(t *testing.T) {
	for name, s := range testShapes(t) {
		for _, pos := range testPositions() {
			bound := s.LocalAABB().Transform(pos).Loosened(1e-9)
			assert.True(t, bound.Contains(s.AABB(pos)), "%s at %v", name, pos)
		}
	}
}

func TestSweptAABBContainsEndpoints(t *testing.T) {
	for name, s := range testShapes(t) {
		positions := testPositions()
		for i := 1; i < len(positions); i++ {
			start, end := positions[i-1], positions[i]
			swept := s.SweptAABB(start, end)
			assert.True(t, swept.Contains(s.AABB(start)), name)
			assert.True(t, swept.Contains(s.AABB(end)), name)
		}
	}
}

func TestTypedAgreesWithKind(t *testing.T) {
	for name, s := range testShapes(t) {
		typed := s.Typed()
		assert.Equal(t, s.Kind(), typed.Kind, name)
		assert.Same(t, s, typed.Shape, name)
		assert.True(t, s.Kind().Supports2D(), name)
	}
}

func TestCloneKeepsObservables(t *testing.T) {
	for name, s := range testShapes(t) {
		c := s.Clone()
		assert.NotSame(t, s, c, name)
		assert.Equal(t, s.Kind(), c.Kind(), name)
		assert.Equal(t, s.LocalAABB(), c.LocalAABB(), name)
		assert.Equal(t, s.LocalBoundingSphere(), c.LocalBoundingSphere(), name)
		assert.Equal(t, s.MassProperties(1.5), c.MassProperties(1.5), name)
		assert.Equal(t, s.CCDThickness(), c.CCDThickness(), name)
	}
}

func TestDowncastMatchesKind(t *testing.T) {
	casts := map[collide.Kind]func(Shape) bool{
		collide.Ball:               func(s Shape) bool { _, ok := AsBall(s); return ok },
		collide.Cuboid:             func(s Shape) bool { _, ok := AsCuboid(s); return ok },
		collide.Capsule:            func(s Shape) bool { _, ok := AsCapsule(s); return ok },
		collide.Segment:            func(s Shape) bool { _, ok := AsSegment(s); return ok },
		collide.Triangle:           func(s Shape) bool { _, ok := AsTriangle(s); return ok },
		collide.Voxels:             func(s Shape) bool { _, ok := AsVoxels(s); return ok },
		collide.TriMesh:            func(s Shape) bool { _, ok := AsTriMesh(s); return ok },
		collide.Polyline:           func(s Shape) bool { _, ok := AsPolyline(s); return ok },
		collide.HalfSpace:          func(s Shape) bool { _, ok := AsHalfSpace(s); return ok },
		collide.HeightField:        func(s Shape) bool { _, ok := AsHeightField(s); return ok },
		collide.Compound:           func(s Shape) bool { _, ok := AsCompound(s); return ok },
		collide.ConvexPolygon:      func(s Shape) bool { _, ok := AsConvexPolygon(s); return ok },
		collide.RoundCuboid:        func(s Shape) bool { _, ok := AsRoundCuboid(s); return ok },
		collide.RoundTriangle:      func(s Shape) bool { _, ok := AsRoundTriangle(s); return ok },
		collide.RoundConvexPolygon: func(s Shape) bool { _, ok := AsRoundConvexPolygon(s); return ok },
	}

	for name, s := range testShapes(t) {
		for kind, cast := range casts {
			assert.Equal(t, s.Kind() == kind, cast(s), "%s as %v", name, kind)
			assert.Equal(t, s.Kind() == kind, cast(Share(s)), "shared %s as %v", name, kind)
		}
	}
}

func TestConvexShapesAreSupportMaps(t *testing.T) {
	for name, s := range testShapes(t) {
		if !s.IsConvex() {
			continue
		}
		_, ok := s.AsSupportMap()
		assert.True(t, ok, name)
	}
}

func TestCompositeKinds(t *testing.T) {
	for name, s := range testShapes(t) {
		_, ok := s.AsCompositeShape()
		assert.Equal(t, s.Kind().IsComposite(), ok, name)
	}
}

func TestAngularThicknessRange(t *testing.T) {
	for name, s := range testShapes(t) {
		a := s.CCDAngularThickness()
		assert.GreaterOrEqual(t, a, 0.0, name)
		assert.LessOrEqual(t, a, math.Pi, name)
		assert.GreaterOrEqual(t, s.CCDThickness(), 0.0, name)
	}
}

func TestSharedShapeForwards(t *testing.T) {
	ball := NewBall(3)
	shared := Share(ball)
	assert.Equal(t, collide.Ball, shared.Kind())
	assert.Equal(t, ball.LocalAABB(), shared.LocalAABB())
	assert.Equal(t, shared, Share(shared))

	b, ok := AsBall(shared)
	require.True(t, ok)
	assert.Same(t, ball, b)
}

func TestSupportPointWorldSpace(t *testing.T) {
	cuboid := NewCuboid(1, 2)
	pos := NewIsometry(Vec(10, 0), math.Pi/2)
	p := SupportPoint(cuboid, pos, Vec(1, 0))
	// The local y axis points along world -x after the rotation.
	assert.InDelta(t, 12, p.X, 1e-9)
}

func TestFeatureNormalKinds(t *testing.T) {
	withNormal := map[collide.Kind]bool{
		collide.Ball:          true,
		collide.Cuboid:        true,
		collide.Segment:       true,
		collide.ConvexPolygon: true,
	}
	features := []collide.FeatureID{collide.Vertex(0), collide.Edge(0), collide.Face(0)}
	for name, s := range testShapes(t) {
		if s.Kind() == collide.Custom {
			continue
		}
		reported := false
		for _, f := range features {
			if _, ok := s.FeatureNormalAtPoint(f, Vec(0, 3)); ok {
				reported = true
			}
		}
		assert.Equal(t, withNormal[s.Kind()], reported, name)
	}
}

func TestSupportPointOfZeroDirection(t *testing.T) {
	for name, s := range testShapes(t) {
		sm, ok := s.AsSupportMap()
		if !ok {
			continue
		}
		p := sm.LocalSupportPoint(Vector{})
		assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y), "%s: %v", name, p)
	}

	assert.Equal(t, Vector{}, NewBall(2).LocalSupportPoint(Vector{}))
	capsule := NewCapsule(Vec(-1, 0), Vec(1, 0), 0.5)
	assert.Equal(t, Vec(1, 0), capsule.LocalSupportPoint(Vector{}))
	rc := must(NewRoundCuboid(1, 1, 0.5))
	assert.Equal(t, Vec(1, 1), rc.LocalSupportPoint(Vector{}))
}
