package dim2

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector_Normalize(t *testing.T) {
	v := Vector{}
	u := v.Normalize()
	assert.Equal(t, Vector{}, u)

	u = Vec(3, 4).Normalize()
	assert.InDelta(t, 0.6, u.X, 1e-12)
	assert.InDelta(t, 0.8, u.Y, 1e-12)
}

func TestVector_TryNormalize(t *testing.T) {
	_, ok := Vec(1e-9, 0).TryNormalize(1e-7)
	assert.False(t, ok)

	n, ok := Vec(0, -2).TryNormalize(1e-7)
	assert.True(t, ok)
	assert.Equal(t, Vec(0, -1), n)
}

func TestVector_Cross(t *testing.T) {
	assert.Equal(t, 1.0, Vec(1, 0).Cross(Vec(0, 1)))
	assert.Equal(t, Vec(0, 1), Vec(1, 0).Perp())
	assert.Equal(t, Vec(0, -1), Vec(1, 0).ReversePerp())
}

func TestVector_ClosestPointOnSegment(t *testing.T) {
	p := Vec(0.5, 2).ClosestPointOnSegment(Vec(0, 0), Vec(1, 0))
	assert.InDelta(t, 0.5, p.X, 1e-12)
	assert.InDelta(t, 0, p.Y, 1e-12)

	p = Vec(-3, 1).ClosestPointOnSegment(Vec(0, 0), Vec(1, 0))
	assert.Equal(t, Vec(0, 0), p)
}

func TestIsometry(t *testing.T) {
	pos := NewIsometry(Vec(1, 2), math.Pi/2)
	p := pos.Point(Vec(1, 0))
	assert.InDelta(t, 1, p.X, 1e-12)
	assert.InDelta(t, 3, p.Y, 1e-12)

	back := pos.InversePoint(p)
	assert.InDelta(t, 1, back.X, 1e-12)
	assert.InDelta(t, 0, back.Y, 1e-12)

	id := pos.Mult(pos.Inverse())
	assert.InDelta(t, 0, id.Translation.Length(), 1e-12)
	assert.InDelta(t, 0, id.Rotation.Angle(), 1e-12)
}

func TestIsometryZeroValue(t *testing.T) {
	var pos Isometry
	assert.Equal(t, Vec(1, 2), pos.Point(Vec(1, 2)))
	assert.Equal(t, Vec(1, 2), pos.InversePoint(Vec(1, 2)))
	assert.Equal(t, Vec(3, 4), pos.Extents(Vec(3, 4)))
	assert.Equal(t, Identity(), pos.Mult(Identity()))
	assert.Equal(t, Identity(), pos.Inverse())
	assert.Equal(t, Vec(0, 1), Translation(0, 1).Mult(pos).Translation)
}

func TestAABB_Transform(t *testing.T) {
	bb := NewAABB(Vec(-1, -2), Vec(1, 2))
	rotated := bb.Transform(NewIsometry(Vec(10, 0), math.Pi/2))
	assert.True(t, rotated.ApproxEqual(NewAABB(Vec(8, -1), Vec(12, 1)), 1e-9), "%v", rotated)
}

func TestAABB_MergedWithInvalid(t *testing.T) {
	bb := NewAABB(Vec(-1, -2), Vec(1, 2))
	assert.Equal(t, bb, InvalidAABB().Merged(bb))
	assert.False(t, InvalidAABB().IsValid())
}

func TestAABB_TransformInvalid(t *testing.T) {
	bb := InvalidAABB().Transform(NewIsometry(Vec(1, 1), 0.5))
	assert.False(t, bb.IsValid())
	assert.Equal(t, InvalidAABB(), bb)

	bb = NewAABB(Vec(0, 0), Vec(1, 1)).Merged(InvalidAABB().Transform(Translation(1, 1)))
	assert.Equal(t, NewAABB(Vec(0, 0), Vec(1, 1)), bb)
}

func TestBoundingSphere_Merged(t *testing.T) {
	a := BoundingSphere{Center: Vec(0, 0), Radius: 1}
	b := BoundingSphere{Center: Vec(4, 0), Radius: 1}
	m := a.Merged(b)
	assert.InDelta(t, 3, m.Radius, 1e-12)
	assert.InDelta(t, 2, m.Center.X, 1e-12)

	inner := BoundingSphere{Center: Vec(0.5, 0), Radius: 0.1}
	assert.Equal(t, a, a.Merged(inner))
}
