package dim3

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector_Normalize(t *testing.T) {
	assert.Equal(t, Vector{}, Vector{}.Normalize())

	u := Vec(2, 3, 6).Normalize()
	assert.InDelta(t, 2.0/7, u.X, 1e-12)
	assert.InDelta(t, 6.0/7, u.Z, 1e-12)

	_, ok := Vec(1e-9, 0, 0).TryNormalize(1e-7)
	assert.False(t, ok)
}

func TestVector_Components(t *testing.T) {
	v := Vec(1, -2, 3)
	assert.Equal(t, -2.0, v.At(1))
	assert.Equal(t, Vec(1, 5, 3), v.With(1, 5))
	assert.Equal(t, Vec(0, 0, 1), Vec(1, 0, 0).Cross(Vec(0, 1, 0)))
	assert.Equal(t, 3.0, v.MaxComponent())
	assert.Equal(t, -2.0, v.MinComponent())
	assert.True(t, Vec(-2, 2, 2).IsUniform(1e-12))
	assert.False(t, Vec(1, 2, 1).IsUniform(1e-12))
}

func TestVector_AnyOrthogonal(t *testing.T) {
	for _, v := range []Vector{Vec(1, 0, 0), Vec(0, 1, 0), Vec(0, 0, -1), Vec(1, 2, 3).Normalize()} {
		o := v.AnyOrthogonal()
		assert.InDelta(t, 0, o.Dot(v), 1e-12, "%v", v)
		assert.InDelta(t, 1, o.Length(), 1e-12, "%v", v)
	}
}

func TestRotation(t *testing.T) {
	r := NewRotation(Vec(0, 0, math.Pi/2))
	assert.True(t, r.Rotate(Vec(1, 0, 0)).Near(Vec(0, 1, 0), 1e-12))
	assert.True(t, r.Unrotate(Vec(0, 1, 0)).Near(Vec(1, 0, 0), 1e-12))
	assert.InDelta(t, math.Pi/2, r.Angle(), 1e-12)
	assert.Equal(t, IdentityRotation(), NewRotation(Vector{}))

	// Mult applies its argument first.
	s := NewRotation(Vec(math.Pi/2, 0, 0))
	assert.True(t, r.Mult(s).Rotate(Vec(0, 1, 0)).Near(r.Rotate(Vec(0, 0, 1)), 1e-12))
}

func TestIsometryZeroValue(t *testing.T) {
	var pos Isometry
	assert.Equal(t, Vec(1, 2, 3), pos.Point(Vec(1, 2, 3)))
	assert.Equal(t, Vec(1, 2, 3), pos.Extents(Vec(1, 2, 3)))
	assert.Equal(t, 0.0, pos.Rotation.Angle())
	assert.Equal(t, IdentityRotation(), pos.Rotation.Mult(IdentityRotation()))
}

func TestRotationMatrixRoundTrip(t *testing.T) {
	for _, axisAngle := range []Vector{
		Vec(0.3, -0.2, 0.9),
		Vec(math.Pi, 0, 0),
		Vec(0, 3, 0),
		Vec(0, 0, -3.1),
	} {
		r := NewRotation(axisAngle)
		m := r.Matrix()
		back := RotationFromMatrix(m)
		for _, v := range []Vector{Vec(1, 0, 0), Vec(0, 1, 0), Vec(0, 0, 1)} {
			assert.True(t, r.Rotate(v).Near(back.Rotate(v), 1e-12), "%v", axisAngle)
		}
		// The matrix columns are the rotated axes.
		col := Vec(m[0][2], m[1][2], m[2][2])
		assert.True(t, col.Near(r.Rotate(Vec(0, 0, 1)), 1e-12))
	}
}

func TestIsometry(t *testing.T) {
	pos := NewIsometry(Vec(1, 2, 3), Vec(0, math.Pi/2, 0))
	p := pos.Point(Vec(1, 0, 0))
	assert.True(t, p.Near(Vec(1, 2, 2), 1e-12), "%v", p)
	assert.True(t, pos.InversePoint(p).Near(Vec(1, 0, 0), 1e-12))

	id := pos.Mult(pos.Inverse())
	assert.InDelta(t, 0, id.Translation.Length(), 1e-12)
	assert.InDelta(t, 0, id.Rotation.Angle(), 1e-12)
}

func TestAABB_Transform(t *testing.T) {
	bb := NewAABB(Vec(-1, -2, -3), Vec(1, 2, 3))
	rotated := bb.Transform(NewIsometry(Vec(10, 0, 0), Vec(0, 0, math.Pi/2)))
	assert.True(t, rotated.ApproxEqual(NewAABB(Vec(8, -1, -3), Vec(12, 1, 3)), 1e-9), "%v", rotated)
}

func TestAABB_Vertices(t *testing.T) {
	bb := NewAABB(Vec(0, 0, 0), Vec(1, 2, 3))
	vs := bb.Vertices()
	assert.Equal(t, Vec(0, 0, 0), vs[0])
	assert.Equal(t, Vec(1, 0, 3), vs[5])
	assert.Equal(t, Vec(1, 2, 3), vs[7])
	assert.Equal(t, bb, AABBFromPoints(vs[:]))
	assert.Equal(t, 6.0, bb.Volume())
}

func TestAABB_MergedWithInvalid(t *testing.T) {
	bb := NewAABB(Splat(-1), Splat(1))
	assert.Equal(t, bb, InvalidAABB().Merged(bb))
	assert.False(t, InvalidAABB().IsValid())
	require.True(t, bb.IsValid())
	assert.True(t, bb.Intersects(NewAABB(Splat(0.5), Splat(3))))
	assert.False(t, bb.Intersects(NewAABB(Vec(2, 0, 0), Splat(3))))
}

func TestBoundingSphere_Merged(t *testing.T) {
	a := BoundingSphere{Center: Vec(0, 0, 0), Radius: 1}
	b := BoundingSphere{Center: Vec(0, 0, 4), Radius: 1}
	m := a.Merged(b)
	assert.InDelta(t, 3, m.Radius, 1e-12)
	assert.InDelta(t, 2, m.Center.Z, 1e-12)

	inner := BoundingSphere{Center: Vec(0.5, 0, 0), Radius: 0.1}
	assert.Equal(t, a, a.Merged(inner))
}

func TestAABB_TransformInvalid(t *testing.T) {
	pos := NewIsometry(Vec(1, 2, 3), Vec(0, math.Pi/3, 0))
	assert.Equal(t, InvalidAABB(), InvalidAABB().Transform(pos))

	bb := NewAABB(Splat(0), Splat(1))
	assert.Equal(t, bb, bb.Merged(InvalidAABB().Transform(pos)))
}
