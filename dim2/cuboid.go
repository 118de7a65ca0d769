package dim2

import (
	"math"

	"github.com/jakecoffman/collide"
)

// Cuboid is an axis-aligned rectangle centered at the origin.
type Cuboid struct {
	shapeBase
	HalfExtents Vector
}

func NewCuboid(hx, hy float64) *Cuboid {
	return &Cuboid{HalfExtents: Vec(hx, hy)}
}

func (c *Cuboid) LocalAABB() AABB {
	return NewAABBForExtents(Vector{}, c.HalfExtents)
}

func (c *Cuboid) LocalBoundingSphere() BoundingSphere {
	return BoundingSphere{Radius: c.HalfExtents.Length()}
}

func (c *Cuboid) AABB(pos Isometry) AABB {
	return NewAABBForExtents(pos.Translation, pos.Extents(c.HalfExtents))
}

func (c *Cuboid) BoundingSphere(pos Isometry) BoundingSphere {
	return transformedSphere(c, pos)
}

func (c *Cuboid) SweptAABB(start, end Isometry) AABB {
	return sweptAABB(c, start, end)
}

func (c *Cuboid) MassProperties(density float64) MassProperties {
	return CuboidMassProperties(density, c.HalfExtents)
}

func (c *Cuboid) Kind() collide.Kind {
	return collide.Cuboid
}

func (c *Cuboid) Typed() TypedShape {
	return TypedShape{collide.Cuboid, c}
}

func (c *Cuboid) CCDThickness() float64 {
	return c.HalfExtents.MinComponent()
}

func (c *Cuboid) CCDAngularThickness() float64 {
	return math.Pi / 2
}

func (c *Cuboid) IsConvex() bool {
	return true
}

func (c *Cuboid) Clone() Shape {
	cp := *c
	return &cp
}

func (c *Cuboid) Scale(scale Vector, _ int) (Shape, error) {
	return &Cuboid{HalfExtents: c.HalfExtents.MulComponents(scale).Abs()}, nil
}

func (c *Cuboid) AsSupportMap() (SupportMap, bool) {
	return c, true
}

func (c *Cuboid) AsPolygonalFeatureMap() (PolygonalFeatureMap, float64, bool) {
	return c, 0, true
}

func (c *Cuboid) LocalSupportPoint(dir Vector) Vector {
	return Vector{
		math.Copysign(c.HalfExtents.X, dir.X),
		math.Copysign(c.HalfExtents.Y, dir.Y),
	}
}

// LocalSupportFeature returns the edge whose normal is most aligned with dir,
// with its vertices in counter-clockwise order.
func (c *Cuboid) LocalSupportFeature(dir Vector) PolygonalFeature {
	axis := 0
	if math.Abs(dir.Y) > math.Abs(dir.X) {
		axis = 1
	}
	var normal Vector
	face := uint32(axis)
	if dir.At(axis) >= 0 {
		normal = axisVector(axis, 1)
	} else {
		normal = axisVector(axis, -1)
		face += 2
	}

	center := normal.MulComponents(c.HalfExtents)
	tangent := normal.Perp().MulComponents(c.HalfExtents)
	a := center.Sub(tangent)
	b := center.Add(tangent)
	return PolygonalFeature{
		Vertices:    [2]Vector{a, b},
		VIDs:        [2]collide.FeatureID{collide.Vertex(cuboidVertexID(a)), collide.Vertex(cuboidVertexID(b))},
		FID:         collide.Face(face),
		NumVertices: 2,
	}
}

// FeatureNormalAtPoint understands Face(i), the +i axis for i < 2 and the
// -(i-2) axis otherwise, and vertices whose bits mark negative coordinates.
func (c *Cuboid) FeatureNormalAtPoint(feature collide.FeatureID, _ Vector) (Vector, bool) {
	switch feature.Type {
	case collide.FeatureFace:
		if feature.Index < 2 {
			return axisVector(int(feature.Index), 1), true
		}
		if feature.Index < 4 {
			return axisVector(int(feature.Index-2), -1), true
		}
	case collide.FeatureVertex:
		dir := Vec(1, 1)
		if feature.Index&1 != 0 {
			dir.X = -1
		}
		if feature.Index&2 != 0 {
			dir.Y = -1
		}
		return dir.Normalize(), true
	}
	return Vector{}, false
}

func axisVector(axis int, sign float64) Vector {
	if axis == 0 {
		return Vec(sign, 0)
	}
	return Vec(0, sign)
}

func cuboidVertexID(v Vector) uint32 {
	var id uint32
	if v.X < 0 {
		id |= 1
	}
	if v.Y < 0 {
		id |= 2
	}
	return id
}
