package dim3

import (
	"math"

	"github.com/jakecoffman/collide"
)

// Cuboid is an axis-aligned box centered at the origin.
type Cuboid struct {
	shapeBase
	HalfExtents Vector
}

func NewCuboid(hx, hy, hz float64) *Cuboid {
	return &Cuboid{HalfExtents: Vec(hx, hy, hz)}
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
		math.Copysign(c.HalfExtents.Z, dir.Z),
	}
}

// LocalSupportFeature returns the face whose normal is most aligned with
// dir. Its vertices are counter-clockwise seen from outside.
func (c *Cuboid) LocalSupportFeature(dir Vector) PolygonalFeature {
	abs := dir.Abs()
	axis := 0
	if abs.Y > abs.At(axis) {
		axis = 1
	}
	if abs.Z > abs.At(axis) {
		axis = 2
	}
	sign := 1.0
	face := uint32(axis)
	if dir.At(axis) < 0 {
		sign = -1
		face += 3
	}

	u := Vector{}.With((axis+1)%3, 1)
	v := Vector{}.With((axis+2)%3, 1)
	if sign < 0 {
		u, v = v, u
	}
	center := Vector{}.With(axis, sign)
	corners := [4]Vector{
		center.Sub(u).Sub(v),
		center.Add(u).Sub(v),
		center.Add(u).Add(v),
		center.Sub(u).Add(v),
	}

	f := PolygonalFeature{FID: collide.Face(face), NumVertices: 4}
	for i, corner := range corners {
		f.Vertices[i] = corner.MulComponents(c.HalfExtents)
		f.VIDs[i] = collide.Vertex(cuboidVertexID(corner))
	}
	for i := range corners {
		f.EIDs[i] = collide.Edge(cuboidEdgeID(corners[i], corners[(i+1)%4]))
	}
	return f
}

// FeatureNormalAtPoint understands Face(i), the +i axis for i < 3 and the
// -(i-3) axis otherwise, vertices whose bits mark negative coordinates and
// the edges named by LocalSupportFeature.
func (c *Cuboid) FeatureNormalAtPoint(feature collide.FeatureID, _ Vector) (Vector, bool) {
	switch feature.Type {
	case collide.FeatureFace:
		if feature.Index < 3 {
			return Vector{}.With(int(feature.Index), 1), true
		}
		if feature.Index < 6 {
			return Vector{}.With(int(feature.Index-3), -1), true
		}
	case collide.FeatureVertex:
		if feature.Index < 8 {
			return cuboidCorner(feature.Index).Normalize(), true
		}
	case collide.FeatureEdge:
		axis := int(feature.Index >> 3)
		if axis < 3 {
			return cuboidCorner(feature.Index & 7).With(axis, 0).Normalize(), true
		}
	}
	return Vector{}, false
}

// cuboidCorner is the corner of the unit cube with id bits marking negative
// coordinates.
func cuboidCorner(id uint32) Vector {
	v := Splat(1)
	for axis := 0; axis < 3; axis++ {
		if id&(1<<axis) != 0 {
			v = v.With(axis, -1)
		}
	}
	return v
}

func cuboidVertexID(v Vector) uint32 {
	var id uint32
	for axis := 0; axis < 3; axis++ {
		if v.At(axis) < 0 {
			id |= 1 << axis
		}
	}
	return id
}

// cuboidEdgeID packs the axis along which a and b differ with the id of a
// where that axis is cleared.
func cuboidEdgeID(a, b Vector) uint32 {
	axis := 0
	for i := 0; i < 3; i++ {
		if a.At(i) != b.At(i) {
			axis = i
		}
	}
	return uint32(axis)<<3 | cuboidVertexID(a.With(axis, 1))
}

// ToTriMesh returns the eight corners, indexed as AABB.Vertices, and twelve
// outward triangles.
func (c *Cuboid) ToTriMesh() ([]Vector, [][3]uint32) {
	corners := c.LocalAABB().Vertices()
	return corners[:], [][3]uint32{
		{0, 4, 6}, {0, 6, 2}, // -x
		{1, 7, 5}, {1, 3, 7}, // +x
		{0, 1, 5}, {0, 5, 4}, // -y
		{2, 7, 3}, {2, 6, 7}, // +y
		{0, 2, 3}, {0, 3, 1}, // -z
		{4, 7, 6}, {4, 5, 7}, // +z
	}
}
