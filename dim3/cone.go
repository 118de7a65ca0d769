package dim3

import (
	"math"

	"github.com/jakecoffman/collide"
	"github.com/pkg/errors"
)

// Cone is aligned with the y axis with its apex at +HalfHeight and its base
// disk at -HalfHeight.
type Cone struct {
	shapeBase
	HalfHeight float64
	Radius     float64
}

func NewCone(halfHeight, radius float64) *Cone {
	return &Cone{HalfHeight: halfHeight, Radius: radius}
}

func (c *Cone) Apex() Vector {
	return Vec(0, c.HalfHeight, 0)
}

func (c *Cone) LocalAABB() AABB {
	return NewAABBForExtents(Vector{}, Vec(c.Radius, c.HalfHeight, c.Radius))
}

func (c *Cone) LocalBoundingSphere() BoundingSphere {
	return BoundingSphere{Radius: math.Hypot(c.HalfHeight, c.Radius)}
}

// AABB bounds the apex and the base disk exactly.
func (c *Cone) AABB(pos Isometry) AABB {
	axis := pos.Rotation.Rotate(Vec(0, 1, 0))
	base := NewAABBForExtents(pos.Point(Vec(0, -c.HalfHeight, 0)), diskExtents(axis, c.Radius))
	return base.Expand(pos.Point(c.Apex()))
}

func (c *Cone) BoundingSphere(pos Isometry) BoundingSphere {
	return transformedSphere(c, pos)
}

func (c *Cone) SweptAABB(start, end Isometry) AABB {
	return sweptAABB(c, start, end)
}

func (c *Cone) MassProperties(density float64) MassProperties {
	return ConeMassProperties(density, c.HalfHeight, c.Radius)
}

func (c *Cone) Kind() collide.Kind {
	return collide.Cone
}

func (c *Cone) Typed() TypedShape {
	return TypedShape{collide.Cone, c}
}

func (c *Cone) CCDThickness() float64 {
	return c.Radius
}

// CCDAngularThickness depends on the half angle at the apex: a sharp cone
// turns on its apex, a flat one on its base rim.
func (c *Cone) CCDAngularThickness() float64 {
	apex := math.Atan2(c.Radius, c.HalfHeight)
	return math.Min(math.Pi/2-apex, 2*apex)
}

func (c *Cone) IsConvex() bool {
	return true
}

func (c *Cone) Clone() Shape {
	cp := *c
	return &cp
}

// Scale keeps a cone when the x and z scales have the same magnitude and y is
// not mirrored. Other scales give a ConvexPolyhedron.
func (c *Cone) Scale(scale Vector, subdivisions int) (Shape, error) {
	if math.Abs(math.Abs(scale.X)-math.Abs(scale.Z)) <= epsilon() && scale.Y > 0 {
		return NewCone(c.HalfHeight*scale.Y, c.Radius*math.Abs(scale.X)), nil
	}
	vertices, indices := c.ToTriMesh(subdivisions)
	poly, err := scaledPolyhedron(vertices, indices, scale)
	if err != nil {
		return nil, errors.Wrapf(err, "cone by %v", scale)
	}
	return poly, nil
}

func (c *Cone) AsSupportMap() (SupportMap, bool) {
	return c, true
}

func (c *Cone) AsPolygonalFeatureMap() (PolygonalFeatureMap, float64, bool) {
	return c, 0, true
}

func (c *Cone) LocalSupportPoint(dir Vector) Vector {
	radial, ok := Vec(dir.X, 0, dir.Z).TryNormalize(epsilon())
	if !ok {
		if dir.Y > 0 {
			return c.Apex()
		}
		return Vec(0, -c.HalfHeight, 0)
	}
	rim := radial.Mult(c.Radius).With(1, -c.HalfHeight)
	if dir.Dot(rim) < dir.Y*c.HalfHeight {
		return c.Apex()
	}
	return rim
}

// LocalSupportFeature returns a square inscribed in the base, Face(1), when
// dir points mostly downwards and the side segment from the rim to the apex,
// Face(2), otherwise.
func (c *Cone) LocalSupportFeature(dir Vector) PolygonalFeature {
	radial, ok := Vec(dir.X, 0, dir.Z).TryNormalize(epsilon())
	if !ok {
		radial = Vec(1, 0, 0)
	}
	rim := radial.Mult(c.Radius)
	if dir.Normalize().Y < -0.5 {
		return capFeature(rim, -c.HalfHeight, false, 1)
	}
	return PolygonalFeature{
		Vertices:    [4]Vector{rim.With(1, -c.HalfHeight), c.Apex()},
		VIDs:        [4]collide.FeatureID{collide.Vertex(0), collide.Vertex(8)},
		EIDs:        [4]collide.FeatureID{collide.Edge(8)},
		FID:         collide.Face(2),
		NumVertices: 2,
	}
}

// ToTriMesh samples the base with subdivisions points.
func (c *Cone) ToTriMesh(subdivisions int) ([]Vector, [][3]uint32) {
	n := max(subdivisionsOrDefault(subdivisions), 3)
	vertices := []Vector{Vec(0, -c.HalfHeight, 0)}
	vertices = append(vertices, circle(c.Radius, -c.HalfHeight, n)...)
	vertices = append(vertices, c.Apex())
	return vertices, sphereIndices(n, 1)
}
