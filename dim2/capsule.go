package dim2

import (
	"math"

	"github.com/jakecoffman/collide"
	"github.com/pkg/errors"
)

// Capsule is a segment inflated by a radius.
type Capsule struct {
	shapeBase
	Segment Segment
	Radius  float64
}

func NewCapsule(a, b Vector, radius float64) *Capsule {
	return &Capsule{Segment: Segment{A: a, B: b}, Radius: radius}
}

// NewCapsuleY returns a capsule aligned with the y axis and centered at the
// origin.
func NewCapsuleY(halfHeight, radius float64) *Capsule {
	return NewCapsule(Vec(0, -halfHeight), Vec(0, halfHeight), radius)
}

func (c *Capsule) HalfHeight() float64 {
	return c.Segment.Length() / 2
}

func (c *Capsule) Center() Vector {
	return c.Segment.A.Lerp(c.Segment.B, 0.5)
}

func (c *Capsule) LocalAABB() AABB {
	return c.Segment.LocalAABB().Loosened(c.Radius)
}

func (c *Capsule) LocalBoundingSphere() BoundingSphere {
	return c.Segment.LocalBoundingSphere().Loosened(c.Radius)
}

func (c *Capsule) AABB(pos Isometry) AABB {
	return c.Segment.AABB(pos).Loosened(c.Radius)
}

func (c *Capsule) BoundingSphere(pos Isometry) BoundingSphere {
	return transformedSphere(c, pos)
}

func (c *Capsule) SweptAABB(start, end Isometry) AABB {
	return sweptAABB(c, start, end)
}

func (c *Capsule) MassProperties(density float64) MassProperties {
	return CapsuleMassProperties(density, c.Segment.A, c.Segment.B, c.Radius)
}

func (c *Capsule) Kind() collide.Kind {
	return collide.Capsule
}

func (c *Capsule) Typed() TypedShape {
	return TypedShape{collide.Capsule, c}
}

func (c *Capsule) CCDThickness() float64 {
	return c.Radius
}

func (c *Capsule) CCDAngularThickness() float64 {
	return math.Pi / 2
}

func (c *Capsule) IsConvex() bool {
	return true
}

func (c *Capsule) Clone() Shape {
	cp := *c
	return &cp
}

// Scale keeps a capsule under uniform scaling. Any other scale turns the
// capsule into a ConvexPolygon.
func (c *Capsule) Scale(scale Vector, subdivisions int) (Shape, error) {
	if scale.IsUniform(epsilon()) {
		return NewCapsule(
			c.Segment.A.MulComponents(scale),
			c.Segment.B.MulComponents(scale),
			c.Radius*math.Abs(scale.X),
		), nil
	}

	points := c.ToPolyline(subdivisions)
	for i := range points {
		points[i] = points[i].MulComponents(scale)
	}
	poly, err := FromConvexPolyline(points)
	if err != nil {
		return nil, errors.Wrapf(collide.ErrUnscalableShape, "capsule by %v", scale)
	}
	return poly, nil
}

func (c *Capsule) AsSupportMap() (SupportMap, bool) {
	return c, true
}

// AsPolygonalFeatureMap exposes the inner segment with the capsule radius as
// border.
func (c *Capsule) AsPolygonalFeatureMap() (PolygonalFeatureMap, float64, bool) {
	return &c.Segment, c.Radius, true
}

func (c *Capsule) LocalSupportPoint(dir Vector) Vector {
	return c.Segment.LocalSupportPoint(dir).Add(dir.Normalize().Mult(c.Radius))
}

// ToPolyline samples the outline counter-clockwise with subdivisions points
// per half circle.
func (c *Capsule) ToPolyline(subdivisions int) []Vector {
	n := subdivisionsOrDefault(subdivisions)
	a, b := c.Segment.A, c.Segment.B
	dir, ok := b.Sub(a).TryNormalize(epsilon())
	if !ok {
		dir = Vec(1, 0)
	}
	base := math.Atan2(dir.Y, dir.X)

	points := make([]Vector, 0, 2*n)
	arc := func(center Vector, start float64) {
		step := math.Pi / float64(n-1)
		if n == 1 {
			step = 0
		}
		for i := 0; i < n; i++ {
			angle := start + step*float64(i)
			points = append(points, center.Add(Vec(math.Cos(angle), math.Sin(angle)).Mult(c.Radius)))
		}
	}
	arc(b, base-math.Pi/2)
	arc(a, base+math.Pi/2)
	return points
}
