package dim3

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
	return NewCapsule(Vec(0, -halfHeight, 0), Vec(0, halfHeight, 0), radius)
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
// capsule into a ConvexPolyhedron.
func (c *Capsule) Scale(scale Vector, subdivisions int) (Shape, error) {
	if scale.IsUniform(epsilon()) {
		return NewCapsule(
			c.Segment.A.MulComponents(scale),
			c.Segment.B.MulComponents(scale),
			c.Radius*math.Abs(scale.X),
		), nil
	}
	vertices, indices := c.ToTriMesh(subdivisions, subdivisions)
	poly, err := scaledPolyhedron(vertices, indices, scale)
	if err != nil {
		return nil, errors.Wrapf(err, "capsule by %v", scale)
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

// ToTriMesh samples the capsule with nTheta meridians and nPhi parallels per
// half ball.
func (c *Capsule) ToTriMesh(nTheta, nPhi int) ([]Vector, [][3]uint32) {
	nTheta = max(subdivisionsOrDefault(nTheta), 3)
	nPhi = max(subdivisionsOrDefault(nPhi), 2)
	h := c.HalfHeight()

	var ys, rings []float64
	for j := 1; j < nPhi; j++ {
		phi := -math.Pi/2 + math.Pi/2*float64(j)/float64(nPhi-1)
		if j == nPhi-1 {
			phi = 0
		}
		ys = append(ys, -h+c.Radius*math.Sin(phi))
		rings = append(rings, c.Radius*math.Cos(phi))
	}
	// The equator is shared when the segment is degenerate.
	last := len(ys) - 1
	if h <= epsilon() {
		last--
	}
	for j := last; j >= 0; j-- {
		ys = append(ys, -ys[j])
		rings = append(rings, rings[j])
	}

	pos := Isometry{Rotation: rotationBetween(Vec(0, 1, 0), c.Segment.Direction()), Translation: c.Center()}
	vertices := []Vector{pos.Point(Vec(0, -h-c.Radius, 0))}
	for j := range ys {
		for i := 0; i < nTheta; i++ {
			theta := 2 * math.Pi * float64(i) / float64(nTheta)
			p := Vec(rings[j]*math.Cos(theta), ys[j], rings[j]*math.Sin(theta))
			vertices = append(vertices, pos.Point(p))
		}
	}
	vertices = append(vertices, pos.Point(Vec(0, h+c.Radius, 0)))
	return vertices, sphereIndices(nTheta, len(ys))
}
