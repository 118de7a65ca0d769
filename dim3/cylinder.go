package dim3

import (
	"math"

	"github.com/jakecoffman/collide"
	"github.com/pkg/errors"
)

// Cylinder is aligned with the y axis and centered at the origin.
type Cylinder struct {
	shapeBase
	HalfHeight float64
	Radius     float64
}

func NewCylinder(halfHeight, radius float64) *Cylinder {
	return &Cylinder{HalfHeight: halfHeight, Radius: radius}
}

func (c *Cylinder) LocalAABB() AABB {
	return NewAABBForExtents(Vector{}, Vec(c.Radius, c.HalfHeight, c.Radius))
}

func (c *Cylinder) LocalBoundingSphere() BoundingSphere {
	return BoundingSphere{Radius: math.Hypot(c.HalfHeight, c.Radius)}
}

// AABB bounds the two cap disks exactly.
func (c *Cylinder) AABB(pos Isometry) AABB {
	axis := pos.Rotation.Rotate(Vec(0, 1, 0))
	half := axis.Abs().Mult(c.HalfHeight).Add(diskExtents(axis, c.Radius))
	return NewAABBForExtents(pos.Translation, half)
}

func (c *Cylinder) BoundingSphere(pos Isometry) BoundingSphere {
	return transformedSphere(c, pos)
}

func (c *Cylinder) SweptAABB(start, end Isometry) AABB {
	return sweptAABB(c, start, end)
}

func (c *Cylinder) MassProperties(density float64) MassProperties {
	return CylinderMassProperties(density, c.HalfHeight, c.Radius)
}

func (c *Cylinder) Kind() collide.Kind {
	return collide.Cylinder
}

func (c *Cylinder) Typed() TypedShape {
	return TypedShape{collide.Cylinder, c}
}

func (c *Cylinder) CCDThickness() float64 {
	return c.Radius
}

func (c *Cylinder) CCDAngularThickness() float64 {
	return math.Pi / 2
}

func (c *Cylinder) IsConvex() bool {
	return true
}

func (c *Cylinder) Clone() Shape {
	cp := *c
	return &cp
}

// Scale keeps a cylinder when the x and z scales have the same magnitude and
// returns a ConvexPolyhedron otherwise.
func (c *Cylinder) Scale(scale Vector, subdivisions int) (Shape, error) {
	if math.Abs(math.Abs(scale.X)-math.Abs(scale.Z)) <= epsilon() {
		return NewCylinder(c.HalfHeight*math.Abs(scale.Y), c.Radius*math.Abs(scale.X)), nil
	}
	vertices, indices := c.ToTriMesh(subdivisions)
	poly, err := scaledPolyhedron(vertices, indices, scale)
	if err != nil {
		return nil, errors.Wrapf(err, "cylinder by %v", scale)
	}
	return poly, nil
}

func (c *Cylinder) AsSupportMap() (SupportMap, bool) {
	return c, true
}

func (c *Cylinder) AsPolygonalFeatureMap() (PolygonalFeatureMap, float64, bool) {
	return c, 0, true
}

func (c *Cylinder) LocalSupportPoint(dir Vector) Vector {
	p := Vec(dir.X, 0, dir.Z)
	if n, ok := p.TryNormalize(epsilon()); ok {
		p = n.Mult(c.Radius)
	}
	p.Y = math.Copysign(c.HalfHeight, dir.Y)
	return p
}

// LocalSupportFeature returns the side segment when dir is closer to the
// side than to a cap, and a square inscribed in the cap otherwise. The caps
// are Face(0) at the top and Face(1) at the bottom; the side is Face(2).
func (c *Cylinder) LocalSupportFeature(dir Vector) PolygonalFeature {
	radial, ok := Vec(dir.X, 0, dir.Z).TryNormalize(epsilon())
	if !ok {
		radial = Vec(1, 0, 0)
	}
	rim := radial.Mult(c.Radius)
	n := dir.Normalize()

	if math.Abs(n.Y) < 0.5 {
		return PolygonalFeature{
			Vertices:    [4]Vector{rim.With(1, -c.HalfHeight), rim.With(1, c.HalfHeight)},
			VIDs:        [4]collide.FeatureID{collide.Vertex(0), collide.Vertex(4)},
			EIDs:        [4]collide.FeatureID{collide.Edge(8)},
			FID:         collide.Face(2),
			NumVertices: 2,
		}
	}
	if n.Y > 0 {
		return capFeature(rim, c.HalfHeight, true, 0)
	}
	return capFeature(rim, -c.HalfHeight, false, 1)
}

// capFeature is the square inscribed in the disk at height y starting at
// rim, counter-clockwise seen from outside the cap.
func capFeature(rim Vector, y float64, top bool, face uint32) PolygonalFeature {
	f := PolygonalFeature{FID: collide.Face(face), NumVertices: 4}
	p := rim
	for i := 0; i < 4; i++ {
		f.Vertices[i] = p.With(1, y)
		f.VIDs[i] = collide.Vertex(face*4 + uint32(i))
		f.EIDs[i] = collide.Edge(face*4 + uint32(i))
		if top {
			p = Vec(p.Z, 0, -p.X)
		} else {
			p = Vec(-p.Z, 0, p.X)
		}
	}
	return f
}

// ToTriMesh samples the cylinder with subdivisions points per cap.
func (c *Cylinder) ToTriMesh(subdivisions int) ([]Vector, [][3]uint32) {
	n := max(subdivisionsOrDefault(subdivisions), 3)
	vertices := []Vector{Vec(0, -c.HalfHeight, 0)}
	vertices = append(vertices, circle(c.Radius, -c.HalfHeight, n)...)
	vertices = append(vertices, circle(c.Radius, c.HalfHeight, n)...)
	vertices = append(vertices, Vec(0, c.HalfHeight, 0))
	return vertices, sphereIndices(n, 2)
}

// circle samples the circle of the given radius in the plane at height y.
func circle(radius, y float64, n int) []Vector {
	points := make([]Vector, n)
	for i := range points {
		theta := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Vec(radius*math.Cos(theta), y, radius*math.Sin(theta))
	}
	return points
}

// diskExtents is the half extent of a disk of the given radius whose normal
// is the unit vector axis.
func diskExtents(axis Vector, radius float64) Vector {
	e := func(a float64) float64 {
		return radius * math.Sqrt(math.Max(0, 1-a*a))
	}
	return Vec(e(axis.X), e(axis.Y), e(axis.Z))
}
