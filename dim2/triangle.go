package dim2

import (
	"math"

	"github.com/jakecoffman/collide"
)

// Triangle is a solid triangle. Its vertices may be in either orientation.
type Triangle struct {
	shapeBase
	A, B, C Vector
}

func NewTriangle(a, b, c Vector) *Triangle {
	return &Triangle{A: a, B: b, C: c}
}

func (t *Triangle) Vertices() [3]Vector {
	return [3]Vector{t.A, t.B, t.C}
}

// SignedArea is positive for counter-clockwise triangles.
func (t *Triangle) SignedArea() float64 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)) / 2
}

func (t *Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

func (t *Triangle) Center() Vector {
	return t.A.Add(t.B).Add(t.C).Mult(1.0 / 3)
}

func (t *Triangle) LocalAABB() AABB {
	return NewAABB(t.A.Min(t.B).Min(t.C), t.A.Max(t.B).Max(t.C))
}

func (t *Triangle) LocalBoundingSphere() BoundingSphere {
	c := t.Center()
	r := math.Max(c.Distance(t.A), math.Max(c.Distance(t.B), c.Distance(t.C)))
	return BoundingSphere{Center: c, Radius: r}
}

func (t *Triangle) AABB(pos Isometry) AABB {
	a, b, c := pos.Point(t.A), pos.Point(t.B), pos.Point(t.C)
	return NewAABB(a.Min(b).Min(c), a.Max(b).Max(c))
}

func (t *Triangle) BoundingSphere(pos Isometry) BoundingSphere {
	return transformedSphere(t, pos)
}

func (t *Triangle) SweptAABB(start, end Isometry) AABB {
	return sweptAABB(t, start, end)
}

func (t *Triangle) MassProperties(density float64) MassProperties {
	return TriangleMassProperties(density, t.A, t.B, t.C)
}

func (t *Triangle) Kind() collide.Kind {
	return collide.Triangle
}

func (t *Triangle) Typed() TypedShape {
	return TypedShape{collide.Triangle, t}
}

// CCDThickness is zero. The smallest height of the triangle would be a
// tighter value.
func (t *Triangle) CCDThickness() float64 {
	return 0
}

func (t *Triangle) CCDAngularThickness() float64 {
	return math.Pi / 2
}

func (t *Triangle) IsConvex() bool {
	return true
}

func (t *Triangle) Clone() Shape {
	c := *t
	return &c
}

func (t *Triangle) Scale(scale Vector, _ int) (Shape, error) {
	return NewTriangle(t.A.MulComponents(scale), t.B.MulComponents(scale), t.C.MulComponents(scale)), nil
}

func (t *Triangle) AsSupportMap() (SupportMap, bool) {
	return t, true
}

func (t *Triangle) AsPolygonalFeatureMap() (PolygonalFeatureMap, float64, bool) {
	return t, 0, true
}

func (t *Triangle) LocalSupportPoint(dir Vector) Vector {
	best := t.A
	d := t.A.Dot(dir)
	if db := t.B.Dot(dir); db > d {
		best, d = t.B, db
	}
	if t.C.Dot(dir) > d {
		best = t.C
	}
	return best
}

// LocalSupportFeature returns the edge whose outward normal is most aligned
// with dir. Edge i goes from vertex i to vertex i+1.
func (t *Triangle) LocalSupportFeature(dir Vector) PolygonalFeature {
	verts := t.Vertices()
	orient := 1.0
	if t.SignedArea() < 0 {
		orient = -1
	}

	best := 0
	bestDot := -math.MaxFloat64
	for i := 0; i < 3; i++ {
		edge := verts[(i+1)%3].Sub(verts[i])
		d := edge.ReversePerp().Mult(orient).Normalize().Dot(dir)
		if d > bestDot {
			best, bestDot = i, d
		}
	}

	next := (best + 1) % 3
	return PolygonalFeature{
		Vertices:    [2]Vector{verts[best], verts[next]},
		VIDs:        [2]collide.FeatureID{collide.Vertex(uint32(best)), collide.Vertex(uint32(next))},
		FID:         collide.Face(uint32(best)),
		NumVertices: 2,
	}
}
