package dim3

import (
	"math"

	"github.com/jakecoffman/collide"
)

// Triangle is a flat triangle. Face(0) is the side of (B-A)×(C-A) and
// Face(1) the back side.
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

// ScaledNormal is (B-A)×(C-A). Its length is twice the area.
func (t *Triangle) ScaledNormal() Vector {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A))
}

func (t *Triangle) Normal() (Vector, bool) {
	return t.ScaledNormal().TryNormalize(epsilon())
}

func (t *Triangle) Area() float64 {
	return t.ScaledNormal().Length() / 2
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

// MassProperties is zero: a triangle has no volume.
func (t *Triangle) MassProperties(float64) MassProperties {
	return MassProperties{}
}

func (t *Triangle) Kind() collide.Kind {
	return collide.Triangle
}

func (t *Triangle) Typed() TypedShape {
	return TypedShape{collide.Triangle, t}
}

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

// LocalSupportFeature returns the side facing dir with its vertices
// counter-clockwise seen from that side. Edge i goes from vertex i to
// vertex i+1.
func (t *Triangle) LocalSupportFeature(dir Vector) PolygonalFeature {
	if t.ScaledNormal().Dot(dir) >= 0 {
		return PolygonalFeature{
			Vertices:    [4]Vector{t.A, t.B, t.C},
			VIDs:        [4]collide.FeatureID{collide.Vertex(0), collide.Vertex(1), collide.Vertex(2)},
			EIDs:        [4]collide.FeatureID{collide.Edge(0), collide.Edge(1), collide.Edge(2)},
			FID:         collide.Face(0),
			NumVertices: 3,
		}
	}
	return PolygonalFeature{
		Vertices:    [4]Vector{t.A, t.C, t.B},
		VIDs:        [4]collide.FeatureID{collide.Vertex(0), collide.Vertex(2), collide.Vertex(1)},
		EIDs:        [4]collide.FeatureID{collide.Edge(2), collide.Edge(1), collide.Edge(0)},
		FID:         collide.Face(1),
		NumVertices: 3,
	}
}

// FeatureNormalAtPoint understands the two faces. It fails on degenerate
// triangles.
func (t *Triangle) FeatureNormalAtPoint(feature collide.FeatureID, _ Vector) (Vector, bool) {
	if feature.Type != collide.FeatureFace || feature.Index > 1 {
		return Vector{}, false
	}
	n, ok := t.Normal()
	if !ok {
		return Vector{}, false
	}
	if feature.Index == 1 {
		n = n.Neg()
	}
	return n, true
}
