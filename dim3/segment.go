package dim3

import (
	"math"

	"github.com/jakecoffman/collide"
)

// Segment is the line segment between A and B.
type Segment struct {
	shapeBase
	A, B Vector
}

func NewSegment(a, b Vector) *Segment {
	return &Segment{A: a, B: b}
}

func (s *Segment) Direction() Vector {
	return s.B.Sub(s.A)
}

func (s *Segment) Length() float64 {
	return s.A.Distance(s.B)
}

func (s *Segment) LocalAABB() AABB {
	return NewAABB(s.A.Min(s.B), s.A.Max(s.B))
}

func (s *Segment) LocalBoundingSphere() BoundingSphere {
	return BoundingSphere{Center: s.A.Lerp(s.B, 0.5), Radius: s.Length() / 2}
}

func (s *Segment) AABB(pos Isometry) AABB {
	a, b := pos.Point(s.A), pos.Point(s.B)
	return NewAABB(a.Min(b), a.Max(b))
}

func (s *Segment) BoundingSphere(pos Isometry) BoundingSphere {
	return transformedSphere(s, pos)
}

func (s *Segment) SweptAABB(start, end Isometry) AABB {
	return sweptAABB(s, start, end)
}

func (s *Segment) MassProperties(float64) MassProperties {
	return MassProperties{}
}

func (s *Segment) Kind() collide.Kind {
	return collide.Segment
}

func (s *Segment) Typed() TypedShape {
	return TypedShape{collide.Segment, s}
}

func (s *Segment) CCDThickness() float64 {
	return 0
}

func (s *Segment) CCDAngularThickness() float64 {
	return math.Pi / 2
}

func (s *Segment) IsConvex() bool {
	return true
}

func (s *Segment) Clone() Shape {
	c := *s
	return &c
}

func (s *Segment) Scale(scale Vector, _ int) (Shape, error) {
	return NewSegment(s.A.MulComponents(scale), s.B.MulComponents(scale)), nil
}

func (s *Segment) AsSupportMap() (SupportMap, bool) {
	return s, true
}

func (s *Segment) AsPolygonalFeatureMap() (PolygonalFeatureMap, float64, bool) {
	return s, 0, true
}

func (s *Segment) LocalSupportPoint(dir Vector) Vector {
	if s.A.Dot(dir) > s.B.Dot(dir) {
		return s.A
	}
	return s.B
}

// LocalSupportFeature is always the whole segment, Edge(0).
func (s *Segment) LocalSupportFeature(Vector) PolygonalFeature {
	return PolygonalFeature{
		Vertices:    [4]Vector{s.A, s.B},
		VIDs:        [4]collide.FeatureID{collide.Vertex(0), collide.Vertex(1)},
		EIDs:        [4]collide.FeatureID{collide.Edge(0)},
		FID:         collide.Edge(0),
		NumVertices: 2,
	}
}

// FeatureNormalAtPoint only knows the end points: a segment has no normal in
// 3D.
func (s *Segment) FeatureNormalAtPoint(feature collide.FeatureID, _ Vector) (Vector, bool) {
	if feature.Type != collide.FeatureVertex {
		return Vector{}, false
	}
	switch feature.Index {
	case 0:
		return s.Direction().Neg().TryNormalize(epsilon())
	case 1:
		return s.Direction().TryNormalize(epsilon())
	}
	return Vector{}, false
}
