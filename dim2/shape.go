// Package dim2 implements the 2D shapes: primitives, composite shapes,
// rounded wrappers and compounds, together with the small geometry kernel
// they are expressed in.
package dim2

import (
	"github.com/jakecoffman/collide"
	"github.com/jakecoffman/collide/partition"
)

// Shape is implemented by every 2D shape. Shapes are immutable once built and
// safe to share between goroutines.
type Shape interface {
	// LocalAABB is the tight bound of the shape in its own frame.
	LocalAABB() AABB
	LocalBoundingSphere() BoundingSphere
	// AABB bounds the shape placed at pos. It is never larger than
	// LocalAABB().Transform(pos).
	AABB(pos Isometry) AABB
	BoundingSphere(pos Isometry) BoundingSphere
	// SweptAABB bounds the shape at both start and end.
	SweptAABB(start, end Isometry) AABB
	MassProperties(density float64) MassProperties

	Kind() collide.Kind
	Typed() TypedShape

	// CCDThickness is the largest translation that cannot tunnel through
	// the shape in one step.
	CCDThickness() float64
	// CCDAngularThickness is the smallest rotation, in [0, π], that can
	// change which feature is in contact.
	CCDAngularThickness() float64
	// IsConvex reports false when convexity is unknown.
	IsConvex() bool

	Clone() Shape
	// Scale returns the shape scaled component-wise. The concrete type of
	// the result may differ when the scale is not uniform. Curved shapes
	// are discretized with subdivisions points per curve; values below 1
	// use the configured default.
	Scale(scale Vector, subdivisions int) (Shape, error)

	AsSupportMap() (SupportMap, bool)
	// AsPolygonalFeatureMap also returns the border radius the consumer must
	// inflate the features by.
	AsPolygonalFeatureMap() (PolygonalFeatureMap, float64, bool)
	AsCompositeShape() (CompositeShape, bool)

	// FeatureNormalAtPoint returns the outward unit normal of the named
	// feature.
	FeatureNormalAtPoint(feature collide.FeatureID, point Vector) (Vector, bool)
}

// SupportMap is implemented by convex shapes.
type SupportMap interface {
	// LocalSupportPoint returns the point of the shape furthest along dir.
	LocalSupportPoint(dir Vector) Vector
}

// SupportPoint evaluates sm placed at pos along the world space direction dir.
func SupportPoint(sm SupportMap, pos Isometry, dir Vector) Vector {
	return pos.Point(sm.LocalSupportPoint(pos.InverseVect(dir)))
}

// PolygonalFeature is a vertex or an edge of a polygon. Edges are faces in 2D.
type PolygonalFeature struct {
	Vertices    [2]Vector
	VIDs        [2]collide.FeatureID
	FID         collide.FeatureID
	NumVertices int
}

// PolygonalFeatureMap is implemented by polygonal shapes.
type PolygonalFeatureMap interface {
	SupportMap
	// LocalSupportFeature returns the feature most aligned with dir.
	LocalSupportFeature(dir Vector) PolygonalFeature
}

// NormalConstraints restricts the contact normals admissible on a part of a
// composite shape.
type NormalConstraints interface {
	// ProjectLocalNormal projects normal onto the admissible set. It returns
	// false when no admissible normal exists.
	ProjectLocalNormal(normal Vector) (Vector, bool)
}

// PartVisitor receives one part of a composite shape. pos is nil when the
// placement of the part is encoded in its geometry.
type PartVisitor func(pos *Isometry, part Shape, nc NormalConstraints)

// CompositeShape is implemented by shapes queried through a BVH over parts.
type CompositeShape interface {
	BVH() *partition.BVH[AABB]
	// MapPartAt calls f with part i. Out of range indices are ignored.
	MapPartAt(i uint32, f PartVisitor)
}

// TypedCompositeShape is a composite whose parts all have type P.
type TypedCompositeShape[P Shape] interface {
	CompositeShape
	MapTypedPartAt(i uint32, f func(pos *Isometry, part P, nc NormalConstraints)) bool
}

// shapeBase provides the defaults of the optional Shape methods.
type shapeBase struct{}

func (shapeBase) IsConvex() bool {
	return false
}

func (shapeBase) AsSupportMap() (SupportMap, bool) {
	return nil, false
}

func (shapeBase) AsPolygonalFeatureMap() (PolygonalFeatureMap, float64, bool) {
	return nil, 0, false
}

func (shapeBase) AsCompositeShape() (CompositeShape, bool) {
	return nil, false
}

func (shapeBase) FeatureNormalAtPoint(collide.FeatureID, Vector) (Vector, bool) {
	return Vector{}, false
}

func transformedAABB(s Shape, pos Isometry) AABB {
	return s.LocalAABB().Transform(pos)
}

func transformedSphere(s Shape, pos Isometry) BoundingSphere {
	return s.LocalBoundingSphere().Transform(pos)
}

func sweptAABB(s Shape, start, end Isometry) AABB {
	return s.AABB(start).Merged(s.AABB(end))
}

func subdivisionsOrDefault(n int) int {
	if n < 1 {
		return collide.Current().Subdivisions
	}
	return n
}

func epsilon() float64 {
	return collide.Current().Epsilon
}

// SharedShape is a handle to a shape that may be referenced by several
// compounds. The shape behind it is never mutated.
type SharedShape struct {
	Shape
}

// Share wraps s. Sharing an already shared shape returns the same handle.
func Share(s Shape) SharedShape {
	if shared, ok := s.(SharedShape); ok {
		return shared
	}
	return SharedShape{s}
}

func unwrap(s Shape) Shape {
	for {
		shared, ok := s.(SharedShape)
		if !ok {
			return s
		}
		s = shared.Shape
	}
}

// asShape keeps a nil concrete pointer from becoming a non-nil Shape.
func asShape[S Shape](s S, err error) (Shape, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}
