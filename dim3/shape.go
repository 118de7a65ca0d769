// Package dim3 implements the 3D shapes. It mirrors dim2 and adds the
// cylinder and cone primitives and convex polyhedra.
package dim3

import (
	"github.com/jakecoffman/collide"
	"github.com/jakecoffman/collide/partition"
)

// Shape is implemented by every 3D shape. Shapes are immutable once built and
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

	CCDThickness() float64
	// CCDAngularThickness is in [0, π].
	CCDAngularThickness() float64
	IsConvex() bool

	Clone() Shape
	// Scale returns the shape scaled component-wise. The concrete type of
	// the result may differ when the scale is not uniform.
	Scale(scale Vector, subdivisions int) (Shape, error)

	AsSupportMap() (SupportMap, bool)
	AsPolygonalFeatureMap() (PolygonalFeatureMap, float64, bool)
	AsCompositeShape() (CompositeShape, bool)

	FeatureNormalAtPoint(feature collide.FeatureID, point Vector) (Vector, bool)
}

type SupportMap interface {
	LocalSupportPoint(dir Vector) Vector
}

func SupportPoint(sm SupportMap, pos Isometry, dir Vector) Vector {
	return pos.Point(sm.LocalSupportPoint(pos.InverseVect(dir)))
}

// PolygonalFeature is a vertex, an edge or a face with at most four vertices.
// EIDs[i] names the edge from vertex i to vertex i+1.
type PolygonalFeature struct {
	Vertices    [4]Vector
	VIDs        [4]collide.FeatureID
	EIDs        [4]collide.FeatureID
	FID         collide.FeatureID
	NumVertices int
}

type PolygonalFeatureMap interface {
	SupportMap
	LocalSupportFeature(dir Vector) PolygonalFeature
}

type NormalConstraints interface {
	ProjectLocalNormal(normal Vector) (Vector, bool)
}

// PartVisitor receives one part of a composite shape. pos is nil when the
// placement of the part is encoded in its geometry.
type PartVisitor func(pos *Isometry, part Shape, nc NormalConstraints)

type CompositeShape interface {
	BVH() *partition.BVH[AABB]
	// MapPartAt calls f with part i. Out of range indices are ignored.
	MapPartAt(i uint32, f PartVisitor)
}

type TypedCompositeShape[P Shape] interface {
	CompositeShape
	MapTypedPartAt(i uint32, f func(pos *Isometry, part P, nc NormalConstraints)) bool
}

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
// compounds.
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

func asShape[S Shape](s S, err error) (Shape, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

// vertexFeature is the feature made of the single vertex p.
func vertexFeature(p Vector, id collide.FeatureID) PolygonalFeature {
	return PolygonalFeature{
		Vertices:    [4]Vector{p},
		VIDs:        [4]collide.FeatureID{id},
		NumVertices: 1,
	}
}
