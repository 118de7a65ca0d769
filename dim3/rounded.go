package dim3

import (
	"github.com/jakecoffman/collide"
	"github.com/pkg/errors"
)

// Roundable lists the shapes that can be wrapped by Rounded.
type Roundable interface {
	*Cuboid | *Triangle | *Cylinder | *Cone | *ConvexPolyhedron
	Shape
	PolygonalFeatureMap
}

// Rounded is the Minkowski sum of Inner and a ball of radius BorderRadius.
type Rounded[S Roundable] struct {
	shapeBase
	Inner        S
	BorderRadius float64
}

type (
	RoundCuboid           = Rounded[*Cuboid]
	RoundTriangle         = Rounded[*Triangle]
	RoundCylinder         = Rounded[*Cylinder]
	RoundCone             = Rounded[*Cone]
	RoundConvexPolyhedron = Rounded[*ConvexPolyhedron]
)

// NewRounded fails with ErrDegenerateShape when borderRadius is negative.
func NewRounded[S Roundable](inner S, borderRadius float64) (*Rounded[S], error) {
	if !(borderRadius >= 0) {
		return nil, errors.Wrapf(collide.ErrDegenerateShape, "border radius %v", borderRadius)
	}
	return &Rounded[S]{Inner: inner, BorderRadius: borderRadius}, nil
}

func NewRoundCuboid(halfExtents Vector, borderRadius float64) (*RoundCuboid, error) {
	return NewRounded(&Cuboid{HalfExtents: halfExtents}, borderRadius)
}

func NewRoundTriangle(a, b, c Vector, borderRadius float64) (*RoundTriangle, error) {
	return NewRounded(NewTriangle(a, b, c), borderRadius)
}

func NewRoundCylinder(halfHeight, radius, borderRadius float64) (*RoundCylinder, error) {
	return NewRounded(NewCylinder(halfHeight, radius), borderRadius)
}

func NewRoundCone(halfHeight, radius, borderRadius float64) (*RoundCone, error) {
	return NewRounded(NewCone(halfHeight, radius), borderRadius)
}

func (r *Rounded[S]) LocalAABB() AABB {
	return r.Inner.LocalAABB().Loosened(r.BorderRadius)
}

func (r *Rounded[S]) LocalBoundingSphere() BoundingSphere {
	return r.Inner.LocalBoundingSphere().Loosened(r.BorderRadius)
}

func (r *Rounded[S]) AABB(pos Isometry) AABB {
	return r.Inner.AABB(pos).Loosened(r.BorderRadius)
}

func (r *Rounded[S]) BoundingSphere(pos Isometry) BoundingSphere {
	return r.Inner.BoundingSphere(pos).Loosened(r.BorderRadius)
}

func (r *Rounded[S]) SweptAABB(start, end Isometry) AABB {
	return sweptAABB(r, start, end)
}

// MassProperties ignores the border.
func (r *Rounded[S]) MassProperties(density float64) MassProperties {
	return r.Inner.MassProperties(density)
}

func (r *Rounded[S]) Kind() collide.Kind {
	switch any(r.Inner).(type) {
	case *Cuboid:
		return collide.RoundCuboid
	case *Triangle:
		return collide.RoundTriangle
	case *Cylinder:
		return collide.RoundCylinder
	case *Cone:
		return collide.RoundCone
	default:
		return collide.RoundConvexPolyhedron
	}
}

func (r *Rounded[S]) Typed() TypedShape {
	return TypedShape{r.Kind(), r}
}

func (r *Rounded[S]) CCDThickness() float64 {
	return r.Inner.CCDThickness() + r.BorderRadius
}

func (r *Rounded[S]) CCDAngularThickness() float64 {
	return r.Inner.CCDAngularThickness()
}

func (r *Rounded[S]) IsConvex() bool {
	return r.Inner.IsConvex()
}

func (r *Rounded[S]) Clone() Shape {
	return &Rounded[S]{Inner: r.Inner.Clone().(S), BorderRadius: r.BorderRadius}
}

// Scale scales the inner shape and keeps the border radius. A cylinder or a
// cone that degrades to a polyhedron gives a RoundConvexPolyhedron.
func (r *Rounded[S]) Scale(scale Vector, subdivisions int) (Shape, error) {
	inner, err := r.Inner.Scale(scale, subdivisions)
	if err != nil {
		return nil, err
	}
	return round(inner, r.BorderRadius)
}

func round(inner Shape, borderRadius float64) (Shape, error) {
	switch s := inner.(type) {
	case *Cuboid:
		return asShape(NewRounded(s, borderRadius))
	case *Triangle:
		return asShape(NewRounded(s, borderRadius))
	case *Cylinder:
		return asShape(NewRounded(s, borderRadius))
	case *Cone:
		return asShape(NewRounded(s, borderRadius))
	case *ConvexPolyhedron:
		return asShape(NewRounded(s, borderRadius))
	}
	return nil, errors.Wrapf(collide.ErrUnscalableShape, "%v cannot be rounded", inner.Kind())
}

func (r *Rounded[S]) AsSupportMap() (SupportMap, bool) {
	return r, true
}

// AsPolygonalFeatureMap returns the sharp inner shape. The caller inflates
// its features by the returned border radius.
func (r *Rounded[S]) AsPolygonalFeatureMap() (PolygonalFeatureMap, float64, bool) {
	return r.Inner, r.BorderRadius, true
}

func (r *Rounded[S]) LocalSupportPoint(dir Vector) Vector {
	return r.Inner.LocalSupportPoint(dir).Add(dir.Normalize().Mult(r.BorderRadius))
}
