package dim2

import (
	"math"

	"github.com/jakecoffman/collide"
	"github.com/pkg/errors"
)

// Ball is a disk centered at the origin.
type Ball struct {
	shapeBase
	Radius float64
}

func NewBall(radius float64) *Ball {
	return &Ball{Radius: radius}
}

func (b *Ball) LocalAABB() AABB {
	return NewAABBForCircle(Vector{}, b.Radius)
}

func (b *Ball) LocalBoundingSphere() BoundingSphere {
	return BoundingSphere{Radius: b.Radius}
}

func (b *Ball) AABB(pos Isometry) AABB {
	return NewAABBForCircle(pos.Translation, b.Radius)
}

func (b *Ball) BoundingSphere(pos Isometry) BoundingSphere {
	return BoundingSphere{Center: pos.Translation, Radius: b.Radius}
}

func (b *Ball) SweptAABB(start, end Isometry) AABB {
	return sweptAABB(b, start, end)
}

func (b *Ball) MassProperties(density float64) MassProperties {
	return BallMassProperties(density, b.Radius)
}

func (b *Ball) Kind() collide.Kind {
	return collide.Ball
}

func (b *Ball) Typed() TypedShape {
	return TypedShape{collide.Ball, b}
}

func (b *Ball) CCDThickness() float64 {
	return b.Radius
}

func (b *Ball) CCDAngularThickness() float64 {
	return math.Pi
}

func (b *Ball) IsConvex() bool {
	return true
}

func (b *Ball) Clone() Shape {
	c := *b
	return &c
}

// Scale keeps a ball when the scale is uniform and returns a ConvexPolygon
// approximating the ellipse otherwise.
func (b *Ball) Scale(scale Vector, subdivisions int) (Shape, error) {
	if scale.IsUniform(epsilon()) {
		return NewBall(b.Radius * math.Abs(scale.X)), nil
	}

	points := b.ToPolyline(subdivisions)
	for i := range points {
		points[i] = points[i].MulComponents(scale)
	}
	poly, err := FromConvexPolyline(points)
	if err != nil {
		return nil, errors.Wrapf(collide.ErrUnscalableShape, "ball by %v", scale)
	}
	return poly, nil
}

func (b *Ball) AsSupportMap() (SupportMap, bool) {
	return b, true
}

func (b *Ball) LocalSupportPoint(dir Vector) Vector {
	return dir.Normalize().Mult(b.Radius)
}

// FeatureNormalAtPoint returns the direction of point. It fails at the center.
func (b *Ball) FeatureNormalAtPoint(_ collide.FeatureID, point Vector) (Vector, bool) {
	return point.TryNormalize(epsilon())
}

// ToPolyline samples the circle counter-clockwise.
func (b *Ball) ToPolyline(subdivisions int) []Vector {
	n := subdivisionsOrDefault(subdivisions)
	points := make([]Vector, n)
	step := 2 * math.Pi / float64(n)
	for i := range points {
		angle := step * float64(i)
		points[i] = Vec(math.Cos(angle), math.Sin(angle)).Mult(b.Radius)
	}
	return points
}
