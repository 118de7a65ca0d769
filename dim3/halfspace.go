package dim3

import (
	"math"

	"github.com/jakecoffman/collide"
	"github.com/pkg/errors"
)

// HalfSpace is the set of points p with p·Normal <= 0.
type HalfSpace struct {
	shapeBase
	Normal Vector
}

// NewHalfSpace normalizes normal.
func NewHalfSpace(normal Vector) (*HalfSpace, error) {
	n, ok := normal.TryNormalize(epsilon())
	if !ok {
		return nil, errors.Wrap(collide.ErrDegenerateShape, "half-space normal is zero")
	}
	return &HalfSpace{Normal: n}, nil
}

// Infinite extents are saturated to this value so that transforms stay finite.
const saturated = math.MaxFloat32

func (h *HalfSpace) LocalAABB() AABB {
	return AABB{Mins: Splat(-saturated), Maxs: Splat(saturated)}
}

func (h *HalfSpace) LocalBoundingSphere() BoundingSphere {
	return BoundingSphere{Radius: saturated}
}

func (h *HalfSpace) AABB(pos Isometry) AABB {
	return transformedAABB(h, pos)
}

func (h *HalfSpace) BoundingSphere(pos Isometry) BoundingSphere {
	return transformedSphere(h, pos)
}

func (h *HalfSpace) SweptAABB(start, end Isometry) AABB {
	return sweptAABB(h, start, end)
}

func (h *HalfSpace) MassProperties(float64) MassProperties {
	return MassProperties{}
}

func (h *HalfSpace) Kind() collide.Kind {
	return collide.HalfSpace
}

func (h *HalfSpace) Typed() TypedShape {
	return TypedShape{collide.HalfSpace, h}
}

func (h *HalfSpace) CCDThickness() float64 {
	return saturated
}

func (h *HalfSpace) CCDAngularThickness() float64 {
	return math.Pi
}

func (h *HalfSpace) IsConvex() bool {
	return true
}

func (h *HalfSpace) Clone() Shape {
	c := *h
	return &c
}

// Scale fails when a scale component is zero since the plane would collapse.
func (h *HalfSpace) Scale(scale Vector, _ int) (Shape, error) {
	if scale.hasZero() {
		return nil, errors.Wrapf(collide.ErrUnscalableShape, "half-space by %v", scale)
	}
	n, ok := h.Normal.DivComponents(scale).TryNormalize(epsilon())
	if !ok {
		return nil, errors.Wrapf(collide.ErrUnscalableShape, "half-space by %v", scale)
	}
	return &HalfSpace{Normal: n}, nil
}

func (h *HalfSpace) AsSupportMap() (SupportMap, bool) {
	return h, true
}

// LocalSupportPoint saturates the unbounded directions of the half-space.
func (h *HalfSpace) LocalSupportPoint(dir Vector) Vector {
	along := dir.Dot(h.Normal)
	tangent, ok := dir.Sub(h.Normal.Mult(along)).TryNormalize(epsilon())
	var p Vector
	if ok {
		p = tangent.Mult(saturated)
	}
	if along < 0 {
		p = p.Sub(h.Normal.Mult(saturated))
	}
	return p
}
