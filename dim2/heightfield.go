package dim2

import (
	"math"

	"github.com/jakecoffman/collide"
	"github.com/jakecoffman/collide/partition"
	"github.com/pkg/errors"
)

// HeightField is a terrain profile. Heights are sampled at regular intervals
// along x, spanning [-Scale.X/2, Scale.X/2], and multiplied by Scale.Y.
type HeightField struct {
	shapeBase
	heights []float64
	scale   Vector
	bvh     *partition.BVH[AABB]
}

func NewHeightField(heights []float64, scale Vector) (*HeightField, error) {
	if len(heights) < 2 {
		return nil, errors.Wrapf(collide.ErrDegenerateShape, "height field needs 2 heights, got %d", len(heights))
	}
	h := &HeightField{heights: append([]float64(nil), heights...), scale: scale}
	aabbs := make([]AABB, h.NumCells())
	for i := range aabbs {
		cell := h.Cell(uint32(i))
		aabbs[i] = cell.LocalAABB()
	}
	h.bvh = buildBVH(collide.HeightField, aabbs)
	return h, nil
}

func (h *HeightField) Heights() []float64 {
	return h.heights
}

// Scaling returns the factors applied to the unit height field.
func (h *HeightField) Scaling() Vector {
	return h.scale
}

func (h *HeightField) NumCells() int {
	return len(h.heights) - 1
}

func (h *HeightField) point(i int) Vector {
	x := float64(i)/float64(len(h.heights)-1) - 0.5
	return Vec(x, h.heights[i]).MulComponents(h.scale)
}

// Cell returns the segment between samples i and i+1.
func (h *HeightField) Cell(i uint32) Segment {
	return Segment{A: h.point(int(i)), B: h.point(int(i) + 1)}
}

func (h *HeightField) LocalAABB() AABB {
	return rootAABB(h.bvh)
}

func (h *HeightField) LocalBoundingSphere() BoundingSphere {
	return h.LocalAABB().BoundingSphere()
}

func (h *HeightField) AABB(pos Isometry) AABB {
	return transformedAABB(h, pos)
}

func (h *HeightField) BoundingSphere(pos Isometry) BoundingSphere {
	return transformedSphere(h, pos)
}

func (h *HeightField) SweptAABB(start, end Isometry) AABB {
	return sweptAABB(h, start, end)
}

func (h *HeightField) MassProperties(float64) MassProperties {
	return MassProperties{}
}

func (h *HeightField) Kind() collide.Kind {
	return collide.HeightField
}

func (h *HeightField) Typed() TypedShape {
	return TypedShape{collide.HeightField, h}
}

func (h *HeightField) CCDThickness() float64 {
	return 0
}

// CCDAngularThickness is a fixed conservative value.
func (h *HeightField) CCDAngularThickness() float64 {
	return math.Pi / 4
}

func (h *HeightField) Clone() Shape {
	c := *h
	c.heights = append([]float64(nil), h.heights...)
	return &c
}

// Scale multiplies the height field scale. The heights are kept.
func (h *HeightField) Scale(scale Vector, _ int) (Shape, error) {
	return asShape(NewHeightField(h.heights, h.scale.MulComponents(scale)))
}

func (h *HeightField) AsCompositeShape() (CompositeShape, bool) {
	return h, true
}

func (h *HeightField) BVH() *partition.BVH[AABB] {
	return h.bvh
}

func (h *HeightField) MapPartAt(i uint32, f PartVisitor) {
	h.MapTypedPartAt(i, func(pos *Isometry, part *Segment, nc NormalConstraints) {
		f(pos, part, nc)
	})
}

func (h *HeightField) MapTypedPartAt(i uint32, f func(pos *Isometry, part *Segment, nc NormalConstraints)) bool {
	if int(i) >= h.NumCells() {
		return false
	}
	seg := h.Cell(i)
	f(nil, &seg, nil)
	return true
}
