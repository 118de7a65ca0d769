package dim3

import (
	"math"

	"github.com/jakecoffman/collide"
	"github.com/jakecoffman/collide/partition"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// HeightField is a terrain over a regular grid. Heights are stored row-major,
// rows advancing along z and columns along x. The unit grid spans [-0.5, 0.5]
// on x and z and is multiplied component-wise by the scale.
//
// Each grid cell is split into two triangles along the diagonal from its
// first corner, so part 2k and 2k+1 belong to cell k.
type HeightField struct {
	shapeBase
	rows, cols int
	heights    []float64
	scale      Vector
	bvh        *partition.BVH[AABB]
}

func NewHeightField(rows, cols int, heights []float64, scale Vector) (*HeightField, error) {
	if rows < 2 || cols < 2 {
		return nil, errors.Wrapf(collide.ErrDegenerateShape, "height field needs a 2x2 grid, got %dx%d", rows, cols)
	}
	if len(heights) != rows*cols {
		return nil, errors.Wrapf(collide.ErrDegenerateShape, "%dx%d height field with %d heights", rows, cols, len(heights))
	}
	h := &HeightField{rows: rows, cols: cols, heights: append([]float64(nil), heights...), scale: scale}
	h.bvh = buildBVH(collide.HeightField, lo.Times(h.NumTriangles(), func(i int) AABB {
		t := h.Triangle(uint32(i))
		return t.LocalAABB()
	}))
	return h, nil
}

func (h *HeightField) Rows() int {
	return h.rows
}

func (h *HeightField) Cols() int {
	return h.cols
}

func (h *HeightField) Heights() []float64 {
	return h.heights
}

// Scaling returns the factors applied to the unit height field.
func (h *HeightField) Scaling() Vector {
	return h.scale
}

func (h *HeightField) NumCells() int {
	return (h.rows - 1) * (h.cols - 1)
}

func (h *HeightField) NumTriangles() int {
	return 2 * h.NumCells()
}

func (h *HeightField) point(row, col int) Vector {
	x := float64(col)/float64(h.cols-1) - 0.5
	z := float64(row)/float64(h.rows-1) - 0.5
	return Vec(x, h.heights[row*h.cols+col], z).MulComponents(h.scale)
}

// Triangle returns part i. Its normal points up for a positive scale.
func (h *HeightField) Triangle(i uint32) Triangle {
	cell := int(i / 2)
	row, col := cell/(h.cols-1), cell%(h.cols-1)
	p00, p11 := h.point(row, col), h.point(row+1, col+1)
	if i%2 == 0 {
		return Triangle{A: p00, B: p11, C: h.point(row, col+1)}
	}
	return Triangle{A: p00, B: h.point(row+1, col), C: p11}
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
	return asShape(NewHeightField(h.rows, h.cols, h.heights, h.scale.MulComponents(scale)))
}

func (h *HeightField) AsCompositeShape() (CompositeShape, bool) {
	return h, true
}

func (h *HeightField) BVH() *partition.BVH[AABB] {
	return h.bvh
}

func (h *HeightField) MapPartAt(i uint32, f PartVisitor) {
	h.MapTypedPartAt(i, func(pos *Isometry, part *Triangle, nc NormalConstraints) {
		f(pos, part, nc)
	})
}

func (h *HeightField) MapTypedPartAt(i uint32, f func(pos *Isometry, part *Triangle, nc NormalConstraints)) bool {
	if int(i) >= h.NumTriangles() {
		return false
	}
	tri := h.Triangle(i)
	f(nil, &tri, nil)
	return true
}
