package dim3

import (
	"math"

	"github.com/jakecoffman/collide"
	"github.com/jakecoffman/collide/partition"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Polyline is a set of segments sharing a vertex buffer.
type Polyline struct {
	shapeBase
	vertices []Vector
	indices  [][2]uint32
	bvh      *partition.BVH[AABB]
}

// NewPolyline builds a polyline. When indices is nil the vertices are joined
// in order.
func NewPolyline(vertices []Vector, indices [][2]uint32) (*Polyline, error) {
	if indices == nil {
		for i := 1; i < len(vertices); i++ {
			indices = append(indices, [2]uint32{uint32(i - 1), uint32(i)})
		}
	}
	if len(indices) == 0 {
		return nil, errors.Wrap(collide.ErrDegenerateShape, "polyline without segments")
	}
	for i, idx := range indices {
		if int(idx[0]) >= len(vertices) || int(idx[1]) >= len(vertices) {
			return nil, errors.Wrapf(collide.ErrDegenerateShape, "polyline segment %d indexes past %d vertices", i, len(vertices))
		}
	}

	p := &Polyline{
		vertices: append([]Vector(nil), vertices...),
		indices:  append([][2]uint32(nil), indices...),
	}
	p.bvh = buildBVH(collide.Polyline, lo.Times(len(p.indices), func(i int) AABB {
		s := p.Segment(uint32(i))
		return s.LocalAABB()
	}))
	return p, nil
}

func (p *Polyline) Vertices() []Vector {
	return p.vertices
}

func (p *Polyline) Indices() [][2]uint32 {
	return p.indices
}

func (p *Polyline) NumSegments() int {
	return len(p.indices)
}

func (p *Polyline) Segment(i uint32) Segment {
	idx := p.indices[i]
	return Segment{A: p.vertices[idx[0]], B: p.vertices[idx[1]]}
}

func (p *Polyline) LocalAABB() AABB {
	return rootAABB(p.bvh)
}

func (p *Polyline) LocalBoundingSphere() BoundingSphere {
	return p.LocalAABB().BoundingSphere()
}

func (p *Polyline) AABB(pos Isometry) AABB {
	return transformedAABB(p, pos)
}

func (p *Polyline) BoundingSphere(pos Isometry) BoundingSphere {
	return transformedSphere(p, pos)
}

func (p *Polyline) SweptAABB(start, end Isometry) AABB {
	return sweptAABB(p, start, end)
}

func (p *Polyline) MassProperties(float64) MassProperties {
	return MassProperties{}
}

func (p *Polyline) Kind() collide.Kind {
	return collide.Polyline
}

func (p *Polyline) Typed() TypedShape {
	return TypedShape{collide.Polyline, p}
}

func (p *Polyline) CCDThickness() float64 {
	return 0
}

func (p *Polyline) CCDAngularThickness() float64 {
	return math.Pi / 4
}

func (p *Polyline) Clone() Shape {
	c := *p
	c.vertices = append([]Vector(nil), p.vertices...)
	c.indices = append([][2]uint32(nil), p.indices...)
	return &c
}

func (p *Polyline) Scale(scale Vector, _ int) (Shape, error) {
	vertices := lo.Map(p.vertices, func(v Vector, _ int) Vector {
		return v.MulComponents(scale)
	})
	return asShape(NewPolyline(vertices, p.indices))
}

func (p *Polyline) AsCompositeShape() (CompositeShape, bool) {
	return p, true
}

func (p *Polyline) BVH() *partition.BVH[AABB] {
	return p.bvh
}

func (p *Polyline) MapPartAt(i uint32, f PartVisitor) {
	p.MapTypedPartAt(i, func(pos *Isometry, part *Segment, nc NormalConstraints) {
		f(pos, part, nc)
	})
}

func (p *Polyline) MapTypedPartAt(i uint32, f func(pos *Isometry, part *Segment, nc NormalConstraints)) bool {
	if int(i) >= len(p.indices) {
		return false
	}
	seg := p.Segment(i)
	f(nil, &seg, nil)
	return true
}
