package dim2

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
	aabbs := make([]AABB, len(p.indices))
	for i := range p.indices {
		seg := p.Segment(uint32(i))
		aabbs[i] = seg.LocalAABB()
	}
	p.bvh = buildBVH(collide.Polyline, aabbs)
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

// CCDAngularThickness is a fixed conservative value. The smallest angle
// between adjacent segments would be tighter.
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
	vertices := make([]Vector, len(p.vertices))
	for i, v := range p.vertices {
		vertices[i] = v.MulComponents(scale)
	}
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

// Simplify drops the vertices of each chain of connected segments that lie
// within tolerance of the simplified chain (Douglas-Peucker). End points of
// open chains are kept and closed chains stay closed. The vertex buffer is
// shared with p; dropped vertices stay in it unreferenced.
func (p *Polyline) Simplify(tolerance float64) (*Polyline, error) {
	return p.reindex(func(pts []Vector) []bool {
		keep := make([]bool, len(pts))
		last := len(pts) - 1
		keep[0], keep[last] = true, true
		if pts[0].Near(pts[last], epsilon()) {
			far := farthestFrom(pts, 0)
			keep[far] = true
			douglasPeucker(pts, keep, 0, far, tolerance)
			douglasPeucker(pts, keep, far, last, tolerance)
		} else {
			douglasPeucker(pts, keep, 0, last, tolerance)
		}
		return keep
	})
}

// MergeCollinear drops the vertices of each chain where the direction turns
// by less than angle radians. The first and last vertex of a chain are kept.
func (p *Polyline) MergeCollinear(angle float64) (*Polyline, error) {
	minCos := math.Cos(angle)
	eps := epsilon()
	return p.reindex(func(pts []Vector) []bool {
		keep := make([]bool, len(pts))
		keep[0], keep[len(pts)-1] = true, true
		prev := 0
		for i := 1; i < len(pts)-1; i++ {
			in, ok := pts[i].Sub(pts[prev]).TryNormalize(eps)
			if !ok {
				continue
			}
			out, ok := pts[i+1].Sub(pts[i]).TryNormalize(eps)
			if !ok {
				continue
			}
			if in.Dot(out) < minCos {
				keep[i] = true
				prev = i
			}
		}
		return keep
	})
}

// chains splits the index buffer into runs of segments where each segment
// starts at the end of the previous one. A chain lists vertex indices.
func (p *Polyline) chains() [][]uint32 {
	var out [][]uint32
	for i, idx := range p.indices {
		if i > 0 && p.indices[i-1][1] == idx[0] {
			out[len(out)-1] = append(out[len(out)-1], idx[1])
			continue
		}
		out = append(out, []uint32{idx[0], idx[1]})
	}
	return out
}

// reindex rebuilds the index buffer from the vertices of each chain that
// keep selects.
func (p *Polyline) reindex(keep func(pts []Vector) []bool) (*Polyline, error) {
	var indices [][2]uint32
	for _, chain := range p.chains() {
		pts := lo.Map(chain, func(v uint32, _ int) Vector { return p.vertices[v] })
		flags := keep(pts)
		kept := lo.Filter(chain, func(_ uint32, i int) bool { return flags[i] })
		for i := 1; i < len(kept); i++ {
			indices = append(indices, [2]uint32{kept[i-1], kept[i]})
		}
	}
	return NewPolyline(p.vertices, indices)
}

func farthestFrom(pts []Vector, from int) int {
	far, best := from, 0.0
	for i, v := range pts {
		if d := v.Distance(pts[from]); d > best {
			far, best = i, d
		}
	}
	return far
}

// douglasPeucker marks in keep the vertices strictly between first and last
// that are needed to stay within tolerance of pts.
func douglasPeucker(pts []Vector, keep []bool, first, last int, tolerance float64) {
	if last-first < 2 {
		return
	}
	a, b := pts[first], pts[last]
	split, worst := -1, tolerance
	for i := first + 1; i < last; i++ {
		if d := pts[i].Distance(pts[i].ClosestPointOnSegment(a, b)); d > worst {
			split, worst = i, d
		}
	}
	if split < 0 {
		return
	}
	keep[split] = true
	douglasPeucker(pts, keep, first, split, tolerance)
	douglasPeucker(pts, keep, split, last, tolerance)
}
