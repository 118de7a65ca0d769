package dim2

import (
	"math"

	"github.com/jakecoffman/collide"
	"github.com/jakecoffman/collide/partition"
	"github.com/pkg/errors"
)

// TriMesh is a set of triangles sharing a vertex buffer.
type TriMesh struct {
	shapeBase
	vertices []Vector
	indices  [][3]uint32
	bvh      *partition.BVH[AABB]
}

func NewTriMesh(vertices []Vector, indices [][3]uint32) (*TriMesh, error) {
	if len(indices) == 0 {
		return nil, errors.Wrap(collide.ErrDegenerateShape, "triangle mesh without triangles")
	}
	for i, tri := range indices {
		for _, v := range tri {
			if int(v) >= len(vertices) {
				return nil, errors.Wrapf(collide.ErrDegenerateShape, "triangle %d indexes past %d vertices", i, len(vertices))
			}
		}
	}

	m := &TriMesh{
		vertices: append([]Vector(nil), vertices...),
		indices:  append([][3]uint32(nil), indices...),
	}
	aabbs := make([]AABB, len(m.indices))
	for i := range m.indices {
		tri := m.Triangle(uint32(i))
		aabbs[i] = tri.LocalAABB()
	}
	m.bvh = buildBVH(collide.TriMesh, aabbs)
	return m, nil
}

func (m *TriMesh) Vertices() []Vector {
	return m.vertices
}

func (m *TriMesh) Indices() [][3]uint32 {
	return m.indices
}

func (m *TriMesh) NumTriangles() int {
	return len(m.indices)
}

func (m *TriMesh) Triangle(i uint32) Triangle {
	idx := m.indices[i]
	return Triangle{A: m.vertices[idx[0]], B: m.vertices[idx[1]], C: m.vertices[idx[2]]}
}

func (m *TriMesh) LocalAABB() AABB {
	return rootAABB(m.bvh)
}

func (m *TriMesh) LocalBoundingSphere() BoundingSphere {
	return m.LocalAABB().BoundingSphere()
}

func (m *TriMesh) AABB(pos Isometry) AABB {
	return transformedAABB(m, pos)
}

func (m *TriMesh) BoundingSphere(pos Isometry) BoundingSphere {
	return transformedSphere(m, pos)
}

func (m *TriMesh) SweptAABB(start, end Isometry) AABB {
	return sweptAABB(m, start, end)
}

// MassProperties sums the triangles, assuming they do not overlap.
func (m *TriMesh) MassProperties(density float64) MassProperties {
	var mp MassProperties
	for i := range m.indices {
		t := m.Triangle(uint32(i))
		mp = mp.Add(t.MassProperties(density))
	}
	return mp
}

func (m *TriMesh) Kind() collide.Kind {
	return collide.TriMesh
}

func (m *TriMesh) Typed() TypedShape {
	return TypedShape{collide.TriMesh, m}
}

func (m *TriMesh) CCDThickness() float64 {
	return 0
}

// CCDAngularThickness is a fixed conservative value. The smallest dihedral
// angle of the mesh would be tighter.
func (m *TriMesh) CCDAngularThickness() float64 {
	return math.Pi / 4
}

func (m *TriMesh) Clone() Shape {
	c := *m
	c.vertices = append([]Vector(nil), m.vertices...)
	c.indices = append([][3]uint32(nil), m.indices...)
	return &c
}

func (m *TriMesh) Scale(scale Vector, _ int) (Shape, error) {
	vertices := make([]Vector, len(m.vertices))
	for i, v := range m.vertices {
		vertices[i] = v.MulComponents(scale)
	}
	return asShape(NewTriMesh(vertices, m.indices))
}

func (m *TriMesh) AsCompositeShape() (CompositeShape, bool) {
	return m, true
}

func (m *TriMesh) BVH() *partition.BVH[AABB] {
	return m.bvh
}

func (m *TriMesh) MapPartAt(i uint32, f PartVisitor) {
	m.MapTypedPartAt(i, func(pos *Isometry, part *Triangle, nc NormalConstraints) {
		f(pos, part, nc)
	})
}

func (m *TriMesh) MapTypedPartAt(i uint32, f func(pos *Isometry, part *Triangle, nc NormalConstraints)) bool {
	if int(i) >= len(m.indices) {
		return false
	}
	tri := m.Triangle(i)
	f(nil, &tri, nil)
	return true
}
