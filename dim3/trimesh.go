package dim3

import (
	"math"

	"github.com/jakecoffman/collide"
	"github.com/jakecoffman/collide/partition"
	"github.com/pkg/errors"
	"github.com/samber/lo"
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
	m.bvh = buildBVH(collide.TriMesh, lo.Times(len(m.indices), func(i int) AABB {
		t := m.Triangle(uint32(i))
		return t.LocalAABB()
	}))
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

// MassProperties integrates the solid enclosed by the mesh. The result is
// meaningless when the mesh is not closed.
func (m *TriMesh) MassProperties(density float64) MassProperties {
	return TriMeshMassProperties(density, m.vertices, m.indices)
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
	vertices := lo.Map(m.vertices, func(v Vector, _ int) Vector {
		return v.MulComponents(scale)
	})
	return asShape(NewTriMesh(vertices, m.indices))
}

func (m *TriMesh) AsCompositeShape() (CompositeShape, bool) {
	return m, true
}

// FeatureNormalAtPoint understands Face(i) for the front side of triangle i
// and Face(i+n) for its back side, n being the number of triangles.
func (m *TriMesh) FeatureNormalAtPoint(feature collide.FeatureID, _ Vector) (Vector, bool) {
	n := uint32(len(m.indices))
	if feature.Type != collide.FeatureFace || feature.Index >= 2*n {
		return Vector{}, false
	}
	tri := m.Triangle(feature.Index % n)
	normal, ok := tri.Normal()
	if !ok {
		return Vector{}, false
	}
	if feature.Index >= n {
		normal = normal.Neg()
	}
	return normal, true
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
