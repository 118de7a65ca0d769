package dim2

import (
	"math"

	"github.com/jakecoffman/collide"
	"github.com/jakecoffman/collide/partition"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Child is a shape of a compound placed relative to the compound's frame.
type Child struct {
	Position Isometry
	Shape    SharedShape
}

// Compound is the union of several non-composite shapes.
type Compound struct {
	shapeBase
	children []Child
	aabbs    []AABB
	aabb     AABB
	bvh      *partition.BVH[AABB]
}

// NewCompound builds a compound from at least one child. Children must not be
// composite shapes.
func NewCompound(children []Child) (*Compound, error) {
	if len(children) == 0 {
		return nil, collide.ErrEmptyCompound
	}

	aabbs := make([]AABB, len(children))
	root := InvalidAABB()
	for i, child := range children {
		if child.Shape.Shape == nil {
			return nil, errors.Wrapf(collide.ErrDegenerateShape, "compound child %d has no shape", i)
		}
		if _, ok := child.Shape.AsCompositeShape(); ok {
			return nil, errors.Wrapf(collide.ErrNestedComposite, "compound child %d is a %v", i, child.Shape.Kind())
		}
		aabbs[i] = child.Shape.AABB(child.Position)
		root = root.Merged(aabbs[i])
	}

	return &Compound{
		children: append([]Child(nil), children...),
		aabbs:    aabbs,
		aabb:     root,
		bvh:      buildBVH(collide.Compound, aabbs),
	}, nil
}

// Shapes returns the children in the order given to NewCompound. The slice
// must not be modified.
func (c *Compound) Shapes() []Child {
	return c.children
}

// AABBs returns the bound of each child in the compound frame.
func (c *Compound) AABBs() []AABB {
	return c.aabbs
}

func (c *Compound) LocalAABB() AABB {
	return c.aabb
}

func (c *Compound) LocalBoundingSphere() BoundingSphere {
	return c.aabb.BoundingSphere()
}

func (c *Compound) AABB(pos Isometry) AABB {
	return transformedAABB(c, pos)
}

func (c *Compound) BoundingSphere(pos Isometry) BoundingSphere {
	return transformedSphere(c, pos)
}

func (c *Compound) SweptAABB(start, end Isometry) AABB {
	return sweptAABB(c, start, end)
}

func (c *Compound) MassProperties(density float64) MassProperties {
	var mp MassProperties
	for _, child := range c.children {
		mp = mp.Add(child.Shape.MassProperties(density).Transform(child.Position))
	}
	return mp
}

func (c *Compound) Kind() collide.Kind {
	return collide.Compound
}

func (c *Compound) Typed() TypedShape {
	return TypedShape{collide.Compound, c}
}

func (c *Compound) CCDThickness() float64 {
	return lo.Min(lo.Map(c.children, func(child Child, _ int) float64 {
		return child.Shape.CCDThickness()
	}))
}

func (c *Compound) CCDAngularThickness() float64 {
	return lo.Max(lo.Map(c.children, func(child Child, _ int) float64 {
		return child.Shape.CCDAngularThickness()
	}))
}

// Clone copies the child list. The children themselves are shared.
func (c *Compound) Clone() Shape {
	cp := *c
	cp.children = append([]Child(nil), c.children...)
	cp.aabbs = append([]AABB(nil), c.aabbs...)
	return &cp
}

// Scale scales the translation of every child component-wise and scales the
// child shapes. Rotations are kept.
func (c *Compound) Scale(scale Vector, subdivisions int) (Shape, error) {
	children := make([]Child, len(c.children))
	for i, child := range c.children {
		shape, err := child.Shape.Scale(scale, subdivisions)
		if err != nil {
			return nil, errors.Wrapf(err, "compound child %d", i)
		}
		pos := child.Position
		pos.Translation = pos.Translation.MulComponents(scale)
		children[i] = Child{Position: pos, Shape: Share(shape)}
	}
	return asShape(NewCompound(children))
}

func (c *Compound) AsCompositeShape() (CompositeShape, bool) {
	return c, true
}

func (c *Compound) BVH() *partition.BVH[AABB] {
	return c.bvh
}

func (c *Compound) MapPartAt(i uint32, f PartVisitor) {
	c.MapTypedPartAt(i, func(pos *Isometry, part Shape, nc NormalConstraints) {
		f(pos, part, nc)
	})
}

func (c *Compound) MapTypedPartAt(i uint32, f func(pos *Isometry, part Shape, nc NormalConstraints)) bool {
	if int(i) >= len(c.children) {
		return false
	}
	child := c.children[i]
	f(&child.Position, child.Shape, nil)
	return true
}

// DecomposeTriMesh merges the triangles of mesh into convex polygons and
// returns them as a compound. Three sided polygons become triangles.
func DecomposeTriMesh(mesh *TriMesh) (*Compound, error) {
	eps := epsilon()
	polygons := hertelMehlhorn(mesh.Vertices(), mesh.Indices())
	children := make([]Child, 0, len(polygons))
	for i, poly := range polygons {
		points := lo.Map(poly, func(idx uint32, _ int) Vector {
			return mesh.vertices[idx]
		})

		var shape Shape
		if len(points) == 3 {
			tri := NewTriangle(points[0], points[1], points[2])
			if tri.Area() <= eps {
				collide.Logger().Warn("degenerate triangle in decomposition", "polygon", i)
				return nil, errors.Wrapf(collide.ErrDegenerateDecomposition, "polygon %d", i)
			}
			shape = tri
		} else {
			convex, err := FromConvexPolyline(points)
			if err != nil {
				collide.Logger().Warn("degenerate polygon in decomposition", "polygon", i, "vertices", len(points))
				return nil, errors.Wrapf(collide.ErrDegenerateDecomposition, "polygon %d", i)
			}
			shape = convex
		}
		children = append(children, Child{Position: Identity(), Shape: Share(shape)})
	}
	return NewCompound(children)
}

// hertelMehlhorn greedily removes diagonals shared by two triangles while the
// merged polygon stays convex. The polygons are counter-clockwise lists of
// vertex indices ordered by their first triangle.
func hertelMehlhorn(vertices []Vector, triangles [][3]uint32) [][]uint32 {
	polys := make([][]uint32, len(triangles))
	owner := make([]int, len(triangles))
	for i, tri := range triangles {
		poly := []uint32{tri[0], tri[1], tri[2]}
		if AreaForPoly(polygonPoints(vertices, poly)) < 0 {
			poly[1], poly[2] = poly[2], poly[1]
		}
		polys[i] = poly
		owner[i] = i
	}

	find := func(i int) int {
		for owner[i] != i {
			owner[i] = owner[owner[i]]
			i = owner[i]
		}
		return i
	}

	type edgeKey [2]uint32
	key := func(a, b uint32) edgeKey {
		if a > b {
			a, b = b, a
		}
		return edgeKey{a, b}
	}
	edges := map[edgeKey][]int{}
	for i, tri := range triangles {
		for k := 0; k < 3; k++ {
			e := key(tri[k], tri[(k+1)%3])
			edges[e] = append(edges[e], i)
		}
	}

	for i, tri := range triangles {
		for k := 0; k < 3; k++ {
			u, v := tri[k], tri[(k+1)%3]
			shared := edges[key(u, v)]
			if len(shared) != 2 {
				continue
			}
			other := shared[0]
			if other == i {
				other = shared[1]
			}
			if other < i {
				continue
			}

			p1, p2 := find(i), find(other)
			if p1 == p2 {
				continue
			}
			merged, ok := mergePolygons(polys[p1], polys[p2], u, v)
			if !ok || !isConvexPolygon(polygonPoints(vertices, merged)) {
				continue
			}
			if p2 < p1 {
				p1, p2 = p2, p1
			}
			polys[p1] = merged
			polys[p2] = nil
			owner[p2] = p1
		}
	}

	return lo.Filter(polys, func(p []uint32, _ int) bool { return p != nil })
}

// mergePolygons joins two counter-clockwise polygons along the edge u-v. The
// edge runs one way in a and the other way in b.
func mergePolygons(a, b []uint32, u, v uint32) ([]uint32, bool) {
	ia := edgeStart(a, u, v)
	if ia < 0 {
		ia = edgeStart(a, v, u)
		u, v = v, u
	}
	ib := edgeStart(b, v, u)
	if ia < 0 || ib < 0 {
		return nil, false
	}

	merged := make([]uint32, 0, len(a)+len(b)-2)
	// a from v around to u.
	for k := 0; k < len(a); k++ {
		merged = append(merged, a[(ia+1+k)%len(a)])
	}
	// b strictly between u and v.
	for k := 2; k < len(b); k++ {
		merged = append(merged, b[(ib+k)%len(b)])
	}
	return merged, true
}

// edgeStart returns the index i with poly[i] = from and poly[i+1] = to.
func edgeStart(poly []uint32, from, to uint32) int {
	for i := range poly {
		if poly[i] == from && poly[(i+1)%len(poly)] == to {
			return i
		}
	}
	return -1
}

func polygonPoints(vertices []Vector, poly []uint32) []Vector {
	return lo.Map(poly, func(idx uint32, _ int) Vector { return vertices[idx] })
}

func isConvexPolygon(points []Vector) bool {
	n := len(points)
	for i := 0; i < n; i++ {
		a, b, c := points[i], points[(i+1)%n], points[(i+2)%n]
		if b.Sub(a).Cross(c.Sub(b)) < -epsilon() {
			return false
		}
	}
	return math.Abs(AreaForPoly(points)) > 0
}
