package dim3

import (
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

// Compound is the union of several non-composite shapes. Unlike in 2D there
// is no mesh decomposition.
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
	return lo.Reduce(c.children, func(mp MassProperties, child Child, _ int) MassProperties {
		return mp.Add(child.Shape.MassProperties(density).Transform(child.Position))
	}, MassProperties{})
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

