package dim2

import "math"

// AABB is an axis-aligned bounding box.
type AABB struct {
	Mins Vector `yaml:"mins"`
	Maxs Vector `yaml:"maxs"`
}

func NewAABB(mins, maxs Vector) AABB {
	return AABB{Mins: mins, Maxs: maxs}
}

// InvalidAABB is the identity of Merged: it contains nothing and merging it
// with any box yields that box.
func InvalidAABB() AABB {
	return AABB{
		Mins: Vector{math.MaxFloat64, math.MaxFloat64},
		Maxs: Vector{-math.MaxFloat64, -math.MaxFloat64},
	}
}

func NewAABBForExtents(c Vector, half Vector) AABB {
	return AABB{Mins: c.Sub(half), Maxs: c.Add(half)}
}

func NewAABBForCircle(p Vector, r float64) AABB {
	return NewAABBForExtents(p, Vector{r, r})
}

// AABBFromPoints returns the smallest box containing every point.
func AABBFromPoints(points []Vector) AABB {
	bb := InvalidAABB()
	for _, p := range points {
		bb = bb.Expand(p)
	}
	return bb
}

func (bb AABB) IsValid() bool {
	return bb.Mins.X <= bb.Maxs.X && bb.Mins.Y <= bb.Maxs.Y
}

func (a AABB) Intersects(b AABB) bool {
	return a.Mins.X <= b.Maxs.X && b.Mins.X <= a.Maxs.X && a.Mins.Y <= b.Maxs.Y && b.Mins.Y <= a.Maxs.Y
}

func (bb AABB) Contains(other AABB) bool {
	return bb.Mins.X <= other.Mins.X && bb.Maxs.X >= other.Maxs.X && bb.Mins.Y <= other.Mins.Y && bb.Maxs.Y >= other.Maxs.Y
}

func (bb AABB) ContainsPoint(v Vector) bool {
	return bb.Mins.X <= v.X && bb.Maxs.X >= v.X && bb.Mins.Y <= v.Y && bb.Maxs.Y >= v.Y
}

func (a AABB) Merged(b AABB) AABB {
	return AABB{a.Mins.Min(b.Mins), a.Maxs.Max(b.Maxs)}
}

func (bb AABB) Expand(v Vector) AABB {
	return AABB{bb.Mins.Min(v), bb.Maxs.Max(v)}
}

// Loosened grows the box by amount on every side.
func (bb AABB) Loosened(amount float64) AABB {
	d := Vector{amount, amount}
	return AABB{bb.Mins.Sub(d), bb.Maxs.Add(d)}
}

func (bb AABB) Center() Vector {
	return bb.Mins.Lerp(bb.Maxs, 0.5)
}

func (bb AABB) HalfExtents() Vector {
	return bb.Maxs.Sub(bb.Mins).Mult(0.5)
}

func (bb AABB) Extents() Vector {
	return bb.Maxs.Sub(bb.Mins)
}

func (bb AABB) Area() float64 {
	return (bb.Maxs.X - bb.Mins.X) * (bb.Maxs.Y - bb.Mins.Y)
}

// Measure returns the perimeter, the 2D surface-area heuristic weight.
func (bb AABB) Measure() float64 {
	e := bb.Extents()
	return 2 * (e.X + e.Y)
}

func (bb AABB) CenterAt(axis int) float64 {
	return (bb.Mins.At(axis) + bb.Maxs.At(axis)) / 2
}

func (AABB) Dim() int {
	return 2
}

// Transform returns the box bounding bb after applying pos. Invalid boxes
// are returned unchanged.
func (bb AABB) Transform(pos Isometry) AABB {
	if !bb.IsValid() {
		return bb
	}
	return NewAABBForExtents(pos.Point(bb.Center()), pos.Extents(bb.HalfExtents()))
}

// BoundingSphere returns the sphere circumscribing the box.
func (bb AABB) BoundingSphere() BoundingSphere {
	return BoundingSphere{Center: bb.Center(), Radius: bb.HalfExtents().Length()}
}

// Vertices returns the corners in counter-clockwise order.
func (bb AABB) Vertices() [4]Vector {
	return [4]Vector{
		{bb.Mins.X, bb.Mins.Y},
		{bb.Maxs.X, bb.Mins.Y},
		{bb.Maxs.X, bb.Maxs.Y},
		{bb.Mins.X, bb.Maxs.Y},
	}
}

// ApproxEqual compares both corners within eps.
func (a AABB) ApproxEqual(b AABB, eps float64) bool {
	return a.Mins.Near(b.Mins, eps) && a.Maxs.Near(b.Maxs, eps)
}

// BoundingSphere is a ball enclosing a shape.
type BoundingSphere struct {
	Center Vector  `yaml:"center"`
	Radius float64 `yaml:"radius"`
}

func (s BoundingSphere) Transform(pos Isometry) BoundingSphere {
	return BoundingSphere{Center: pos.Point(s.Center), Radius: s.Radius}
}

func (s BoundingSphere) Loosened(amount float64) BoundingSphere {
	return BoundingSphere{Center: s.Center, Radius: s.Radius + amount}
}

func (s BoundingSphere) Merged(other BoundingSphere) BoundingSphere {
	d := other.Center.Sub(s.Center)
	dist := d.Length()
	if dist+other.Radius <= s.Radius {
		return s
	}
	if dist+s.Radius <= other.Radius {
		return other
	}
	r := (dist + s.Radius + other.Radius) / 2
	c := s.Center.Add(d.Mult((r - s.Radius) / dist))
	return BoundingSphere{Center: c, Radius: r}
}

func (s BoundingSphere) AABB() AABB {
	return NewAABBForCircle(s.Center, s.Radius)
}
