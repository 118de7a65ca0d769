package dim3

import "math"

// AABB is an axis-aligned bounding box.
type AABB struct {
	Mins Vector `yaml:"mins"`
	Maxs Vector `yaml:"maxs"`
}

func NewAABB(mins, maxs Vector) AABB {
	return AABB{Mins: mins, Maxs: maxs}
}

// InvalidAABB is the identity of Merged.
func InvalidAABB() AABB {
	return AABB{Mins: Splat(math.MaxFloat64), Maxs: Splat(-math.MaxFloat64)}
}

func NewAABBForExtents(c Vector, half Vector) AABB {
	return AABB{Mins: c.Sub(half), Maxs: c.Add(half)}
}

func NewAABBForSphere(p Vector, r float64) AABB {
	return NewAABBForExtents(p, Splat(r))
}

func AABBFromPoints(points []Vector) AABB {
	bb := InvalidAABB()
	for _, p := range points {
		bb = bb.Expand(p)
	}
	return bb
}

func (bb AABB) IsValid() bool {
	return bb.Mins.X <= bb.Maxs.X && bb.Mins.Y <= bb.Maxs.Y && bb.Mins.Z <= bb.Maxs.Z
}

func (a AABB) Intersects(b AABB) bool {
	return a.Mins.X <= b.Maxs.X && b.Mins.X <= a.Maxs.X &&
		a.Mins.Y <= b.Maxs.Y && b.Mins.Y <= a.Maxs.Y &&
		a.Mins.Z <= b.Maxs.Z && b.Mins.Z <= a.Maxs.Z
}

func (bb AABB) Contains(other AABB) bool {
	return bb.ContainsPoint(other.Mins) && bb.ContainsPoint(other.Maxs)
}

func (bb AABB) ContainsPoint(v Vector) bool {
	return bb.Mins.X <= v.X && bb.Maxs.X >= v.X &&
		bb.Mins.Y <= v.Y && bb.Maxs.Y >= v.Y &&
		bb.Mins.Z <= v.Z && bb.Maxs.Z >= v.Z
}

func (a AABB) Merged(b AABB) AABB {
	return AABB{a.Mins.Min(b.Mins), a.Maxs.Max(b.Maxs)}
}

func (bb AABB) Expand(v Vector) AABB {
	return AABB{bb.Mins.Min(v), bb.Maxs.Max(v)}
}

func (bb AABB) Loosened(amount float64) AABB {
	d := Splat(amount)
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

func (bb AABB) Volume() float64 {
	e := bb.Extents()
	return e.X * e.Y * e.Z
}

// Measure returns the surface area.
func (bb AABB) Measure() float64 {
	e := bb.Extents()
	return 2 * (e.X*e.Y + e.Y*e.Z + e.Z*e.X)
}

func (bb AABB) CenterAt(axis int) float64 {
	return (bb.Mins.At(axis) + bb.Maxs.At(axis)) / 2
}

func (AABB) Dim() int {
	return 3
}

// Transform keeps invalid boxes unchanged.
func (bb AABB) Transform(pos Isometry) AABB {
	if !bb.IsValid() {
		return bb
	}
	return NewAABBForExtents(pos.Point(bb.Center()), pos.Extents(bb.HalfExtents()))
}

func (bb AABB) BoundingSphere() BoundingSphere {
	return BoundingSphere{Center: bb.Center(), Radius: bb.HalfExtents().Length()}
}

// Vertices returns the corners. Bit i of the index selects the max
// coordinate along axis i.
func (bb AABB) Vertices() [8]Vector {
	var out [8]Vector
	for i := range out {
		v := bb.Mins
		for axis := 0; axis < 3; axis++ {
			if i&(1<<axis) != 0 {
				v = v.With(axis, bb.Maxs.At(axis))
			}
		}
		out[i] = v
	}
	return out
}

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
	return BoundingSphere{Center: s.Center.Add(d.Mult((r - s.Radius) / dist)), Radius: r}
}

func (s BoundingSphere) AABB() AABB {
	return NewAABBForSphere(s.Center, s.Radius)
}
