package dim2

import "math"

// Rotation is a unit complex number. The zero Rotation is the identity, so
// the zero Isometry is too.
type Rotation struct {
	Cos, Sin float64
}

func (r Rotation) unit() Rotation {
	if r == (Rotation{}) {
		return IdentityRotation()
	}
	return r
}

func NewRotation(radians float64) Rotation {
	return Rotation{math.Cos(radians), math.Sin(radians)}
}

func IdentityRotation() Rotation {
	return Rotation{1, 0}
}

func (r Rotation) Angle() float64 {
	return math.Atan2(r.Sin, r.Cos)
}

func (r Rotation) Rotate(v Vector) Vector {
	r = r.unit()
	return Vector{r.Cos*v.X - r.Sin*v.Y, r.Sin*v.X + r.Cos*v.Y}
}

func (r Rotation) Unrotate(v Vector) Vector {
	r = r.unit()
	return Vector{r.Cos*v.X + r.Sin*v.Y, -r.Sin*v.X + r.Cos*v.Y}
}

func (r Rotation) Mult(other Rotation) Rotation {
	r, other = r.unit(), other.unit()
	return Rotation{
		r.Cos*other.Cos - r.Sin*other.Sin,
		r.Sin*other.Cos + r.Cos*other.Sin,
	}
}

func (r Rotation) Inverse() Rotation {
	r = r.unit()
	return Rotation{r.Cos, -r.Sin}
}

// Isometry is a rotation followed by a translation.
type Isometry struct {
	Rotation    Rotation
	Translation Vector
}

func Identity() Isometry {
	return Isometry{Rotation: IdentityRotation()}
}

func NewIsometry(translate Vector, radians float64) Isometry {
	return Isometry{Rotation: NewRotation(radians), Translation: translate}
}

func Translation(x, y float64) Isometry {
	return Isometry{Rotation: IdentityRotation(), Translation: Vec(x, y)}
}

func (t Isometry) Point(p Vector) Vector {
	return t.Rotation.Rotate(p).Add(t.Translation)
}

func (t Isometry) Vect(v Vector) Vector {
	return t.Rotation.Rotate(v)
}

func (t Isometry) InversePoint(p Vector) Vector {
	return t.Rotation.Unrotate(p.Sub(t.Translation))
}

func (t Isometry) InverseVect(v Vector) Vector {
	return t.Rotation.Unrotate(v)
}

// Mult composes t with t2, applying t2 first.
func (t Isometry) Mult(t2 Isometry) Isometry {
	return Isometry{
		Rotation:    t.Rotation.Mult(t2.Rotation),
		Translation: t.Point(t2.Translation),
	}
}

func (t Isometry) Inverse() Isometry {
	inv := t.Rotation.Inverse()
	return Isometry{Rotation: inv, Translation: inv.Rotate(t.Translation.Neg())}
}

// Extents returns the half extents of the bounding box of a box with half
// extents h after rotation.
func (t Isometry) Extents(h Vector) Vector {
	r := t.Rotation.unit()
	a := r.Cos * h.X
	b := -r.Sin * h.Y
	d := r.Sin * h.X
	e := r.Cos * h.Y
	return Vector{
		math.Max(math.Abs(a+b), math.Abs(a-b)),
		math.Max(math.Abs(d+e), math.Abs(d-e)),
	}
}
