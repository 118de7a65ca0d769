package dim3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vector is a 3D vector or point.
type Vector r3.Vec

func Vec(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Splat returns the vector with every component set to f.
func Splat(f float64) Vector {
	return Vector{f, f, f}
}

func (v Vector) String() string {
	return fmt.Sprintf("%f,%f,%f", v.X, v.Y, v.Z)
}

func (v Vector) Add(other Vector) Vector {
	return Vector(r3.Add(r3.Vec(v), r3.Vec(other)))
}

func (v Vector) Sub(other Vector) Vector {
	return Vector(r3.Sub(r3.Vec(v), r3.Vec(other)))
}

func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

func (v Vector) Mult(s float64) Vector {
	return Vector(r3.Scale(s, r3.Vec(v)))
}

func (v Vector) Dot(other Vector) float64 {
	return r3.Dot(r3.Vec(v), r3.Vec(other))
}

func (v Vector) Cross(other Vector) Vector {
	return Vector(r3.Cross(r3.Vec(v), r3.Vec(other)))
}

func (v Vector) LengthSq() float64 {
	return r3.Norm2(r3.Vec(v))
}

func (v Vector) Length() float64 {
	return r3.Norm(r3.Vec(v))
}

func (v Vector) Lerp(other Vector, t float64) Vector {
	return v.Mult(1.0 - t).Add(other.Mult(t))
}

// Normalize returns the zero vector when v is zero.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		return Vector{}
	}
	return v.Mult(1 / l)
}

// TryNormalize fails when the length of v is not above eps.
func (v Vector) TryNormalize(eps float64) (Vector, bool) {
	l := v.Length()
	if l <= eps {
		return Vector{}, false
	}
	return v.Mult(1 / l), true
}

func (v Vector) Distance(other Vector) float64 {
	return v.Sub(other).Length()
}

func (v Vector) Near(other Vector, d float64) bool {
	return v.Sub(other).LengthSq() < d*d
}

func (v Vector) MulComponents(other Vector) Vector {
	return Vector{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

func (v Vector) DivComponents(other Vector) Vector {
	return Vector{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

func (v Vector) Abs() Vector {
	return Vector{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)}
}

func (v Vector) Min(other Vector) Vector {
	return Vector{math.Min(v.X, other.X), math.Min(v.Y, other.Y), math.Min(v.Z, other.Z)}
}

func (v Vector) Max(other Vector) Vector {
	return Vector{math.Max(v.X, other.X), math.Max(v.Y, other.Y), math.Max(v.Z, other.Z)}
}

func (v Vector) MinComponent() float64 {
	return math.Min(v.X, math.Min(v.Y, v.Z))
}

func (v Vector) MaxComponent() float64 {
	return math.Max(v.X, math.Max(v.Y, v.Z))
}

// At returns the component along axis 0, 1 or 2.
func (v Vector) At(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}

// With returns v with the component along axis replaced by f.
func (v Vector) With(axis int, f float64) Vector {
	switch axis {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	default:
		v.Z = f
	}
	return v
}

// IsUniform reports whether all components have the same magnitude.
func (v Vector) IsUniform(eps float64) bool {
	a := v.Abs()
	return math.Abs(a.X-a.Y) <= eps && math.Abs(a.X-a.Z) <= eps
}

func (v Vector) hasZero() bool {
	return v.X == 0 || v.Y == 0 || v.Z == 0
}

// AnyOrthogonal returns a unit vector orthogonal to the unit vector v.
func (v Vector) AnyOrthogonal() Vector {
	if math.Abs(v.X) > math.Abs(v.Y) {
		return Vec(-v.Z, 0, v.X).Normalize()
	}
	return Vec(0, v.Z, -v.Y).Normalize()
}

func Clamp01(f float64) float64 {
	return math.Max(0, math.Min(f, 1))
}

// ClosestPointOnSegment returns the point of [a, b] closest to p.
func (p Vector) ClosestPointOnSegment(a, b Vector) Vector {
	delta := b.Sub(a)
	l2 := delta.LengthSq()
	if l2 == 0 {
		return a
	}
	return a.Add(delta.Mult(Clamp01(delta.Dot(p.Sub(a)) / l2)))
}
