package dim2

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vector is a 2D vector or point.
type Vector r2.Vec

func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

func (v Vector) String() string {
	return fmt.Sprintf("%f,%f", v.X, v.Y)
}

func (v Vector) Equal(other Vector) bool {
	return v.X == other.X && v.Y == other.Y
}

func (v Vector) Add(other Vector) Vector {
	return Vector(r2.Add(r2.Vec(v), r2.Vec(other)))
}

func (v Vector) Sub(other Vector) Vector {
	return Vector(r2.Sub(r2.Vec(v), r2.Vec(other)))
}

func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y}
}

func (v Vector) Mult(s float64) Vector {
	return Vector(r2.Scale(s, r2.Vec(v)))
}

func (v Vector) Dot(other Vector) float64 {
	return r2.Dot(r2.Vec(v), r2.Vec(other))
}

// Cross returns the z component of the 3D cross product.
func (v Vector) Cross(other Vector) float64 {
	return r2.Cross(r2.Vec(v), r2.Vec(other))
}

func (v Vector) Perp() Vector {
	return Vector{-v.Y, v.X}
}

func (v Vector) ReversePerp() Vector {
	return Vector{v.Y, -v.X}
}

func (v Vector) LengthSq() float64 {
	return r2.Norm2(r2.Vec(v))
}

func (v Vector) Length() float64 {
	return r2.Norm(r2.Vec(v))
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

// MulComponents multiplies component-wise.
func (v Vector) MulComponents(other Vector) Vector {
	return Vector{v.X * other.X, v.Y * other.Y}
}

// DivComponents divides component-wise.
func (v Vector) DivComponents(other Vector) Vector {
	return Vector{v.X / other.X, v.Y / other.Y}
}

func (v Vector) Abs() Vector {
	return Vector{math.Abs(v.X), math.Abs(v.Y)}
}

func (v Vector) Min(other Vector) Vector {
	return Vector{math.Min(v.X, other.X), math.Min(v.Y, other.Y)}
}

func (v Vector) Max(other Vector) Vector {
	return Vector{math.Max(v.X, other.X), math.Max(v.Y, other.Y)}
}

func (v Vector) MinComponent() float64 {
	return math.Min(v.X, v.Y)
}

func (v Vector) MaxComponent() float64 {
	return math.Max(v.X, v.Y)
}

// At returns the component along axis 0 or 1.
func (v Vector) At(axis int) float64 {
	if axis == 0 {
		return v.X
	}
	return v.Y
}

// IsUniform reports whether both components have the same magnitude.
func (v Vector) IsUniform(eps float64) bool {
	return math.Abs(math.Abs(v.X)-math.Abs(v.Y)) <= eps
}

func (v Vector) hasZero() bool {
	return v.X == 0 || v.Y == 0
}

func Clamp(f, min, max float64) float64 {
	return math.Min(math.Max(f, min), max)
}

func Clamp01(f float64) float64 {
	return math.Max(0, math.Min(f, 1))
}

// ClosestPointOnSegment returns the point of [a, b] closest to p.
func (p Vector) ClosestPointOnSegment(a, b Vector) Vector {
	delta := a.Sub(b)
	t := Clamp01(delta.Dot(p.Sub(b)) / delta.LengthSq())
	return b.Add(delta.Mult(t))
}
