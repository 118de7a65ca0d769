package dim3

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Rotation is a unit quaternion. The zero Rotation is the identity, so the
// zero Isometry is too.
type Rotation quat.Number

func IdentityRotation() Rotation {
	return Rotation{Real: 1}
}

// NewRotation returns the rotation about axisAngle by its length in radians.
func NewRotation(axisAngle Vector) Rotation {
	angle := axisAngle.Length()
	if angle == 0 {
		return IdentityRotation()
	}
	axis := axisAngle.Mult(1 / angle)
	s := math.Sin(angle / 2)
	return Rotation{Real: math.Cos(angle / 2), Imag: axis.X * s, Jmag: axis.Y * s, Kmag: axis.Z * s}
}

func (r Rotation) q() quat.Number {
	if r == (Rotation{}) {
		return quat.Number{Real: 1}
	}
	return quat.Number(r)
}

// Angle returns the rotation angle in [0, π].
func (r Rotation) Angle() float64 {
	q := r.q()
	v := math.Sqrt(q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
	return 2 * math.Atan2(v, math.Abs(q.Real))
}

func (r Rotation) Rotate(v Vector) Vector {
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	p = quat.Mul(quat.Mul(r.q(), p), quat.Conj(r.q()))
	return Vector{p.Imag, p.Jmag, p.Kmag}
}

func (r Rotation) Unrotate(v Vector) Vector {
	return r.Inverse().Rotate(v)
}

// Mult returns the rotation applying other first.
func (r Rotation) Mult(other Rotation) Rotation {
	return Rotation(quat.Mul(r.q(), other.q()))
}

func (r Rotation) Inverse() Rotation {
	return Rotation(quat.Conj(r.q()))
}

// Matrix returns the rotation matrix in row-major order.
func (r Rotation) Matrix() [3][3]float64 {
	q := r.q()
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	return [3][3]float64{
		{1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y)},
		{2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x)},
		{2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y)},
	}
}

// RotationFromMatrix converts a proper orthogonal matrix.
func RotationFromMatrix(m [3][3]float64) Rotation {
	var q quat.Number
	trace := m[0][0] + m[1][1] + m[2][2]
	switch {
	case trace > 0:
		s := math.Sqrt(trace+1) * 2
		q = quat.Number{Real: s / 4, Imag: (m[2][1] - m[1][2]) / s, Jmag: (m[0][2] - m[2][0]) / s, Kmag: (m[1][0] - m[0][1]) / s}
	case m[0][0] > m[1][1] && m[0][0] > m[2][2]:
		s := math.Sqrt(1+m[0][0]-m[1][1]-m[2][2]) * 2
		q = quat.Number{Real: (m[2][1] - m[1][2]) / s, Imag: s / 4, Jmag: (m[0][1] + m[1][0]) / s, Kmag: (m[0][2] + m[2][0]) / s}
	case m[1][1] > m[2][2]:
		s := math.Sqrt(1+m[1][1]-m[0][0]-m[2][2]) * 2
		q = quat.Number{Real: (m[0][2] - m[2][0]) / s, Imag: (m[0][1] + m[1][0]) / s, Jmag: s / 4, Kmag: (m[1][2] + m[2][1]) / s}
	default:
		s := math.Sqrt(1+m[2][2]-m[0][0]-m[1][1]) * 2
		q = quat.Number{Real: (m[1][0] - m[0][1]) / s, Imag: (m[0][2] + m[2][0]) / s, Jmag: (m[1][2] + m[2][1]) / s, Kmag: s / 4}
	}
	return Rotation(quat.Scale(1/quat.Abs(q), q))
}

// Isometry is a rotation followed by a translation.
type Isometry struct {
	Rotation    Rotation
	Translation Vector
}

func Identity() Isometry {
	return Isometry{Rotation: IdentityRotation()}
}

// NewIsometry rotates about axisAngle by its length and then translates.
func NewIsometry(translate, axisAngle Vector) Isometry {
	return Isometry{Rotation: NewRotation(axisAngle), Translation: translate}
}

func Translation(x, y, z float64) Isometry {
	return Isometry{Rotation: IdentityRotation(), Translation: Vec(x, y, z)}
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
	m := t.Rotation.Matrix()
	var e [3]float64
	for i := range e {
		e[i] = math.Abs(m[i][0])*h.X + math.Abs(m[i][1])*h.Y + math.Abs(m[i][2])*h.Z
	}
	return Vector{e[0], e[1], e[2]}
}
