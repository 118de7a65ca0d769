package dim3

import (
	"math"

	"github.com/jakecoffman/collide"
	"gonum.org/v1/gonum/mat"
)

// MassProperties describes the inertia of a shape with uniform density. The
// inertia tensor about LocalCOM is diagonal in PrincipalFrame. The zero value
// is the valid mass of shapes without volume.
type MassProperties struct {
	LocalCOM         Vector
	Mass             float64
	PrincipalInertia Vector
	PrincipalFrame   Rotation
}

func (m MassProperties) InvMass() float64 {
	if m.Mass == 0 {
		return 0
	}
	return 1 / m.Mass
}

func (m MassProperties) InvPrincipalInertia() Vector {
	inv := func(f float64) float64 {
		if f == 0 {
			return 0
		}
		return 1 / f
	}
	i := m.PrincipalInertia
	return Vector{inv(i.X), inv(i.Y), inv(i.Z)}
}

// Tensor returns the inertia tensor about the center of mass in the local
// frame.
func (m MassProperties) Tensor() [3][3]float64 {
	r := m.PrincipalFrame.Matrix()
	d := [3]float64{m.PrincipalInertia.X, m.PrincipalInertia.Y, m.PrincipalInertia.Z}
	var t [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				t[i][j] += r[i][k] * d[k] * r[j][k]
			}
		}
	}
	return t
}

// Transform moves the center of mass and rotates the principal frame by pos.
func (m MassProperties) Transform(pos Isometry) MassProperties {
	return MassProperties{
		LocalCOM:         pos.Point(m.LocalCOM),
		Mass:             m.Mass,
		PrincipalInertia: m.PrincipalInertia,
		PrincipalFrame:   pos.Rotation.Mult(m.PrincipalFrame),
	}
}

// Add combines two bodies using the parallel axis theorem. The principal
// frame of the result is recovered by diagonalizing the combined tensor.
func (m MassProperties) Add(other MassProperties) MassProperties {
	total := m.Mass + other.Mass
	a, b := m.Tensor(), other.Tensor()
	if total == 0 {
		return fromTensor(Vector{}, 0, addTensors(a, b))
	}

	com := m.LocalCOM.Mult(m.Mass).Add(other.LocalCOM.Mult(other.Mass)).Mult(1 / total)
	a = addTensors(a, shiftTensor(m.Mass, m.LocalCOM.Sub(com)))
	b = addTensors(b, shiftTensor(other.Mass, other.LocalCOM.Sub(com)))
	return fromTensor(com, total, addTensors(a, b))
}

// ApproxEqual compares the inertia tensors rather than the principal frames,
// which are not unique.
func (m MassProperties) ApproxEqual(other MassProperties, eps float64) bool {
	if !m.LocalCOM.Near(other.LocalCOM, eps) || math.Abs(m.Mass-other.Mass) > eps {
		return false
	}
	a, b := m.Tensor(), other.Tensor()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(a[i][j]-b[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

func addTensors(a, b [3][3]float64) [3][3]float64 {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a[i][j] += b[i][j]
		}
	}
	return a
}

// shiftTensor is the parallel axis term of a point mass at offset d.
func shiftTensor(mass float64, d Vector) [3][3]float64 {
	v := [3]float64{d.X, d.Y, d.Z}
	l2 := d.LengthSq()
	var t [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[i][j] = -mass * v[i] * v[j]
		}
		t[i][i] += mass * l2
	}
	return t
}

func fromTensor(com Vector, mass float64, t [3][3]float64) MassProperties {
	sym := mat.NewSymDense(3, []float64{
		t[0][0], t[0][1], t[0][2],
		t[1][0], t[1][1], t[1][2],
		t[2][0], t[2][1], t[2][2],
	})
	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		collide.Logger().Warn("inertia tensor did not diagonalize", "mass", mass)
		return MassProperties{
			LocalCOM:         com,
			Mass:             mass,
			PrincipalInertia: Vec(t[0][0], t[1][1], t[2][2]),
			PrincipalFrame:   IdentityRotation(),
		}
	}
	values := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	var r [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = vecs.At(i, j)
		}
	}
	if det3(r) < 0 {
		for i := 0; i < 3; i++ {
			r[i][2] = -r[i][2]
		}
	}
	return MassProperties{
		LocalCOM:         com,
		Mass:             mass,
		PrincipalInertia: Vec(values[0], values[1], values[2]),
		PrincipalFrame:   RotationFromMatrix(r),
	}
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

func BallMassProperties(density, radius float64) MassProperties {
	m := density * 4 / 3 * math.Pi * radius * radius * radius
	return MassProperties{
		Mass:             m,
		PrincipalInertia: Splat(m * radius * radius * 2 / 5),
		PrincipalFrame:   IdentityRotation(),
	}
}

func CuboidMassProperties(density float64, half Vector) MassProperties {
	m := density * 8 * half.X * half.Y * half.Z
	x2, y2, z2 := half.X*half.X, half.Y*half.Y, half.Z*half.Z
	return MassProperties{
		Mass:             m,
		PrincipalInertia: Vec(y2+z2, x2+z2, x2+y2).Mult(m / 3),
		PrincipalFrame:   IdentityRotation(),
	}
}

// CylinderMassProperties is for a cylinder along the y axis.
func CylinderMassProperties(density, halfHeight, radius float64) MassProperties {
	m := density * math.Pi * radius * radius * 2 * halfHeight
	side := m * (3*radius*radius + 4*halfHeight*halfHeight) / 12
	return MassProperties{
		Mass:             m,
		PrincipalInertia: Vec(side, m*radius*radius/2, side),
		PrincipalFrame:   IdentityRotation(),
	}
}

// ConeMassProperties is for a cone along the y axis with its apex at
// +halfHeight. The center of mass is a quarter of the height above the base.
func ConeMassProperties(density, halfHeight, radius float64) MassProperties {
	h := 2 * halfHeight
	m := density * math.Pi * radius * radius * h / 3
	side := m * (3*radius*radius/20 + 3*h*h/80)
	return MassProperties{
		LocalCOM:         Vec(0, -halfHeight/2, 0),
		Mass:             m,
		PrincipalInertia: Vec(side, m*radius*radius*3/10, side),
		PrincipalFrame:   IdentityRotation(),
	}
}

// CapsuleMassProperties integrates a cylinder and two half balls.
func CapsuleMassProperties(density float64, a, b Vector, radius float64) MassProperties {
	l := a.Distance(b)
	r2 := radius * radius
	cyl := density * math.Pi * r2 * l
	ball := density * 4 / 3 * math.Pi * r2 * radius

	axial := cyl*r2/2 + ball*r2*2/5
	side := cyl*(3*r2+l*l)/12 + ball*(r2*2/5+l*l/4+3*l*radius/8)
	return MassProperties{
		LocalCOM:         a.Lerp(b, 0.5),
		Mass:             cyl + ball,
		PrincipalInertia: Vec(side, axial, side),
		PrincipalFrame:   rotationBetween(Vec(0, 1, 0), b.Sub(a)),
	}
}

// rotationBetween returns a rotation taking the unit vector from to the
// direction of to. It is the identity when to is zero.
func rotationBetween(from, to Vector) Rotation {
	dir, ok := to.TryNormalize(1e-12)
	if !ok {
		return IdentityRotation()
	}
	c := from.Dot(dir)
	if c < -1+1e-12 {
		return NewRotation(from.AnyOrthogonal().Mult(math.Pi))
	}
	axis := from.Cross(dir)
	r := Rotation{Real: 1 + c, Imag: axis.X, Jmag: axis.Y, Kmag: axis.Z}
	n := math.Sqrt(r.Real*r.Real + r.Imag*r.Imag + r.Jmag*r.Jmag + r.Kmag*r.Kmag)
	return Rotation{Real: r.Real / n, Imag: r.Imag / n, Jmag: r.Jmag / n, Kmag: r.Kmag / n}
}

// TriMeshMassProperties integrates the solid bounded by a closed triangle
// mesh. The orientation of the triangles does not matter as long as it is
// consistent.
func TriMeshMassProperties(density float64, vertices []Vector, indices [][3]uint32) MassProperties {
	var volume float64
	var comSum Vector
	var cov [3][3]float64
	for _, tri := range indices {
		a, b, c := vertices[tri[0]], vertices[tri[1]], vertices[tri[2]]
		det := a.Dot(b.Cross(c))
		volume += det / 6
		comSum = comSum.Add(a.Add(b).Add(c).Mult(det / 24))

		cols := [3][3]float64{{a.X, b.X, c.X}, {a.Y, b.Y, c.Y}, {a.Z, b.Z, c.Z}}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				var s float64
				for k := 0; k < 3; k++ {
					for l := 0; l < 3; l++ {
						w := 1.0
						if k == l {
							w = 2
						}
						s += cols[i][k] * w * cols[j][l]
					}
				}
				cov[i][j] += det * s / 120
			}
		}
	}
	if volume == 0 {
		return MassProperties{}
	}

	com := comSum.Mult(1 / volume)
	mass := density * volume
	sign := 1.0
	if mass < 0 {
		sign = -1
	}
	v := [3]float64{com.X, com.Y, com.Z}
	var inertia [3][3]float64
	var trace float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			cov[i][j] = sign * (density*cov[i][j] - mass*v[i]*v[j])
		}
		trace += cov[i][i]
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			inertia[i][j] = -cov[i][j]
		}
		inertia[i][i] += trace
	}
	return fromTensor(com, sign*mass, inertia)
}
