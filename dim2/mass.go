package dim2

import "math"

// MassProperties describes the inertia of a shape with uniform density.
// The zero value is the valid mass of shapes without area.
type MassProperties struct {
	LocalCOM Vector
	Mass     float64
	// PrincipalInertia is the angular inertia about the center of mass.
	PrincipalInertia float64
}

func (m MassProperties) InvMass() float64 {
	if m.Mass == 0 {
		return 0
	}
	return 1 / m.Mass
}

func (m MassProperties) InvPrincipalInertia() float64 {
	if m.PrincipalInertia == 0 {
		return 0
	}
	return 1 / m.PrincipalInertia
}

// Transform moves the center of mass by pos. The 2D inertia is invariant
// under rotation.
func (m MassProperties) Transform(pos Isometry) MassProperties {
	return MassProperties{
		LocalCOM:         pos.Point(m.LocalCOM),
		Mass:             m.Mass,
		PrincipalInertia: m.PrincipalInertia,
	}
}

// Add combines two bodies using the parallel axis theorem.
func (m MassProperties) Add(other MassProperties) MassProperties {
	total := m.Mass + other.Mass
	if total == 0 {
		return MassProperties{PrincipalInertia: m.PrincipalInertia + other.PrincipalInertia}
	}

	com := m.LocalCOM.Mult(m.Mass).Add(other.LocalCOM.Mult(other.Mass)).Mult(1 / total)
	i := m.PrincipalInertia + m.Mass*m.LocalCOM.Sub(com).LengthSq() +
		other.PrincipalInertia + other.Mass*other.LocalCOM.Sub(com).LengthSq()
	return MassProperties{LocalCOM: com, Mass: total, PrincipalInertia: i}
}

func (m MassProperties) ApproxEqual(other MassProperties, eps float64) bool {
	return m.LocalCOM.Near(other.LocalCOM, eps) &&
		math.Abs(m.Mass-other.Mass) <= eps &&
		math.Abs(m.PrincipalInertia-other.PrincipalInertia) <= eps
}

func BallMassProperties(density, radius float64) MassProperties {
	m := density * AreaForCircle(radius)
	return MassProperties{Mass: m, PrincipalInertia: m * radius * radius / 2}
}

func CuboidMassProperties(density float64, half Vector) MassProperties {
	m := density * 4 * half.X * half.Y
	return MassProperties{Mass: m, PrincipalInertia: m * half.LengthSq() / 3}
}

// CapsuleMassProperties integrates a rectangle and two half disks.
func CapsuleMassProperties(density float64, a, b Vector, radius float64) MassProperties {
	h := a.Distance(b) / 2
	rect := density * 4 * h * radius
	disk := density * AreaForCircle(radius)
	// Distance from the flat side of a half disk to its centroid.
	d := 4 * radius / (3 * math.Pi)

	i := rect*(h*h+radius*radius)/3 + disk*(radius*radius/2+h*h+2*h*d)
	return MassProperties{LocalCOM: a.Lerp(b, 0.5), Mass: rect + disk, PrincipalInertia: i}
}

func TriangleMassProperties(density float64, a, b, c Vector) MassProperties {
	area := math.Abs(b.Sub(a).Cross(c.Sub(a))) / 2
	m := density * area
	sides := a.Sub(b).LengthSq() + b.Sub(c).LengthSq() + c.Sub(a).LengthSq()
	return MassProperties{
		LocalCOM:         a.Add(b).Add(c).Mult(1.0 / 3),
		Mass:             m,
		PrincipalInertia: m * sides / 36,
	}
}

// PolygonMassProperties expects counter-clockwise vertices.
func PolygonMassProperties(density float64, verts []Vector) MassProperties {
	centroid := CentroidForPoly(verts)
	m := density * AreaForPoly(verts)
	return MassProperties{
		LocalCOM:         centroid,
		Mass:             m,
		PrincipalInertia: MomentForPoly(m, verts, centroid.Neg()),
	}
}

func AreaForCircle(r float64) float64 {
	return math.Pi * r * r
}

func AreaForPoly(verts []Vector) float64 {
	var area float64
	count := len(verts)
	for i := 0; i < count; i++ {
		area += verts[i].Cross(verts[(i+1)%count])
	}
	return area / 2
}

func CentroidForPoly(verts []Vector) Vector {
	var sum float64
	var vsum Vector
	count := len(verts)
	for i := 0; i < count; i++ {
		v1 := verts[i]
		v2 := verts[(i+1)%count]
		cross := v1.Cross(v2)

		sum += cross
		vsum = vsum.Add(v1.Add(v2).Mult(cross))
	}
	if sum == 0 {
		return AABBFromPoints(verts).Center()
	}
	return vsum.Mult(1 / (3 * sum))
}

// MomentForPoly returns the moment of a polygon of mass m about the origin
// after translating its vertices by offset.
func MomentForPoly(m float64, verts []Vector, offset Vector) float64 {
	var sum1, sum2 float64
	count := len(verts)
	for i := 0; i < count; i++ {
		v1 := verts[i].Add(offset)
		v2 := verts[(i+1)%count].Add(offset)

		a := v1.Cross(v2)
		b := v1.Dot(v1) + v1.Dot(v2) + v2.Dot(v2)

		sum1 += a * b
		sum2 += a
	}
	if sum2 == 0 {
		return 0
	}
	return (m * sum1) / (6 * sum2)
}
