package dim3

import (
	"math"

	"github.com/jakecoffman/collide"
	"github.com/pkg/errors"
)

// Ball is a sphere centered at the origin.
type Ball struct {
	shapeBase
	Radius float64
}

func NewBall(radius float64) *Ball {
	return &Ball{Radius: radius}
}

func (b *Ball) LocalAABB() AABB {
	return NewAABBForSphere(Vector{}, b.Radius)
}

func (b *Ball) LocalBoundingSphere() BoundingSphere {
	return BoundingSphere{Radius: b.Radius}
}

func (b *Ball) AABB(pos Isometry) AABB {
	return NewAABBForSphere(pos.Translation, b.Radius)
}

func (b *Ball) BoundingSphere(pos Isometry) BoundingSphere {
	return BoundingSphere{Center: pos.Translation, Radius: b.Radius}
}

func (b *Ball) SweptAABB(start, end Isometry) AABB {
	return sweptAABB(b, start, end)
}

func (b *Ball) MassProperties(density float64) MassProperties {
	return BallMassProperties(density, b.Radius)
}

func (b *Ball) Kind() collide.Kind {
	return collide.Ball
}

func (b *Ball) Typed() TypedShape {
	return TypedShape{collide.Ball, b}
}

func (b *Ball) CCDThickness() float64 {
	return b.Radius
}

func (b *Ball) CCDAngularThickness() float64 {
	return math.Pi
}

func (b *Ball) IsConvex() bool {
	return true
}

func (b *Ball) Clone() Shape {
	c := *b
	return &c
}

// Scale keeps a ball when the scale is uniform and returns a
// ConvexPolyhedron approximating the ellipsoid otherwise.
func (b *Ball) Scale(scale Vector, subdivisions int) (Shape, error) {
	if scale.IsUniform(epsilon()) {
		return NewBall(b.Radius * math.Abs(scale.X)), nil
	}
	vertices, indices := b.ToTriMesh(subdivisions, subdivisions)
	poly, err := scaledPolyhedron(vertices, indices, scale)
	if err != nil {
		return nil, errors.Wrapf(err, "ball by %v", scale)
	}
	return poly, nil
}

func (b *Ball) AsSupportMap() (SupportMap, bool) {
	return b, true
}

func (b *Ball) LocalSupportPoint(dir Vector) Vector {
	return dir.Normalize().Mult(b.Radius)
}

// FeatureNormalAtPoint returns the direction of point. It fails at the center.
func (b *Ball) FeatureNormalAtPoint(_ collide.FeatureID, point Vector) (Vector, bool) {
	return point.TryNormalize(epsilon())
}

// ToTriMesh samples the sphere with nTheta meridians and nPhi parallels,
// poles included. The triangles are oriented outward.
func (b *Ball) ToTriMesh(nTheta, nPhi int) ([]Vector, [][3]uint32) {
	nTheta = max(subdivisionsOrDefault(nTheta), 3)
	nPhi = max(subdivisionsOrDefault(nPhi), 3)

	vertices := []Vector{Vec(0, -b.Radius, 0)}
	for j := 1; j < nPhi-1; j++ {
		phi := -math.Pi/2 + math.Pi*float64(j)/float64(nPhi-1)
		y, ring := math.Sin(phi), math.Cos(phi)
		for i := 0; i < nTheta; i++ {
			theta := 2 * math.Pi * float64(i) / float64(nTheta)
			vertices = append(vertices, Vec(ring*math.Cos(theta), y, ring*math.Sin(theta)).Mult(b.Radius))
		}
	}
	vertices = append(vertices, Vec(0, b.Radius, 0))
	return vertices, sphereIndices(nTheta, nPhi-2)
}

// sphereIndices connects rings of n vertices between a bottom pole at index 0
// and a top pole at the last index.
func sphereIndices(n, rings int) [][3]uint32 {
	at := func(ring, i int) uint32 {
		return uint32(1 + ring*n + i%n)
	}
	top := uint32(1 + rings*n)
	var indices [][3]uint32
	for i := 0; i < n; i++ {
		indices = append(indices, [3]uint32{0, at(0, i), at(0, i+1)})
	}
	for r := 0; r+1 < rings; r++ {
		for i := 0; i < n; i++ {
			indices = append(indices,
				[3]uint32{at(r, i), at(r+1, i), at(r+1, i+1)},
				[3]uint32{at(r, i), at(r+1, i+1), at(r, i+1)},
			)
		}
	}
	for i := 0; i < n; i++ {
		indices = append(indices, [3]uint32{at(rings-1, i), top, at(rings-1, i+1)})
	}
	return indices
}
