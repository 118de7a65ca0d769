package dim3

import (
	"math"

	"github.com/jakecoffman/collide"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// ConvexPolyhedron is a closed convex triangle mesh with outward faces.
// Coplanar triangles are kept as separate faces.
type ConvexPolyhedron struct {
	shapeBase
	points  []Vector
	faces   [][3]uint32
	normals []Vector
	edges   []polyEdge
	// faceEdges[f][k] is the edge from vertex k to vertex k+1 of face f.
	faceEdges [][3]uint32
	// vertexFaces[v] lists the faces around vertex v.
	vertexFaces [][]uint32
}

type polyEdge struct {
	a, b  uint32
	faces [2]uint32
}

// FromConvexMesh builds a polyhedron from a closed convex mesh. The faces may
// be oriented either way as long as they agree.
func FromConvexMesh(points []Vector, indices [][3]uint32) (*ConvexPolyhedron, error) {
	if len(points) < 4 || len(indices) < 4 {
		return nil, errors.Wrapf(collide.ErrDegenerateShape,
			"convex polyhedron with %d points and %d faces", len(points), len(indices))
	}
	for _, f := range indices {
		for _, i := range f {
			if int(i) >= len(points) {
				return nil, errors.Wrapf(collide.ErrDegenerateShape, "face index %d out of range", i)
			}
		}
	}

	var volume float64
	for _, f := range indices {
		volume += points[f[0]].Dot(points[f[1]].Cross(points[f[2]])) / 6
	}
	eps := epsilon()
	if math.Abs(volume) <= eps {
		return nil, errors.Wrap(collide.ErrDegenerateShape, "convex polyhedron has no volume")
	}
	faces := append([][3]uint32(nil), indices...)
	if volume < 0 {
		for i := range faces {
			faces[i][1], faces[i][2] = faces[i][2], faces[i][1]
		}
	}

	p := &ConvexPolyhedron{
		points:      append([]Vector(nil), points...),
		faces:       faces,
		normals:     make([]Vector, len(faces)),
		faceEdges:   make([][3]uint32, len(faces)),
		vertexFaces: make([][]uint32, len(points)),
	}
	tol := eps * math.Max(1, AABBFromPoints(points).Extents().MaxComponent())
	for i, f := range faces {
		a, b, c := points[f[0]], points[f[1]], points[f[2]]
		n, ok := b.Sub(a).Cross(c.Sub(a)).TryNormalize(eps)
		if !ok {
			return nil, errors.Wrapf(collide.ErrDegenerateShape, "face %d has no area", i)
		}
		for j, q := range points {
			if q.Sub(a).Dot(n) > tol {
				return nil, errors.Wrapf(collide.ErrDegenerateShape, "point %d is above face %d: mesh is not convex", j, i)
			}
		}
		p.normals[i] = n
		for _, v := range f {
			p.vertexFaces[v] = append(p.vertexFaces[v], uint32(i))
		}
	}
	if err := p.linkEdges(); err != nil {
		return nil, err
	}
	return p, nil
}

// linkEdges pairs the faces around every edge. Each edge of a closed mesh is
// shared by exactly two faces.
func (p *ConvexPolyhedron) linkEdges() error {
	type key [2]uint32
	ids := map[key]uint32{}
	counts := map[key]int{}
	for fi, f := range p.faces {
		for k := 0; k < 3; k++ {
			a, b := f[k], f[(k+1)%3]
			id := key{min(a, b), max(a, b)}
			e, ok := ids[id]
			if !ok {
				e = uint32(len(p.edges))
				ids[id] = e
				p.edges = append(p.edges, polyEdge{a: id[0], b: id[1], faces: [2]uint32{uint32(fi)}})
			} else {
				p.edges[e].faces[1] = uint32(fi)
			}
			counts[id]++
			p.faceEdges[fi][k] = e
		}
	}
	for id, n := range counts {
		if n != 2 {
			return errors.Wrapf(collide.ErrDegenerateShape, "edge %v is shared by %d faces: mesh is not closed", id, n)
		}
	}
	return nil
}

func scaledPolyhedron(points []Vector, indices [][3]uint32, scale Vector) (*ConvexPolyhedron, error) {
	scaled := lo.Map(points, func(v Vector, _ int) Vector {
		return v.MulComponents(scale)
	})
	poly, err := FromConvexMesh(scaled, indices)
	if err != nil {
		return nil, errors.Wrapf(collide.ErrUnscalableShape, "%v", err)
	}
	return poly, nil
}

// Points returns the vertices. The slice must not be modified.
func (p *ConvexPolyhedron) Points() []Vector {
	return p.points
}

// Faces returns the triangles, counter-clockwise seen from outside.
func (p *ConvexPolyhedron) Faces() [][3]uint32 {
	return p.faces
}

func (p *ConvexPolyhedron) FaceNormals() []Vector {
	return p.normals
}

func (p *ConvexPolyhedron) NumEdges() int {
	return len(p.edges)
}

func (p *ConvexPolyhedron) LocalAABB() AABB {
	return AABBFromPoints(p.points)
}

func (p *ConvexPolyhedron) LocalBoundingSphere() BoundingSphere {
	c := p.LocalAABB().Center()
	var r float64
	for _, v := range p.points {
		r = math.Max(r, c.Distance(v))
	}
	return BoundingSphere{Center: c, Radius: r}
}

func (p *ConvexPolyhedron) AABB(pos Isometry) AABB {
	bb := InvalidAABB()
	for _, v := range p.points {
		bb = bb.Expand(pos.Point(v))
	}
	return bb
}

func (p *ConvexPolyhedron) BoundingSphere(pos Isometry) BoundingSphere {
	return transformedSphere(p, pos)
}

func (p *ConvexPolyhedron) SweptAABB(start, end Isometry) AABB {
	return sweptAABB(p, start, end)
}

func (p *ConvexPolyhedron) MassProperties(density float64) MassProperties {
	return TriMeshMassProperties(density, p.points, p.faces)
}

func (p *ConvexPolyhedron) Kind() collide.Kind {
	return collide.ConvexPolyhedron
}

func (p *ConvexPolyhedron) Typed() TypedShape {
	return TypedShape{collide.ConvexPolyhedron, p}
}

// CCDThickness uses the half extents of the local AABB, which may be larger
// than the thinnest width of the polyhedron.
func (p *ConvexPolyhedron) CCDThickness() float64 {
	return p.LocalAABB().HalfExtents().MinComponent()
}

func (p *ConvexPolyhedron) CCDAngularThickness() float64 {
	return math.Pi / 4
}

func (p *ConvexPolyhedron) IsConvex() bool {
	return true
}

func (p *ConvexPolyhedron) Clone() Shape {
	c := *p
	c.points = append([]Vector(nil), p.points...)
	c.faces = append([][3]uint32(nil), p.faces...)
	c.normals = append([]Vector(nil), p.normals...)
	c.edges = append([]polyEdge(nil), p.edges...)
	c.faceEdges = append([][3]uint32(nil), p.faceEdges...)
	c.vertexFaces = lo.Map(p.vertexFaces, func(f []uint32, _ int) []uint32 {
		return append([]uint32(nil), f...)
	})
	return &c
}

func (p *ConvexPolyhedron) Scale(scale Vector, _ int) (Shape, error) {
	poly, err := scaledPolyhedron(p.points, p.faces, scale)
	if err != nil {
		return nil, errors.Wrapf(err, "convex polyhedron by %v", scale)
	}
	return poly, nil
}

func (p *ConvexPolyhedron) AsSupportMap() (SupportMap, bool) {
	return p, true
}

func (p *ConvexPolyhedron) AsPolygonalFeatureMap() (PolygonalFeatureMap, float64, bool) {
	return p, 0, true
}

func (p *ConvexPolyhedron) LocalSupportPoint(dir Vector) Vector {
	best := 0
	bestDot := -math.MaxFloat64
	for i, v := range p.points {
		if d := v.Dot(dir); d > bestDot {
			best, bestDot = i, d
		}
	}
	return p.points[best]
}

// LocalSupportFeature returns the face whose normal is most aligned with dir.
func (p *ConvexPolyhedron) LocalSupportFeature(dir Vector) PolygonalFeature {
	best := 0
	bestDot := -math.MaxFloat64
	for i, n := range p.normals {
		if d := n.Dot(dir); d > bestDot {
			best, bestDot = i, d
		}
	}
	f := PolygonalFeature{FID: collide.Face(uint32(best)), NumVertices: 3}
	for k, v := range p.faces[best] {
		f.Vertices[k] = p.points[v]
		f.VIDs[k] = collide.Vertex(v)
		f.EIDs[k] = collide.Edge(p.faceEdges[best][k])
	}
	return f
}

// FeatureNormalAtPoint returns the face normal for faces, and the normalized
// sum of the normals of the adjacent faces for edges and vertices.
func (p *ConvexPolyhedron) FeatureNormalAtPoint(feature collide.FeatureID, _ Vector) (Vector, bool) {
	i := int(feature.Index)
	switch feature.Type {
	case collide.FeatureFace:
		if i < len(p.normals) {
			return p.normals[i], true
		}
	case collide.FeatureEdge:
		if i < len(p.edges) {
			e := p.edges[i]
			return p.normals[e.faces[0]].Add(p.normals[e.faces[1]]).TryNormalize(epsilon())
		}
	case collide.FeatureVertex:
		if i < len(p.vertexFaces) {
			var n Vector
			for _, f := range p.vertexFaces[i] {
				n = n.Add(p.normals[f])
			}
			return n.TryNormalize(epsilon())
		}
	}
	return Vector{}, false
}
