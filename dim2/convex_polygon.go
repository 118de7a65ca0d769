package dim2

import (
	"math"

	"github.com/jakecoffman/collide"
	"github.com/pkg/errors"
)

// ConvexPolygon is a convex polygon with counter-clockwise vertices and no
// collinear consecutive edges.
type ConvexPolygon struct {
	shapeBase
	points []Vector
	// normals[i] is the outward normal of the edge from points[i] to
	// points[i+1].
	normals []Vector
}

// FromConvexHull builds the convex hull of points.
func FromConvexHull(points []Vector) (*ConvexPolygon, error) {
	hull := convexHull(points, 0)
	return FromConvexPolyline(hull)
}

// FromConvexPolyline builds a polygon from the vertices of a convex outline
// in either orientation. Duplicate and collinear vertices are removed.
func FromConvexPolyline(points []Vector) (*ConvexPolygon, error) {
	eps := epsilon()
	pts := make([]Vector, 0, len(points))
	for _, p := range points {
		if len(pts) == 0 || !pts[len(pts)-1].Near(p, eps) {
			pts = append(pts, p)
		}
	}
	for len(pts) > 1 && pts[0].Near(pts[len(pts)-1], eps) {
		pts = pts[:len(pts)-1]
	}
	if AreaForPoly(pts) < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}

	// Drop vertices between two parallel edges until none remain.
	for removed := true; removed && len(pts) >= 3; {
		removed = false
		for i := 0; i < len(pts); i++ {
			prev := pts[(i+len(pts)-1)%len(pts)]
			next := pts[(i+1)%len(pts)]
			if math.Abs(pts[i].Sub(prev).Normalize().Cross(next.Sub(pts[i]).Normalize())) <= eps {
				pts = append(pts[:i], pts[i+1:]...)
				removed = true
				break
			}
		}
	}

	if len(pts) < 3 || AreaForPoly(pts) <= eps {
		return nil, errors.Wrapf(collide.ErrDegenerateShape, "convex polygon with %d input points", len(points))
	}

	normals := make([]Vector, len(pts))
	for i := range pts {
		normals[i] = pts[(i+1)%len(pts)].Sub(pts[i]).ReversePerp().Normalize()
	}
	return &ConvexPolygon{points: pts, normals: normals}, nil
}

// Points returns the vertices in counter-clockwise order. The slice must not
// be modified.
func (p *ConvexPolygon) Points() []Vector {
	return p.points
}

func (p *ConvexPolygon) Normals() []Vector {
	return p.normals
}

func (p *ConvexPolygon) LocalAABB() AABB {
	return AABBFromPoints(p.points)
}

func (p *ConvexPolygon) LocalBoundingSphere() BoundingSphere {
	c := p.LocalAABB().Center()
	var r float64
	for _, v := range p.points {
		r = math.Max(r, c.Distance(v))
	}
	return BoundingSphere{Center: c, Radius: r}
}

func (p *ConvexPolygon) AABB(pos Isometry) AABB {
	bb := InvalidAABB()
	for _, v := range p.points {
		bb = bb.Expand(pos.Point(v))
	}
	return bb
}

func (p *ConvexPolygon) BoundingSphere(pos Isometry) BoundingSphere {
	return transformedSphere(p, pos)
}

func (p *ConvexPolygon) SweptAABB(start, end Isometry) AABB {
	return sweptAABB(p, start, end)
}

func (p *ConvexPolygon) MassProperties(density float64) MassProperties {
	return PolygonMassProperties(density, p.points)
}

func (p *ConvexPolygon) Kind() collide.Kind {
	return collide.ConvexPolygon
}

func (p *ConvexPolygon) Typed() TypedShape {
	return TypedShape{collide.ConvexPolygon, p}
}

// CCDThickness uses the half extents of the local AABB, which may be larger
// than the thinnest width of the polygon.
func (p *ConvexPolygon) CCDThickness() float64 {
	return p.LocalAABB().HalfExtents().MinComponent()
}

func (p *ConvexPolygon) CCDAngularThickness() float64 {
	return math.Pi / 4
}

func (p *ConvexPolygon) IsConvex() bool {
	return true
}

func (p *ConvexPolygon) Clone() Shape {
	return &ConvexPolygon{
		points:  append([]Vector(nil), p.points...),
		normals: append([]Vector(nil), p.normals...),
	}
}

func (p *ConvexPolygon) Scale(scale Vector, _ int) (Shape, error) {
	points := make([]Vector, len(p.points))
	for i, v := range p.points {
		points[i] = v.MulComponents(scale)
	}
	poly, err := FromConvexPolyline(points)
	if err != nil {
		return nil, errors.Wrapf(collide.ErrUnscalableShape, "convex polygon by %v", scale)
	}
	return poly, nil
}

func (p *ConvexPolygon) AsSupportMap() (SupportMap, bool) {
	return p, true
}

func (p *ConvexPolygon) AsPolygonalFeatureMap() (PolygonalFeatureMap, float64, bool) {
	return p, 0, true
}

func (p *ConvexPolygon) LocalSupportPoint(dir Vector) Vector {
	best := 0
	bestDot := -math.MaxFloat64
	for i, v := range p.points {
		if d := v.Dot(dir); d > bestDot {
			best, bestDot = i, d
		}
	}
	return p.points[best]
}

func (p *ConvexPolygon) LocalSupportFeature(dir Vector) PolygonalFeature {
	best := 0
	bestDot := -math.MaxFloat64
	for i, n := range p.normals {
		if d := n.Dot(dir); d > bestDot {
			best, bestDot = i, d
		}
	}
	next := (best + 1) % len(p.points)
	return PolygonalFeature{
		Vertices:    [2]Vector{p.points[best], p.points[next]},
		VIDs:        [2]collide.FeatureID{collide.Vertex(uint32(best)), collide.Vertex(uint32(next))},
		FID:         collide.Face(uint32(best)),
		NumVertices: 2,
	}
}

// FeatureNormalAtPoint returns the edge normal for faces and the bisector of
// the two adjacent edge normals for vertices.
func (p *ConvexPolygon) FeatureNormalAtPoint(feature collide.FeatureID, _ Vector) (Vector, bool) {
	n := uint32(len(p.normals))
	if feature.Index >= n {
		return Vector{}, false
	}
	switch feature.Type {
	case collide.FeatureFace:
		return p.normals[feature.Index], true
	case collide.FeatureVertex:
		prev := (feature.Index + n - 1) % n
		return p.normals[prev].Add(p.normals[feature.Index]).TryNormalize(epsilon())
	}
	return Vector{}, false
}

// convexHull returns the hull of points in counter-clockwise order starting
// from the leftmost point. The input is not modified.
//
// QuickHull seemed like a neat algorithm, and efficient-ish for large input sets.
func convexHull(points []Vector, tol float64) []Vector {
	if len(points) == 0 {
		return nil
	}
	verts := append([]Vector(nil), points...)
	start, end := loopIndexes(verts)
	if start == end {
		return verts[:1]
	}

	verts[0], verts[start] = verts[start], verts[0]
	if end == 0 {
		end = start
	}
	verts[1], verts[end] = verts[end], verts[1]

	a, b := verts[0], verts[1]
	return qhullReduce(tol, verts[2:], a, b, a, []Vector{a})
}

// loopIndexes returns the indexes of the leftmost and rightmost points.
func loopIndexes(verts []Vector) (int, int) {
	start, end := 0, 0
	min, max := verts[0], verts[0]

	for i, v := range verts {
		if v.X < min.X || (v.X == min.X && v.Y < min.Y) {
			min = v
			start = i
		} else if v.X > max.X || (v.X == max.X && v.Y > max.Y) {
			max = v
			end = i
		}
	}
	return start, end
}

func qhullReduce(tol float64, verts []Vector, a, pivot, b Vector, result []Vector) []Vector {
	if len(verts) == 0 {
		return append(result, pivot)
	}

	left := qhullPartition(verts, a, pivot, tol)
	if left > 0 {
		result = qhullReduce(tol, verts[1:left], a, verts[0], pivot, result)
	}
	result = append(result, pivot)

	right := qhullPartition(verts[left:], pivot, b, tol)
	if right > 0 {
		result = qhullReduce(tol, verts[left+1:left+right], pivot, verts[left], b, result)
	}
	return result
}

// qhullPartition moves the points strictly right of a->b to the front, the
// furthest one first, and returns their count.
func qhullPartition(verts []Vector, a, b Vector, tol float64) int {
	if len(verts) == 0 {
		return 0
	}

	max := 0.0
	pivot := 0

	delta := b.Sub(a)
	valueTol := tol * delta.Length()

	head := 0
	for tail := len(verts) - 1; head <= tail; {
		value := verts[head].Sub(a).Cross(delta)
		if value > valueTol {
			if value > max {
				max = value
				pivot = head
			}
			head++
		} else {
			verts[head], verts[tail] = verts[tail], verts[head]
			tail--
		}
	}

	// move the new pivot to the front if it's not already there.
	if pivot != 0 {
		verts[0], verts[pivot] = verts[pivot], verts[0]
	}
	return head
}
