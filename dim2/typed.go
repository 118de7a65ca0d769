package dim2

import "github.com/jakecoffman/collide"

// TypedShape is the tagged view of a shape. Switching on Kind and calling the
// matching accessor never fails.
type TypedShape struct {
	Kind  collide.Kind
	Shape Shape
}

func (t TypedShape) Ball() *Ball { return t.Shape.(*Ball) }
func (t TypedShape) Cuboid() *Cuboid { return t.Shape.(*Cuboid) }
func (t TypedShape) Capsule() *Capsule { return t.Shape.(*Capsule) }
func (t TypedShape) Segment() *Segment { return t.Shape.(*Segment) }
func (t TypedShape) Triangle() *Triangle { return t.Shape.(*Triangle) }
func (t TypedShape) Voxels() *Voxels { return t.Shape.(*Voxels) }
func (t TypedShape) TriMesh() *TriMesh { return t.Shape.(*TriMesh) }
func (t TypedShape) Polyline() *Polyline { return t.Shape.(*Polyline) }
func (t TypedShape) HalfSpace() *HalfSpace { return t.Shape.(*HalfSpace) }
func (t TypedShape) HeightField() *HeightField { return t.Shape.(*HeightField) }
func (t TypedShape) Compound() *Compound { return t.Shape.(*Compound) }
func (t TypedShape) ConvexPolygon() *ConvexPolygon {
	return t.Shape.(*ConvexPolygon)
}
func (t TypedShape) RoundCuboid() *RoundCuboid { return t.Shape.(*RoundCuboid) }
func (t TypedShape) RoundTriangle() *RoundTriangle { return t.Shape.(*RoundTriangle) }
func (t TypedShape) RoundConvexPolygon() *RoundConvexPolygon {
	return t.Shape.(*RoundConvexPolygon)
}

// Custom returns the user defined shape.
func (t TypedShape) Custom() Shape { return t.Shape }

func downcast[T Shape](s Shape) (T, bool) {
	t, ok := unwrap(s).(T)
	return t, ok
}

func AsBall(s Shape) (*Ball, bool) { return downcast[*Ball](s) }
func AsCuboid(s Shape) (*Cuboid, bool) { return downcast[*Cuboid](s) }
func AsCapsule(s Shape) (*Capsule, bool) { return downcast[*Capsule](s) }
func AsSegment(s Shape) (*Segment, bool) { return downcast[*Segment](s) }
func AsTriangle(s Shape) (*Triangle, bool) { return downcast[*Triangle](s) }
func AsVoxels(s Shape) (*Voxels, bool) { return downcast[*Voxels](s) }
func AsTriMesh(s Shape) (*TriMesh, bool) { return downcast[*TriMesh](s) }
func AsPolyline(s Shape) (*Polyline, bool) { return downcast[*Polyline](s) }
func AsHalfSpace(s Shape) (*HalfSpace, bool) { return downcast[*HalfSpace](s) }
func AsHeightField(s Shape) (*HeightField, bool) { return downcast[*HeightField](s) }
func AsCompound(s Shape) (*Compound, bool) { return downcast[*Compound](s) }

func AsConvexPolygon(s Shape) (*ConvexPolygon, bool) {
	return downcast[*ConvexPolygon](s)
}

func AsRoundCuboid(s Shape) (*RoundCuboid, bool) {
	return downcast[*RoundCuboid](s)
}

func AsRoundTriangle(s Shape) (*RoundTriangle, bool) {
	return downcast[*RoundTriangle](s)
}

func AsRoundConvexPolygon(s Shape) (*RoundConvexPolygon, bool) {
	return downcast[*RoundConvexPolygon](s)
}
