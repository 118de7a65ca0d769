package dim3

import "github.com/jakecoffman/collide"

// TypedShape is the tagged view of a shape.
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
func (t TypedShape) ConvexPolyhedron() *ConvexPolyhedron {
	return t.Shape.(*ConvexPolyhedron)
}
func (t TypedShape) Cylinder() *Cylinder { return t.Shape.(*Cylinder) }
func (t TypedShape) Cone() *Cone { return t.Shape.(*Cone) }
func (t TypedShape) RoundCuboid() *RoundCuboid { return t.Shape.(*RoundCuboid) }
func (t TypedShape) RoundTriangle() *RoundTriangle { return t.Shape.(*RoundTriangle) }
func (t TypedShape) RoundCylinder() *RoundCylinder { return t.Shape.(*RoundCylinder) }
func (t TypedShape) RoundCone() *RoundCone { return t.Shape.(*RoundCone) }
func (t TypedShape) RoundConvexPolyhedron() *RoundConvexPolyhedron {
	return t.Shape.(*RoundConvexPolyhedron)
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
func AsCylinder(s Shape) (*Cylinder, bool) { return downcast[*Cylinder](s) }
func AsCone(s Shape) (*Cone, bool) { return downcast[*Cone](s) }

func AsConvexPolyhedron(s Shape) (*ConvexPolyhedron, bool) {
	return downcast[*ConvexPolyhedron](s)
}

func AsRoundCuboid(s Shape) (*RoundCuboid, bool) { return downcast[*RoundCuboid](s) }
func AsRoundTriangle(s Shape) (*RoundTriangle, bool) { return downcast[*RoundTriangle](s) }
func AsRoundCylinder(s Shape) (*RoundCylinder, bool) { return downcast[*RoundCylinder](s) }
func AsRoundCone(s Shape) (*RoundCone, bool) { return downcast[*RoundCone](s) }

func AsRoundConvexPolyhedron(s Shape) (*RoundConvexPolyhedron, bool) {
	return downcast[*RoundConvexPolyhedron](s)
}
