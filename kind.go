// Package collide holds the pieces of the shape library shared by the 2D
// and 3D packages: the shape kind registry, sentinel errors, configuration
// and logging.
package collide

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Kind tags every concrete shape variant. The integer values are part of the
// serialized format and must never be reordered.
type Kind uint8

const (
	Ball Kind = iota
	Cuboid
	Capsule
	Segment
	Triangle
	Voxels
	TriMesh
	Polyline
	HalfSpace
	HeightField
	Compound
	// ConvexPolygon only exists in 2D.
	ConvexPolygon
	// ConvexPolyhedron only exists in 3D.
	ConvexPolyhedron
	Cylinder
	Cone
	RoundCuboid
	RoundTriangle
	RoundCylinder
	RoundCone
	RoundConvexPolyhedron
	RoundConvexPolygon
	// Custom is a user defined shape. It is never serialized.
	Custom

	numKinds
)

var kindNames = map[Kind]string{
	Ball:                  "Ball",
	Cuboid:                "Cuboid",
	Capsule:               "Capsule",
	Segment:               "Segment",
	Triangle:              "Triangle",
	Voxels:                "Voxels",
	TriMesh:               "TriMesh",
	Polyline:              "Polyline",
	HalfSpace:             "HalfSpace",
	HeightField:           "HeightField",
	Compound:              "Compound",
	ConvexPolygon:         "ConvexPolygon",
	ConvexPolyhedron:      "ConvexPolyhedron",
	Cylinder:              "Cylinder",
	Cone:                  "Cone",
	RoundCuboid:           "RoundCuboid",
	RoundTriangle:         "RoundTriangle",
	RoundCylinder:         "RoundCylinder",
	RoundCone:             "RoundCone",
	RoundConvexPolyhedron: "RoundConvexPolyhedron",
	RoundConvexPolygon:    "RoundConvexPolygon",
	Custom:                "Custom",
}

var kindsByName = lo.Invert(kindNames)

var only3D = map[Kind]bool{
	ConvexPolyhedron:      true,
	Cylinder:              true,
	Cone:                  true,
	RoundCylinder:         true,
	RoundCone:             true,
	RoundConvexPolyhedron: true,
}

var only2D = map[Kind]bool{
	ConvexPolygon:      true,
	RoundConvexPolygon: true,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, error) {
	if k, ok := kindsByName[name]; ok {
		return k, nil
	}
	return 0, errors.Wrapf(ErrUnknownKind, "%q", name)
}

// Kinds lists every tag in ascending order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, numKinds)
	for k := Ball; k < numKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func (k Kind) Valid() bool {
	return k < numKinds
}

// IsComposite reports whether shapes of this kind are traversed through a
// BVH over their parts. Such shapes cannot be nested inside a compound.
func (k Kind) IsComposite() bool {
	switch k {
	case TriMesh, Polyline, HeightField, Compound:
		return true
	}
	return false
}

// IsRound reports whether the kind is a rounded wrapper around a sharp shape.
func (k Kind) IsRound() bool {
	switch k {
	case RoundCuboid, RoundTriangle, RoundCylinder, RoundCone, RoundConvexPolyhedron, RoundConvexPolygon:
		return true
	}
	return false
}

// Supports2D reports whether the kind exists in the 2D package.
func (k Kind) Supports2D() bool {
	return k.Valid() && !only3D[k]
}

// Supports3D reports whether the kind exists in the 3D package.
func (k Kind) Supports3D() bool {
	return k.Valid() && !only2D[k]
}
