package collide

import "fmt"

// FeatureType distinguishes the vertices, edges and faces of a shape.
type FeatureType uint8

const (
	FeatureUnknown FeatureType = iota
	FeatureVertex
	// FeatureEdge is only used in 3D. In 2D edges are faces.
	FeatureEdge
	FeatureFace
)

// FeatureID names one feature of a shape. The index is interpreted by the
// shape that produced it.
type FeatureID struct {
	Type  FeatureType
	Index uint32
}

func Vertex(i uint32) FeatureID { return FeatureID{FeatureVertex, i} }
func Edge(i uint32) FeatureID   { return FeatureID{FeatureEdge, i} }
func Face(i uint32) FeatureID   { return FeatureID{FeatureFace, i} }

func (f FeatureID) String() string {
	switch f.Type {
	case FeatureVertex:
		return fmt.Sprintf("Vertex(%d)", f.Index)
	case FeatureEdge:
		return fmt.Sprintf("Edge(%d)", f.Index)
	case FeatureFace:
		return fmt.Sprintf("Face(%d)", f.Index)
	}
	return "Unknown"
}
