package collide

import "github.com/pkg/errors"

var (
	// ErrEmptyCompound is returned when a compound is built without children.
	ErrEmptyCompound = errors.New("a compound shape must contain at least one shape")
	// ErrNestedComposite is returned when a compound child is itself a composite shape.
	ErrNestedComposite = errors.New("nested composite shapes are not allowed")
	// ErrDegenerateDecomposition is returned when a convex decomposition yields a
	// polygon with zero or near zero area.
	ErrDegenerateDecomposition = errors.New("degenerate polygon in convex decomposition")
	// ErrUnscalableShape is returned when scaling would produce degenerate geometry.
	ErrUnscalableShape = errors.New("shape cannot be scaled")
	// ErrCustomDeserialization is returned when a custom shape is encoded or decoded.
	ErrCustomDeserialization = errors.New("custom shapes cannot be serialized")
	// ErrUnknownKind is returned for tags or names outside the registry.
	ErrUnknownKind = errors.New("unknown shape kind")
	// ErrDegenerateShape is returned by constructors given degenerate geometry.
	ErrDegenerateShape = errors.New("degenerate shape")
)
