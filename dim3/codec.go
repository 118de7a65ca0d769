package dim3

import (
	"github.com/jakecoffman/collide"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// envelope tags the encoded parameters of a shape with its kind.
type envelope struct {
	Kind  collide.Kind `yaml:"kind"`
	Shape yaml.Node    `yaml:"shape"`
}

type ballWire struct {
	Radius float64 `yaml:"radius"`
}

type cuboidWire struct {
	HalfExtents Vector `yaml:"half_extents"`
}

type capsuleWire struct {
	A      Vector  `yaml:"a"`
	B      Vector  `yaml:"b"`
	Radius float64 `yaml:"radius"`
}

type segmentWire struct {
	A Vector `yaml:"a"`
	B Vector `yaml:"b"`
}

type triangleWire struct {
	A Vector `yaml:"a"`
	B Vector `yaml:"b"`
	C Vector `yaml:"c"`
}

type voxelsWire struct {
	VoxelSize Vector     `yaml:"voxel_size"`
	Keys      []VoxelKey `yaml:"keys,flow"`
}

type triMeshWire struct {
	Vertices []Vector    `yaml:"vertices"`
	Indices  [][3]uint32 `yaml:"indices,flow"`
}

type polylineWire struct {
	Vertices []Vector    `yaml:"vertices"`
	Indices  [][2]uint32 `yaml:"indices,flow"`
}

type halfSpaceWire struct {
	Normal Vector `yaml:"normal"`
}

type heightFieldWire struct {
	Rows    int       `yaml:"rows"`
	Cols    int       `yaml:"cols"`
	Heights []float64 `yaml:"heights,flow"`
	Scale   Vector    `yaml:"scale"`
}

type childWire struct {
	Position Isometry `yaml:"position"`
	Shape    envelope `yaml:"shape"`
}

type compoundWire struct {
	Children []childWire `yaml:"children"`
}

type convexPolyhedronWire struct {
	Points []Vector    `yaml:"points"`
	Faces  [][3]uint32 `yaml:"faces,flow"`
}

// cylinderWire also encodes cones.
type cylinderWire struct {
	HalfHeight float64 `yaml:"half_height"`
	Radius     float64 `yaml:"radius"`
}

type roundedWire[W any] struct {
	Inner        W       `yaml:"inner"`
	BorderRadius float64 `yaml:"border_radius"`
}

// Marshal encodes a shape as YAML. Custom shapes cannot be encoded.
func Marshal(s Shape) ([]byte, error) {
	env, err := encode(s)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(&env)
}

// Unmarshal decodes a shape encoded by Marshal. Composite shapes rebuild
// their BVH.
func Unmarshal(data []byte) (Shape, error) {
	var env envelope
	if err := yaml.Unmarshal(data, &env); err != nil {
		return nil, errors.Wrap(err, "decoding shape envelope")
	}
	return decode(&env)
}

func encode(s Shape) (envelope, error) {
	t := s.Typed()
	var wire any
	switch t.Kind {
	case collide.Ball:
		wire = ballWire{Radius: t.Ball().Radius}
	case collide.Cuboid:
		wire = cuboidWire{HalfExtents: t.Cuboid().HalfExtents}
	case collide.Capsule:
		c := t.Capsule()
		wire = capsuleWire{A: c.Segment.A, B: c.Segment.B, Radius: c.Radius}
	case collide.Segment:
		seg := t.Segment()
		wire = segmentWire{A: seg.A, B: seg.B}
	case collide.Triangle:
		wire = triangleToWire(t.Triangle())
	case collide.Voxels:
		v := t.Voxels()
		wire = voxelsWire{VoxelSize: v.voxelSize, Keys: v.keys}
	case collide.TriMesh:
		m := t.TriMesh()
		wire = triMeshWire{Vertices: m.vertices, Indices: m.indices}
	case collide.Polyline:
		p := t.Polyline()
		wire = polylineWire{Vertices: p.vertices, Indices: p.indices}
	case collide.HalfSpace:
		wire = halfSpaceWire{Normal: t.HalfSpace().Normal}
	case collide.HeightField:
		h := t.HeightField()
		wire = heightFieldWire{Rows: h.rows, Cols: h.cols, Heights: h.heights, Scale: h.scale}
	case collide.Compound:
		c := t.Compound()
		children := make([]childWire, len(c.children))
		for i, child := range c.children {
			env, err := encode(child.Shape)
			if err != nil {
				return envelope{}, errors.Wrapf(err, "compound child %d", i)
			}
			children[i] = childWire{Position: child.Position, Shape: env}
		}
		wire = compoundWire{Children: children}
	case collide.ConvexPolyhedron:
		wire = polyhedronToWire(t.ConvexPolyhedron())
	case collide.Cylinder:
		c := t.Cylinder()
		wire = cylinderWire{HalfHeight: c.HalfHeight, Radius: c.Radius}
	case collide.Cone:
		c := t.Cone()
		wire = cylinderWire{HalfHeight: c.HalfHeight, Radius: c.Radius}
	case collide.RoundCuboid:
		r := t.RoundCuboid()
		wire = roundedWire[cuboidWire]{Inner: cuboidWire{HalfExtents: r.Inner.HalfExtents}, BorderRadius: r.BorderRadius}
	case collide.RoundTriangle:
		r := t.RoundTriangle()
		wire = roundedWire[triangleWire]{Inner: triangleToWire(r.Inner), BorderRadius: r.BorderRadius}
	case collide.RoundCylinder:
		r := t.RoundCylinder()
		inner := cylinderWire{HalfHeight: r.Inner.HalfHeight, Radius: r.Inner.Radius}
		wire = roundedWire[cylinderWire]{Inner: inner, BorderRadius: r.BorderRadius}
	case collide.RoundCone:
		r := t.RoundCone()
		inner := cylinderWire{HalfHeight: r.Inner.HalfHeight, Radius: r.Inner.Radius}
		wire = roundedWire[cylinderWire]{Inner: inner, BorderRadius: r.BorderRadius}
	case collide.RoundConvexPolyhedron:
		r := t.RoundConvexPolyhedron()
		wire = roundedWire[convexPolyhedronWire]{Inner: polyhedronToWire(r.Inner), BorderRadius: r.BorderRadius}
	case collide.Custom:
		return envelope{}, collide.ErrCustomDeserialization
	default:
		return envelope{}, errors.Wrapf(collide.ErrUnknownKind, "%v in 3D", t.Kind)
	}

	env := envelope{Kind: t.Kind}
	if err := env.Shape.Encode(wire); err != nil {
		return envelope{}, errors.Wrapf(err, "encoding %v", t.Kind)
	}
	return env, nil
}

func triangleToWire(t *Triangle) triangleWire {
	return triangleWire{A: t.A, B: t.B, C: t.C}
}

func polyhedronToWire(p *ConvexPolyhedron) convexPolyhedronWire {
	return convexPolyhedronWire{Points: p.points, Faces: p.faces}
}

func decodeWire[W any](n *yaml.Node) (W, error) {
	var w W
	err := n.Decode(&w)
	return w, err
}

func decode(env *envelope) (Shape, error) {
	if env.Kind == collide.Custom {
		return nil, collide.ErrCustomDeserialization
	}
	if !env.Kind.Supports3D() {
		return nil, errors.Wrapf(collide.ErrUnknownKind, "%v in 3D", env.Kind)
	}

	s, err := decodeKind(env)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %v", env.Kind)
	}
	return s, nil
}

func decodeKind(env *envelope) (Shape, error) {
	n := &env.Shape
	switch env.Kind {
	case collide.Ball:
		w, err := decodeWire[ballWire](n)
		if err != nil {
			return nil, err
		}
		return NewBall(w.Radius), nil
	case collide.Cuboid:
		w, err := decodeWire[cuboidWire](n)
		if err != nil {
			return nil, err
		}
		return &Cuboid{HalfExtents: w.HalfExtents}, nil
	case collide.Capsule:
		w, err := decodeWire[capsuleWire](n)
		if err != nil {
			return nil, err
		}
		return NewCapsule(w.A, w.B, w.Radius), nil
	case collide.Segment:
		w, err := decodeWire[segmentWire](n)
		if err != nil {
			return nil, err
		}
		return NewSegment(w.A, w.B), nil
	case collide.Triangle:
		w, err := decodeWire[triangleWire](n)
		if err != nil {
			return nil, err
		}
		return NewTriangle(w.A, w.B, w.C), nil
	case collide.Voxels:
		w, err := decodeWire[voxelsWire](n)
		if err != nil {
			return nil, err
		}
		return asShape(NewVoxels(w.VoxelSize, w.Keys))
	case collide.TriMesh:
		w, err := decodeWire[triMeshWire](n)
		if err != nil {
			return nil, err
		}
		return asShape(NewTriMesh(w.Vertices, w.Indices))
	case collide.Polyline:
		w, err := decodeWire[polylineWire](n)
		if err != nil {
			return nil, err
		}
		if w.Indices == nil {
			w.Indices = [][2]uint32{}
		}
		return asShape(NewPolyline(w.Vertices, w.Indices))
	case collide.HalfSpace:
		w, err := decodeWire[halfSpaceWire](n)
		if err != nil {
			return nil, err
		}
		return asShape(NewHalfSpace(w.Normal))
	case collide.HeightField:
		w, err := decodeWire[heightFieldWire](n)
		if err != nil {
			return nil, err
		}
		return asShape(NewHeightField(w.Rows, w.Cols, w.Heights, w.Scale))
	case collide.Compound:
		w, err := decodeWire[compoundWire](n)
		if err != nil {
			return nil, err
		}
		children := make([]Child, len(w.Children))
		for i := range w.Children {
			s, err := decode(&w.Children[i].Shape)
			if err != nil {
				return nil, errors.Wrapf(err, "compound child %d", i)
			}
			children[i] = Child{Position: w.Children[i].Position, Shape: Share(s)}
		}
		return asShape(NewCompound(children))
	case collide.ConvexPolyhedron:
		w, err := decodeWire[convexPolyhedronWire](n)
		if err != nil {
			return nil, err
		}
		return asShape(FromConvexMesh(w.Points, w.Faces))
	case collide.Cylinder:
		w, err := decodeWire[cylinderWire](n)
		if err != nil {
			return nil, err
		}
		return NewCylinder(w.HalfHeight, w.Radius), nil
	case collide.Cone:
		w, err := decodeWire[cylinderWire](n)
		if err != nil {
			return nil, err
		}
		return NewCone(w.HalfHeight, w.Radius), nil
	case collide.RoundCuboid:
		w, err := decodeWire[roundedWire[cuboidWire]](n)
		if err != nil {
			return nil, err
		}
		return asShape(NewRoundCuboid(w.Inner.HalfExtents, w.BorderRadius))
	case collide.RoundTriangle:
		w, err := decodeWire[roundedWire[triangleWire]](n)
		if err != nil {
			return nil, err
		}
		return asShape(NewRoundTriangle(w.Inner.A, w.Inner.B, w.Inner.C, w.BorderRadius))
	case collide.RoundCylinder:
		w, err := decodeWire[roundedWire[cylinderWire]](n)
		if err != nil {
			return nil, err
		}
		return asShape(NewRoundCylinder(w.Inner.HalfHeight, w.Inner.Radius, w.BorderRadius))
	case collide.RoundCone:
		w, err := decodeWire[roundedWire[cylinderWire]](n)
		if err != nil {
			return nil, err
		}
		return asShape(NewRoundCone(w.Inner.HalfHeight, w.Inner.Radius, w.BorderRadius))
	case collide.RoundConvexPolyhedron:
		w, err := decodeWire[roundedWire[convexPolyhedronWire]](n)
		if err != nil {
			return nil, err
		}
		inner, err := FromConvexMesh(w.Inner.Points, w.Inner.Faces)
		if err != nil {
			return nil, err
		}
		return asShape(NewRounded(inner, w.BorderRadius))
	}
	return nil, errors.Wrapf(collide.ErrUnknownKind, "%v in 3D", env.Kind)
}
