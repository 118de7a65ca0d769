package dim3

import (
	"math"

	"github.com/jakecoffman/collide"
	"github.com/jakecoffman/collide/partition"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// VoxelKey is the integer grid coordinate of a voxel.
type VoxelKey [3]int32

// Voxels is a set of filled cells of a regular grid. The voxel with key k
// covers [k*VoxelSize, (k+1)*VoxelSize].
type Voxels struct {
	shapeBase
	voxelSize Vector
	keys      []VoxelKey
	bvh       *partition.BVH[AABB]
}

// NewVoxels deduplicates keys, keeping the first occurrence.
func NewVoxels(voxelSize Vector, keys []VoxelKey) (*Voxels, error) {
	if !(voxelSize.X > 0 && voxelSize.Y > 0 && voxelSize.Z > 0) {
		return nil, errors.Wrapf(collide.ErrDegenerateShape, "voxel size %v", voxelSize)
	}
	if len(keys) == 0 {
		return nil, errors.Wrap(collide.ErrDegenerateShape, "voxels without keys")
	}
	v := &Voxels{voxelSize: voxelSize, keys: lo.Uniq(keys)}
	v.bvh = buildBVH(collide.Voxels, lo.Map(v.keys, func(k VoxelKey, _ int) AABB {
		return v.voxelAABB(k)
	}))
	return v, nil
}

// VoxelsFromPoints fills the voxels containing each point.
func VoxelsFromPoints(voxelSize Vector, points []Vector) (*Voxels, error) {
	keys := lo.Map(points, func(p Vector, _ int) VoxelKey {
		cell := p.DivComponents(voxelSize)
		return VoxelKey{
			int32(math.Floor(cell.X)),
			int32(math.Floor(cell.Y)),
			int32(math.Floor(cell.Z)),
		}
	})
	return NewVoxels(voxelSize, keys)
}

func (v *Voxels) VoxelSize() Vector {
	return v.voxelSize
}

func (v *Voxels) Keys() []VoxelKey {
	return v.keys
}

func (v *Voxels) voxelAABB(k VoxelKey) AABB {
	mins := Vec(float64(k[0]), float64(k[1]), float64(k[2])).MulComponents(v.voxelSize)
	return NewAABB(mins, mins.Add(v.voxelSize))
}

func (v *Voxels) Voxel(i int) AABB {
	return v.voxelAABB(v.keys[i])
}

// VoxelsIntersecting calls f with the index of every voxel intersecting bb
// until f returns false.
func (v *Voxels) VoxelsIntersecting(bb AABB, f func(i int) bool) {
	v.bvh.Intersecting(bb, func(i uint32) bool {
		return f(int(i))
	})
}

// BVH returns the lookup tree over the voxels. Voxels are not a composite
// shape.
func (v *Voxels) BVH() *partition.BVH[AABB] {
	return v.bvh
}

func (v *Voxels) LocalAABB() AABB {
	return rootAABB(v.bvh)
}

func (v *Voxels) LocalBoundingSphere() BoundingSphere {
	return v.LocalAABB().BoundingSphere()
}

func (v *Voxels) AABB(pos Isometry) AABB {
	return transformedAABB(v, pos)
}

func (v *Voxels) BoundingSphere(pos Isometry) BoundingSphere {
	return transformedSphere(v, pos)
}

func (v *Voxels) SweptAABB(start, end Isometry) AABB {
	return sweptAABB(v, start, end)
}

// MassProperties sums one cuboid per voxel.
func (v *Voxels) MassProperties(density float64) MassProperties {
	half := v.voxelSize.Mult(0.5)
	return lo.Reduce(v.keys, func(mp MassProperties, k VoxelKey, _ int) MassProperties {
		cell := CuboidMassProperties(density, half)
		cell.LocalCOM = v.voxelAABB(k).Center()
		return mp.Add(cell)
	}, MassProperties{})
}

func (v *Voxels) Kind() collide.Kind {
	return collide.Voxels
}

func (v *Voxels) Typed() TypedShape {
	return TypedShape{collide.Voxels, v}
}

func (v *Voxels) CCDThickness() float64 {
	return v.voxelSize.MinComponent()
}

func (v *Voxels) CCDAngularThickness() float64 {
	return math.Pi / 2
}

func (v *Voxels) Clone() Shape {
	c := *v
	c.keys = append([]VoxelKey(nil), v.keys...)
	return &c
}

// Scale resizes the voxels. A negative component mirrors the grid.
func (v *Voxels) Scale(scale Vector, _ int) (Shape, error) {
	if scale.hasZero() {
		return nil, errors.Wrapf(collide.ErrUnscalableShape, "voxels by %v", scale)
	}
	keys := lo.Map(v.keys, func(k VoxelKey, _ int) VoxelKey {
		for axis := range k {
			if scale.At(axis) < 0 {
				k[axis] = -k[axis] - 1
			}
		}
		return k
	})
	return asShape(NewVoxels(v.voxelSize.MulComponents(scale).Abs(), keys))
}
