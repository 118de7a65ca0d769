package dim2

import (
	"math"

	"github.com/jakecoffman/collide"
	"github.com/jakecoffman/collide/partition"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// VoxelKey is the integer grid coordinate of a voxel.
type VoxelKey [2]int32

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
	if !(voxelSize.X > 0 && voxelSize.Y > 0) {
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
		return VoxelKey{
			int32(math.Floor(p.X / voxelSize.X)),
			int32(math.Floor(p.Y / voxelSize.Y)),
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
	mins := Vec(float64(k[0]), float64(k[1])).MulComponents(v.voxelSize)
	return NewAABB(mins, mins.Add(v.voxelSize))
}

// Voxel returns the box covered by voxel i.
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

// BVH returns the tree over the voxels. Voxels are not a composite shape: the
// tree only accelerates lookups.
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

func (v *Voxels) MassProperties(density float64) MassProperties {
	half := v.voxelSize.Mult(0.5)
	var mp MassProperties
	for _, k := range v.keys {
		cell := CuboidMassProperties(density, half)
		cell.LocalCOM = v.voxelAABB(k).Center()
		mp = mp.Add(cell)
	}
	return mp
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
		if scale.X < 0 {
			k[0] = -k[0] - 1
		}
		if scale.Y < 0 {
			k[1] = -k[1] - 1
		}
		return k
	})
	return asShape(NewVoxels(v.voxelSize.MulComponents(scale).Abs(), keys))
}
