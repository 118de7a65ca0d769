package dim2

import (
	"github.com/jakecoffman/collide"
	"github.com/jakecoffman/collide/partition"
	"github.com/samber/lo"
)

// buildBVH builds the tree of a composite shape whose part i is bounded by
// aabbs[i].
func buildBVH(kind collide.Kind, aabbs []AABB) *partition.BVH[AABB] {
	leaves := lo.Map(aabbs, func(bb AABB, i int) partition.Leaf[AABB] {
		return partition.Leaf[AABB]{Index: uint32(i), Volume: bb}
	})
	cfg := collide.Current().BVH
	tree := partition.Build(leaves, partition.Options{Bins: cfg.Bins, LeafSize: cfg.LeafSize})
	collide.Logger().Debug("built bvh",
		"kind", kind,
		"parts", len(aabbs),
		"nodes", tree.NodeCount(),
		"depth", tree.Depth(),
	)
	return tree
}

func rootAABB(tree *partition.BVH[AABB]) AABB {
	if bb, ok := tree.Root(); ok {
		return bb
	}
	return InvalidAABB()
}
