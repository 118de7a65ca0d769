// Package partition implements a static bounding volume hierarchy shared by
// the 2D and 3D shape packages.
package partition

import "math"

// Volume is a bounding volume usable as a BVH node bound.
type Volume[V any] interface {
	Merged(other V) V
	Intersects(other V) bool
	// Measure is the surface-area heuristic weight: perimeter in 2D, surface
	// area in 3D.
	Measure() float64
	// CenterAt returns the coordinate of the volume's center along axis.
	CenterAt(axis int) float64
	Dim() int
}

// Leaf pairs a part index with its bound.
type Leaf[V any] struct {
	Index  uint32
	Volume V
}

// Node is either an internal node with two children or a leaf holding a
// contiguous range of the tree's leaves.
type Node[V any] struct {
	Volume V
	// a and b index nodes; both are -1 for leaves.
	a, b int32
	// first and count describe the leaf range of a leaf node.
	first, count int32
}

func (n *Node[V]) IsLeaf() bool {
	return n.a < 0
}

// BVH is built once and never refit.
type BVH[V Volume[V]] struct {
	nodes  []Node[V]
	leaves []Leaf[V]
	// byIndex holds the leaves in insertion order.
	byIndex []Leaf[V]
}

// Options configure the binned builder.
type Options struct {
	Bins     int
	LeafSize int
}

func DefaultOptions() Options {
	return Options{Bins: 8, LeafSize: 1}
}

// Build constructs a tree from the given leaves using the binned surface-area
// heuristic. The input slice is not modified.
func Build[V Volume[V]](leaves []Leaf[V], opts Options) *BVH[V] {
	if opts.Bins < 2 {
		opts.Bins = DefaultOptions().Bins
	}
	if opts.LeafSize < 1 {
		opts.LeafSize = 1
	}

	tree := &BVH[V]{
		leaves:  append([]Leaf[V](nil), leaves...),
		byIndex: append([]Leaf[V](nil), leaves...),
	}
	if len(leaves) == 0 {
		return tree
	}

	b := &builder[V]{tree: tree, opts: opts, dim: leaves[0].Volume.Dim()}
	tree.nodes = make([]Node[V], 0, 2*len(leaves))
	b.build(0, len(leaves))
	return tree
}

// Len returns the number of leaves.
func (t *BVH[V]) Len() int {
	return len(t.byIndex)
}

// Leaves returns the leaves in the order they were supplied to Build.
func (t *BVH[V]) Leaves() []Leaf[V] {
	return t.byIndex
}

// Root returns the bound of the whole tree. It is false for an empty tree.
func (t *BVH[V]) Root() (V, bool) {
	if len(t.nodes) == 0 {
		var zero V
		return zero, false
	}
	return t.nodes[0].Volume, true
}

func (t *BVH[V]) NodeCount() int {
	return len(t.nodes)
}

// Depth returns the number of levels of the tree.
func (t *BVH[V]) Depth() int {
	if len(t.nodes) == 0 {
		return 0
	}
	return t.depth(0)
}

func (t *BVH[V]) depth(i int32) int {
	n := &t.nodes[i]
	if n.IsLeaf() {
		return 1
	}
	return 1 + max(t.depth(n.a), t.depth(n.b))
}

// Traverse walks the tree depth first. descend is called on every visited
// node bound and decides whether its subtree is explored; leaf is called for
// each leaf reached and stops the walk when it returns false.
func (t *BVH[V]) Traverse(descend func(V) bool, leaf func(Leaf[V]) bool) {
	if len(t.nodes) == 0 {
		return
	}

	stack := make([]int32, 0, 32)
	stack = append(stack, 0)
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.nodes[i]
		if !descend(n.Volume) {
			continue
		}
		if n.IsLeaf() {
			for _, l := range t.leaves[n.first : n.first+n.count] {
				if !leaf(l) {
					return
				}
			}
			continue
		}
		stack = append(stack, n.b, n.a)
	}
}

// Intersecting calls f with the index of every leaf whose bound intersects v.
func (t *BVH[V]) Intersecting(v V, f func(index uint32) bool) {
	t.Traverse(
		func(bound V) bool { return bound.Intersects(v) },
		func(l Leaf[V]) bool {
			if l.Volume.Intersects(v) {
				return f(l.Index)
			}
			return true
		},
	)
}

type builder[V Volume[V]] struct {
	tree *BVH[V]
	opts Options
	dim  int
}

type bin[V any] struct {
	count  int
	volume V
}

func (b *builder[V]) bound(first, count int) V {
	leaves := b.tree.leaves[first : first+count]
	v := leaves[0].Volume
	for _, l := range leaves[1:] {
		v = v.Merged(l.Volume)
	}
	return v
}

func (b *builder[V]) build(first, count int) int32 {
	idx := int32(len(b.tree.nodes))
	b.tree.nodes = append(b.tree.nodes, Node[V]{
		Volume: b.bound(first, count),
		a:      -1,
		b:      -1,
		first:  int32(first),
		count:  int32(count),
	})

	if count <= b.opts.LeafSize {
		return idx
	}

	mid := b.split(first, count)
	left := b.build(first, mid-first)
	right := b.build(mid, first+count-mid)

	n := &b.tree.nodes[idx]
	n.a, n.b = left, right
	n.first, n.count = 0, 0
	return idx
}

// split partitions the leaf range in place and returns the first index of the
// right half. The right half is never empty.
func (b *builder[V]) split(first, count int) int {
	leaves := b.tree.leaves[first : first+count]
	nbins := b.opts.Bins

	bestCost := math.Inf(1)
	bestAxis, bestBin := -1, 0
	var bestMin, bestScale float64

	for axis := 0; axis < b.dim; axis++ {
		cmin, cmax := math.Inf(1), math.Inf(-1)
		for _, l := range leaves {
			c := l.Volume.CenterAt(axis)
			cmin = math.Min(cmin, c)
			cmax = math.Max(cmax, c)
		}
		if cmax-cmin <= 1e-12 {
			continue
		}
		scale := float64(nbins) / (cmax - cmin)

		bins := make([]bin[V], nbins)
		for _, l := range leaves {
			i := binIndex(l.Volume.CenterAt(axis), cmin, scale, nbins)
			if bins[i].count == 0 {
				bins[i].volume = l.Volume
			} else {
				bins[i].volume = bins[i].volume.Merged(l.Volume)
			}
			bins[i].count++
		}

		// Sweep from the right to accumulate the cost of every suffix.
		rightCost := make([]float64, nbins)
		var acc V
		accCount := 0
		for i := nbins - 1; i > 0; i-- {
			if bins[i].count > 0 {
				if accCount == 0 {
					acc = bins[i].volume
				} else {
					acc = acc.Merged(bins[i].volume)
				}
				accCount += bins[i].count
			}
			if accCount > 0 {
				rightCost[i] = acc.Measure() * float64(accCount)
			}
		}

		accCount = 0
		for i := 0; i < nbins-1; i++ {
			if bins[i].count > 0 {
				if accCount == 0 {
					acc = bins[i].volume
				} else {
					acc = acc.Merged(bins[i].volume)
				}
				accCount += bins[i].count
			}
			if accCount == 0 || accCount == count {
				continue
			}
			cost := acc.Measure()*float64(accCount) + rightCost[i+1]
			if cost < bestCost {
				bestCost = cost
				bestAxis = axis
				bestBin = i
				bestMin = cmin
				bestScale = scale
			}
		}
	}

	if bestAxis < 0 {
		// Every center coincides: split the range in half.
		return first + count/2
	}

	head, tail := 0, len(leaves)-1
	for head <= tail {
		if binIndex(leaves[head].Volume.CenterAt(bestAxis), bestMin, bestScale, nbins) <= bestBin {
			head++
		} else {
			leaves[head], leaves[tail] = leaves[tail], leaves[head]
			tail--
		}
	}
	if head == 0 || head == len(leaves) {
		return first + count/2
	}
	return first + head
}

func binIndex(c, cmin, scale float64, nbins int) int {
	i := int((c - cmin) * scale)
	if i >= nbins {
		i = nbins - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
