package partition

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type box struct {
	min, max [2]float64
}

func (a box) Merged(b box) box {
	return box{
		min: [2]float64{math.Min(a.min[0], b.min[0]), math.Min(a.min[1], b.min[1])},
		max: [2]float64{math.Max(a.max[0], b.max[0]), math.Max(a.max[1], b.max[1])},
	}
}

func (a box) Intersects(b box) bool {
	return a.min[0] <= b.max[0] && b.min[0] <= a.max[0] && a.min[1] <= b.max[1] && b.min[1] <= a.max[1]
}

func (a box) Measure() float64 {
	return 2 * ((a.max[0] - a.min[0]) + (a.max[1] - a.min[1]))
}

func (a box) CenterAt(axis int) float64 {
	return (a.min[axis] + a.max[axis]) / 2
}

func (box) Dim() int { return 2 }

func unitBox(x, y float64) box {
	return box{min: [2]float64{x, y}, max: [2]float64{x + 1, y + 1}}
}

func gridLeaves(n int) []Leaf[box] {
	var leaves []Leaf[box]
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			leaves = append(leaves, Leaf[box]{
				Index:  uint32(len(leaves)),
				Volume: unitBox(float64(i)*2, float64(j)*2),
			})
		}
	}
	return leaves
}

func TestBuildEmpty(t *testing.T) {
	tree := Build[box](nil, DefaultOptions())
	_, ok := tree.Root()
	assert.False(t, ok)
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 0, tree.Depth())

	called := false
	tree.Traverse(func(box) bool { return true }, func(Leaf[box]) bool { called = true; return true })
	assert.False(t, called)
}

func TestBuildSingle(t *testing.T) {
	tree := Build([]Leaf[box]{{Index: 0, Volume: unitBox(0, 0)}}, DefaultOptions())
	root, ok := tree.Root()
	require.True(t, ok)
	assert.Equal(t, unitBox(0, 0), root)
	assert.Equal(t, 1, tree.NodeCount())
	assert.Equal(t, 1, tree.Depth())
}

func TestLeavesCoverInput(t *testing.T) {
	leaves := gridLeaves(7)
	tree := Build(leaves, Options{Bins: 4, LeafSize: 1})

	assert.Equal(t, leaves, tree.Leaves())

	var seen []int
	tree.Traverse(func(box) bool { return true }, func(l Leaf[box]) bool {
		assert.Equal(t, leaves[l.Index].Volume, l.Volume)
		seen = append(seen, int(l.Index))
		return true
	})
	sort.Ints(seen)
	require.Len(t, seen, len(leaves))
	for i, idx := range seen {
		assert.Equal(t, i, idx)
	}

	assert.Equal(t, 2*len(leaves)-1, tree.NodeCount())
	assert.Less(t, tree.Depth(), len(leaves))
}

func TestRootBoundsAllLeaves(t *testing.T) {
	leaves := gridLeaves(5)
	tree := Build(leaves, DefaultOptions())
	root, ok := tree.Root()
	require.True(t, ok)
	assert.Equal(t, [2]float64{0, 0}, root.min)
	assert.Equal(t, [2]float64{9, 9}, root.max)
}

func TestCoincidentCenters(t *testing.T) {
	var leaves []Leaf[box]
	for i := 0; i < 9; i++ {
		leaves = append(leaves, Leaf[box]{Index: uint32(i), Volume: unitBox(0, 0)})
	}
	tree := Build(leaves, DefaultOptions())
	assert.Equal(t, 17, tree.NodeCount())

	count := 0
	tree.Intersecting(unitBox(0.5, 0.5), func(uint32) bool { count++; return true })
	assert.Equal(t, 9, count)
}

func TestIntersecting(t *testing.T) {
	leaves := gridLeaves(6)
	tree := Build(leaves, Options{Bins: 8, LeafSize: 2})

	query := box{min: [2]float64{1.5, 1.5}, max: [2]float64{2.5, 2.5}}
	var hits []uint32
	tree.Intersecting(query, func(i uint32) bool {
		hits = append(hits, i)
		return true
	})

	var want []uint32
	for _, l := range leaves {
		if l.Volume.Intersects(query) {
			want = append(want, l.Index)
		}
	}
	assert.ElementsMatch(t, want, hits)
}

func TestTraverseStops(t *testing.T) {
	tree := Build(gridLeaves(4), DefaultOptions())
	count := 0
	tree.Traverse(func(box) bool { return true }, func(Leaf[box]) bool {
		count++
		return count < 3
	})
	assert.Equal(t, 3, count)
}
