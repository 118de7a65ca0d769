package dim2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolylineMergeCollinear(t *testing.T) {
	open := must(NewPolyline([]Vector{Vec(0, 0), Vec(1, 0), Vec(2, 0), Vec(2, 1)}, nil))
	merged, err := open.MergeCollinear(0.1)
	require.NoError(t, err)
	assert.Equal(t, [][2]uint32{{0, 2}, {2, 3}}, merged.Indices())
	assert.Equal(t, open.LocalAABB(), merged.LocalAABB())

	// The loop starts in the middle of an edge, which is kept.
	square := []Vector{Vec(1, 0), Vec(2, 0), Vec(2, 2), Vec(0, 2), Vec(0, 0)}
	loop := must(NewPolyline(square, [][2]uint32{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}}))
	merged, err = loop.MergeCollinear(0.1)
	require.NoError(t, err)
	assert.Equal(t, [][2]uint32{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}}, merged.Indices())

	// Repeated vertices are dropped.
	dup := must(NewPolyline([]Vector{Vec(0, 0), Vec(1, 1), Vec(1, 1), Vec(2, 0)}, nil))
	merged, err = dup.MergeCollinear(0.1)
	require.NoError(t, err)
	assert.Equal(t, [][2]uint32{{0, 2}, {2, 3}}, merged.Indices())
}

func TestPolylineSimplify(t *testing.T) {
	flat := must(NewPolyline([]Vector{Vec(0, 0), Vec(1, 0.01), Vec(2, 0), Vec(3, 0.01), Vec(4, 0)}, nil))
	s, err := flat.Simplify(0.1)
	require.NoError(t, err)
	assert.Equal(t, [][2]uint32{{0, 4}}, s.Indices())

	peak := must(NewPolyline([]Vector{Vec(0, 0), Vec(1, 1.01), Vec(2, 2), Vec(3, 0.99), Vec(4, 0)}, nil))
	s, err = peak.Simplify(0.1)
	require.NoError(t, err)
	assert.Equal(t, [][2]uint32{{0, 2}, {2, 4}}, s.Indices())
	assert.Equal(t, peak.LocalAABB(), s.LocalAABB())

	circle := NewBall(10).ToPolyline(64)
	indices := make([][2]uint32, len(circle))
	for i := range circle {
		indices[i] = [2]uint32{uint32(i), uint32((i + 1) % len(circle))}
	}
	ring := must(NewPolyline(circle, indices))
	s, err = ring.Simplify(1)
	require.NoError(t, err)
	assert.Less(t, s.NumSegments(), ring.NumSegments())
	assert.GreaterOrEqual(t, s.NumSegments(), 3)
	first, last := s.Indices()[0], s.Indices()[s.NumSegments()-1]
	assert.Equal(t, first[0], last[1], "the ring stays closed")
	for i := 1; i < s.NumSegments(); i++ {
		assert.Equal(t, s.Indices()[i-1][1], s.Indices()[i][0])
	}
}

func TestPolylineSimplifyKeepsSeparateChains(t *testing.T) {
	p := must(NewPolyline([]Vector{Vec(0, 0), Vec(1, 0), Vec(2, 0), Vec(0, 5), Vec(1, 5), Vec(2, 5)},
		[][2]uint32{{0, 1}, {1, 2}, {3, 4}, {4, 5}}))
	s, err := p.Simplify(0.1)
	require.NoError(t, err)
	assert.Equal(t, [][2]uint32{{0, 2}, {3, 5}}, s.Indices())
}

func TestPolylineParts(t *testing.T) {
	p := must(NewPolyline([]Vector{Vec(0, 0), Vec(1, 0), Vec(1, 1), Vec(0, 1)}, [][2]uint32{{0, 1}, {2, 3}}))
	assert.Equal(t, 2, p.NumSegments())
	assert.Equal(t, 2, p.BVH().Len())

	var got []Segment
	for i := uint32(0); i < 3; i++ {
		p.MapPartAt(i, func(pos *Isometry, part Shape, nc NormalConstraints) {
			assert.Nil(t, pos)
			got = append(got, *part.(*Segment))
		})
	}
	assert.Equal(t, []Segment{p.Segment(0), p.Segment(1)}, got)
}
