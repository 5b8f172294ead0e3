package dual_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trigon/dual"
	"github.com/katalvlaran/trigon/region"
)

// puzzleRegions builds the 9-face reference diagram: a triangle with apex 1
// and base corners 3 and 5, cut by four cevians.
func puzzleRegions(t *testing.T) []region.Region {
	t.Helper()
	specs := []struct {
		id       int
		value    int64
		boundary []region.VertexID
	}{
		{1, 8, []region.VertexID{2, 3, 9}},
		{2, 3, []region.VertexID{9, 3, 4}},
		{3, 5, []region.VertexID{1, 2, 8}},
		{4, 2, []region.VertexID{2, 9, 10, 8}},
		{5, 4, []region.VertexID{9, 4, 10}},
		{6, 8, []region.VertexID{1, 8, 7}},
		{7, 10, []region.VertexID{8, 10, 6, 7}},
		{8, 1, []region.VertexID{6, 10, 4}},
		{9, 9, []region.VertexID{6, 4, 5}},
	}
	regions := make([]region.Region, 0, len(specs))
	for _, s := range specs {
		r, err := region.NewBase(s.id, s.value, s.boundary)
		require.NoError(t, err)
		regions = append(regions, r)
	}

	return regions
}

func TestBuild_Errors(t *testing.T) {
	_, err := dual.Build(nil)
	assert.ErrorIs(t, err, dual.ErrNoRegions)

	a, err := region.NewBase(1, 1, []region.VertexID{1, 2, 3})
	require.NoError(t, err)
	b, err := region.NewBase(1, 2, []region.VertexID{4, 5, 6})
	require.NoError(t, err)
	_, err = dual.Build([]region.Region{a, b})
	assert.ErrorIs(t, err, dual.ErrDuplicateRegion)

	// Two faces tracing the same directed edge 1→2 overlap.
	c, err := region.NewBase(2, 2, []region.VertexID{1, 2, 4})
	require.NoError(t, err)
	_, err = dual.Build([]region.Region{a, c})
	assert.ErrorIs(t, err, dual.ErrOverlappingRegions)
}

// TestBuild_ReferenceAdjacency checks the full adjacency structure of the
// reference diagram, hand-derived from the shared directed edges.
func TestBuild_ReferenceAdjacency(t *testing.T) {
	g, err := dual.Build(puzzleRegions(t))
	require.NoError(t, err)

	assert.Equal(t, 9, g.Order())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, g.RegionIDs())

	want := map[int][]int{
		1: {2, 4},
		2: {1, 5},
		3: {4, 6},
		4: {1, 3, 5, 7},
		5: {2, 4, 8},
		6: {3, 7},
		7: {4, 6, 8},
		8: {5, 7, 9},
		9: {8},
	}
	for id, nbs := range want {
		assert.Equal(t, nbs, g.Neighbors(id), "neighbors of %d", id)
	}
}

// TestBuild_PointContactNotAdjacent: faces 2 and 4 meet only at vertex 9,
// faces 4 and 8 only at vertex 10 — neither pair may be adjacent.
func TestBuild_PointContactNotAdjacent(t *testing.T) {
	g, err := dual.Build(puzzleRegions(t))
	require.NoError(t, err)

	assert.NotContains(t, g.Neighbors(2), 4)
	assert.NotContains(t, g.Neighbors(4), 8)
	assert.Empty(t, g.SharedEdges(2, 4))
}

func TestSharedEdges(t *testing.T) {
	g, err := dual.Build(puzzleRegions(t))
	require.NoError(t, err)

	// Region 2 traces 4→9; region 5 traces the reverse 9→4.
	assert.Equal(t, []region.Edge{{From: 4, To: 9}}, g.SharedEdges(2, 5))
	// Argument order must not matter.
	assert.Equal(t, g.SharedEdges(2, 5), g.SharedEdges(5, 2))
}

func TestRegionLookup(t *testing.T) {
	g, err := dual.Build(puzzleRegions(t))
	require.NoError(t, err)

	r, ok := g.Region(3)
	require.True(t, ok)
	assert.Equal(t, int64(5), r.Value())

	_, ok = g.Region(42)
	assert.False(t, ok)
	assert.Empty(t, g.Neighbors(42))
}
