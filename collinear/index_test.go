package collinear_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trigon/collinear"
	"github.com/katalvlaran/trigon/region"
)

// buildIndex constructs an Index over the given vertex runs, failing the
// test on malformed input.
func buildIndex(t *testing.T, runs ...[]region.VertexID) *collinear.Index {
	t.Helper()
	lines := make([]region.Line, 0, len(runs))
	for _, run := range runs {
		ln, err := region.NewLine(run...)
		require.NoError(t, err)
		lines = append(lines, ln)
	}

	return collinear.NewIndex(lines)
}

// TestBetween covers forward and reversed traversal, endpoints, gaps, and
// vertices unknown to every line.
func TestBetween(t *testing.T) {
	idx := buildIndex(t,
		[]region.VertexID{1, 8, 10, 4},
		[]region.VertexID{3, 9, 10, 6},
	)

	cases := []struct {
		name    string
		a, b, c region.VertexID
		want    bool
	}{
		{"ForwardAdjacent", 1, 8, 10, true},
		{"ReversedAdjacent", 10, 8, 1, true},
		{"SpanningRun", 1, 8, 4, true},     // 8 between the line's ends
		{"MiddlePair", 8, 10, 4, true},     // second line vertex also works
		{"SecondLine", 3, 9, 10, true},     // query resolved via another line
		{"EndpointNotBetween", 8, 1, 10, false},
		{"OutOfOrder", 8, 4, 10, false},    // 4 is past 10, not between 8 and 10
		{"CrossLineTriple", 1, 10, 6, false}, // 1 and 6 never share a line with 10 between
		{"UnknownVertex", 1, 99, 4, false},
		{"DegenerateRepeat", 1, 1, 4, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := idx.Between(tc.a, tc.b, tc.c); got != tc.want {
				t.Errorf("Between(%d,%d,%d) = %v; want %v", tc.a, tc.b, tc.c, got, tc.want)
			}
		})
	}
}

func TestIndex_Knows(t *testing.T) {
	idx := buildIndex(t, []region.VertexID{1, 2, 3})
	require.True(t, idx.Knows(2))
	require.False(t, idx.Knows(9))
}

func TestIndex_Lines(t *testing.T) {
	idx := buildIndex(t, []region.VertexID{1, 2, 3})
	require.Equal(t, 1, idx.Lines())

	empty := collinear.NewIndex(nil)
	require.Equal(t, 0, empty.Lines())
	require.False(t, empty.Between(1, 2, 3))
}
