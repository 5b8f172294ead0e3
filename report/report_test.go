package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trigon/region"
	"github.com/katalvlaran/trigon/report"
	"github.com/katalvlaran/trigon/triangles"
)

// smallPuzzle is a triangle 1,3,5 with one cevian 3–9 from corner 3 to the
// opposite side, split into two faces; both faces and their union are
// triangular.
func smallPuzzle(t *testing.T) ([]region.Region, []region.Line) {
	t.Helper()
	a, err := region.NewBase(1, 8, []region.VertexID{1, 3, 9})
	require.NoError(t, err)
	b, err := region.NewBase(2, 3, []region.VertexID{9, 3, 5})
	require.NoError(t, err)
	ln, err := region.NewLine(1, 9, 5)
	require.NoError(t, err)

	return []region.Region{a, b}, []region.Line{ln}
}

func TestWrite_Listing(t *testing.T) {
	regions, lines := smallPuzzle(t)
	res, err := triangles.Enumerate(regions, lines)
	require.NoError(t, err)
	require.Equal(t, 3, res.Count())

	var sb strings.Builder
	require.NoError(t, report.Write(&sb, res, report.WithBaseRegions(regions)))
	out := sb.String()

	assert.Contains(t, out, "Base regions (count = 2)")
	assert.Contains(t, out, "({1} =8= 1 3 9)")
	assert.Contains(t, out, "Triangular regions (count = 3)")
	assert.Contains(t, out, "({1,2} =11= 1 3 5)")
	assert.Contains(t, out, "Sum of all triangular region values = 22")
	assert.NotContains(t, out, "search truncated")
}

func TestWrite_Truncated(t *testing.T) {
	regions, lines := smallPuzzle(t)
	res, err := triangles.Enumerate(regions, lines, triangles.WithMaxRegions(1))
	require.NoError(t, err)
	require.True(t, res.Truncated)

	var sb strings.Builder
	require.NoError(t, report.Write(&sb, res))
	assert.Contains(t, sb.String(), "search truncated")
}

// TestWrite_Color: the highlighted listing still carries the same text.
func TestWrite_Color(t *testing.T) {
	regions, lines := smallPuzzle(t)
	res, err := triangles.Enumerate(regions, lines)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, report.Write(&sb, res, report.WithColor()))
	assert.Contains(t, sb.String(), "Sum of all triangular region values = 22")
}
