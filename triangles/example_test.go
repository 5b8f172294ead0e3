package triangles_test

import (
	"fmt"

	"github.com/katalvlaran/trigon/region"
	"github.com/katalvlaran/trigon/triangles"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Enumerate
////////////////////////////////////////////////////////////////////////////////

// ExampleEnumerate solves the worked 9-face puzzle: a big triangle with
// apex 1 and base corners 3 and 5, cut by four cevians into nine valued
// faces. Scenario:
//
//   - 9 base regions, each a list of boundary vertices in one consistent
//     rotational direction, each carrying a value
//   - 7 straight lines registered end-to-end
//   - Expect 22 triangular merged regions totalling 301
func ExampleEnumerate() {
	type face struct {
		id       int
		value    int64
		boundary []region.VertexID
	}
	faces := []face{
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
	var regions []region.Region
	for _, f := range faces {
		r, _ := region.NewBase(f.id, f.value, f.boundary)
		regions = append(regions, r)
	}

	var lines []region.Line
	for _, run := range [][]region.VertexID{
		{1, 2, 3}, {1, 8, 10, 4}, {1, 7, 6, 5}, {2, 8, 7},
		{3, 9, 10, 6}, {2, 9, 4}, {3, 4, 5},
	} {
		ln, _ := region.NewLine(run...)
		lines = append(lines, ln)
	}

	res, _ := triangles.Enumerate(regions, lines)
	fmt.Println("triangles:", res.Count())
	fmt.Println("total:", res.Sum)
	fmt.Println("smallest:", res.Triangles[0])
	fmt.Println("largest:", res.Triangles[res.Count()-1])

	// Output:
	// triangles: 22
	// total: 301
	// smallest: ({1} =8= 2 3 9)
	// largest: ({1,2,3,4,5,6,7,8,9} =50= 1 3 5)
}
