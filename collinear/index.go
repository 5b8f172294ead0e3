package collinear

import (
	"github.com/katalvlaran/trigon/region"
)

// Index answers betweenness queries over the registered straight lines.
// It is immutable once built; concurrent readers are safe.
type Index struct {
	lines []region.Line
	// through maps each vertex to the indices (into lines) of every line
	// containing it, so Between only inspects lines through the middle vertex.
	through map[region.VertexID][]int
}

// NewIndex builds an Index from the given lines. Lines are assumed valid
// (constructed via region.NewLine); construction never fails.
// Complexity: O(sum of line lengths) time and memory.
func NewIndex(lines []region.Line) *Index {
	idx := &Index{
		lines:   make([]region.Line, len(lines)),
		through: make(map[region.VertexID][]int),
	}
	copy(idx.lines, lines)
	for i, ln := range idx.lines {
		for _, v := range ln.Vertices() {
			idx.through[v] = append(idx.through[v], i)
		}
	}

	return idx
}

// Lines reports how many straight lines are registered.
func (idx *Index) Lines() int { return len(idx.lines) }

// Knows reports whether v appears on at least one registered line. Vertices
// unknown to every line behave as corners in every query; Knows lets
// callers surface that as a diagnostic.
func (idx *Index) Knows(v region.VertexID) bool {
	return len(idx.through[v]) > 0
}

// Between reports whether b lies strictly between a and c on a common
// registered line, in either traversal direction. Vertices unknown to every
// line yield false. Complexity: O(lines through b).
func (idx *Index) Between(a, b, c region.VertexID) bool {
	if a == b || b == c || a == c {
		return false
	}
	for _, li := range idx.through[b] {
		ln := idx.lines[li]
		pa, ok := ln.Position(a)
		if !ok {
			continue
		}
		pc, ok := ln.Position(c)
		if !ok {
			continue
		}
		pb, _ := ln.Position(b)
		if (pa < pb && pb < pc) || (pc < pb && pb < pa) {
			return true
		}
	}

	return false
}
