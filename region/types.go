// Package region declares the shared value types (VertexID, Edge, IDSet)
// and the sentinel errors raised during input validation.
package region

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// Sentinel errors for input construction.
var (
	// ErrBoundaryTooShort indicates a region boundary with fewer than 3 vertices.
	ErrBoundaryTooShort = errors.New("region: boundary must list at least 3 vertices")

	// ErrRepeatedVertex indicates a boundary or line listing the same vertex twice.
	ErrRepeatedVertex = errors.New("region: repeated vertex")

	// ErrLineTooShort indicates a straight line with fewer than 2 vertices.
	ErrLineTooShort = errors.New("region: line must list at least 2 vertices")
)

// VertexID labels a diagram vertex. It is opaque: only identity and the
// collinearity facts registered through Line carry meaning, never magnitude.
type VertexID int

// Edge is a directed boundary edge from one vertex to the next along a
// region's perimeter.
type Edge struct {
	From VertexID
	To   VertexID
}

// Reverse returns the same undirected edge traversed the opposite way.
func (e Edge) Reverse() Edge {
	return Edge{From: e.To, To: e.From}
}

// String renders the edge as "u→v".
func (e Edge) String() string {
	return strconv.Itoa(int(e.From)) + "→" + strconv.Itoa(int(e.To))
}

// IDSet is a sorted, immutable set of base-region ids. An IDSet names a
// (possibly merged) region: the singleton {3} is base region 3, the set
// {1,2,3} is the union of those three faces. Construct via NewIDSet, Add,
// or Union; never mutate the backing slice.
type IDSet struct {
	ids []int // sorted ascending, no duplicates
}

// NewIDSet builds an IDSet from the given ids, sorting and deduplicating.
// Complexity: O(n log n).
func NewIDSet(ids ...int) IDSet {
	sorted := make([]int, len(ids))
	copy(sorted, ids)
	sort.Ints(sorted)
	// Deduplicate in place.
	out := sorted[:0]
	for i, id := range sorted {
		if i > 0 && id == sorted[i-1] {
			continue
		}
		out = append(out, id)
	}

	return IDSet{ids: out}
}

// Len reports the number of ids in the set.
func (s IDSet) Len() int { return len(s.ids) }

// Values returns a copy of the sorted ids.
func (s IDSet) Values() []int {
	out := make([]int, len(s.ids))
	copy(out, s.ids)

	return out
}

// Contains reports whether id is a member. Complexity: O(log n).
func (s IDSet) Contains(id int) bool {
	i := sort.SearchInts(s.ids, id)

	return i < len(s.ids) && s.ids[i] == id
}

// Add returns a new IDSet with id included; s itself is unchanged.
func (s IDSet) Add(id int) IDSet {
	if s.Contains(id) {
		return s
	}

	return NewIDSet(append(s.Values(), id)...)
}

// Union returns the set union of s and other as a new IDSet.
func (s IDSet) Union(other IDSet) IDSet {
	return NewIDSet(append(s.Values(), other.ids...)...)
}

// Key returns the canonical comparable form "1,3,7". Two IDSets name the
// same region iff their Keys are equal; Key is the memoization key used
// during enumeration.
func (s IDSet) Key() string {
	var b strings.Builder
	for i, id := range s.ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}

	return b.String()
}

// String renders the set with braces: "{1,3,7}".
func (s IDSet) String() string {
	return "{" + s.Key() + "}"
}
