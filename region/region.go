package region

import (
	"fmt"
	"strconv"
	"strings"
)

// Region is an atomic face of the diagram: the smallest unit carrying a
// value. Its boundary is a cyclic vertex sequence traced once; all base
// regions of one diagram must be traced in the same rotational direction so
// that a shared internal edge appears with opposite orientation in its two
// faces. A Region is immutable after construction.
type Region struct {
	ids   IDSet
	value int64
	ring  []VertexID
}

// NewBase constructs a base Region from its id, value, and boundary.
// The boundary must list at least 3 vertices (ErrBoundaryTooShort) and may
// not repeat one (ErrRepeatedVertex) — a repeated vertex would pinch the
// face into a non-simple loop. The boundary slice is copied.
// Complexity: O(n) time and memory over the boundary length.
func NewBase(id int, value int64, boundary []VertexID) (Region, error) {
	if len(boundary) < 3 {
		return Region{}, fmt.Errorf("region %d: %w (got %d)", id, ErrBoundaryTooShort, len(boundary))
	}
	seen := make(map[VertexID]struct{}, len(boundary))
	for _, v := range boundary {
		if _, dup := seen[v]; dup {
			return Region{}, fmt.Errorf("region %d: %w (vertex %d)", id, ErrRepeatedVertex, v)
		}
		seen[v] = struct{}{}
	}
	ring := make([]VertexID, len(boundary))
	copy(ring, boundary)

	return Region{ids: NewIDSet(id), value: value, ring: ring}, nil
}

// IDs returns the id-set naming this region (a singleton for base regions).
func (r Region) IDs() IDSet { return r.ids }

// BaseID returns the single id of a base region.
func (r Region) BaseID() int { return r.ids.ids[0] }

// Value returns the region's numeric value.
func (r Region) Value() int64 { return r.value }

// Boundary returns a copy of the cyclic boundary vertex sequence.
func (r Region) Boundary() []VertexID {
	out := make([]VertexID, len(r.ring))
	copy(out, r.ring)

	return out
}

// Edges returns the directed boundary edges, one per consecutive vertex
// pair including the closing last→first edge.
func (r Region) Edges() []Edge {
	n := len(r.ring)
	out := make([]Edge, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Edge{From: r.ring[i], To: r.ring[(i+1)%n]})
	}

	return out
}

// String renders the region as "({3} =5= 1 2 8)".
func (r Region) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(r.ids.String())
	b.WriteString(" =")
	b.WriteString(strconv.FormatInt(r.value, 10))
	b.WriteString("=")
	for _, v := range r.ring {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(int(v)))
	}
	b.WriteByte(')')

	return b.String()
}
