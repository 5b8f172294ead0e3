package boundary

import (
	"github.com/katalvlaran/trigon/region"
)

// Compose computes the outline of the union of the given regions by directed
// edge cancellation. The subset must be edge-connected for a meaningful
// result; connectivity itself is the enumerator's concern, and any subset
// whose survivors fail the simple-cycle check comes back as ErrNonSimple.
// Complexity: O(total boundary edges).
func Compose(regions []region.Region) (Ring, error) {
	if len(regions) == 0 {
		return nil, ErrNoRegions
	}

	// 1. Multiset union of every directed boundary edge.
	count := make(map[region.Edge]int)
	for _, r := range regions {
		for _, e := range r.Edges() {
			count[e]++
		}
	}

	// 2. Cancel (u,v)/(v,u) pairs: each is one internal edge of the union.
	succ := make(map[region.VertexID]region.VertexID)
	surviving := 0
	for e, c := range count {
		rc := count[e.Reverse()]
		if rc >= c {
			continue // fully cancelled (or handled from the other side)
		}
		// c-rc copies survive; more than one means a vertex repeats, which
		// the tail-uniqueness check below rejects.
		for i := 0; i < c-rc; i++ {
			if _, dup := succ[e.From]; dup {
				return nil, ErrNonSimple
			}
			succ[e.From] = e.To
			surviving++
		}
	}
	if surviving < 3 {
		return nil, ErrNonSimple
	}

	// 3. Walk the successor map from the smallest tail; one simple cycle
	// must consume every surviving edge before closing.
	start := region.VertexID(0)
	first := true
	for v := range succ {
		if first || v < start {
			start, first = v, false
		}
	}
	ring := make(Ring, 0, surviving)
	at := start
	for steps := 0; ; steps++ {
		if steps == surviving {
			return nil, ErrNonSimple // walk failed to close in time
		}
		ring = append(ring, at)
		at = succ[at]
		if at == start {
			break
		}
	}
	if len(ring) != surviving {
		return nil, ErrNonSimple // closed early: extra loops remain
	}

	return rotateMin(ring), nil
}
