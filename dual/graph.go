package dual

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/trigon/region"
)

// Sentinel errors for dual-graph construction.
var (
	// ErrNoRegions indicates Build was called with an empty region set.
	ErrNoRegions = errors.New("dual: no base regions supplied")

	// ErrDuplicateRegion indicates two base regions share an id.
	ErrDuplicateRegion = errors.New("dual: duplicate base region id")

	// ErrOverlappingRegions indicates one directed boundary edge is traced
	// by two regions: the input faces overlap or the diagram is non-planar.
	ErrOverlappingRegions = errors.New("dual: directed edge owned by two regions")
)

// pair is an unordered region-id pair, stored low-id first.
type pair struct {
	lo, hi int
}

func pairOf(a, b int) pair {
	if a > b {
		a, b = b, a
	}

	return pair{lo: a, hi: b}
}

// Graph is the face-adjacency graph of one diagram. Immutable once built.
type Graph struct {
	regions map[int]region.Region
	adj     map[int][]int              // region id → neighbor ids, ascending
	shared  map[pair][]region.Edge     // unordered pair → shared edges, as traced by the lower id
}

// Build constructs the Graph from the base regions. Each directed boundary
// edge may be traced by at most one region; two regions are adjacent iff one
// traces (u,v) and the other traces (v,u). Returns ErrNoRegions,
// ErrDuplicateRegion, or ErrOverlappingRegions on malformed input.
// Complexity: O(total boundary edges).
func Build(regions []region.Region) (*Graph, error) {
	if len(regions) == 0 {
		return nil, ErrNoRegions
	}

	g := &Graph{
		regions: make(map[int]region.Region, len(regions)),
		adj:     make(map[int][]int, len(regions)),
		shared:  make(map[pair][]region.Edge),
	}

	// 1. Register regions and claim directed edges.
	owner := make(map[region.Edge]int)
	for _, r := range regions {
		id := r.BaseID()
		if _, dup := g.regions[id]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateRegion, id)
		}
		g.regions[id] = r
		for _, e := range r.Edges() {
			if prev, claimed := owner[e]; claimed {
				return nil, fmt.Errorf("%w: edge %s in regions %d and %d", ErrOverlappingRegions, e, prev, id)
			}
			owner[e] = id
		}
	}

	// 2. Pair each directed edge with its reverse to discover adjacency.
	seen := make(map[pair]bool)
	for e, a := range owner {
		b, ok := owner[e.Reverse()]
		if !ok {
			continue // outer boundary of the whole diagram
		}
		p := pairOf(a, b)
		// Record the edge as traced by the lower-id region.
		if a == p.lo {
			g.shared[p] = append(g.shared[p], e)
		}
		if !seen[p] {
			seen[p] = true
			g.adj[p.lo] = append(g.adj[p.lo], p.hi)
			g.adj[p.hi] = append(g.adj[p.hi], p.lo)
		}
	}
	for id := range g.adj {
		sort.Ints(g.adj[id])
	}
	// Map iteration above is unordered; fix a deterministic edge order.
	for p := range g.shared {
		es := g.shared[p]
		sort.Slice(es, func(i, j int) bool {
			if es[i].From != es[j].From {
				return es[i].From < es[j].From
			}

			return es[i].To < es[j].To
		})
	}

	return g, nil
}

// Order reports the number of base regions.
func (g *Graph) Order() int { return len(g.regions) }

// Region returns the base region with the given id.
func (g *Graph) Region(id int) (region.Region, bool) {
	r, ok := g.regions[id]

	return r, ok
}

// RegionIDs returns all base-region ids in ascending order.
func (g *Graph) RegionIDs() []int {
	ids := make([]int, 0, len(g.regions))
	for id := range g.regions {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Neighbors returns the ids of regions edge-adjacent to id, ascending.
// Unknown ids have no neighbors.
func (g *Graph) Neighbors(id int) []int {
	nbs := g.adj[id]
	out := make([]int, len(nbs))
	copy(out, nbs)

	return out
}

// SharedEdges returns the boundary edges shared by regions a and b, oriented
// as the lower-id region traces them. Empty when the two are not adjacent.
func (g *Graph) SharedEdges(a, b int) []region.Edge {
	es := g.shared[pairOf(a, b)]
	out := make([]region.Edge, len(es))
	copy(out, es)

	return out
}
