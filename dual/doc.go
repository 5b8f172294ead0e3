// Package dual builds the face-adjacency graph of a planar diagram: one
// node per base region, and an edge between two regions iff they share a
// boundary edge (a directed edge of one face appears reversed in the other).
//
// What:
//
//   - Graph: immutable once built via Build([]region.Region).
//   - Neighbors(id): the regions edge-adjacent to id, ascending.
//   - SharedEdges(a, b): the directed boundary edges of a that b traverses
//     in reverse — exactly the edges the boundary compositor cancels.
//   - Region(id), RegionIDs(), Order(): base-region lookups.
//
// Why:
//
//   - Connected subsets of this graph are precisely the candidate merged
//     regions; the enumerator grows subsets along its edges.
//
// Semantics:
//
//   - Two faces touching at a single vertex share no boundary edge and are
//     NOT adjacent: unions must be edge-connected to stay simply connected.
//   - A directed edge with no reverse partner lies on the diagram's outer
//     boundary — normal, not an error.
//
// Errors:
//
//   - ErrNoRegions: Build received no regions.
//   - ErrDuplicateRegion: two base regions carry the same id.
//   - ErrOverlappingRegions: one directed edge traced by two regions, which
//     only happens when faces overlap or the diagram is non-planar; fatal.
//
// Complexity:
//
//   - Build: O(total boundary edges), Memory: O(regions + edges).
//   - Neighbors, SharedEdges, Region: O(1) map lookups.
package dual
