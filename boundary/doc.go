// Package boundary turns a set of base regions into the outline of their
// union, and classifies that outline by its number of straight sides.
//
// What:
//
//   - Compose(regions): multiset-union every directed boundary edge, cancel
//     each (u,v)/(v,u) pair (one shared internal edge each), and stitch the
//     survivors into the union's outline. The survivors must form exactly
//     one simple directed cycle — every vertex the tail of one surviving
//     edge and the head of one, a single loop covering all survivors —
//     otherwise the union is not simply connected and ErrNonSimple is
//     returned.
//   - Corners(ring, idx): walk the cycle dropping every vertex that lies
//     strictly between its cyclic neighbors on a registered straight line,
//     repeating until stable. What survives are the true corners; the
//     outline has exactly as many sides as corners. A triangle is a ring
//     with exactly 3 corners.
//
// Why:
//
//   - Edge cancellation composes any connected face subset in one pass, with
//     no geometry: interior edges vanish pairwise because consistently
//     oriented faces trace a shared edge in opposite directions.
//
// Determinism:
//
//   - Rings are rotated to start at their smallest VertexID, so equal
//     outlines compare equal across runs.
//
// Errors:
//
//   - ErrNoRegions: Compose received an empty subset (caller bug).
//   - ErrNonSimple: the union has a hole, a pinch point, or several loops;
//     an expected, recoverable per-subset outcome, not a failure of input.
//
// Complexity:
//
//   - Compose: O(total boundary edges) time and memory.
//   - Corners: O(n²) worst case over the ring length; puzzle rings are tiny.
package boundary
