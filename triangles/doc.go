// Package triangles is trigon's entry point: it enumerates every connected
// subset of base regions exactly once, composes each union's outline, and
// collects the subsets whose outline has exactly three straight sides.
//
// Key features:
//   - Enumerate(regions, lines, opts...): one call from validated input to
//     the full result set, its grand total, and diagnostics
//   - Exactly-once: growth from every singleton along the face-adjacency
//     graph, memoized on the canonical sorted id-set key
//   - Hooks: OnTriangle fires per hit; an error aborts enumeration
//   - Limits: MaxRegions caps subset size and flags Result.Truncated
//   - Cancellation via context.Context, partial results preserved
//   - Diagnostics: Result.Examined subset count, Result.Uncovered vertices
//     missing from every straight line (a warning, never an error)
//
// Complexity:
//
//   - Worst case exponential in the number of base regions (the connected
//     subset family itself is exponential); puzzle instances are small.
//     Each subset costs O(total boundary edges) to compose and classify.
//
// Options:
//
//   - WithContext(ctx)      allows cancellation via context.Context.
//   - WithMaxRegions(n)     stops growing subsets beyond n members (>=1).
//   - WithOnTriangle(fn)    hook invoked for each triangular hit; error aborts.
//
// Errors:
//
//   - dual.ErrNoRegions, dual.ErrDuplicateRegion, dual.ErrOverlappingRegions
//     and region construction errors propagate before enumeration begins
//     (fail fast, nothing partial returned).
//   - context.Canceled / DeadlineExceeded if ctx is done (partial result).
//   - any error returned by the OnTriangle hook (partial result).
//
// Per-subset outcomes (non-simple unions, non-triangular outlines) are
// local decisions, never errors: the subset is simply not in the result.
package triangles
