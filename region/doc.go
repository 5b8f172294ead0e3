// Package region defines the immutable input model for trigon:
// vertices, directed boundary edges, straight-line runs, valued base
// regions, and the sorted id-sets that identify merged regions.
//
// What:
//
//   - VertexID: an opaque integer label; no coordinates exist anywhere.
//   - Edge: a directed vertex pair (u→v); Reverse() flips it.
//   - IDSet: a sorted, immutable set of base-region ids with a canonical
//     string Key, usable as a map key regardless of set size.
//   - Region: a base face — singleton id, numeric value, and a cyclic
//     boundary traced once in a consistent orientation.
//   - Line: an ordered run of vertices known to lie on one straight line.
//
// Why:
//
//   - Every higher package (collinear, dual, boundary, triangles) consumes
//     exactly these types; validation happens once, here, at construction.
//
// Invariants:
//
//   - A Region boundary has ≥3 vertices and never repeats one, so each
//     undirected pair appears at most once per orientation.
//   - A Line has ≥2 distinct vertices listed from one end to the other.
//   - Nothing in this package is mutated after construction; accessors
//     return copies.
//
// Errors:
//
//   - ErrBoundaryTooShort: a boundary with fewer than 3 vertices.
//   - ErrRepeatedVertex: a boundary or line listing a vertex twice.
//   - ErrLineTooShort: a line with fewer than 2 vertices.
package region
