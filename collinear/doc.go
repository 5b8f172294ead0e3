// Package collinear indexes the registered straight-line runs of a diagram
// and answers the single query the boundary-corner walk needs: given three
// vertices consecutive along a candidate outline, does the middle one lie
// strictly between the other two on a common straight line?
//
// What:
//
//   - Index: built once from []region.Line, immutable thereafter.
//   - Index.Between(a, b, c): true iff some registered line contains all
//     three vertices with b strictly between a and c in the line's
//     end-to-end order, traversed in either direction.
//
// Why:
//
//   - A merged region's outline is triangular iff, after dropping every
//     vertex that is Between its cyclic neighbors, exactly 3 corners remain.
//
// Semantics:
//
//   - Lines are a whitelist. A vertex absent from every line, or a triple
//     no single line covers, is simply not collinear — never an error.
//   - Endpoints are never "between": Between(1, 1, 4) and Between(8, 1, 10)
//     on the line ⟨1 8 10 4⟩ are both false; Between(1, 8, 10) is true.
//
// Complexity:
//
//   - NewIndex: O(total line vertices).
//   - Between: O(lines through b), effectively O(1) on puzzle inputs.
package collinear
