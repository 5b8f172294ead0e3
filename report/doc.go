// Package report renders an enumeration result as a human-readable listing:
// every triangular merged region with its id-set, value, and corner walk,
// followed by the count and the grand total.
//
// The core packages never print; report is the hand-off surface for tooling
// that wants the classic puzzle write-up. Output goes to any io.Writer.
//
// Options:
//
//   - WithBaseRegions(rs)  prepends the base-region inventory.
//   - WithColor()          highlights headings and the grand total
//     (ANSI, via fatih/color; respects color.NoColor).
package report
