// Package triangles defines the result and option types of the enumerator.
package triangles

import (
	"context"
	"strconv"

	"github.com/katalvlaran/trigon/boundary"
	"github.com/katalvlaran/trigon/region"
)

// Triangle is a merged region whose outline has exactly three straight
// sides. IDs names the base regions merged, Value is the sum of their
// values, Corners is the outline reduced to its three true corners.
type Triangle struct {
	// IDs is the sorted id-set of the constituent base regions.
	IDs region.IDSet

	// Value is the sum of the constituent base-region values.
	Value int64

	// Outline is the full composed boundary cycle of the union, every
	// vertex included, starting at the smallest vertex id.
	Outline boundary.Ring

	// Corners is the outline reduced to its three true corners, collinear
	// run vertices removed, starting at the smallest corner id.
	Corners boundary.Ring
}

// String renders the triangle as "({1,2} =11= 2 3 4)".
func (tr Triangle) String() string {
	return "(" + tr.IDs.String() + " =" + strconv.FormatInt(tr.Value, 10) + "= " + tr.Corners.String() + ")"
}

// Result captures the outcome of one enumeration run.
type Result struct {
	// Triangles lists every triangular merged region, sorted by id-set size
	// then by canonical key, so equal inputs produce identical listings.
	Triangles []Triangle

	// Sum is the grand total of Triangle.Value over Triangles.
	Sum int64

	// Examined counts the connected subsets evaluated (each exactly once).
	Examined int

	// Truncated reports that WithMaxRegions suppressed at least one
	// possible subset extension, so larger merged regions went unexplored.
	Truncated bool

	// Uncovered lists boundary vertices that appear on no registered
	// straight line, ascending. Such vertices are always corners; a
	// non-empty list usually means the line inventory is incomplete.
	// A diagnostic, never an error.
	Uncovered []region.VertexID
}

// Count reports the number of triangular regions found.
func (r *Result) Count() int { return len(r.Triangles) }

// Option configures optional behavior of Enumerate.
type Option func(*Options)

// Options holds configurable parameters for one enumeration run.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts enumeration with a partial Result.
	Ctx context.Context

	// MaxRegions, if positive, caps the number of base regions per subset.
	// Suppressed growth is reported via Result.Truncated, never silently.
	// Default is -1 (no limit).
	MaxRegions int

	// OnTriangle, if non-nil, is invoked for each triangular hit as it is
	// found. Returning an error aborts enumeration with that error.
	OnTriangle func(Triangle) error
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No subset-size limit (MaxRegions = -1)
//   - No hook
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		MaxRegions: -1,
		OnTriangle: nil,
	}
}

// WithContext returns an Option that sets the Context for enumeration.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxRegions returns an Option capping subset size at n base regions.
// Values below 1 mean no limit.
func WithMaxRegions(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.MaxRegions = n
		} else {
			o.MaxRegions = -1
		}
	}
}

// WithOnTriangle returns an Option installing fn as the per-hit hook.
func WithOnTriangle(fn func(Triangle) error) Option {
	return func(o *Options) {
		o.OnTriangle = fn
	}
}
