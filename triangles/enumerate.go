package triangles

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/trigon/boundary"
	"github.com/katalvlaran/trigon/collinear"
	"github.com/katalvlaran/trigon/dual"
	"github.com/katalvlaran/trigon/region"
)

// enumerator holds the state of one run: the derived structures (immutable)
// and the memoization set, created at search start and discarded with it.
type enumerator struct {
	graph *dual.Graph
	index *collinear.Index
	opts  Options
	res   *Result
	seen  map[string]bool // canonical IDSet key → already evaluated
	stack []region.IDSet  // frontier of subsets still to evaluate
}

// Enumerate finds every triangular merged region of the diagram described
// by the base regions and straight lines. Construction errors (malformed or
// overlapping faces) abort before enumeration begins; per-subset outcomes
// never raise. The result lists each triangular id-set exactly once, in a
// deterministic order, together with the grand total of their values.
func Enumerate(regions []region.Region, lines []region.Line, opts ...Option) (*Result, error) {
	// 1. Derive the immutable structures; fail fast on bad input.
	graph, err := dual.Build(regions)
	if err != nil {
		return nil, fmt.Errorf("triangles: %w", err)
	}
	index := collinear.NewIndex(lines)

	// 2. Apply options.
	eopts := DefaultOptions()
	for _, fn := range opts {
		fn(&eopts)
	}

	e := &enumerator{
		graph: graph,
		index: index,
		opts:  eopts,
		res:   &Result{Uncovered: uncovered(regions, index)},
		seen:  make(map[string]bool),
	}

	// 3. Seed the stack with every singleton, largest id first so the
	// explicit stack pops ascending ids (cosmetic; results are sorted).
	ids := graph.RegionIDs()
	for i := len(ids) - 1; i >= 0; i-- {
		e.stack = append(e.stack, region.NewIDSet(ids[i]))
	}

	// 4. Grow connected subsets, each evaluated exactly once.
	if err = e.run(); err != nil {
		return e.res, err
	}

	// 5. Deterministic output order: by subset size, then canonical key.
	sort.Slice(e.res.Triangles, func(i, j int) bool {
		a, b := e.res.Triangles[i], e.res.Triangles[j]
		if a.IDs.Len() != b.IDs.Len() {
			return a.IDs.Len() < b.IDs.Len()
		}

		return a.IDs.Key() < b.IDs.Key()
	})

	return e.res, nil
}

// uncovered collects boundary vertices no registered line mentions.
func uncovered(regions []region.Region, index *collinear.Index) []region.VertexID {
	missing := make(map[region.VertexID]bool)
	for _, r := range regions {
		for _, v := range r.Boundary() {
			if !index.Knows(v) {
				missing[v] = true
			}
		}
	}
	if len(missing) == 0 {
		return nil
	}
	out := make([]region.VertexID, 0, len(missing))
	for v := range missing {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// run drains the subset stack. Each popped id-set is evaluated once
// (memoized on its canonical key) and extended by every adjacent region.
func (e *enumerator) run() error {
	for len(e.stack) > 0 {
		// Cancellation check per subset.
		select {
		case <-e.opts.Ctx.Done():
			return e.opts.Ctx.Err()
		default:
		}

		subset := e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]

		key := subset.Key()
		if e.seen[key] {
			continue // reached again via a different growth order
		}
		e.seen[key] = true

		if err := e.evaluate(subset); err != nil {
			return err
		}
		e.extend(subset)
	}

	return nil
}

// evaluate composes the subset's outline and records it when triangular.
func (e *enumerator) evaluate(subset region.IDSet) error {
	members := make([]region.Region, 0, subset.Len())
	var value int64
	for _, id := range subset.Values() {
		r, _ := e.graph.Region(id)
		members = append(members, r)
		value += r.Value()
	}
	e.res.Examined++

	ring, err := boundary.Compose(members)
	if err != nil {
		if errors.Is(err, boundary.ErrNonSimple) {
			return nil // expected: holes and pinch points are simply skipped
		}

		return fmt.Errorf("triangles: compose %s: %w", subset, err)
	}

	corners := boundary.Corners(ring, e.index)
	if len(corners) != 3 {
		return nil
	}

	tri := Triangle{IDs: subset, Value: value, Outline: ring, Corners: corners}
	e.res.Triangles = append(e.res.Triangles, tri)
	e.res.Sum += value
	if e.opts.OnTriangle != nil {
		if err = e.opts.OnTriangle(tri); err != nil {
			return fmt.Errorf("triangles: OnTriangle hook for %s: %w", subset, err)
		}
	}

	return nil
}

// extend pushes every one-region extension of subset, honoring MaxRegions.
func (e *enumerator) extend(subset region.IDSet) {
	atCap := e.opts.MaxRegions >= 1 && subset.Len() >= e.opts.MaxRegions
	for _, id := range subset.Values() {
		for _, nb := range e.graph.Neighbors(id) {
			if subset.Contains(nb) {
				continue
			}
			if atCap {
				e.res.Truncated = true

				return
			}
			grown := subset.Add(nb)
			if !e.seen[grown.Key()] {
				e.stack = append(e.stack, grown)
			}
		}
	}
}
