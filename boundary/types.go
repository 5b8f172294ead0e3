// Package boundary declares the Ring type and the sentinel errors of
// outline composition.
package boundary

import (
	"errors"
	"strconv"
	"strings"

	"github.com/katalvlaran/trigon/region"
)

// Sentinel errors for boundary composition.
var (
	// ErrNoRegions indicates Compose was called with an empty subset.
	ErrNoRegions = errors.New("boundary: no regions to compose")

	// ErrNonSimple indicates the union's outline is not one simple cycle:
	// the subset encloses a hole, pinches at a vertex, or splits into
	// several loops. Such a subset can never be a triangular region.
	ErrNonSimple = errors.New("boundary: union outline is not a single simple cycle")
)

// Ring is a cyclic vertex sequence tracing an outline once. Rings produced
// by this package start at their smallest VertexID for determinism.
type Ring []region.VertexID

// String renders the ring as "1 2 8".
func (r Ring) String() string {
	var b strings.Builder
	for i, v := range r {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(int(v)))
	}

	return b.String()
}

// rotateMin returns r rotated so its smallest vertex comes first.
// The input is returned unchanged when empty.
func rotateMin(r Ring) Ring {
	if len(r) == 0 {
		return r
	}
	at := 0
	for i, v := range r {
		if v < r[at] {
			at = i
		}
	}
	out := make(Ring, 0, len(r))
	out = append(out, r[at:]...)
	out = append(out, r[:at]...)

	return out
}
