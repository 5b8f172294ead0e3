package boundary

import (
	"github.com/katalvlaran/trigon/collinear"
)

// Corners reduces an outline to its true corners: every vertex lying
// strictly between its cyclic neighbors on a registered straight line is
// interior to a side and dropped; the scan repeats until no vertex can be
// dropped, so runs longer than one removal collapse fully. The returned
// ring has exactly one entry per straight side of the outline; an outline
// is triangular iff 3 corners survive.
//
// Rings with fewer than 3 vertices cannot be triangular and are returned
// unwalked. The input ring is never mutated.
// Complexity: O(n²) worst case.
func Corners(ring Ring, idx *collinear.Index) Ring {
	cur := make(Ring, len(ring))
	copy(cur, ring)
	if len(cur) < 3 {
		return cur
	}

	// Fixpoint scan: dropping a vertex can make its former neighbors
	// collinear with each other, so restart after every removal.
	for changed := true; changed && len(cur) >= 3; {
		changed = false
		n := len(cur)
		for i := 0; i < n; i++ {
			prev := cur[(i+n-1)%n]
			next := cur[(i+1)%n]
			if idx.Between(prev, cur[i], next) {
				cur = append(cur[:i], cur[i+1:]...)
				changed = true

				break
			}
		}
	}

	return rotateMin(cur)
}
