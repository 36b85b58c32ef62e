package generator

import (
	"math/rand"
	"sort"
)

// WeightedIndex draws an index with probability proportional to weights[i]
// using one uniform draw over the cumulative weights. Non-positive weights are
// never drawn. It returns -1 when no weight is positive.
//
// Complexity: O(n) time, O(n) space.
func WeightedIndex(rng *rand.Rand, weights []float64) int {
	cum := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		if w > 0 {
			total += w
		}
		cum[i] = total
	}
	if total <= 0 {
		return -1
	}
	x := rng.Float64() * total
	i := sort.Search(len(cum), func(i int) bool { return cum[i] > x })
	if i == len(cum) {
		// x reaches total only through float error; take the last drawable.
		i = len(cum) - 1
		for i > 0 && cum[i] == cum[i-1] {
			i--
		}
	}
	return i
}
