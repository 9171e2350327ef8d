// rng.go - deterministic random sources for obstacle placement and relocation.
//
// Policy: seed == 0 means "use defaultSeed", never "use the clock". Callers that want
// a fresh layout per run pick their own seed and log it.
//
// math/rand.Rand is NOT goroutine-safe. Do not share one across goroutines.
package gridgraph

import "math/rand"

// defaultSeed is the fixed seed used when callers pass seed == 0.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand for the given seed.
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// sampleDistinct returns k distinct integers drawn uniformly from [0, n) using a
// partial Fisher–Yates shuffle. Requires 0 <= k <= n.
//
// Complexity: O(n) time and memory.
func sampleDistinct(rnd Rand, n, k int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rnd.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}

// takeRandom removes and returns a uniformly chosen element of s (swap-remove).
// s must be non-empty.
func takeRandom(rnd Rand, s []int) (int, []int) {
	i := rnd.Intn(len(s))
	v := s[i]
	last := len(s) - 1
	s[i] = s[last]
	return v, s[:last]
}
