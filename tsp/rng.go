// Package tsp - RNG utilities shared by the genetic operators.
//
// Policy:
//   - Every operator receives the *rand.Rand explicitly; nothing is seeded
//     from time or entropy inside the package.
//   - math/rand.Rand is NOT goroutine-safe. Do not share one across goroutines.
package tsp

import (
	"fmt"
	"math/rand"
)

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// requireRNG rejects a nil random source.
func requireRNG(method string, rng *rand.Rand) error {
	if rng == nil {
		return fmt.Errorf("%s: random source is required: %w", method, ErrInvalidConfig)
	}

	return nil
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// intBetween draws uniformly from the closed range [lo, hi]. Requires lo ≤ hi.
func intBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// bernoulli reports success with probability p (p==0 never, p==1 always).
func bernoulli(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}
