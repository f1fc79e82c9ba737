package tsp

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gatsp/matrix"
)

// TournamentSelect builds a population of the same size as pop. For every
// output slot it draws k individuals uniformly with replacement and keeps the
// lightest one (the first drawn wins ties). Duplicates are expected.
//
// Output tours are copies; mutating them never touches pop. k may exceed
// len(pop).
//
// Errors: ErrInvalidConfig if rng is nil, k < 1 or pop is empty; matrix and
// tour errors as in Weight.
//
// Stage 1 (Validate): rng, k and pop; dist square.
// Stage 2 (Prepare): evaluate every tour once.
// Stage 3 (Execute): run one k-draw tournament per output slot.
//
// Complexity: O(len(pop)·(n + k)).
func TournamentSelect(rng *rand.Rand, dist matrix.Matrix, pop Population, k int) (Population, error) {
	if err := requireRNG(methodSelect, rng); err != nil {
		return nil, err
	}
	if k < 1 {
		return nil, fmt.Errorf("%s: tournament size %d < 1: %w", methodSelect, k, ErrInvalidConfig)
	}
	if len(pop) == 0 {
		return nil, fmt.Errorf("%s: empty population: %w", methodSelect, ErrInvalidConfig)
	}
	n, err := matrixOrder(methodSelect, dist)
	if err != nil {
		return nil, err
	}

	// Stage 2: weights live for this call only.
	ws, err := populationWeights(dist, pop, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSelect, err)
	}

	var (
		size = len(pop)              // population size
		out  = make(Population, size) // selected copies
		best int                      // current tournament winner
		cand int                      // current contender
		i, j int
	)
	for i = 0; i < size; i++ {
		best = rng.Intn(size)
		for j = 1; j < k; j++ {
			cand = rng.Intn(size)
			if ws[cand] < ws[best] {
				best = cand // strict: earlier draw keeps ties
			}
		}
		out[i] = pop[best].Clone()
	}

	return out, nil
}
