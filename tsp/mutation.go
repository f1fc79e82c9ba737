package tsp

import (
	"fmt"
	"math/rand"
)

// Mutate swaps the values at two distinct positions drawn uniformly from
// 1..n-2, in place. The first and last positions never move. Tours with
// fewer than four vertices have fewer than two interior positions and are
// left unchanged.
//
// Errors: ErrInvalidConfig for a nil rng.
//
// Complexity: O(1).
func Mutate(rng *rand.Rand, t Tour) error {
	if err := requireRNG(methodMutate, rng); err != nil {
		return err
	}

	interior := len(t) - 2
	if interior < 2 {
		return nil
	}

	var (
		i = intBetween(rng, 1, interior)
		j = intBetween(rng, 1, interior-1)
	)
	// Map j onto 1..interior without i, keeping the pair uniform.
	if j >= i {
		j++
	}
	t[i], t[j] = t[j], t[i]

	return nil
}

// MutatePopulation mutates each tour of pop in place with probability rate
// (one Bernoulli trial per individual) and returns how many were mutated.
//
// Errors: ErrInvalidConfig for a nil rng or rate ∉ [0,1].
//
// Complexity: O(len(pop)).
func MutatePopulation(rng *rand.Rand, pop Population, rate float64) (int, error) {
	if err := requireRNG(methodMutatePop, rng); err != nil {
		return 0, err
	}
	if err := validateProbability(methodMutatePop, "mutation", rate); err != nil {
		return 0, err
	}

	mutated := 0
	for _, t := range pop {
		if !bernoulli(rng, rate) {
			continue
		}
		if err := Mutate(rng, t); err != nil {
			return mutated, fmt.Errorf("%s: %w", methodMutatePop, err)
		}
		mutated++
	}

	return mutated, nil
}
