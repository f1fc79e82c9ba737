package tsp

import (
	"fmt"
	"math/rand"
)

// Crossover produces one child from p1 and p2 by order crossover.
//
// Steps:
//  1. Draw c1, c2 uniformly from 1..n-2 and swap them if c1 > c2, so the
//     first and last positions are never part of the kept segment.
//  2. Copy p1[c1..c2] (inclusive) into the same child positions.
//  3. Scan child positions 0..n-1 once; every empty slot receives the next
//     vertex of p2, in p2 order, that is not already in the child.
//
// For n < 3 there is no interior segment and the child is a copy of p2.
// If both parents start at the same vertex the child starts there too.
//
// Errors: ErrInvalidConfig for a nil rng, ErrInvalidInput when the parents
// differ in length or are not permutations of the same vertex set.
//
// Complexity: O(n) time, O(n) space.
func Crossover(rng *rand.Rand, p1, p2 Tour) (Tour, error) {
	if err := requireRNG(methodCrossover, rng); err != nil {
		return nil, err
	}
	if err := validateParents(p1, p2); err != nil {
		return nil, err
	}

	n := len(p1)
	if n < 3 {
		return orderCrossover(p1, p2, 1, 0), nil
	}

	var (
		c1 = intBetween(rng, 1, n-2)
		c2 = intBetween(rng, 1, n-2)
	)
	if c1 > c2 {
		c1, c2 = c2, c1
	}

	return orderCrossover(p1, p2, c1, c2), nil
}

// CrossoverAt is Crossover with explicit cut points. c1 and c2 must lie in
// 1..n-2; they are swapped when c1 > c2.
//
// Errors: ErrInvalidInput for invalid parents or cut points (including n < 3,
// where no interior cut exists).
func CrossoverAt(p1, p2 Tour, c1, c2 int) (Tour, error) {
	if err := validateParents(p1, p2); err != nil {
		return nil, err
	}
	n := len(p1)
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	if c1 < 1 || c2 > n-2 {
		return nil, fmt.Errorf("%s: cuts [%d,%d] outside [1,%d]: %w", methodCrossover, c1, c2, n-2, ErrInvalidInput)
	}

	return orderCrossover(p1, p2, c1, c2), nil
}

// orderCrossover assumes validated parents. An empty segment (c1 > c2)
// yields a copy of p2.
// Stage 1 (Execute): copy the p1 segment.
// Stage 2 (Execute): single fill pass from p2.
func orderCrossover(p1, p2 Tour, c1, c2 int) Tour {
	var (
		n      = len(p1)
		child  = make(Tour, n)
		used   = make([]bool, n) // vertex already placed
		filled = make([]bool, n) // child position already set
		i      int
		cursor int // read position in p2
	)

	// Stage 1: kept segment
	for i = c1; i <= c2; i++ {
		child[i] = p1[i]
		used[p1[i]] = true
		filled[i] = true
	}

	// Stage 2: empty slots and unused vertices are equal in number, so
	// cursor never runs past the end of p2.
	for i = 0; i < n; i++ {
		if filled[i] {
			continue
		}
		for used[p2[cursor]] {
			cursor++ // skip vertices from the segment
		}
		child[i] = p2[cursor]
		used[p2[cursor]] = true
		cursor++
	}

	return child
}

// validateParents requires two permutations of {0..n-1} of equal length.
func validateParents(p1, p2 Tour) error {
	if len(p1) != len(p2) {
		return fmt.Errorf("%s: parent lengths %d and %d differ: %w", methodCrossover, len(p1), len(p2), ErrInvalidInput)
	}
	if err := ValidatePermutation(p1, len(p1)); err != nil {
		return fmt.Errorf("%s: first parent: %w: %w", methodCrossover, ErrInvalidInput, err)
	}
	if err := ValidatePermutation(p2, len(p2)); err != nil {
		return fmt.Errorf("%s: second parent: %w: %w", methodCrossover, ErrInvalidInput, err)
	}

	return nil
}

// CrossoverPopulation recombines the disjoint pairs (0,1), (2,3), … of pop.
// Each pair gets one Bernoulli trial with probability prob. On success the
// order of the two parents is drawn uniformly and both children
// Crossover(a,b) and Crossover(b,a) replace them; otherwise the parents are
// copied through. The result always has len(pop) tours.
//
// Errors: ErrInvalidConfig for a nil rng, an odd or empty population, or
// prob ∉ [0,1]; crossover errors otherwise.
//
// Complexity: O(len(pop)·n).
func CrossoverPopulation(rng *rand.Rand, pop Population, prob float64) (Population, error) {
	if err := requireRNG(methodCrossPop, rng); err != nil {
		return nil, err
	}
	if len(pop) == 0 || len(pop)%2 != 0 {
		return nil, fmt.Errorf("%s: population size %d must be positive and even: %w", methodCrossPop, len(pop), ErrInvalidConfig)
	}
	if err := validateProbability(methodCrossPop, "crossover", prob); err != nil {
		return nil, err
	}

	var (
		next   = make(Population, 0, len(pop))
		a, b   int
		c1, c2 Tour
		err    error
	)
	for i := 0; i < len(pop); i += 2 {
		if !bernoulli(rng, prob) {
			next = append(next, pop[i].Clone(), pop[i+1].Clone())
			continue
		}

		a, b = i, i+1
		if rng.Intn(2) == 1 {
			a, b = b, a
		}
		if c1, err = Crossover(rng, pop[a], pop[b]); err != nil {
			return nil, fmt.Errorf("%s: pair %d: %w", methodCrossPop, i/2, err)
		}
		if c2, err = Crossover(rng, pop[b], pop[a]); err != nil {
			return nil, fmt.Errorf("%s: pair %d: %w", methodCrossPop, i/2, err)
		}
		next = append(next, c1, c2)
	}

	return next, nil
}
