package tsp

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/gatsp/matrix"
)

// InitPopulation returns size independent random tours over n vertices.
// Each tour is the identity permutation with start swapped into position 0,
// then positions 1..n-1 shuffled uniformly.
//
// Errors: ErrInvalidConfig if rng is nil, size ≤ 0, n < 2 or start ∉ [0,n).
//
// Complexity: O(size·n).
func InitPopulation(rng *rand.Rand, size, n, start int) (Population, error) {
	if err := requireRNG(methodInit, rng); err != nil {
		return nil, err
	}
	switch {
	case size <= 0:
		return nil, fmt.Errorf("%s: size %d ≤ 0: %w", methodInit, size, ErrInvalidConfig)
	case n < minVertices:
		return nil, fmt.Errorf("%s: %d vertices, need at least %d: %w", methodInit, n, minVertices, ErrInvalidConfig)
	case start < 0 || start >= n:
		return nil, fmt.Errorf("%s: start %d outside [0,%d): %w", methodInit, start, n, ErrInvalidConfig)
	}

	pop := make(Population, size)
	for k := range pop {
		t := make(Tour, n)
		for i := range t {
			t[i] = i
		}
		t[0], t[start] = t[start], t[0]
		shuffleIntsInPlace(t[1:], rng)
		pop[k] = t
	}

	return pop, nil
}

// Best returns a copy of the lightest tour of pop and its weight; ties go to
// the earliest individual.
//
// Errors: ErrInvalidConfig for an empty population, plus those of Weight.
//
// Complexity: O(len(pop)·n).
func Best(dist matrix.Matrix, pop Population) (Tour, float64, error) {
	n, err := matrixOrder(methodBest, dist)
	if err != nil {
		return nil, 0, err
	}
	if len(pop) == 0 {
		return nil, 0, fmt.Errorf("%s: empty population: %w", methodBest, ErrInvalidConfig)
	}
	ws, err := populationWeights(dist, pop, n)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", methodBest, err)
	}
	idx := floats.MinIdx(ws)

	return pop[idx].Clone(), ws[idx], nil
}
