package tsp

import "fmt"

const minVertices = 2

// Method tags used in error context.
const (
	methodWeight     = "Weight"
	methodInit       = "InitPopulation"
	methodSelect     = "TournamentSelect"
	methodCrossover  = "Crossover"
	methodCrossPop   = "CrossoverPopulation"
	methodMutate     = "Mutate"
	methodMutatePop  = "MutatePopulation"
	methodEngine     = "Engine"
	methodBest       = "Best"
	methodSummarize  = "Summarize"
	methodValidation = "ValidatePopulation"
)

// ValidatePermutation checks that t is a permutation of {0..n-1} of length n.
// Every failure wraps ErrInvalidTour.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(t Tour, n int) error {
	if n <= 0 || len(t) != n {
		return fmt.Errorf("tour length %d, want %d: %w", len(t), n, ErrInvalidTour)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = t[i]
		if v < 0 || v >= n {
			return fmt.Errorf("tour[%d]=%d outside [0,%d): %w", i, v, n, ErrInvalidTour)
		}
		if seen[v] {
			return fmt.Errorf("tour[%d]=%d repeated: %w", i, v, ErrInvalidTour)
		}
		seen[v] = true
	}

	return nil
}

// ValidatePopulation checks that pop has exactly size tours, each a
// permutation of {0..n-1}. Tour failures wrap ErrInvalidTour; a size
// mismatch wraps ErrInvalidConfig.
//
// Complexity: O(size·n).
func ValidatePopulation(pop Population, n, size int) error {
	if len(pop) != size {
		return fmt.Errorf("%s: population size %d, want %d: %w", methodValidation, len(pop), size, ErrInvalidConfig)
	}
	for i, t := range pop {
		if err := ValidatePermutation(t, n); err != nil {
			return fmt.Errorf("%s: individual %d: %w", methodValidation, i, err)
		}
	}

	return nil
}
