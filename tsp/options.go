package tsp

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/gatsp/matrix"
)

// Defaults of the reference run.
const (
	DefaultPopulationSize       = 70
	DefaultTournamentSize       = 5
	DefaultGenerations          = 10
	DefaultCrossoverProbability = 0.8
	DefaultMutationProbability  = 0.1
)

// Observer is invoked once per generation, before selection, with the
// 0-based generation index and a deep copy of the current population.
type Observer func(generation int, population Population)

// Options configures an Engine.
type Options struct {
	// PopulationSize must be positive and even (pairs are recombined).
	PopulationSize int

	// TournamentSize is the number of draws per selection slot, ≥ 1.
	TournamentSize int

	// Generations is the fixed number of generations, ≥ 0.
	Generations int

	// CrossoverProbability is the per-pair recombination chance in [0,1].
	CrossoverProbability float64

	// MutationProbability is the per-individual mutation chance in [0,1].
	MutationProbability float64

	// StartVertex is fixed at position 0 of every initial tour.
	StartVertex int

	// Seed feeds the engine RNG; 0 selects a fixed default seed.
	Seed int64

	// Rand, if non-nil, is used instead of Seed. The engine does not copy it;
	// the caller owns it and must not share it across goroutines.
	Rand *rand.Rand

	// Unreachable is the weight that marks a missing edge when reporting
	// Result.Feasible. Zero takes the sentinel recorded on a *matrix.Dense
	// built by matrix.NewDistance, or matrix.DefaultUnreachable for other
	// matrices. A non-zero value must match the recorded sentinel.
	Unreachable float64

	// Observer is optional.
	Observer Observer
}

// DefaultOptions returns the reference run configuration.
func DefaultOptions() Options {
	return Options{
		PopulationSize:       DefaultPopulationSize,
		TournamentSize:       DefaultTournamentSize,
		Generations:          DefaultGenerations,
		CrossoverProbability: DefaultCrossoverProbability,
		MutationProbability:  DefaultMutationProbability,
	}
}

// validateOptions checks opts against a matrix of order n.
//
// Complexity: O(1).
func validateOptions(opts Options, n int) error {
	switch {
	case n < minVertices:
		return fmt.Errorf("%s: %d vertices, need at least %d: %w", methodEngine, n, minVertices, ErrInvalidConfig)
	case opts.PopulationSize <= 0 || opts.PopulationSize%2 != 0:
		return fmt.Errorf("%s: population size %d must be positive and even: %w", methodEngine, opts.PopulationSize, ErrInvalidConfig)
	case opts.TournamentSize < 1:
		return fmt.Errorf("%s: tournament size %d < 1: %w", methodEngine, opts.TournamentSize, ErrInvalidConfig)
	case opts.Generations < 0:
		return fmt.Errorf("%s: generations %d < 0: %w", methodEngine, opts.Generations, ErrInvalidConfig)
	case opts.StartVertex < 0 || opts.StartVertex >= n:
		return fmt.Errorf("%s: start vertex %d outside [0,%d): %w", methodEngine, opts.StartVertex, n, ErrInvalidConfig)
	}
	if err := validateProbability(methodEngine, "crossover", opts.CrossoverProbability); err != nil {
		return err
	}

	return validateProbability(methodEngine, "mutation", opts.MutationProbability)
}

// resolveUnreachable picks the sentinel used for Result.Feasible.
//
// Stage 1 (Validate): u must be zero or finite and positive.
// Stage 2 (Execute): prefer the sentinel dist records; reject a conflicting u.
func resolveUnreachable(dist matrix.Matrix, u float64) (float64, error) {
	if u < 0 || math.IsNaN(u) || math.IsInf(u, 0) {
		return 0, fmt.Errorf("%s: unreachable sentinel %v must be finite and non-negative: %w", methodEngine, u, ErrInvalidConfig)
	}

	recorded, ok := 0.0, false
	if d, isDense := dist.(*matrix.Dense); isDense {
		recorded, ok = d.Unreachable()
	}
	switch {
	case ok && u == 0:
		return recorded, nil
	case ok && u != recorded:
		return 0, fmt.Errorf("%s: unreachable sentinel %g, matrix stores %g: %w", methodEngine, u, recorded, ErrInvalidConfig)
	case u == 0:
		return matrix.DefaultUnreachable, nil
	}

	return u, nil
}

func validateProbability(method, name string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%s: %s probability %v outside [0,1]: %w", method, name, p, ErrInvalidConfig)
	}

	return nil
}
