package tsp

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gatsp/matrix"
)

// Engine runs the generational loop over one distance matrix.
// It owns its population and random source; it is not safe for concurrent use.
type Engine struct {
	dist matrix.Matrix
	n    int
	opts Options
	rng  *rand.Rand
}

// NewEngine validates dist and opts eagerly and returns a ready Engine.
// dist is read-only for the engine's lifetime.
//
// Errors: ErrNilMatrix, ErrInvalidInput (non-square dist), ErrInvalidConfig.
func NewEngine(dist matrix.Matrix, opts Options) (*Engine, error) {
	n, err := matrixOrder(methodEngine, dist)
	if err != nil {
		return nil, err
	}
	if err = validateOptions(opts, n); err != nil {
		return nil, err
	}
	if opts.Unreachable, err = resolveUnreachable(dist, opts.Unreachable); err != nil {
		return nil, err
	}

	rng := opts.Rand
	if rng == nil {
		rng = rngFromSeed(opts.Seed)
	}

	return &Engine{dist: dist, n: n, opts: opts, rng: rng}, nil
}

// Evolve is NewEngine followed by Run.
func Evolve(dist matrix.Matrix, opts Options) (Result, error) {
	e, err := NewEngine(dist, opts)
	if err != nil {
		return Result{}, err
	}

	return e.Run()
}

// Run evolves a fresh random population for Options.Generations generations
// and returns the lightest tour of the final population. With zero
// generations that is the lightest initial tour.
//
// Each generation:
//  1. record GenerationStats, call Observer (if any);
//  2. TournamentSelect;
//  3. CrossoverPopulation;
//  4. MutatePopulation;
//  5. verify every tour, then replace the population wholesale.
//
// A tour that fails verification aborts the run with ErrInvalidTour.
// Repeated calls continue the same random stream.
//
// Complexity: O(G·P·(n + K)) for G generations, population P, tournament K.
func (e *Engine) Run() (Result, error) {
	pop, err := InitPopulation(e.rng, e.opts.PopulationSize, e.n, e.opts.StartVertex)
	if err != nil {
		return Result{}, err
	}

	var (
		history = make([]GenerationStats, 0, e.opts.Generations+1) // one per generation plus final
		stats   GenerationStats
		g       int // generations completed
	)
	for g = 0; g < e.opts.Generations; g++ {
		if stats, err = e.summarize(g, pop); err != nil {
			return Result{}, err
		}
		history = append(history, stats)

		if e.opts.Observer != nil {
			e.opts.Observer(g, pop.Clone()) // snapshot, never the live population
		}

		if pop, err = e.step(pop); err != nil {
			return Result{}, fmt.Errorf("%s: generation %d: %w", methodEngine, g, err)
		}
	}

	if stats, err = e.summarize(g, pop); err != nil {
		return Result{}, err
	}
	history = append(history, stats)

	best, w, err := Best(e.dist, pop)
	if err != nil {
		return Result{}, err
	}
	feasible, err := Feasible(e.dist, best, e.opts.Unreachable)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Tour:        best,
		Weight:      w,
		Feasible:    feasible,
		Generations: g,
		History:     history,
	}, nil
}

// step produces the next generation from pop. pop itself is not modified.
func (e *Engine) step(pop Population) (Population, error) {
	selected, err := TournamentSelect(e.rng, e.dist, pop, e.opts.TournamentSize)
	if err != nil {
		return nil, err
	}

	next, err := CrossoverPopulation(e.rng, selected, e.opts.CrossoverProbability)
	if err != nil {
		return nil, err
	}

	if _, err = MutatePopulation(e.rng, next, e.opts.MutationProbability); err != nil {
		return nil, err
	}

	if err = ValidatePopulation(next, e.n, e.opts.PopulationSize); err != nil {
		return nil, err
	}

	return next, nil
}

func (e *Engine) summarize(g int, pop Population) (GenerationStats, error) {
	s, err := Summarize(e.dist, pop)
	if err != nil {
		return GenerationStats{}, fmt.Errorf("%s: generation %d: %w", methodEngine, g, err)
	}
	s.Generation = g

	return s, nil
}
