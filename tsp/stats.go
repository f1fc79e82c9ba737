package tsp

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/gatsp/matrix"
)

// Summarize computes weight statistics and diversity of pop.
// The returned Generation field is zero; Engine fills it in.
//
// Errors: ErrInvalidConfig for an empty population, plus those of Weight.
//
// Complexity: O(len(pop)·n).
func Summarize(dist matrix.Matrix, pop Population) (GenerationStats, error) {
	n, err := matrixOrder(methodSummarize, dist)
	if err != nil {
		return GenerationStats{}, err
	}
	if len(pop) == 0 {
		return GenerationStats{}, fmt.Errorf("%s: empty population: %w", methodSummarize, ErrInvalidConfig)
	}
	ws, err := populationWeights(dist, pop, n)
	if err != nil {
		return GenerationStats{}, fmt.Errorf("%s: %w", methodSummarize, err)
	}

	mean, std := stat.PopMeanStdDev(ws, nil)

	seen := make(map[string]struct{}, len(pop))
	for _, t := range pop {
		seen[t.String()] = struct{}{}
	}

	return GenerationStats{
		Best:     floats.Min(ws),
		Worst:    floats.Max(ws),
		Mean:     round1e9(mean),
		StdDev:   round1e9(std),
		Distinct: len(seen),
	}, nil
}
