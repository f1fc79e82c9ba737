package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gatsp/matrix"
)

// roundScale controls final weight stabilization precision (1e-9).
const roundScale = 1e9

// Weight returns the open-path weight of t over dist:
//
//	Σ dist[t[i]][t[i+1]],  i = 0..n-2
//
// There is no closing edge back to t[0]. Unreachable-sentinel edges are
// summed like any other weight.
//
// Errors: ErrNilMatrix, ErrInvalidInput (non-square dist), ErrInvalidTour.
//
// Complexity: O(n).
func Weight(dist matrix.Matrix, t Tour) (float64, error) {
	n, err := matrixOrder(methodWeight, dist)
	if err != nil {
		return 0, err
	}
	if err = ValidatePermutation(t, n); err != nil {
		return 0, fmt.Errorf("%s: %w", methodWeight, err)
	}

	return tourWeight(dist, t)
}

// Feasible reports whether t avoids every edge stored as the unreachable
// sentinel. Only an exact match counts as missing; a real edge heavier than
// the sentinel is feasible. t must be a valid permutation (see Weight for
// errors).
//
// Stage 1 (Validate): dist square, t a permutation of its indices.
// Stage 2 (Execute): scan consecutive edges, stop at the first sentinel.
//
// Complexity: O(n).
func Feasible(dist matrix.Matrix, t Tour, unreachable float64) (bool, error) {
	n, err := matrixOrder(methodWeight, dist)
	if err != nil {
		return false, err
	}
	if err = ValidatePermutation(t, n); err != nil {
		return false, fmt.Errorf("%s: %w", methodWeight, err)
	}

	var w float64
	for i := 0; i+1 < len(t); i++ {
		if w, err = dist.At(t[i], t[i+1]); err != nil {
			return false, fmt.Errorf("%s: %w: %w", methodWeight, ErrInvalidInput, err)
		}
		if w == unreachable {
			return false, nil // missing edge on the path
		}
	}

	return true, nil
}

// tourWeight sums t over dist without re-validating t.
// Fast path for *matrix.Dense, generic matrix.Matrix otherwise.
func tourWeight(dist matrix.Matrix, t Tour) (float64, error) {
	var (
		sum float64
		i   int
	)
	if d, ok := dist.(*matrix.Dense); ok {
		for i = 0; i+1 < len(t); i++ {
			sum += d.UnsafeAt(t[i], t[i+1])
		}

		return round1e9(sum), nil
	}

	var (
		w   float64
		err error
	)
	for i = 0; i+1 < len(t); i++ {
		if w, err = dist.At(t[i], t[i+1]); err != nil {
			return 0, fmt.Errorf("%s: %w: %w", methodWeight, ErrInvalidInput, err)
		}
		sum += w
	}

	return round1e9(sum), nil
}

// populationWeights evaluates every tour of pop, validating each against n.
//
// Complexity: O(len(pop)·n).
func populationWeights(dist matrix.Matrix, pop Population, n int) ([]float64, error) {
	var (
		ws  = make([]float64, len(pop))
		err error
	)
	for i, t := range pop {
		if err = ValidatePermutation(t, n); err != nil {
			return nil, fmt.Errorf("individual %d: %w", i, err)
		}
		if ws[i], err = tourWeight(dist, t); err != nil {
			return nil, err
		}
	}

	return ws, nil
}

// matrixOrder validates dist and returns its order n.
func matrixOrder(method string, dist matrix.Matrix) (int, error) {
	if dist == nil {
		return 0, fmt.Errorf("%s: %w", method, ErrNilMatrix)
	}
	if err := matrix.ValidateSquare(dist); err != nil {
		return 0, fmt.Errorf("%s: %w: %w", method, ErrInvalidInput, err)
	}

	return dist.Rows(), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
