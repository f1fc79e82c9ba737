package tsp

import (
	"errors"
	"strconv"
	"strings"
)

// Error kinds. Returned errors wrap exactly one of these; match with errors.Is.
var (
	// ErrInvalidConfig reports bad hyperparameters: population or tournament
	// size, vertex count, generation count, probabilities, start vertex, or a
	// missing random source.
	ErrInvalidConfig = errors.New("tsp: invalid config")

	// ErrInvalidTour reports a tour that is not a permutation of 0..n-1.
	ErrInvalidTour = errors.New("tsp: invalid tour")

	// ErrInvalidInput reports mismatched crossover parents, bad cut points or
	// an unusable distance matrix shape.
	ErrInvalidInput = errors.New("tsp: invalid input")

	// ErrNilMatrix is returned when no distance matrix is supplied.
	ErrNilMatrix = errors.New("tsp: nil distance matrix")
)

// Tour is a visiting order: a permutation of vertex indices 0..n-1.
type Tour []int

// Clone returns an independent copy of t.
func (t Tour) Clone() Tour {
	if t == nil {
		return nil
	}
	out := make(Tour, len(t))
	copy(out, t)

	return out
}

// Equal reports whether t and o visit the same vertices in the same order.
func (t Tour) Equal(o Tour) bool {
	if len(t) != len(o) {
		return false
	}
	for i := range t {
		if t[i] != o[i] {
			return false
		}
	}

	return true
}

// String renders t as space separated indices, e.g. "0 3 4 2 1 5".
func (t Tour) String() string {
	var sb strings.Builder
	for i, v := range t {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// Population is an ordered set of tours of fixed size across generations.
type Population []Tour

// Clone deep-copies every tour.
func (p Population) Clone() Population {
	out := make(Population, len(p))
	for i, t := range p {
		out[i] = t.Clone()
	}

	return out
}

// GenerationStats summarizes population weights at a generation boundary.
type GenerationStats struct {
	Generation int     // 0-based; Options.Generations denotes the final population
	Best       float64 // minimum weight
	Worst      float64 // maximum weight
	Mean       float64 // arithmetic mean
	StdDev     float64 // population standard deviation
	Distinct   int     // number of distinct tours
}

// Result holds the outcome of a run.
type Result struct {
	// Tour is the lightest tour of the final population (first seen on ties).
	Tour Tour

	// Weight is the open-path weight of Tour.
	Weight float64

	// Feasible is false when Tour traverses an unreachable edge.
	Feasible bool

	// Generations is the number of completed generations.
	Generations int

	// History has one entry per generation boundary plus the final population,
	// i.e. Generations+1 entries.
	History []GenerationStats
}
