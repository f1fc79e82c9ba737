package tsp_test

import (
	"testing"

	"github.com/katalvlaran/gatsp/matrix"
	"github.com/katalvlaran/gatsp/tsp"
	"github.com/stretchr/testify/require"
)

func TestInitPopulation_PermutationsWithFixedStart(t *testing.T) {
	for _, start := range []int{0, 2, 5} {
		pop, err := tsp.InitPopulation(newRNG(), 50, 6, start)
		require.NoError(t, err)
		require.Len(t, pop, 50)
		for _, tour := range pop {
			requirePermutation(t, tour, 6)
			require.Equal(t, start, tour[0])
		}
	}
}

func TestInitPopulation_IndependentDraws(t *testing.T) {
	pop, err := tsp.InitPopulation(newRNG(), 50, 6, 0)
	require.NoError(t, err)

	distinct := map[string]struct{}{}
	for _, tour := range pop {
		distinct[tour.String()] = struct{}{}
	}
	require.Greater(t, len(distinct), 10)

	// No aliasing between individuals.
	pop[0][1], pop[0][2] = pop[0][2], pop[0][1]
	requirePermutation(t, pop[1], 6)
}

func TestInitPopulation_SeedDeterminism(t *testing.T) {
	a, err := tsp.InitPopulation(newRNG(), 8, 6, 0)
	require.NoError(t, err)
	b, err := tsp.InitPopulation(newRNG(), 8, 6, 0)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestInitPopulation_Errors(t *testing.T) {
	_, err := tsp.InitPopulation(nil, 4, 6, 0)
	require.ErrorIs(t, err, tsp.ErrInvalidConfig)
	_, err = tsp.InitPopulation(newRNG(), 0, 6, 0)
	require.ErrorIs(t, err, tsp.ErrInvalidConfig)
	_, err = tsp.InitPopulation(newRNG(), 4, 1, 0)
	require.ErrorIs(t, err, tsp.ErrInvalidConfig)
	_, err = tsp.InitPopulation(newRNG(), 4, 6, 6)
	require.ErrorIs(t, err, tsp.ErrInvalidConfig)
}

func TestBest_FirstSeenOnTies(t *testing.T) {
	d := referenceDist(t)
	other := tsp.Tour{0, 3, 5, 1, 2, 4}
	pop := tsp.Population{identity(6), lightTour, other}

	best, w, err := tsp.Best(d, pop)
	require.NoError(t, err)
	require.Equal(t, lightTourWeight, w)
	require.Equal(t, lightTour, best)

	// The result is a copy.
	best[1] = 99
	require.Equal(t, 3, pop[1][1])

	_, _, err = tsp.Best(d, nil)
	require.ErrorIs(t, err, tsp.ErrInvalidConfig)
}

func TestSummarize(t *testing.T) {
	d := referenceDist(t)
	pop := tsp.Population{lightTour, identity(6), lightTour.Clone(), identity(6)}

	s, err := tsp.Summarize(d, pop)
	require.NoError(t, err)
	require.Equal(t, lightTourWeight, s.Best)
	require.Equal(t, float64(identityWeight), s.Worst)
	require.InDelta(t, (lightTourWeight+identityWeight)/2, s.Mean, 1e-9)
	require.InDelta(t, (identityWeight-lightTourWeight)/2, s.StdDev, 1e-9)
	require.Equal(t, 2, s.Distinct)

	_, err = tsp.Summarize(d, nil)
	require.ErrorIs(t, err, tsp.ErrInvalidConfig)
	_, err = tsp.Summarize(d, tsp.Population{{0, 1}})
	require.ErrorIs(t, err, tsp.ErrInvalidTour)
	_, err = tsp.Summarize(nil, pop)
	require.ErrorIs(t, err, tsp.ErrNilMatrix)
}

func TestSummarize_SingleIndividual(t *testing.T) {
	d, err := matrix.NewDistance([][]float64{{0, 3}, {3, 0}})
	require.NoError(t, err)

	s, err := tsp.Summarize(d, tsp.Population{{0, 1}})
	require.NoError(t, err)
	require.Equal(t, 3.0, s.Mean)
	require.Zero(t, s.StdDev)
	require.Equal(t, 1, s.Distinct)
}
