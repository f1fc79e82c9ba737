package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gatsp/tsp"
	"github.com/stretchr/testify/require"
)

func TestCrossoverAt_Worked(t *testing.T) {
	p1 := tsp.Tour{0, 1, 2, 3, 4, 5}
	p2 := tsp.Tour{0, 5, 4, 3, 2, 1}

	child, err := tsp.CrossoverAt(p1, p2, 2, 3)
	require.NoError(t, err)
	require.Equal(t, tsp.Tour{0, 5, 2, 3, 4, 1}, child)

	// Inverted cuts are normalized.
	swapped, err := tsp.CrossoverAt(p1, p2, 3, 2)
	require.NoError(t, err)
	require.Equal(t, child, swapped)
}

func TestCrossoverAt_SegmentSpansInterior(t *testing.T) {
	p1 := tsp.Tour{0, 1, 2, 3, 4, 5}
	p2 := tsp.Tour{0, 5, 4, 3, 2, 1}

	child, err := tsp.CrossoverAt(p1, p2, 1, 4)
	require.NoError(t, err)
	require.Equal(t, tsp.Tour{0, 1, 2, 3, 4, 5}, child)
}

// subsequence reports whether every element of want appears in got in the same order.
func subsequence(got []int, want []int) bool {
	k := 0
	for _, v := range got {
		if k < len(want) && want[k] == v {
			k++
		}
	}

	return k == len(want)
}

func TestCrossoverAt_AllCutsN6(t *testing.T) {
	const n = 6
	rng := rand.New(rand.NewSource(seedDet))

	for trial := 0; trial < 50; trial++ {
		pop, err := tsp.InitPopulation(rng, 2, n, 0)
		require.NoError(t, err)
		p1, p2 := pop[0], pop[1]

		for c1 := 1; c1 <= n-2; c1++ {
			for c2 := c1; c2 <= n-2; c2++ {
				child, err := tsp.CrossoverAt(p1, p2, c1, c2)
				require.NoError(t, err)
				requirePermutation(t, child, n)

				// Segment copied verbatim from p1.
				require.Equal(t, p1[c1:c2+1], child[c1:c2+1])
				// Start vertex survives.
				require.Equal(t, 0, child[0])

				// Outside the segment the child follows p2's relative order.
				inSeg := map[int]bool{}
				for _, v := range p1[c1 : c2+1] {
					inSeg[v] = true
				}
				var rest []int
				for _, v := range p2 {
					if !inSeg[v] {
						rest = append(rest, v)
					}
				}
				outside := append(append([]int{}, child[:c1]...), child[c2+1:]...)
				require.Equal(t, rest, outside)
				require.True(t, subsequence(p2, outside))
			}
		}
	}
}

func TestCrossover_RandomCutsKeepInvariants(t *testing.T) {
	rng := newRNG()
	for _, n := range []int{2, 3, 4, 6, 9} {
		pop, err := tsp.InitPopulation(rng, 40, n, 0)
		require.NoError(t, err)
		for i := 0; i+1 < len(pop); i += 2 {
			child, err := tsp.Crossover(rng, pop[i], pop[i+1])
			require.NoError(t, err)
			requirePermutation(t, child, n)
			require.Equal(t, 0, child[0])
		}
	}
}

func TestCrossover_TwoVerticesCopiesSecondParent(t *testing.T) {
	child, err := tsp.Crossover(newRNG(), tsp.Tour{0, 1}, tsp.Tour{1, 0})
	require.NoError(t, err)
	require.Equal(t, tsp.Tour{1, 0}, child)
}

func TestCrossover_DoesNotModifyParents(t *testing.T) {
	p1 := tsp.Tour{0, 1, 2, 3, 4, 5}
	p2 := tsp.Tour{0, 5, 4, 3, 2, 1}
	_, err := tsp.Crossover(newRNG(), p1, p2)
	require.NoError(t, err)
	require.Equal(t, tsp.Tour{0, 1, 2, 3, 4, 5}, p1)
	require.Equal(t, tsp.Tour{0, 5, 4, 3, 2, 1}, p2)
}

func TestCrossover_Errors(t *testing.T) {
	rng := newRNG()

	_, err := tsp.Crossover(nil, tsp.Tour{0, 1, 2}, tsp.Tour{0, 2, 1})
	require.ErrorIs(t, err, tsp.ErrInvalidConfig)

	_, err = tsp.Crossover(rng, tsp.Tour{0, 1, 2}, tsp.Tour{0, 1, 2, 3})
	require.ErrorIs(t, err, tsp.ErrInvalidInput)

	_, err = tsp.Crossover(rng, tsp.Tour{0, 1, 2}, tsp.Tour{0, 1, 3})
	require.ErrorIs(t, err, tsp.ErrInvalidInput)
	require.ErrorIs(t, err, tsp.ErrInvalidTour)

	_, err = tsp.Crossover(rng, tsp.Tour{0, 0, 2}, tsp.Tour{0, 1, 2})
	require.ErrorIs(t, err, tsp.ErrInvalidInput)

	_, err = tsp.CrossoverAt(tsp.Tour{0, 1, 2, 3}, tsp.Tour{0, 2, 1, 3}, 0, 2)
	require.ErrorIs(t, err, tsp.ErrInvalidInput)
	_, err = tsp.CrossoverAt(tsp.Tour{0, 1, 2, 3}, tsp.Tour{0, 2, 1, 3}, 1, 3)
	require.ErrorIs(t, err, tsp.ErrInvalidInput)
	_, err = tsp.CrossoverAt(tsp.Tour{0, 1}, tsp.Tour{0, 1}, 1, 1)
	require.ErrorIs(t, err, tsp.ErrInvalidInput)
}

func TestCrossoverPopulation_ProbabilityZeroCopiesParents(t *testing.T) {
	pop, err := tsp.InitPopulation(newRNG(), 10, 6, 0)
	require.NoError(t, err)

	next, err := tsp.CrossoverPopulation(newRNG(), pop, 0)
	require.NoError(t, err)
	require.Equal(t, pop, next)

	next[0][1], next[0][2] = next[0][2], next[0][1]
	require.NotEqual(t, pop[0], next[0])
}

func TestCrossoverPopulation_ProbabilityOneKeepsSize(t *testing.T) {
	pop, err := tsp.InitPopulation(newRNG(), 30, 7, 0)
	require.NoError(t, err)

	next, err := tsp.CrossoverPopulation(newRNG(), pop, 1)
	require.NoError(t, err)
	require.NoError(t, tsp.ValidatePopulation(next, 7, 30))
	for _, tour := range next {
		require.Equal(t, 0, tour[0])
	}
}

func TestCrossoverPopulation_Errors(t *testing.T) {
	pop, err := tsp.InitPopulation(newRNG(), 3, 6, 0)
	require.NoError(t, err)

	_, err = tsp.CrossoverPopulation(newRNG(), pop, 0.5)
	require.ErrorIs(t, err, tsp.ErrInvalidConfig)
	_, err = tsp.CrossoverPopulation(newRNG(), nil, 0.5)
	require.ErrorIs(t, err, tsp.ErrInvalidConfig)
	_, err = tsp.CrossoverPopulation(newRNG(), pop[:2], 1.5)
	require.ErrorIs(t, err, tsp.ErrInvalidConfig)
	_, err = tsp.CrossoverPopulation(nil, pop[:2], 0.5)
	require.ErrorIs(t, err, tsp.ErrInvalidConfig)
}
