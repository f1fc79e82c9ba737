// Package tsp provides a genetic-algorithm heuristic for the Travelling
// Salesman Problem over a small distance matrix (matrix.Matrix).
//
// A candidate solution is a Tour: a permutation of 0..n-1 whose first element
// is the start vertex. Its fitness is the open-path weight, the sum of
// dist[tour[i]][tour[i+1]] for consecutive positions, without a closing edge.
// Lower is better.
//
// Operators (all take an explicit *rand.Rand):
//   - InitPopulation   - identity permutation, positions 1..n-1 shuffled.
//   - TournamentSelect - k draws with replacement per slot, keep the lightest.
//   - Crossover        - order crossover: p1[c1..c2] kept, the rest in p2 order.
//   - Mutate           - swap two distinct interior positions.
//
// Engine composes them for a fixed number of generations:
//
//	select → pairwise crossover → mutation → replace
//
// and returns the lightest tour of the final population. There is no early
// stop and no parallelism; a run is fully determined by Options.Seed (or the
// injected Options.Rand).
//
// Missing edges are expected to carry a large finite sentinel (see
// matrix.DefaultUnreachable). The fitness function sums them like any other
// weight; Result.Feasible tells whether the winner used any.
package tsp
