// SPDX-License-Identifier: MIT

// Package builder constructs distance matrices for the genetic TSP solver.
//
// Constructors:
//   - Reference: the fixed 6-vertex instance used by the CLI and the
//     end-to-end tests.
//   - FromEdges: n vertices plus an explicit edge list; every absent pair is
//     unreachable.
//   - RandomComplete: seeded complete symmetric instance with integral
//     weights in [1, maxWeight].
//
// Every constructor returns a *matrix.Dense that already passed
// matrix.NewDistance, so the solver can consume it as-is.
//
// Determinism: RandomComplete draws from a *rand.Rand seeded via WithSeed
// (default seed 1) and visits pairs in lexicographic (i,j), i<j, order.
package builder
