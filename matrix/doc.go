// SPDX-License-Identifier: MIT

// Package matrix holds the distance matrices consumed by the genetic TSP solver.
//
// A distance matrix is a square grid of non-negative edge weights with a zero
// diagonal. Missing edges are encoded by a large finite "unreachable" sentinel
// (DefaultUnreachable unless overridden), so any tour stays comparable by plain
// summation and infeasible routes are pushed out by selection pressure alone.
//
// Contents:
//   - Matrix: minimal read/write surface shared by all implementations.
//   - Dense: row-major storage with bounds-checked accessors.
//   - NewDistance: strict ingestion of a caller-supplied [][]float64.
//
// Symmetry is never assumed. Pass WithSymmetric(true) to enforce it.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Clone: O(r*c); NewDistance: O(n²).
package matrix
