// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gatsp/matrix"
)

const (
	methodFromEdges      = "FromEdges"
	methodRandomComplete = "RandomComplete"
	minVertices          = 2
)

// Edge is a weighted connection between two vertex indices.
type Edge struct {
	From, To int
	Weight   float64
}

// referenceEdges is the 6-vertex instance the solver ships with.
var referenceEdges = []Edge{
	{0, 1, 44}, {0, 2, 46}, {0, 3, 32}, {0, 4, 37},
	{1, 2, 45}, {1, 5, 30},
	{2, 4, 15},
	{3, 4, 22}, {3, 5, 17},
	{4, 5, 35},
}

// ReferenceVertices is the order of the Reference instance.
const ReferenceVertices = 6

// Reference returns the fixed 6-vertex undirected instance; pairs that are
// not listed (0↔5, 1↔3, 1↔4, 2↔3, 2↔5) are unreachable.
func Reference(opts ...BuilderOption) (*matrix.Dense, error) {
	return FromEdges(ReferenceVertices, referenceEdges, opts...)
}

// ReferenceEdges returns a copy of the Reference edge list.
func ReferenceEdges() []Edge {
	return append([]Edge(nil), referenceEdges...)
}

// FromEdges builds an n×n distance matrix from edges. Absent pairs are
// +Inf before ingestion, i.e. they end up as the unreachable sentinel.
// Undirected unless WithDirected(true); a later duplicate edge overwrites
// an earlier one.
//
// Stage 1 (Validate): n ≥ 2, every edge in range, no loops, weight ≥ 0 and
// distinct from the sentinel.
// Stage 2 (Execute): fill rows, mirroring unless directed.
// Stage 3 (Finalize): ingest through matrix.NewDistance.
//
// Complexity: O(n² + |edges|).
func FromEdges(n int, edges []Edge, opts ...BuilderOption) (*matrix.Dense, error) {
	if n < minVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodFromEdges, n, minVertices, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)

	rows := emptyRows(n)
	for k, e := range edges {
		switch {
		case e.From < 0 || e.From >= n || e.To < 0 || e.To >= n:
			return nil, fmt.Errorf("%s: edge %d (%d→%d): %w", methodFromEdges, k, e.From, e.To, ErrVertexOutOfRange)
		case e.From == e.To:
			return nil, fmt.Errorf("%s: edge %d (%d→%d): %w", methodFromEdges, k, e.From, e.To, ErrSelfLoop)
		case e.Weight < 0 || math.IsNaN(e.Weight):
			return nil, fmt.Errorf("%s: edge %d (%d→%d, w=%g): %w", methodFromEdges, k, e.From, e.To, e.Weight, ErrNegativeWeight)
		case e.Weight == cfg.unreachable:
			return nil, fmt.Errorf("%s: edge %d (%d→%d, w=%g): %w", methodFromEdges, k, e.From, e.To, e.Weight, ErrSentinelWeight)
		}
		rows[e.From][e.To] = e.Weight
		if !cfg.directed {
			rows[e.To][e.From] = e.Weight
		}
	}

	return matrix.NewDistance(rows, matrix.WithUnreachable(cfg.unreachable))
}

// RandomComplete returns a complete symmetric instance on n vertices with
// weights drawn uniformly from [1, maxWeight]. maxWeight must stay below the
// unreachable sentinel so that no drawn edge reads as missing.
//
// Complexity: O(n²).
func RandomComplete(n int, opts ...BuilderOption) (*matrix.Dense, error) {
	if n < minVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomComplete, n, minVertices, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)
	if float64(cfg.maxWeight) >= cfg.unreachable {
		return nil, fmt.Errorf("%s: max weight %d ≥ sentinel %g: %w",
			methodRandomComplete, cfg.maxWeight, cfg.unreachable, ErrSentinelWeight)
	}

	var (
		rows = emptyRows(n)
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = float64(cfg.rng.Intn(cfg.maxWeight) + 1)
			rows[i][j] = w
			rows[j][i] = w
		}
	}

	return matrix.NewDistance(rows,
		matrix.WithSymmetric(true),
		matrix.WithUnreachable(cfg.unreachable), // recorded for feasibility checks
	)
}

// emptyRows allocates n×n with zero diagonal and +Inf elsewhere.
func emptyRows(n int) [][]float64 {
	var (
		rows = make([][]float64, n)
		inf  = math.Inf(1)
		i, j int
	)
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i != j {
				rows[i][j] = inf
			}
		}
	}

	return rows
}
