// SPDX-License-Identifier: MIT

package builder

import "errors"

// Callers branch with errors.Is; constructors attach context with %w.
var (
	// ErrTooFewVertices indicates n is below the minimum of two vertices.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, n).
	ErrVertexOutOfRange = errors.New("builder: vertex out of range")

	// ErrSelfLoop indicates an edge from a vertex to itself.
	ErrSelfLoop = errors.New("builder: self loop")

	// ErrNegativeWeight indicates an edge with negative weight.
	ErrNegativeWeight = errors.New("builder: negative weight")

	// ErrSentinelWeight indicates a real weight that would read as the
	// unreachable sentinel (an edge weight equal to it, or a RandomComplete
	// bound reaching it).
	ErrSentinelWeight = errors.New("builder: weight collides with unreachable sentinel")
)
