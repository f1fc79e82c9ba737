// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Every message is prefixed with "matrix: ". Wrap with fmt.Errorf("ctx: %w", ErrX)
// when context matters; callers match with errors.Is.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNonZeroDiagonal signals a non-zero weight on the diagonal.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNegativeWeight signals a negative edge weight.
	ErrNegativeWeight = errors.New("matrix: negative weight")

	// ErrNaNInf signals a NaN (or -Inf) value where a distance was expected.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrAsymmetry signals that a matrix required to be symmetric is not.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNilMatrix indicates that a nil Matrix was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
