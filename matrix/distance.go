// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// NewDistance validates rows as an n×n distance grid and copies it into a Dense.
//
// Rules:
//   - rows non-empty and square (ErrInvalidDimensions / ErrNonSquare),
//   - no NaN and no -Inf anywhere (ErrNaNInf),
//   - diagonal exactly 0 (ErrNonZeroDiagonal),
//   - no negative off-diagonal weight (ErrNegativeWeight),
//   - +Inf off-diagonal means "no edge" and is stored as the unreachable sentinel,
//   - with WithSymmetric(true), w[i][j] == w[j][i] (ErrAsymmetry).
//
// The sentinel is recorded on the result (Dense.Unreachable). A finite input
// weight equal to it is indistinguishable from a missing edge.
//
// Complexity: O(n²).
func NewDistance(rows [][]float64, opts ...Option) (*Dense, error) {
	var (
		o = NewOptions(opts...)
		n = len(rows)
	)
	if n == 0 {
		return nil, ErrInvalidDimensions
	}

	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	d.unreachable = o.unreachable

	var (
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("NewDistance: row %d has %d columns, want %d: %w", i, len(rows[i]), n, ErrNonSquare)
		}
		for j = 0; j < n; j++ {
			w = rows[i][j]
			switch {
			case math.IsNaN(w) || math.IsInf(w, -1):
				return nil, fmt.Errorf("NewDistance(%d,%d): %w", i, j, ErrNaNInf)
			case i == j && w != 0:
				return nil, fmt.Errorf("NewDistance(%d,%d)=%g: %w", i, j, w, ErrNonZeroDiagonal)
			case w < 0:
				return nil, fmt.Errorf("NewDistance(%d,%d)=%g: %w", i, j, w, ErrNegativeWeight)
			case math.IsInf(w, 1):
				w = o.unreachable
			}
			d.data[i*n+j] = w
		}
	}

	if o.symmetric {
		if err = ValidateSymmetric(d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// ValidateSquare returns ErrNilMatrix or ErrNonSquare when m is not a usable
// square matrix.
func ValidateSquare(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.Rows() != m.Cols() || m.Rows() <= 0 {
		return ErrNonSquare
	}

	return nil
}

// ValidateSymmetric checks w[i][j] == w[j][i] over the upper triangle.
//
// Complexity: O(n²).
func ValidateSymmetric(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}

	var (
		n        = m.Rows()
		i, j     int
		aij, aji float64
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return err
			}
			if aji, err = m.At(j, i); err != nil {
				return err
			}
			if aij != aji {
				return fmt.Errorf("ValidateSymmetric(%d,%d): %g != %g: %w", i, j, aij, aji, ErrAsymmetry)
			}
		}
	}

	return nil
}
