// Package tsp_test holds helpers shared across *_test.go files in this package.
package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gatsp/builder"
	"github.com/katalvlaran/gatsp/matrix"
	"github.com/katalvlaran/gatsp/tsp"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet is the seed used wherever a test needs a reproducible stream.
	seedDet = int64(42)

	// lightTourWeight is the weight of lightTour over the reference instance.
	lightTourWeight = 139.0

	// identityWeight is 0 1 2 3 4 5 over the reference instance (2→3 is unreachable).
	identityWeight = 44 + 45 + matrix.DefaultUnreachable + 22 + 35
)

// lightTour is a feasible route over the reference instance:
// 0→3 (32), 3→5 (17), 5→1 (30), 1→2 (45), 2→4 (15).
var lightTour = tsp.Tour{0, 3, 5, 1, 2, 4}

func referenceDist(t *testing.T) *matrix.Dense {
	t.Helper()
	d, err := builder.Reference()
	require.NoError(t, err)

	return d
}

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(seedDet))
}

func identity(n int) tsp.Tour {
	t := make(tsp.Tour, n)
	for i := range t {
		t[i] = i
	}

	return t
}

// requirePermutation fails unless tour is a permutation of 0..n-1.
func requirePermutation(t *testing.T, tour tsp.Tour, n int) {
	t.Helper()
	require.NoError(t, tsp.ValidatePermutation(tour, n), "tour %v", tour)
}

// sliceDist satisfies matrix.Matrix without being a *matrix.Dense, so tests
// can reach the generic code paths.
type sliceDist struct{ a [][]float64 }

var _ matrix.Matrix = sliceDist{}

func (m sliceDist) Rows() int { return len(m.a) }
func (m sliceDist) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}

func (m sliceDist) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrIndexOutOfBounds
	}

	return m.a[i][j], nil
}

func (m sliceDist) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrIndexOutOfBounds
	}
	m.a[i][j] = v

	return nil
}

func (m sliceDist) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.a))
	for i := range m.a {
		cp[i] = append([]float64(nil), m.a[i]...)
	}

	return sliceDist{a: cp}
}
