// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// DefaultUnreachable is the weight stored for "no direct edge".
// It is finite so that every tour has a comparable total weight.
const DefaultUnreachable = 10000

// Option configures distance ingestion (see NewDistance).
type Option func(*Options)

// Options collects ingestion knobs. Fields are read-only to callers;
// use the WithX constructors.
type Options struct {
	unreachable float64
	symmetric   bool
}

// NewOptions applies opts in order over the documented defaults.
func NewOptions(opts ...Option) Options {
	o := Options{unreachable: DefaultUnreachable}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Unreachable returns the configured "no edge" sentinel.
func (o Options) Unreachable() float64 { return o.unreachable }

// Symmetric reports whether symmetry is enforced.
func (o Options) Symmetric() bool { return o.symmetric }

// WithUnreachable overrides the "no edge" sentinel.
// Panics unless w is finite and > 0; zero would collide with the diagonal.
func WithUnreachable(w float64) Option {
	if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		panic(fmt.Sprintf("matrix: WithUnreachable(%v): sentinel must be finite and positive", w))
	}

	return func(o *Options) { o.unreachable = w }
}

// WithSymmetric requires w[i][j] == w[j][i] for all pairs.
func WithSymmetric(on bool) Option {
	return func(o *Options) { o.symmetric = on }
}
