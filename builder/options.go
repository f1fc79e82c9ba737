// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/gatsp/matrix"
)

const (
	defaultSeed      int64 = 1
	defaultMaxWeight       = 99
)

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	rng         *rand.Rand
	maxWeight   int
	directed    bool
	unreachable float64
}

// BuilderOption customizes a constructor by mutating builderConfig.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		maxWeight:   defaultMaxWeight,
		unreachable: matrix.DefaultUnreachable,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithMaxWeight bounds RandomComplete weights to [1, w]. Panics if w < 1.
func WithMaxWeight(w int) BuilderOption {
	if w < 1 {
		panic(fmt.Sprintf("builder: WithMaxWeight(%d): must be ≥ 1", w))
	}

	return func(c *builderConfig) { c.maxWeight = w }
}

// WithDirected makes FromEdges keep only the listed direction of each edge.
func WithDirected(on bool) BuilderOption {
	return func(c *builderConfig) { c.directed = on }
}

// WithUnreachable overrides the sentinel stored for absent edges.
// Panics unless w is finite and > 0.
func WithUnreachable(w float64) BuilderOption {
	if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		panic(fmt.Sprintf("builder: WithUnreachable(%g): must be finite and > 0", w))
	}

	return func(c *builderConfig) { c.unreachable = w }
}
