// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// idFn maps an index to a vertex ID.
	idFn IDFn
	// rng drives stochastic choices; nil means no randomness.
	rng *rand.Rand
	// weightFn yields the weight of each emitted edge.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults
// (decimal IDs, no RNG, unit weights) and applies opts in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}
