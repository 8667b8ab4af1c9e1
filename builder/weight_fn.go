// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every edge when no WeightFn is set.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight from an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Negative values are allowed; panics on NaN or ±Inf.
func ConstantWeightFn(value float64) WeightFn {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics unless min <= max and both are finite. With a nil rng it yields min.
func UniformWeightFn(min, max float64) WeightFn {
	if math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0) || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require finite min <= max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntUniformWeightFn returns a WeightFn sampling integers uniformly in
// [min, max]. Integral weights make ties, and therefore alternative optimal
// MSTs and paths, frequent. Panics if max < min. With a nil rng it yields min.
func IntUniformWeightFn(min, max int) WeightFn {
	if max < min {
		panic(fmt.Sprintf("IntUniformWeightFn: require min <= max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return float64(min)
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ~ U[min,max) via UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithIntWeights sets integral weights in [min,max] via IntUniformWeightFn.
func WithIntWeights(min, max int) BuilderOption {
	return WithWeightFn(IntUniformWeightFn(min, max))
}
