// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

const (
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor for an Erdős–Rényi G(n, p) graph:
// every unordered pair {i, j}, i < j, is included independently with
// probability p. Trials run in (i asc, j asc) order, so a fixed seed gives a
// fixed graph; the edge weight is drawn right after a successful trial.
//
// Requires n >= 1 and 0 <= p <= 1. An RNG is required for 0 < p < 1;
// p = 0 and p = 1 are deterministic and work without one.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addVertices(g, cfg, methodRandomSparse, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !trial(cfg, p) {
					continue
				}
				if err = addEdge(g, cfg, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// trial is one Bernoulli(p) draw; p of 0 or 1 consumes no randomness.
func trial(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
