// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

const minStarNodes = 2

// Star returns a Constructor for a star with n vertices: hub id(0) and
// leaves id(1..n-1), spokes emitted in ascending leaf order. Requires n >= 2.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodStar, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(g, cfg, methodStar, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
