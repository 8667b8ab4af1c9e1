// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

const minCycleNodes = 3

// Cycle returns a Constructor for the ring C_n: a path plus the closing edge
// id(n-1)─id(0). Requires n >= 3.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
