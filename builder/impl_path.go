// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

const minPathNodes = 2

// Path returns a Constructor for the simple path P_n: id(0)─id(1)─…─id(n-1).
// Requires n >= 2. Edges are emitted in ascending index order.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addEdge(g, cfg, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
