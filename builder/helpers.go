// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// Method tags prefix constructor errors.
const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodComplete     = "Complete"
	methodStar         = "Star"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"
)

// addVertices inserts cfg.idFn(0..n-1) in ascending order and returns the IDs.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %v: %w", method, ids[i], err, ErrConstructFailed)
		}
	}

	return ids, nil
}

// addEdge draws a weight from cfg and inserts u─v.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weight()
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%g): %v: %w", method, u, v, w, err, ErrConstructFailed)
	}

	return nil
}
