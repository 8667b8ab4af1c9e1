// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

const (
	minGridDim = 1
	gridIDFmt  = "%d,%d" // "r,c"
)

// GridID returns the vertex ID Grid uses for cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor for a rows×cols orthogonal grid.
// Vertex IDs are always "r,c" (cfg.idFn is not consulted) and are added in
// row-major order; each cell emits its Right then Bottom edge when present.
// Requires rows, cols >= 1.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddVertex(GridID(r, c)); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %v: %w", methodGrid, GridID(r, c), err, ErrConstructFailed)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
