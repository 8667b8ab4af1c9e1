// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wgraph/shortestpath"
)

// Virtual endpoints attached to every cell of the source and destination
// islands. They cannot collide with "x,y" IDs.
const (
	expandSource = "src*"
	expandTarget = "dst*"
)

// ExpandIsland finds the fewest water cells to convert so that island
// srcComp touches island dstComp, with islands numbered as returned by
// Islands(). It returns the cell IDs of one such route, from a cell of
// srcComp to a cell of dstComp, and the number of water cells on it.
//
// Behavior:
//  1. Validate island indices.
//  2. Build the terrain graph over all cells (water entry costs 1).
//  3. Join a virtual source to every srcComp cell and a virtual target to
//     every dstComp cell with zero-weight edges.
//  4. Run Dijkstra between the virtual endpoints and strip them.
//
// Complexity: O(W×H×d × log(W×H×d)).
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []string, cost int, err error) {
	islands, err := gg.Islands()
	if err != nil {
		return nil, 0, err
	}
	if srcComp < 0 || srcComp >= len(islands) || dstComp < 0 || dstComp >= len(islands) {
		return nil, 0, fmt.Errorf("%w: %d, %d of %d", ErrComponentIndex, srcComp, dstComp, len(islands))
	}

	g := gg.terrainGraph()
	for _, id := range islands[srcComp] {
		_ = g.AddEdge(expandSource, id, 0)
	}
	for _, id := range islands[dstComp] {
		_ = g.AddEdge(expandTarget, id, 0)
	}

	p, err := shortestpath.Dijkstra(g, expandSource, expandTarget)
	if err != nil {
		return nil, 0, fmt.Errorf("gridgraph: expand %d→%d: %w", srcComp, dstComp, err)
	}
	if len(p.Vertices) < 3 {
		return nil, 0, fmt.Errorf("gridgraph: expand %d→%d: empty route", srcComp, dstComp)
	}

	return p.Vertices[1 : len(p.Vertices)-1], int(math.Round(p.Weight)), nil
}
