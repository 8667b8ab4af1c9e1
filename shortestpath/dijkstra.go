// SPDX-License-Identifier: MIT

package shortestpath

import (
	"math"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
)

// Dijkstra returns the shortest s → d path, stopping as soon as d is settled.
// Edge weights must be non-negative; this is not checked.
func Dijkstra(g *core.Graph, s, d string) (Path, error) {
	if err := checkEndpoints(g, s, d); err != nil {
		return Path{}, err
	}
	if s == d {
		return trivialPath(s), nil
	}

	dist, prev, err := dijkstra.Dijkstra(g,
		dijkstra.Source(s),
		dijkstra.WithTarget(d),
		dijkstra.WithReturnPath(),
	)
	if err != nil {
		return Path{}, err
	}
	if math.IsInf(dist[d], 1) {
		return unreachablePath(), nil
	}

	return Path{Vertices: dijkstra.PathTo(prev, s, d), Weight: dist[d]}, nil
}
