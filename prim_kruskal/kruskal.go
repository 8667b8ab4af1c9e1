// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/disjointset"
)

// Kruskal computes a minimum spanning forest of g.
//
// Steps:
//  1. Collect edges via g.Edges() (sorted by (From, To)), skipping self-loops.
//  2. Stable-sort ascending by weight, so ties keep canonical order.
//  3. Scan with a disjoint set over every vertex; accept an edge iff its
//     endpoints are in different sets, then union them.
//  4. Stop once |V|−1 edges are accepted: the graph is then connected.
//
// Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
func Kruskal(g *core.Graph) ([]core.Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}

	vertices := g.Vertices()
	mst := make([]core.Edge, 0, max(len(vertices)-1, 0))
	if len(vertices) < 2 {
		return mst, 0, nil
	}

	all := g.Edges()
	edges := all[:0]
	for _, e := range all {
		if e.From != e.To {
			edges = append(edges, e)
		}
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	ds := disjointset.New(vertices...)
	var total float64
	for _, e := range edges {
		merged, err := ds.Union(e.From, e.To)
		if err != nil {
			return nil, 0, fmt.Errorf("prim_kruskal: Kruskal: %w", err)
		}
		if !merged {
			continue
		}
		mst = append(mst, e)
		total += e.Weight
		if len(mst) == len(vertices)-1 {
			break
		}
	}

	return mst, total, nil
}
