// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
)

// ExampleDijkstra computes shortest paths on a simple triangle graph.
func ExampleDijkstra() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "C", 5)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[A]=%g, dist[B]=%g, dist[C]=%g\n", dist["A"], dist["B"], dist["C"])
	fmt.Println(dijkstra.PathTo(prev, "A", "C"))
	// Output:
	// dist[A]=0, dist[B]=1, dist[C]=3
	// [A B C]
}
