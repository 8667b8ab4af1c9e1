// SPDX-License-Identifier: MIT

package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
	pk "github.com/katalvlaran/wgraph/prim_kruskal"
)

// ExampleKruskal computes the MST of a four-vertex graph.
func ExampleKruskal() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 4)
	_ = g.AddEdge("B", "C", 3)
	_ = g.AddEdge("B", "D", 2)
	_ = g.AddEdge("D", "A", 1)
	_ = g.AddEdge("A", "C", 2)

	edges, total, _ := pk.Kruskal(g)
	fmt.Printf("Total: %g, Edges:", total)
	for _, e := range edges {
		fmt.Printf(" %s-%s", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 5, Edges: A-D A-C B-D
}

// ExamplePrim grows the same tree from B.
func ExamplePrim() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 4)
	_ = g.AddEdge("B", "C", 3)
	_ = g.AddEdge("B", "D", 2)
	_ = g.AddEdge("D", "A", 1)
	_ = g.AddEdge("A", "C", 2)

	edges, total, _ := pk.Prim(g, "B")
	fmt.Printf("Total: %g, Edges:", total)
	for _, e := range edges {
		fmt.Printf(" %s-%s", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 5, Edges: B-D A-D A-C
}
