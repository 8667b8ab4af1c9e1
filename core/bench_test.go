// SPDX-License-Identifier: MIT

package core_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/wgraph/core"
)

// BenchmarkAddEdge measures insert-or-update cost on a growing path.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph(core.WithCapacity(b.N + 1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(strconv.Itoa(i), strconv.Itoa(i+1), float64(i%10))
	}
}

// BenchmarkNeighbors measures sorted adjacency retrieval on a hub vertex.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 256; i++ {
		_ = g.AddEdge("hub", "v"+strconv.Itoa(i), 1)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors("hub")
	}
}
