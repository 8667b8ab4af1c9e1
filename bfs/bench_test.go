// SPDX-License-Identifier: MIT

package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/core"
)

func BenchmarkBFS_Chain(b *testing.B) {
	g := buildChain(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "0")
	}
}

func BenchmarkBFS_BinaryTree(b *testing.B) {
	g := core.NewGraph()
	for i := 1; i < 1023; i++ {
		_ = g.AddEdge(fmt.Sprint((i-1)/2), fmt.Sprint(i), 1)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "0")
	}
}
