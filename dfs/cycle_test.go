// SPDX-License-Identifier: MIT

package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dfs"
)

func TestFindCycle_NilGraph(t *testing.T) {
	_, err := dfs.FindCycle(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestFindCycle_Forest(t *testing.T) {
	g := buildTree(t)
	require.NoError(t, g.AddEdge("X", "Y", 1))

	cycle, err := dfs.FindCycle(g)
	require.NoError(t, err)
	assert.Nil(t, cycle)

	has, err := dfs.HasCycle(core.NewGraph())
	require.NoError(t, err)
	assert.False(t, has)
}

func TestFindCycle_SelfLoop(t *testing.T) {
	g := buildTree(t)
	require.NoError(t, g.AddEdge("E", "E", 1))

	cycle, err := dfs.FindCycle(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"E"}, cycle)
}

func TestFindCycle_Triangle(t *testing.T) {
	g := buildTree(t)
	require.NoError(t, g.AddEdge("D", "A", 1))

	cycle, err := dfs.FindCycle(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, cycle)

	// every consecutive pair, and the closing pair, must be an edge
	for i := range cycle {
		assert.True(t, g.HasEdge(cycle[i], cycle[(i+1)%len(cycle)]))
	}
}

func TestHasCycle_SecondComponent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))
	require.NoError(t, g.AddEdge("D", "E", 1))
	require.NoError(t, g.AddEdge("E", "C", 1))

	has, err := dfs.HasCycle(g)
	require.NoError(t, err)
	assert.True(t, has)
}
