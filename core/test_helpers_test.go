// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexE = "E"
	VertexX = "X"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight1    = 1.0
	Weight2    = 2.0
	Weight3    = 3.0
	Weight4    = 4.0
	WeightHalf = 0.5
	WeightNeg  = -3.0
)

// Concurrency sizes for read-only fan-out tests.
const (
	NReaders = 32
	NRounds  = 100
)

// buildDiamond returns the reference graph
// A─B(4), B─C(3), B─D(2), D─A(1), A─C(2).
func buildDiamond(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range []core.Edge{
		{From: VertexA, To: VertexB, Weight: Weight4},
		{From: VertexB, To: VertexC, Weight: Weight3},
		{From: VertexB, To: VertexD, Weight: Weight2},
		{From: VertexD, To: VertexA, Weight: Weight1},
		{From: VertexA, To: VertexC, Weight: Weight2},
	} {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	return g
}

// mustWeight fetches a weight and fails the test on error.
func mustWeight(t testing.TB, g *core.Graph, u, v string) float64 {
	t.Helper()
	w, err := g.Weight(u, v)
	require.NoError(t, err, "Weight(%s,%s)", u, v)

	return w
}
