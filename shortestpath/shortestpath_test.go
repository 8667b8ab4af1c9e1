// SPDX-License-Identifier: MIT

package shortestpath_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/shortestpath"
)

// strategy adapts every method to one signature.
type strategy struct {
	name string
	fn   func(g *core.Graph, s, d string) (shortestpath.Path, error)
}

var strategies = []strategy{
	{shortestpath.MethodDijkstra, shortestpath.Dijkstra},
	{shortestpath.MethodBellmanFord, shortestpath.BellmanFord},
	{shortestpath.MethodFloydWarshall, shortestpath.FloydWarshallPath},
	{shortestpath.MethodAStar, func(g *core.Graph, s, d string) (shortestpath.Path, error) {
		return shortestpath.AStar(g, s, d, nil)
	}},
}

// buildDiamond: A-B:4, B-C:3, B-D:2, D-A:1, A-C:2.
func buildDiamond(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 4))
	require.NoError(t, g.AddEdge("B", "C", 3))
	require.NoError(t, g.AddEdge("B", "D", 2))
	require.NoError(t, g.AddEdge("D", "A", 1))
	require.NoError(t, g.AddEdge("A", "C", 2))

	return g
}

// buildDisjoint: A-B:4, C-D:4, E-F:1, F-G:1.
func buildDisjoint(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 4))
	require.NoError(t, g.AddEdge("C", "D", 4))
	require.NoError(t, g.AddEdge("E", "F", 1))
	require.NoError(t, g.AddEdge("F", "G", 1))

	return g
}

// pathWeight sums the edge weights along p, failing on a missing edge.
func pathWeight(t *testing.T, g *core.Graph, p []string) float64 {
	t.Helper()
	var sum float64
	for i := 1; i < len(p); i++ {
		w, err := g.Weight(p[i-1], p[i])
		require.NoErrorf(t, err, "edge %s-%s", p[i-1], p[i])
		sum += w
	}

	return sum
}

// bruteForce returns the minimum weight over all simple s → d paths.
func bruteForce(g *core.Graph, s, d string) float64 {
	best := math.Inf(1)
	onPath := map[string]bool{s: true}
	var walk func(u string, acc float64)
	walk = func(u string, acc float64) {
		if u == d {
			best = math.Min(best, acc)
			return
		}
		nbrs, _ := g.Neighbors(u)
		for _, nb := range nbrs {
			if onPath[nb.ID] {
				continue
			}
			onPath[nb.ID] = true
			walk(nb.ID, acc+nb.Weight)
			onPath[nb.ID] = false
		}
	}
	walk(s, 0)

	return best
}

func TestStrategies_Diamond(t *testing.T) {
	g := buildDiamond(t)
	for _, st := range strategies {
		t.Run(st.name, func(t *testing.T) {
			p, err := st.fn(g, "A", "B")
			require.NoError(t, err)
			assert.Equal(t, 3.0, p.Weight)
			assert.Equal(t, []string{"A", "D", "B"}, p.Vertices)
			assert.Equal(t, bruteForce(g, "A", "B"), p.Weight)

			p, err = st.fn(g, "C", "D")
			require.NoError(t, err)
			assert.Equal(t, 3.0, p.Weight)
			assert.Equal(t, []string{"C", "A", "D"}, p.Vertices)
		})
	}
}

func TestStrategies_Disjoint(t *testing.T) {
	g := buildDisjoint(t)
	for _, st := range strategies {
		t.Run(st.name, func(t *testing.T) {
			p, err := st.fn(g, "A", "C")
			require.NoError(t, err)
			assert.NotNil(t, p.Vertices)
			assert.Empty(t, p.Vertices)
			assert.True(t, math.IsInf(p.Weight, 1))
			assert.False(t, p.Reachable())

			p, err = st.fn(g, "E", "G")
			require.NoError(t, err)
			assert.Equal(t, []string{"E", "F", "G"}, p.Vertices)
			assert.Equal(t, 2.0, p.Weight)
			assert.True(t, p.Reachable())
		})
	}
}

func TestStrategies_Boundaries(t *testing.T) {
	single := core.NewGraph()
	require.NoError(t, single.AddVertex("X"))
	empty := core.NewGraph()
	diamond := buildDiamond(t)

	for _, st := range strategies {
		t.Run(st.name, func(t *testing.T) {
			p, err := st.fn(single, "X", "X")
			require.NoError(t, err)
			assert.Equal(t, shortestpath.Path{Vertices: []string{"X"}, Weight: 0}, p)

			_, err = st.fn(empty, "X", "Y")
			assert.ErrorIs(t, err, shortestpath.ErrVertexNotFound)
			_, err = st.fn(diamond, "A", "Z")
			assert.ErrorIs(t, err, shortestpath.ErrVertexNotFound)
			assert.ErrorIs(t, err, core.ErrVertexNotFound)
			_, err = st.fn(diamond, "Z", "A")
			assert.ErrorIs(t, err, shortestpath.ErrVertexNotFound)
			_, err = st.fn(nil, "A", "B")
			assert.ErrorIs(t, err, shortestpath.ErrNilGraph)
		})
	}
}

func TestStrategies_AgreeOnRandomGraphs(t *testing.T) {
	for seed := int64(1); seed <= 15; seed++ {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntWeights(1, 9)},
			builder.RandomSparse(7, 0.35),
		)
		require.NoError(t, err)
		ap, err := shortestpath.FloydWarshall(g)
		require.NoError(t, err)
		require.False(t, ap.HasNegativeCycle())

		verts := g.Vertices()
		for _, s := range verts {
			for _, d := range verts {
				want := bruteForce(g, s, d)
				if s == d {
					want = 0
				}
				fw, err := ap.Distance(s, d)
				require.NoError(t, err)
				assert.Equalf(t, want, fw, "seed %d fw %s→%s", seed, s, d)

				for _, st := range strategies {
					p, err := st.fn(g, s, d)
					require.NoError(t, err)
					assert.Equalf(t, want, p.Weight, "seed %d %s %s→%s", seed, st.name, s, d)
					if p.Reachable() {
						assert.Equal(t, s, p.Vertices[0])
						assert.Equal(t, d, p.Vertices[len(p.Vertices)-1])
						assert.Equalf(t, p.Weight, pathWeight(t, g, p.Vertices),
							"seed %d %s path sum", seed, st.name)
					}
				}
			}
		}
	}
}

func TestFloydWarshall_PathSumsToDistance(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithIntWeights(1, 20)},
		builder.RandomSparse(25, 0.15),
	)
	require.NoError(t, err)
	ap, err := shortestpath.FloydWarshall(g)
	require.NoError(t, err)

	for _, s := range ap.Vertices() {
		for _, d := range ap.Vertices() {
			p, err := ap.Path(s, d)
			require.NoError(t, err)
			dist, err := ap.Distance(s, d)
			require.NoError(t, err)
			if !p.Reachable() {
				assert.True(t, math.IsInf(dist, 1))
				continue
			}
			assert.Equal(t, dist, p.Weight)
			assert.Equalf(t, dist, pathWeight(t, g, p.Vertices), "%s→%s", s, d)
		}
	}
}

func TestFloydWarshall_EmptyAndNil(t *testing.T) {
	ap, err := shortestpath.FloydWarshall(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, ap.Vertices())
	assert.False(t, ap.HasNegativeCycle())
	_, err = ap.Distance("A", "B")
	assert.ErrorIs(t, err, shortestpath.ErrVertexNotFound)

	_, err = shortestpath.FloydWarshall(nil)
	assert.ErrorIs(t, err, shortestpath.ErrNilGraph)
}

func TestNegativeCycle(t *testing.T) {
	// Any negative undirected edge is a two-step negative cycle.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", -3))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddVertex("Z"))

	p, err := shortestpath.BellmanFord(g, "A", "C")
	assert.ErrorIs(t, err, shortestpath.ErrNegativeCycle)
	assert.Nil(t, p.Vertices)
	assert.True(t, math.IsInf(p.Weight, -1))

	// Reported even though the destination is not on the cycle.
	_, err = shortestpath.BellmanFord(g, "C", "B")
	assert.ErrorIs(t, err, shortestpath.ErrNegativeCycle)

	// Not reachable from Z.
	p, err = shortestpath.BellmanFord(g, "Z", "A")
	require.NoError(t, err)
	assert.True(t, math.IsInf(p.Weight, 1))

	ap, err := shortestpath.FloydWarshall(g)
	require.NoError(t, err)
	assert.True(t, ap.HasNegativeCycle())
	_, err = ap.Path("A", "C")
	assert.ErrorIs(t, err, shortestpath.ErrNegativeCycle)
}

func TestNegativeSelfLoop(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 2))
	require.NoError(t, g.AddEdge("B", "B", -1))

	_, err := shortestpath.BellmanFord(g, "A", "B")
	assert.ErrorIs(t, err, shortestpath.ErrNegativeCycle)

	ap, err := shortestpath.FloydWarshall(g)
	require.NoError(t, err)
	assert.True(t, ap.HasNegativeCycle())
}

func TestPositiveSelfLoopIgnored(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "A", 5))
	require.NoError(t, g.AddEdge("A", "B", 2))

	for _, st := range strategies {
		p, err := st.fn(g, "A", "B")
		require.NoError(t, err, st.name)
		assert.Equal(t, []string{"A", "B"}, p.Vertices, st.name)
		assert.Equal(t, 2.0, p.Weight, st.name)
	}
}

func TestAStar_GridHeuristic(t *testing.T) {
	const rows, cols = 6, 8
	g, err := builder.BuildGraph(nil, builder.Grid(rows, cols))
	require.NoError(t, err)

	coords := make(map[string][2]float64, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			coords[builder.GridID(r, c)] = [2]float64{float64(r), float64(c)}
		}
	}
	s, d := builder.GridID(0, 0), builder.GridID(rows-1, cols-1)

	want, err := shortestpath.Dijkstra(g, s, d)
	require.NoError(t, err)
	got, err := shortestpath.AStar(g, s, d, shortestpath.EuclideanHeuristic(coords))
	require.NoError(t, err)
	assert.Equal(t, want.Weight, got.Weight)
	assert.Equal(t, float64(rows-1+cols-1), got.Weight)
	assert.Len(t, got.Vertices, rows+cols-1)
}

func TestAStar_InadmissibleHeuristicStillReturnsAPath(t *testing.T) {
	g := buildDiamond(t)
	// Overestimates badly for D, so A* may settle B via the direct edge.
	h := func(v, _ string) float64 {
		if v == "D" {
			return 100
		}
		return 0
	}
	p, err := shortestpath.AStar(g, "A", "B", h)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, p.Vertices)
	assert.Equal(t, 4.0, p.Weight)
}

func TestCompute(t *testing.T) {
	g := buildDiamond(t)
	for _, m := range shortestpath.Methods() {
		p, err := shortestpath.Compute(g, "A", "C", shortestpath.WithMethod(m))
		require.NoError(t, err, m)
		assert.Equal(t, 2.0, p.Weight, m)
	}

	p, err := shortestpath.Compute(g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, 3.0, p.Weight)

	p, err = shortestpath.Compute(g, "A", "B",
		shortestpath.WithMethod(shortestpath.MethodAStar),
		shortestpath.WithHeuristic(shortestpath.ZeroHeuristic))
	require.NoError(t, err)
	assert.Equal(t, 3.0, p.Weight)

	_, err = shortestpath.Compute(g, "A", "B", shortestpath.WithMethod("bfs"))
	assert.ErrorIs(t, err, shortestpath.ErrUnknownMethod)
}

func TestIdempotentEdgeReAdd(t *testing.T) {
	g := buildDiamond(t)
	before := g.Edges()
	require.NoError(t, g.AddEdge("A", "B", 4))
	assert.Equal(t, before, g.Edges())

	p, err := shortestpath.Dijkstra(g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, 3.0, p.Weight, fmt.Sprint(p.Vertices))
}
