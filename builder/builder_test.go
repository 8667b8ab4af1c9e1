// SPDX-License-Identifier: MIT

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/core"
)

func TestBuilders_Topology(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
		check func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("0", "1"))
				assert.True(t, g.HasEdge("2", "3"))
				assert.False(t, g.HasEdge("3", "0"))
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("4", "0"))
			},
		},
		{
			name: "Complete(5)", ctor: builder.Complete(5), wantV: 5, wantE: 10,
			check: func(t *testing.T, g *core.Graph) {
				d, err := g.Degree("3")
				require.NoError(t, err)
				assert.Equal(t, 4, d)
			},
		},
		{name: "Complete(1)", ctor: builder.Complete(1), wantV: 1, wantE: 0},
		{
			name: "Star(4)", ctor: builder.Star(4), wantV: 4, wantE: 3,
			check: func(t *testing.T, g *core.Graph) {
				d, err := g.Degree("0")
				require.NoError(t, err)
				assert.Equal(t, 3, d)
			},
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(builder.GridID(0, 0), builder.GridID(0, 1)))
				assert.True(t, g.HasEdge(builder.GridID(0, 2), builder.GridID(1, 2)))
				assert.False(t, g.HasEdge(builder.GridID(0, 0), builder.GridID(1, 1)))
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			for _, e := range g.Edges() {
				assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
			}
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Path(1)", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), nil, builder.ErrTooFewVertices},
		{"RandomSparse(0,.5)", builder.RandomSparse(0, 0.5), nil, builder.ErrTooFewVertices},
		{"RandomSparse(p<0)", builder.RandomSparse(5, -0.1), nil, builder.ErrInvalidProbability},
		{"RandomSparse(p>1)", builder.RandomSparse(5, 1.1), nil, builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(5, 0.5), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		_, err := builder.BuildGraph(tc.opts, tc.ctor)
		assert.ErrorIs(t, err, tc.want, tc.name)
	}
}

func TestRandomSparse_Determinism(t *testing.T) {
	t.Parallel()

	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithIntWeights(1, 9)}
	g1, err := builder.BuildGraph(opts, builder.RandomSparse(30, 0.1))
	require.NoError(t, err)
	opts = []builder.BuilderOption{builder.WithSeed(42), builder.WithIntWeights(1, 9)}
	g2, err := builder.BuildGraph(opts, builder.RandomSparse(30, 0.1))
	require.NoError(t, err)

	assert.Equal(t, g1.Edges(), g2.Edges())
	for _, e := range g1.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.LessOrEqual(t, e.Weight, 9.0)
		assert.Equal(t, float64(int(e.Weight)), e.Weight)
	}
}

func TestRandomSparse_Extremes(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.RandomSparse(6, 0))
	require.NoError(t, err)
	assert.Equal(t, 6, g.VertexCount())
	assert.Zero(t, g.EdgeCount())

	g, err = builder.BuildGraph(nil, builder.RandomSparse(6, 1))
	require.NoError(t, err)
	assert.Equal(t, 15, g.EdgeCount())
}

func TestBuildGraph_ComposeAndIDs(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithLetterIDs(), builder.WithConstantWeight(2.5)},
		builder.Path(3),
		builder.Star(3),
	)
	require.NoError(t, err)
	// Path A─B─C then Star A─B, A─C: the shared edge is overwritten, not duplicated.
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())
	w, err := g.Weight("A", "C")
	require.NoError(t, err)
	assert.Equal(t, 2.5, w)
}

func TestApply(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	require.NoError(t, g.AddVertex("X"))
	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithPrefixIDs("v")}, builder.Cycle(3)))
	assert.Equal(t, []string{"X", "v0", "v1", "v2"}, g.Vertices())

	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Path(2)), builder.ErrConstructFailed)
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.NotPanics(t, func() { builder.WithRand(rand.New(rand.NewSource(1))) })
}
