// SPDX-License-Identifier: MIT

package shortestpath_test

import (
	"testing"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/shortestpath"
)

var sinkPath shortestpath.Path

func BenchmarkStrategies_Grid(b *testing.B) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithIntWeights(1, 9)},
		builder.Grid(20, 20),
	)
	if err != nil {
		b.Fatal(err)
	}
	s, d := builder.GridID(0, 0), builder.GridID(19, 19)

	for _, m := range shortestpath.Methods() {
		b.Run(m, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				p, err := shortestpath.Compute(g, s, d, shortestpath.WithMethod(m))
				if err != nil {
					b.Fatal(err)
				}
				sinkPath = p
			}
		})
	}
}
