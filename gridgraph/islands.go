// SPDX-License-Identifier: MIT

package gridgraph

import (
	"github.com/katalvlaran/wgraph/components"
)

// Islands returns the connected regions of land cells as lists of vertex IDs.
// By default it uses union-find, which lists islands and their cells in
// row-major order of first appearance; opts may select another method.
// Complexity: O(W×H×d).
func (gg *GridGraph) Islands(opts ...components.Option) ([][]string, error) {
	all := append([]components.Option{components.WithMethod(components.MethodUnionFind)}, opts...)

	return components.Compute(gg.ToCoreGraph(), all...)
}
