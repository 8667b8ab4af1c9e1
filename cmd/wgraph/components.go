// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/components"
	"github.com/katalvlaran/wgraph/core"
)

var componentMethods = []components.Method{
	components.MethodBFS,
	components.MethodDFS,
	components.MethodUnionFind,
}

func parseComponentsMethod(s string) (components.Method, error) {
	for _, m := range componentMethods {
		if m.String() == s {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", components.ErrUnknownMethod, s)
}

func (a *app) newComponentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "components",
		Short: "Partition the graph into connected components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := parseComponentsMethod(a.v.GetString(keyMethod))
			if err != nil {
				return err
			}
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			res, err := a.runComponents(g, m)
			if err != nil {
				return err
			}

			return a.emit(res)
		},
	}
	cmd.Flags().String(keyMethod, components.MethodBFS.String(), "strategy: bfs, dfs or unionfind")

	return cmd
}

func (a *app) runComponents(g *core.Graph, m components.Method) (componentsResult, error) {
	comps, err := components.Compute(g, components.WithMethod(m))
	if err != nil {
		return componentsResult{}, err
	}
	a.log.Debug("components computed", "method", m, "count", len(comps))

	return componentsResult{Method: m.String(), Count: len(comps), Components: comps}, nil
}
