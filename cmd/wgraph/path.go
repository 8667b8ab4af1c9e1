// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/shortestpath"
)

func (a *app) newPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Find a shortest path between two vertices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, to := a.v.GetString(keyFrom), a.v.GetString(keyTo)
			if from == "" || to == "" {
				return fmt.Errorf("both --%s and --%s are required", keyFrom, keyTo)
			}
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			res, err := a.runPath(g, a.v.GetString(keyMethod), from, to)
			if err != nil && !errors.Is(err, shortestpath.ErrNegativeCycle) {
				return err
			}
			if emitErr := a.emit(res); emitErr != nil {
				return emitErr
			}

			return err
		},
	}
	cmd.Flags().String(keyMethod, shortestpath.MethodDijkstra,
		"algorithm: "+strings.Join(shortestpath.Methods(), ", "))
	cmd.Flags().String(keyFrom, "", "source vertex")
	cmd.Flags().String(keyTo, "", "destination vertex")

	return cmd
}

// runPath returns a filled result together with ErrNegativeCycle so callers
// can still show it.
func (a *app) runPath(g *core.Graph, method, from, to string) (pathResult, error) {
	p, err := shortestpath.Compute(g, from, to, shortestpath.WithMethod(method))
	if err != nil && !errors.Is(err, shortestpath.ErrNegativeCycle) {
		return pathResult{}, err
	}
	a.log.Debug("path computed", "method", method, "from", from, "to", to, "weight", p.Weight)

	return newPathResult(method, from, to, p.Vertices, p.Weight), err
}
