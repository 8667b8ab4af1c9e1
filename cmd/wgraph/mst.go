// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/core"
	pk "github.com/katalvlaran/wgraph/prim_kruskal"
)

func (a *app) newMSTCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Compute a minimum spanning tree (or forest)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			res, err := a.runMST(g, a.v.GetString(keyMethod), a.v.GetString(keyRoot))
			if err != nil {
				return err
			}

			return a.emit(res)
		},
	}
	cmd.Flags().String(keyMethod, pk.MethodKruskal, "algorithm: kruskal or prim")
	cmd.Flags().String(keyRoot, "", "start vertex for prim; empty spans every component")

	return cmd
}

func (a *app) runMST(g *core.Graph, method, root string) (mstResult, error) {
	edges, total, err := pk.Compute(g, pk.WithMethod(method), pk.WithRoot(root))
	if err != nil {
		return mstResult{}, err
	}
	a.log.Debug("mst computed", "method", method, "root", root, "edges", len(edges), "weight", total)

	res := mstResult{Method: method, Weight: total, Edges: make([]edgeSpec, len(edges))}
	if method == pk.MethodPrim {
		res.Root = root
	}
	for i, e := range edges {
		res.Edges[i] = edgeSpec{From: e.From, To: e.To, Weight: e.Weight}
	}

	return res, nil
}
