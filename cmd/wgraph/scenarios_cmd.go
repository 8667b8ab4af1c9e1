// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	pk "github.com/katalvlaran/wgraph/prim_kruskal"
	"github.com/katalvlaran/wgraph/shortestpath"
)

func (a *app) newScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios [name...]",
		Short: "List the built-in graphs, or run every algorithm on the named ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.emit(scenarioList(scenarios))
			}

			var demos demoList
			for _, name := range args {
				sc, err := lookupScenario(name)
				if err != nil {
					return err
				}
				d, err := a.runDemo(sc)
				if err != nil {
					return err
				}
				demos = append(demos, d)
			}

			return a.emit(demos)
		},
	}
}

type scenarioList []scenario

func (l scenarioList) writeText(w io.Writer) {
	for _, sc := range l {
		fmt.Fprintf(w, "%-9s %s\n", sc.Name, sc.Description)
		for _, e := range sc.Edges {
			fmt.Fprintf(w, "          %s-%s %s\n", e.From, e.To, formatWeight(e.Weight))
		}
	}
}

// demo is every algorithm run over one scenario.
type demo struct {
	Scenario   string             `json:"scenario"`
	Vertices   []string           `json:"vertices"`
	Components []componentsResult `json:"components"`
	MST        []mstResult        `json:"mst"`
	Paths      []pathResult       `json:"paths,omitempty"`
}

type demoList []demo

func (l demoList) writeText(w io.Writer) {
	for i, d := range l {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "== %s: [%s]\n", d.Scenario, strings.Join(d.Vertices, " "))
		for _, r := range d.Components {
			r.writeText(w)
		}
		for _, r := range d.MST {
			r.writeText(w)
		}
		for _, r := range d.Paths {
			r.writeText(w)
		}
	}
}

// runDemo runs every strategy of every engine on sc. A negative cycle is
// part of the output, not a failure.
func (a *app) runDemo(sc scenario) (demo, error) {
	g, err := sc.graph()
	if err != nil {
		return demo{}, err
	}
	d := demo{Scenario: sc.Name, Vertices: g.Vertices()}

	for _, m := range componentMethods {
		r, err := a.runComponents(g, m)
		if err != nil {
			return demo{}, err
		}
		d.Components = append(d.Components, r)
	}
	for _, m := range []string{pk.MethodKruskal, pk.MethodPrim} {
		r, err := a.runMST(g, m, "")
		if err != nil {
			return demo{}, err
		}
		d.MST = append(d.MST, r)
	}
	if sc.From == "" {
		return d, nil
	}
	for _, m := range shortestpath.Methods() {
		r, err := a.runPath(g, m, sc.From, sc.To)
		if err != nil && !errors.Is(err, shortestpath.ErrNegativeCycle) {
			return demo{}, err
		}
		d.Paths = append(d.Paths, r)
	}

	return d, nil
}
