// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/wgraph/core"
)

var errUnknownScenario = errors.New("unknown scenario")

// scenario is a built-in demonstration graph with a default path query.
type scenario struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Vertices    []string   `json:"vertices,omitempty"`
	Edges       []edgeSpec `json:"edges"`
	From        string     `json:"from,omitempty"`
	To          string     `json:"to,omitempty"`
}

var scenarios = []scenario{
	{
		Name:        "diamond",
		Description: "four vertices, one component, MST weight 5; B-D is added twice",
		Edges: []edgeSpec{
			{"A", "B", 4}, {"B", "C", 3}, {"B", "D", 2},
			{"D", "A", 1}, {"A", "C", 2}, {"B", "D", 2},
		},
		From: "A",
		To:   "B",
	},
	{
		Name:        "disjoint",
		Description: "three components; A cannot reach C",
		Edges: []edgeSpec{
			{"A", "B", 4}, {"C", "D", 4}, {"E", "F", 1}, {"F", "G", 1},
		},
		From: "A",
		To:   "C",
	},
	{
		Name:        "negative",
		Description: "a negative edge, which is a negative cycle in an undirected graph",
		Edges: []edgeSpec{
			{"A", "B", 1}, {"B", "C", -3}, {"C", "D", 2},
		},
		From: "A",
		To:   "D",
	},
	{
		Name:        "single",
		Description: "one isolated vertex",
		Vertices:    []string{"X"},
		From:        "X",
		To:          "X",
	},
	{
		Name:        "empty",
		Description: "no vertices at all",
	},
}

func scenarioNames() []string {
	names := make([]string, len(scenarios))
	for i, sc := range scenarios {
		names[i] = sc.Name
	}
	sort.Strings(names)

	return names
}

func lookupScenario(name string) (scenario, error) {
	for _, sc := range scenarios {
		if sc.Name == name {
			return sc, nil
		}
	}

	return scenario{}, fmt.Errorf("%w %q (known: %v)", errUnknownScenario, name, scenarioNames())
}

// graph builds a fresh core.Graph for the scenario.
func (sc scenario) graph() (*core.Graph, error) {
	g := core.NewGraph()
	for _, v := range sc.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
	}
	if err := edgeList(sc.Edges).apply(g); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	return g, nil
}
