// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/wgraph/core"
)

// edgeSpec is one undirected weighted edge given on the command line or in a
// scenario.
type edgeSpec struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

func (e edgeSpec) String() string {
	return e.From + "," + e.To + "," + strconv.FormatFloat(e.Weight, 'g', -1, 64)
}

// parseEdge reads FROM,TO[,WEIGHT].
func parseEdge(s string) (edgeSpec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 && len(parts) != 3 {
		return edgeSpec{}, fmt.Errorf("edge %q: want FROM,TO[,WEIGHT]", s)
	}
	e := edgeSpec{
		From:   strings.TrimSpace(parts[0]),
		To:     strings.TrimSpace(parts[1]),
		Weight: 1,
	}
	if e.From == "" || e.To == "" {
		return edgeSpec{}, fmt.Errorf("edge %q: %w", s, core.ErrEmptyVertexID)
	}
	if len(parts) == 3 {
		w, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return edgeSpec{}, fmt.Errorf("edge %q: weight: %w", s, err)
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return edgeSpec{}, fmt.Errorf("edge %q: %w", s, core.ErrBadWeight)
		}
		e.Weight = w
	}

	return e, nil
}

// edgeList collects repeated --edge flags.
type edgeList []edgeSpec

var _ pflag.Value = (*edgeList)(nil)

func (l *edgeList) String() string {
	parts := make([]string, len(*l))
	for i, e := range *l {
		parts[i] = e.String()
	}

	return strings.Join(parts, " ")
}

func (l *edgeList) Set(s string) error {
	e, err := parseEdge(s)
	if err != nil {
		return err
	}
	*l = append(*l, e)

	return nil
}

func (l *edgeList) Type() string { return "edge" }

// apply adds every edge to g in order.
func (l edgeList) apply(g *core.Graph) error {
	for _, e := range l {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("add edge %s: %w", e, err)
		}
	}

	return nil
}
