// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// textWriter is a result that can render itself for humans.
type textWriter interface {
	writeText(w io.Writer)
}

// emit prints v as indented JSON or as text, depending on --output.
func (a *app) emit(v textWriter) error {
	if a.jsonOutput() {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	v.writeText(a.out)

	return nil
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}

type componentsResult struct {
	Method     string     `json:"method"`
	Count      int        `json:"count"`
	Components [][]string `json:"components"`
}

func (r componentsResult) writeText(w io.Writer) {
	fmt.Fprintf(w, "components (%s): %d\n", r.Method, r.Count)
	for i, c := range r.Components {
		fmt.Fprintf(w, "  %d: [%s]\n", i+1, strings.Join(c, " "))
	}
}

type mstResult struct {
	Method string     `json:"method"`
	Root   string     `json:"root,omitempty"`
	Weight float64    `json:"weight"`
	Edges  []edgeSpec `json:"edges"`
}

func (r mstResult) writeText(w io.Writer) {
	label := r.Method
	if r.Root != "" {
		label += " from " + r.Root
	}
	fmt.Fprintf(w, "mst (%s): weight %s, %d edges\n", label, formatWeight(r.Weight), len(r.Edges))
	for _, e := range r.Edges {
		fmt.Fprintf(w, "  %s-%s %s\n", e.From, e.To, formatWeight(e.Weight))
	}
}

// pathResult is JSON-safe: infinite weights are reported through Reachable
// and NegativeCycle with Weight left nil.
type pathResult struct {
	Method        string   `json:"method"`
	From          string   `json:"from"`
	To            string   `json:"to"`
	Reachable     bool     `json:"reachable"`
	NegativeCycle bool     `json:"negative_cycle,omitempty"`
	Vertices      []string `json:"vertices"`
	Weight        *float64 `json:"weight,omitempty"`
}

func (r pathResult) writeText(w io.Writer) {
	fmt.Fprintf(w, "path %s -> %s (%s): ", r.From, r.To, r.Method)
	switch {
	case r.NegativeCycle:
		fmt.Fprintln(w, "negative cycle, weight -Inf")
	case !r.Reachable:
		fmt.Fprintln(w, "unreachable, weight +Inf")
	default:
		fmt.Fprintf(w, "%s (weight %s)\n", strings.Join(r.Vertices, " -> "), formatWeight(*r.Weight))
	}
}

func newPathResult(method, from, to string, vertices []string, weight float64) pathResult {
	r := pathResult{
		Method:        method,
		From:          from,
		To:            to,
		Vertices:      vertices,
		NegativeCycle: math.IsInf(weight, -1),
	}
	if r.Vertices == nil {
		r.Vertices = []string{}
	}
	if !math.IsInf(weight, 0) {
		r.Reachable = true
		r.Weight = &weight
	}

	return r
}
