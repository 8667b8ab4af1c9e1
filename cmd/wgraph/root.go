// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/wgraph/core"
)

const envPrefix = "WGRAPH"

// Flag and config keys shared by several commands.
const (
	keyEdge     = "edge"
	keyScenario = "scenario"
	keyOutput   = "output"
	keyLogLevel = "log-level"
	keyEnvFile  = "env-file"
	keyMethod   = "method"
	keyFrom     = "from"
	keyTo       = "to"
	keyRoot     = "root"
)

const (
	outputText = "text"
	outputJSON = "json"
)

var errNoGraph = errors.New("no graph given: use --edge or --scenario")

// app carries the state shared by one command tree.
type app struct {
	v      *viper.Viper
	out    io.Writer
	errOut io.Writer
	log    *slog.Logger
	edges  edgeList
}

// newRootCmd builds a fresh command tree writing results to out and logs to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{
		v:      viper.New(),
		out:    out,
		errOut: errOut,
		log:    slog.New(slog.NewTextHandler(errOut, nil)),
	}

	cmd := &cobra.Command{
		Use:               "wgraph",
		Short:             "Connectivity, MST and shortest paths on weighted undirected graphs",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	pf := cmd.PersistentFlags()
	pf.Var(&a.edges, keyEdge, "edge as FROM,TO[,WEIGHT] (repeatable, weight defaults to 1)")
	pf.String(keyScenario, "", "built-in graph: "+strings.Join(scenarioNames(), ", "))
	pf.StringP(keyOutput, "o", outputText, "output format: text or json")
	pf.String(keyLogLevel, "info", "log level: debug, info, warn or error")
	pf.String(keyEnvFile, "", "load environment variables from this file")

	cmd.AddCommand(
		a.newComponentsCmd(),
		a.newMSTCmd(),
		a.newPathCmd(),
		a.newScenariosCmd(),
	)

	return cmd
}

// setup loads the env file, binds flags and environment into viper and
// builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	// AutomaticEnv reads lazily, so variables from the file apply to every
	// key below.
	if f := a.v.GetString(keyEnvFile); f != "" {
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load env file %q: %w", f, err)
		}
	}

	// WGRAPH_EDGE holds whitespace-separated edges; --edge flags win.
	if len(a.edges) == 0 {
		for _, s := range strings.Fields(a.v.GetString(keyEdge)) {
			if err := a.edges.Set(s); err != nil {
				return fmt.Errorf("%s_EDGE: %w", envPrefix, err)
			}
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.v.GetString(keyLogLevel))); err != nil {
		return fmt.Errorf("invalid --%s: %w", keyLogLevel, err)
	}
	a.log = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))

	switch o := a.v.GetString(keyOutput); o {
	case outputText, outputJSON:
	default:
		return fmt.Errorf("invalid --%s %q: want %s or %s", keyOutput, o, outputText, outputJSON)
	}

	return nil
}

func (a *app) jsonOutput() bool {
	return a.v.GetString(keyOutput) == outputJSON
}

// loadGraph builds the graph from --scenario, then applies --edge flags on top.
func (a *app) loadGraph() (*core.Graph, error) {
	name := a.v.GetString(keyScenario)
	if name == "" && len(a.edges) == 0 {
		return nil, errNoGraph
	}

	g := core.NewGraph()
	if name != "" {
		sc, err := lookupScenario(name)
		if err != nil {
			return nil, err
		}
		if g, err = sc.graph(); err != nil {
			return nil, err
		}
	}
	if err := a.edges.apply(g); err != nil {
		return nil, err
	}
	a.log.Debug("graph loaded",
		"scenario", name,
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
	)

	return g, nil
}
