// SPDX-License-Identifier: MIT

// Command wgraph runs the connectivity, spanning-tree and shortest-path
// algorithms of this module on a graph given by --edge flags or a built-in
// scenario.
//
//	wgraph components --scenario disjoint --method unionfind
//	wgraph mst --edge A,B,4 --edge B,C,1 --edge A,C,2 --method prim --root A
//	wgraph path --scenario diamond --from A --to B --method bellman-ford -o json
//	wgraph scenarios diamond disjoint
//
// Every flag can also be set from the environment with the WGRAPH_ prefix
// (WGRAPH_OUTPUT=json, WGRAPH_LOG_LEVEL=debug, WGRAPH_ENV_FILE=ci.env).
// WGRAPH_EDGE takes whitespace-separated edges and is ignored when --edge is
// given. A .env file in the working directory is loaded on start;
// --env-file loads another one.
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
