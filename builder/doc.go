// SPDX-License-Identifier: MIT

// Package builder provides deterministic graph generators in a
// functional-options style. Tests, benchmarks and the wgraph CLI use them
// to produce reproducible fixtures for the connectivity, MST and
// shortest-path engines.
//
// The package offers:
//
//   - BuildGraph(bopts, cons...): one orchestrator that creates a core.Graph,
//     resolves builderConfig from options and applies constructors in order.
//   - Topologies: Path, Cycle, Complete, Star, Grid, RandomSparse.
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0", "1", ...), LetterIDFn
//     ("A".."Z", "AA", ...) and PrefixIDFn ("v0", "v1", ...).
//   - Edge-weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, IntUniformWeightFn.
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed yield identical graphs.
//   - Idempotence: re-running a constructor on g overwrites, never duplicates.
//   - Option constructors panic on meaningless arguments (nil functions,
//     inverted ranges); constructors return sentinel errors and never panic.
package builder
