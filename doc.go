// Package gatsp is a genetic-algorithm heuristic for the Travelling Salesman
// Problem on small, complete, weighted graphs given as distance matrices.
//
// Everything is organized under a few subpackages:
//
//	matrix/      - distance matrices: Dense storage, strict ingestion, unreachable sentinel
//	builder/     - instance fixtures: the reference 6-vertex graph, edge lists, random complete graphs
//	tsp/         - the evolutionary core: tours, fitness, selection, crossover, mutation, engine
//	cmd/gatsp/   - command-line runner with YAML config and a localized report
//
// Quick start:
//
//	dist, _ := builder.Reference()
//	opts := tsp.DefaultOptions()
//	opts.Seed = 42
//	res, err := tsp.Evolve(dist, opts)
//	// res.Tour starts at vertex 0; res.Weight is its open-path weight.
//
// Runs are deterministic for a given seed: no package reads the clock or
// global random state.
package gatsp
