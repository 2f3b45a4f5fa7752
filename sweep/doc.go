// Package sweep drives the cooperativity parameter sweep: it evaluates
// the bonding-chain advantage factors over a 2-D grid of (αLeft, αRight)
// pairs and reports each cell's fitness relative to the non-cooperative
// baseline.
//
// Each grid cell is an independent, side-effect-free computation (build
// one generator, run the two solves, evaluate the advantage factors), so
// the sweep fans cells out over a bounded errgroup worker pool with no
// shared mutable state beyond the preallocated result slice.
//
// The package owns the collaborator-facing surfaces around the core:
// YAML configuration, CSV reporting, grid summary statistics, and an
// optional SQLite store for sweep runs. Rendering (plots, axes, color
// maps) stays out of scope.
package sweep
