// Package coopstrand models cooperative replica-strand growth on a short
// DNA template as a continuous-time Markov chain, and measures how bond
// cooperativity changes the fitness of the finished strand.
//
// The model: a 5-site template whose sites are either vacant or bonded.
// Each bond attaches at a formation rate and detaches at a breakage rate
// that is divided by the cooperativity factor of every bonded neighbor.
// The 32 occupancy patterns form the state space of a CTMC; the chain's
// generator, residence times and hitting times answer two questions —
// how long does a finished strand persist, and how long does assembly
// from the empty template take?
//
// The module is organized into four library packages and one command:
//
//	lattice/ — the 32-state occupancy enumeration (patterns, indices,
//	           weights, neighbor queries)
//	ctmc/    — generator construction, residence-time extraction and the
//	           constrained hitting-time solver
//	fitness/ — retention, growth and combined fitness of a strand
//	sweep/   — the 2-D cooperativity sweep: grid evaluation, CSV report,
//	           summary statistics and SQLite run persistence
//
//	cmd/coopsweep — the sweep CLI
//
// Start with lattice and ctmc for the model itself, or run
//
//	go run ./cmd/coopsweep --config sweep.yaml
//
// to map an (αLeft, αRight) cooperativity plane end to end.
package coopstrand
