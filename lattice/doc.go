// Package lattice defines the 32 binary occupancy states of the 5-site
// template strand and their canonical enumeration order.
//
// The lattice package provides:
//
//   - State, a 5-bit occupancy pattern (site k ↔ bit k, so site 1 is the
//     least-significant bit).
//   - A fixed enumeration of all 32 patterns, grouped by ascending number
//     of occupied sites and by ascending numeric value inside each group.
//   - Index / Of, the bijection between patterns and enumeration indices,
//     plus bit helpers (Weight, Occupied, Flip) used by generator builders.
//
// The enumeration order is an implementation contract: every consumer that
// indexes into a generator matrix built over this lattice must use exactly
// this order. Index 0 is the empty template, index 31 the fully occupied
// one.
package lattice
