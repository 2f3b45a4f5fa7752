// Package ctmc builds and solves the continuous-time Markov chain of
// cooperative monomer bonding on the 5-site template strand.
//
// The ctmc package provides:
//
//   - Rates, the eight attachment/detachment scalars (one pair per
//     occupied-neighbor context: none, right, left, both), plus
//     FromCooperativity to derive them from base bond rates and the two
//     cooperativity factors.
//   - BuildGenerator, a single-pass construction of the 32×32 transition
//     rate matrix over the lattice enumeration for a circular or linear
//     template; every row sums to zero by construction.
//   - ValidateGenerator, the structural well-formedness check (row sums,
//     sparsity pattern, strictly positive neighbor transitions).
//   - ResidenceTime, the mean persistence of the fully occupied state.
//   - HittingTimes, the expected first-passage times into the fully
//     occupied state from every other state, solved with a non-negativity
//     constraint (Lawson–Hanson on gonum least squares).
//
// Matrices are gonum *mat.Dense values indexed by the lattice enumeration;
// state 0 is the empty template, state 31 the fully occupied one.
package ctmc
