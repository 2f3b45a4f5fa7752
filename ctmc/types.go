// Package ctmc: domain types and numeric policy constants.
// Sentinel errors live in errors.go, validation in validators.go, per the
// repository conventions.
package ctmc

import "github.com/strandlab/coopstrand/lattice"

// Dim is the generator dimension (one row/column per occupancy state).
const Dim = lattice.NumStates

// HittingDim is the dimension of the hitting-time system: every state
// except the fully occupied target.
const HittingDim = Dim - 1

// Numeric policy constants. Kept explicit to avoid magic numbers inline.
const (
	// RowSumTol bounds |Σ_j g[i,j]| for a well-formed generator row.
	RowSumTol = 1e-9
	// ResidualTol bounds the constrained-solve residual before the solver
	// reports numerical instability.
	ResidualTol = 1e-10
	// NonNegTol is the slack below zero tolerated in the unconstrained
	// hitting-time solution before the constrained path is engaged.
	NonNegTol = 1e-12
)

// Topology selects the neighbor relation at the template boundary.
type Topology int

const (
	// Circular treats site 1 and site 5 as adjacent (closed template).
	Circular Topology = iota
	// Linear leaves the two boundary sites with a single neighbor each.
	Linear
)

// String returns the lowercase topology name.
func (t Topology) String() string {
	switch t {
	case Circular:
		return "circular"
	case Linear:
		return "linear"
	default:
		return "unknown"
	}
}

// ParseTopology converts a configuration string into a Topology.
// Returns ErrBadTopology for anything but "circular" or "linear".
func ParseTopology(s string) (Topology, error) {
	switch s {
	case "circular":
		return Circular, nil
	case "linear":
		return Linear, nil
	default:
		return Circular, ErrBadTopology
	}
}

// Rates is the immutable 8-scalar rate parameter set: one attachment (P*)
// and one detachment (Q*) rate per occupied-neighbor context.
//
//	P0/Q0 — no occupied neighbor
//	PR/QR — right neighbor occupied
//	PL/QL — left neighbor occupied
//	PC/QC — both neighbors occupied (cooperative context)
//
// All eight scalars must be strictly positive and finite: a zero rate
// would break the generator's sparsity-pattern invariant (every
// Hamming-distance-1 transition strictly positive).
type Rates struct {
	P0, Q0 float64
	PR, QR float64
	PL, QL float64
	PC, QC float64
}

// FromCooperativity derives the full rate set from the base H-bond
// formation and breakage rates and the two cooperativity factors.
// Cooperativity stabilizes an existing bond: attachment is uniform across
// contexts while detachment is divided by the factor of each occupied
// neighbor (QR = breakage/alphaR, QL = breakage/alphaL,
// QC = breakage/(alphaL·alphaR)).
//
// Returns ErrNonPositiveRate if any input is not strictly positive and
// finite.
func FromCooperativity(formation, breakage, alphaL, alphaR float64) (Rates, error) {
	for _, v := range [...]float64{formation, breakage, alphaL, alphaR} {
		if !positiveFinite(v) {
			return Rates{}, ErrNonPositiveRate
		}
	}
	return Rates{
		P0: formation, Q0: breakage,
		PR: formation, QR: breakage / alphaR,
		PL: formation, QL: breakage / alphaL,
		PC: formation, QC: breakage / (alphaL * alphaR),
	}, nil
}

// pair selects the attachment/detachment pair for an occupied-neighbor
// context.
func (r Rates) pair(left, right bool) (attach, detach float64) {
	switch {
	case left && right:
		return r.PC, r.QC
	case left:
		return r.PL, r.QL
	case right:
		return r.PR, r.QR
	default:
		return r.P0, r.Q0
	}
}
