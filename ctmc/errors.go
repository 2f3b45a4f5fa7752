// Package ctmc: sentinel error set.
// All exported functions return these sentinels (optionally wrapped with
// context via fmt.Errorf and %w); tests and callers match them with
// errors.Is. No function panics on user-triggered conditions.
package ctmc

import "errors"

var (
	// ErrNonPositiveRate indicates a rate scalar that is zero, negative,
	// or not finite. Rejected before any matrix work begins.
	ErrNonPositiveRate = errors.New("ctmc: rate must be strictly positive and finite")

	// ErrBadTopology indicates a topology value other than Circular or
	// Linear.
	ErrBadTopology = errors.New("ctmc: unknown template topology")

	// ErrBadDimension indicates a matrix that is not 32×32 over the
	// lattice enumeration.
	ErrBadDimension = errors.New("ctmc: generator must be 32x32 over the lattice enumeration")

	// ErrMalformedGenerator indicates a structural invariant violation:
	// a row sum outside tolerance, a non-positive rate on a
	// Hamming-distance-1 pair, or a nonzero rate elsewhere. Fatal; the
	// matrix must not reach the solvers.
	ErrMalformedGenerator = errors.New("ctmc: malformed generator")

	// ErrNoExitFromFull indicates a zero self-transition rate for the
	// fully occupied state, i.e. no outgoing transitions at all. This is
	// a construction-invariant violation, not a silent +Inf residence.
	ErrNoExitFromFull = errors.New("ctmc: fully occupied state has no outgoing transitions")

	// ErrUnstableSolve indicates the constrained hitting-time solve left
	// a residual above tolerance while a non-negativity constraint was
	// active. The clamped solution is still returned; callers decide
	// whether to keep or discard it.
	ErrUnstableSolve = errors.New("ctmc: non-negative solve residual above tolerance")
)
