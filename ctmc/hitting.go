package ctmc

import (
	"gonum.org/v1/gonum/mat"
)

// HittingTimes solves for the expected time to first reach the fully
// occupied state from each of the other 31 states.
//
// With M the 31×31 principal submatrix of the generator excluding the
// fully occupied row and column, the hitting-time vector t satisfies
// M·t = −1 (elementwise), and the physical quantity is non-negative. The
// solver first attempts a plain LU solve; if that solution dips below
// zero beyond NonNegTol — possible for extreme rate sets — it reruns as a
// non-negative least-squares problem (Lawson–Hanson over gonum QR
// sub-solves).
//
// The returned slice is indexed by the lattice enumeration (entry 0 is
// the all-empty template, the quantity of interest downstream).
//
// Errors:
//   - ErrBadDimension  — g is not the 32×32 generator shape.
//   - ErrUnstableSolve — a non-negativity constraint is active and the
//     constrained residual exceeds ResidualTol. The clamped vector is
//     still returned alongside the error so callers can warn and keep or
//     discard it.
func HittingTimes(g *mat.Dense) ([]float64, error) {
	if err := ValidateDim(g); err != nil {
		return nil, err
	}

	// The fully occupied state is the last enumeration index, so the
	// non-absorbing block is the leading principal submatrix.
	sub := g.Slice(0, HittingDim, 0, HittingDim)
	m := mat.DenseCopyOf(sub)

	rhs := mat.NewVecDense(HittingDim, nil)
	for i := 0; i < HittingDim; i++ {
		rhs.SetVec(i, -1)
	}

	var t mat.VecDense
	if err := t.SolveVec(m, rhs); err == nil {
		if minVec(&t) >= -NonNegTol {
			return clampVec(&t), nil
		}
	}

	// Unconstrained solution is unusable: enforce t >= 0.
	x, residual, err := nnls(m, rhs)
	if err != nil {
		return nil, err
	}
	if residual > ResidualTol {
		return x, ErrUnstableSolve
	}
	return x, nil
}

// minVec returns the smallest component of v.
func minVec(v *mat.VecDense) float64 {
	lo := v.AtVec(0)
	for i := 1; i < v.Len(); i++ {
		if v.AtVec(i) < lo {
			lo = v.AtVec(i)
		}
	}
	return lo
}

// clampVec copies v into a slice, flushing tolerated negative slack to
// exact zero.
func clampVec(v *mat.VecDense) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		if x := v.AtVec(i); x > 0 {
			out[i] = x
		}
	}
	return out
}
