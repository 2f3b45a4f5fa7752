package ctmc

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// nnlsKKTTol is the dual-feasibility threshold of the active-set loop:
// a candidate column enters the passive set only if its gradient
// component exceeds this value.
const nnlsKKTTol = 1e-12

// nnls solves min ‖A·x − b‖₂ subject to x ≥ 0 elementwise using the
// Lawson–Hanson active-set method. Each unconstrained subproblem over the
// passive column set is solved by gonum QR least squares.
//
// Returns the solution and its 2-norm residual ‖A·x − b‖₂; the error is
// non-nil only when a passive-set subproblem is rank deficient. Should
// the active-set loop exhaust its iteration budget, the current iterate
// is returned and the misfit shows up in the residual, which callers
// check against their own tolerance.
func nnls(a *mat.Dense, b *mat.VecDense) ([]float64, float64, error) {
	rows, cols := a.Dims()

	x := make([]float64, cols)
	passive := make([]bool, cols)

	resid := mat.NewVecDense(rows, nil)
	grad := mat.NewVecDense(cols, nil)

	// Iteration budget: each outer pass moves at least one column between
	// sets, so a small multiple of the column count always suffices here.
	maxOuter := 3 * cols
	for outer := 0; outer < maxOuter; outer++ {
		// grad = Aᵀ(b − A·x); optimality holds when no constrained
		// component has positive gradient.
		residualInto(resid, a, x, b)
		grad.MulVec(a.T(), resid)

		enter := -1
		best := nnlsKKTTol
		for j := 0; j < cols; j++ {
			if !passive[j] && grad.AtVec(j) > best {
				best = grad.AtVec(j)
				enter = j
			}
		}
		if enter < 0 {
			break // KKT conditions satisfied
		}
		passive[enter] = true

		// Inner loop: solve the unconstrained subproblem on the passive
		// set; walk x toward it, dropping any column that hits zero.
		for {
			z, err := solvePassive(a, b, passive)
			if err != nil {
				return nil, 0, err
			}
			feasible := true
			for j := 0; j < cols; j++ {
				if passive[j] && z[j] <= 0 {
					feasible = false
					break
				}
			}
			if feasible {
				copy(x, z)
				break
			}
			// Largest step along (z − x) keeping x ≥ 0. The denominator
			// guard skips columns sitting exactly at zero with z also
			// zero; those yield no step and are retired below.
			alpha := math.Inf(1)
			for j := 0; j < cols; j++ {
				if passive[j] && z[j] <= 0 {
					if den := x[j] - z[j]; den > 0 {
						if step := x[j] / den; step < alpha {
							alpha = step
						}
					}
				}
			}
			if math.IsInf(alpha, 1) {
				// Every blocking column is pinned at zero already; retire
				// them and re-solve on the shrunken passive set.
				for j := 0; j < cols; j++ {
					if passive[j] && z[j] <= 0 {
						x[j] = 0
						passive[j] = false
					}
				}
				continue
			}
			for j := 0; j < cols; j++ {
				if passive[j] {
					x[j] += alpha * (z[j] - x[j])
					if x[j] <= nnlsKKTTol {
						x[j] = 0
						passive[j] = false
					}
				}
			}
		}
	}

	residualInto(resid, a, x, b)
	return x, mat.Norm(resid, 2), nil
}

// solvePassive solves the least-squares subproblem restricted to the
// passive columns of a, scattering the result back to full length with
// zeros on the active (constrained) coordinates.
func solvePassive(a *mat.Dense, b *mat.VecDense, passive []bool) ([]float64, error) {
	rows, cols := a.Dims()

	var idx []int
	for j := 0; j < cols; j++ {
		if passive[j] {
			idx = append(idx, j)
		}
	}
	out := make([]float64, cols)
	if len(idx) == 0 {
		return out, nil
	}

	sub := mat.NewDense(rows, len(idx), nil)
	for k, j := range idx {
		for i := 0; i < rows; i++ {
			sub.Set(i, k, a.At(i, j))
		}
	}

	var qr mat.QR
	qr.Factorize(sub)
	var z mat.VecDense
	if err := qr.SolveVecTo(&z, false, b); err != nil {
		return nil, err
	}
	for k, j := range idx {
		out[j] = z.AtVec(k)
	}
	return out, nil
}

// residualInto computes dst = b − A·x.
func residualInto(dst *mat.VecDense, a *mat.Dense, x []float64, b *mat.VecDense) {
	dst.MulVec(a, mat.NewVecDense(len(x), x))
	dst.SubVec(b, dst)
}
