// Package ctmc: canonical validators.
// A single source of truth for rate and generator well-formedness checks;
// builders and solvers delegate here instead of carrying ad hoc guards.
package ctmc

import (
	"fmt"
	"math"
	"math/bits"

	"gonum.org/v1/gonum/mat"

	"github.com/strandlab/coopstrand/lattice"
)

// ValidateRates ensures all eight scalars are strictly positive and
// finite. Returns ErrNonPositiveRate (wrapped with the offending field)
// otherwise. Complexity: O(1).
func ValidateRates(r Rates) error {
	fields := [...]struct {
		name string
		v    float64
	}{
		{"P0", r.P0}, {"Q0", r.Q0},
		{"PR", r.PR}, {"QR", r.QR},
		{"PL", r.PL}, {"QL", r.QL},
		{"PC", r.PC}, {"QC", r.QC},
	}
	for _, f := range fields {
		if !positiveFinite(f.v) {
			return fmt.Errorf("%s: %w", f.name, ErrNonPositiveRate)
		}
	}
	return nil
}

// positiveFinite reports whether v is strictly positive and finite; the
// comparison itself rejects NaN.
func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// ValidateDim ensures g is the 32×32 generator shape.
// Returns ErrBadDimension otherwise. Complexity: O(1).
func ValidateDim(g *mat.Dense) error {
	if g == nil {
		return ErrBadDimension
	}
	if r, c := g.Dims(); r != Dim || c != Dim {
		return ErrBadDimension
	}
	return nil
}

// ValidateGenerator runs the structural well-formedness checks of the
// bonding chain generator:
//
//   - every row sums to zero within RowSumTol;
//   - every off-diagonal entry between Hamming-distance-1 states is
//     strictly positive;
//   - every other off-diagonal entry is exactly zero.
//
// Any violation is fatal (ErrMalformedGenerator, wrapped with the first
// offending position); the matrix must not proceed to the solvers.
// Complexity: O(Dim²).
func ValidateGenerator(g *mat.Dense) error {
	if err := ValidateDim(g); err != nil {
		return err
	}
	states := lattice.States()
	for i := 0; i < Dim; i++ {
		rowSum := 0.0
		for j := 0; j < Dim; j++ {
			v := g.At(i, j)
			rowSum += v
			if i == j {
				continue
			}
			dist := bits.OnesCount8(uint8(states[i] ^ states[j]))
			switch {
			case dist == 1 && !(v > 0):
				return fmt.Errorf("row %d col %d: adjacent rate not positive: %w", i, j, ErrMalformedGenerator)
			case dist != 1 && v != 0:
				return fmt.Errorf("row %d col %d: rate between non-adjacent states: %w", i, j, ErrMalformedGenerator)
			}
		}
		if math.Abs(rowSum) > RowSumTol {
			return fmt.Errorf("row %d: sum %g exceeds tolerance: %w", i, rowSum, ErrMalformedGenerator)
		}
	}
	return nil
}
