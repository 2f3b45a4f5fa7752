package ctmc

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// fullIndex is the enumeration index of the fully occupied state.
// The enumeration groups by ascending weight, so Full is always last.
const fullIndex = Dim - 1

// ResidenceTime returns the mean persistence of the fully occupied state:
// the reciprocal of the magnitude of its generator diagonal entry, i.e.
// the exponential holding time of the state under the chain formalism.
//
// Errors:
//   - ErrBadDimension   — g is not the 32×32 generator shape.
//   - ErrNoExitFromFull — the diagonal entry is exactly zero, meaning the
//     fully occupied state has no outgoing transitions; such a generator
//     violates the construction invariant and must not be used.
func ResidenceTime(g *mat.Dense) (float64, error) {
	if err := ValidateDim(g); err != nil {
		return 0, err
	}
	d := g.At(fullIndex, fullIndex)
	if d == 0 {
		return 0, ErrNoExitFromFull
	}
	return 1 / math.Abs(d), nil
}
