package fitness

import (
	"errors"
	"math"
)

// ErrOutOfDomain indicates an argument outside the metric domain:
// residence and hitting times must be strictly positive and finite, rate
// ratios non-negative and finite.
var ErrOutOfDomain = errors.New("fitness: argument out of domain")

// Factors bundles the two advantage probabilities and their product for
// one parameter point.
type Factors struct {
	Retention float64 // bonding-retention probability, in [0,1)
	Growth    float64 // growth-advantage probability, in [0,1)
	Combined  float64 // Retention · Growth
}

// Retention returns the bonding-retention probability 1 − exp(−r0·R) for
// residence time R and covalent-to-H-bond rate ratio r0.
// Domain: R > 0 finite, r0 ≥ 0 finite. Range: [0, 1).
func Retention(residence, r0 float64) (float64, error) {
	if !positiveFinite(residence) || !nonNegativeFinite(r0) {
		return 0, ErrOutOfDomain
	}
	return 1 - math.Exp(-r0*residence), nil
}

// Growth returns the growth-advantage probability (1/H) / (rg + 1/H) for
// hitting time H (from the empty template) and free-monomer competition
// ratio rg. Domain: H > 0 finite, rg ≥ 0 finite. Range: (0, 1].
func Growth(hitting, rg float64) (float64, error) {
	if !positiveFinite(hitting) || !nonNegativeFinite(rg) {
		return 0, ErrOutOfDomain
	}
	inv := 1 / hitting
	return inv / (rg + inv), nil
}

// Compute evaluates both advantage factors and their product in one call.
func Compute(residence, hitting, r0, rg float64) (Factors, error) {
	retention, err := Retention(residence, r0)
	if err != nil {
		return Factors{}, err
	}
	growth, err := Growth(hitting, rg)
	if err != nil {
		return Factors{}, err
	}
	return Factors{
		Retention: retention,
		Growth:    growth,
		Combined:  retention * growth,
	}, nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func nonNegativeFinite(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
