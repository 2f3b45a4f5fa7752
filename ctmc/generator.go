package ctmc

import (
	"gonum.org/v1/gonum/mat"

	"github.com/strandlab/coopstrand/lattice"
)

// BuildGenerator constructs the 32×32 transition-rate matrix of the
// bonding chain for the given rate set and template topology.
//
// For every ordered state pair at Hamming distance one, the entry is the
// attachment (0→1) or detachment (1→0) rate of the flipped site under the
// occupied-neighbor context read from the two adjacent sites. The
// diagonal is set last as the negated row sum, so every row sums to zero
// by construction. The returned matrix is indexed by the lattice
// enumeration and is not mutated afterwards.
//
// Errors:
//   - ErrNonPositiveRate — any of the eight scalars is not strictly
//     positive and finite (checked before any allocation).
//   - ErrBadTopology     — topo is neither Circular nor Linear.
//
// Complexity: O(Dim · NumSites) entries, O(Dim²) allocation.
func BuildGenerator(r Rates, topo Topology) (*mat.Dense, error) {
	if err := ValidateRates(r); err != nil {
		return nil, err
	}
	if topo != Circular && topo != Linear {
		return nil, ErrBadTopology
	}

	g := mat.NewDense(Dim, Dim, nil)
	states := lattice.States()
	for i, s := range states {
		rowSum := 0.0
		for site := 0; site < lattice.NumSites; site++ {
			flipped := lattice.Flip(s, site)
			j, err := lattice.Index(flipped)
			if err != nil {
				return nil, err // unreachable for a 5-bit flip
			}
			attach, detach := r.pair(neighborContext(s, site, topo))
			rate := attach
			if lattice.Occupied(s, site) {
				rate = detach
			}
			g.Set(i, j, rate)
			rowSum += rate
		}
		g.Set(i, i, -rowSum)
	}
	return g, nil
}

// neighborContext reports whether the left and right neighbors of site
// are occupied in s. Circular templates wrap; linear templates treat a
// missing boundary neighbor as unoccupied.
func neighborContext(s lattice.State, site int, topo Topology) (left, right bool) {
	if topo == Circular {
		left = lattice.Occupied(s, (site+lattice.NumSites-1)%lattice.NumSites)
		right = lattice.Occupied(s, (site+1)%lattice.NumSites)
		return left, right
	}
	if site > 0 {
		left = lattice.Occupied(s, site-1)
	}
	if site < lattice.NumSites-1 {
		right = lattice.Occupied(s, site+1)
	}
	return left, right
}
