package lattice

import (
	"errors"
	"math/bits"
)

// NumSites is the length of the template strand.
const NumSites = 5

// NumStates is the size of the occupancy state space (2^NumSites).
const NumStates = 1 << NumSites

// State is a 5-bit occupancy pattern. Bit k set means site k+1 holds a
// bonded monomer. Values above Full are not valid patterns.
type State uint8

const (
	// Empty is the unoccupied template (enumeration index 0).
	Empty State = 0
	// Full is the fully occupied template (enumeration index NumStates-1).
	Full State = NumStates - 1
)

// Sentinel errors for enumeration lookups.
var (
	// ErrBadPattern indicates a State value outside the 5-bit range.
	ErrBadPattern = errors.New("lattice: pattern out of 5-bit range")
	// ErrBadIndex indicates an enumeration index outside [0, NumStates).
	ErrBadIndex = errors.New("lattice: enumeration index out of range")
)

// byIndex holds the canonical ordering: all 32 patterns grouped by
// ascending popcount, ascending numeric value within each group.
// toIndex is its inverse. Both are frozen at package init.
var (
	byIndex [NumStates]State
	toIndex [NumStates]int
)

func init() {
	idx := 0
	for w := 0; w <= NumSites; w++ {
		for p := 0; p < NumStates; p++ {
			if bits.OnesCount8(uint8(p)) != w {
				continue
			}
			byIndex[idx] = State(p)
			toIndex[p] = idx
			idx++
		}
	}
}

// Index returns the canonical enumeration index of pattern s.
// Returns ErrBadPattern if s has bits set beyond the 5 template sites.
// Complexity: O(1).
func Index(s State) (int, error) {
	if s > Full {
		return 0, ErrBadPattern
	}
	return toIndex[s], nil
}

// Of returns the pattern at enumeration index i, the inverse of Index.
// Returns ErrBadIndex if i is outside [0, NumStates).
// Complexity: O(1).
func Of(i int) (State, error) {
	if i < 0 || i >= NumStates {
		return Empty, ErrBadIndex
	}
	return byIndex[i], nil
}

// States returns a fresh copy of the canonical enumeration.
// Mutating the returned slice does not affect the package tables.
func States() []State {
	out := make([]State, NumStates)
	copy(out, byIndex[:])
	return out
}

// Weight returns the number of occupied sites in s.
func Weight(s State) int {
	return bits.OnesCount8(uint8(s))
}

// Occupied reports whether site (0-based, in [0, NumSites)) holds a
// monomer in s. Callers guarantee the site range.
func Occupied(s State, site int) bool {
	return s&(1<<site) != 0
}

// Flip toggles the occupancy of site (0-based, in [0, NumSites)) and
// returns the resulting pattern. Callers guarantee the site range.
func Flip(s State, site int) State {
	return s ^ (1 << site)
}

// Mirror reflects s across the middle of the template, swapping sites
// 1↔5 and 2↔4. Useful for left-right symmetry checks.
func Mirror(s State) State {
	var m State
	for site := 0; site < NumSites; site++ {
		if Occupied(s, site) {
			m |= 1 << (NumSites - 1 - site)
		}
	}
	return m
}
