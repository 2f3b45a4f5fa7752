package ctmc_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/strandlab/coopstrand/ctmc"
	"github.com/strandlab/coopstrand/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHittingTimes_PositiveAndFinite verifies the solved vector has one
// entry per non-full state and every expected time is strictly positive.
func TestHittingTimes_PositiveAndFinite(t *testing.T) {
	for name, rates := range rateSets(t) {
		for _, topo := range []ctmc.Topology{ctmc.Circular, ctmc.Linear} {
			g, err := ctmc.BuildGenerator(rates, topo)
			require.NoError(t, err)

			times, err := ctmc.HittingTimes(g)
			require.NoError(t, err, "%s/%s", name, topo)
			require.Len(t, times, ctmc.HittingDim)
			for i, h := range times {
				assert.Greater(t, h, 0.0, "%s/%s state %d", name, topo, i)
				assert.False(t, math.IsInf(h, 0) || math.IsNaN(h), "%s/%s state %d", name, topo, i)
			}
		}
	}
}

// TestHittingTimes_SatisfiesSystem multiplies the solution back through
// the 31×31 sub-generator and checks M·t = −1 within tolerance.
func TestHittingTimes_SatisfiesSystem(t *testing.T) {
	rates, err := ctmc.FromCooperativity(1, 0.5, 2, 4)
	require.NoError(t, err)
	g, err := ctmc.BuildGenerator(rates, ctmc.Circular)
	require.NoError(t, err)

	times, err := ctmc.HittingTimes(g)
	require.NoError(t, err)

	for i := 0; i < ctmc.HittingDim; i++ {
		acc := 0.0
		for j := 0; j < ctmc.HittingDim; j++ {
			acc += g.At(i, j) * times[j]
		}
		assert.InDelta(t, -1.0, acc, 1e-8, "row %d of M·t", i)
	}
}

// TestHittingTimes_FasterAttachmentShortens verifies the expected
// assembly time from the empty template drops when the formation rate
// doubles (all else fixed).
func TestHittingTimes_FasterAttachmentShortens(t *testing.T) {
	slow, err := ctmc.FromCooperativity(1, 0.5, 2, 2)
	require.NoError(t, err)
	fast, err := ctmc.FromCooperativity(2, 0.5, 2, 2)
	require.NoError(t, err)

	gs, err := ctmc.BuildGenerator(slow, ctmc.Circular)
	require.NoError(t, err)
	gf, err := ctmc.BuildGenerator(fast, ctmc.Circular)
	require.NoError(t, err)

	ts, err := ctmc.HittingTimes(gs)
	require.NoError(t, err)
	tf, err := ctmc.HittingTimes(gf)
	require.NoError(t, err)

	assert.Less(t, tf[0], ts[0], "doubling attachment must shorten assembly from the empty state")
}

// TestHittingTimes_TimeRescaling verifies the chain's time unit: scaling
// every rate by c scales every hitting time by 1/c.
func TestHittingTimes_TimeRescaling(t *testing.T) {
	base := ctmc.Rates{
		P0: 1, Q0: 0.5,
		PR: 1.5, QR: 0.25,
		PL: 0.75, QL: 0.4,
		PC: 2, QC: 0.125,
	}
	scaled := ctmc.Rates{
		P0: 2, Q0: 1,
		PR: 3, QR: 0.5,
		PL: 1.5, QL: 0.8,
		PC: 4, QC: 0.25,
	}

	gb, err := ctmc.BuildGenerator(base, ctmc.Linear)
	require.NoError(t, err)
	gsc, err := ctmc.BuildGenerator(scaled, ctmc.Linear)
	require.NoError(t, err)

	tb, err := ctmc.HittingTimes(gb)
	require.NoError(t, err)
	tsc, err := ctmc.HittingTimes(gsc)
	require.NoError(t, err)

	for i := range tb {
		assert.InEpsilon(t, tb[i]/2, tsc[i], 1e-9, "state %d", i)
	}
}

// TestHittingTimes_MirrorSymmetry verifies left-right reflected states
// share expected times under uniform rates.
func TestHittingTimes_MirrorSymmetry(t *testing.T) {
	rates, err := ctmc.FromCooperativity(1, 0.5, 1, 1)
	require.NoError(t, err)

	states := lattice.States()
	for _, topo := range []ctmc.Topology{ctmc.Circular, ctmc.Linear} {
		g, err := ctmc.BuildGenerator(rates, topo)
		require.NoError(t, err)
		times, err := ctmc.HittingTimes(g)
		require.NoError(t, err)

		for i := 0; i < ctmc.HittingDim; i++ {
			mi, err := lattice.Index(lattice.Mirror(states[i]))
			require.NoError(t, err)
			assert.InEpsilon(t, times[i], times[mi], 1e-9,
				"%s: mirrored states %d and %d must share hitting times", topo, i, mi)
		}
	}
}

// TestHittingTimes_InfeasibleSystemFlagged verifies that when no
// non-negative vector satisfies M·t = −1, the solver hands back the
// clamped iterate together with ErrUnstableSolve rather than a negative
// vector or a hard failure.
func TestHittingTimes_InfeasibleSystemFlagged(t *testing.T) {
	// Identity on the leading block makes the unconstrained solution −1
	// everywhere; the best non-negative fit is the zero vector, whose
	// residual √31 is far beyond ResidualTol.
	g := mat.NewDense(ctmc.Dim, ctmc.Dim, nil)
	for i := 0; i < ctmc.HittingDim; i++ {
		g.Set(i, i, 1)
	}

	times, err := ctmc.HittingTimes(g)
	require.ErrorIs(t, err, ctmc.ErrUnstableSolve)
	require.Len(t, times, ctmc.HittingDim, "flagged solve must still return the clamped vector")
	for i, h := range times {
		assert.GreaterOrEqual(t, h, 0.0, "state %d", i)
		assert.False(t, math.IsNaN(h), "state %d", i)
	}
}

// TestHittingTimes_BadDimension verifies the shape guard.
func TestHittingTimes_BadDimension(t *testing.T) {
	_, err := ctmc.HittingTimes(nil)
	assert.ErrorIs(t, err, ctmc.ErrBadDimension)
}
