package sweep

import (
	"context"
	"errors"
	"io"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/strandlab/coopstrand/ctmc"
	"github.com/strandlab/coopstrand/fitness"
)

// emptyStateIndex is the lattice enumeration index of the all-empty
// template, the start state of the growth-advantage hitting time.
const emptyStateIndex = 0

// Run executes a full cooperativity sweep.
//
// The non-cooperative baseline (α=1, α=1) is computed once; every grid
// cell then reports its combined fitness and the ratio against that
// baseline. Cells are evaluated concurrently on an errgroup bounded by
// cfg.Workers (GOMAXPROCS when zero); each cell writes only its own
// preallocated slot, so no further coordination is needed.
//
// A cell whose constrained solve reports ctmc.ErrUnstableSolve is logged
// as a warning, flagged and kept — one degenerate cell must not abort
// the sweep. Any other per-cell error aborts the run.
func Run(ctx context.Context, cfg Config, log *logrus.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	topo, err := ctmc.ParseTopology(cfg.Topology)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	runID := uuid.NewString()

	baseline, baseUnstable, err := evalPoint(cfg, topo, 1, 1)
	if err != nil {
		return nil, err
	}
	if baseUnstable {
		log.WithField("run_id", runID).Warn("baseline solve unstable; ratios may be unreliable")
	}

	lefts := cfg.AlphaLeft.Values()
	rights := cfg.AlphaRight.Values()
	cells := make([]Cell, len(lefts)*len(rights))

	log.WithFields(logrus.Fields{
		"run_id":   runID,
		"topology": cfg.Topology,
		"cells":    len(cells),
	}).Info("starting cooperativity sweep")

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for li, alphaL := range lefts {
		for ri, alphaR := range rights {
			idx := li*len(rights) + ri
			alphaL, alphaR := alphaL, alphaR
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				factors, unstable, err := evalPoint(cfg, topo, alphaL, alphaR)
				if err != nil {
					return err
				}
				if unstable {
					log.WithFields(logrus.Fields{
						"run_id":  runID,
						"alpha_l": alphaL,
						"alpha_r": alphaR,
					}).Warn("constrained solve unstable; keeping clamped cell")
				}
				ratio := 0.0
				if baseline.fit.Combined > 0 {
					ratio = factors.fit.Combined / baseline.fit.Combined
				}
				cells[idx] = Cell{
					AlphaL:    alphaL,
					AlphaR:    alphaR,
					Residence: factors.residence,
					Hitting:   factors.hitting,
					Retention: factors.fit.Retention,
					Growth:    factors.fit.Growth,
					Combined:  factors.fit.Combined,
					Ratio:     ratio,
					Unstable:  unstable,
				}
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	res := &Result{
		RunID:    runID,
		Config:   cfg,
		Baseline: baseline.fit,
		Cells:    cells,
		Started:  started,
		Elapsed:  time.Since(started),
	}
	log.WithFields(logrus.Fields{
		"run_id":  runID,
		"elapsed": res.Elapsed,
	}).Info("sweep finished")
	return res, nil
}

// point carries the raw solve outputs of one grid cell alongside the
// derived advantage factors.
type point struct {
	residence float64
	hitting   float64
	fit       fitness.Factors
}

// evalPoint runs the full per-cell pipeline: derive rates, build and
// validate the generator, extract residence and hitting times, evaluate
// the advantage factors. The unstable flag carries a tolerated
// ctmc.ErrUnstableSolve; every other error is returned as-is.
func evalPoint(cfg Config, topo ctmc.Topology, alphaL, alphaR float64) (point, bool, error) {
	rates, err := ctmc.FromCooperativity(cfg.Formation, cfg.Breakage, alphaL, alphaR)
	if err != nil {
		return point{}, false, err
	}
	g, err := ctmc.BuildGenerator(rates, topo)
	if err != nil {
		return point{}, false, err
	}
	if err := ctmc.ValidateGenerator(g); err != nil {
		return point{}, false, err
	}

	residence, err := ctmc.ResidenceTime(g)
	if err != nil {
		return point{}, false, err
	}

	times, err := ctmc.HittingTimes(g)
	return finishPoint(residence, times, err, cfg.R0, cfg.RG)
}

// finishPoint folds the hitting-time outcome into the cell's advantage
// factors. A tolerated ctmc.ErrUnstableSolve sets the unstable flag; any
// other solve error is returned as-is.
func finishPoint(residence float64, times []float64, solveErr error, r0, rg float64) (point, bool, error) {
	unstable := false
	if solveErr != nil {
		if !errors.Is(solveErr, ctmc.ErrUnstableSolve) {
			return point{}, false, solveErr
		}
		unstable = true
	}
	hitting := times[emptyStateIndex]
	if unstable && !(hitting > 0) {
		// The clamp pinned the start state at zero; there is no usable
		// growth factor for this cell, only the flag and raw values.
		return point{residence: residence, hitting: hitting}, true, nil
	}

	fit, err := fitness.Compute(residence, hitting, r0, rg)
	if err != nil {
		return point{}, false, err
	}
	return point{residence: residence, hitting: hitting, fit: fit}, unstable, nil
}
