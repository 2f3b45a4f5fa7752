// Package sweep: configuration and result types.
// Sentinel errors live in errors.go, the runner in sweep.go, reporting in
// report.go and persistence in store.go.
package sweep

import (
	"time"

	"github.com/strandlab/coopstrand/fitness"
)

// Axis specifies one cooperativity axis of the grid: Steps values spaced
// evenly from Min to Max inclusive. Steps == 1 degenerates to {Min}.
type Axis struct {
	Min   float64 `yaml:"min" mapstructure:"min"`
	Max   float64 `yaml:"max" mapstructure:"max"`
	Steps int     `yaml:"steps" mapstructure:"steps"`
}

// Values materializes the axis grid points. Assumes a validated axis.
func (a Axis) Values() []float64 {
	out := make([]float64, a.Steps)
	if a.Steps == 1 {
		out[0] = a.Min
		return out
	}
	step := (a.Max - a.Min) / float64(a.Steps-1)
	for i := range out {
		out[i] = a.Min + float64(i)*step
	}
	return out
}

// Config holds every knob of a sweep run. Zero values are not usable;
// start from DefaultConfig and override.
type Config struct {
	// Formation and Breakage are the base H-bond attachment and
	// detachment rates fed to the rate derivation per cell.
	Formation float64 `yaml:"formation" mapstructure:"formation"`
	Breakage  float64 `yaml:"breakage" mapstructure:"breakage"`

	// R0 is the covalent-formation to H-bond-formation rate ratio;
	// RG the free-monomer-competition to H-bond-formation ratio.
	R0 float64 `yaml:"r0" mapstructure:"r0"`
	RG float64 `yaml:"rg" mapstructure:"rg"`

	// Topology is "circular" or "linear".
	Topology string `yaml:"topology" mapstructure:"topology"`

	// AlphaLeft and AlphaRight span the cooperativity grid.
	AlphaLeft  Axis `yaml:"alpha_left" mapstructure:"alpha_left"`
	AlphaRight Axis `yaml:"alpha_right" mapstructure:"alpha_right"`

	// Workers bounds the errgroup pool; 0 means one worker per CPU.
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// DefaultConfig mirrors the reference scenario: breakage 0.5, formation
// 1, covalent ratio 10, circular template, α from 1 to 8 on both axes.
func DefaultConfig() Config {
	return Config{
		Formation:  1,
		Breakage:   0.5,
		R0:         10,
		RG:         1,
		Topology:   "circular",
		AlphaLeft:  Axis{Min: 1, Max: 8, Steps: 29},
		AlphaRight: Axis{Min: 1, Max: 8, Steps: 29},
		Workers:    0,
	}
}

// Cell is the outcome of one grid point.
type Cell struct {
	AlphaL, AlphaR float64
	Residence      float64 // mean persistence of the full strand
	Hitting        float64 // expected assembly time from the empty template
	Retention      float64
	Growth         float64
	Combined       float64
	Ratio          float64 // Combined / baseline Combined
	Unstable       bool    // constrained solve reported ErrUnstableSolve
}

// Result is one complete sweep run.
type Result struct {
	RunID    string
	Config   Config
	Baseline fitness.Factors // non-cooperative (α=1, α=1) reference point
	Cells    []Cell          // row-major: αLeft outer, αRight inner
	Started  time.Time
	Elapsed  time.Duration
}

// Summary condenses a run for console reporting.
type Summary struct {
	Cells       int
	Unstable    int
	MinRatio    float64
	MaxRatio    float64
	MeanRatio   float64
	MedianRatio float64
}
