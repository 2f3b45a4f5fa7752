package sweep

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/strandlab/coopstrand/ctmc"
)

// LoadConfig reads a YAML sweep configuration from path, layered over
// DefaultConfig so partial files stay valid.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unusable configurations before any matrix work:
// base rates must be strictly positive, ratios non-negative, the
// topology known, axes well-formed with α ≥ a positive lower bound, and
// the worker count non-negative.
func (c Config) Validate() error {
	if !(c.Formation > 0) || !(c.Breakage > 0) {
		return fmt.Errorf("base rates must be strictly positive: %w", ErrBadConfig)
	}
	if !(c.R0 >= 0) || !(c.RG >= 0) || math.IsInf(c.R0, 1) || math.IsInf(c.RG, 1) {
		return fmt.Errorf("ratios r0/rg must be non-negative and finite: %w", ErrBadConfig)
	}
	if _, err := ctmc.ParseTopology(c.Topology); err != nil {
		return fmt.Errorf("topology %q: %w", c.Topology, ErrBadConfig)
	}
	if err := c.AlphaLeft.validate(); err != nil {
		return fmt.Errorf("alpha_left: %w", err)
	}
	if err := c.AlphaRight.validate(); err != nil {
		return fmt.Errorf("alpha_right: %w", err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative: %w", ErrBadConfig)
	}
	return nil
}

func (a Axis) validate() error {
	if a.Steps < 1 {
		return fmt.Errorf("steps must be at least 1: %w", ErrBadConfig)
	}
	if !(a.Min > 0) {
		return fmt.Errorf("cooperativity factors must be strictly positive: %w", ErrBadConfig)
	}
	if a.Steps > 1 && !(a.Max > a.Min) {
		return fmt.Errorf("max must exceed min for a multi-step axis: %w", ErrBadConfig)
	}
	return nil
}
