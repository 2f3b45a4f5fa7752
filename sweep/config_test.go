package sweep_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/strandlab/coopstrand/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfig_FullFile verifies a complete YAML document round-trips.
func TestLoadConfig_FullFile(t *testing.T) {
	doc := `
formation: 2
breakage: 0.25
r0: 5
rg: 0.5
topology: linear
alpha_left:
  min: 1
  max: 6
  steps: 11
alpha_right:
  min: 1
  max: 3
  steps: 5
workers: 4
`
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := sweep.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.Formation)
	assert.Equal(t, 0.25, cfg.Breakage)
	assert.Equal(t, 5.0, cfg.R0)
	assert.Equal(t, 0.5, cfg.RG)
	assert.Equal(t, "linear", cfg.Topology)
	assert.Equal(t, sweep.Axis{Min: 1, Max: 6, Steps: 11}, cfg.AlphaLeft)
	assert.Equal(t, sweep.Axis{Min: 1, Max: 3, Steps: 5}, cfg.AlphaRight)
	assert.Equal(t, 4, cfg.Workers)
}

// TestLoadConfig_PartialFileKeepsDefaults verifies layering over
// DefaultConfig.
func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	doc := "topology: linear\n"
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := sweep.LoadConfig(path)
	require.NoError(t, err)

	def := sweep.DefaultConfig()
	assert.Equal(t, "linear", cfg.Topology)
	assert.Equal(t, def.Formation, cfg.Formation)
	assert.Equal(t, def.Breakage, cfg.Breakage)
	assert.Equal(t, def.AlphaLeft, cfg.AlphaLeft)
}

// TestLoadConfig_BadFile covers the failure paths.
func TestLoadConfig_BadFile(t *testing.T) {
	_, err := sweep.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("breakage: -1\n"), 0o600))
	_, err = sweep.LoadConfig(path)
	assert.ErrorIs(t, err, sweep.ErrBadConfig)
}

// TestConfig_Validate exercises each rejection branch.
func TestConfig_Validate(t *testing.T) {
	valid := sweep.DefaultConfig()
	require.NoError(t, valid.Validate())

	cases := map[string]func(*sweep.Config){
		"zero formation":    func(c *sweep.Config) { c.Formation = 0 },
		"negative breakage": func(c *sweep.Config) { c.Breakage = -0.5 },
		"negative r0":       func(c *sweep.Config) { c.R0 = -1 },
		"negative rg":       func(c *sweep.Config) { c.RG = -1 },
		"unknown topology":  func(c *sweep.Config) { c.Topology = "toroidal" },
		"zero axis steps":   func(c *sweep.Config) { c.AlphaLeft.Steps = 0 },
		"non-positive α":    func(c *sweep.Config) { c.AlphaRight.Min = 0 },
		"inverted axis":     func(c *sweep.Config) { c.AlphaLeft.Max = c.AlphaLeft.Min / 2 },
		"negative workers":  func(c *sweep.Config) { c.Workers = -1 },
	}
	for name, mutate := range cases {
		cfg := sweep.DefaultConfig()
		mutate(&cfg)
		assert.ErrorIs(t, cfg.Validate(), sweep.ErrBadConfig, name)
	}
}

// TestAxis_Values verifies grid-point materialization.
func TestAxis_Values(t *testing.T) {
	vals := sweep.Axis{Min: 1, Max: 3, Steps: 5}.Values()
	require.Len(t, vals, 5)
	assert.InDeltaSlice(t, []float64{1, 1.5, 2, 2.5, 3}, vals, 1e-12)

	single := sweep.Axis{Min: 2, Max: 2, Steps: 1}.Values()
	assert.Equal(t, []float64{2}, single)
}
