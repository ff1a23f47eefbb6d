package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foilplan/internal/counting"
)

const zr97YAML = `
isotope: Zr97
foil_radius: 0.635
foil_height: 0.05593
foil_density: 6.52
source_strength: 9.94e9
irradiation_time: 57600
reaction_rate: 2.03e-9
decay_delay: 360
detector_radius: 3.245
background_rate: 1.0e-7
target_sigma: 0.025
`

func writeExperiment(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadExperiment(t *testing.T) {
	exp, err := LoadExperiment(writeExperiment(t, zr97YAML))
	require.NoError(t, err)

	assert.Equal(t, "Zr97", exp.Isotope)
	assert.Equal(t, 2.03e-9, exp.ReactionRate)
	assert.Equal(t, 0.025, exp.Sigma)

	// Defaults fill what the file omits.
	assert.Equal(t, 1.0, exp.MinDistance)
	assert.Equal(t, counting.DefaultResponse, exp.Response)

	// No decay-data overrides in this file.
	assert.Zero(t, exp.HalfLife)
	assert.Zero(t, exp.GammaKeV)
	assert.Zero(t, exp.BranchPct)
}

func TestLoadExperimentResponseOverride(t *testing.T) {
	body := zr97YAML + `
response:
  a: 0.05
  b: 0.03
  c: 0.60
  d: 0.003
`
	exp, err := LoadExperiment(writeExperiment(t, body))
	require.NoError(t, err)
	assert.Equal(t, counting.ResponseCurve{A: 0.05, B: 0.03, C: 0.60, D: 0.003}, exp.Response)
}

func TestLoadExperimentErrors(t *testing.T) {
	_, err := LoadExperiment(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadExperiment(writeExperiment(t, "isotope: [not, a, scalar"))
	assert.Error(t, err)
}

func TestVolumeAndMass(t *testing.T) {
	exp := Experiment{FoilRadius: 0.635, FoilHeight: 0.05593, FoilDensity: 6.52}
	assert.InEpsilon(t, math.Pi*0.635*0.635*0.05593, exp.Volume(), 1e-12)
	assert.InEpsilon(t, 6.52*exp.Volume(), exp.Mass(), 1e-12)
}

func TestValidate(t *testing.T) {
	valid := func() Experiment {
		exp, err := LoadExperiment(writeExperiment(t, zr97YAML))
		require.NoError(t, err)
		return exp
	}

	tests := []struct {
		name   string
		mutate func(*Experiment)
	}{
		{"missing isotope", func(e *Experiment) { e.Isotope = "" }},
		{"zero radius", func(e *Experiment) { e.FoilRadius = 0 }},
		{"negative height", func(e *Experiment) { e.FoilHeight = -1 }},
		{"nan density", func(e *Experiment) { e.FoilDensity = math.NaN() }},
		{"infinite source", func(e *Experiment) { e.SourceStrength = math.Inf(1) }},
		{"negative delay", func(e *Experiment) { e.DecayDelay = -1 }},
		{"distance below 1 cm", func(e *Experiment) { e.MinDistance = 0.5 }},
		{"negative background", func(e *Experiment) { e.Background = -1e-7 }},
		{"zero sigma", func(e *Experiment) { e.Sigma = 0 }},
		{"sigma above 1", func(e *Experiment) { e.Sigma = 1.5 }},
		{"negative half-life override", func(e *Experiment) { e.HalfLife = -60 }},
		{"branch above 100", func(e *Experiment) { e.GammaKeV = 743.36; e.BranchPct = 101 }},
		{"gamma energy without branch", func(e *Experiment) { e.GammaKeV = 743.36 }},
		{"branch without gamma energy", func(e *Experiment) { e.BranchPct = 93.09 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp := valid()
			tt.mutate(&exp)
			assert.Error(t, exp.Validate())
		})
	}

	assert.NoError(t, valid().Validate())

	// Zero background is valid input; the solver reports it.
	exp := valid()
	exp.Background = 0
	assert.NoError(t, exp.Validate())

	// Zero overrides mean "unset"; the messages for out-of-range values say
	// what is actually rejected.
	exp = valid()
	exp.HalfLife = -60
	assert.ErrorContains(t, exp.Validate(), "cannot be negative")
	exp = valid()
	exp.GammaKeV = 743.36
	exp.BranchPct = 101
	assert.ErrorContains(t, exp.Validate(), "between 0 and 100")
}

func TestLoadSettingsDefaults(t *testing.T) {
	t.Setenv("FOILPLAN_LOG_FILE", "")
	t.Setenv("FOILPLAN_LOG_LEVEL", "")
	t.Setenv("FOILPLAN_DECAY_DATA", "")

	s := Load()
	assert.Equal(t, "/tmp/foilplan.log", s.LogFile)
	assert.Equal(t, slog.LevelInfo, s.LogLevel)
	assert.Empty(t, s.DecayDataPath)
}

func TestLoadSettingsFromEnv(t *testing.T) {
	t.Setenv("FOILPLAN_LOG_FILE", "/tmp/other.log")
	t.Setenv("FOILPLAN_LOG_LEVEL", "debug")
	t.Setenv("FOILPLAN_DECAY_DATA", "/srv/decay.db")

	s := Load()
	assert.Equal(t, "/tmp/other.log", s.LogFile)
	assert.Equal(t, slog.LevelDebug, s.LogLevel)
	assert.Equal(t, "/srv/decay.db", s.DecayDataPath)
}

func TestNewLoggerWithWriters(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := NewLoggerWithWriters(&stderr, &file, slog.LevelInfo)

	logger.Info("counting plan ready", "isotope", "Zr97")

	assert.Contains(t, stderr.String(), "counting plan ready")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(file.Bytes(), &entry))
	assert.Equal(t, "Zr97", entry["isotope"])
}
