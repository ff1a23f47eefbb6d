package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"foilplan/internal/counting"
)

// Experiment is the flat record of user-supplied inputs for one counting
// plan. Distances and radii are in cm, times in seconds, density in g/cm³,
// gamma energy in keV, rates in counts/s.
type Experiment struct {
	// Foil
	Isotope     string  `yaml:"isotope"`
	FoilRadius  float64 `yaml:"foil_radius"`
	FoilHeight  float64 `yaml:"foil_height"`
	FoilDensity float64 `yaml:"foil_density"`

	// Irradiation
	SourceStrength  float64 `yaml:"source_strength"`
	IrradiationTime float64 `yaml:"irradiation_time"`
	ReactionRate    float64 `yaml:"reaction_rate"`
	DecayDelay      float64 `yaml:"decay_delay"`

	// Decay-data overrides. Zero means "look it up".
	HalfLife  float64 `yaml:"half_life"`
	GammaKeV  float64 `yaml:"gamma_energy"`
	BranchPct float64 `yaml:"branching_ratio"`

	// Counting
	DetectorRadius float64                `yaml:"detector_radius"`
	MinDistance    float64                `yaml:"min_distance"`
	Background     float64                `yaml:"background_rate"`
	Sigma          float64                `yaml:"target_sigma"`
	Response       counting.ResponseCurve `yaml:"response"`
}

// defaults returns an Experiment pre-filled with the values that have
// sensible site defaults. Everything else must come from the file.
func defaults() Experiment {
	return Experiment{
		MinDistance: 1,
		Response:    counting.DefaultResponse,
	}
}

// LoadExperiment reads and validates an experiment record from a YAML file.
func LoadExperiment(path string) (Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Experiment{}, fmt.Errorf("read experiment file: %w", err)
	}

	exp := defaults()
	if err := yaml.Unmarshal(data, &exp); err != nil {
		return Experiment{}, fmt.Errorf("parse experiment file %s: %w", path, err)
	}
	if err := exp.Validate(); err != nil {
		return Experiment{}, fmt.Errorf("experiment file %s: %w", path, err)
	}
	return exp, nil
}

// Volume returns the foil volume in cm³ (π·r²·h).
func (e Experiment) Volume() float64 {
	return math.Pi * e.FoilRadius * e.FoilRadius * e.FoilHeight
}

// Mass returns the foil mass in grams.
func (e Experiment) Mass() float64 {
	return e.FoilDensity * e.Volume()
}

// Validate rejects physically meaningless inputs. Zero background is
// allowed; the solver reports it as unachievable statistics rather than
// failing here.
func (e Experiment) Validate() error {
	if e.Isotope == "" {
		return fmt.Errorf("isotope is required")
	}
	for _, p := range []struct {
		name string
		val  float64
	}{
		{"foil_radius", e.FoilRadius},
		{"foil_height", e.FoilHeight},
		{"foil_density", e.FoilDensity},
		{"source_strength", e.SourceStrength},
		{"irradiation_time", e.IrradiationTime},
		{"reaction_rate", e.ReactionRate},
		{"detector_radius", e.DetectorRadius},
	} {
		if p.val <= 0 || math.IsInf(p.val, 0) || math.IsNaN(p.val) {
			return fmt.Errorf("%s must be positive, got %g", p.name, p.val)
		}
	}
	if e.DecayDelay < 0 {
		return fmt.Errorf("decay_delay must be non-negative, got %g", e.DecayDelay)
	}
	if e.MinDistance < 1 {
		return fmt.Errorf("min_distance must be at least 1 cm, got %g", e.MinDistance)
	}
	if e.Background < 0 {
		return fmt.Errorf("background_rate must be non-negative, got %g", e.Background)
	}
	if e.Sigma <= 0 || e.Sigma > 1 {
		return fmt.Errorf("target_sigma must be in (0, 1], got %g", e.Sigma)
	}
	if e.HalfLife < 0 {
		return fmt.Errorf("half_life override cannot be negative, got %g", e.HalfLife)
	}
	if e.GammaKeV < 0 {
		return fmt.Errorf("gamma_energy override cannot be negative, got %g", e.GammaKeV)
	}
	if e.BranchPct < 0 || e.BranchPct > 100 {
		return fmt.Errorf("branching_ratio must be between 0 and 100, got %g", e.BranchPct)
	}
	if (e.GammaKeV > 0) != (e.BranchPct > 0) {
		return fmt.Errorf("gamma_energy and branching_ratio must be overridden together")
	}
	return nil
}
