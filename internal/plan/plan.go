// Package plan runs the full counting-plan pipeline for one activated foil:
// decay yield, detector placement, and the optimal count-time solve.
package plan

import (
	"fmt"
	"log/slog"

	"foilplan/internal/config"
	"foilplan/internal/counting"
	"foilplan/internal/nucdata"
	"foilplan/internal/physics"
)

// Result is one computed counting plan.
type Result struct {
	// Decay data used
	Isotope   string
	HalfLife  float64 // s
	GammaKeV  float64
	BranchPct float64

	// Foil state at the start of counting
	Atoms            float64
	InitialActivity  float64 // Bq
	SpecificActivity float64 // Bq/g

	// Detector placement
	Distance    float64 // cm
	Efficiency  float64 // absolute, at the gamma line
	DeadLossPct float64
	HotFoil     bool

	// Counting plan
	AvgRate           float64 // counts/s averaged over the foil count
	FoilSeconds       float64
	BackgroundSeconds float64
	Iterations        int
	Unachievable      bool
}

// Compute runs the pipeline for one experiment. Decay data comes from the
// provider; experimenter overrides in the record win over it.
func Compute(exp config.Experiment, data nucdata.Provider, logger *slog.Logger) (Result, error) {
	if err := exp.Validate(); err != nil {
		return Result{}, err
	}

	src := data
	if exp.HalfLife > 0 || exp.GammaKeV > 0 {
		o := nucdata.Override{Source: data, HalfLifeSec: exp.HalfLife}
		if exp.GammaKeV > 0 {
			o.Line = &nucdata.Gamma{EnergyKeV: exp.GammaKeV, BranchPct: exp.BranchPct}
		}
		src = o
	}

	halfLife, err := src.HalfLife(exp.Isotope)
	if err != nil {
		return Result{}, err
	}
	gammas, err := src.Gammas(exp.Isotope)
	if err != nil {
		return Result{}, err
	}
	line := gammas[0]

	logger.Debug("decay data resolved",
		"isotope", exp.Isotope,
		"half_life_s", halfLife,
		"gamma_kev", line.EnergyKeV,
		"branch_pct", line.BranchPct)

	atoms, err := physics.ProductionDecay(halfLife, 0, exp.IrradiationTime,
		exp.ReactionRate, exp.SourceStrength, exp.Volume(), exp.DecayDelay)
	if err != nil {
		return Result{}, fmt.Errorf("decay yield: %w", err)
	}
	activity, err := physics.Activity(halfLife, atoms, 0)
	if err != nil {
		return Result{}, fmt.Errorf("starting activity: %w", err)
	}

	placement, err := counting.PlaceDetector(line.EnergyKeV, exp.Response,
		exp.FoilRadius, exp.DetectorRadius, exp.MinDistance,
		activity*line.BranchPct/100)
	if err != nil {
		return Result{}, fmt.Errorf("detector placement: %w", err)
	}
	if placement.Hot {
		logger.Warn("foil still hot at the maximum counting distance; let it cool",
			"distance_cm", placement.Distance,
			"dead_time_loss_pct", placement.LossFrac*100)
	}

	rate, err := counting.Integrand(halfLife, atoms, placement.Efficiency, line.BranchPct)
	if err != nil {
		return Result{}, fmt.Errorf("count-rate integrand: %w", err)
	}
	times, err := counting.CountTimes(exp.Sigma, rate, exp.Background)
	if err != nil {
		return Result{}, fmt.Errorf("count-time solve: %w", err)
	}

	logger.Info("counting plan computed",
		"isotope", exp.Isotope,
		"atoms", atoms,
		"distance_cm", placement.Distance,
		"foil_s", times.Foil,
		"background_s", times.Background,
		"iterations", times.Iterations,
		"unachievable", times.Unachievable)

	return Result{
		Isotope:           exp.Isotope,
		HalfLife:          halfLife,
		GammaKeV:          line.EnergyKeV,
		BranchPct:         line.BranchPct,
		Atoms:             atoms,
		InitialActivity:   activity,
		SpecificActivity:  activity / exp.Mass(),
		Distance:          placement.Distance,
		Efficiency:        placement.Efficiency,
		DeadLossPct:       placement.LossFrac * 100,
		HotFoil:           placement.Hot,
		AvgRate:           times.AvgRate,
		FoilSeconds:       times.Foil,
		BackgroundSeconds: times.Background,
		Iterations:        times.Iterations,
		Unachievable:      times.Unachievable,
	}, nil
}
