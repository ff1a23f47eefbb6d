package counting

import (
	"errors"
	"fmt"
	"math"

	"foilplan/internal/physics"
	"foilplan/internal/quadrature"
)

// maxSolverIters bounds the fixed-point iteration. The reference scenarios
// converge in tens of iterations; anything near the cap is a sign the
// problem is ill-posed.
const maxSolverIters = 1000

// ErrNonConvergence is returned when the count-time fixed point fails to
// settle within the iteration cap.
var ErrNonConvergence = errors.New("count-time iteration did not converge")

// Times is the counting plan produced by the solver.
type Times struct {
	Foil       float64 // s; +Inf when Unachievable
	Background float64 // s; +Inf when Unachievable
	AvgRate    float64 // time-averaged detected count rate over Foil, counts/s
	Iterations int

	// Unachievable marks a plan whose target precision cannot be reached:
	// with no background rate (or no signal) the dead-time split formula has
	// no finite solution.
	Unachievable bool
}

// Integrand builds the detected count-rate function for n0 atoms of an
// isotope counted with the given absolute efficiency and branching ratio
// (percent). The returned function gives counts/s at elapsed counting
// time t.
func Integrand(halfLife, n0, eff, branchPct float64) (func(t float64) float64, error) {
	if halfLife <= 0 {
		return nil, fmt.Errorf("half-life must be positive, got %g", halfLife)
	}
	if n0 < 0 {
		return nil, fmt.Errorf("atom count must be non-negative, got %g", n0)
	}
	if eff < 0 || eff > 1 {
		return nil, fmt.Errorf("efficiency must be a fraction in [0, 1], got %g", eff)
	}
	if branchPct < 0 || branchPct > 100 {
		return nil, fmt.Errorf("branching ratio must be a percentage in [0, 100], got %g", branchPct)
	}

	lambda := physics.Ln2 / halfLife
	scale := eff * branchPct / 100
	return func(t float64) float64 {
		return lambda * n0 * math.Exp(-lambda*t) * scale
	}, nil
}

// CountTimes finds the foil counting duration that achieves the target
// relative statistical uncertainty sigma for the net (signal minus
// background) count, plus the complementary background counting duration.
//
// The average detected rate s over a trial duration tf depends on tf itself
// because the source decays while it is counted, so the closed-form optimal
// duration (Knoll eq. 3.54/55)
//
//	tf = [(sqrt(s+b) + sqrt(b))^2 / (sigma^2 * s^2)] / (1 + 1/sqrt((s+b)/b))
//
// is iterated to a fixed point: recompute s = integral(rate, 0, tf)/tf,
// update tf, and stop once the update moves tf by no more than one second.
//
// A zero background drives the split formula to a singularity; that case
// (and a source too weak to register at all) is reported as an unachievable
// plan with infinite durations rather than an arithmetic fault.
func CountTimes(sigma float64, rate func(t float64) float64, background float64) (Times, error) {
	if sigma <= 0 || sigma > 1 {
		return Times{}, fmt.Errorf("relative uncertainty must be a fraction in (0, 1], got %g", sigma)
	}
	if background < 0 {
		return Times{}, fmt.Errorf("background rate must be non-negative, got %g", background)
	}
	if background == 0 {
		return unachievable(), nil
	}

	tf := 1.0
	for i := 1; i <= maxSolverIters; i++ {
		integral, err := quadrature.Integrate(rate, 0, tf)
		if err != nil {
			return Times{}, fmt.Errorf("averaging count rate over %gs: %w", tf, err)
		}
		s := integral / tf
		if s <= 0 {
			return unachievable(), nil
		}

		next := (math.Pow(math.Sqrt(s+background)+math.Sqrt(background), 2) /
			(sigma * sigma * s * s)) /
			(1 + 1/math.Sqrt((s+background)/background))
		if math.IsInf(next, 1) || math.IsNaN(next) {
			return unachievable(), nil
		}

		diff := next - tf
		tf = next
		if diff <= 1 {
			return Times{
				Foil:       tf,
				Background: tf / math.Sqrt((s+background)/background),
				AvgRate:    s,
				Iterations: i,
			}, nil
		}
	}
	return Times{}, fmt.Errorf("%w after %d iterations", ErrNonConvergence, maxSolverIters)
}

func unachievable() Times {
	return Times{
		Foil:         math.Inf(1),
		Background:   math.Inf(1),
		Unachievable: true,
	}
}
