package counting

import (
	"fmt"
	"math"
)

// Dead-time and detector-placement constants. The dead time constant is a
// property of the counting electronics; 10 us is typical of the lab's HPGe
// chain. Placement walks the foil away from the detector in 1 cm steps and
// gives up past 5 cm.
const (
	DeadTimeConst = 1e-5 // s

	maxLossRatio = 1.01 // true/measured rate, i.e. 1% dead-time loss
	distanceStep = 1.0  // cm
	maxDistance  = 5.0  // cm

	// trueRateIters bounds the paralyzable-model inversion.
	trueRateIters = 1000
)

// MeasuredRateParalyzable returns the rate a paralyzable detector records
// for a true interaction rate n and dead time tau (Knoll p.121):
//
//	m = n * e^(-n*tau)
func MeasuredRateParalyzable(n, tau float64) float64 {
	return n * math.Exp(-n*tau)
}

// TrueRateNonparalyzable inverts the nonparalyzable dead-time model
// (Knoll p.120): n = m / (1 - m*tau).
func TrueRateNonparalyzable(m, tau float64) (float64, error) {
	if m < 0 || tau < 0 {
		return 0, fmt.Errorf("rate and dead time must be non-negative, got %g and %g", m, tau)
	}
	if m*tau >= 1 {
		return 0, fmt.Errorf("measured rate %g saturates a %g s dead time", m, tau)
	}
	return m / (1 - m*tau), nil
}

// TrueRateParalyzable inverts the paralyzable model numerically. m = n*e^(-n*tau)
// has no closed-form inverse; the low-rate branch is recovered by fixed-point
// iteration seeded with the nonparalyzable estimate.
func TrueRateParalyzable(m, tau float64) (float64, error) {
	n, err := TrueRateNonparalyzable(m, tau)
	if err != nil {
		return 0, err
	}
	if m == 0 || tau == 0 {
		return n, nil
	}

	for i := 0; i < trueRateIters; i++ {
		next := m * math.Exp(n*tau)
		if math.Abs(next-n) < 1e-9*n {
			return next, nil
		}
		n = next
	}
	return 0, fmt.Errorf("paralyzable dead-time inversion did not converge for m=%g, tau=%g", m, tau)
}

// Placement is the outcome of the detector-distance search.
type Placement struct {
	Distance   float64 // cm
	Efficiency float64 // absolute, at the gamma line
	LossFrac   float64 // predicted dead-time loss fraction
	Hot        bool    // distance cap hit; Efficiency is the last, unsafe value
}

// PlaceDetector finds the closest foil-to-detector distance at which the
// predicted dead-time loss stays under 1%, starting from minDist and backing
// off in 1 cm steps. sourceRate is the gamma emission rate into 4*pi at the
// start of counting (photons/s at the line of interest).
//
// If the foil is still too hot at 5 cm the search stops and returns the 5 cm
// placement with Hot set; counting there will lose more than 1% of events.
func PlaceDetector(energyKeV float64, curve ResponseCurve, foilR, detR, minDist, sourceRate float64) (Placement, error) {
	if minDist < 1 {
		return Placement{}, fmt.Errorf("minimum distance must be at least 1 cm, got %g", minDist)
	}
	if sourceRate < 0 {
		return Placement{}, fmt.Errorf("source rate must be non-negative, got %g", sourceRate)
	}

	dist := minDist
	for {
		eff, err := AbsoluteEff(energyKeV, curve, foilR, detR, dist)
		if err != nil {
			return Placement{}, err
		}

		n := sourceRate * eff
		loss := 1 - math.Exp(-n*DeadTimeConst) // (n-m)/n for m = n*e^(-n*tau)
		p := Placement{Distance: dist, Efficiency: eff, LossFrac: loss}

		if n == 0 || n/MeasuredRateParalyzable(n, DeadTimeConst) <= maxLossRatio {
			return p, nil
		}
		if dist+distanceStep > maxDistance {
			p.Hot = true
			return p, nil
		}
		dist += distanceStep
	}
}
