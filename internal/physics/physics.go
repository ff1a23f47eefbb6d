// Package physics provides the basic nuclear calculations behind foil
// activation analysis: decay constants, activities, production-decay
// balances, and point-source solid angles.
//
// All times are in seconds, lengths in cm, and activities in decays per
// second unless noted otherwise.
package physics

import (
	"fmt"
	"math"
)

// Ln2 is shared by the decay-constant conversions.
const Ln2 = math.Ln2

// DecayConst returns the decay constant (1/s) for a half-life in seconds.
func DecayConst(halfLife float64) (float64, error) {
	if halfLife <= 0 {
		return 0, fmt.Errorf("half-life must be positive, got %g", halfLife)
	}
	return Ln2 / halfLife, nil
}

// HalfLife returns the half-life in seconds for a decay constant in 1/s.
func HalfLife(decayConst float64) (float64, error) {
	if decayConst <= 0 {
		return 0, fmt.Errorf("decay constant must be positive, got %g", decayConst)
	}
	return Ln2 / decayConst, nil
}

// Activity returns the activity (decays/s) of n0 atoms of an isotope with
// the given half-life, t seconds after production.
func Activity(halfLife, n0, t float64) (float64, error) {
	if err := checkDecayArgs(halfLife, n0, t); err != nil {
		return 0, err
	}
	lambda := Ln2 / halfLife
	return lambda * n0 * math.Exp(-lambda*t), nil
}

// Decay returns the remaining quantity after t seconds of decay. The result
// carries whatever units n0 has (atoms or Bq); ingrowth is not modeled.
func Decay(halfLife, n0, t float64) (float64, error) {
	if err := checkDecayArgs(halfLife, n0, t); err != nil {
		return 0, err
	}
	return n0 * math.Exp(-Ln2/halfLife*t), nil
}

// ProductionDecay returns the number of product atoms present after an
// irradiation of length tIrr followed by a cool-down of length tCool.
// Production competes with decay during irradiation (saturation model):
//
//	n(tIrr) = rate*vol*src/lambda * (1 - e^(-lambda*tIrr)) + n*e^(-lambda*tIrr)
//
// rate is the reaction rate per source particle (per cm3 if vol is a real
// volume; pass vol=1 for rates that already include the foil volume), src is
// the source strength in particles/s, and n is any product population left
// over from earlier irradiations.
func ProductionDecay(halfLife, n, tIrr, rate, src, vol, tCool float64) (float64, error) {
	switch {
	case halfLife <= 0:
		return 0, fmt.Errorf("half-life must be positive, got %g", halfLife)
	case n < 0:
		return 0, fmt.Errorf("initial atom count must be non-negative, got %g", n)
	case tIrr < 0:
		return 0, fmt.Errorf("irradiation time must be non-negative, got %g", tIrr)
	case rate < 0:
		return 0, fmt.Errorf("reaction rate must be non-negative, got %g", rate)
	case src < 0:
		return 0, fmt.Errorf("source strength must be non-negative, got %g", src)
	case vol <= 0:
		return 0, fmt.Errorf("volume must be positive, got %g", vol)
	case tCool < 0:
		return 0, fmt.Errorf("cool-down time must be non-negative, got %g", tCool)
	}

	lambda := Ln2 / halfLife
	n0 := rate*vol*src/lambda*(1-math.Exp(-lambda*tIrr)) + n*math.Exp(-lambda*tIrr)
	return n0 * math.Exp(-lambda*tCool), nil
}

// SolidAngle returns the solid angle (sr) subtended by a circular detector
// of radius a at distance d from a point source (Knoll 4.21).
func SolidAngle(a, d float64) (float64, error) {
	if a < 0 {
		return 0, fmt.Errorf("detector radius must be non-negative, got %g", a)
	}
	if d < 0 {
		return 0, fmt.Errorf("source distance must be non-negative, got %g", d)
	}
	return 2 * math.Pi * (1 - d/math.Sqrt(d*d+a*a)), nil
}

// FractionalSolidAngle returns the point-source solid angle as a fraction
// of the full sphere.
func FractionalSolidAngle(a, d float64) (float64, error) {
	omega, err := SolidAngle(a, d)
	if err != nil {
		return 0, err
	}
	return omega / (4 * math.Pi), nil
}

func checkDecayArgs(halfLife, n0, t float64) error {
	switch {
	case halfLife <= 0:
		return fmt.Errorf("half-life must be positive, got %g", halfLife)
	case n0 < 0:
		return fmt.Errorf("initial quantity must be non-negative, got %g", n0)
	case t < 0:
		return fmt.Errorf("decay time must be non-negative, got %g", t)
	}
	return nil
}
