// Package counting models the gamma-counting system: detector response,
// counting geometry, dead time, and the optimal count-time solver.
package counting

import (
	"fmt"
	"math"

	"foilplan/internal/physics"
)

// ResponseCurve holds the four empirical fit parameters of a germanium
// detector's full-energy-peak efficiency curve:
//
//	eff(e) = a*10 - b*10*log10(e) + c*0.1*log10(e)^2 - d*1e4/e^2
//
// with e in keV. The coefficients come from a calibrated-source fit at the
// reference counting distance, so the value is an absolute efficiency at
// that distance for a point source.
type ResponseCurve struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
	C float64 `yaml:"c"`
	D float64 `yaml:"d"`
}

// DefaultResponse is the fit for detector #2 in bldg 88 rm 131 at 1 cm.
var DefaultResponse = ResponseCurve{
	A: 0.03279101,
	B: 0.01462466,
	C: 0.15007903,
	D: -0.0159574,
}

// Eff evaluates the response curve at a gamma energy in keV.
func (c ResponseCurve) Eff(energyKeV float64) (float64, error) {
	if energyKeV <= 0 {
		return 0, fmt.Errorf("gamma energy must be positive, got %g keV", energyKeV)
	}
	l := math.Log10(energyKeV)
	return c.A*10 - c.B*10*l + c.C*0.1*l*l - c.D*1e4/(energyKeV*energyKeV), nil
}

// GCF returns the geometry correction factor: the fractional solid angle for
// a disk source of radius foilR counted face-on by a detector of radius detR
// at distance dist (Knoll p.119 series expansion). The expansion is only
// valid for foils that are not pressed against the detector, so dist must be
// at least 1 cm.
func GCF(foilR, detR, dist float64) (float64, error) {
	if dist < 1 {
		return 0, fmt.Errorf("foil-to-detector distance must be at least 1 cm, got %g", dist)
	}
	if foilR < 0 || detR < 0 {
		return 0, fmt.Errorf("foil and detector radii must be non-negative, got %g and %g", foilR, detR)
	}

	alpha := (foilR / dist) * (foilR / dist)
	beta := (detR / dist) * (detR / dist)
	f1 := 5./16.*(beta/math.Pow(1+beta, 7./2.)) -
		35./64.*(beta*beta/math.Pow(1+beta, 9./2.))
	f2 := 35./128.*(beta/math.Pow(1+beta, 9./2.)) -
		315./256.*(beta*beta/math.Pow(1+beta, 11./2.)) +
		1155./1028.*(beta*beta*beta/math.Pow(1+beta, 13./2.))
	return 0.5 * (1 - 1/math.Sqrt(1+beta) -
		3./8.*(alpha*beta/math.Pow(1+beta, 5./2.)) +
		alpha*alpha*f1 - alpha*alpha*alpha*f2), nil
}

// AbsoluteEff returns the absolute photon-detection efficiency for a disk
// foil at the given distance: the point-source curve value rescaled by the
// ratio of the volume-averaged solid angle to the point-source solid angle.
func AbsoluteEff(energyKeV float64, curve ResponseCurve, foilR, detR, dist float64) (float64, error) {
	eff, err := curve.Eff(energyKeV)
	if err != nil {
		return 0, err
	}
	gcf, err := GCF(foilR, detR, dist)
	if err != nil {
		return 0, err
	}
	fsa, err := physics.FractionalSolidAngle(detR, dist)
	if err != nil {
		return 0, err
	}
	if fsa == 0 {
		return 0, fmt.Errorf("point-source solid angle is zero at distance %g", dist)
	}
	return eff * gcf / fsa, nil
}
