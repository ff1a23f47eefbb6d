// Package quadrature implements one-dimensional adaptive Simpson
// integration. It is sized for the smooth, monotone integrands that show up
// in decay calculations; it is not a general ODE/quadrature toolkit.
package quadrature

import (
	"fmt"
	"math"
)

const (
	// defaultTol is the relative error target per panel.
	defaultTol = 1e-10
	// maxDepth bounds panel subdivision so a pathological integrand cannot
	// recurse forever.
	maxDepth = 50
)

// Func is a real-valued integrand.
type Func func(x float64) float64

// Integrate returns the integral of f over [a, b] using adaptive Simpson
// quadrature with the package default tolerance.
func Integrate(f Func, a, b float64) (float64, error) {
	return IntegrateTol(f, a, b, defaultTol)
}

// IntegrateTol is Integrate with an explicit relative tolerance.
func IntegrateTol(f Func, a, b, tol float64) (float64, error) {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return 0, fmt.Errorf("integration bounds must be finite, got [%g, %g]", a, b)
	}
	if tol <= 0 {
		return 0, fmt.Errorf("tolerance must be positive, got %g", tol)
	}
	if a == b {
		return 0, nil
	}
	sign := 1.0
	if b < a {
		a, b = b, a
		sign = -1
	}

	fa, fm, fb := f(a), f((a+b)/2), f(b)
	whole := simpson(a, b, fa, fm, fb)
	v, err := adapt(f, a, b, fa, fm, fb, whole, tol*math.Abs(whole)+tol, maxDepth)
	if err != nil {
		return 0, err
	}
	return sign * v, nil
}

// simpson is the three-point Simpson rule on [a, b].
func simpson(a, b, fa, fm, fb float64) float64 {
	return (b - a) / 6 * (fa + 4*fm + fb)
}

func adapt(f Func, a, b, fa, fm, fb, whole, eps float64, depth int) (float64, error) {
	m := (a + b) / 2
	lm, rm := (a+m)/2, (m+b)/2
	flm, frm := f(lm), f(rm)

	left := simpson(a, m, fa, flm, fm)
	right := simpson(m, b, fm, frm, fb)

	// Richardson error estimate for composite vs. single Simpson panel.
	if diff := left + right - whole; math.Abs(diff) <= 15*eps {
		return left + right + diff/15, nil
	}
	if depth <= 0 {
		return 0, fmt.Errorf("integral failed to converge on [%g, %g]", a, b)
	}

	lv, err := adapt(f, a, m, fa, flm, fm, left, eps/2, depth-1)
	if err != nil {
		return 0, err
	}
	rv, err := adapt(f, m, b, fm, frm, fb, right, eps/2, depth-1)
	if err != nil {
		return 0, err
	}
	return lv + rv, nil
}
