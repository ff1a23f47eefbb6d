package quadrature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegratePolynomial(t *testing.T) {
	// Simpson is exact for cubics.
	v, err := Integrate(func(x float64) float64 { return x*x*x - 2*x + 1 }, 0, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, v, 1e-12)
}

func TestIntegrateExponentialDecay(t *testing.T) {
	// Integral of lambda*n0*e^(-lambda t) over [0, T] is n0*(1-e^(-lambda T)),
	// the same shape the count-time solver integrates.
	lambda := math.Ln2 / 60296.4
	n0 := 5.998e4
	f := func(t float64) float64 { return lambda * n0 * math.Exp(-lambda*t) }

	v, err := Integrate(f, 0, 243455)
	require.NoError(t, err)
	want := n0 * (1 - math.Exp(-lambda*243455))
	assert.InEpsilon(t, want, v, 1e-9)
}

func TestIntegrateReversedBounds(t *testing.T) {
	f := func(x float64) float64 { return math.Sin(x) }
	fwd, err := Integrate(f, 0, math.Pi)
	require.NoError(t, err)
	rev, err := Integrate(f, math.Pi, 0)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, fwd, 1e-9)
	assert.InDelta(t, -fwd, rev, 1e-12)
}

func TestIntegrateZeroWidth(t *testing.T) {
	v, err := Integrate(func(x float64) float64 { return 1e9 }, 3, 3)
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestIntegrateRejectsBadBounds(t *testing.T) {
	f := func(x float64) float64 { return x }
	_, err := Integrate(f, 0, math.Inf(1))
	assert.Error(t, err)
	_, err = Integrate(f, math.NaN(), 1)
	assert.Error(t, err)
	_, err = IntegrateTol(f, 0, 1, 0)
	assert.Error(t, err)
}
