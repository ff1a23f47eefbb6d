package counting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foilplan/internal/physics"
)

// bqRate builds the detected-rate function for a source whose initial
// activity is given directly in Bq (branching folded into eff), matching the
// way calibrated activities come out of previous counts.
func bqRate(halfLife, a0, eff float64) func(float64) float64 {
	lambda := physics.Ln2 / halfLife
	return func(t float64) float64 {
		return a0 * math.Exp(-lambda*t) * eff
	}
}

// Regression values carried over from the original analysis toolchain.
func TestCountTimesRegression(t *testing.T) {
	cases := []struct {
		name             string
		halfLife, a0, eff float64
		background       float64
		wantFoil         float64
	}{
		{"medium-lived", 54000, 548.104260, 0.0151888013272, 0.01, 1254.519433},
		{"short-lived hot", 16200, 1714.110718, 0.0499603363655, 0.01, 118.3467643},
		{"long-lived weak", 128160, 46.425931, 0.0150494914458, 0.01, 17054.945721},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CountTimes(0.01, bqRate(tc.halfLife, tc.a0, tc.eff), tc.background)
			require.NoError(t, err)
			assert.False(t, got.Unachievable)
			assert.InDelta(t, tc.wantFoil, got.Foil, 0.01)
		})
	}
}

func TestCountTimesBackgroundSplit(t *testing.T) {
	rate := bqRate(128160, 46.425931, 0.0150494914458)

	got, err := CountTimes(0.01, rate, 0.01)
	require.NoError(t, err)
	assert.InDelta(t, 2072.133205, got.Background, 0.01)

	// The background share shrinks with the background rate.
	low, err := CountTimes(0.01, rate, 0.001)
	require.NoError(t, err)
	assert.InDelta(t, 599.099768, low.Background, 0.01)
}

// At convergence tb/tf = sqrt(b/(s+b)) holds exactly; it is how tb is
// defined, so any drift here means the solver returned mismatched fields.
func TestCountTimesSplitRelation(t *testing.T) {
	const b = 0.01
	got, err := CountTimes(0.01, bqRate(54000, 548.104260, 0.0151888013272), b)
	require.NoError(t, err)
	want := got.Foil * math.Sqrt(b/(got.AvgRate+b))
	assert.InEpsilon(t, want, got.Background, 1e-12)
}

func TestCountTimesLooserTargetIsFaster(t *testing.T) {
	rate := bqRate(54000, 548.104260, 0.0151888013272)
	tight, err := CountTimes(0.01, rate, 0.01)
	require.NoError(t, err)
	loose, err := CountTimes(0.02, rate, 0.01)
	require.NoError(t, err)
	assert.Less(t, loose.Foil, tight.Foil)
}

func TestCountTimesZeroBackgroundUnachievable(t *testing.T) {
	got, err := CountTimes(0.01, bqRate(54000, 548.104260, 0.0151888013272), 0)
	require.NoError(t, err)
	assert.True(t, got.Unachievable)
	assert.True(t, math.IsInf(got.Foil, 1))
	assert.True(t, math.IsInf(got.Background, 1))
}

func TestCountTimesDeadSourceUnachievable(t *testing.T) {
	got, err := CountTimes(0.01, func(t float64) float64 { return 0 }, 0.01)
	require.NoError(t, err)
	assert.True(t, got.Unachievable)
}

func TestCountTimesRejectsBadInputs(t *testing.T) {
	rate := bqRate(54000, 100, 0.01)
	_, err := CountTimes(2, rate, 0.01)
	assert.Error(t, err)
	_, err = CountTimes(0, rate, 0.01)
	assert.Error(t, err)
	_, err = CountTimes(0.01, rate, -0.01)
	assert.Error(t, err)
}

func TestIntegrand(t *testing.T) {
	// At t=0 the detected rate is lambda*n0*eff*branch/100.
	rate, err := Integrand(60296.4, 5.998e4, 0.03185, 93.09)
	require.NoError(t, err)
	want := physics.Ln2 / 60296.4 * 5.998e4 * 0.03185 * 0.9309
	assert.InEpsilon(t, want, rate(0), 1e-12)

	// One half-life halves it.
	assert.InEpsilon(t, rate(0)/2, rate(60296.4), 1e-9)

	_, err = Integrand(0, 1, 0.1, 50)
	assert.Error(t, err)
	_, err = Integrand(1, -1, 0.1, 50)
	assert.Error(t, err)
	_, err = Integrand(1, 1, 1.5, 50)
	assert.Error(t, err)
	_, err = Integrand(1, 1, 0.1, 150)
	assert.Error(t, err)
}
