package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecayConst(t *testing.T) {
	got, err := DecayConst(54000)
	require.NoError(t, err)
	assert.InDelta(t, math.Ln2/54000, got, 1e-15)

	_, err = DecayConst(0)
	assert.Error(t, err)
	_, err = DecayConst(-1)
	assert.Error(t, err)
}

func TestHalfLifeRoundTrip(t *testing.T) {
	lambda, err := DecayConst(16200)
	require.NoError(t, err)
	hl, err := HalfLife(lambda)
	require.NoError(t, err)
	assert.InDelta(t, 16200, hl, 1e-9)

	_, err = HalfLife(0)
	assert.Error(t, err)
}

// At t=0 the activity is exactly lambda*n0.
func TestActivityAtZero(t *testing.T) {
	for _, hl := range []float64{1, 54000, 60296.4, 1e9} {
		a, err := Activity(hl, 5.998e4, 0)
		require.NoError(t, err)
		assert.InEpsilon(t, 5.998e4*math.Ln2/hl, a, 1e-12, "half-life %g", hl)
	}
}

func TestActivityDecays(t *testing.T) {
	// One half-life halves the activity.
	a0, err := Activity(3600, 1e6, 0)
	require.NoError(t, err)
	a1, err := Activity(3600, 1e6, 3600)
	require.NoError(t, err)
	assert.InEpsilon(t, a0/2, a1, 1e-12)

	_, err = Activity(3600, -1, 0)
	assert.Error(t, err)
	_, err = Activity(3600, 1, -1)
	assert.Error(t, err)
}

func TestDecay(t *testing.T) {
	n, err := Decay(3600, 1000, 7200)
	require.NoError(t, err)
	assert.InEpsilon(t, 250, n, 1e-12)
}

func TestProductionDecayReference(t *testing.T) {
	// Zr-97 scenario from an 8 MeV deuteron breakup irradiation:
	// 16 h irradiation, 6 min transfer to the counting room.
	const (
		halfLife = 16.749 * 3600
		tIrr     = 57600.0
		rate     = 2.03e-9
		src      = 9.94e9
		tCool    = 360.0
	)
	vol := math.Pi * 0.635 * 0.635 * 0.05593

	n0, err := ProductionDecay(halfLife, 0, tIrr, rate, src, vol, tCool)
	require.NoError(t, err)
	assert.InDelta(t, 5.998e4, n0, 0.005e4)
}

func TestProductionDecayMonotonicity(t *testing.T) {
	base := func(rate, src, tIrr, tCool float64) float64 {
		n0, err := ProductionDecay(60000, 0, tIrr, rate, src, 1, tCool)
		require.NoError(t, err)
		return n0
	}

	ref := base(1e-9, 1e10, 3600, 600)
	assert.Greater(t, base(2e-9, 1e10, 3600, 600), ref, "higher reaction rate")
	assert.Greater(t, base(1e-9, 2e10, 3600, 600), ref, "stronger source")
	assert.Greater(t, base(1e-9, 1e10, 7200, 600), ref, "longer irradiation")
	assert.Less(t, base(1e-9, 1e10, 3600, 1200), ref, "longer cool-down")
}

func TestProductionDecayCarriesExistingAtoms(t *testing.T) {
	// With no production the balance is pure decay of the carried atoms.
	n0, err := ProductionDecay(3600, 1000, 3600, 0, 0, 1, 0)
	require.NoError(t, err)
	assert.InEpsilon(t, 500, n0, 1e-12)
}

func TestProductionDecayRejectsBadInputs(t *testing.T) {
	cases := []struct {
		name                                    string
		halfLife, n, tIrr, rate, src, vol, tCool float64
	}{
		{"zero half-life", 0, 0, 1, 1, 1, 1, 0},
		{"negative atoms", 1, -1, 1, 1, 1, 1, 0},
		{"negative irradiation", 1, 0, -1, 1, 1, 1, 0},
		{"negative rate", 1, 0, 1, -1, 1, 1, 0},
		{"negative source", 1, 0, 1, 1, -1, 1, 0},
		{"zero volume", 1, 0, 1, 1, 1, 0, 0},
		{"negative cool-down", 1, 0, 1, 1, 1, 1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ProductionDecay(tc.halfLife, tc.n, tc.tIrr, tc.rate, tc.src, tc.vol, tc.tCool)
			assert.Error(t, err)
		})
	}
}

func TestFractionalSolidAngle(t *testing.T) {
	// Half the sphere when the source touches the detector face.
	f, err := FractionalSolidAngle(3.245, 0)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.5, f, 1e-12)

	// Detector radius 3.245 cm at 1 cm.
	f, err = FractionalSolidAngle(3.245, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.352751, f, 1e-5)

	// Vanishes far away.
	f, err = FractionalSolidAngle(1, 1e6)
	require.NoError(t, err)
	assert.Less(t, f, 1e-10)

	_, err = FractionalSolidAngle(-1, 1)
	assert.Error(t, err)
	_, err = FractionalSolidAngle(1, -1)
	assert.Error(t, err)
}
