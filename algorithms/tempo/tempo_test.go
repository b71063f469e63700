package tempo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aamati/groove/algorithms/tempo"
)

// pulseStarts builds n onsets spaced period seconds apart.
func pulseStarts(n int, period float64) []float64 {
	starts := make([]float64, n)
	for i := range starts {
		starts[i] = float64(i) * period
	}
	return starts
}

// TestEstimate_TooFewOnsets verifies sparse input returns the fallback BPM.
func TestEstimate_TooFewOnsets(t *testing.T) {
	e := tempo.NewEstimator()

	assert.Equal(t, 120.0, e.Estimate(nil))
	assert.Equal(t, 120.0, e.Estimate([]float64{0, 0.5, 1.0}))
}

// TestEstimate_RegularPulse verifies a steady half-second pulse is read as
// 120 BPM: the autocorrelation of the onset grid peaks at the 0.5s lag.
func TestEstimate_RegularPulse(t *testing.T) {
	got := tempo.NewEstimator().Estimate(pulseStarts(40, 0.5))
	assert.InDelta(t, 120.0, got, 1.0)
}

// TestEstimate_SlowPulse verifies a 0.75s pulse lands at 80 BPM, still
// inside the default search band.
func TestEstimate_SlowPulse(t *testing.T) {
	got := tempo.NewEstimator().Estimate(pulseStarts(40, 0.75))
	assert.InDelta(t, 80.0, got, 1.5)
}

// TestEstimate_WithinBand verifies the estimate always falls inside
// [MinBPM, MaxBPM] or on the fallback, even for pulses outside the band.
func TestEstimate_WithinBand(t *testing.T) {
	e := tempo.NewEstimator()
	params := e.GetParameters()

	for _, period := range []float64{0.2, 0.25, 1.5, 2.0} {
		got := e.Estimate(pulseStarts(32, period))
		inBand := got >= params.MinBPM && got <= params.MaxBPM
		assert.True(t, inBand || got == params.FallbackBPM,
			"period %gs produced %g BPM outside band and fallback", period, got)
	}
}

// TestEstimate_SimultaneousOnsets verifies chords (stacked identical start
// times) do not break the periodicity reading.
func TestEstimate_SimultaneousOnsets(t *testing.T) {
	var starts []float64
	for i := 0; i < 24; i++ {
		onset := float64(i) * 0.5
		starts = append(starts, onset, onset, onset) // three-note chords
	}

	got := tempo.NewEstimator().Estimate(starts)
	assert.InDelta(t, 120.0, got, 1.0)
}

// TestNewEstimatorWithParams verifies invalid parameters fall back to the
// defaults.
func TestNewEstimatorWithParams(t *testing.T) {
	e := tempo.NewEstimatorWithParams(tempo.Params{
		GridRate: -1, MinBPM: 200, MaxBPM: 100, FallbackBPM: 0,
	})

	params := e.GetParameters()
	assert.Equal(t, 100.0, params.GridRate)
	assert.Equal(t, 60.0, params.MinBPM)
	assert.Equal(t, 180.0, params.MaxBPM)
	assert.Equal(t, 120.0, params.FallbackBPM)
}
