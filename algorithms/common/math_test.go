package common_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aamati/groove/algorithms/common"
)

// TestMean verifies the arithmetic mean and the empty-slice fallback.
func TestMean(t *testing.T) {
	assert.Equal(t, 2.5, common.Mean([]float64{1, 2, 3, 4}))
	assert.Zero(t, common.Mean(nil), "empty input should yield 0")
}

// TestPopVariance verifies the population (divide by n) variance against a
// hand-computed value and the short-input fallback.
func TestPopVariance(t *testing.T) {
	// mean 2.5, squared deviations 2.25+0.25+0.25+2.25 = 5, /4 = 1.25
	assert.InDelta(t, 1.25, common.PopVariance([]float64{1, 2, 3, 4}), 1e-12)
	assert.Zero(t, common.PopVariance([]float64{7}), "single sample should yield 0")
}

// TestPopStdDev verifies the population standard deviation is the square
// root of the population variance.
func TestPopStdDev(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	assert.InDelta(t, math.Sqrt(1.25), common.PopStdDev(data), 1e-12)
	assert.Zero(t, common.PopStdDev(nil))
}

// TestMedian verifies odd-length selection and even-length interpolation.
func TestMedian(t *testing.T) {
	assert.Equal(t, 2.0, common.Median([]float64{3, 1, 2}), "odd length picks middle sample")
	assert.Equal(t, 2.5, common.Median([]float64{4, 1, 3, 2}), "even length interpolates")
	assert.Zero(t, common.Median(nil))
}

// TestMedian_InputUnmodified verifies the median does not sort the caller's
// slice in place.
func TestMedian_InputUnmodified(t *testing.T) {
	data := []float64{3, 1, 2}
	common.Median(data)
	assert.Equal(t, []float64{3, 1, 2}, data)
}

// TestClip verifies values are limited to [lo, hi] and the input is copied.
func TestClip(t *testing.T) {
	data := []float64{-1, 0.5, 2}
	clipped := common.Clip(data, 0, 1)

	assert.Equal(t, []float64{0, 0.5, 1}, clipped)
	assert.Equal(t, []float64{-1, 0.5, 2}, data, "input must not be modified")
}

// TestMedianFilter3 verifies the 3-tap filter with zero-padded edges: the
// first and last samples see an implicit zero neighbor.
func TestMedianFilter3(t *testing.T) {
	assert.Equal(t, []float64{1, 2, 2}, common.MedianFilter3([]float64{1, 2, 3}))
	assert.Equal(t, []float64{0}, common.MedianFilter3([]float64{5}),
		"single sample is squeezed to the zero padding")
	assert.Nil(t, common.MedianFilter3(nil))
}

// TestMedianFilter3_AlternatingFlips verifies the filter maps a strictly
// alternating sequence to its counter-phase, which the swing estimator
// depends on.
func TestMedianFilter3_AlternatingFlips(t *testing.T) {
	in := []float64{0.5, 0.3, 0.5, 0.3, 0.5}
	want := []float64{0.3, 0.5, 0.3, 0.5, 0.3}
	assert.Equal(t, want, common.MedianFilter3(in))
}

// TestMinMax verifies extrema helpers and their empty-slice fallbacks.
func TestMinMax(t *testing.T) {
	data := []float64{3, -1, 2}
	assert.Equal(t, -1.0, common.Min(data))
	assert.Equal(t, 3.0, common.Max(data))
	assert.Zero(t, common.Min(nil))
	assert.Zero(t, common.Max(nil))
}

// TestRoundTo verifies decimal-place rounding.
func TestRoundTo(t *testing.T) {
	assert.Equal(t, 0.6667, common.RoundTo(2.0/3.0, 4))
	assert.Equal(t, 1.0, common.RoundTo(0.99996, 4))
	assert.Equal(t, 3.0, common.RoundTo(3.0001, 2))
}
