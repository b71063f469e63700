package swing

import (
	"math"

	"github.com/aamati/groove/algorithms/common"
	"github.com/aamati/groove/algorithms/onset"
)

// Params contains the gating constants for swing estimation. Both defaults
// are empirical; treat them as tunable rather than optimal.
type Params struct {
	// MinNotes is the minimum note sample threshold. With fewer than
	// MinNotes-1 intervals there is not enough evidence to call swing.
	MinNotes int `json:"min_notes"`

	// Tolerance is the standard-deviation floor (seconds) below which the
	// rhythm counts as quantized and carries no swing signal.
	Tolerance float64 `json:"tolerance"`
}

// Estimator derives a swing amount from note start times.
//
// Genuine rhythmic swing shows up as systematic lengthening of alternating
// beat subdivisions. The estimator isolates that pattern as the ratio
// between the means of the two alternating interval subsequences; the
// ratio's deviation from 1 is the swing amount, independent of absolute
// tempo. Every degenerate branch resolves to a neutral 0.0 rather
// than an error: swing is one signal among many and an engine-wide failure
// would be disproportionate.
type Estimator struct {
	params Params
}

// NewEstimator creates a swing estimator with default parameters
func NewEstimator() *Estimator {
	return &Estimator{
		params: Params{
			MinNotes:  12,
			Tolerance: 0.003,
		},
	}
}

// NewEstimatorWithParams creates a swing estimator with custom parameters
func NewEstimatorWithParams(params Params) *Estimator {
	if params.MinNotes <= 0 {
		params.MinNotes = 12
	}
	if params.Tolerance <= 0 {
		params.Tolerance = 0.003
	}
	return &Estimator{params: params}
}

// Estimate returns the swing amount in [0, 1], rounded to 4 decimal places.
// The input is not modified.
func (e *Estimator) Estimate(starts []float64) float64 {
	intervals := onset.Intervals(starts)
	if len(intervals) < e.params.MinNotes-1 {
		return 0.0
	}

	// Rests and dropped notes produce outlier intervals that would drown
	// the alternation signal. Clip to median +/- 3 sigma, then smooth with
	// a 3-tap median filter.
	median := common.Median(intervals)
	sigma := common.PopStdDev(intervals)
	clipped := common.Clip(intervals, median-3*sigma, median+3*sigma)
	smoothed := common.MedianFilter3(clipped)

	if common.PopStdDev(smoothed) < e.params.Tolerance {
		return 0.0 // effectively quantized
	}

	// Alternating subdivisions: odd-indexed intervals over even-indexed
	// ones. Note the median filter maps a strictly alternating input to
	// its counter-phase, which is why the odd subsequence is the
	// numerator.
	var odd, even []float64
	for i, v := range smoothed {
		if i%2 == 0 {
			even = append(even, v)
		} else {
			odd = append(odd, v)
		}
	}
	if len(odd) < 3 || len(even) < 3 {
		return 0.0
	}

	meanEven := common.Mean(even)
	if meanEven == 0 {
		return 0.0
	}

	ratio := common.Mean(odd) / meanEven
	amount := math.Abs(ratio - 1.0)
	amount = math.Min(amount, 1.0)

	return common.RoundTo(amount, 4)
}

// SetParameters updates the estimator parameters
func (e *Estimator) SetParameters(params Params) {
	e.params = params
}

// GetParameters returns the current parameters
func (e *Estimator) GetParameters() Params {
	return e.params
}
