package onset

import (
	"math"
	"sort"

	"github.com/aamati/groove/algorithms/common"
)

// Params contains parameters for onset statistics
type Params struct {
	// HistogramBins is the fixed bin count for the interval histogram. A
	// fixed count keeps the entropy figure comparable across performances
	// of different lengths. Very short or very long interval ranges lose
	// resolution under a fixed scheme, hence the knob.
	HistogramBins int `json:"histogram_bins"`
}

// Result contains onset timing statistics derived from note start times
type Result struct {
	// Intervals holds the inter-onset intervals: consecutive differences
	// of the sorted start times, len(starts)-1 entries.
	Intervals []float64 `json:"intervals"`

	// Syncopation is the population variance of the intervals. The name is
	// historical: it measures timing irregularity, not metrical
	// displacement. Downstream consumers depend on these semantics, so do
	// not "fix" it to classical syncopation.
	Syncopation float64 `json:"syncopation"`

	// Entropy is the Shannon entropy (natural log) of the interval
	// histogram with add-one smoothing, a proxy for onset unpredictability.
	Entropy float64 `json:"entropy"`
}

// Stats computes inter-onset interval statistics for a performance
type Stats struct {
	params Params
}

// NewStats creates an onset statistics analyzer with default parameters
func NewStats() *Stats {
	return &Stats{
		params: Params{
			HistogramBins: 10,
		},
	}
}

// NewStatsWithParams creates an onset statistics analyzer with custom parameters
func NewStatsWithParams(params Params) *Stats {
	if params.HistogramBins <= 0 {
		params.HistogramBins = 10
	}
	return &Stats{params: params}
}

// Intervals returns the inter-onset intervals of the given start times.
// The input is not modified.
func Intervals(starts []float64) []float64 {
	if len(starts) < 2 {
		return nil
	}

	sorted := make([]float64, len(starts))
	copy(sorted, starts)
	sort.Float64s(sorted)

	intervals := make([]float64, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		intervals[i-1] = sorted[i] - sorted[i-1]
	}
	return intervals
}

// Analyze computes syncopation and onset entropy from note start times.
// Fewer than two intervals yields zeros for both, never an error.
func (s *Stats) Analyze(starts []float64) *Result {
	intervals := Intervals(starts)

	result := &Result{Intervals: intervals}
	if len(intervals) <= 1 {
		return result
	}

	result.Syncopation = common.PopVariance(intervals)
	result.Entropy = s.histogramEntropy(intervals)
	return result
}

// histogramEntropy bins the intervals into a fixed-width histogram,
// increments every bin count by one (Laplace smoothing, so empty bins never
// hit log(0)), normalizes, and takes the Shannon entropy in nats.
func (s *Stats) histogramEntropy(intervals []float64) float64 {
	counts := s.histogram(intervals)

	total := 0.0
	for i := range counts {
		counts[i]++
		total += counts[i]
	}

	entropy := 0.0
	for _, c := range counts {
		p := c / total
		entropy -= p * math.Log(p)
	}
	return entropy
}

// histogram counts intervals into HistogramBins equal-width bins spanning
// [min, max]. When every interval is identical the histogram collapses to a
// single bin, which makes the smoothed entropy exactly zero.
func (s *Stats) histogram(intervals []float64) []float64 {
	lo := common.Min(intervals)
	hi := common.Max(intervals)

	if hi == lo {
		return []float64{float64(len(intervals))}
	}

	numBins := s.params.HistogramBins
	counts := make([]float64, numBins)
	width := (hi - lo) / float64(numBins)

	for _, v := range intervals {
		idx := int((v - lo) / width)
		if idx >= numBins {
			idx = numBins - 1
		}
		counts[idx]++
	}
	return counts
}

// SetParameters updates the analyzer parameters
func (s *Stats) SetParameters(params Params) {
	s.params = params
}

// GetParameters returns the current parameters
func (s *Stats) GetParameters() Params {
	return s.params
}
