package tempo

import (
	"github.com/mjibson/go-dsp/fft"
)

// Params contains parameters for tempo estimation from note onsets
type Params struct {
	// GridRate is the sampling rate (Hz) of the onset activation signal.
	GridRate float64 `json:"grid_rate"`

	// MinBPM and MaxBPM bound the beat-period search.
	MinBPM float64 `json:"min_bpm"`
	MaxBPM float64 `json:"max_bpm"`

	// FallbackBPM is returned whenever no periodicity can be established.
	FallbackBPM float64 `json:"fallback_bpm"`
}

// Estimator estimates tempo from note onset times when the source supplies
// no tempo metadata. Onsets are rasterized onto a fixed-rate activation
// grid; the autocorrelation of that grid (computed via FFT) peaks at the
// beat period.
type Estimator struct {
	params Params
}

// maxGridSamples caps the activation grid so a pathologically long
// performance cannot blow up the FFT (about 2.9 hours at 100 Hz).
const maxGridSamples = 1 << 20

// NewEstimator creates a tempo estimator with default parameters
func NewEstimator() *Estimator {
	return &Estimator{
		params: Params{
			GridRate:    100.0,
			MinBPM:      60.0,
			MaxBPM:      180.0,
			FallbackBPM: 120.0,
		},
	}
}

// NewEstimatorWithParams creates a tempo estimator with custom parameters
func NewEstimatorWithParams(params Params) *Estimator {
	if params.GridRate <= 0 {
		params.GridRate = 100.0
	}
	if params.MinBPM <= 0 || params.MaxBPM <= params.MinBPM {
		params.MinBPM = 60.0
		params.MaxBPM = 180.0
	}
	if params.FallbackBPM <= 0 {
		params.FallbackBPM = 120.0
	}
	return &Estimator{params: params}
}

// Estimate returns the estimated tempo in BPM, or FallbackBPM when the
// onsets carry no usable periodicity.
func (e *Estimator) Estimate(starts []float64) float64 {
	if len(starts) < 4 {
		return e.params.FallbackBPM
	}

	activation := e.rasterize(starts)
	if activation == nil {
		return e.params.FallbackBPM
	}

	autocorr := e.autocorrelate(activation)
	if autocorr == nil {
		return e.params.FallbackBPM
	}

	lag := e.findBeatLag(autocorr)
	if lag == 0 {
		return e.params.FallbackBPM
	}

	period := float64(lag) / e.params.GridRate
	return 60.0 / period
}

// rasterize places a unit impulse on the grid cell of each onset, relative
// to the earliest onset.
func (e *Estimator) rasterize(starts []float64) []float64 {
	first := starts[0]
	last := starts[0]
	for _, t := range starts {
		if t < first {
			first = t
		}
		if t > last {
			last = t
		}
	}

	n := int((last-first)*e.params.GridRate) + 1
	if n < 2 || n > maxGridSamples {
		return nil
	}

	activation := make([]float64, n)
	for _, t := range starts {
		idx := int((t - first) * e.params.GridRate)
		if idx >= n {
			idx = n - 1
		}
		activation[idx] += 1.0
	}
	return activation
}

// autocorrelate computes the normalized autocorrelation of the activation
// signal via the Wiener-Khinchin theorem: IFFT(|FFT(x)|^2). The signal is
// zero padded to twice its length to avoid circular wraparound.
func (e *Estimator) autocorrelate(activation []float64) []float64 {
	padded := make([]float64, 2*len(activation))
	copy(padded, activation)

	spectrum := fft.FFTReal(padded)
	for i, c := range spectrum {
		spectrum[i] = complex(real(c)*real(c)+imag(c)*imag(c), 0)
	}
	corr := fft.IFFT(spectrum)

	autocorr := make([]float64, len(activation))
	for i := range autocorr {
		autocorr[i] = real(corr[i])
	}

	if autocorr[0] <= 0 {
		return nil
	}
	for i := range autocorr {
		autocorr[i] /= autocorr[0]
	}
	return autocorr
}

// findBeatLag picks the strongest local maximum inside the beat-period
// search band. Returns 0 when no local maximum exists in the band.
func (e *Estimator) findBeatLag(autocorr []float64) int {
	minLag := int(e.params.GridRate * 60.0 / e.params.MaxBPM)
	maxLag := int(e.params.GridRate * 60.0 / e.params.MinBPM)

	if minLag < 1 {
		minLag = 1
	}
	if maxLag >= len(autocorr)-1 {
		maxLag = len(autocorr) - 2
	}

	bestLag := 0
	bestVal := 0.0
	for lag := minLag; lag <= maxLag; lag++ {
		if autocorr[lag] > autocorr[lag-1] &&
			autocorr[lag] >= autocorr[lag+1] &&
			autocorr[lag] > bestVal {
			bestVal = autocorr[lag]
			bestLag = lag
		}
	}
	return bestLag
}

// SetParameters updates the estimator parameters
func (e *Estimator) SetParameters(params Params) {
	e.params = params
}

// GetParameters returns the current parameters
func (e *Estimator) GetParameters() Params {
	return e.params
}
