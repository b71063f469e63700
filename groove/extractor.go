// Package groove derives a compact groove descriptor from a performed
// musical passage: a fixed-shape numeric feature vector (density, swing,
// polyphony, onset statistics, composite energy) plus a set of categorical
// descriptors for downstream mood classification.
//
// The extraction is a pure, synchronous function of its input: no I/O, no
// shared state, no locking. Invocations are independent and may be run
// concurrently across performances.
package groove

import (
	"fmt"

	"github.com/aamati/groove/algorithms/common"
	"github.com/aamati/groove/algorithms/onset"
	"github.com/aamati/groove/algorithms/swing"
	"github.com/aamati/groove/algorithms/tempo"
	"github.com/aamati/groove/algorithms/timeline"
	"github.com/aamati/groove/groove/config"
	"github.com/aamati/groove/groove/features"
	"github.com/aamati/groove/groove/predictors"
	"github.com/aamati/groove/logging"
)

// Result pairs the feature vector with its categorical descriptors and
// per-extraction diagnostics.
type Result struct {
	Vector      features.Vector        `json:"vector"`
	Descriptors features.DescriptorSet `json:"descriptors"`
	Diagnostics features.Diagnostics   `json:"diagnostics"`
}

// Extractor orchestrates the groove algorithms into one extraction pass.
// It is safe for concurrent use; all state is configuration fixed at
// construction time.
type Extractor struct {
	cfg        *config.Config
	builder    *timeline.Builder
	onsetStats *onset.Stats
	swingEst   *swing.Estimator
	tempoEst   *tempo.Estimator
	predictors *predictors.Set
	logger     logging.Logger
}

// NewExtractor creates an extractor with the reference configuration and the
// default rule-based predictor cascades.
func NewExtractor() *Extractor {
	cfg := config.Default()
	return NewExtractorWithConfig(cfg, predictors.NewDefaultSet(cfg))
}

// NewExtractorWithConfig creates an extractor with custom tunables and an
// explicit predictor set, e.g. one backed by externally trained models.
// A nil set falls back to the default cascades.
func NewExtractorWithConfig(cfg *config.Config, set *predictors.Set) *Extractor {
	if cfg == nil {
		cfg = config.Default()
	}
	if set == nil {
		set = predictors.NewDefaultSet(cfg)
	}

	return &Extractor{
		cfg:     cfg,
		builder: timeline.NewBuilder(),
		onsetStats: onset.NewStatsWithParams(onset.Params{
			HistogramBins: cfg.Onset.HistogramBins,
		}),
		swingEst: swing.NewEstimatorWithParams(swing.Params{
			MinNotes:  cfg.Swing.MinNotes,
			Tolerance: cfg.Swing.Tolerance,
		}),
		tempoEst: tempo.NewEstimatorWithParams(tempo.Params{
			GridRate:    cfg.Tempo.GridRate,
			MinBPM:      cfg.Tempo.MinBPM,
			MaxBPM:      cfg.Tempo.MaxBPM,
			FallbackBPM: cfg.Tempo.FallbackBPM,
		}),
		predictors: set,
		logger: logging.WithFields(logging.Fields{
			"component": "groove_extractor",
		}),
	}
}

// Extract derives the feature vector and descriptor set for one performance.
// Performances with fewer than 2 notes return ErrInsufficientData and no
// partial result; any other valid-but-sparse input produces a complete
// vector with neutral fallbacks for the signals it cannot support.
func (e *Extractor) Extract(p features.Performance) (*Result, error) {
	n := len(p.Notes)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 notes, got %d", ErrInsufficientData, n)
	}

	starts := make([]float64, n)
	velocities := make([]float64, n)
	pitches := make([]float64, n)
	lengths := make([]float64, n)
	spans := make([]timeline.Note, n)
	duration := 0.0

	for i, note := range p.Notes {
		starts[i] = note.Start
		velocities[i] = float64(note.Velocity)
		pitches[i] = float64(note.Pitch)
		lengths[i] = note.End - note.Start
		spans[i] = timeline.Note{Start: note.Start, End: note.End}
		if note.End > duration {
			duration = note.End
		}
	}

	events, err := e.builder.Build(spans)
	if err != nil {
		return nil, fmt.Errorf("building timeline: %w", err)
	}
	profile := timeline.SweepPolyphony(events)

	onsets := e.onsetStats.Analyze(starts)
	swingAmount := e.swingEst.Estimate(starts)

	bpm := p.Tempo
	if bpm <= 0 {
		bpm = e.tempoEst.Estimate(starts)
	}

	density := 0.0
	if duration > 0 {
		density = float64(n) / duration
	}

	velocityMean := common.Mean(velocities)
	velocityStd := common.PopStdDev(velocities)

	// Near-constant velocity would yield a max-min of ~0 and starve the
	// dynamics descriptors; fall back to the velocity deviation instead.
	dynamicRange := common.Max(velocities) - common.Min(velocities)
	if dynamicRange < e.cfg.Epsilon.DynamicRange {
		dynamicRange = velocityStd
	}

	energy := e.predictors.Energy.PredictEnergy(
		density, velocityMean, dynamicRange, profile.Average)

	instruments := p.InstrumentCount
	if instruments < 1 {
		instruments = 1
	}

	vector := features.Vector{
		Tempo:           bpm,
		Swing:           swingAmount,
		Density:         density,
		DynamicRange:    dynamicRange,
		Energy:          energy,
		MeanNoteLength:  common.Mean(lengths),
		StdNoteLength:   common.PopStdDev(lengths),
		VelocityMean:    velocityMean,
		VelocityStd:     velocityStd,
		PitchMean:       common.Mean(pitches),
		PitchRange:      common.Max(pitches) - common.Min(pitches),
		AvgPolyphony:    profile.Average,
		Syncopation:     onsets.Syncopation,
		OnsetEntropy:    onsets.Entropy,
		InstrumentCount: instruments,
	}

	result := &Result{
		Vector:      vector,
		Descriptors: e.predictors.Predict(&vector),
		Diagnostics: features.Diagnostics{
			PeakPolyphony: profile.Peak,
			Duration:      duration,
			NoteCount:     n,
		},
	}

	e.logger.Debug("extracted groove descriptor", logging.Fields{
		"notes":    n,
		"duration": duration,
		"density":  density,
		"swing":    swingAmount,
	})

	return result, nil
}

// Config returns the extractor's configuration
func (e *Extractor) Config() *config.Config {
	return e.cfg
}
