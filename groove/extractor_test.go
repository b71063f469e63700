package groove_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aamati/groove/groove"
	"github.com/aamati/groove/groove/features"
)

// steadyPerformance builds n notes on a regular pulse with mildly varied
// velocities and pitches, enough material for every signal to engage.
func steadyPerformance(n int, period float64) features.Performance {
	notes := make([]features.NoteEvent, n)
	for i := range notes {
		start := float64(i) * period
		notes[i] = features.NoteEvent{
			Pitch:    60 + i%7,
			Velocity: 70 + (i%5)*6,
			Start:    start,
			End:      start + period/2,
		}
	}
	return features.Performance{Notes: notes, Tempo: 120}
}

// TestExtract_InsufficientData verifies performances with fewer than two
// notes return the sentinel error and no partial result.
func TestExtract_InsufficientData(t *testing.T) {
	e := groove.NewExtractor()

	for _, notes := range [][]features.NoteEvent{
		nil,
		{{Pitch: 60, Velocity: 100, Start: 0, End: 1}},
	} {
		result, err := e.Extract(features.Performance{Notes: notes})
		assert.Nil(t, result)
		assert.ErrorIs(t, err, groove.ErrInsufficientData)
	}
}

// TestExtract_QuantizedPassage verifies a metronomic passage reads as
// swingless and fully regular: zero swing, zero syncopation, zero entropy.
func TestExtract_QuantizedPassage(t *testing.T) {
	notes := []features.NoteEvent{
		{Pitch: 60, Velocity: 80, Start: 0, End: 0.5},
		{Pitch: 62, Velocity: 90, Start: 1, End: 1.5},
		{Pitch: 64, Velocity: 70, Start: 2, End: 2.5},
		{Pitch: 65, Velocity: 85, Start: 3, End: 3.5},
	}

	result, err := groove.NewExtractor().Extract(features.Performance{Notes: notes, Tempo: 100})
	require.NoError(t, err)

	v := result.Vector
	assert.Zero(t, v.Swing)
	assert.Zero(t, v.Syncopation)
	assert.Zero(t, v.OnsetEntropy)
	assert.Equal(t, 100.0, v.Tempo, "supplied tempo passes through")
	assert.InDelta(t, 4.0/3.5, v.Density, 1e-12, "4 notes over 3.5 seconds")
	assert.Equal(t, 20.0, v.DynamicRange)
	assert.InDelta(t, 81.25, v.VelocityMean, 1e-12)
	assert.Equal(t, features.TimingTight, result.Descriptors.TimingFeel)
}

// TestExtract_ConstantVelocityFallback verifies a flat-velocity performance
// falls back from max-min to the velocity deviation, which is also zero
// here, and still completes.
func TestExtract_ConstantVelocityFallback(t *testing.T) {
	notes := make([]features.NoteEvent, 8)
	for i := range notes {
		notes[i] = features.NoteEvent{
			Pitch: 60, Velocity: 64,
			Start: float64(i) * 0.5, End: float64(i)*0.5 + 0.25,
		}
	}

	result, err := groove.NewExtractor().Extract(features.Performance{Notes: notes, Tempo: 120})
	require.NoError(t, err)

	assert.Zero(t, result.Vector.DynamicRange)
	assert.Zero(t, result.Vector.VelocityStd)
}

// TestExtract_PolyphonyProfile verifies overlap counting: three staggered
// notes peak at three simultaneous voices.
func TestExtract_PolyphonyProfile(t *testing.T) {
	notes := []features.NoteEvent{
		{Pitch: 60, Velocity: 80, Start: 0, End: 4},
		{Pitch: 64, Velocity: 80, Start: 1, End: 3},
		{Pitch: 67, Velocity: 80, Start: 2, End: 5},
	}

	result, err := groove.NewExtractor().Extract(features.Performance{Notes: notes, Tempo: 90})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Diagnostics.PeakPolyphony)
	assert.Equal(t, 1.5, result.Vector.AvgPolyphony)
	assert.Equal(t, 5.0, result.Diagnostics.Duration)
	assert.LessOrEqual(t, result.Vector.AvgPolyphony, float64(result.Diagnostics.PeakPolyphony))
}

// TestExtract_TempoEstimatedWhenUnknown verifies a zero input tempo engages
// onset-based estimation: a half-second pulse reads near 120 BPM.
func TestExtract_TempoEstimatedWhenUnknown(t *testing.T) {
	p := steadyPerformance(40, 0.5)
	p.Tempo = 0

	result, err := groove.NewExtractor().Extract(p)
	require.NoError(t, err)
	assert.InDelta(t, 120.0, result.Vector.Tempo, 1.0)
}

// TestExtract_ZeroDuration verifies zero-length performances produce a zero
// density instead of dividing by zero.
func TestExtract_ZeroDuration(t *testing.T) {
	notes := []features.NoteEvent{
		{Pitch: 60, Velocity: 64, Start: 0, End: 0},
		{Pitch: 62, Velocity: 64, Start: 0, End: 0},
	}

	result, err := groove.NewExtractor().Extract(features.Performance{Notes: notes, Tempo: 120})
	require.NoError(t, err)
	assert.Zero(t, result.Vector.Density)
}

// TestExtract_InstrumentCountNormalized verifies a missing instrument count
// is reported as one, never zero.
func TestExtract_InstrumentCountNormalized(t *testing.T) {
	p := steadyPerformance(4, 0.5)
	p.InstrumentCount = 0

	result, err := groove.NewExtractor().Extract(p)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Vector.InstrumentCount)
}

// TestExtract_Deterministic verifies extraction is a pure function: the
// same performance always yields the identical result.
func TestExtract_Deterministic(t *testing.T) {
	e := groove.NewExtractor()
	p := steadyPerformance(24, 0.4)

	first, err := e.Extract(p)
	require.NoError(t, err)
	second, err := e.Extract(p)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestExtract_InputOrderIrrelevant verifies the performance is treated as an
// unordered bag: reversing the note slice changes nothing.
func TestExtract_InputOrderIrrelevant(t *testing.T) {
	e := groove.NewExtractor()
	p := steadyPerformance(24, 0.4)

	reversed := features.Performance{
		Notes: make([]features.NoteEvent, len(p.Notes)),
		Tempo: p.Tempo,
	}
	for i, n := range p.Notes {
		reversed.Notes[len(p.Notes)-1-i] = n
	}

	a, err := e.Extract(p)
	require.NoError(t, err)
	b, err := e.Extract(reversed)
	require.NoError(t, err)

	assert.Equal(t, a.Vector, b.Vector)
	assert.Equal(t, a.Descriptors, b.Descriptors)
}

// TestExtract_VectorRanges verifies basic range invariants of the assembled
// vector on a busy passage.
func TestExtract_VectorRanges(t *testing.T) {
	result, err := groove.NewExtractor().Extract(steadyPerformance(32, 0.3))
	require.NoError(t, err)

	v := result.Vector
	assert.GreaterOrEqual(t, v.Swing, 0.0)
	assert.LessOrEqual(t, v.Swing, 1.0)
	assert.GreaterOrEqual(t, v.OnsetEntropy, 0.0)
	assert.GreaterOrEqual(t, v.Density, 0.0)
	assert.GreaterOrEqual(t, v.DynamicRange, 0.0)
	assert.Greater(t, v.MeanNoteLength, 0.0)
	assert.GreaterOrEqual(t, v.InstrumentCount, 1)
}

// TestExtract_ErrorChainMessage verifies the insufficient-data error carries
// the offending note count for operators.
func TestExtract_ErrorChainMessage(t *testing.T) {
	_, err := groove.NewExtractor().Extract(features.Performance{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, groove.ErrInsufficientData))
	assert.Contains(t, err.Error(), "got 0")
}
