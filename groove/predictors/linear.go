package predictors

import (
	"fmt"
	"math"

	"github.com/aamati/groove/groove/features"
)

// LinearModel is an externally fitted linear scorer over named feature
// columns: score = intercept + sum(coefficient * feature). It is the
// in-process form of a trained regression exported by the ML pipeline;
// training and serialization live outside this engine. Wrapped in one of the
// typed adapters below it substitutes for a default cascade without any
// change to the surrounding engine.
type LinearModel struct {
	Intercept    float64            `json:"intercept"`
	Coefficients map[string]float64 `json:"coefficients"`
}

// Feature column names shared with the training side's exported tables.
const (
	ColTempo           = "tempo"
	ColSwing           = "swing"
	ColDensity         = "density"
	ColDynamicRange    = "dynamic_range"
	ColEnergy          = "energy"
	ColMeanNoteLength  = "mean_note_length"
	ColStdNoteLength   = "std_note_length"
	ColVelocityMean    = "velocity_mean"
	ColVelocityStd     = "velocity_std"
	ColPitchMean       = "pitch_mean"
	ColPitchRange      = "pitch_range"
	ColAvgPolyphony    = "avg_polyphony"
	ColSyncopation     = "syncopation"
	ColOnsetEntropy    = "onset_entropy"
	ColInstrumentCount = "instrument_count"
)

// Score evaluates the model against the vector. Unknown column names error
// rather than silently scoring zero, since that signals a model/engine
// schema mismatch.
func (m *LinearModel) Score(v *features.Vector) (float64, error) {
	score := m.Intercept
	for col, coeff := range m.Coefficients {
		val, err := featureColumn(v, col)
		if err != nil {
			return 0, err
		}
		score += coeff * val
	}
	return score, nil
}

func featureColumn(v *features.Vector, name string) (float64, error) {
	switch name {
	case ColTempo:
		return v.Tempo, nil
	case ColSwing:
		return v.Swing, nil
	case ColDensity:
		return v.Density, nil
	case ColDynamicRange:
		return v.DynamicRange, nil
	case ColEnergy:
		return v.Energy, nil
	case ColMeanNoteLength:
		return v.MeanNoteLength, nil
	case ColStdNoteLength:
		return v.StdNoteLength, nil
	case ColVelocityMean:
		return v.VelocityMean, nil
	case ColVelocityStd:
		return v.VelocityStd, nil
	case ColPitchMean:
		return v.PitchMean, nil
	case ColPitchRange:
		return v.PitchRange, nil
	case ColAvgPolyphony:
		return v.AvgPolyphony, nil
	case ColSyncopation:
		return v.Syncopation, nil
	case ColOnsetEntropy:
		return v.OnsetEntropy, nil
	case ColInstrumentCount:
		return float64(v.InstrumentCount), nil
	default:
		return 0, fmt.Errorf("predictors: unknown feature column %q", name)
	}
}

// ordinal rounds a score into [0, max]. Scoring errors fall back to 0, the
// neutral lowest level, matching the engine's absorb-don't-fail policy.
func ordinal(m *LinearModel, v *features.Vector, max int) int {
	score, err := m.Score(v)
	if err != nil {
		return 0
	}
	code := int(math.Round(score))
	if code < 0 {
		code = 0
	}
	if code > max {
		code = max
	}
	return code
}

// LinearTimingFeel adapts a LinearModel to the timing feel code space
type LinearTimingFeel struct{ Model LinearModel }

func (p *LinearTimingFeel) PredictTimingFeel(v *features.Vector) features.TimingFeel {
	return features.TimingFeel(ordinal(&p.Model, v, int(features.TimingRandom)))
}

// LinearRhythmicDensity adapts a LinearModel to the rhythmic density classes
type LinearRhythmicDensity struct{ Model LinearModel }

func (p *LinearRhythmicDensity) PredictRhythmicDensity(v *features.Vector) features.RhythmicDensity {
	return features.RhythmicDensity(ordinal(&p.Model, v, int(features.DensityVeryHigh)))
}

// LinearDynamicIntensity adapts a LinearModel to the 10-level intensity code
type LinearDynamicIntensity struct{ Model LinearModel }

func (p *LinearDynamicIntensity) PredictDynamicIntensity(v *features.Vector) features.DynamicIntensity {
	return features.DynamicIntensity(ordinal(&p.Model, v, 9))
}

// LinearFillActivity adapts a LinearModel to the 8-level fill code
type LinearFillActivity struct{ Model LinearModel }

func (p *LinearFillActivity) PredictFillActivity(v *features.Vector) features.FillActivity {
	return features.FillActivity(ordinal(&p.Model, v, 7))
}

// LinearFXCharacter adapts a LinearModel to the nominal fx code space.
// A linear score is a blunt instrument for a nominal class, but it mirrors
// how the exported classifier's decision values arrive.
type LinearFXCharacter struct{ Model LinearModel }

func (p *LinearFXCharacter) PredictFXCharacter(v *features.Vector) features.FXCharacter {
	return features.FXCharacter(ordinal(&p.Model, v, 9))
}

// LinearEnergyModel adapts a LinearModel restricted to the energy feature
// subset to the EnergyPredictor contract.
type LinearEnergyModel struct{ Model LinearModel }

func (p *LinearEnergyModel) PredictEnergy(density, velocityMean, dynamicRange, avgPolyphony float64) float64 {
	v := &features.Vector{
		Density:      density,
		VelocityMean: velocityMean,
		DynamicRange: dynamicRange,
		AvgPolyphony: avgPolyphony,
	}
	score, err := p.Model.Score(v)
	if err != nil {
		return 0
	}
	return score
}
