// Package predictors maps assembled feature vectors to categorical groove
// descriptors. Every category is served through a small predictor interface
// so the default threshold cascades and externally trained models are
// interchangeable without the engine branching on a model-type flag.
package predictors

import (
	"github.com/aamati/groove/groove/config"
	"github.com/aamati/groove/groove/features"
)

// TimingFeelPredictor predicts the timing feel code from a feature subset
type TimingFeelPredictor interface {
	PredictTimingFeel(v *features.Vector) features.TimingFeel
}

// RhythmicDensityPredictor predicts the rhythmic density class
type RhythmicDensityPredictor interface {
	PredictRhythmicDensity(v *features.Vector) features.RhythmicDensity
}

// DynamicIntensityPredictor predicts the 10-level dynamic intensity code
type DynamicIntensityPredictor interface {
	PredictDynamicIntensity(v *features.Vector) features.DynamicIntensity
}

// FillActivityPredictor predicts the 8-level fill activity code
type FillActivityPredictor interface {
	PredictFillActivity(v *features.Vector) features.FillActivity
}

// FXCharacterPredictor predicts the nominal fx character code
type FXCharacterPredictor interface {
	PredictFXCharacter(v *features.Vector) features.FXCharacter
}

// EnergyPredictor produces the composite energy scalar from the feature
// subset available before the vector is complete. Implementations must
// return a finite value for finite inputs.
type EnergyPredictor interface {
	PredictEnergy(density, velocityMean, dynamicRange, avgPolyphony float64) float64
}

// Set bundles one predictor per descriptor category. Exactly one
// implementation serves each category per extraction.
type Set struct {
	TimingFeel       TimingFeelPredictor
	RhythmicDensity  RhythmicDensityPredictor
	DynamicIntensity DynamicIntensityPredictor
	FillActivity     FillActivityPredictor
	FXCharacter      FXCharacterPredictor
	Energy           EnergyPredictor
}

// NewDefaultSet wires the rule-based cascades for every category using the
// given threshold tables.
func NewDefaultSet(cfg *config.Config) *Set {
	return &Set{
		TimingFeel:       NewTimingFeelCascade(cfg.Cascade.TimingFeel),
		RhythmicDensity:  NewRhythmicDensityCascade(cfg.Cascade.RhythmicDensity),
		DynamicIntensity: NewDynamicIntensityCascade(cfg.Cascade.DynamicIntensity),
		FillActivity:     NewFillActivityCascade(cfg.Cascade.FillActivity),
		FXCharacter:      NewFXCharacterCascade(cfg.Cascade.FXCharacter),
		Energy:           NewLinearEnergy(cfg.Energy),
	}
}

// Predict runs every category predictor over the vector and assembles the
// descriptor set.
func (s *Set) Predict(v *features.Vector) features.DescriptorSet {
	return features.DescriptorSet{
		TimingFeel:       s.TimingFeel.PredictTimingFeel(v),
		RhythmicDensity:  s.RhythmicDensity.PredictRhythmicDensity(v),
		DynamicIntensity: s.DynamicIntensity.PredictDynamicIntensity(v),
		FillActivity:     s.FillActivity.PredictFillActivity(v),
		FXCharacter:      s.FXCharacter.PredictFXCharacter(v),
	}
}
