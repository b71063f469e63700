package predictors

import "github.com/aamati/groove/groove/config"

// LinearEnergy is the default composite energy scorer: a fixed linear
// combination of density, mean velocity, dynamic range and average polyphony
// plus a bias term. The coefficients are a fit to external training data and
// live in configuration. The output is unbounded by design; consumers decide
// what scale means.
type LinearEnergy struct {
	w config.EnergyWeights
}

// NewLinearEnergy creates the default energy scorer with the given weights
func NewLinearEnergy(w config.EnergyWeights) *LinearEnergy {
	return &LinearEnergy{w: w}
}

func (e *LinearEnergy) PredictEnergy(density, velocityMean, dynamicRange, avgPolyphony float64) float64 {
	return e.w.Density*density +
		e.w.VelocityMean*velocityMean +
		e.w.DynamicRange*dynamicRange +
		e.w.AvgPolyphony*avgPolyphony +
		e.w.Bias
}
