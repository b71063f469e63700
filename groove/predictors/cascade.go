package predictors

import (
	"github.com/aamati/groove/groove/config"
	"github.com/aamati/groove/groove/features"
)

// Default rule-based cascades. Thresholds come from config tables so they
// can be retuned or replaced per deployment without code changes.

// TimingFeelCascade scores the four timing categories from swing,
// syncopation and onset entropy and picks the best. Mid always collects at
// least one point, so it wins whenever nothing else fires.
type TimingFeelCascade struct {
	t config.TimingFeelThresholds
}

// NewTimingFeelCascade creates the default timing feel predictor
func NewTimingFeelCascade(t config.TimingFeelThresholds) *TimingFeelCascade {
	return &TimingFeelCascade{t: t}
}

func (c *TimingFeelCascade) PredictTimingFeel(v *features.Vector) features.TimingFeel {
	t := c.t
	swing, sync, entropy := v.Swing, v.Syncopation, v.OnsetEntropy

	var tight, mid, loose, random int

	switch {
	case swing < t.TightSwingStrong && sync < t.TightSyncStrong:
		tight += 2
	case swing < t.TightSwingSoft && sync < t.TightSyncSoft:
		tight++
	}

	switch {
	case swing > t.LooseSwingStrong && sync > t.LooseSyncStrong:
		loose += 2
	case swing > t.LooseSwingSoft && sync > t.LooseSyncSoft:
		loose++
	}

	switch {
	case sync > t.RandomSyncStrong && entropy > t.RandomEntropyStrong:
		random += 3
	case sync > t.RandomSyncSoft && entropy > t.RandomEntropySoft:
		random++
	}

	if swing >= t.MidSwingLo && swing <= t.MidSwingHi &&
		sync >= t.MidSyncLo && sync <= t.MidSyncHi {
		mid += 2
	} else {
		mid++
	}

	// Evaluation order breaks score ties: tight, mid, loose, random.
	best, feel := tight, features.TimingTight
	if mid > best {
		best, feel = mid, features.TimingMid
	}
	if loose > best {
		best, feel = loose, features.TimingLoose
	}
	if random > best {
		feel = features.TimingRandom
	}
	return feel
}

// RhythmicDensityCascade buckets note density into the four classes
type RhythmicDensityCascade struct {
	b config.DensityBuckets
}

// NewRhythmicDensityCascade creates the default rhythmic density predictor
func NewRhythmicDensityCascade(b config.DensityBuckets) *RhythmicDensityCascade {
	return &RhythmicDensityCascade{b: b}
}

func (c *RhythmicDensityCascade) PredictRhythmicDensity(v *features.Vector) features.RhythmicDensity {
	switch {
	case v.Density < c.b.LowMax:
		return features.DensityLow
	case v.Density < c.b.MediumMax:
		return features.DensityMedium
	case v.Density < c.b.HighMax:
		return features.DensityHigh
	default:
		return features.DensityVeryHigh
	}
}

// DynamicIntensityCascade reads the 2-D velocity-mean x dynamic-range table
type DynamicIntensityCascade struct {
	bands []config.DynamicIntensityBand
}

// NewDynamicIntensityCascade creates the default dynamic intensity predictor
func NewDynamicIntensityCascade(bands []config.DynamicIntensityBand) *DynamicIntensityCascade {
	return &DynamicIntensityCascade{bands: bands}
}

func (c *DynamicIntensityCascade) PredictDynamicIntensity(v *features.Vector) features.DynamicIntensity {
	band := c.bands[len(c.bands)-1]
	for _, b := range c.bands {
		if v.VelocityMean < b.VelocityMax {
			band = b
			break
		}
	}

	switch {
	case v.DynamicRange < band.RangeLow:
		return features.DynamicIntensity(band.Codes[0])
	case v.DynamicRange < band.RangeHigh:
		return features.DynamicIntensity(band.Codes[1])
	default:
		return features.DynamicIntensity(band.Codes[2])
	}
}

// FillActivityCascade combines pitch-range and onset-entropy band indices
type FillActivityCascade struct {
	b config.FillActivityBands
}

// NewFillActivityCascade creates the default fill activity predictor
func NewFillActivityCascade(b config.FillActivityBands) *FillActivityCascade {
	return &FillActivityCascade{b: b}
}

func (c *FillActivityCascade) PredictFillActivity(v *features.Vector) features.FillActivity {
	level := bandIndex(v.PitchRange, c.b.PitchRangeBands) +
		c.b.EntropyWeight*bandIndex(v.OnsetEntropy, c.b.EntropyBands)

	if level > c.b.MaxLevel {
		level = c.b.MaxLevel
	}
	if level < 0 {
		level = 0
	}
	return features.FillActivity(level)
}

// bandIndex returns how many ascending upper bounds the value has passed
func bandIndex(value float64, bounds []float64) int {
	idx := 0
	for _, bound := range bounds {
		if value < bound {
			break
		}
		idx++
	}
	return idx
}

// FXCharacterCascade gates the nominal fx classes on proxy quantities:
// distortion (dynamic range x density), tone brightness (pitch range over
// note length), harmonic complexity (syncopation x swing), and velocity
// variability. First matching rule wins; warm/lush/resonant is the fallback.
type FXCharacterCascade struct {
	t config.FXCharacterThresholds
}

// NewFXCharacterCascade creates the default fx character predictor
func NewFXCharacterCascade(t config.FXCharacterThresholds) *FXCharacterCascade {
	return &FXCharacterCascade{t: t}
}

func (c *FXCharacterCascade) PredictFXCharacter(v *features.Vector) features.FXCharacter {
	t := c.t

	distortion := v.DynamicRange * v.Density
	brightness := v.PitchRange / (v.MeanNoteLength + t.NoteLengthGuard)
	complexity := v.Syncopation * v.Swing
	velVar := v.VelocityStd
	entropy := v.OnsetEntropy

	switch {
	case distortion > t.DistortionHi && velVar > t.VelVarHi:
		return 6 // distorted, mono, rough
	case complexity > t.ComplexityHi && entropy > t.EntropyGlitch:
		return 8 // glitchy, stuttered, noisy
	case brightness > t.BrightnessHi && entropy < t.EntropyDry:
		return 1 // dry, punchy, sharp
	case distortion > t.DistortionMid && brightness < t.BrightnessLo:
		return 4 // saturated, low-end heavy
	case velVar < t.VelVarLo && complexity < t.ComplexityLo:
		return 9 // clean, subtle, precise
	case entropy > t.EntropyWashed && velVar > t.VelVarMid:
		return 7 // reverb-heavy, washed-out
	case complexity > t.ComplexityMid && distortion > t.DistortionLo:
		return 0 // wet, wide, airy
	default:
		return 5 // warm, lush, resonant
	}
}
