package features

// Ordinal and nominal descriptor codes derived from a Vector. The numeric
// values are a wire contract shared with the training side; reordering them
// breaks every persisted model and log.

// TimingFeel classifies the timing character of a performance
type TimingFeel int

const (
	TimingTight TimingFeel = iota
	TimingMid
	TimingLoose
	TimingRandom
)

func (t TimingFeel) String() string {
	switch t {
	case TimingTight:
		return "tight"
	case TimingMid:
		return "mid"
	case TimingLoose:
		return "loose"
	case TimingRandom:
		return "random"
	default:
		return "unknown"
	}
}

// RhythmicDensity classifies how busy the performance is
type RhythmicDensity int

const (
	DensityLow RhythmicDensity = iota
	DensityMedium
	DensityHigh
	DensityVeryHigh
)

func (r RhythmicDensity) String() string {
	switch r {
	case DensityLow:
		return "low"
	case DensityMedium:
		return "medium"
	case DensityHigh:
		return "high"
	case DensityVeryHigh:
		return "very_high"
	default:
		return "unknown"
	}
}

// DynamicIntensity is a 10-level ordinal loudness character code
type DynamicIntensity int

var dynamicIntensityNames = [...]string{
	"soft", "gentle", "light", "bright", "deep",
	"varied", "consistent", "hard", "harsh", "wild",
}

func (d DynamicIntensity) String() string {
	if d < 0 || int(d) >= len(dynamicIntensityNames) {
		return "unknown"
	}
	return dynamicIntensityNames[d]
}

// FillActivity is an 8-level ordinal code for fill/ornament busyness
type FillActivity int

var fillActivityNames = [...]string{
	"sparse", "minimal", "occasional", "moderate",
	"medium", "frequent", "bursty", "irregular",
}

func (f FillActivity) String() string {
	if f < 0 || int(f) >= len(fillActivityNames) {
		return "unknown"
	}
	return fillActivityNames[f]
}

// FXCharacter is a 10-level nominal code suggesting an effects treatment
type FXCharacter int

var fxCharacterNames = [...]string{
	"wet, wide, airy",
	"dry, punchy, sharp",
	"dark, modulated, narrow",
	"shimmery, wide, echoing",
	"saturated, low-end heavy",
	"warm, lush, resonant",
	"distorted, mono, rough",
	"reverb-heavy, washed-out",
	"glitchy, stuttered, noisy",
	"clean, subtle, precise",
}

func (f FXCharacter) String() string {
	if f < 0 || int(f) >= len(fxCharacterNames) {
		return "unknown"
	}
	return fxCharacterNames[f]
}

// DescriptorSet bundles the categorical descriptors for one performance.
// Exactly one predictor implementation per category produces each value.
type DescriptorSet struct {
	TimingFeel       TimingFeel       `json:"timing_feel"`
	RhythmicDensity  RhythmicDensity  `json:"rhythmic_density"`
	DynamicIntensity DynamicIntensity `json:"dynamic_intensity"`
	FillActivity     FillActivity     `json:"fill_activity"`
	FXCharacter      FXCharacter      `json:"fx_character"`
}
