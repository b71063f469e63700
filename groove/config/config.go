package config

// Config collects every tunable the engine exposes. The cascade thresholds
// and energy weights are empirically calibrated against training data that
// lives outside this repository, so they are data here, not control flow:
// deployments swap or version them without touching the engine.
type Config struct {
	LogLevel string `json:"log_level" koanf:"log_level"`

	Onset   OnsetConfig      `json:"onset" koanf:"onset"`
	Swing   SwingConfig      `json:"swing" koanf:"swing"`
	Tempo   TempoConfig      `json:"tempo" koanf:"tempo"`
	Energy  EnergyWeights    `json:"energy" koanf:"energy"`
	Cascade CascadeConfig    `json:"cascade" koanf:"cascade"`
	Epsilon DegeneracyGuards `json:"epsilon" koanf:"epsilon"`
}

// OnsetConfig tunes the onset statistics
type OnsetConfig struct {
	// HistogramBins for the interval entropy histogram.
	HistogramBins int `json:"histogram_bins" koanf:"histogram_bins"`
}

// SwingConfig tunes the swing estimator gates
type SwingConfig struct {
	MinNotes  int     `json:"min_notes" koanf:"min_notes"`
	Tolerance float64 `json:"tolerance" koanf:"tolerance"`
}

// TempoConfig tunes onset-based tempo estimation
type TempoConfig struct {
	GridRate    float64 `json:"grid_rate" koanf:"grid_rate"`
	MinBPM      float64 `json:"min_bpm" koanf:"min_bpm"`
	MaxBPM      float64 `json:"max_bpm" koanf:"max_bpm"`
	FallbackBPM float64 `json:"fallback_bpm" koanf:"fallback_bpm"`
}

// EnergyWeights are the coefficients of the composite energy scalar:
// energy = Density*density + VelocityMean*velocityMean +
// DynamicRange*dynamicRange + AvgPolyphony*avgPolyphony + Bias.
type EnergyWeights struct {
	Density      float64 `json:"density" koanf:"density"`
	VelocityMean float64 `json:"velocity_mean" koanf:"velocity_mean"`
	DynamicRange float64 `json:"dynamic_range" koanf:"dynamic_range"`
	AvgPolyphony float64 `json:"avg_polyphony" koanf:"avg_polyphony"`
	Bias         float64 `json:"bias" koanf:"bias"`
}

// DegeneracyGuards holds the numeric epsilons for degenerate-case fallbacks
type DegeneracyGuards struct {
	// DynamicRange: a max-min velocity spread below this falls back to the
	// velocity standard deviation, so near-constant-velocity performances
	// still carry some dynamics signal.
	DynamicRange float64 `json:"dynamic_range" koanf:"dynamic_range"`
}

// CascadeConfig holds the threshold tables of the default rule cascades,
// one per descriptor category.
type CascadeConfig struct {
	TimingFeel       TimingFeelThresholds   `json:"timing_feel" koanf:"timing_feel"`
	RhythmicDensity  DensityBuckets         `json:"rhythmic_density" koanf:"rhythmic_density"`
	DynamicIntensity []DynamicIntensityBand `json:"dynamic_intensity" koanf:"dynamic_intensity"`
	FillActivity     FillActivityBands      `json:"fill_activity" koanf:"fill_activity"`
	FXCharacter      FXCharacterThresholds  `json:"fx_character" koanf:"fx_character"`
}

// TimingFeelThresholds scores tight/mid/loose/random from swing, syncopation
// and onset entropy. Each category accumulates points from a strong and a
// soft condition; the highest score wins, with mid as the fallback.
type TimingFeelThresholds struct {
	TightSwingStrong float64 `json:"tight_swing_strong" koanf:"tight_swing_strong"`
	TightSyncStrong  float64 `json:"tight_sync_strong" koanf:"tight_sync_strong"`
	TightSwingSoft   float64 `json:"tight_swing_soft" koanf:"tight_swing_soft"`
	TightSyncSoft    float64 `json:"tight_sync_soft" koanf:"tight_sync_soft"`

	LooseSwingStrong float64 `json:"loose_swing_strong" koanf:"loose_swing_strong"`
	LooseSyncStrong  float64 `json:"loose_sync_strong" koanf:"loose_sync_strong"`
	LooseSwingSoft   float64 `json:"loose_swing_soft" koanf:"loose_swing_soft"`
	LooseSyncSoft    float64 `json:"loose_sync_soft" koanf:"loose_sync_soft"`

	RandomSyncStrong    float64 `json:"random_sync_strong" koanf:"random_sync_strong"`
	RandomEntropyStrong float64 `json:"random_entropy_strong" koanf:"random_entropy_strong"`
	RandomSyncSoft      float64 `json:"random_sync_soft" koanf:"random_sync_soft"`
	RandomEntropySoft   float64 `json:"random_entropy_soft" koanf:"random_entropy_soft"`

	MidSwingLo float64 `json:"mid_swing_lo" koanf:"mid_swing_lo"`
	MidSwingHi float64 `json:"mid_swing_hi" koanf:"mid_swing_hi"`
	MidSyncLo  float64 `json:"mid_sync_lo" koanf:"mid_sync_lo"`
	MidSyncHi  float64 `json:"mid_sync_hi" koanf:"mid_sync_hi"`
}

// DensityBuckets maps note density (notes/second) to the four rhythmic
// density classes by ascending upper bounds.
type DensityBuckets struct {
	LowMax    float64 `json:"low_max" koanf:"low_max"`
	MediumMax float64 `json:"medium_max" koanf:"medium_max"`
	HighMax   float64 `json:"high_max" koanf:"high_max"`
}

// DynamicIntensityBand is one row of the velocity-mean x dynamic-range table.
// A performance falls into the first band whose VelocityMax exceeds its mean
// velocity, then the dynamic range picks one of the three codes.
type DynamicIntensityBand struct {
	VelocityMax float64 `json:"velocity_max" koanf:"velocity_max"`
	RangeLow    float64 `json:"range_low" koanf:"range_low"`
	RangeHigh   float64 `json:"range_high" koanf:"range_high"`
	Codes       [3]int  `json:"codes" koanf:"codes"`
}

// FillActivityBands derives the fill level from joint pitch-range and
// onset-entropy bands: the pitch-range band index is the base level, the
// entropy band index (weighted) is added, and the sum is clamped to
// [0, MaxLevel].
type FillActivityBands struct {
	PitchRangeBands []float64 `json:"pitch_range_bands" koanf:"pitch_range_bands"`
	EntropyBands    []float64 `json:"entropy_bands" koanf:"entropy_bands"`
	EntropyWeight   int       `json:"entropy_weight" koanf:"entropy_weight"`
	MaxLevel        int       `json:"max_level" koanf:"max_level"`
}

// FXCharacterThresholds gates the nominal fx classes on proxy quantities
// derived from the feature vector (see predictors.FXCharacterCascade).
type FXCharacterThresholds struct {
	DistortionHi    float64 `json:"distortion_hi" koanf:"distortion_hi"`
	DistortionMid   float64 `json:"distortion_mid" koanf:"distortion_mid"`
	DistortionLo    float64 `json:"distortion_lo" koanf:"distortion_lo"`
	VelVarHi        float64 `json:"vel_var_hi" koanf:"vel_var_hi"`
	VelVarMid       float64 `json:"vel_var_mid" koanf:"vel_var_mid"`
	VelVarLo        float64 `json:"vel_var_lo" koanf:"vel_var_lo"`
	ComplexityHi    float64 `json:"complexity_hi" koanf:"complexity_hi"`
	ComplexityMid   float64 `json:"complexity_mid" koanf:"complexity_mid"`
	ComplexityLo    float64 `json:"complexity_lo" koanf:"complexity_lo"`
	BrightnessHi    float64 `json:"brightness_hi" koanf:"brightness_hi"`
	BrightnessLo    float64 `json:"brightness_lo" koanf:"brightness_lo"`
	EntropyGlitch   float64 `json:"entropy_glitch" koanf:"entropy_glitch"`
	EntropyDry      float64 `json:"entropy_dry" koanf:"entropy_dry"`
	EntropyWashed   float64 `json:"entropy_washed" koanf:"entropy_washed"`
	NoteLengthGuard float64 `json:"note_length_guard" koanf:"note_length_guard"`
}

// Default returns the reference configuration. The values are calibrated
// fits, not derivations; change them through config, not here.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Onset: OnsetConfig{
			HistogramBins: 10,
		},
		Swing: SwingConfig{
			MinNotes:  12,
			Tolerance: 0.003,
		},
		Tempo: TempoConfig{
			GridRate:    100.0,
			MinBPM:      60.0,
			MaxBPM:      180.0,
			FallbackBPM: 120.0,
		},
		Energy: EnergyWeights{
			Density:      0.136,
			VelocityMean: 0.0268,
			DynamicRange: 0.0134,
			AvgPolyphony: 0.25,
			Bias:         0.0,
		},
		Epsilon: DegeneracyGuards{
			DynamicRange: 1e-3,
		},
		Cascade: CascadeConfig{
			TimingFeel: TimingFeelThresholds{
				TightSwingStrong: 0.05,
				TightSyncStrong:  0.015,
				TightSwingSoft:   0.1,
				TightSyncSoft:    0.03,

				LooseSwingStrong: 0.08,
				LooseSyncStrong:  0.015,
				LooseSwingSoft:   0.05,
				LooseSyncSoft:    0.01,

				RandomSyncStrong:    0.045,
				RandomEntropyStrong: 2.0,
				RandomSyncSoft:      0.035,
				RandomEntropySoft:   1.8,

				MidSwingLo: 0.03,
				MidSwingHi: 0.08,
				MidSyncLo:  0.01,
				MidSyncHi:  0.04,
			},
			RhythmicDensity: DensityBuckets{
				LowMax:    2.0,
				MediumMax: 6.0,
				HighMax:   12.0,
			},
			DynamicIntensity: []DynamicIntensityBand{
				{VelocityMax: 30, RangeLow: 20, RangeHigh: 30, Codes: [3]int{0, 1, 2}},
				{VelocityMax: 50, RangeLow: 25, RangeHigh: 40, Codes: [3]int{2, 3, 4}},
				{VelocityMax: 70, RangeLow: 30, RangeHigh: 50, Codes: [3]int{3, 4, 5}},
				{VelocityMax: 90, RangeLow: 40, RangeHigh: 60, Codes: [3]int{5, 6, 7}},
				{VelocityMax: 128, RangeLow: 50, RangeHigh: 70, Codes: [3]int{6, 7, 8}},
			},
			FillActivity: FillActivityBands{
				PitchRangeBands: []float64{5, 12, 24, 48},
				EntropyBands:    []float64{1.2, 2.2},
				EntropyWeight:   2,
				MaxLevel:        7,
			},
			FXCharacter: FXCharacterThresholds{
				DistortionHi:    150,
				DistortionMid:   80,
				DistortionLo:    50,
				VelVarHi:        20,
				VelVarMid:       15,
				VelVarLo:        5,
				ComplexityHi:    0.05,
				ComplexityMid:   0.03,
				ComplexityLo:    0.01,
				BrightnessHi:    40,
				BrightnessLo:    15,
				EntropyGlitch:   2.5,
				EntropyDry:      1.2,
				EntropyWashed:   3.0,
				NoteLengthGuard: 1e-6,
			},
		},
	}
}
