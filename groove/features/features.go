package features

// NoteEvent is a single played note supplied by an upstream source-format
// parser. The engine imposes no requirement beyond this shape: pitch and
// velocity in MIDI range, times in seconds with End >= Start. Duplicates are
// permitted; a performance is an unordered bag of these.
type NoteEvent struct {
	Pitch    int     `json:"pitch"`    // 0-127
	Velocity int     `json:"velocity"` // 0-127
	Start    float64 `json:"start"`    // seconds, >= 0
	End      float64 `json:"end"`      // seconds, >= Start
}

// Performance is the engine's input: a note collection plus the metadata a
// source parser can cheaply provide. Tempo 0 means unknown; the engine will
// estimate one from the onsets. InstrumentCount 0 is normalized to 1.
type Performance struct {
	Notes           []NoteEvent `json:"notes"`
	Tempo           float64     `json:"tempo"`
	InstrumentCount int         `json:"instrument_count"`
}

// Vector is the fixed-shape numeric groove descriptor of one performance.
// It is produced once, immutable, and consumed by descriptor predictors and
// by external persistence.
type Vector struct {
	Tempo           float64 `json:"tempo"`            // BPM
	Swing           float64 `json:"swing"`            // [0,1] deviation of alternating subdivisions
	Density         float64 `json:"density"`          // notes per second
	DynamicRange    float64 `json:"dynamic_range"`    // velocity spread, std fallback when near-constant
	Energy          float64 `json:"energy"`           // composite intensity scalar
	MeanNoteLength  float64 `json:"mean_note_length"` // seconds
	StdNoteLength   float64 `json:"std_note_length"`  // seconds
	VelocityMean    float64 `json:"velocity_mean"`
	VelocityStd     float64 `json:"velocity_std"`
	PitchMean       float64 `json:"pitch_mean"`
	PitchRange      float64 `json:"pitch_range"`
	AvgPolyphony    float64 `json:"avg_polyphony"`
	Syncopation     float64 `json:"syncopation"`   // interval variance, see onset.Result
	OnsetEntropy    float64 `json:"onset_entropy"` // nats
	InstrumentCount int     `json:"instrument_count"`
}

// Diagnostics carries per-extraction values that are retained for inspection
// but not required downstream.
type Diagnostics struct {
	PeakPolyphony int     `json:"peak_polyphony"`
	Duration      float64 `json:"duration"` // seconds
	NoteCount     int     `json:"note_count"`
}
