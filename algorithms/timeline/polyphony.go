package timeline

// Profile is the running active-note-count profile of an event stream,
// one sample per event.
type Profile struct {
	Counts  []int   `json:"counts"`
	Average float64 `json:"average"`
	Peak    int     `json:"peak"`
}

// SweepPolyphony walks the event stream once, maintaining a running counter
// of active notes and recording it after every event. Single pass, O(n).
// For a stream built by Builder the counter never goes negative and
// Average <= Peak.
func SweepPolyphony(events []Event) *Profile {
	counts := make([]int, len(events))

	active := 0
	peak := 0
	sum := 0
	for i, ev := range events {
		active += ev.Delta
		counts[i] = active
		sum += active
		if active > peak {
			peak = active
		}
	}

	avg := 0.0
	if len(counts) > 0 {
		avg = float64(sum) / float64(len(counts))
	}

	return &Profile{
		Counts:  counts,
		Average: avg,
		Peak:    peak,
	}
}
