// Package midi adapts Standard MIDI Files to the engine's Performance
// input. It is the reference implementation of the parsing boundary; any
// source that can produce note events with seconds-based times can replace
// it.
package midi

import (
	"bytes"
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/aamati/groove/groove/features"
)

// ReadPerformance parses a .mid/.midi file into a Performance: paired
// note-on/note-off events with absolute times in seconds, the mean of the
// file's tempo changes (0 when the file has none), and a per-channel
// instrument count.
func ReadPerformance(path string) (p *features.Performance, e error) {
	// The SMF parser can panic on malformed files
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			p, e = nil, fmt.Errorf("parsing midi file: %v", r)
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading midi file: %w", err)
	}

	s, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing midi file: %w", err)
	}

	return FromSMF(s), nil
}

// pendingKey identifies a sounding note awaiting its note-off
type pendingKey struct {
	track   int
	channel uint8
	pitch   uint8
}

type pendingNote struct {
	start    float64
	velocity uint8
}

// FromSMF converts a parsed SMF into a Performance. A NoteOn with velocity
// zero counts as a NoteOff (running-status convention). Notes left sounding
// at the end of the file are closed at the last event time seen.
func FromSMF(s *smf.SMF) *features.Performance {
	var notes []features.NoteEvent
	var tempos []float64

	// Stacks per key: overlapping same-pitch notes pair off in LIFO order.
	pending := make(map[pendingKey][]pendingNote)
	instruments := make(map[pendingKey]bool)
	lastTime := 0.0

	for t, track := range s.Tracks {
		var absTicks int64
		for _, ev := range track {
			absTicks += int64(ev.Delta)
			absTime := float64(s.TimeAt(absTicks)) / 1e6 // micros -> seconds
			if absTime > lastTime {
				lastTime = absTime
			}

			var channel, key, velocity uint8
			var bpm float64
			switch {
			case ev.Message.GetMetaTempo(&bpm):
				tempos = append(tempos, bpm)

			case ev.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0:
				pk := pendingKey{track: t, channel: channel, pitch: key}
				pending[pk] = append(pending[pk], pendingNote{start: absTime, velocity: velocity})
				instruments[pendingKey{track: t, channel: channel}] = true

			case ev.Message.GetNoteOff(&channel, &key, &velocity),
				ev.Message.GetNoteOn(&channel, &key, &velocity): // velocity 0
				pk := pendingKey{track: t, channel: channel, pitch: key}
				stack := pending[pk]
				if len(stack) == 0 {
					continue // orphan note-off
				}
				on := stack[len(stack)-1]
				pending[pk] = stack[:len(stack)-1]
				notes = append(notes, features.NoteEvent{
					Pitch:    int(key),
					Velocity: int(on.velocity),
					Start:    on.start,
					End:      absTime,
				})
			}
		}
	}

	for pk, stack := range pending {
		for _, on := range stack {
			notes = append(notes, features.NoteEvent{
				Pitch:    int(pk.pitch),
				Velocity: int(on.velocity),
				Start:    on.start,
				End:      lastTime,
			})
		}
	}

	tempo := 0.0
	if len(tempos) > 0 {
		sum := 0.0
		for _, t := range tempos {
			sum += t
		}
		tempo = sum / float64(len(tempos))
	}

	return &features.Performance{
		Notes:           notes,
		Tempo:           tempo,
		InstrumentCount: len(instruments),
	}
}
