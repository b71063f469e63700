package timeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aamati/groove/algorithms/timeline"
)

// TestBuild_InsufficientNotes verifies that fewer than two notes is an
// error rather than an empty stream.
func TestBuild_InsufficientNotes(t *testing.T) {
	b := timeline.NewBuilder()

	_, err := b.Build(nil)
	assert.Error(t, err, "no notes should error")

	_, err = b.Build([]timeline.Note{{Start: 0, End: 1}})
	assert.Error(t, err, "one note should error")
}

// TestBuild_EventCountAndOrder verifies two events per note and chronological
// ordering regardless of the input order.
func TestBuild_EventCountAndOrder(t *testing.T) {
	b := timeline.NewBuilder()

	events, err := b.Build([]timeline.Note{
		{Start: 1, End: 3},
		{Start: 0, End: 2},
	})
	require.NoError(t, err)
	require.Len(t, events, 4)

	want := []timeline.Event{
		{Time: 0, Delta: +1},
		{Time: 1, Delta: +1},
		{Time: 2, Delta: -1},
		{Time: 3, Delta: -1},
	}
	assert.Equal(t, want, events)
}

// TestBuild_OffBeforeOnAtSameInstant verifies the tie-break: when one note
// ends exactly as another begins, the note-off is ordered first so the two
// never count as overlapping.
func TestBuild_OffBeforeOnAtSameInstant(t *testing.T) {
	b := timeline.NewBuilder()

	events, err := b.Build([]timeline.Note{
		{Start: 0, End: 2},
		{Start: 2, End: 4},
	})
	require.NoError(t, err)

	want := []timeline.Event{
		{Time: 0, Delta: +1},
		{Time: 2, Delta: -1},
		{Time: 2, Delta: +1},
		{Time: 4, Delta: -1},
	}
	assert.Equal(t, want, events)

	profile := timeline.SweepPolyphony(events)
	assert.Equal(t, 1, profile.Peak, "back-to-back notes must not register as polyphony")
}

// TestSweepPolyphony_Profile verifies the running count, peak and average on
// a stream with genuine overlap.
func TestSweepPolyphony_Profile(t *testing.T) {
	b := timeline.NewBuilder()

	events, err := b.Build([]timeline.Note{
		{Start: 0, End: 4},
		{Start: 1, End: 3},
	})
	require.NoError(t, err)

	profile := timeline.SweepPolyphony(events)
	assert.Equal(t, []int{1, 2, 1, 0}, profile.Counts)
	assert.Equal(t, 2, profile.Peak)
	assert.Equal(t, 1.0, profile.Average)
}

// TestSweepPolyphony_Invariants verifies the count never goes negative and
// the average never exceeds the peak on a denser arrangement.
func TestSweepPolyphony_Invariants(t *testing.T) {
	b := timeline.NewBuilder()

	events, err := b.Build([]timeline.Note{
		{Start: 0.0, End: 2.5},
		{Start: 0.5, End: 1.5},
		{Start: 1.0, End: 3.0},
		{Start: 1.5, End: 2.0},
		{Start: 2.5, End: 4.0},
	})
	require.NoError(t, err)

	profile := timeline.SweepPolyphony(events)
	for i, c := range profile.Counts {
		assert.GreaterOrEqual(t, c, 0, "count at event %d went negative", i)
	}
	assert.LessOrEqual(t, profile.Average, float64(profile.Peak))
	assert.Zero(t, profile.Counts[len(profile.Counts)-1], "all notes end, final count must be 0")
}

// TestSweepPolyphony_Empty verifies the sweep tolerates an empty stream.
func TestSweepPolyphony_Empty(t *testing.T) {
	profile := timeline.SweepPolyphony(nil)
	assert.Empty(t, profile.Counts)
	assert.Zero(t, profile.Peak)
	assert.Zero(t, profile.Average)
}
