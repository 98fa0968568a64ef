package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/svisuals/seq4d/schema"
)

func secs(n int64) time.Duration {
	return time.Duration(n) * time.Second
}

func testWindow(t *testing.T) schema.ScheduleWindow {
	t.Helper()
	window, err := NewScheduleWindow(WindowRequest{
		Start:       day(1),
		Finish:      day(31),
		FrameStart:  1,
		TotalFrames: 30,
	})
	require.NoError(t, err)
	return window
}

func TestMapDates(t *testing.T) {
	window := testWindow(t)
	tests := []struct {
		name     string
		dates    schema.DateRange
		expected FrameSpan
	}{
		{
			name:     "interior range",
			dates:    schema.DateRange{Start: day(10), Finish: day(20)},
			expected: FrameSpan{Start: 10, Finish: 20},
		},
		{
			name:     "full window",
			dates:    schema.DateRange{Start: day(1), Finish: day(31)},
			expected: FrameSpan{Start: 1, Finish: 31},
		},
		{
			name:     "clamped before window",
			dates:    schema.DateRange{Start: day(1).AddDate(0, -1, 0), Finish: day(5)},
			expected: FrameSpan{Start: 1, Finish: 5},
		},
		{
			name:     "clamped after window",
			dates:    schema.DateRange{Start: day(25), Finish: day(31).AddDate(0, 1, 0)},
			expected: FrameSpan{Start: 25, Finish: 31},
		},
		{
			name:     "zero duration task",
			dates:    schema.DateRange{Start: day(15), Finish: day(15)},
			expected: FrameSpan{Start: 15, Finish: 15},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapDates(window, tt.dates))
		})
	}
}

func TestMapDatesDeterministic(t *testing.T) {
	window := testWindow(t)
	dates := schema.DateRange{Start: day(7), Finish: day(23)}
	first := MapDates(window, dates)
	for range 10 {
		assert.Equal(t, first, MapDates(window, dates))
	}
}

func TestMapTasks(t *testing.T) {
	window := testWindow(t)
	roots := []schema.Task{
		{
			ID: "slab",
			Dates: map[schema.DateSource]schema.DateRange{
				schema.ScheduleSource: {Start: day(10), Finish: day(20)},
			},
			Children: []schema.Task{
				{
					ID: "slab.pour",
					Dates: map[schema.DateSource]schema.DateRange{
						schema.ScheduleSource: {Start: day(12), Finish: day(14)},
					},
				},
			},
		},
		{ID: "undated"},
		{
			ID: "future",
			Dates: map[schema.DateSource]schema.DateRange{
				schema.ScheduleSource: {Start: day(31).AddDate(0, 2, 0), Finish: day(31).AddDate(0, 3, 0)},
			},
		},
	}

	mapped, skipped := MapTasks(window, roots, schema.ScheduleSource)

	require.Len(t, mapped, 2)
	byID := map[string]MappedTask{}
	for _, m := range mapped {
		byID[m.Task.ID] = m
	}
	assert.Equal(t, FrameSpan{Start: 10, Finish: 20}, byID["slab"].Span)
	assert.Equal(t, FrameSpan{Start: 12, Finish: 14}, byID["slab.pour"].Span)

	require.Len(t, skipped, 2)
	reasons := map[string]string{}
	for _, s := range skipped {
		reasons[s.TaskID] = s.Reason
	}
	assert.Equal(t, schema.SkipMissingDate, reasons["undated"])
	assert.Equal(t, schema.SkipOutOfRange, reasons["future"])
}

// FuzzMapDates fuzzes the date-to-frame projection with random offsets.
func FuzzMapDates(f *testing.F) {
	seeds := []struct {
		startOffset  int64
		finishOffset int64
		frameStart   int
		totalFrames  int
	}{
		{0, 86400 * 10, 1, 250},
		{-86400, 86400 * 40, 0, 1},
		{86400 * 5, 86400 * 5, 1, 30},
	}
	for _, seed := range seeds {
		f.Add(seed.startOffset, seed.finishOffset, seed.frameStart, seed.totalFrames)
	}

	f.Fuzz(func(t *testing.T, startOffset, finishOffset int64, frameStart, totalFrames int) {
		if totalFrames < 1 || totalFrames > 1<<20 {
			return
		}
		if frameStart < -1<<20 || frameStart > 1<<20 {
			return
		}
		window := schema.ScheduleWindow{
			Start:       day(1),
			Finish:      day(31),
			FrameStart:  frameStart,
			TotalFrames: totalFrames,
		}
		span := MapDates(window, schema.DateRange{
			Start:  day(1).Add(secs(startOffset)),
			Finish: day(1).Add(secs(finishOffset)),
		})
		// Clamped progress keeps every span on the frame axis.
		if span.Start < window.FrameStart || span.Start > window.FrameEnd() {
			t.Fatalf("start frame %d outside [%d, %d]", span.Start, window.FrameStart, window.FrameEnd())
		}
		if span.Finish < window.FrameStart || span.Finish > window.FrameEnd() {
			t.Fatalf("finish frame %d outside [%d, %d]", span.Finish, window.FrameStart, window.FrameEnd())
		}
	})
}
