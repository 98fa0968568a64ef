package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultProfileGroup ensures the canonical set is complete and shaped as
// the resolution chain expects.
func TestDefaultProfileGroup(t *testing.T) {
	group := DefaultProfileGroup()

	assert.Equal(t, DefaultGroupName, group.Name)
	assert.Len(t, group.Profiles, len(CanonicalProfileNames))

	notDefined, ok := group.Find(NotDefinedProfile)
	require.True(t, ok, "DEFAULT must always contain NOTDEFINED")
	assert.False(t, notDefined.HideAtEnd)

	for _, name := range []string{"DEMOLITION", "REMOVAL", "DISPOSAL", "DISMANTLE"} {
		p, ok := group.Find(name)
		require.True(t, ok, name)
		assert.True(t, p.HideAtEnd, "%s must hide at end", name)
		assert.False(t, p.UseEndOriginalColor, "%s must not restore original color", name)
	}

	construction, ok := group.Find("CONSTRUCTION")
	require.True(t, ok)
	assert.True(t, construction.ConsiderStart)
	assert.Equal(t, InstantEffect, construction.Effect)
}

func TestIsRemovalClass(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"DEMOLITION", true},
		{"DISMANTLE", true},
		{"REMOVAL", true},
		{"DISPOSAL", true},
		{"demolition", true},
		{"CONSTRUCTION", false},
		{"", false},
		{"FOO", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsRemovalClass(tt.name))
		})
	}
}

func TestGroupStackActive(t *testing.T) {
	tests := []struct {
		name     string
		stack    GroupStack
		expected string
	}{
		{"empty stack", nil, DefaultGroupName},
		{"all disabled", GroupStack{{Group: "A"}, {Group: "B"}}, DefaultGroupName},
		{"first enabled wins", GroupStack{{Group: "A", Enabled: true}, {Group: "B", Enabled: true}}, "A"},
		{"disabled entries skipped", GroupStack{{Group: "A"}, {Group: "B", Enabled: true}}, "B"},
		{"blank group skipped", GroupStack{{Group: "", Enabled: true}, {Group: "B", Enabled: true}}, "B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.stack.Active())
		})
	}
}

func TestTaskDatesForUnified(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }
	task := Task{
		Dates: map[DateSource]DateRange{
			ScheduleSource: {Start: day(10), Finish: day(20)},
			ActualSource:   {Start: day(12), Finish: day(25)},
			EarlySource:    {Start: day(8), Finish: day(18)},
		},
	}

	unified, ok := task.DatesFor(UnifiedSource)
	require.True(t, ok)
	assert.Equal(t, day(8), unified.Start)
	assert.Equal(t, day(25), unified.Finish)

	_, ok = task.DatesFor(LateSource)
	assert.False(t, ok, "unpopulated source must report no range")

	_, ok = Task{}.DatesFor(UnifiedSource)
	assert.False(t, ok, "task with no dates has no unified range")
}

func TestRecordStateAt(t *testing.T) {
	rec := ResolvedFrameRecord{StartFrame: 10, FinishFrame: 20}

	assert.Equal(t, BeforeStart, rec.StateAt(9))
	assert.Equal(t, Active, rec.StateAt(10))
	assert.Equal(t, Active, rec.StateAt(19))
	assert.Equal(t, AfterEnd, rec.StateAt(20))
	assert.Equal(t, AfterEnd, rec.StateAt(500))
}

func TestRecordRevealAt(t *testing.T) {
	tests := []struct {
		name     string
		effect   EffectKind
		frame    int
		start    int
		finish   int
		expected float64
	}{
		{name: "growth before span", effect: GrowthEffect, frame: 5, start: 10, finish: 20, expected: 0},
		{name: "growth at start", effect: GrowthEffect, frame: 10, start: 10, finish: 20, expected: 0},
		{name: "growth midway", effect: GrowthEffect, frame: 15, start: 10, finish: 20, expected: 0.5},
		{name: "growth at finish", effect: GrowthEffect, frame: 20, start: 10, finish: 20, expected: 1},
		{name: "growth after span", effect: GrowthEffect, frame: 25, start: 10, finish: 20, expected: 1},
		{name: "growth zero duration span", effect: GrowthEffect, frame: 10, start: 10, finish: 10, expected: 0},
		{name: "growth one past zero span", effect: GrowthEffect, frame: 11, start: 10, finish: 10, expected: 1},
		{name: "instant fully formed before span", effect: InstantEffect, frame: 5, start: 10, finish: 20, expected: 1},
		{name: "instant fully formed midway", effect: InstantEffect, frame: 15, start: 10, finish: 20, expected: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ResolvedFrameRecord{StartFrame: tt.start, FinishFrame: tt.finish, Effect: tt.effect}
			assert.InDelta(t, tt.expected, rec.RevealAt(tt.frame), 1e-9)
		})
	}
}
