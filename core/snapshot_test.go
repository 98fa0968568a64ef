package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/svisuals/seq4d/schema"
)

func snapshotFixture() []schema.Task {
	return []schema.Task{
		{
			ID: "pour-slab",
			Dates: map[schema.DateSource]schema.DateRange{
				schema.ScheduleSource: {Start: day(10), Finish: day(20)},
			},
			Assignments: []schema.ProductAssignment{
				{ProductID: "slab-01", Relationship: schema.OutputRelationship},
				{ProductID: "formwork-01", Relationship: schema.InputRelationship},
			},
		},
		{
			ID: "erect-frame",
			Dates: map[schema.DateSource]schema.DateRange{
				schema.ScheduleSource: {Start: day(22), Finish: day(28)},
			},
			Assignments: []schema.ProductAssignment{
				{ProductID: "frame-01", Relationship: schema.OutputRelationship},
			},
		},
	}
}

func TestBuildSnapshotStates(t *testing.T) {
	tests := []struct {
		name     string
		date     int
		expected map[schema.ProductState][]string
	}{
		{
			name: "before everything",
			date: 5,
			expected: map[schema.ProductState][]string{
				schema.ToBuild:    {"frame-01", "slab-01"},
				schema.ToDemolish: {"formwork-01"},
			},
		},
		{
			name: "during first task",
			date: 15,
			expected: map[schema.ProductState][]string{
				schema.InConstruction: {"slab-01"},
				schema.InDemolition:   {"formwork-01"},
				schema.ToBuild:        {"frame-01"},
			},
		},
		{
			name: "between tasks",
			date: 21,
			expected: map[schema.ProductState][]string{
				schema.Completed:  {"slab-01"},
				schema.Demolished: {"formwork-01"},
				schema.ToBuild:    {"frame-01"},
			},
		},
		{
			name: "after everything",
			date: 30,
			expected: map[schema.ProductState][]string{
				schema.Completed:  {"frame-01", "slab-01"},
				schema.Demolished: {"formwork-01"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BuildSnapshot(day(tt.date), day(1), day(31), snapshotFixture(), schema.ScheduleSource)
			assert.Equal(t, tt.expected, result.States)
			assert.Equal(t, schema.ScheduleSource, result.Source)
		})
	}
}

func TestBuildSnapshotVizBounds(t *testing.T) {
	roots := snapshotFixture()

	// A viz finish before the second task drops it entirely.
	result := BuildSnapshot(day(15), day(1), day(21), roots, schema.ScheduleSource)
	for _, ids := range result.States {
		assert.NotContains(t, ids, "frame-01")
	}

	// A viz start after the first task finished forces its products done.
	result = BuildSnapshot(day(25), day(21), day(31), roots, schema.ScheduleSource)
	assert.Contains(t, result.States[schema.Completed], "slab-01")
	assert.Contains(t, result.States[schema.Demolished], "formwork-01")

	// Zero bounds disable both checks.
	result = BuildSnapshot(day(15), time.Time{}, time.Time{}, roots, schema.ScheduleSource)
	assert.Contains(t, result.States[schema.InConstruction], "slab-01")
	assert.Contains(t, result.States[schema.ToBuild], "frame-01")
}

func TestBuildSnapshotUndatedTasksAreUnassigned(t *testing.T) {
	roots := []schema.Task{
		{
			ID: "undated",
			Assignments: []schema.ProductAssignment{
				{ProductID: "ghost-01", Relationship: schema.OutputRelationship},
				{ProductID: "ghost-02", Relationship: schema.InputRelationship},
			},
		},
		{
			ID: "dated",
			Dates: map[schema.DateSource]schema.DateRange{
				schema.ScheduleSource: {Start: day(10), Finish: day(20)},
			},
			Assignments: []schema.ProductAssignment{
				{ProductID: "slab-01", Relationship: schema.OutputRelationship},
			},
		},
	}
	result := BuildSnapshot(day(15), day(1), day(31), roots, schema.ScheduleSource)
	assert.Equal(t, []string{"ghost-01", "ghost-02"}, result.States[schema.Unassigned])
	assert.Contains(t, result.States[schema.InConstruction], "slab-01")
}
