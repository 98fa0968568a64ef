package schedstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/svisuals/seq4d/schema"
)

func TestLoadYAML(t *testing.T) {
	store, err := Load(filepath.Join("testdata", "tower.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Tower Block A", store.Name())

	roots := store.RootTasks()
	require.Len(t, roots, 2)

	sub := roots[0]
	assert.Equal(t, "substructure", sub.ID)
	require.Len(t, sub.Children, 2)

	excavate := sub.Children[0]
	assert.Equal(t, "DEMOLITION", excavate.CategoricalType)
	require.Len(t, excavate.Assignments, 1)
	assert.Equal(t, schema.InputRelationship, excavate.Assignments[0].Relationship)
	assert.Equal(t, "ground-01", excavate.Assignments[0].ProductID)

	pour := sub.Children[1]
	r, ok := pour.DatesFor(schema.ScheduleSource)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), r.Finish)

	// Unified spans schedule and actual.
	r, ok = pour.DatesFor(schema.UnifiedSource)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC), r.Finish)

	ov, ok := pour.Overrides["Structural"]
	require.True(t, ok)
	assert.True(t, ov.Enabled)
	assert.Equal(t, "CONSTRUCTION", ov.Profile)
}

func TestLoadGroupStack(t *testing.T) {
	store, err := Load(filepath.Join("testdata", "tower.yaml"))
	require.NoError(t, err)

	stack := store.GroupStack()
	require.Len(t, stack, 2)
	assert.Equal(t, schema.GroupStackEntry{Group: "Structural", Enabled: true}, stack[0])
	assert.Equal(t, schema.GroupStackEntry{Group: "Finishes", Enabled: false}, stack[1])
	assert.Equal(t, "Structural", stack.Active())
}

func TestLoadInlineGroups(t *testing.T) {
	store, err := Load(filepath.Join("testdata", "tower.yaml"))
	require.NoError(t, err)

	inline := store.InlineGroups()
	require.Len(t, inline, 1)
	assert.Equal(t, "Structural", inline[0].Name)

	construction, found := inline[0].Find("CONSTRUCTION")
	require.True(t, found)
	assert.Equal(t, schema.Color{1, 1, 1, 0}, construction.StartColor)
	// Absent fields take the documented defaults.
	assert.True(t, construction.ConsiderStart)
	assert.True(t, construction.UseEndOriginalColor)

	demolition, found := inline[0].Find("DEMOLITION")
	require.True(t, found)
	assert.True(t, demolition.HideAtEnd)
}

func TestLoadJSON(t *testing.T) {
	store, err := Load(filepath.Join("testdata", "tower.json"))
	require.NoError(t, err)

	roots := store.RootTasks()
	require.Len(t, roots, 1)
	assert.Equal(t, "pour-foundation", roots[0].ID)
	assert.Equal(t, "CONSTRUCTION", roots[0].CategoricalType)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "duplicate task ids",
			content: `
tasks:
  - id: a
  - id: a
`,
		},
		{
			name: "missing task id",
			content: `
tasks:
  - name: anonymous
`,
		},
		{
			name: "unknown date source",
			content: `
tasks:
  - id: a
    dates:
      guessed:
        start: 2024-01-01
        finish: 2024-01-02
`,
		},
		{
			name: "unified is not a file source",
			content: `
tasks:
  - id: a
    dates:
      unified:
        start: 2024-01-01
        finish: 2024-01-02
`,
		},
		{
			name: "stack entry without group",
			content: `
group_stack:
  - enabled: true
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "schedule.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadRecoversBadDates(t *testing.T) {
	content := `
name: Mixed Bag
tasks:
  - id: good-early
    dates:
      schedule:
        start: 2024-01-01
        finish: 2024-01-10
    outputs: [wall-01]
  - id: bad-start
    dates:
      schedule:
        start: someday
        finish: 2024-01-10
    outputs: [roof-01]
  - id: bad-order
    dates:
      schedule:
        start: 2024-02-01
        finish: 2024-01-01
  - id: good-late
    dates:
      schedule:
        start: 2024-01-05
        finish: 2024-01-15
    outputs: [door-01]
`
	path := filepath.Join(t.TempDir(), "schedule.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store, err := Load(path)
	require.NoError(t, err, "bad dates on one task must not sink the load")

	roots := store.RootTasks()
	require.Len(t, roots, 4, "undatable tasks stay in the tree")
	assert.Nil(t, roots[1].Dates)
	assert.Nil(t, roots[2].Dates)
	_, ok := roots[0].DatesFor(schema.ScheduleSource)
	assert.True(t, ok)
	_, ok = roots[3].DatesFor(schema.ScheduleSource)
	assert.True(t, ok)

	assert.Equal(t, []schema.SkippedTask{
		{TaskID: "bad-start", Reason: schema.SkipBadDates},
		{TaskID: "bad-order", Reason: schema.SkipBadDates},
	}, store.Skipped())
}

func TestLoadSkippedEmptyOnCleanSchedule(t *testing.T) {
	store, err := Load(filepath.Join("testdata", "tower.yaml"))
	require.NoError(t, err)
	assert.Empty(t, store.Skipped())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
