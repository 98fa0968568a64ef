package outwriter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/svisuals/seq4d/internal/contract"
	"github.com/svisuals/seq4d/schema"
)

func testConfig(t *testing.T, output schema.OutputMode) *contract.Config {
	t.Helper()
	return &contract.Config{
		Output:     output,
		OutputFile: filepath.Join(t.TempDir(), "out.txt"),
		Precision:  1,
		Workers:    2,
		Width:      120,
	}
}

func testOutput() schema.ResolutionOutput {
	return schema.ResolutionOutput{
		Window: schema.ScheduleWindow{
			Start:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Finish:      time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			FrameStart:  1,
			TotalFrames: 30,
			Speed:       1,
		},
		ActiveGroup: "DEFAULT",
		Records: []schema.ResolvedFrameRecord{
			{
				ProductID:    "slab-01",
				TaskID:       "pour-slab",
				Relationship: schema.OutputRelationship,
				StartFrame:   10,
				FinishFrame:  20,
				Duration:     10,
				ProfileName:  "CONSTRUCTION",
				VisibleAfter: true,
				Effect:       schema.InstantEffect,
			},
		},
		Skipped: []schema.SkippedTask{
			{TaskID: "undated", Reason: schema.SkipMissingDate},
		},
	}
}

func readOutput(t *testing.T, cfg *contract.Config) string {
	t.Helper()
	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	return string(data)
}

func TestWriteRecordResultsTable(t *testing.T) {
	cfg := testConfig(t, schema.TextOut)
	require.NoError(t, WriteRecordResults(testOutput(), cfg, time.Second))

	content := readOutput(t, cfg)
	assert.Contains(t, content, "slab-01")
	assert.Contains(t, content, "CONSTRUCTION")
	assert.Contains(t, content, "Active group: DEFAULT")
	assert.Contains(t, content, "skipped undated")
}

func TestWriteRecordResultsTableGrowthLabel(t *testing.T) {
	cfg := testConfig(t, schema.TextOut)
	output := testOutput()
	output.Records[0].Effect = schema.GrowthEffect
	require.NoError(t, WriteRecordResults(output, cfg, time.Second))

	content := readOutput(t, cfg)
	assert.Contains(t, content, contract.GrowingValue)
	assert.NotContains(t, content, "growth")
}

func TestWriteRecordResultsCSV(t *testing.T) {
	cfg := testConfig(t, schema.CSVOut)
	require.NoError(t, WriteRecordResults(testOutput(), cfg, time.Second))

	content := readOutput(t, cfg)
	lines := strings.Split(strings.TrimSpace(content), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "product_id,task_id,relationship,start_frame,finish_frame,duration_frames,profile,profile_index,visible_before,visible_after,effect", lines[0])
	assert.Contains(t, lines[1], "slab-01,pour-slab,output,10,20,10,CONSTRUCTION,0,Hidden,Visible,instant")
}

func TestWriteRecordResultsJSON(t *testing.T) {
	cfg := testConfig(t, schema.JSONOut)
	require.NoError(t, WriteRecordResults(testOutput(), cfg, time.Second))

	content := readOutput(t, cfg)
	assert.Contains(t, content, `"active_group": "DEFAULT"`)
	assert.Contains(t, content, `"product_id": "slab-01"`)
}

func TestWriteRecordResultsParquetNeedsFile(t *testing.T) {
	cfg := testConfig(t, schema.ParquetOut)
	cfg.OutputFile = ""
	assert.Error(t, WriteRecordResults(testOutput(), cfg, time.Second))
}

func TestWriteMetricsResultText(t *testing.T) {
	cfg := testConfig(t, schema.TextOut)
	metrics := schema.TimelineMetrics{
		Date:            time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		ElapsedDay:      16,
		WeekNumber:      3,
		ProgressPercent: 50,
		DayOfWeek:       "Tuesday",
		TotalDays:       30,
	}
	require.NoError(t, WriteMetricsResult(metrics, cfg))

	content := readOutput(t, cfg)
	assert.Contains(t, content, "Elapsed Day: 16 of 30")
	assert.Contains(t, content, "Week Number: 3")
	assert.Contains(t, content, "Progress: 50%")
}

func TestWriteSnapshotResultCSV(t *testing.T) {
	cfg := testConfig(t, schema.CSVOut)
	snapshot := schema.SnapshotResult{
		Date:   time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		Source: schema.ScheduleSource,
		States: map[schema.ProductState][]string{
			schema.InConstruction: {"slab-01"},
			schema.ToBuild:        {"frame-01"},
		},
	}
	require.NoError(t, WriteSnapshotResult(snapshot, cfg))

	content := readOutput(t, cfg)
	lines := strings.Split(strings.TrimSpace(content), "\n")
	require.Len(t, lines, 3)
	// Fixed state order puts to_build before in_construction.
	assert.Contains(t, lines[1], "frame-01")
	assert.Contains(t, lines[2], "slab-01")
}

func TestWriteProfileGroupsTable(t *testing.T) {
	cfg := testConfig(t, schema.TextOut)
	require.NoError(t, WriteProfileGroups([]schema.ProfileGroup{schema.DefaultProfileGroup()}, cfg))

	content := readOutput(t, cfg)
	assert.Contains(t, content, "Group: DEFAULT (14 profiles)")
	assert.Contains(t, content, "NOTDEFINED")
	assert.Contains(t, content, "DEMOLITION")
}
