// Package parquet exports resolved frame records to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/svisuals/seq4d/schema"
)

// FrameRecord is the flat Parquet shape of one resolved (task, product)
// record. The schema is derived from the struct tags.
type FrameRecord struct {
	// ProductID is the product the record applies to
	ProductID string `parquet:"product_id,snappy"`

	// TaskID is the task that produced the record
	TaskID string `parquet:"task_id,snappy"`

	// Relationship is "output" or "input"
	Relationship string `parquet:"relationship,snappy"`

	// StartFrame is the first frame of the task's span
	StartFrame int32 `parquet:"start_frame,snappy"`

	// FinishFrame is the last frame of the task's span
	FinishFrame int32 `parquet:"finish_frame,snappy"`

	// DurationFrames is the span length in frames
	DurationFrames int32 `parquet:"duration_frames,snappy"`

	// ProfileName is the resolved appearance profile
	ProfileName string `parquet:"profile_name,snappy"`

	// ProfileIndex is the profile's id within the active group
	ProfileIndex int32 `parquet:"profile_index,snappy"`

	// VisibleBefore is the visibility before the span starts
	VisibleBefore bool `parquet:"visible_before,snappy"`

	// VisibleAfter is the visibility after the span ends
	VisibleAfter bool `parquet:"visible_after,snappy"`

	// Effect is the appearance effect during the span
	Effect string `parquet:"effect,snappy"`
}

// WriteFrameRecordsParquet writes resolved records to a Parquet file.
func WriteFrameRecordsParquet(records []schema.ResolvedFrameRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the FrameRecord struct tags
	writer := parquet.NewGenericWriter[FrameRecord](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(ConvertFrameRecords(records)); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// ConvertFrameRecords converts schema records to their Parquet shape.
func ConvertFrameRecords(records []schema.ResolvedFrameRecord) []FrameRecord {
	result := make([]FrameRecord, len(records))
	for i, record := range records {
		result[i] = FrameRecord{
			ProductID:      record.ProductID,
			TaskID:         record.TaskID,
			Relationship:   string(record.Relationship),
			StartFrame:     int32(record.StartFrame),
			FinishFrame:    int32(record.FinishFrame),
			DurationFrames: int32(record.Duration),
			ProfileName:    record.ProfileName,
			ProfileIndex:   int32(record.ProfileIndex),
			VisibleBefore:  record.VisibleBefore,
			VisibleAfter:   record.VisibleAfter,
			Effect:         string(record.Effect),
		}
	}
	return result
}
