// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/svisuals/seq4d/internal/contract"
	"github.com/svisuals/seq4d/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteRecords prints a resolution pass using the configured output format.
func (ow *OutWriter) WriteRecords(output schema.ResolutionOutput, cfg *contract.Config, duration time.Duration) error {
	return WriteRecordResults(output, cfg, duration)
}

// WriteMetrics prints timeline metrics using the configured output format.
func (ow *OutWriter) WriteMetrics(metrics schema.TimelineMetrics, cfg *contract.Config) error {
	return WriteMetricsResult(metrics, cfg)
}

// WriteSnapshot prints a construction-state snapshot using the configured output format.
func (ow *OutWriter) WriteSnapshot(snapshot schema.SnapshotResult, cfg *contract.Config) error {
	return WriteSnapshotResult(snapshot, cfg)
}

// WriteProfiles prints profile group listings using the configured output format.
func (ow *OutWriter) WriteProfiles(groups []schema.ProfileGroup, cfg *contract.Config) error {
	return WriteProfileGroups(groups, cfg)
}
