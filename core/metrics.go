package core

import (
	"math"
	"time"

	"github.com/svisuals/seq4d/internal/contract"
	"github.com/svisuals/seq4d/schema"
)

// ComputeTimelineMetrics derives the human-facing day, week and progress
// numbers for a status display. All three are clamped to non-negative
// integers and are pure functions of their inputs: before the full range
// starts everything is 0, at or past the end progress is 100.
func ComputeTimelineMetrics(current time.Time, full schema.DateRange) schema.TimelineMetrics {
	metrics := schema.TimelineMetrics{
		Date:      current,
		DayOfWeek: current.Weekday().String(),
	}
	if !full.IsSet() {
		return metrics
	}

	totalDays := contract.DaysBetween(full.Start, full.Finish)
	metrics.TotalDays = totalDays

	if current.Before(full.Start) {
		return metrics
	}

	delta := contract.DaysBetween(full.Start, current)
	metrics.ElapsedDay = max(1, delta+1)
	metrics.WeekNumber = delta/7 + 1

	switch {
	case !current.Before(full.Finish):
		metrics.ProgressPercent = 100
	case totalDays <= 0:
		metrics.ProgressPercent = 100
	default:
		metrics.ProgressPercent = int(math.Round(100 * float64(delta) / float64(totalDays)))
	}
	return metrics
}
