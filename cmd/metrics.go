package cmd

import (
	"github.com/spf13/cobra"
	"github.com/svisuals/seq4d/core"
	"github.com/svisuals/seq4d/internal/contract"
)

// metricsCmd computes timeline position numbers for a date.
var metricsCmd = &cobra.Command{
	Use:   "metrics <schedule>",
	Short: "Show elapsed day, week number, and progress for a date.",
	Long: `Place a date within the schedule's full range and report the
human-facing timeline numbers: elapsed day, week number, day of week,
and overall progress percentage.

Dates before the range report day zero and 0% progress; dates past the
range clamp to 100%.

Examples:
  # Where are we today?
  seq4d metrics site.yaml

  # Metrics for a fixed date
  seq4d metrics site.yaml --date 2024-06-01

  # Judge progress against an explicit range
  seq4d metrics site.yaml --date 2024-06-01 --start 2024-01-01 --finish 2024-12-31`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMetrics(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot compute metrics", err)
		}
	},
}
