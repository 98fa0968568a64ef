package cmd

import (
	"github.com/spf13/cobra"
	"github.com/svisuals/seq4d/core"
	"github.com/svisuals/seq4d/internal/contract"
)

// snapshotCmd classifies products at a single date.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot <schedule>",
	Short: "Classify every product at a single date.",
	Long: `Evaluate the whole schedule at one date and bucket every assigned
product into a lifecycle state.

Output products move through TO_BUILD, IN_CONSTRUCTION, and COMPLETED.
Input products move through TO_DEMOLISH, IN_DEMOLITION, and DEMOLISHED.
Products without any dated task are UNASSIGNED.

Examples:
  # Where does the site stand today?
  seq4d snapshot site.yaml

  # State at a fixed date
  seq4d snapshot site.yaml --date 2024-06-01

  # State a month ago, judged by actual dates
  seq4d snapshot site.yaml --date "1 month ago" --source actual

  # Export the classification for reporting
  seq4d snapshot site.yaml --output csv --output-file states.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSnapshot(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot build snapshot", err)
		}
	},
}
