package cmd

import (
	"github.com/spf13/cobra"
	"github.com/svisuals/seq4d/core"
	"github.com/svisuals/seq4d/internal/contract"
)

// animateCmd resolves a schedule into frame records.
var animateCmd = &cobra.Command{
	Use:   "animate <schedule>",
	Short: "Resolve a schedule into per-product frame records.",
	Long: `Map every dated task onto the animation frame axis and resolve the
visual state of each assigned product.

For each (task, product) pair this computes:
- The start and finish frames from the task's dates
- The governing appearance profile under the active group
- Visibility before, during, and after the task's frame span
- The reveal effect (instant or growth)

Records can be checked against the renderer backends: the keyframe sampler
and the procedural evaluator must agree on every frame.

Examples:
  # Resolve with the default frame axis
  seq4d animate site.yaml

  # Fit the whole schedule into a 10 second clip at 24 fps
  seq4d animate site.yaml --duration 10s

  # Compress real time by a day per second
  seq4d animate site.yaml --frames 0 --speed 86400

  # Use actual dates and verify both renderer backends agree
  seq4d animate site.yaml --source actual --renderer both

  # Export records to Parquet for analytics
  seq4d animate site.yaml --output parquet --output-file records.parquet`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAnimate(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot resolve schedule", err)
		}
	},
}
