// Package cmd defines the command-line interface for seq4d.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/svisuals/seq4d/internal/contract"
	"github.com/svisuals/seq4d/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(animateCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the profiles subcommands to the parent profiles command
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesExportCmd)
	profilesCmd.AddCommand(profilesImportCmd)
	profilesCmd.AddCommand(profilesDeleteCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("start", "", "Visualization start date in ISO8601 or time ago")
	rootCmd.PersistentFlags().String("finish", "", "Visualization finish date in ISO8601 or time ago")
	rootCmd.PersistentFlags().String("date", "", "Query date for snapshot/metrics in ISO8601 or time ago")
	rootCmd.PersistentFlags().String("source", string(schema.ScheduleSource), "Task date set: schedule or actual or early or late or unified")
	rootCmd.PersistentFlags().Int("frame-start", contract.DefaultFrameStart, "First frame of the animation axis")
	rootCmd.PersistentFlags().Int("frames", contract.DefaultTotalFrames, "Total frame count (0 = derive from duration or speed)")
	rootCmd.PersistentFlags().Int("fps", contract.DefaultFPS, "Frames per second for derived frame totals")
	rootCmd.PersistentFlags().String("duration", "", "Animation duration (e.g., '10s', '2 minutes') for derived frame totals")
	rootCmd.PersistentFlags().Float64("speed", 1.0, "Real-time speed multiplier for derived frame totals")
	rootCmd.PersistentFlags().StringP("groups", "g", "", "Profile group enable-stack override (e.g., 'Structural,Finishes:off')")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().String("renderer", string(schema.NoRenderer), "Renderer backend: keyframe or procedural or both or none")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Profile store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}
}
