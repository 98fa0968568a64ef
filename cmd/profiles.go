package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/svisuals/seq4d/core"
	"github.com/svisuals/seq4d/internal/contract"
	"github.com/svisuals/seq4d/internal/outwriter"
	"github.com/svisuals/seq4d/internal/profilestore"
	"github.com/svisuals/seq4d/schema"
)

// profilesSetup loads minimal configuration needed for profile operations.
// This is used by commands that need store access without full shared setup.
func profilesSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backend := schema.DatabaseBackend(viper.GetString("store-backend"))
	connStr := viper.GetString("store-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize the store with the loaded config
	if err := profilestore.InitStore(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize profile store: %w", err)
	}

	cfg.StoreBackend = backend
	cfg.StoreConnect = connStr

	// Output-related config values (used by list and export)
	cfg.Output = schema.OutputMode(viper.GetString("output"))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	cfg.OutputFile = viper.GetString("output-file")
	cfg.Precision = viper.GetInt("precision")
	if cfg.Precision == 0 {
		cfg.Precision = contract.DefaultPrecision
	}
	cfg.UseColor = viper.GetString("color") != "no"
	cfg.Width = viper.GetInt("width")

	return nil
}

// profilesSetupWrapper wraps profilesSetup to provide PreRunE for profile commands.
func profilesSetupWrapper(_ *cobra.Command, _ []string) error {
	return profilesSetup()
}

// profilesCmd focused on appearance profile group management.
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage appearance profile groups",
	Long: `Manage the appearance profile groups that govern how products look
before, during, and after their tasks.

The built-in DEFAULT group always exists and always contains the NOTDEFINED
profile, so resolution can never fail. Custom groups are persisted in the
configured store backend and can be exported to or imported from JSON.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (in-memory)

Subcommands:
  list   - Show profile groups and their profiles
  export - Write a group to JSON
  import - Load a group from JSON into the store
  delete - Remove a persisted group

Examples:
  # Show all known groups
  seq4d profiles list

  # Export DEFAULT as a starting point for a custom group
  seq4d profiles export DEFAULT --output-file custom.json`,
}

// profilesListCmd lists profile groups.
var profilesListCmd = &cobra.Command{
	Use:   "list [group...]",
	Short: "Show profile groups and their profiles",
	Long: `Display profile groups with their per-profile appearance settings:
colors, transparencies, visibility flags, and reveal effects.

With no arguments every known group is shown, DEFAULT first. Pass group
names to show only those groups.

Examples:
  # Show everything
  seq4d profiles list

  # Show one group as JSON
  seq4d profiles list Structural --output json`,
	PreRunE: profilesSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		groups, err := core.GetProfileGroupsResults(rootCtx, args...)
		if err != nil {
			contract.LogFatal("Cannot list profile groups", err)
		}
		if err := outwriter.NewOutWriter().WriteProfiles(groups, cfg); err != nil {
			contract.LogFatal("Cannot write profile groups", err)
		}
	},
}

// profilesExportCmd exports a group to JSON.
var profilesExportCmd = &cobra.Command{
	Use:   "export <group>",
	Short: "Write a profile group to JSON",
	Long: `Serialize a profile group to JSON, either to stdout or to the file
given with --output-file. The output round-trips through 'profiles import'.

Examples:
  # Print DEFAULT to stdout
  seq4d profiles export DEFAULT

  # Save a custom group for version control
  seq4d profiles export Structural --output-file structural.json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: profilesSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		groups, err := core.GetProfileGroupsResults(rootCtx, args[0])
		if err != nil {
			contract.LogFatal("Cannot export profile group", err)
		}
		payload, err := profilestore.EncodeGroup(groups[0])
		if err != nil {
			contract.LogFatal("Cannot encode profile group", err)
		}
		out, err := contract.SelectOutputFile(cfg.OutputFile)
		if err != nil {
			contract.LogFatal("Cannot open output file", err)
		}
		defer func() {
			if out != os.Stdout {
				_ = out.Close()
			}
		}()
		if _, err := out.Write(append(payload, '\n')); err != nil {
			contract.LogFatal("Cannot write profile group", err)
		}
	},
}

// profilesImportCmd imports a group from JSON.
var profilesImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Load a profile group from JSON into the store",
	Long: `Read a profile group from a JSON file and persist it wholesale,
replacing any existing group of the same name.

Missing per-profile fields are filled with the same defaults used for
inline groups in schedule files. The DEFAULT group cannot be replaced.

Examples:
  # Import a hand-written group
  seq4d profiles import structural.json

  # Import into MySQL instead of the local SQLite file
  SEQ4D_STORE_BACKEND=mysql SEQ4D_STORE_CONNECT="..." seq4d profiles import structural.json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: profilesSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		payload, err := os.ReadFile(args[0])
		if err != nil {
			contract.LogFatal("Cannot read profile group file", err)
		}
		group, err := profilestore.DecodeGroup(payload)
		if err != nil {
			contract.LogFatal("Cannot decode profile group", err)
		}
		store := profilestore.Manager.GetStore()
		if store == nil {
			contract.LogFatal("Cannot import profile group", errors.New("no store backend configured"))
		}
		if err := store.SaveGroup(group); err != nil {
			contract.LogFatal("Cannot import profile group", err)
		}
		fmt.Printf("Imported group '%s' with %d profiles.\n", group.Name, len(group.Profiles))
	},
}

// profilesDeleteCmd deletes a persisted group.
var profilesDeleteCmd = &cobra.Command{
	Use:   "delete <group>",
	Short: "Remove a persisted profile group",
	Long: `Delete a profile group from the store. The built-in DEFAULT group
cannot be deleted.

Examples:
  # Drop an obsolete group
  seq4d profiles delete OldPhasing`,
	Args:    cobra.ExactArgs(1),
	PreRunE: profilesSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		store := profilestore.Manager.GetStore()
		if store == nil {
			contract.LogFatal("Cannot delete profile group", errors.New("no store backend configured"))
		}
		if err := store.DeleteGroup(args[0]); err != nil {
			contract.LogFatal("Cannot delete profile group", err)
		}
		fmt.Printf("Deleted group '%s'.\n", args[0])
	},
}
