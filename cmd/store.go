package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/svisuals/seq4d/internal/contract"
	"github.com/svisuals/seq4d/internal/profilestore"
	"github.com/svisuals/seq4d/schema"
)

// storeMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize the store or create
// tables, allowing migrations to run on a fresh database.
func storeMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("store-backend"))
	connStr := viper.GetString("store-connect")

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use the default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = profilestore.GetDBFilePath()
	}

	cfg.StoreBackend = backend
	cfg.StoreConnect = connStr

	return nil
}

// storeMigrateSetupWrapper wraps storeMigrateSetup to provide PreRunE for the migrate command.
func storeMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeMigrateSetup()
}

// storeCmd focused on profile store management.
//
// Note: Store subcommands use minimal initialization (profilesSetup) instead
// of the full sharedSetup used by resolution commands. This avoids schedule
// loading and complex config processing for simple store operations.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the profile group store",
	Long: `Manage the persistence layer where custom profile groups live.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (in-memory)

Subcommands:
  status  - Show store statistics and connection info
  clear   - Remove all persisted groups
  migrate - Run database schema migrations

Examples:
  # Check store status
  seq4d store status

  # Start fresh
  seq4d store clear`,
}

// storeStatusCmd shows store status.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display store statistics and connection details",
	Long: `Show detailed information about the profile group store.

Displays:
- Backend type and location
- Number of persisted groups
- Number of profiles across all groups

Examples:
  # Check store status
  seq4d store status`,
	PreRunE: profilesSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := profilestore.Manager.GetStore()
		if store == nil {
			contract.LogFatal("Failed to get store status", errors.New("no store backend configured"))
		}
		status, err := store.Status()
		if err != nil {
			contract.LogFatal("Failed to get store status", err)
		}
		profilestore.PrintStoreStatus(status)
	},
}

// storeClearCmd clears the store.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all persisted profile groups",
	Long: `Delete every persisted profile group from the configured backend.

The built-in DEFAULT group is unaffected because it is never persisted.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the profile groups table

Examples:
  # Clear the local SQLite store (default)
  seq4d store clear

  # Clear a MySQL store (set connection string via env variable)
  SEQ4D_STORE_BACKEND=mysql SEQ4D_STORE_CONNECT="..." seq4d store clear`,
	PreRunE: profilesSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := profilestore.ClearStore(cfg.StoreBackend, profilestore.GetDBFilePath(), cfg.StoreConnect); err != nil {
			contract.LogFatal("Failed to clear store", err)
		}
		fmt.Println("Store cleared successfully.")
	},
}

// storeMigrateCmd runs database migrations for the profile store.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the profile group store.

By default, migrates to the latest version. Use --target-version for
specific versions.

Examples:
  # Migrate to latest version (default)
  seq4d store migrate

  # Migrate to specific version
  seq4d store migrate --target-version 1

  # Rollback to initial state
  seq4d store migrate --target-version 0`,
	PreRunE: storeMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := profilestore.Migrate(cfg.StoreBackend, cfg.StoreConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
