package cmd

import (
	"fmt"

	"github.com/skoscan/skoscan/internal/contract"
	"github.com/skoscan/skoscan/internal/outwriter"
	"github.com/skoscan/skoscan/internal/registry"
	"github.com/skoscan/skoscan/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// registrySetup loads configuration for registry-only operations.
// These commands never probe an endpoint, so no probe client is built and
// no positional endpoint reference is expected.
func registrySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	if err := registry.InitStore(cfg.RegistryBackend, cfg.RegistryDBConnect); err != nil {
		return fmt.Errorf("failed to initialize registry: %w", err)
	}

	return nil
}

// registrySetupWrapper wraps registrySetup to provide PreRunE for registry commands.
func registrySetupWrapper(_ *cobra.Command, _ []string) error {
	return registrySetup()
}

// registryMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize the store or create
// tables, allowing migrations to run on a fresh database.
func registryMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backendStr := viper.GetString("registry-backend")
	connStr := viper.GetString("registry-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetRegistryDBFilePath()
	}

	cfg.RegistryBackend = backend
	cfg.RegistryDBConnect = connStr

	return nil
}

// registryMigrateSetupWrapper wraps registryMigrateSetup to provide PreRunE for migrate command.
func registryMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return registryMigrateSetup()
}

// registryCmd focused on registry storage management.
var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Manage registry storage, migrations and statistics",
	Long: `Manage the database backing the endpoint registry.

The registry stores endpoint descriptors, their latest analysis, and the
full history of analysis runs.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show storage statistics and connection details
  clear   - Remove all registry data
  migrate - Run database schema migrations

Examples:
  # Check registry health
  skoscan registry status

  # Upgrade the schema after an update
  skoscan registry migrate`,
}

// registryStatusCmd shows registry status.
var registryStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display registry statistics and connection details",
	Long: `Show detailed information about the endpoint registry.

Displays:
- Backend type and connection status
- Number of registered endpoints and stored runs
- Last and oldest analysis run timestamps
- Database table sizes

Examples:
  skoscan registry status`,
	PreRunE: registrySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := registry.Manager.Store().Status()
		if err != nil {
			contract.LogFatal("Failed to get registry status", err)
		}
		if err := outwriter.WriteRegistryStatus(status, cfg); err != nil {
			contract.LogFatal("Failed to write registry status", err)
		}
	},
}

// registryClearCmd clears the registry data.
var registryClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all registered endpoints and analysis history",
	Long: `Delete all stored endpoints and analysis runs.

WARNING: This action cannot be undone. Consider exporting run history with
'skoscan runs export' first.

Examples:
  skoscan runs export --output-file backup.parquet
  skoscan registry clear`,
	PreRunE: registrySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := registry.Clear(cfg.RegistryBackend, contract.GetRegistryDBFilePath(), cfg.RegistryDBConnect); err != nil {
			contract.LogFatal("Failed to clear registry data", err)
		}
		fmt.Println("Registry data cleared successfully.")
	},
}

// registryMigrateCmd runs database migrations for the registry store.
var registryMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the registry store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  skoscan registry migrate

  # Migrate to specific version
  skoscan registry migrate --target-version 1

  # Rollback to initial state
  skoscan registry migrate --target-version 0`,
	PreRunE: registryMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := registry.Migrate(cfg.RegistryBackend, cfg.RegistryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
