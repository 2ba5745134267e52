// Package cmd defines the command-line interface for skoscan.
package cmd

import (
	"github.com/skoscan/skoscan/internal/contract"
	"github.com/skoscan/skoscan/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(reanalyzeCmd)
	rootCmd.AddCommand(labelsCmd)
	rootCmd.AddCommand(endpointsCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(registryCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the endpoints subcommands to the parent endpoints command
	endpointsCmd.AddCommand(endpointsAddCmd)
	endpointsCmd.AddCommand(endpointsListCmd)
	endpointsCmd.AddCommand(endpointsRemoveCmd)

	// Add the runs subcommands to the parent runs command
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsExportCmd)

	// Add the registry subcommands to the parent registry command
	registryCmd.AddCommand(registryStatusCmd)
	registryCmd.AddCommand(registryClearCmd)
	registryCmd.AddCommand(registryMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().String("timeout", "", "Per-request timeout for endpoint probes (e.g. 30s, 2m)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().Int("vocab-batch-limit", contract.DefaultVocabGraphBatchLimit, "Max vocabulary graphs to enumerate before falling back to a count")
	rootCmd.PersistentFlags().String("registry-backend", string(schema.SQLiteBackend), "Registry backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("registry-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of registryMigrateCmd to Viper
	registryMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(registryMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding registry migrate flags", err)
	}
}
