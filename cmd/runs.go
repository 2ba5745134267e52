package cmd

import (
	"github.com/skoscan/skoscan/internal/contract"
	"github.com/skoscan/skoscan/internal/outwriter"
	"github.com/skoscan/skoscan/internal/registry"
	"github.com/skoscan/skoscan/schema"
	"github.com/spf13/cobra"
)

// runsCmd groups analysis run history operations.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect and export stored analysis runs",
	Long: `Work with the history of analysis runs stored in the registry.

Every analyze and reanalyze of a registered endpoint records a run with its
timing, the derived result, and the stage log.

Subcommands:
  list   - Show recent runs across all endpoints
  export - Export run history to Parquet for analytics

Examples:
  # Recent runs, newest first
  skoscan runs list

  # Export for analysis in pandas/DuckDB
  skoscan runs export --output-file runs.parquet`,
}

// runsListCmd lists recent analysis runs.
var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent analysis runs, newest first",
	Long: `List stored analysis runs across all registered endpoints.

The number of runs shown is controlled by --limit.

Examples:
  skoscan runs list
  skoscan runs list --limit 50 --output json`,
	PreRunE: registrySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runs, err := registry.Manager.Store().ListRuns(cfg.ResultLimit)
		if err != nil {
			contract.LogFatal("Cannot list runs", err)
		}
		if err := outwriter.WriteRuns(runs, cfg); err != nil {
			contract.LogFatal("Cannot write runs", err)
		}
	},
}

// runsExportCmd exports run history to a Parquet file.
var runsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export run history to Parquet for BI tools and analytics",
	Long: `Export stored analysis runs to Parquet format.

Each row holds one run with its timing, the analysis result as a JSON
column, and the stage log line count.

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools

Examples:
  # Export all runs
  skoscan runs export --output-file skoscan-runs.parquet

  # Query with DuckDB
  duckdb -c "SELECT * FROM read_parquet('skoscan-runs.parquet') LIMIT 10"`,
	PreRunE: registrySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runs, err := registry.Manager.Store().ListRuns(cfg.ResultLimit)
		if err != nil {
			contract.LogFatal("Cannot load runs", err)
		}
		exportCfg := cfg.Clone()
		exportCfg.Output = schema.ParquetOut
		if err := outwriter.WriteRuns(runs, exportCfg); err != nil {
			contract.LogFatal("Failed to export run history", err)
		}
	},
}
