package cmd

import (
	"github.com/skoscan/skoscan/core"
	"github.com/skoscan/skoscan/internal/contract"
	"github.com/skoscan/skoscan/internal/registry"
	"github.com/spf13/cobra"
)

// reanalyzeCmd performs the full staged endpoint analysis.
var reanalyzeCmd = &cobra.Command{
	Use:   "reanalyze <endpoint>",
	Short: "Run the full staged probe pipeline against an endpoint.",
	Long: `Run the complete analysis pipeline against a SPARQL endpoint.

The pipeline probes the endpoint in stages, each stage shaping the next:
- Named graph support and graph count
- Graphs holding SKOS vocabulary data
- Duplicate triples across graphs
- Label language distribution

Every stage is logged as it runs, and the total duration is reported when
the pipeline completes. A failing stage aborts the run; the log shows which
stages finished before the error.

Examples:
  # Full analysis of a registered endpoint
  skoscan reanalyze 1

  # Full analysis with a larger vocabulary-graph enumeration limit
  skoscan reanalyze https://vocabs.example.org/sparql --vocab-batch-limit 500`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReanalyze(rootCtx, cfg, probeClient, registry.Manager.Store()); err != nil {
			contract.LogFatal("Cannot run full analysis", err)
		}
	},
}
