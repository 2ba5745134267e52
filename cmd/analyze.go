package cmd

import (
	"github.com/skoscan/skoscan/core"
	"github.com/skoscan/skoscan/internal/contract"
	"github.com/skoscan/skoscan/internal/registry"
	"github.com/spf13/cobra"
)

// analyzeCmd performs the fast single-query endpoint analysis.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <endpoint>",
	Short: "Analyze an endpoint's structure with a single probe query.",
	Long: `Run the fast analysis path against a SPARQL endpoint.

A single query counts named graphs holding SKOS vocabulary data, which is
enough to derive the capability summary for most endpoints. Use 'reanalyze'
for the staged pipeline that also detects duplicates and label languages.

The endpoint can be given as a registered endpoint id or as a raw URL.
Raw URLs are analyzed without being added to the registry.

Examples:
  # Analyze a registered endpoint by id
  skoscan analyze 1

  # Analyze an arbitrary endpoint by URL
  skoscan analyze https://vocabs.example.org/sparql

  # Emit the capability summary as JSON
  skoscan analyze 1 --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAnalyze(rootCtx, cfg, probeClient, registry.Manager.Store()); err != nil {
			contract.LogFatal("Cannot run analysis", err)
		}
	},
}
