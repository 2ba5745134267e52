package cmd

import (
	"github.com/skoscan/skoscan/core"
	"github.com/skoscan/skoscan/internal/contract"
	"github.com/skoscan/skoscan/internal/registry"
	"github.com/spf13/cobra"
)

// labelsCmd loads the extended labels of a single concept.
var labelsCmd = &cobra.Command{
	Use:   "labels <endpoint> <concept-iri>",
	Short: "Show preferred, alternative and hidden labels for a concept.",
	Long: `Load all SKOS labels of one concept from a SPARQL endpoint.

Fetches prefLabel, altLabel and hiddenLabel values across all languages,
deduplicated by label text, language and kind.

Examples:
  # Labels for a concept on a registered endpoint
  skoscan labels 1 http://vocab.example.org/concepts/42

  # Labels as CSV for further processing
  skoscan labels 1 http://vocab.example.org/concepts/42 --output csv`,
	Args:    cobra.ExactArgs(2),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteLabels(rootCtx, cfg, probeClient, registry.Manager.Store(), args[1]); err != nil {
			contract.LogFatal("Cannot load concept labels", err)
		}
	},
}
