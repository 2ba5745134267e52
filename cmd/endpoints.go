package cmd

import (
	"fmt"

	"github.com/skoscan/skoscan/internal/contract"
	"github.com/skoscan/skoscan/internal/outwriter"
	"github.com/skoscan/skoscan/internal/registry"
	"github.com/spf13/cobra"
)

// endpointsCmd groups endpoint registry management.
var endpointsCmd = &cobra.Command{
	Use:   "endpoints",
	Short: "Manage the registry of known SPARQL endpoints",
	Long: `Manage the persistent registry of SPARQL endpoints.

Registered endpoints get a numeric id that can be used in place of the full
URL with the analyze, reanalyze and labels commands. The registry also keeps
the latest analysis result and a per-endpoint run history.

Subcommands:
  add    - Register an endpoint under a short name
  list   - Show all registered endpoints with their capabilities
  remove - Delete an endpoint and its run history

Examples:
  # Register and analyze an endpoint
  skoscan endpoints add agrovoc https://agrovoc.fao.org/sparql
  skoscan analyze 1

  # Review what is known so far
  skoscan endpoints list`,
}

// endpointsAddCmd registers a new endpoint.
var endpointsAddCmd = &cobra.Command{
	Use:   "add <name> <url>",
	Short: "Register a SPARQL endpoint under a short name",
	Long: `Add a SPARQL endpoint to the registry.

The URL must be an absolute http(s) URL and unique within the registry.
The assigned id is printed on success.

Examples:
  skoscan endpoints add agrovoc https://agrovoc.fao.org/sparql`,
	Args:    cobra.ExactArgs(2),
	PreRunE: registrySetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		name, url := args[0], args[1]
		if err := contract.ValidateEndpointURL(url); err != nil {
			contract.LogFatal("Invalid endpoint URL", err)
		}
		ep, err := registry.Manager.Store().AddEndpoint(name, url)
		if err != nil {
			contract.LogFatal("Cannot add endpoint", err)
		}
		fmt.Printf("Added endpoint #%d (%s)\n", ep.ID, ep.Name)
	},
}

// endpointsListCmd lists all registered endpoints.
var endpointsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all registered endpoints and their known capabilities",
	Long: `List every endpoint in the registry.

The table includes the capability highlights from the most recent analysis,
or Unknown for endpoints that have not been analyzed yet.

Examples:
  skoscan endpoints list
  skoscan endpoints list --output json`,
	PreRunE: registrySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		eps, err := registry.Manager.Store().ListEndpoints()
		if err != nil {
			contract.LogFatal("Cannot list endpoints", err)
		}
		if err := outwriter.WriteEndpoints(eps, cfg); err != nil {
			contract.LogFatal("Cannot write endpoints", err)
		}
	},
}

// endpointsRemoveCmd deletes an endpoint.
var endpointsRemoveCmd = &cobra.Command{
	Use:   "remove <endpoint>",
	Short: "Delete an endpoint and its analysis history",
	Long: `Remove an endpoint from the registry.

The endpoint can be referenced by id or URL. All stored analysis runs for
the endpoint are deleted as well.

Examples:
  skoscan endpoints remove 1
  skoscan endpoints remove https://agrovoc.fao.org/sparql`,
	Args:    cobra.ExactArgs(1),
	PreRunE: registrySetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := registry.Manager.Store().RemoveEndpoint(args[0]); err != nil {
			contract.LogFatal("Cannot remove endpoint", err)
		}
		fmt.Println("Endpoint removed.")
	},
}
