// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/skoscan/skoscan/internal/contract"
)

// NewMCPServer initializes and configures the skoscan MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, probes contract.ProbeClient, reg contract.Registry) *server.MCPServer {
	s := server.NewMCPServer(
		"SKOS Endpoint Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		probes:  probes,
		reg:     reg,
	}

	// --- 1. Tool: analyze_endpoint ---
	s.AddTool(mcp.NewTool("analyze_endpoint",
		mcp.WithDescription("Probe a SPARQL endpoint for SKOS vocabulary capabilities: named-graph support, vocabulary graphs, duplicate triples, and label languages."),
		mcp.WithString("endpoint", mcp.Description("Registry id or SPARQL endpoint URL."), mcp.Required()),
		mcp.WithBoolean("full", mcp.Description("Run the full probe pipeline instead of the fast single-query analysis. Defaults to false.")),
		mcp.WithNumber("vocab_batch_limit", mcp.Description("Maximum vocabulary graphs to enumerate for batched language counting.")),
	), h.handleAnalyzeEndpoint)

	// --- 2. Tool: list_endpoints ---
	s.AddTool(mcp.NewTool("list_endpoints",
		mcp.WithDescription("List the SPARQL endpoints known to the registry with their stored capabilities."),
	), h.handleListEndpoints)

	// --- 3. Tool: endpoint_summary ---
	s.AddTool(mcp.NewTool("endpoint_summary",
		mcp.WithDescription("Derive the capability summary of a registered endpoint from its stored analysis, without querying the endpoint."),
		mcp.WithString("endpoint", mcp.Description("Registry id or SPARQL endpoint URL."), mcp.Required()),
	), h.handleEndpointSummary)

	// --- 4. Tool: concept_labels ---
	s.AddTool(mcp.NewTool("concept_labels",
		mcp.WithDescription("Load the preferred, alternative, and hidden labels of one SKOS concept from an endpoint."),
		mcp.WithString("endpoint", mcp.Description("Registry id or SPARQL endpoint URL."), mcp.Required()),
		mcp.WithString("concept", mcp.Description("The IRI of the concept to load labels for."), mcp.Required()),
	), h.handleConceptLabels)

	return s
}

// StartMCPServer starts the skoscan MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, probes contract.ProbeClient, reg contract.Registry) error {
	s := NewMCPServer(baseCfg, probes, reg)
	return server.ServeStdio(s)
}
