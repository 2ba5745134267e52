package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/skoscan/skoscan/core"
	"github.com/skoscan/skoscan/internal/contract"
	"github.com/skoscan/skoscan/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	probes  contract.ProbeClient
	reg     contract.Registry
}

// analysisReport is the JSON shape returned by analyze_endpoint.
type analysisReport struct {
	Endpoint   string                    `json:"endpoint"`
	Result     *schema.AnalysisResult    `json:"result"`
	Log        []schema.AnalysisLogEntry `json:"log,omitempty"`
	DurationMs int64                     `json:"duration_ms,omitempty"`
}

// summaryReport is the JSON shape returned by endpoint_summary.
type summaryReport struct {
	Endpoint     *schema.EndpointDescriptor `json:"endpoint"`
	GraphSupport string                     `json:"graph_support"`
	VocabGraphs  string                     `json:"vocab_graphs"`
	Severity     schema.Severity            `json:"severity"`
	Description  string                     `json:"description,omitempty"`
}

func (h *toolHandler) handleAnalyzeEndpoint(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.EndpointRef = request.GetString("endpoint", "")
	if l := request.GetInt("vocab_batch_limit", 0); l > 0 {
		cfg.VocabBatchLimit = l
	}

	ep, err := core.ResolveEndpoint(h.reg, cfg.EndpointRef)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid endpoint: %v", err)), nil
	}

	analyzer := core.NewAnalyzer(h.probes, cfg.VocabBatchLimit)
	var result *schema.AnalysisResult
	if request.GetBool("full", false) {
		result, err = analyzer.Reanalyze(ctx, ep)
	} else {
		result, err = analyzer.Analyze(ctx, ep)
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	state := analyzer.State()
	report := analysisReport{
		Endpoint:   ep.URL,
		Result:     result,
		Log:        state.Log,
		DurationMs: state.DurationMs,
	}
	jsonData, _ := json.MarshalIndent(report, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListEndpoints(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	eps, err := h.reg.ListEndpoints()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(eps, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleEndpointSummary(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref := request.GetString("endpoint", "")
	ep, err := h.reg.GetEndpoint(ref)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("unknown endpoint %q: %v", ref, err)), nil
	}

	report := summaryReport{
		Endpoint:     ep,
		GraphSupport: schema.GraphSupportStatus(ep),
		VocabGraphs:  schema.VocabGraphStatus(ep),
		Severity:     schema.VocabGraphSeverity(ep),
		Description:  schema.VocabGraphDescription(ep),
	}
	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleConceptLabels(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref := request.GetString("endpoint", "")
	concept := request.GetString("concept", "")
	if concept == "" {
		return mcp.NewToolResultError("concept IRI is required"), nil
	}

	ep, err := core.ResolveEndpoint(h.reg, ref)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid endpoint: %v", err)), nil
	}

	labels, err := h.probes.LoadConceptLabels(ctx, ep, concept)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("label loading failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(labels, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
