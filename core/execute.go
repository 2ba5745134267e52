package core

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/skoscan/skoscan/internal/contract"
	"github.com/skoscan/skoscan/internal/outwriter"
	"github.com/skoscan/skoscan/schema"
)

// ResolveEndpoint turns an endpoint reference (registry id or raw URL) into
// a descriptor. URLs unknown to the registry yield a transient descriptor so
// endpoints can be analyzed without being registered first.
func ResolveEndpoint(reg contract.Registry, ref string) (*schema.EndpointDescriptor, error) {
	if ref == "" {
		return nil, errors.New("no endpoint given: pass a registry id or a SPARQL endpoint URL")
	}

	if ep, err := reg.GetEndpoint(ref); err == nil {
		return ep, nil
	} else if _, isID := parseEndpointID(ref); isID {
		// Numeric refs must resolve; only URLs may fall through to a
		// transient descriptor.
		return nil, err
	}

	if err := contract.ValidateEndpointURL(ref); err != nil {
		return nil, err
	}
	return &schema.EndpointDescriptor{Name: ref, URL: ref, CreatedAt: time.Now()}, nil
}

// ExecuteAnalyze runs the fast single-shot analysis and prints the summary.
// It serves as the main entry point for the 'analyze' command.
func ExecuteAnalyze(ctx context.Context, cfg *contract.Config, probes contract.ProbeClient, reg contract.Registry) error {
	ep, err := ResolveEndpoint(reg, cfg.EndpointRef)
	if err != nil {
		return err
	}

	analyzer := NewAnalyzer(probes, cfg.VocabBatchLimit)
	startedAt := time.Now()
	result, err := analyzer.Analyze(ctx, ep)
	if err != nil {
		return err
	}

	persistRun(reg, ep, analyzer.State(), result, startedAt)
	ep.Analysis = result
	return outwriter.WriteSummary(ep, cfg)
}

// ExecuteReanalyze runs the full probe pipeline, prints the analysis log
// with timing, persists the run, and prints the capability summary.
// It serves as the main entry point for the 'reanalyze' command.
func ExecuteReanalyze(ctx context.Context, cfg *contract.Config, probes contract.ProbeClient, reg contract.Registry) error {
	ep, err := ResolveEndpoint(reg, cfg.EndpointRef)
	if err != nil {
		return err
	}

	analyzer := NewAnalyzer(probes, cfg.VocabBatchLimit)
	startedAt := time.Now()
	result, err := analyzer.Reanalyze(ctx, ep)

	// The log is worth showing even for a failed run; it records which
	// stages completed and the terminal error entry.
	state := analyzer.State()
	outwriter.WriteAnalysisLog(state.Log, state.DurationMs, cfg)
	if err != nil {
		return err
	}

	persistRun(reg, ep, state, result, startedAt)
	ep.Analysis = result
	return outwriter.WriteSummary(ep, cfg)
}

// ExecuteLabels loads and prints the extended labels of one concept.
func ExecuteLabels(ctx context.Context, cfg *contract.Config, probes contract.ProbeClient, reg contract.Registry, conceptURI string) error {
	ep, err := ResolveEndpoint(reg, cfg.EndpointRef)
	if err != nil {
		return err
	}
	labels, err := probes.LoadConceptLabels(ctx, ep, conceptURI)
	if err != nil {
		return err
	}
	return outwriter.WriteConceptLabels(conceptURI, labels, cfg)
}

// persistRun stores a completed analysis onto the endpoint's registry
// record. Transient endpoints (not registered) and registry failures only
// warn; the analysis result itself already reached the caller.
func persistRun(reg contract.Registry, ep *schema.EndpointDescriptor, state RunState, result *schema.AnalysisResult, startedAt time.Time) {
	if ep.ID == 0 {
		return
	}
	finishedAt := startedAt.Add(time.Duration(state.DurationMs) * time.Millisecond)
	durationMs := state.DurationMs
	run := &schema.AnalysisRun{
		EndpointID: ep.ID,
		StartedAt:  startedAt,
		FinishedAt: &finishedAt,
		DurationMs: &durationMs,
		Result:     result,
		Log:        state.Log,
	}
	if err := reg.SaveAnalysis(ep.ID, run); err != nil {
		contract.LogWarn("Could not persist analysis run", err)
	}
}

// parseEndpointID reports whether ref looks like a numeric registry id.
func parseEndpointID(ref string) (int64, bool) {
	id, err := strconv.ParseInt(ref, 10, 64)
	return id, err == nil
}
