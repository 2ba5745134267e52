// Package core implements the endpoint analysis orchestration for skoscan.
package core

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/skoscan/skoscan/internal/contract"
	"github.com/skoscan/skoscan/schema"
)

// Step labels and log fragments. Tests and downstream consumers match on
// these substrings, so treat them as stable.
const (
	stepAnalyzing = "Analyzing endpoint structure..."
	stepDone      = "Done!"

	skipGraphsNotSupported = "graphs not supported"
	skipNotSupported       = "not supported"
	skipSingleGraph        = "single graph"

	strategyBatched = "batched"
	strategyScoped  = "graph-scoped"
	strategyDefault = "default"
)

// ErrAnalysisInFlight is returned when a second analysis is requested while
// one is still running on the same Analyzer.
var ErrAnalysisInFlight = errors.New("analysis already in progress")

// ProbeError wraps a failed collaborator call with the stage it belongs to.
// The underlying error is preserved for errors.Is/As.
type ProbeError struct {
	Stage string
	Err   error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("%s probe failed: %v", e.Stage, e.Err)
}

func (e *ProbeError) Unwrap() error { return e.Err }

// RunState is the observable state of one analysis run. A fresh Analyzer
// starts with the zero value; ClearAnalysis returns to it.
type RunState struct {
	Analyzing   bool
	AnalyzeStep string
	Log         []schema.AnalysisLogEntry
	DurationMs  int64
}

// Analyzer sequences capability probes against a SPARQL endpoint and owns
// the transient run state. One Analyzer runs one analysis at a time;
// overlapping calls fail fast with ErrAnalysisInFlight.
type Analyzer struct {
	mu     sync.Mutex
	probes contract.ProbeClient
	state  RunState

	// vocabBatchLimit caps how many vocabulary graph URIs get enumerated
	// before the probe falls back to a count-only answer.
	vocabBatchLimit int
}

// NewAnalyzer creates an Analyzer over the given probe collaborator.
// A non-positive batch limit falls back to the default.
func NewAnalyzer(probes contract.ProbeClient, vocabBatchLimit int) *Analyzer {
	if vocabBatchLimit <= 0 {
		vocabBatchLimit = contract.DefaultVocabGraphBatchLimit
	}
	return &Analyzer{probes: probes, vocabBatchLimit: vocabBatchLimit}
}

// State returns a snapshot of the current run state. The log slice is
// copied so callers can hold it across later mutations.
func (a *Analyzer) State() RunState {
	a.mu.Lock()
	defer a.mu.Unlock()
	snap := a.state
	snap.Log = make([]schema.AnalysisLogEntry, len(a.state.Log))
	copy(snap.Log, a.state.Log)
	return snap
}

// LogStep appends one entry to the run log. Status defaults to pending when
// omitted. Pure append; existing entries are never mutated or removed.
func (a *Analyzer) LogStep(message string, status ...schema.LogStatus) {
	st := schema.PendingStatus
	if len(status) > 0 {
		st = status[0]
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state.Log = append(a.state.Log, schema.AnalysisLogEntry{Message: message, Status: st})
}

// ClearAnalysis resets all run-state fields to their initial empty values.
// Idempotent. There is no guard against clearing while a run is in flight;
// callers who need the in-flight log must not call it concurrently.
func (a *Analyzer) ClearAnalysis() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = RunState{}
}

// Analyze is the fast path: a single-shot capability probe. Busy state is
// visible before the collaborator call suspends; on success the probe's
// result is returned unchanged.
func (a *Analyzer) Analyze(ctx context.Context, ep *schema.EndpointDescriptor) (*schema.AnalysisResult, error) {
	if err := a.beginRun(stepAnalyzing); err != nil {
		return nil, err
	}

	result, err := a.probes.QuickAnalyze(ctx, ep)
	if err != nil {
		a.endRun("Error: " + err.Error())
		return nil, &ProbeError{Stage: "capability", Err: err}
	}

	a.endRun(stepDone)
	return result, nil
}

// Reanalyze runs the full probe pipeline: graph support, vocabulary graphs,
// duplicate triples, and language distribution, in strict sequence. Each
// stage that executes (or is skipped) appends exactly one log entry. The
// first failing stage aborts the run; completed stages keep their log
// entries and the endpoint's previously stored result stays untouched.
func (a *Analyzer) Reanalyze(ctx context.Context, ep *schema.EndpointDescriptor) (*schema.AnalysisResult, error) {
	if err := a.beginRun("Checking named graph support..."); err != nil {
		return nil, err
	}

	result := &schema.AnalysisResult{}
	started := time.Now()

	// --- 1. Graph-support probe (always runs) ---
	graphs, err := a.probes.DetectGraphs(ctx, ep)
	if err != nil {
		return nil, a.failRun("graph support", err)
	}
	result.SupportsNamedGraphs = &graphs.SupportsNamedGraphs
	result.GraphCountExact = graphs.GraphCountExact
	result.QueryMethod = graphs.QueryMethod
	if graphs.SupportsNamedGraphs {
		count := graphs.GraphCount
		result.GraphCount = &count
		a.LogStep(fmt.Sprintf("Named graphs supported: %s graphs found", formatGraphCount(graphs)), schema.SuccessStatus)
	} else {
		a.LogStep("Named graphs not supported, default graph only", schema.SuccessStatus)
	}

	// --- 2. Vocabulary-graph probe (needs graph support) ---
	var vocab *schema.VocabGraphDetection
	if graphs.SupportsNamedGraphs {
		a.setStep("Searching vocabulary graphs...")
		vocab, err = a.probes.DetectVocabGraphs(ctx, ep, a.vocabBatchLimit)
		if err != nil {
			return nil, a.failRun("vocabulary graph", err)
		}
		count := vocab.Count
		result.VocabGraphCount = &count
		result.VocabGraphURIs = vocab.URIs
		a.LogStep(fmt.Sprintf("Found %d vocabulary graphs", vocab.Count), schema.SuccessStatus)
	} else {
		a.LogStep("Vocabulary graph check skipped: "+skipGraphsNotSupported, schema.SuccessStatus)
	}

	// --- 3. Duplicate-triples probe (needs graph support and more than one graph) ---
	duplicates := false
	switch {
	case !graphs.SupportsNamedGraphs:
		a.LogStep("Duplicate check skipped: "+skipNotSupported, schema.SuccessStatus)
	case graphs.GraphCount <= 1:
		a.LogStep("Duplicate check skipped: "+skipSingleGraph, schema.SuccessStatus)
	default:
		a.setStep("Checking for duplicate triples...")
		dup, derr := a.probes.DetectDuplicates(ctx, ep)
		if derr != nil {
			return nil, a.failRun("duplicate detection", derr)
		}
		duplicates = dup.HasDuplicates
		a.LogStep(fmt.Sprintf("Duplicate triples across graphs: %t", duplicates), schema.SuccessStatus)
	}
	result.HasDuplicateTriples = duplicates

	// --- 4. Language-distribution probe (always runs; parameters depend on 2 and 3) ---
	a.setStep("Counting label languages...")
	strategy, scoped, uris := selectLanguageStrategy(vocab, duplicates)
	languages, err := a.probes.DetectLanguages(ctx, ep, scoped, uris)
	if err != nil {
		return nil, a.failRun("language distribution", err)
	}
	result.Languages = languages
	a.LogStep(fmt.Sprintf("Language distribution (%s): %d languages", strategy, len(languages)), schema.SuccessStatus)

	result.AnalyzedAt = time.Now()

	a.mu.Lock()
	a.state.DurationMs = time.Since(started).Milliseconds()
	a.state.AnalyzeStep = stepDone
	a.state.Analyzing = false
	a.mu.Unlock()

	return result, nil
}

// selectLanguageStrategy picks the call shape for the language probe.
// Enumerated vocabulary URIs take precedence (batched mode); without them
// duplicate triples force graph-scoped counting, and otherwise the default
// whole-dataset count is safe.
func selectLanguageStrategy(vocab *schema.VocabGraphDetection, duplicates bool) (strategy string, scoped bool, uris []string) {
	switch {
	case vocab != nil && vocab.URIs != nil:
		return strategyBatched, duplicates, vocab.URIs
	case duplicates:
		return strategyScoped, true, nil
	default:
		return strategyDefault, false, nil
	}
}

// formatGraphCount renders the discovered graph count, marking inexact
// counts as a lower bound with a "+" suffix.
func formatGraphCount(g *schema.GraphDetection) string {
	if g.GraphCountExact {
		return fmt.Sprintf("%d", g.GraphCount)
	}
	return fmt.Sprintf("%d+", g.GraphCount)
}

// beginRun flips the busy flag and sets the step label, failing when a run
// is already in flight. The busy state is observable synchronously, before
// any collaborator call suspends.
func (a *Analyzer) beginRun(step string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state.Analyzing {
		return ErrAnalysisInFlight
	}
	a.state.Analyzing = true
	a.state.AnalyzeStep = step
	return nil
}

// endRun clears the busy flag and records the terminal step label.
func (a *Analyzer) endRun(step string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state.AnalyzeStep = step
	a.state.Analyzing = false
}

// setStep updates the current step label mid-run.
func (a *Analyzer) setStep(step string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state.AnalyzeStep = step
}

// failRun records a terminal error log entry, clears the busy flag, and
// wraps the collaborator failure for the caller. No retries, no partial
// result.
func (a *Analyzer) failRun(stage string, err error) error {
	a.LogStep(fmt.Sprintf("Error: %s probe failed: %v", stage, err), schema.ErrorStatus)
	a.endRun("Error: " + err.Error())
	return &ProbeError{Stage: stage, Err: err}
}
