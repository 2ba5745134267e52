// Package schema has configs, models and global variables for all parts of skoscan.
package schema

import "time"

// EndpointDescriptor identifies a remote SPARQL service known to the registry.
// The analyzer only reads identity fields and returns an AnalysisResult for
// the caller to attach; ownership of the record stays with the registry.
type EndpointDescriptor struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	URL         string          `json:"url"`
	CreatedAt   time.Time       `json:"created_at"`
	AccessCount int             `json:"access_count"`
	Analysis    *AnalysisResult `json:"analysis,omitempty"` // nil until a run has been persisted
}

// AnalysisResult is the persisted outcome of one full analysis run.
// Pointer fields distinguish "probed and got a value" from "never probed";
// a nil SupportsNamedGraphs means graph support is unknown, and in that case
// VocabGraphCount and HasDuplicateTriples carry their not-applicable defaults.
type AnalysisResult struct {
	SupportsNamedGraphs *bool           `json:"supports_named_graphs"`
	GraphCount          *int            `json:"graph_count"`
	GraphCountExact     bool            `json:"graph_count_exact"`
	QueryMethod         QueryMethod     `json:"query_method,omitempty"`
	VocabGraphCount     *int            `json:"vocab_graph_count"`
	VocabGraphURIs      []string        `json:"vocab_graph_uris"` // nil when too many to enumerate cheaply
	HasDuplicateTriples bool            `json:"has_duplicate_triples"`
	Languages           []LanguageCount `json:"languages"`
	AnalyzedAt          time.Time       `json:"analyzed_at"`
}

// SupportsGraphs reports whether named-graph support was positively detected.
func (r *AnalysisResult) SupportsGraphs() bool {
	return r != nil && r.SupportsNamedGraphs != nil && *r.SupportsNamedGraphs
}

// LanguageCount is one entry of a label-language distribution: a language tag
// and the number of labels carrying it. Ordering is as returned by the
// endpoint, not re-sorted.
type LanguageCount struct {
	Lang  string `json:"lang"`
	Count int    `json:"count"`
}

// AnalysisLogEntry is one step of the user-visible analysis log.
// Entries are append-only and written with their final status once the
// probe resolves; later entries never mutate earlier ones.
type AnalysisLogEntry struct {
	Message string    `json:"message"`
	Status  LogStatus `json:"status"`
}

// GraphDetection is the outcome of the graph-support probe.
type GraphDetection struct {
	SupportsNamedGraphs bool
	GraphCount          int
	GraphCountExact     bool
	QueryMethod         QueryMethod
}

// VocabGraphDetection is the outcome of the vocabulary-graph probe.
// URIs is nil when the endpoint has more vocabulary graphs than the
// batching limit allows to enumerate.
type VocabGraphDetection struct {
	Count int
	URIs  []string
}

// DuplicateDetection is the outcome of the duplicate-triples probe.
type DuplicateDetection struct {
	HasDuplicates bool
}

// ConceptLabel is one reified label of a vocabulary concept.
type ConceptLabel struct {
	Value string    `json:"value"`
	Lang  string    `json:"lang"`
	Kind  LabelKind `json:"kind"`
}

// AnalysisRun is one row of the persisted analysis history.
type AnalysisRun struct {
	RunID      int64              `json:"run_id"`
	EndpointID int64              `json:"endpoint_id"`
	StartedAt  time.Time          `json:"started_at"`
	FinishedAt *time.Time         `json:"finished_at"`
	DurationMs *int64             `json:"duration_ms"`
	Result     *AnalysisResult    `json:"result"`
	Log        []AnalysisLogEntry `json:"log"`
}
