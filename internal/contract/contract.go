// Package contract provides interfaces and shared utilities for the skoscan CLI's internal architecture.
package contract

import (
	"context"

	"github.com/skoscan/skoscan/schema"
)

// ProbeClient defines the query collaborators the analyzer drives.
// Implementations talk to a live SPARQL endpoint; tests mock this interface.
type ProbeClient interface {
	// QuickAnalyze populates a full AnalysisResult in a single round trip.
	QuickAnalyze(ctx context.Context, ep *schema.EndpointDescriptor) (*schema.AnalysisResult, error)

	// DetectGraphs probes named-graph support and the graph population.
	DetectGraphs(ctx context.Context, ep *schema.EndpointDescriptor) (*schema.GraphDetection, error)

	// DetectVocabGraphs finds graphs holding vocabulary data. URIs are
	// enumerated only while the graph count stays within limit.
	DetectVocabGraphs(ctx context.Context, ep *schema.EndpointDescriptor, limit int) (*schema.VocabGraphDetection, error)

	// DetectDuplicates checks whether any triple is asserted in more than one graph.
	DetectDuplicates(ctx context.Context, ep *schema.EndpointDescriptor) (*schema.DuplicateDetection, error)

	// DetectLanguages counts labels per language tag. When uris is non-nil
	// the count is batched over those graphs; otherwise scoped restricts
	// counting to distinct triples inside graphs.
	DetectLanguages(ctx context.Context, ep *schema.EndpointDescriptor, scoped bool, uris []string) ([]schema.LanguageCount, error)

	// LoadConceptLabels loads the deduplicated, classified labels of one concept.
	LoadConceptLabels(ctx context.Context, ep *schema.EndpointDescriptor, conceptURI string) ([]schema.ConceptLabel, error)
}

// Registry defines the persistence layer for endpoint descriptors and
// analysis history. This allows the store to be mocked for testing.
type Registry interface {
	AddEndpoint(name, url string) (*schema.EndpointDescriptor, error)

	// GetEndpoint resolves ref as a numeric id or a URL and bumps the
	// endpoint's access counter.
	GetEndpoint(ref string) (*schema.EndpointDescriptor, error)

	ListEndpoints() ([]schema.EndpointDescriptor, error)
	RemoveEndpoint(ref string) error

	// SaveAnalysis attaches the run's result to the endpoint and appends
	// a history row.
	SaveAnalysis(endpointID int64, run *schema.AnalysisRun) error

	ListRuns(limit int) ([]schema.AnalysisRun, error)
	Status() (*schema.RegistryStatus, error)
	Close() error
}
