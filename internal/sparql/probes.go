package sparql

import (
	"context"
	"time"

	"github.com/skoscan/skoscan/internal/contract"
	"github.com/skoscan/skoscan/schema"
)

var _ contract.ProbeClient = &Client{} // Compile-time check

// QuickAnalyze populates an AnalysisResult from a single round trip: the
// graph-count query alone. Vocabulary, duplicate, and language fields keep
// their not-applicable defaults; the full pipeline fills them in.
func (c *Client) QuickAnalyze(ctx context.Context, ep *schema.EndpointDescriptor) (*schema.AnalysisResult, error) {
	graphs, err := c.countGraphs(ctx, ep.URL)
	if err != nil {
		return nil, err
	}
	result := &schema.AnalysisResult{
		SupportsNamedGraphs: &graphs.SupportsNamedGraphs,
		GraphCountExact:     graphs.GraphCountExact,
		QueryMethod:         graphs.QueryMethod,
		AnalyzedAt:          time.Now(),
	}
	if graphs.SupportsNamedGraphs {
		count := graphs.GraphCount
		result.GraphCount = &count
	}
	return result, nil
}

// DetectGraphs probes named-graph support. The exact aggregate count is
// preferred; endpoints that reject it get a bounded enumeration whose
// result is a lower bound once the limit is hit.
func (c *Client) DetectGraphs(ctx context.Context, ep *schema.EndpointDescriptor) (*schema.GraphDetection, error) {
	return c.countGraphs(ctx, ep.URL)
}

func (c *Client) countGraphs(ctx context.Context, endpointURL string) (*schema.GraphDetection, error) {
	rs, err := c.execute(ctx, endpointURL, graphCountQuery)
	if err == nil && len(rs.Results.Bindings) > 0 {
		n, nerr := intBinding(rs.Results.Bindings[0], "n")
		if nerr == nil {
			return &schema.GraphDetection{
				SupportsNamedGraphs: n > 0,
				GraphCount:          n,
				GraphCountExact:     true,
				QueryMethod:         schema.CountMethod,
			}, nil
		}
	}

	// Fallback: enumerate a bounded sample of graphs.
	rs, serr := c.execute(ctx, endpointURL, graphSampleQuery(sampleGraphLimit))
	if serr != nil {
		if err != nil {
			return nil, err
		}
		return nil, serr
	}
	n := len(rs.Results.Bindings)
	return &schema.GraphDetection{
		SupportsNamedGraphs: n > 0,
		GraphCount:          n,
		GraphCountExact:     n < sampleGraphLimit,
		QueryMethod:         schema.SampleMethod,
	}, nil
}

// DetectVocabGraphs finds graphs containing SKOS vocabulary data. URIs are
// enumerated only while the graph count stays within limit; beyond it the
// probe answers with a count alone.
func (c *Client) DetectVocabGraphs(ctx context.Context, ep *schema.EndpointDescriptor, limit int) (*schema.VocabGraphDetection, error) {
	if limit <= 0 {
		limit = contract.DefaultVocabGraphBatchLimit
	}

	rs, err := c.execute(ctx, ep.URL, vocabGraphsQuery(limit+1))
	if err != nil {
		return nil, err
	}
	if len(rs.Results.Bindings) <= limit {
		uris := make([]string, 0, len(rs.Results.Bindings))
		for _, row := range rs.Results.Bindings {
			if g := stringBinding(row, "g"); g != "" {
				uris = append(uris, g)
			}
		}
		return &schema.VocabGraphDetection{Count: len(uris), URIs: uris}, nil
	}

	// Too many to enumerate cheaply: ask for the count only.
	rs, err = c.execute(ctx, ep.URL, vocabGraphCountQuery())
	if err != nil {
		return nil, err
	}
	if len(rs.Results.Bindings) == 0 {
		return &schema.VocabGraphDetection{Count: limit + 1, URIs: nil}, nil
	}
	n, err := intBinding(rs.Results.Bindings[0], "n")
	if err != nil {
		return nil, err
	}
	return &schema.VocabGraphDetection{Count: n, URIs: nil}, nil
}

// DetectDuplicates asks whether any triple occurs in more than one graph.
func (c *Client) DetectDuplicates(ctx context.Context, ep *schema.EndpointDescriptor) (*schema.DuplicateDetection, error) {
	rs, err := c.execute(ctx, ep.URL, duplicatesQuery)
	if err != nil {
		return nil, err
	}
	has := rs.Boolean != nil && *rs.Boolean
	return &schema.DuplicateDetection{HasDuplicates: has}, nil
}

// DetectLanguages counts prefLabels per language tag, in the order the
// endpoint returns them.
func (c *Client) DetectLanguages(ctx context.Context, ep *schema.EndpointDescriptor, scoped bool, uris []string) ([]schema.LanguageCount, error) {
	rs, err := c.execute(ctx, ep.URL, languagesQuery(scoped, uris))
	if err != nil {
		return nil, err
	}
	langs := make([]schema.LanguageCount, 0, len(rs.Results.Bindings))
	for _, row := range rs.Results.Bindings {
		n, nerr := intBinding(row, "n")
		if nerr != nil {
			continue
		}
		langs = append(langs, schema.LanguageCount{Lang: stringBinding(row, "lang"), Count: n})
	}
	return langs, nil
}

// LoadConceptLabels loads all SKOS labels of a concept, deduplicated and
// classified by asserting predicate.
func (c *Client) LoadConceptLabels(ctx context.Context, ep *schema.EndpointDescriptor, conceptURI string) ([]schema.ConceptLabel, error) {
	rs, err := c.execute(ctx, ep.URL, conceptLabelsQuery(conceptURI))
	if err != nil {
		return nil, err
	}

	seen := make(map[schema.ConceptLabel]struct{})
	labels := make([]schema.ConceptLabel, 0, len(rs.Results.Bindings))
	for _, row := range rs.Results.Bindings {
		label := schema.ConceptLabel{
			Value: stringBinding(row, "label"),
			Lang:  row["label"].Lang,
			Kind:  classifyLabelPredicate(stringBinding(row, "p")),
		}
		if label.Value == "" {
			continue
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}
	return labels, nil
}

// classifyLabelPredicate maps a SKOS label predicate IRI to a label kind.
func classifyLabelPredicate(predicate string) schema.LabelKind {
	switch predicate {
	case skosNamespace + "altLabel":
		return schema.AltLabel
	case skosNamespace + "hiddenLabel":
		return schema.HiddenLabel
	default:
		return schema.PrefLabel
	}
}
