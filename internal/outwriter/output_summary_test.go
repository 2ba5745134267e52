package outwriter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/skoscan/skoscan/internal/contract"
	"github.com/skoscan/skoscan/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }
func int64Ptr(n int64) *int64 { return &n }

func analyzedEndpoint() *schema.EndpointDescriptor {
	return &schema.EndpointDescriptor{
		ID:   1,
		Name: "vocab",
		URL:  "https://vocab.example.org/sparql",
		Analysis: &schema.AnalysisResult{
			SupportsNamedGraphs: boolPtr(true),
			GraphCount:          intPtr(10500),
			GraphCountExact:     false,
			QueryMethod:         schema.SampleMethod,
			VocabGraphCount:     intPtr(1),
			HasDuplicateTriples: true,
			Languages: []schema.LanguageCount{
				{Lang: "en", Count: 1200},
				{Lang: "", Count: 3},
			},
		},
	}
}

func TestBuildSummaryRowsAnalyzed(t *testing.T) {
	rows := buildSummaryRows(analyzedEndpoint())
	require.Len(t, rows, 5)

	byField := make(map[string]summaryRow, len(rows))
	for _, row := range rows {
		byField[row.Field] = row
	}

	assert.Equal(t, "Yes", byField["Graph support"].Value)
	assert.Equal(t, "10.500+", byField["Graph count"].Value)
	assert.Equal(t, "1 graph", byField["Vocabulary graphs"].Value)
	assert.Equal(t, schema.SuccessSeverity, byField["Vocabulary graphs"].Severity)
	assert.Equal(t, "Yes", byField["Duplicate triples"].Value)
	assert.Equal(t, "en (1.200), (none) (3)", byField["Languages"].Value)
}

func TestBuildSummaryRowsUnanalyzed(t *testing.T) {
	ep := &schema.EndpointDescriptor{ID: 1, URL: "https://x.example.org/sparql"}
	rows := buildSummaryRows(ep)

	for _, row := range rows {
		assert.Equal(t, schema.UnknownValue, row.Value, "field %s", row.Field)
		assert.Equal(t, schema.SecondarySeverity, row.Severity, "field %s", row.Field)
	}
}

func TestWriteSummaryTableIncludesDescription(t *testing.T) {
	var buf bytes.Buffer
	ep := analyzedEndpoint()
	cfg := &contract.Config{Output: schema.TextOut, Width: 120}

	err := writeSummaryTable(&buf, ep, buildSummaryRows(ep), cfg)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "https://vocab.example.org/sparql")
	assert.Contains(t, out, "Graph support")
	assert.Contains(t, out, "1 graph contain vocabulary data")
}

func TestWriteSummaryCSV(t *testing.T) {
	var buf bytes.Buffer
	ep := analyzedEndpoint()

	err := writeSummaryCSV(&buf, buildSummaryRows(ep))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6, "header plus five capability rows")
	assert.Equal(t, "capability,value,status", lines[0])
	assert.Contains(t, lines[1], "Graph support")
}

func TestWriteSummaryJSON(t *testing.T) {
	var buf bytes.Buffer
	ep := analyzedEndpoint()

	err := writeSummaryJSON(&buf, ep, buildSummaryRows(ep))
	require.NoError(t, err)

	var decoded struct {
		Endpoint     *schema.EndpointDescriptor `json:"endpoint"`
		Capabilities []summaryRow               `json:"capabilities"`
		Description  string                     `json:"description"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, ep.URL, decoded.Endpoint.URL)
	require.Len(t, decoded.Capabilities, 5)
	assert.Equal(t, "1 graph contain vocabulary data", decoded.Description)
}

func TestSummaryGraphCountExact(t *testing.T) {
	ep := analyzedEndpoint()
	ep.Analysis.GraphCountExact = true
	assert.Equal(t, "10.500", summaryGraphCount(ep))
}
