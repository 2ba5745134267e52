package core

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/skoscan/skoscan/internal/contract"
	"github.com/skoscan/skoscan/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func graphsDetected(count int, exact bool) *schema.GraphDetection {
	return &schema.GraphDetection{
		SupportsNamedGraphs: true,
		GraphCount:          count,
		GraphCountExact:     exact,
		QueryMethod:         schema.CountMethod,
	}
}

func languagesEnFr() []schema.LanguageCount {
	return []schema.LanguageCount{{Lang: "en", Count: 120}, {Lang: "fr", Count: 80}}
}

func logMessages(log []schema.AnalysisLogEntry) string {
	var b strings.Builder
	for _, e := range log {
		b.WriteString(e.Message)
		b.WriteString("\n")
	}
	return b.String()
}

func TestReanalyzeFourStageRun(t *testing.T) {
	mockProbes := &contract.MockProbeClient{}
	analyzer := NewAnalyzer(mockProbes, 0)
	ep := testEndpoint()
	uris := []string{"http://example.org/g/1", "http://example.org/g/2"}

	mockProbes.On("DetectGraphs", mock.Anything, ep).Return(graphsDetected(3, true), nil)
	mockProbes.On("DetectVocabGraphs", mock.Anything, ep, contract.DefaultVocabGraphBatchLimit).
		Return(&schema.VocabGraphDetection{Count: 2, URIs: uris}, nil)
	mockProbes.On("DetectDuplicates", mock.Anything, ep).Return(&schema.DuplicateDetection{HasDuplicates: false}, nil)
	mockProbes.On("DetectLanguages", mock.Anything, ep, false, uris).Return(languagesEnFr(), nil)

	result, err := analyzer.Reanalyze(context.Background(), ep)

	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, result.SupportsNamedGraphs)
	assert.True(t, *result.SupportsNamedGraphs)
	require.NotNil(t, result.GraphCount)
	assert.Equal(t, 3, *result.GraphCount)
	require.NotNil(t, result.VocabGraphCount)
	assert.Equal(t, 2, *result.VocabGraphCount)
	assert.Equal(t, uris, result.VocabGraphURIs)
	assert.False(t, result.HasDuplicateTriples)
	assert.Len(t, result.Languages, 2)
	assert.False(t, result.AnalyzedAt.IsZero())

	state := analyzer.State()
	assert.Len(t, state.Log, 4, "one log entry per stage")
	for _, entry := range state.Log {
		assert.Equal(t, schema.SuccessStatus, entry.Status)
	}
	assert.False(t, state.Analyzing)
	assert.Equal(t, "Done!", state.AnalyzeStep)

	mockProbes.AssertExpectations(t)
}

func TestReanalyzeSingleGraphSkipsDuplicateProbe(t *testing.T) {
	mockProbes := &contract.MockProbeClient{}
	analyzer := NewAnalyzer(mockProbes, 0)
	ep := testEndpoint()

	mockProbes.On("DetectGraphs", mock.Anything, ep).Return(graphsDetected(1, true), nil)
	mockProbes.On("DetectVocabGraphs", mock.Anything, ep, mock.Anything).
		Return(&schema.VocabGraphDetection{Count: 1, URIs: []string{"http://example.org/g/1"}}, nil)
	mockProbes.On("DetectLanguages", mock.Anything, ep, false, []string{"http://example.org/g/1"}).
		Return(languagesEnFr(), nil)

	result, err := analyzer.Reanalyze(context.Background(), ep)

	require.NoError(t, err)
	assert.False(t, result.HasDuplicateTriples)
	assert.Contains(t, logMessages(analyzer.State().Log), "single graph")
	mockProbes.AssertNotCalled(t, "DetectDuplicates", mock.Anything, mock.Anything)
	mockProbes.AssertExpectations(t)
}

func TestReanalyzeGraphsUnsupported(t *testing.T) {
	mockProbes := &contract.MockProbeClient{}
	analyzer := NewAnalyzer(mockProbes, 0)
	ep := testEndpoint()

	mockProbes.On("DetectGraphs", mock.Anything, ep).
		Return(&schema.GraphDetection{SupportsNamedGraphs: false}, nil)
	mockProbes.On("DetectLanguages", mock.Anything, ep, false, mock.Anything).
		Run(func(args mock.Arguments) {
			assert.Nil(t, args.Get(3), "no vocab URIs without graph support")
		}).Return(languagesEnFr(), nil)

	result, err := analyzer.Reanalyze(context.Background(), ep)

	require.NoError(t, err)
	assert.Nil(t, result.VocabGraphCount, "vocab count stays not-applicable")
	assert.Nil(t, result.VocabGraphURIs)
	assert.False(t, result.HasDuplicateTriples)

	messages := logMessages(analyzer.State().Log)
	assert.Contains(t, messages, "graphs not supported")
	assert.Contains(t, messages, "not supported")
	assert.Len(t, analyzer.State().Log, 4)

	mockProbes.AssertNotCalled(t, "DetectVocabGraphs", mock.Anything, mock.Anything, mock.Anything)
	mockProbes.AssertNotCalled(t, "DetectDuplicates", mock.Anything, mock.Anything)
	mockProbes.AssertExpectations(t)
}

func TestReanalyzeApproximateCountLogging(t *testing.T) {
	mockProbes := &contract.MockProbeClient{}
	analyzer := NewAnalyzer(mockProbes, 0)
	ep := testEndpoint()

	mockProbes.On("DetectGraphs", mock.Anything, ep).Return(&schema.GraphDetection{
		SupportsNamedGraphs: true,
		GraphCount:          10000,
		GraphCountExact:     false,
		QueryMethod:         schema.SampleMethod,
	}, nil)
	mockProbes.On("DetectVocabGraphs", mock.Anything, ep, mock.Anything).
		Return(&schema.VocabGraphDetection{Count: 300, URIs: nil}, nil)
	mockProbes.On("DetectDuplicates", mock.Anything, ep).Return(&schema.DuplicateDetection{HasDuplicates: false}, nil)
	mockProbes.On("DetectLanguages", mock.Anything, ep, false, mock.Anything).Return(languagesEnFr(), nil)

	_, err := analyzer.Reanalyze(context.Background(), ep)

	require.NoError(t, err)
	assert.Contains(t, logMessages(analyzer.State().Log), "10000+")
	mockProbes.AssertExpectations(t)
}

// TestLanguageStrategySelection covers the full decision table for the
// language probe's call shape.
func TestLanguageStrategySelection(t *testing.T) {
	uris := []string{"http://example.org/g/1"}

	tests := []struct {
		name         string
		vocab        *schema.VocabGraphDetection
		duplicates   bool
		wantStrategy string
		wantScoped   bool
		wantURIs     []string
	}{
		{"uris known, no duplicates", &schema.VocabGraphDetection{Count: 1, URIs: uris}, false, "batched", false, uris},
		{"uris known, duplicates", &schema.VocabGraphDetection{Count: 1, URIs: uris}, true, "batched", true, uris},
		{"uris unknown, duplicates", &schema.VocabGraphDetection{Count: 500, URIs: nil}, true, "graph-scoped", true, nil},
		{"uris unknown, no duplicates", &schema.VocabGraphDetection{Count: 500, URIs: nil}, false, "default", false, nil},
		{"no vocab probe, duplicates", nil, true, "graph-scoped", true, nil},
		{"no vocab probe, no duplicates", nil, false, "default", false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy, scoped, uris := selectLanguageStrategy(tt.vocab, tt.duplicates)
			assert.Equal(t, tt.wantStrategy, strategy)
			assert.Equal(t, tt.wantScoped, scoped)
			assert.Equal(t, tt.wantURIs, uris)
		})
	}
}

// TestReanalyzeStrategyLogging verifies the language probe is invoked with
// the parameters implied by the decision table and that the chosen strategy
// shows up in the log.
func TestReanalyzeStrategyLogging(t *testing.T) {
	uris := []string{"http://example.org/g/1", "http://example.org/g/2"}

	tests := []struct {
		name          string
		vocab         *schema.VocabGraphDetection
		duplicates    bool
		wantScoped    bool
		wantURIs      []string
		wantSubstring string
	}{
		{"batched with duplicates", &schema.VocabGraphDetection{Count: 2, URIs: uris}, true, true, uris, "batched"},
		{"scoped without uris", &schema.VocabGraphDetection{Count: 400, URIs: nil}, true, true, nil, "graph-scoped"},
		{"default", &schema.VocabGraphDetection{Count: 400, URIs: nil}, false, false, nil, "default"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProbes := &contract.MockProbeClient{}
			analyzer := NewAnalyzer(mockProbes, 0)
			ep := testEndpoint()

			mockProbes.On("DetectGraphs", mock.Anything, ep).Return(graphsDetected(5, true), nil)
			mockProbes.On("DetectVocabGraphs", mock.Anything, ep, mock.Anything).Return(tt.vocab, nil)
			mockProbes.On("DetectDuplicates", mock.Anything, ep).
				Return(&schema.DuplicateDetection{HasDuplicates: tt.duplicates}, nil)
			var gotScoped bool
			var gotURIs []string
			mockProbes.On("DetectLanguages", mock.Anything, ep, mock.Anything, mock.Anything).
				Run(func(args mock.Arguments) {
					gotScoped = args.Bool(2)
					gotURIs, _ = args.Get(3).([]string)
				}).Return(languagesEnFr(), nil)

			_, err := analyzer.Reanalyze(context.Background(), ep)

			require.NoError(t, err)
			assert.Equal(t, tt.wantScoped, gotScoped)
			assert.Equal(t, tt.wantURIs, gotURIs)
			assert.Contains(t, logMessages(analyzer.State().Log), tt.wantSubstring)
			mockProbes.AssertExpectations(t)
		})
	}
}

func TestReanalyzeAbortsOnStageFailure(t *testing.T) {
	mockProbes := &contract.MockProbeClient{}
	analyzer := NewAnalyzer(mockProbes, 0)
	ep := testEndpoint()
	probeErr := errors.New("query timed out")

	mockProbes.On("DetectGraphs", mock.Anything, ep).Return(graphsDetected(3, true), nil)
	mockProbes.On("DetectVocabGraphs", mock.Anything, ep, mock.Anything).Return(nil, probeErr)

	result, err := analyzer.Reanalyze(context.Background(), ep)

	assert.Nil(t, result, "no partial result on failure")
	assert.ErrorIs(t, err, probeErr)

	state := analyzer.State()
	assert.False(t, state.Analyzing)
	assert.Zero(t, state.DurationMs, "duration is only written on success")
	require.Len(t, state.Log, 2, "completed stage plus terminal error entry")
	assert.Equal(t, schema.SuccessStatus, state.Log[0].Status)
	assert.Equal(t, schema.ErrorStatus, state.Log[1].Status)
	assert.Contains(t, state.Log[1].Message, "Error:")

	mockProbes.AssertNotCalled(t, "DetectDuplicates", mock.Anything, mock.Anything)
	mockProbes.AssertNotCalled(t, "DetectLanguages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockProbes.AssertExpectations(t)
}

func TestReanalyzeLanguagesOrderPreserved(t *testing.T) {
	mockProbes := &contract.MockProbeClient{}
	analyzer := NewAnalyzer(mockProbes, 0)
	ep := testEndpoint()
	// Deliberately not sorted by count; the analyzer must not re-sort.
	langs := []schema.LanguageCount{{Lang: "fr", Count: 10}, {Lang: "en", Count: 90}, {Lang: "de", Count: 50}}

	mockProbes.On("DetectGraphs", mock.Anything, ep).
		Return(&schema.GraphDetection{SupportsNamedGraphs: false}, nil)
	mockProbes.On("DetectLanguages", mock.Anything, ep, false, mock.Anything).Return(langs, nil)

	result, err := analyzer.Reanalyze(context.Background(), ep)

	require.NoError(t, err)
	assert.Equal(t, langs, result.Languages)
	mockProbes.AssertExpectations(t)
}
