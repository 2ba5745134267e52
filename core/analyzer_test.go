package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/skoscan/skoscan/internal/contract"
	"github.com/skoscan/skoscan/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testEndpoint() *schema.EndpointDescriptor {
	return &schema.EndpointDescriptor{
		ID:        1,
		Name:      "test",
		URL:       "http://example.org/sparql",
		CreatedAt: time.Now(),
	}
}

func quickResult() *schema.AnalysisResult {
	supports := true
	count := 3
	return &schema.AnalysisResult{
		SupportsNamedGraphs: &supports,
		GraphCount:          &count,
		GraphCountExact:     true,
		AnalyzedAt:          time.Now(),
	}
}

func TestAnalyzerInitialState(t *testing.T) {
	analyzer := NewAnalyzer(&contract.MockProbeClient{}, 0)

	state := analyzer.State()
	assert.False(t, state.Analyzing)
	assert.Equal(t, "", state.AnalyzeStep)
	assert.Empty(t, state.Log)
	assert.Zero(t, state.DurationMs)
}

func TestAnalyzeSuccess(t *testing.T) {
	mockProbes := &contract.MockProbeClient{}
	analyzer := NewAnalyzer(mockProbes, 0)
	ep := testEndpoint()
	want := quickResult()

	// The busy indicator must be observable while the probe is in flight.
	mockProbes.On("QuickAnalyze", mock.Anything, ep).Run(func(_ mock.Arguments) {
		state := analyzer.State()
		assert.True(t, state.Analyzing)
		assert.Equal(t, "Analyzing endpoint structure...", state.AnalyzeStep)
	}).Return(want, nil)

	got, err := analyzer.Analyze(context.Background(), ep)

	assert.NoError(t, err)
	assert.Same(t, want, got, "fast path returns the probe result unchanged")
	state := analyzer.State()
	assert.False(t, state.Analyzing)
	assert.Equal(t, "Done!", state.AnalyzeStep)
	assert.Empty(t, state.Log, "fast path performs no log entries")

	mockProbes.AssertExpectations(t)
}

func TestAnalyzeFailure(t *testing.T) {
	mockProbes := &contract.MockProbeClient{}
	analyzer := NewAnalyzer(mockProbes, 0)
	ep := testEndpoint()
	probeErr := errors.New("endpoint returned 503")

	mockProbes.On("QuickAnalyze", mock.Anything, ep).Return(nil, probeErr)

	got, err := analyzer.Analyze(context.Background(), ep)

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, probeErr, "underlying failure stays reachable")
	var pe *ProbeError
	assert.ErrorAs(t, err, &pe)

	state := analyzer.State()
	assert.False(t, state.Analyzing, "a failure never leaves the busy flag stuck")
	assert.Contains(t, state.AnalyzeStep, "Error:")
	assert.Contains(t, state.AnalyzeStep, "endpoint returned 503")

	mockProbes.AssertExpectations(t)
}

func TestAnalyzeSingleFlight(t *testing.T) {
	mockProbes := &contract.MockProbeClient{}
	analyzer := NewAnalyzer(mockProbes, 0)
	ep := testEndpoint()

	var overlapErr error
	mockProbes.On("QuickAnalyze", mock.Anything, ep).Run(func(_ mock.Arguments) {
		_, overlapErr = analyzer.Analyze(context.Background(), ep)
	}).Return(quickResult(), nil).Once()

	_, err := analyzer.Analyze(context.Background(), ep)

	assert.NoError(t, err)
	assert.ErrorIs(t, overlapErr, ErrAnalysisInFlight)
	mockProbes.AssertExpectations(t)
}

func TestLogStepDefaultsToPending(t *testing.T) {
	analyzer := NewAnalyzer(&contract.MockProbeClient{}, 0)

	analyzer.LogStep("first")
	analyzer.LogStep("second", schema.SuccessStatus)
	analyzer.LogStep("third", schema.ErrorStatus)

	log := analyzer.State().Log
	assert.Len(t, log, 3)
	assert.Equal(t, schema.AnalysisLogEntry{Message: "first", Status: schema.PendingStatus}, log[0])
	assert.Equal(t, schema.AnalysisLogEntry{Message: "second", Status: schema.SuccessStatus}, log[1])
	assert.Equal(t, schema.AnalysisLogEntry{Message: "third", Status: schema.ErrorStatus}, log[2])

	// Appends never mutate prior entries.
	analyzer.LogStep("fourth")
	assert.Equal(t, "first", analyzer.State().Log[0].Message)
	assert.Equal(t, schema.PendingStatus, analyzer.State().Log[0].Status)
}

func TestClearAnalysisRestoresInitialState(t *testing.T) {
	mockProbes := &contract.MockProbeClient{}
	analyzer := NewAnalyzer(mockProbes, 0)
	fresh := NewAnalyzer(mockProbes, 0)

	analyzer.LogStep("step", schema.SuccessStatus)
	mockProbes.On("QuickAnalyze", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
	_, _ = analyzer.Analyze(context.Background(), testEndpoint())

	analyzer.ClearAnalysis()
	assert.Equal(t, fresh.State(), analyzer.State())

	// Idempotent.
	analyzer.ClearAnalysis()
	assert.Equal(t, fresh.State(), analyzer.State())
}
