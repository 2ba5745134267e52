package contract

import (
	"context"

	"github.com/skoscan/skoscan/schema"
	"github.com/stretchr/testify/mock"
)

// MockProbeClient is a mock implementation of ProbeClient for testing.
type MockProbeClient struct {
	mock.Mock
}

var _ ProbeClient = &MockProbeClient{} // Compile-time check

// QuickAnalyze implements the ProbeClient interface.
func (m *MockProbeClient) QuickAnalyze(ctx context.Context, ep *schema.EndpointDescriptor) (*schema.AnalysisResult, error) {
	args := m.Called(ctx, ep)
	res, _ := args.Get(0).(*schema.AnalysisResult)
	return res, args.Error(1)
}

// DetectGraphs implements the ProbeClient interface.
func (m *MockProbeClient) DetectGraphs(ctx context.Context, ep *schema.EndpointDescriptor) (*schema.GraphDetection, error) {
	args := m.Called(ctx, ep)
	res, _ := args.Get(0).(*schema.GraphDetection)
	return res, args.Error(1)
}

// DetectVocabGraphs implements the ProbeClient interface.
func (m *MockProbeClient) DetectVocabGraphs(ctx context.Context, ep *schema.EndpointDescriptor, limit int) (*schema.VocabGraphDetection, error) {
	args := m.Called(ctx, ep, limit)
	res, _ := args.Get(0).(*schema.VocabGraphDetection)
	return res, args.Error(1)
}

// DetectDuplicates implements the ProbeClient interface.
func (m *MockProbeClient) DetectDuplicates(ctx context.Context, ep *schema.EndpointDescriptor) (*schema.DuplicateDetection, error) {
	args := m.Called(ctx, ep)
	res, _ := args.Get(0).(*schema.DuplicateDetection)
	return res, args.Error(1)
}

// DetectLanguages implements the ProbeClient interface.
func (m *MockProbeClient) DetectLanguages(ctx context.Context, ep *schema.EndpointDescriptor, scoped bool, uris []string) ([]schema.LanguageCount, error) {
	args := m.Called(ctx, ep, scoped, uris)
	res, _ := args.Get(0).([]schema.LanguageCount)
	return res, args.Error(1)
}

// LoadConceptLabels implements the ProbeClient interface.
func (m *MockProbeClient) LoadConceptLabels(ctx context.Context, ep *schema.EndpointDescriptor, conceptURI string) ([]schema.ConceptLabel, error) {
	args := m.Called(ctx, ep, conceptURI)
	res, _ := args.Get(0).([]schema.ConceptLabel)
	return res, args.Error(1)
}

// MockRegistry is a mock implementation of Registry for testing.
type MockRegistry struct {
	mock.Mock
}

var _ Registry = &MockRegistry{} // Compile-time check

// AddEndpoint implements the Registry interface.
func (m *MockRegistry) AddEndpoint(name, url string) (*schema.EndpointDescriptor, error) {
	args := m.Called(name, url)
	ep, _ := args.Get(0).(*schema.EndpointDescriptor)
	return ep, args.Error(1)
}

// GetEndpoint implements the Registry interface.
func (m *MockRegistry) GetEndpoint(ref string) (*schema.EndpointDescriptor, error) {
	args := m.Called(ref)
	ep, _ := args.Get(0).(*schema.EndpointDescriptor)
	return ep, args.Error(1)
}

// ListEndpoints implements the Registry interface.
func (m *MockRegistry) ListEndpoints() ([]schema.EndpointDescriptor, error) {
	args := m.Called()
	eps, _ := args.Get(0).([]schema.EndpointDescriptor)
	return eps, args.Error(1)
}

// RemoveEndpoint implements the Registry interface.
func (m *MockRegistry) RemoveEndpoint(ref string) error {
	args := m.Called(ref)
	return args.Error(0)
}

// SaveAnalysis implements the Registry interface.
func (m *MockRegistry) SaveAnalysis(endpointID int64, run *schema.AnalysisRun) error {
	args := m.Called(endpointID, run)
	return args.Error(0)
}

// ListRuns implements the Registry interface.
func (m *MockRegistry) ListRuns(limit int) ([]schema.AnalysisRun, error) {
	args := m.Called(limit)
	runs, _ := args.Get(0).([]schema.AnalysisRun)
	return runs, args.Error(1)
}

// Status implements the Registry interface.
func (m *MockRegistry) Status() (*schema.RegistryStatus, error) {
	args := m.Called()
	st, _ := args.Get(0).(*schema.RegistryStatus)
	return st, args.Error(1)
}

// Close implements the Registry interface.
func (m *MockRegistry) Close() error {
	args := m.Called()
	return args.Error(0)
}
