// Package sparql implements the probe collaborators over the SPARQL 1.1 Protocol.
package sparql

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// maxErrorBodyBytes caps how much of an error response body ends up in an
// error message.
const maxErrorBodyBytes = 512

// Client executes SPARQL queries against remote endpoints. The zero value
// is not usable; construct with NewClient.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a Client whose queries time out after the given
// duration.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  "skoscan/1.0",
	}
}

// resultSet is the decoded form of application/sparql-results+json.
// Boolean is set for ASK queries, Results for SELECT queries.
type resultSet struct {
	Head struct {
		Vars []string `json:"vars"`
	} `json:"head"`
	Results struct {
		Bindings []map[string]binding `json:"bindings"`
	} `json:"results"`
	Boolean *bool `json:"boolean"`
}

// binding is a single RDF term of a result row.
type binding struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Lang     string `json:"xml:lang"`
	Datatype string `json:"datatype"`
}

// execute POSTs a query to the endpoint and decodes the JSON result set.
func (c *Client) execute(ctx context.Context, endpointURL, query string) (*resultSet, error) {
	form := url.Values{"query": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpointURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build query request for %s: %w", endpointURL, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/sparql-results+json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query to %s failed: %w", endpointURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, fmt.Errorf("endpoint %s returned %s: %s", endpointURL, resp.Status, strings.TrimSpace(string(body)))
	}

	var rs resultSet
	if err := json.NewDecoder(resp.Body).Decode(&rs); err != nil {
		return nil, fmt.Errorf("failed to decode results from %s: %w", endpointURL, err)
	}
	return &rs, nil
}

// intBinding extracts an integer value from a result row, tolerating
// xsd-typed literals.
func intBinding(row map[string]binding, varName string) (int, error) {
	b, ok := row[varName]
	if !ok {
		return 0, fmt.Errorf("result row has no binding for ?%s", varName)
	}
	n, err := strconv.Atoi(b.Value)
	if err != nil {
		return 0, fmt.Errorf("binding ?%s is not an integer: %q", varName, b.Value)
	}
	return n, nil
}

// stringBinding extracts a string value from a result row, returning the
// empty string for unbound variables.
func stringBinding(row map[string]binding, varName string) string {
	return row[varName].Value
}
