package estimate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Request is the payload sent to the external cost estimator
type Request struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	JobCount int `json:"jobCount"`
}

// Estimate is the estimator's answer for one request
type Estimate struct {
	Cost      float64 `json:"cost"`
	CostInUSD float64 `json:"costInUSD"`
}

// Client fetches a cost estimate from the external estimator
type Client interface {
	EstimateCost(ctx context.Context, req Request) (Estimate, error)
}

// HTTPClient talks JSON over HTTP to the estimator endpoint
type HTTPClient struct {
	endpoint string
	hc       *http.Client
}

// NewHTTPClient creates a client for the given endpoint URL
func NewHTTPClient(endpoint string) *HTTPClient {
	return &HTTPClient{
		endpoint: endpoint,
		hc:       &http.Client{Timeout: 10 * time.Second},
	}
}

// EstimateCost posts the request and decodes the estimate.
// A JSON null body means the estimator declined to quote; that is
// surfaced as an error and rendered as unavailable upstream
func (c *HTTPClient) EstimateCost(ctx context.Context, req Request) (Estimate, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Estimate{}, fmt.Errorf("encoding estimate request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Estimate{}, fmt.Errorf("building estimate request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(httpReq)
	if err != nil {
		return Estimate{}, fmt.Errorf("posting estimate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Estimate{}, fmt.Errorf("estimator returned status %d", resp.StatusCode)
	}

	var decoded *Estimate
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Estimate{}, fmt.Errorf("decoding estimate response: %w", err)
	}
	if decoded == nil {
		return Estimate{}, fmt.Errorf("estimator returned no quote")
	}
	return *decoded, nil
}
