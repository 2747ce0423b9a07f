// Package ml talks to the external price prediction service.
package ml

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/estatoai/estato/internal/domain/prediction"
)

// Client posts feature payloads to the model's /predict endpoint. The
// model is a black box: any network failure, non-2xx status, or
// malformed body is an error and nothing is retried.
type Client struct {
	endpoint string
	http     *http.Client
}

var _ prediction.Client = (*Client)(nil)

// NewClient creates a reusable HTTP client for the given model endpoint.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

type predictResponse struct {
	PredictedPrice *float64 `json:"predicted_price"`
	Error          string   `json:"error"`
}

// Predict requests a price estimate for the given features.
func (c *Client) Predict(ctx context.Context, features prediction.FeatureSet) (float64, error) {
	body, err := json.Marshal(features)
	if err != nil {
		return 0, fmt.Errorf("marshal features: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/predict", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", prediction.ErrModelUnavailable, err)
	}
	defer resp.Body.Close()

	var decoded predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return 0, fmt.Errorf("%w: %v", prediction.ErrMalformedResponse, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decoded.Error != "" {
			return 0, fmt.Errorf("model error: %s", decoded.Error)
		}
		return 0, fmt.Errorf("unexpected status %s", resp.Status)
	}
	if decoded.PredictedPrice == nil {
		if decoded.Error != "" {
			return 0, fmt.Errorf("model error: %s", decoded.Error)
		}
		return 0, fmt.Errorf("%w: missing predicted_price", prediction.ErrMalformedResponse)
	}

	return *decoded.PredictedPrice, nil
}
