package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Yinka-911/cervical-cancer-classifier/internal/model"
	"github.com/Yinka-911/cervical-cancer-classifier/pkg/errors"
	"github.com/Yinka-911/cervical-cancer-classifier/pkg/httputil"
)

const (
	DefaultTimeout = 10 * time.Second
	predictPath    = "/predict"

	// error bodies are only read for their detail message
	maxErrorBody = 8 << 10
)

// Config is fixed for the life of a Client. BaseURL may be the service root
// or the full /predict endpoint.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// ReadyStatus is the service's /health/ready reply.
type ReadyStatus struct {
	Status    string `json:"status"`
	ModelType string `json:"model_type"`
	Features  int    `json:"features"`
}

// Client calls the prediction service. It never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	base := strings.TrimRight(cfg.BaseURL, "/")
	base = strings.TrimSuffix(base, predictPath)

	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// PredictURL is where records are submitted.
func (c *Client) PredictURL() string {
	return c.baseURL + predictPath
}

// Predict submits one record. Network failures, timeouts and non-2xx
// replies come back as a transport error; an undecodable 2xx body is
// unexpected.
func (c *Client) Predict(ctx context.Context, record *model.PatientRecord) (*model.PredictionResult, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Unexpected(fmt.Errorf("failed to marshal record: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.PredictURL(), bytes.NewReader(data))
	if err != nil {
		return nil, errors.Transport(fmt.Errorf("failed to build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Transport(err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var result model.PredictionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Unexpected(fmt.Errorf("failed to decode response: %w", err))
	}

	return &result, nil
}

// Health asks the service whether a model is loaded.
func (c *Client) Health(ctx context.Context) (*ReadyStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health/ready", nil)
	if err != nil {
		return nil, errors.Transport(fmt.Errorf("failed to build request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Transport(err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var status ReadyStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, errors.Unexpected(fmt.Errorf("failed to decode response: %w", err))
	}

	return &status, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	detail := httputil.DetailMessage(body)
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}
	return errors.Transport(fmt.Errorf("status %d: %s", resp.StatusCode, detail))
}
