package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"practice-coach/work-flows/models"
)

const (
	DefaultBaseURL     = "http://localhost:8000"
	PracticeCoachPath  = "/practice-coach"
	ContentTypeHeader  = "application/json"
	maxErrorBodyLength = 64 << 10
)

// HTTPError is returned for any non-2xx response. Body is the raw response text.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

type practiceClient struct {
	client  *http.Client
	baseURL string
	path    string
}

type Option func(*practiceClient)

func WithHTTPClient(hc *http.Client) Option {
	return func(pc *practiceClient) {
		if hc != nil {
			pc.client = hc
		}
	}
}

func WithPath(path string) Option {
	return func(pc *practiceClient) {
		if path == "" {
			return
		}
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		pc.path = path
	}
}

func NewPracticeClient(baseURL string, opts ...Option) *practiceClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	pc := &practiceClient{
		client:  &http.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		path:    PracticeCoachPath,
	}
	for _, opt := range opts {
		opt(pc)
	}
	return pc
}

// Endpoint returns the absolute URL requests are sent to.
func (pc *practiceClient) Endpoint() string {
	return pc.baseURL + pc.path
}

func (pc *practiceClient) GeneratePractice(ctx context.Context, practiceReq models.PracticeRequest) (*models.PracticeResponse, error) {
	jsonData, err := json.Marshal(practiceReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, pc.Endpoint(), bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", ContentTypeHeader)

	resp, err := pc.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLength))
		if err != nil {
			return nil, fmt.Errorf("failed to read error response: %w", err)
		}
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var practiceResp models.PracticeResponse
	if err := json.NewDecoder(resp.Body).Decode(&practiceResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &practiceResp, nil
}
