// Package client is a Go client for the project insights API. It speaks the
// bare-JSON contract endpoints; failures are logged and never retried.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"deal-insights-be/internal/dto"
	"deal-insights-be/internal/pkg/logger"
	"deal-insights-be/pkg/filter"
)

// HTTPError is returned for any non-2xx response.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("API Error: %d %s", e.StatusCode, strings.TrimSpace(e.Body))
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.ILogger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogger(l logger.ILogger) Option {
	return func(c *Client) { c.logger = l }
}

// New builds a client for baseURL, e.g. "http://localhost:8000/api".
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Query encodes a selection plus search text in the comma-joined form the
// server reads.
func Query(sel *filter.Selection, searchText string) url.Values {
	q := url.Values{}
	if sel != nil {
		for _, f := range filter.Facets {
			if values := sel.Values(f); len(values) > 0 {
				q.Set(f.String(), strings.Join(values, ","))
			}
		}
	}
	if searchText != "" {
		q.Set("q", searchText)
	}
	return q
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("APIClient", "Request failed", map[string]interface{}{
			"method": method, "path": path, "error": err.Error(),
		})
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("APIClient", "Failed to read response", map[string]interface{}{
			"method": method, "path": path, "error": err.Error(),
		})
		return fmt.Errorf("%s %s: reading body: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
		c.logger.Error("APIClient", "Unexpected status", map[string]interface{}{
			"method": method, "path": path, "status": resp.StatusCode, "error": httpErr.Error(),
		})
		return httpErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.logger.Error("APIClient", "Failed to decode response", map[string]interface{}{
			"method": method, "path": path, "error": err.Error(),
		})
		return fmt.Errorf("%s %s: decoding body: %w", method, path, err)
	}
	return nil
}

func (c *Client) Projects(ctx context.Context, sel *filter.Selection, searchText string) ([]dto.ProjectResponse, error) {
	var out []dto.ProjectResponse
	err := c.do(ctx, http.MethodGet, "/projects", Query(sel, searchText), nil, &out)
	return out, err
}

func (c *Client) Project(ctx context.Context, id int) (*dto.ProjectResponse, error) {
	var out dto.ProjectResponse
	if err := c.do(ctx, http.MethodGet, "/projects/"+strconv.Itoa(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SimilarProjects asks for up to limit related projects; limit <= 0 uses the server default.
func (c *Client) SimilarProjects(ctx context.Context, id, limit int) ([]dto.ProjectResponse, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out []dto.ProjectResponse
	err := c.do(ctx, http.MethodGet, "/projects/"+strconv.Itoa(id)+"/similar", q, nil, &out)
	return out, err
}

func (c *Client) Stats(ctx context.Context, sel *filter.Selection) (*dto.StatsResponse, error) {
	var out dto.StatsResponse
	if err := c.do(ctx, http.MethodGet, "/stats", Query(sel, ""), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FilterOptions(ctx context.Context) (*dto.FilterOptionsResponse, error) {
	var out dto.FilterOptionsResponse
	if err := c.do(ctx, http.MethodGet, "/filters", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Search(ctx context.Context, query string) ([]dto.ProjectResponse, error) {
	var out []dto.ProjectResponse
	err := c.do(ctx, http.MethodPost, "/search", nil, dto.SearchRequest{Query: query}, &out)
	return out, err
}

func (c *Client) Chat(ctx context.Context, message string, history []dto.ChatHistoryItem) (*dto.ChatResponse, error) {
	var out dto.ChatResponse
	req := dto.ChatRequest{Message: message, History: history}
	if err := c.do(ctx, http.MethodPost, "/chat", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Dashboard(ctx context.Context, sel *filter.Selection, searchText string) (*dto.DashboardResponse, error) {
	var out dto.DashboardResponse
	if err := c.do(ctx, http.MethodGet, "/dashboard", Query(sel, searchText), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
