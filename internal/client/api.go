// Package client talks to the analysis API and mirrors its records in local collections.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	models "analysisdesk/internal/domain/models/analysis"
)

// DefaultTimeout is the default HTTP timeout for API requests
const DefaultTimeout = 15 * time.Second

// APIError is a problem response returned by the API
type APIError struct {
	Status    int    `json:"status"`
	Title     string `json:"title"`
	Detail    string `json:"detail"`
	RequestID string `json:"request_id"`
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error (status %d): %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("api error (status %d)", e.Status)
}

// IsNotFound reports whether err is a 404 problem response
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsValidation reports whether err is a 400 problem response
func IsValidation(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest
}

// APIClient calls the analysis HTTP API
type APIClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures an APIClient
type Option func(*APIClient)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(a *APIClient) { a.httpClient = c }
}

// WithToken sends a bearer token on every request
func WithToken(token string) Option {
	return func(a *APIClient) { a.token = token }
}

// NewAPIClient creates a client for the API served at baseURL
func NewAPIClient(baseURL string, opts ...Option) *APIClient {
	c := &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do sends body as JSON and decodes a successful response into out (when non-nil)
func (c *APIClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		if len(data) > 0 {
			// best effort: non-problem bodies still yield the status
			_ = json.Unmarshal(data, apiErr)
			apiErr.Status = resp.StatusCode
		}
		return apiErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// ListProjects retrieves every project, most recently created first
func (c *APIClient) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := c.do(ctx, http.MethodGet, "/api/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject retrieves a project by ID
func (c *APIClient) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	var project models.Project
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/projects/%d", id), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateProject posts a wire create body and returns the canonical record
func (c *APIClient) CreateProject(ctx context.Context, body any) (*models.Project, error) {
	var project models.Project
	if err := c.do(ctx, http.MethodPost, "/api/projects", body, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject sends a partial update and returns the canonical record
func (c *APIClient) UpdateProject(ctx context.Context, id int64, patch map[string]any) (*models.Project, error) {
	var project models.Project
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/projects/%d", id), patch, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject deletes a project
func (c *APIClient) DeleteProject(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/projects/%d", id), nil, nil)
}

// ProjectStats retrieves the per-status project counts
func (c *APIClient) ProjectStats(ctx context.Context) (*models.ProjectStats, error) {
	var stats models.ProjectStats
	if err := c.do(ctx, http.MethodGet, "/api/projects/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ListStakeholders retrieves the stakeholders of one project
func (c *APIClient) ListStakeholders(ctx context.Context, projectID int64) ([]models.Stakeholder, error) {
	query := url.Values{"projectId": {fmt.Sprint(projectID)}}
	var stakeholders []models.Stakeholder
	if err := c.do(ctx, http.MethodGet, "/api/stakeholders?"+query.Encode(), nil, &stakeholders); err != nil {
		return nil, err
	}
	return stakeholders, nil
}

// GetStakeholder retrieves a stakeholder by ID
func (c *APIClient) GetStakeholder(ctx context.Context, id int64) (*models.Stakeholder, error) {
	var stakeholder models.Stakeholder
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/stakeholders/%d", id), nil, &stakeholder); err != nil {
		return nil, err
	}
	return &stakeholder, nil
}

// CreateStakeholder posts a wire create body and returns the canonical record
func (c *APIClient) CreateStakeholder(ctx context.Context, body any) (*models.Stakeholder, error) {
	var stakeholder models.Stakeholder
	if err := c.do(ctx, http.MethodPost, "/api/stakeholders", body, &stakeholder); err != nil {
		return nil, err
	}
	return &stakeholder, nil
}

// UpdateStakeholder sends a partial update and returns the canonical record
func (c *APIClient) UpdateStakeholder(ctx context.Context, id int64, patch map[string]any) (*models.Stakeholder, error) {
	var stakeholder models.Stakeholder
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/stakeholders/%d", id), patch, &stakeholder); err != nil {
		return nil, err
	}
	return &stakeholder, nil
}

// DeleteStakeholder deletes a stakeholder
func (c *APIClient) DeleteStakeholder(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/stakeholders/%d", id), nil, nil)
}
