// Copyright 2026 The Volttron TEC Authors
// SPDX-License-Identifier: Apache-2.0

// Package platform is the typed HTTP client for the supervisory
// backend of a VOLTTRON TEC deployment. One method per backend
// capability; each method issues exactly one request and returns a
// typed payload or a categorized *Error. No retries, no caching —
// refresh policy belongs to the console's orchestration layer, not
// here.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// maxResponseSize bounds response body reads: 32 MB. The log endpoint
// returns the whole platform log as one string, so the bound is
// generous; it exists only to keep a misbehaving backend from
// exhausting memory.
const maxResponseSize int64 = 32 << 20

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// BaseURL is the backend base address, e.g. "http://172.23.68.187:8000".
	BaseURL string
	// HTTPClient is used for all requests. If nil, http.DefaultClient is used.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Client talks to the supervisory backend. It is safe for use from a
// single logical thread of control; the console's bubbletea loop never
// calls it concurrently for the same resource.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a backend client. The base URL is validated once
// here; request URLs are built by concatenation against the trimmed
// string form to avoid re-encoding surprises from url.URL.String().
func NewClient(config ClientConfig) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("platform: BaseURL is required")
	}
	if _, err := url.Parse(config.BaseURL); err != nil {
		return nil, fmt.Errorf("platform: invalid BaseURL %q: %w", config.BaseURL, err)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// ListAgents returns the installed agents.
func (c *Client) ListAgents(ctx context.Context) ([]Agent, error) {
	var response struct {
		Agents []Agent `json:"agents"`
	}
	if err := c.call(ctx, http.MethodGet, "/agents", nil, nil, &response); err != nil {
		return nil, err
	}
	return response.Agents, nil
}

// ListStatuses returns the status snapshot for all agents, keyed by
// identity.
func (c *Client) ListStatuses(ctx context.Context) (map[string]AgentStatus, error) {
	var response struct {
		Statuses map[string]AgentStatus `json:"statuses"`
	}
	if err := c.call(ctx, http.MethodGet, "/agent_statuses", nil, nil, &response); err != nil {
		return nil, err
	}
	return response.Statuses, nil
}

// StartAgent starts the agent with the given identity.
func (c *Client) StartAgent(ctx context.Context, identity string) error {
	return c.call(ctx, http.MethodPost, agentPath(identity, "start"), nil, nil, nil)
}

// StopAgent stops the agent with the given identity.
func (c *Client) StopAgent(ctx context.Context, identity string) error {
	return c.call(ctx, http.MethodPost, agentPath(identity, "stop"), nil, nil, nil)
}

// RemoveAgent uninstalls the agent with the given identity.
func (c *Client) RemoveAgent(ctx context.Context, identity string) error {
	return c.call(ctx, http.MethodDelete, agentPath(identity, "remove"), nil, nil, nil)
}

// InstallAgent installs a new agent from a source directory. Returns
// the backend's confirmation message.
func (c *Client) InstallAgent(ctx context.Context, request InstallRequest) (string, error) {
	var response struct {
		Message string `json:"message"`
	}
	if err := c.call(ctx, http.MethodPost, "/install-agent", nil, request, &response); err != nil {
		return "", err
	}
	return response.Message, nil
}

// ListConfigs returns the config names stored for the agent.
func (c *Client) ListConfigs(ctx context.Context, identity string) ([]string, error) {
	var response struct {
		Configs []string `json:"configs"`
	}
	if err := c.call(ctx, http.MethodGet, agentPath(identity, "configs"), nil, nil, &response); err != nil {
		return nil, err
	}
	return response.Configs, nil
}

// GetConfig returns the raw text body of one named config.
func (c *Client) GetConfig(ctx context.Context, identity, name string) (string, error) {
	var response struct {
		Content string `json:"content"`
	}
	if err := c.call(ctx, http.MethodGet, configPath(identity, name), nil, nil, &response); err != nil {
		return "", err
	}
	return response.Content, nil
}

// SaveConfig replaces the body of an existing named config.
func (c *Client) SaveConfig(ctx context.Context, identity, name, content string) error {
	body := map[string]string{"content": content}
	return c.call(ctx, http.MethodPost, configPath(identity, name), nil, body, nil)
}

// AddConfig stores a new config for the agent from a file path on the
// backend host. The endpoint keeps its historical trailing slash.
func (c *Client) AddConfig(ctx context.Context, identity, name, path string) error {
	body := map[string]string{
		"agent_identity": identity,
		"config_name":    name,
		"config_path":    path,
	}
	return c.call(ctx, http.MethodPost, agentPath(identity, "configs")+"/", nil, body, nil)
}

// DeleteConfig removes a named config from the agent's config store.
func (c *Client) DeleteConfig(ctx context.Context, identity, name string) error {
	return c.call(ctx, http.MethodDelete, configPath(identity, name), nil, nil, nil)
}

// SubmitExperiment submits a new experiment draft. Returns the
// experiment ID echoed by the backend.
func (c *Client) SubmitExperiment(ctx context.Context, submission ExperimentSubmission) (string, error) {
	var response struct {
		ExperimentID string `json:"experiment_id"`
	}
	if err := c.call(ctx, http.MethodPost, "/experiments/submit", nil, submission, &response); err != nil {
		return "", err
	}
	return response.ExperimentID, nil
}

// AuthorizeExperiment records supervisor authorization for a submitted
// experiment. The supervisor name travels as a query parameter (the
// backend's historical contract, British spelling included).
func (c *Client) AuthorizeExperiment(ctx context.Context, experimentID, supervisorName string) (string, error) {
	query := url.Values{"supervisor_name": {supervisorName}}
	var response struct {
		Message string `json:"message"`
	}
	path := "/experiments/" + url.PathEscape(experimentID) + "/authorise"
	if err := c.call(ctx, http.MethodPost, path, query, nil, &response); err != nil {
		return "", err
	}
	return response.Message, nil
}

// FinalizeExperiment marks an authorized experiment ready to run.
func (c *Client) FinalizeExperiment(ctx context.Context, experimentID string, readiness ExperimentReadiness) (string, error) {
	var response struct {
		Message string `json:"message"`
	}
	path := "/experiments/" + url.PathEscape(experimentID) + "/ready"
	if err := c.call(ctx, http.MethodPost, path, nil, readiness, &response); err != nil {
		return "", err
	}
	return response.Message, nil
}

// GetLog returns the platform log as one raw multi-line string.
func (c *Client) GetLog(ctx context.Context) (string, error) {
	var response struct {
		Log string `json:"log"`
	}
	if err := c.call(ctx, http.MethodGet, "/log", nil, nil, &response); err != nil {
		return "", err
	}
	return response.Log, nil
}

func agentPath(identity, suffix string) string {
	return "/agents/" + url.PathEscape(identity) + "/" + suffix
}

func configPath(identity, name string) string {
	return agentPath(identity, "configs") + "/" + url.PathEscape(name)
}

// call performs one HTTP request and decodes the JSON response into
// result (skipped when result is nil). On non-2xx it extracts the
// backend's `detail` string into a *Error; request-level failures come
// back as transport errors.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, requestBody, result any) error {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return fmt.Errorf("platform: failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return fmt.Errorf("platform: failed to create request: %w", err)
	}
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		c.logger.Debug("backend request failed", "method", method, "path", path, "error", err)
		return Transport(fmt.Errorf("platform: request to %s %s failed: %w", method, path, err))
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
	if err != nil {
		return Transport(fmt.Errorf("platform: failed to read response body: %w", err))
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		// All backend error responses share the FastAPI shape:
		// {"detail": "..."}. Non-JSON bodies yield an empty detail and
		// the caller falls back to the generic message.
		var failure struct {
			Detail string `json:"detail"`
		}
		_ = json.Unmarshal(responseBody, &failure)
		c.logger.Debug("backend returned error",
			"method", method, "path", path,
			"status", response.StatusCode, "detail", failure.Detail,
		)
		return Backend(response.StatusCode, failure.Detail)
	}

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(responseBody, result); err != nil {
		return Transport(fmt.Errorf("platform: failed to parse %s %s response: %w", method, path, err))
	}
	return nil
}
