// Package client is the Go API client for the shelter backend. It mirrors
// the data-access contract the web views rely on: a generic JSON fetch
// layer plus a per-endpoint collection resource.
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
)

// TokenSource supplies the CSRF token for a request. It is consulted on
// every call, never cached, so a rotated token is always honored.
type TokenSource func() string

// Config configures a Client.
type Config struct {
	// BaseURL is the server root, e.g. "http://localhost:8080".
	BaseURL string
	// Token supplies the CSRF token per call. Optional.
	Token TokenSource
	// HTTPClient defaults to http.DefaultClient.
	HTTPClient *http.Client
}

// Client performs JSON requests against the API. Each call issues exactly
// one request: no retries, no client-side caching.
type Client struct {
	baseURL string
	token   TokenSource
	http    *http.Client
}

// New creates a new Client instance
func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("client: BaseURL is required")
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("client: invalid BaseURL: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL: base,
		token:   cfg.Token,
		http:    httpClient,
	}, nil
}

// APIError is a non-2xx response normalized to its human-readable messages.
type APIError struct {
	Status   int
	Messages []string
}

func (e *APIError) Error() string {
	if len(e.Messages) > 0 {
		return strings.Join(e.Messages, ", ")
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// errorsBody is the failure shape the server emits.
type errorsBody struct {
	Errors []string `json:"errors"`
}

// Do performs one JSON request. body, when non-nil, is marshaled as the
// request body; out, when non-nil, receives the decoded response. A 204
// returns without touching out. Non-2xx responses become an *APIError
// built from the body's errors array, tolerating absent or non-JSON
// bodies.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: marshal request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("client: new request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != nil {
		req.Header.Set("X-CSRF-Token", c.token())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("client: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var parsed errorsBody
		if raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)); readErr == nil {
			if json.Unmarshal(raw, &parsed) == nil {
				apiErr.Messages = parsed.Errors
			}
		}
		return apiErr
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}
	return nil
}
