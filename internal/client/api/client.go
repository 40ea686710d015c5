// Package api implements the HTTP transport client for the backend: URL
// building, JSON encoding, auth-header injection and uniform error
// normalization. Callers receive the envelope's data payload only.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"authkit/internal/logging"
)

// TokenSource yields the currently stored bearer token. It is consulted
// fresh on every request, never cached across calls. An empty token with a
// nil error means "no token stored" and suppresses the Authorization header.
type TokenSource interface {
	Load(ctx context.Context) (string, error)
}

// envelope is the uniform wrapper around every API response body.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
}

// errorBody is the (optional) shape of a non-2xx response body.
type errorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Client issues JSON requests against a fixed base URL.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client (tests, custom
// transports).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the structured logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithTimeout bounds every request. Zero keeps requests unbounded, which is
// the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// New builds a Client for baseURL. tokens supplies the bearer token per
// request and may not be nil.
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		tokens:  tokens,
		log:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues a GET request and decodes the envelope data into out.
func (c *Client) Get(ctx context.Context, endpoint string, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, out)
}

// Post issues a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, body any, out any) error {
	return c.do(ctx, http.MethodPost, endpoint, body, out)
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, endpoint string, body any, out any) error {
	return c.do(ctx, http.MethodPatch, endpoint, body, out)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, endpoint string, body any, out any) error {
	return c.do(ctx, http.MethodPut, endpoint, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, endpoint string, out any) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, out)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	token, err := c.tokens.Load(ctx)
	if err != nil {
		return fmt.Errorf("load token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)

	log := c.log.With("method", method, "endpoint", endpoint, "req_id", reqID)
	log.Debug(ctx, "sending request")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error(ctx, "request failed", "error", err)
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	return c.handleResponse(ctx, log, resp, out)
}

// handleResponse normalizes non-2xx statuses into *Error and unwraps the
// response envelope for success, decoding its data payload into out.
func (c *Client) handleResponse(ctx context.Context, log logging.Logger, resp *http.Response, out any) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{
			Message: "Request failed",
			Status:  resp.StatusCode,
		}

		var eb errorBody
		if jsonErr := json.Unmarshal(raw, &eb); jsonErr == nil && eb.Message != "" {
			apiErr.Message = eb.Message
			apiErr.Code = eb.Code
		} else if text := http.StatusText(resp.StatusCode); text != "" {
			apiErr.Message = text
		}

		log.Debug(ctx, "request rejected", "status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode response envelope: %w", err)
	}
	if len(env.Data) == 0 {
		return fmt.Errorf("response envelope has no data")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}
