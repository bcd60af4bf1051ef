// Package upstream holds the typed HTTP client for the lending-platform API
// and one façade per backend resource. Every outbound call in the console
// funnels through Client; façades add paths and types, never behavior.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/lendwise/admin-console/internal/api/metrics"
	"github.com/lendwise/admin-console/internal/core/domain"
	"github.com/lendwise/admin-console/internal/core/ports"
)

const apiPrefix = "/api/v1"

// maxErrorBody caps how much of a failed response is read looking for a
// server-provided message.
const maxErrorBody = 1 << 20

// APIError carries a non-2xx upstream response. Message is the server's own
// message field when one was parseable, else a synthesized status line.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// envelope is the upstream's uniform response shape.
type envelope struct {
	Success bool            `json:"success"`
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Option adjusts a single outbound request.
type Option func(*http.Request)

// WithHeader overrides or adds one request header.
func WithHeader(key, value string) Option {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

// Client is the single choke point for upstream calls: request construction,
// bearer-token attachment, JSON (de)serialization, and error translation.
// One attempt per call; no retry, no backoff.
type Client struct {
	base string
	http *http.Client
	log  zerolog.Logger
}

// New builds a Client against base (scheme://host, no trailing slash).
// httpClient may carry a timeout; nil means http.DefaultClient.
func New(base string, httpClient *http.Client, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{base: base, http: httpClient, log: log}
}

// Do issues method against apiPrefix+path, serializing body as JSON when
// non-nil and unmarshalling the envelope's data field into out when non-nil.
// The session's bearer token is attached when present; Content-Type defaults
// to application/json unless an Option overrides it.
func (c *Client) Do(ctx context.Context, s *domain.Session, method, path string, body, out any, opts ...Option) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+apiPrefix+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}
	for _, opt := range opts {
		opt(req)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.UpstreamLatencySeconds.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("upstream request failed")
		metrics.UpstreamErrorsTotal.WithLabelValues(method, "network").Inc()
		return fmt.Errorf("upstream request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.translateError(resp, s, method, path)
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(method, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

// DoRaw is the parallel binary path used for spreadsheet downloads: same
// auth behavior as Do, but the body is returned verbatim instead of being
// decoded as an envelope.
func (c *Client) DoRaw(ctx context.Context, s *domain.Session, method, path string, query url.Values) (*ports.BinaryPayload, error) {
	target := c.base + apiPrefix + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if s.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.UpstreamLatencySeconds.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("upstream download failed")
		metrics.UpstreamErrorsTotal.WithLabelValues(method, "network").Inc()
		return nil, fmt.Errorf("upstream request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.translateError(resp, s, method, path)
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(method, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	return &ports.BinaryPayload{Data: data, ContentType: resp.Header.Get("Content-Type")}, nil
}

// translateError turns a non-2xx response into an error. An authenticated
// call bounced with 401 means the upstream revoked the token, which the
// error handler converts into a forced re-login.
func (c *Client) translateError(resp *http.Response, s *domain.Session, method, path string) error {
	metrics.UpstreamErrorsTotal.WithLabelValues(method, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	if resp.StatusCode == http.StatusUnauthorized && s.Authenticated() {
		c.log.Warn().Str("method", method).Str("path", path).Msg("upstream rejected session token")
		_, _ = io.Copy(io.Discard, resp.Body)
		return domain.ErrSessionExpired
	}

	msg := ""
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var env envelope
	if json.Unmarshal(raw, &env) == nil && env.Message != "" {
		msg = env.Message
	}
	if msg == "" {
		msg = fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)
	}

	c.log.Warn().
		Int("status", resp.StatusCode).
		Str("method", method).
		Str("path", path).
		Str("message", msg).
		Msg("upstream call failed")

	return &APIError{Status: resp.StatusCode, Message: msg}
}
