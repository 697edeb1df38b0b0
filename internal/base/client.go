// Package base provides shared HTTP infrastructure for the Notion CMS client.
package base

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/http2"
)

const (
	// DefaultTimeout for API requests
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies the client to the API
	DefaultUserAgent = "notion-cms-mcp-server/1.0"

	// MaxResponseSize caps how much of a response body is read
	MaxResponseSize = 16 << 20
)

// sensitiveParams are query parameters redacted from logged URLs
var sensitiveParams = []string{"api_key"}

// Client provides the HTTP plumbing shared by all API operations.
// It issues exactly one request per call: no retries, no caching.
type Client struct {
	HTTPClient *http.Client
	Logger     *slog.Logger
	UserAgent  string

	timeout time.Duration
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.HTTPClient = c
	}
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return func(client *Client) {
		client.Logger = l
	}
}

// WithUserAgent sets the User-Agent header sent with every request
func WithUserAgent(ua string) ClientOption {
	return func(client *Client) {
		client.UserAgent = ua
	}
}

// WithTimeout sets the timeout of the default HTTP client.
// It has no effect when WithHTTPClient is also given.
func WithTimeout(d time.Duration) ClientOption {
	return func(client *Client) {
		client.timeout = d
	}
}

// NewClient creates a new base client with default settings
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		Logger:    slog.Default(),
		UserAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = newHTTPClient(c.timeout, c.Logger)
	}

	return c
}

// Response is the raw result of a single GET.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the status is in the 2xx range.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Get performs a single HTTP GET and returns the status and body.
// A non-2xx status is not an error here; the caller decides how to map it.
func (c *Client) Get(ctx context.Context, reqURL string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	body, err := readAndClose(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.Logger.Debug("API request completed",
		"url", RedactURL(reqURL),
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration", time.Since(start))

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// RedactURL masks credential query parameters so the URL is safe to log.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid url>"
	}
	q := u.Query()
	changed := false
	for _, key := range sensitiveParams {
		if q.Has(key) {
			q.Set(key, "REDACTED")
			changed = true
		}
	}
	if changed {
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// readAndClose reads the response body and closes it.
// Bodies larger than MaxResponseSize are rejected.
func readAndClose(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	_ = resp.Body.Close()
	if err != nil {
		return nil, err
	}
	if len(body) > MaxResponseSize {
		return nil, fmt.Errorf("response exceeds %d bytes", MaxResponseSize)
	}
	return body, nil
}

// newHTTPClient creates an HTTP client with pooled connections and HTTP/2 enabled
func newHTTPClient(timeout time.Duration, logger *slog.Logger) *http.Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		IdleConnTimeout:       120 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
	}

	if err := http2.ConfigureTransport(transport); err != nil {
		logger.Warn("HTTP/2 unavailable, using HTTP/1.1", "error", err)
	}
	logger.Debug("HTTP client configured", "timeout", timeout)

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
