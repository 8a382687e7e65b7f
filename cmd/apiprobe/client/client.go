// Package client provides the HTTP client for communicating with the
// remote API.
//
// This package owns all outbound network interaction. It wraps a resty
// session configured with the API base URL, default headers, and a fixed
// request timeout, and exposes two operations:
//   - Ping: a best-effort connectivity check that never fails loudly
//   - GetWithParams: a fail-loud GET with typed query parameters
//
// The client owns one persistent connection pool, created at
// construction and released by Close. Callers are expected to defer
// Close so the pool is released on every exit path.
package client

import (
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	// DefaultTimeout is the fixed per-request timeout used when no
	// override is given.
	DefaultTimeout = 30 * time.Second

	// userAgent identifies the client in outbound requests.
	userAgent = "apiprobe/1.0"

	// probePath is the endpoint all operations target. The remote
	// service is expected to echo query parameters back as JSON
	// (httpbin-style).
	probePath = "/get"
)

// Client is the HTTP client for the remote API.
//
// The zero value is not usable; construct with New. The client holds the
// normalized base URL (trailing slashes stripped), the request timeout,
// and the owned resty session. It performs a single attempt per call:
// no retries, no backoff, no caching.
type Client struct {
	// baseURL is the normalized base URL of the remote API.
	// Never ends with a trailing slash.
	baseURL string

	// timeout is the fixed request timeout. Always positive.
	timeout time.Duration

	// rc is the underlying resty session carrying the connection pool
	// and default headers.
	rc *resty.Client

	// log receives request/response diagnostics. Never nil.
	log *zap.Logger

	closeOnce sync.Once
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithTimeout overrides the default request timeout. Non-positive values
// are ignored and the default is retained.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger attaches a logger for request diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a client scoped to the given base URL.
//
// The base URL is normalized by stripping any trailing slashes, so both
// "https://x" and "https://x/" produce requests against "https://x/get".
// The session is created with default headers identifying the client and
// requesting JSON, and with the configured timeout applied to every
// request.
//
// Example:
//
//	c := client.New("https://httpbin.org", client.WithTimeout(10*time.Second))
//	defer c.Close()
//	result := c.Ping(ctx)
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: DefaultTimeout,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.rc = resty.New().
		SetBaseURL(c.baseURL).
		SetTimeout(c.timeout).
		SetHeaders(map[string]string{
			"User-Agent":   userAgent,
			"Accept":       "application/json",
			"Content-Type": "application/json",
		})

	return c
}

// BaseURL returns the normalized base URL the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases the underlying connection pool. Safe to call more than
// once; only the first call has an effect.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.rc.GetClient().CloseIdleConnections()
	})
}
