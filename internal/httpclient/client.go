// Package httpclient provides the shared HTTP client used by fact providers.
// It wraps net/http with a tuned transport, default headers, and a bounded
// per-request timeout. Retry policy deliberately lives above this layer:
// every provider fetch is a single attempt.
package httpclient

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"
)

// Config configures the shared HTTP client
type Config struct {
	Timeout             time.Duration     `yaml:"timeout,omitempty"`
	UserAgent           string            `yaml:"user_agent,omitempty"`
	Headers             map[string]string `yaml:"headers,omitempty"`
	MaxIdleConns        int               `yaml:"max_idle_conns,omitempty"`
	MaxIdleConnsPerHost int               `yaml:"max_idle_conns_per_host,omitempty"`
	IdleConnTimeout     time.Duration     `yaml:"idle_conn_timeout,omitempty"`
	TLSHandshakeTimeout time.Duration     `yaml:"tls_handshake_timeout,omitempty"`
}

// Metrics tracks client usage counters
type Metrics struct {
	TotalRequests int64 `json:"total_requests"`
	FailedReqs    int64 `json:"failed_requests"`
}

// Client is a reusable HTTP client shared by all providers. It carries no
// per-request state and is safe for concurrent use.
type Client struct {
	client       *http.Client
	config       Config
	requestCount int64
	errorCount   int64
}

// New creates a client with sensible defaults applied to any zero fields
func New(config Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	if config.MaxIdleConns == 0 {
		config.MaxIdleConns = 100
	}
	if config.MaxIdleConnsPerHost == 0 {
		config.MaxIdleConnsPerHost = 10
	}
	if config.IdleConnTimeout == 0 {
		config.IdleConnTimeout = 90 * time.Second
	}
	if config.TLSHandshakeTimeout == 0 {
		config.TLSHandshakeTimeout = 10 * time.Second
	}
	if config.Headers == nil {
		config.Headers = make(map[string]string)
	}
	if config.UserAgent != "" {
		config.Headers["User-Agent"] = config.UserAgent
	} else {
		config.Headers["User-Agent"] = "animal-fact-kit/1.0"
	}

	return &Client{
		client: &http.Client{
			Timeout:   config.Timeout,
			Transport: createTransport(config),
		},
		config: config,
	}
}

// createTransport creates an http.Transport with the specified configuration
func createTransport(config Config) *http.Transport {
	return &http.Transport{
		MaxIdleConns:        config.MaxIdleConns,
		MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
		IdleConnTimeout:     config.IdleConnTimeout,
		TLSHandshakeTimeout: config.TLSHandshakeTimeout,
		ForceAttemptHTTP2:   true,
		Proxy:               http.ProxyFromEnvironment,
	}
}

// Do executes the request with the configured default headers and timeout.
// The context cancels the upstream call promptly when the caller goes away.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	atomic.AddInt64(&c.requestCount, 1)

	for key, value := range c.config.Headers {
		if req.Header.Get(key) == "" {
			req.Header.Set(key, value)
		}
	}

	resp, err := c.client.Do(req.WithContext(ctx))
	if err != nil {
		atomic.AddInt64(&c.errorCount, 1)
	}
	return resp, err
}

// Get issues a GET request to the given URL
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, req)
}

// GetMetrics returns current client usage counters
func (c *Client) GetMetrics() Metrics {
	return Metrics{
		TotalRequests: atomic.LoadInt64(&c.requestCount),
		FailedReqs:    atomic.LoadInt64(&c.errorCount),
	}
}

// Timeout returns the per-request timeout bound
func (c *Client) Timeout() time.Duration {
	return c.config.Timeout
}
