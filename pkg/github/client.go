// Package github provides a resilient client for the GitHub REST API,
// covering the release and tag operations relsweep needs.
//
// The client classifies HTTP responses into retry categories: rate-limited
// 403s are retried with linearly growing waits, transient failures (5xx,
// network errors) with a fixed delay, and 403/404 fail immediately. Every
// HTTP request issued, including retries, is reported to the registered
// [CallObserver].
package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/relsweep/relsweep/pkg/httputil"
)

const (
	defaultBaseURL    = "https://api.github.com"
	defaultPageSize   = 100
	defaultMaxRetries = 3
	defaultRetryDelay = 2 * time.Second

	httpTimeout = 10 * time.Second
)

var (
	// ErrNotFound is returned when a release, tag, or repository doesn't exist.
	// Callers decide whether this is fatal; it is usually a warning.
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden is returned for 403 responses that are not rate limits.
	// Never retried.
	ErrForbidden = errors.New("forbidden")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors,
	// 5xx responses) once retries are exhausted.
	ErrNetwork = errors.New("network error")
)

// CallObserver receives an event for every HTTP request the client issues.
// Retries count as separate calls. Implementations must be cheap; the client
// invokes the observer synchronously before each request.
type CallObserver interface {
	APICall(method, url string)
}

// Config holds client settings. Zero values are replaced with defaults.
type Config struct {
	Token      string        // bearer token; empty means unauthenticated
	BaseURL    string        // API root, overridable for tests
	MaxRetries int           // total attempts per call, including the first
	RetryDelay time.Duration // base delay between attempts
	PageSize   int           // releases per page when listing
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = defaultMaxRetries
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = defaultRetryDelay
	}
	if c.PageSize <= 0 {
		c.PageSize = defaultPageSize
	}
	return c
}

// Client issues single HTTP operations against the GitHub API with bounded
// retry and rate-limit backoff. It keeps no local cache and no state beyond
// the observer callback.
type Client struct {
	http     *http.Client
	cfg      Config
	observer CallObserver
}

// NewClient creates a Client with the given configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		http: &http.Client{Timeout: httpTimeout},
		cfg:  cfg.withDefaults(),
	}
}

// SetObserver registers the observer notified on every HTTP request.
// Pass nil to disable notifications.
func (c *Client) SetObserver(o CallObserver) {
	c.observer = o
}

// Do issues method url and returns the response body.
//
// Rate-limited responses are retried with a wait of RetryDelay×(attempt+1);
// other retryable failures wait a fixed RetryDelay. Both paths are bounded
// by MaxRetries attempts in total.
func (c *Client) Do(ctx context.Context, method, url string) ([]byte, error) {
	var body []byte
	policy := httputil.Policy{Attempts: c.cfg.MaxRetries, Delay: c.cfg.RetryDelay}

	err := httputil.Retry(ctx, policy, func() error {
		b, err := c.doOnce(ctx, method, url)
		if err != nil {
			return err
		}
		body = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

// doOnce performs a single attempt and classifies the response.
func (c *Client) doOnce(ctx context.Context, method, url string) ([]byte, error) {
	if c.observer != nil {
		c.observer.APICall(method, url)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &httputil.RetryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &httputil.RetryableError{Err: fmt.Errorf("%w: reading body: %v", ErrNetwork, err)}
	}

	if err := classifyStatus(resp, body); err != nil {
		return nil, err
	}
	return body, nil
}

// classifyStatus maps a response onto the error taxonomy. A nil return
// means success (200 or 204).
func classifyStatus(resp *http.Response, body []byte) error {
	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusNoContent:
		return nil
	case resp.StatusCode == http.StatusForbidden:
		if isRateLimited(resp, body) {
			return &httputil.RateLimitedError{Err: fmt.Errorf("%w: rate limited (status 403)", ErrNetwork)}
		}
		return fmt.Errorf("%w: status 403", ErrForbidden)
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	default:
		return &httputil.RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode)}
	}
}

// isRateLimited reports whether a 403 was caused by API throttling.
// GitHub signals this both in the error message body and by an exhausted
// X-RateLimit-Remaining header.
func isRateLimited(resp *http.Response, body []byte) bool {
	if resp.Header.Get("X-RateLimit-Remaining") == "0" {
		return true
	}
	return strings.Contains(strings.ToLower(string(body)), "rate limit")
}
