package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/wordfield/wordfield/pkg/cache"
	"github.com/wordfield/wordfield/pkg/errors"
	"github.com/wordfield/wordfield/pkg/observability"
)

const httpTimeout = 10 * time.Second

// cacheNamespace keys remote source bodies separately from layouts and
// artifacts sharing the same cache directory.
const cacheNamespace = "source"

// DefaultTTL is how long fetched source bodies stay fresh.
const DefaultTTL = 24 * time.Hour

// Client fetches remote word sources with caching and retry.
type Client struct {
	http    *http.Client
	cache   cache.Cache
	keyer   cache.Keyer
	ttl     time.Duration
	headers map[string]string
}

// Option configures a Client.
type Option func(*Client)

// WithCache sets the response cache. Defaults to a null cache.
func WithCache(c cache.Cache, k cache.Keyer) Option {
	return func(cl *Client) {
		if c != nil {
			cl.cache = c
		}
		if k != nil {
			cl.keyer = k
		}
	}
}

// WithTTL sets how long cached bodies stay fresh.
func WithTTL(ttl time.Duration) Option {
	return func(cl *Client) { cl.ttl = ttl }
}

// WithHeaders sets default headers applied to all requests.
func WithHeaders(headers map[string]string) Option {
	return func(cl *Client) { cl.headers = headers }
}

// WithHTTPClient replaces the underlying HTTP client. Mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(cl *Client) {
		if h != nil {
			cl.http = h
		}
	}
}

// NewClient creates a fetching client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:  &http.Client{Timeout: httpTimeout},
		cache: cache.NewNullCache(),
		keyer: cache.NewDefaultKeyer(),
		ttl:   DefaultTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchText performs an HTTP GET and returns the response body.
// Cached bodies are served without touching the network. If refresh is
// true the cache is bypassed and the fresh body overwrites it.
func (c *Client) FetchText(ctx context.Context, rawURL string, refresh bool) ([]byte, error) {
	if err := errors.ValidateURL(rawURL); err != nil {
		return nil, err
	}

	key := c.keyer.HTTPKey(cacheNamespace, rawURL)
	if !refresh {
		if data, ok, _ := c.cache.Get(ctx, key); ok {
			observability.Cache().OnCacheHit(ctx, "http")
			return data, nil
		}
		observability.Cache().OnCacheMiss(ctx, "http")
	}

	var body []byte
	err := cache.RetryWithBackoff(ctx, func() error {
		var ferr error
		body, ferr = c.doRequest(ctx, rawURL)
		return ferr
	})
	if err != nil {
		return nil, err
	}

	if serr := c.cache.Set(ctx, key, body, c.ttl); serr == nil {
		observability.Cache().OnCacheSet(ctx, "http", len(body))
	}
	return body, nil
}

func (c *Client) doRequest(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	host, path := splitURL(rawURL)
	observability.HTTP().OnRequest(ctx, http.MethodGet, host, path)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, http.MethodGet, host, path, err)
		return nil, cache.Retryable(fmt.Errorf("%w: %v", cache.ErrNetwork, err))
	}
	defer resp.Body.Close()

	observability.HTTP().OnResponse(ctx, http.MethodGet, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		return nil, err
	}
	return io.ReadAll(resp.Body)
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return cache.ErrNotFound
	case code >= 500 || code == http.StatusTooManyRequests:
		return cache.Retryable(fmt.Errorf("%w: status %d", cache.ErrNetwork, code))
	default:
		return fmt.Errorf("%w: status %d", cache.ErrNetwork, code)
	}
}

func splitURL(rawURL string) (host, path string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL, ""
	}
	return u.Host, u.Path
}
