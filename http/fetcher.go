// Package http provides an HTTP-based implementation of lunagames.Fetcher.
// Requests carry browser headers because the Luna site rejects obvious bots;
// this lowers the rejection rate but does not guarantee a response.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/lunagames"
	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 20 * time.Second

// DefaultMaxBodySize caps how much of a response body is read.
const DefaultMaxBodySize = 10 << 20

// Browser identification sent with every request by default.
const (
	DefaultUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	DefaultAccept         = "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8"
	DefaultAcceptLanguage = "en-US,en;q=0.9"
)

// DefaultHeaders returns the browser header set sent with every request.
func DefaultHeaders() http.Header {
	h := make(http.Header)
	h.Set("User-Agent", DefaultUserAgent)
	h.Set("Accept", DefaultAccept)
	h.Set("Accept-Language", DefaultAcceptLanguage)
	return h
}

// Ensure Fetcher implements lunagames.Fetcher at compile time.
var _ lunagames.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page markup using plain HTTP GET requests.
// It does not execute JavaScript.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	headers     http.Header
	maxBodySize int64
	limiter     *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (20s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithHeader sets a request header, replacing any default value.
func WithHeader(key, value string) Option {
	return func(f *Fetcher) {
		f.headers.Set(key, value)
	}
}

// WithMaxBodySize limits how many bytes of a response body are read.
// Longer bodies are truncated.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// WithRateLimit spaces requests so that consecutive requests start at
// least the given duration apart.
// A zero or negative value disables limiting.
func WithRateLimit(every time.Duration) Option {
	return func(f *Fetcher) {
		if every <= 0 {
			f.limiter = nil
			return
		}
		f.limiter = rate.NewLimiter(rate.Every(every), 1)
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		headers:     DefaultHeaders(),
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page at url and returns its body decoded to UTF-8.
// Responses outside the 2xx range return an EUNAVAILABLE error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", lunagames.Errorf(lunagames.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header = f.headers.Clone()

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", lunagames.Errorf(lunagames.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := charset.NewReader(io.LimitReader(resp.Body, f.maxBodySize), resp.Header.Get("Content-Type"))
	if errors.Is(err, io.EOF) {
		// Empty body.
		return "", nil
	} else if err != nil {
		return "", err
	}

	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
