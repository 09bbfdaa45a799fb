// Package http provides an HTTP-based implementation of pagetext.Fetcher.
package http

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/pagetext"
	"golang.org/x/text/encoding/unicode"
)

const (
	// DefaultTimeout bounds a whole request, including reading the body.
	DefaultTimeout = 30 * time.Second

	// DefaultConnectTimeout bounds establishing the TCP connection.
	DefaultConnectTimeout = 15 * time.Second

	// DefaultUserAgent identifies the fetcher to servers.
	DefaultUserAgent = "HtmlToTextApp/1.0"

	// DefaultMaxBodySize caps how much of a response body is read.
	DefaultMaxBodySize = 10 << 20
)

// Ensure Fetcher implements pagetext.Fetcher at compile time.
var _ pagetext.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP GET requests.
// Redirects are followed; JavaScript is not executed.
type Fetcher struct {
	client         *http.Client
	timeout        time.Duration
	connectTimeout time.Duration
	userAgent      string
	maxBodySize    int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the total timeout for a request.
// Defaults to DefaultTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithConnectTimeout sets the timeout for establishing a connection.
// Defaults to DefaultConnectTimeout (15s) if not specified.
func WithConnectTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.connectTimeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize caps the number of body bytes read per response.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:        DefaultTimeout,
		connectTimeout: DefaultConnectTimeout,
		userAgent:      DefaultUserAgent,
		maxBodySize:    DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	dialer := &net.Dialer{Timeout: f.connectTimeout}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = dialer.DialContext

	f.client = &http.Client{
		Timeout:   f.timeout,
		Transport: transport,
	}

	return f
}

// Fetch retrieves the page at rawURL and returns its body decoded as UTF-8.
// Invalid byte sequences are replaced rather than rejected.
// Returns EINVALID for malformed URLs and EUNAVAILABLE for network failures
// and responses outside the 2xx range.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", pagetext.Errorf(pagetext.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", pagetext.Errorf(pagetext.EINVALID, "unsupported URL %q: scheme must be http or https", rawURL)
	}
	if u.Host == "" {
		return "", pagetext.Errorf(pagetext.EINVALID, "invalid URL %q: missing host", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", pagetext.Errorf(pagetext.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", pagetext.Errorf(pagetext.EUNAVAILABLE, "%v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", pagetext.Errorf(pagetext.EUNAVAILABLE, "HTTP %d fetching %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return "", pagetext.Errorf(pagetext.EUNAVAILABLE, "reading %s: %v", rawURL, err)
	}

	decoded, err := unicode.UTF8.NewDecoder().Bytes(body)
	if err != nil {
		return "", fmt.Errorf("decode body of %s: %w", rawURL, err)
	}

	return string(decoded), nil
}

// Close releases idle connections held by the underlying client.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
