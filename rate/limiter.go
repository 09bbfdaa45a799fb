// Package rate spaces out requests to the same host using token buckets
// from golang.org/x/time/rate.
package rate

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/pagetext"
	"golang.org/x/time/rate"
)

var _ pagetext.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter provides per-domain rate limiting using token buckets.
// Each domain gets its own limiter so a slow host does not delay the others.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a new DomainLimiter with the specified requests per second limit.
// Each domain gets its own limiter with a burst of 1 (no bursting allowed).
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

var _ pagetext.Fetcher = (*Fetcher)(nil)

// Fetcher waits on a DomainLimiter before delegating to the wrapped fetcher.
type Fetcher struct {
	next    pagetext.Fetcher
	limiter pagetext.DomainLimiter
}

// NewFetcher wraps next so requests to one host respect limiter.
func NewFetcher(next pagetext.Fetcher, limiter pagetext.DomainLimiter) *Fetcher {
	return &Fetcher{next: next, limiter: limiter}
}

// Fetch waits for the URL's host and then fetches it.
// URLs without a parsable host skip the wait; the wrapped fetcher reports them.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if host := hostOf(rawURL); host != "" {
		if err := f.limiter.Wait(ctx, host); err != nil {
			return "", err
		}
	}
	return f.next.Fetch(ctx, rawURL)
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
