package rate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/pagetext"
	"github.com/fwojciec/pagetext/mock"
	"github.com/fwojciec/pagetext/rate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("implements pagetext.DomainLimiter interface", func(t *testing.T) {
		t.Parallel()
		var _ pagetext.DomainLimiter = rate.NewDomainLimiter(1)
	})

	t.Run("allows immediate request when under limit", func(t *testing.T) {
		t.Parallel()

		limiter := rate.NewDomainLimiter(10) // 10 req/sec

		start := time.Now()
		err := limiter.Wait(context.Background(), "example.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "first request should be immediate")
	})

	t.Run("rate limits requests to same domain", func(t *testing.T) {
		t.Parallel()

		limiter := rate.NewDomainLimiter(10) // 10 req/sec = 100ms between requests

		err := limiter.Wait(context.Background(), "example.com")
		require.NoError(t, err)

		start := time.Now()
		err = limiter.Wait(context.Background(), "example.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "should wait for rate limit")
	})

	t.Run("different domains have independent limits", func(t *testing.T) {
		t.Parallel()

		limiter := rate.NewDomainLimiter(10)

		err := limiter.Wait(context.Background(), "example.com")
		require.NoError(t, err)

		start := time.Now()
		err = limiter.Wait(context.Background(), "other.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "different domain should not wait")
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := rate.NewDomainLimiter(1) // 1 req/sec

		err := limiter.Wait(context.Background(), "example.com")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err = limiter.Wait(ctx, "example.com")
		assert.Error(t, err, "should fail when context times out")
	})
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("waits on the URL host before fetching", func(t *testing.T) {
		t.Parallel()

		var calls []string
		limiter := &mock.DomainLimiter{
			WaitFn: func(_ context.Context, domain string) error {
				calls = append(calls, "wait "+domain)
				return nil
			},
		}
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				calls = append(calls, "fetch "+url)
				return "<p>ok</p>", nil
			},
		}

		fetcher := rate.NewFetcher(inner, limiter)
		html, err := fetcher.Fetch(context.Background(), "https://Example.com:8443/a")

		require.NoError(t, err)
		assert.Equal(t, "<p>ok</p>", html)
		assert.Equal(t, []string{"wait example.com", "fetch https://Example.com:8443/a"}, calls)
	})

	t.Run("does not fetch when the wait fails", func(t *testing.T) {
		t.Parallel()

		limiter := &mock.DomainLimiter{
			WaitFn: func(_ context.Context, _ string) error {
				return context.Canceled
			},
		}
		fetched := false
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				fetched = true
				return "", nil
			},
		}

		fetcher := rate.NewFetcher(inner, limiter)
		_, err := fetcher.Fetch(context.Background(), "https://example.com")

		require.ErrorIs(t, err, context.Canceled)
		assert.False(t, fetched)
	})

	t.Run("passes URLs without host straight through", func(t *testing.T) {
		t.Parallel()

		limiter := &mock.DomainLimiter{
			WaitFn: func(_ context.Context, _ string) error {
				t.Fatal("limiter should not be consulted")
				return nil
			},
		}
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("invalid URL")
			},
		}

		fetcher := rate.NewFetcher(inner, limiter)
		_, err := fetcher.Fetch(context.Background(), "not a url")

		require.EqualError(t, err, "invalid URL")
	})

	t.Run("close delegates to inner fetcher", func(t *testing.T) {
		t.Parallel()

		closed := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}

		fetcher := rate.NewFetcher(inner, rate.NewDomainLimiter(1))

		require.NoError(t, fetcher.Close())
		assert.True(t, closed)
	})
}
