package main_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/pagetext"
	main "github.com/fwojciec/pagetext/cmd/pagetext"
	"github.com/fwojciec/pagetext/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Sequential Scraping
// Each link is fetched, extracted and written before the next one starts

// recorder collects written records in order.
func recorder(records *[]*pagetext.Record) *mock.RecordWriter {
	return &mock.RecordWriter{
		WriteRecordFn: func(_ context.Context, record *pagetext.Record) error {
			*records = append(*records, record)
			return nil
		},
	}
}

func echoExtractor() *mock.Extractor {
	return &mock.Extractor{
		ExtractFn: func(html string) (string, error) {
			return "text of " + html, nil
		},
	}
}

func TestScraper_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("writes one record per URL in input order", func(t *testing.T) {
		t.Parallel()

		// Given a fetcher that returns each URL as its page
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return url, nil
			},
		}
		var records []*pagetext.Record
		s := &main.Scraper{Fetcher: fetcher, Extractor: echoExtractor()}

		// When I scrape three URLs
		urls := []string{"https://a.example", "https://b.example", "https://c.example"}
		err := s.Scrape(context.Background(), urls, recorder(&records), nil)

		// Then three records are written in the same order
		require.NoError(t, err)
		require.Len(t, records, 3)
		for i, u := range urls {
			assert.Equal(t, u, records[i].URL)
			assert.Equal(t, "text of "+u, records[i].Text)
			assert.NoError(t, records[i].Err)
		}
	})

	t.Run("records fetch failures and continues", func(t *testing.T) {
		t.Parallel()

		// Given a fetcher that fails for the second URL
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				if url == "https://b.example" {
					return "", pagetext.Errorf(pagetext.EUNAVAILABLE, "HTTP 404 fetching %s", url)
				}
				return url, nil
			},
		}
		var records []*pagetext.Record
		s := &main.Scraper{Fetcher: fetcher, Extractor: echoExtractor()}

		// When I scrape three URLs
		err := s.Scrape(context.Background(),
			[]string{"https://a.example", "https://b.example", "https://c.example"},
			recorder(&records), nil)

		// Then the failure is recorded and the run carries on
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.False(t, records[0].Failed())
		assert.True(t, records[1].Failed())
		assert.Equal(t, "HTTP 404 fetching https://b.example", pagetext.ErrorMessage(records[1].Err))
		assert.Empty(t, records[1].Text)
		assert.Equal(t, "text of https://c.example", records[2].Text)
	})

	t.Run("records extraction failures", func(t *testing.T) {
		t.Parallel()

		// Given an extractor that fails
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return "<p>", nil
			},
		}
		extractor := &mock.Extractor{
			ExtractFn: func(_ string) (string, error) {
				return "partial", errors.New("extraction failed")
			},
		}
		var records []*pagetext.Record
		s := &main.Scraper{Fetcher: fetcher, Extractor: extractor}

		// When I scrape a URL
		err := s.Scrape(context.Background(), []string{"https://a.example"}, recorder(&records), nil)

		// Then the record holds the failure and no partial text
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.True(t, records[0].Failed())
		assert.Empty(t, records[0].Text)
	})

	t.Run("stops on writer failure", func(t *testing.T) {
		t.Parallel()

		// Given a writer that fails on the first record
		fetched := 0
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				fetched++
				return url, nil
			},
		}
		w := &mock.RecordWriter{
			WriteRecordFn: func(_ context.Context, _ *pagetext.Record) error {
				return errors.New("disk full")
			},
		}
		s := &main.Scraper{Fetcher: fetcher, Extractor: echoExtractor()}

		// When I scrape two URLs
		err := s.Scrape(context.Background(), []string{"https://a.example", "https://b.example"}, w, nil)

		// Then the run stops after the first URL
		require.EqualError(t, err, "disk full")
		assert.Equal(t, 1, fetched)
	})

	t.Run("stops between URLs when canceled", func(t *testing.T) {
		t.Parallel()

		// Given a fetcher that cancels the run while serving the first URL
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				cancel()
				return url, nil
			},
		}
		var records []*pagetext.Record
		s := &main.Scraper{Fetcher: fetcher, Extractor: echoExtractor()}

		// When I scrape two URLs
		err := s.Scrape(ctx, []string{"https://a.example", "https://b.example"}, recorder(&records), nil)

		// Then the first record is kept and the second never starts
		require.ErrorIs(t, err, context.Canceled)
		require.Len(t, records, 1)
		assert.Equal(t, "https://a.example", records[0].URL)
	})

	t.Run("reports progress after each record", func(t *testing.T) {
		t.Parallel()

		// Given a fetcher that fails for one URL
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				if url == "https://bad.example" {
					return "", errors.New("no route to host")
				}
				return url, nil
			},
		}
		var records []*pagetext.Record
		var updates []pagetext.Progress
		s := &main.Scraper{Fetcher: fetcher, Extractor: echoExtractor()}

		// When I scrape two URLs with a progress callback
		err := s.Scrape(context.Background(),
			[]string{"https://good.example", "https://bad.example"},
			recorder(&records),
			func(p pagetext.Progress) { updates = append(updates, p) })

		// Then progress is reported for both, including the error
		require.NoError(t, err)
		require.Len(t, updates, 2)
		assert.Equal(t, pagetext.Progress{URL: "https://good.example", Completed: 1, Total: 2}, updates[0])
		assert.Equal(t, 2, updates[1].Completed)
		assert.EqualError(t, updates[1].Error, "no route to host")
	})
}
