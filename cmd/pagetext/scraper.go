package main

import (
	"context"

	"github.com/fwojciec/pagetext"
)

// Scraper turns an ordered list of links into report records.
type Scraper struct {
	Fetcher   pagetext.Fetcher
	Extractor pagetext.Extractor
}

// Scrape fetches and extracts each URL in order and writes one record per
// URL to w. A page that cannot be fetched or extracted is recorded as a
// failure and the run continues. Errors from w stop the run.
//
// Cancellation is checked between URLs; records already written are kept.
func (s *Scraper) Scrape(ctx context.Context, urls []string, w pagetext.RecordWriter, progress pagetext.ProgressFunc) error {
	total := len(urls)

	for i, url := range urls {
		if err := ctx.Err(); err != nil {
			return err
		}

		record := &pagetext.Record{URL: url}
		html, err := s.Fetcher.Fetch(ctx, url)
		if err == nil {
			record.Text, err = s.Extractor.Extract(html)
		}
		if err != nil {
			record.Text = ""
			record.Err = err
		}

		if err := w.WriteRecord(ctx, record); err != nil {
			return err
		}

		if progress != nil {
			progress(pagetext.Progress{
				URL:       url,
				Completed: i + 1,
				Total:     total,
				Error:     record.Err,
			})
		}
	}

	return nil
}
