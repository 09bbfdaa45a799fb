package main

import (
	"fmt"
	"net/url"

	"github.com/fwojciec/pagetext"
	"github.com/fwojciec/pagetext/fs"
	pageslog "github.com/fwojciec/pagetext/slog"
)

// DefaultFilename is offered when no output name is given.
const DefaultFilename = "notes.md"

// save scrapes urls into the report named name and prints where it went.
func save(deps *Dependencies, urls []string, name string) error {
	if len(urls) == 0 {
		return pagetext.Errorf(pagetext.EINVALID, "Add at least one URL.")
	}

	path, err := fs.ResolvePath(name)
	if err != nil {
		return err
	}

	report, err := fs.CreateReport(path)
	if err != nil {
		return err
	}

	progress := func(p pagetext.Progress) {
		if p.Error != nil {
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s: %s\n", p.Completed, p.Total, truncateURL(p.URL, 60), pagetext.ErrorMessage(p.Error))
			return
		}
		fmt.Fprintf(deps.Stderr, "[%d/%d] %s\n", p.Completed, p.Total, truncateURL(p.URL, 60))
	}

	w := pageslog.NewLoggingRecordWriter(report, deps.Logger)
	scrapeErr := deps.Scraper.Scrape(deps.Ctx, urls, w, progress)
	closeErr := report.Close()
	if scrapeErr != nil {
		return scrapeErr
	}
	if closeErr != nil {
		return closeErr
	}

	fmt.Fprintf(deps.Stdout, "Saved: %s\n", report.Path())
	return nil
}

// truncateURL shortens a URL for progress lines, keeping the host and the
// end of the path.
func truncateURL(rawURL string, maxLen int) string {
	if len(rawURL) <= maxLen {
		return rawURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return rawURL[:maxLen-3] + "..."
	}

	path := parsed.Path
	if path == "" {
		path = "/"
	}
	short := parsed.Host + path
	if len(short) <= maxLen {
		return short
	}
	return "..." + short[len(short)-maxLen+3:]
}
