package mock

import "github.com/fwojciec/pagetext"

var _ pagetext.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagetext.Extractor.
type Extractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *Extractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}

var _ pagetext.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of pagetext.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*pagetext.ContentResult, error)
}

func (e *ContentExtractor) Extract(html string) (*pagetext.ContentResult, error) {
	return e.ExtractFn(html)
}
