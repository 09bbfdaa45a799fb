// Package readability isolates the main article of a page using go-readability.
package readability

import (
	"fmt"
	"strings"

	"github.com/fwojciec/pagetext"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pagetext.ContentExtractor at compile time.
var _ pagetext.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to strip boilerplate from a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the title and main content HTML of rawHTML.
// Blank input yields an empty result.
func (e *Extractor) Extract(rawHTML string) (*pagetext.ContentResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return &pagetext.ContentResult{}, nil
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, fmt.Errorf("readability: %w", err)
	}

	return &pagetext.ContentResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
