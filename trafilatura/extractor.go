// Package trafilatura isolates the main article of a page using go-trafilatura.
package trafilatura

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fwojciec/pagetext"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pagetext.ContentExtractor at compile time.
var _ pagetext.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to strip boilerplate from a page.
type Extractor struct {
	opts trafilatura.Options
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithComments keeps reader comment sections in the extracted content.
func WithComments() Option {
	return func(e *Extractor) {
		e.opts.ExcludeComments = false
	}
}

// WithoutFallback disables the readability and dom-distiller fallbacks
// trafilatura uses when its own heuristics find too little content.
func WithoutFallback() Option {
	return func(e *Extractor) {
		e.opts.EnableFallback = false
	}
}

// NewExtractor creates a new Extractor. Comments, links and images are
// dropped; tables are kept.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		opts: trafilatura.Options{
			EnableFallback:  true,
			ExcludeComments: true,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the title and main content HTML of rawHTML.
// Blank input yields an empty result.
func (e *Extractor) Extract(rawHTML string) (*pagetext.ContentResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return &pagetext.ContentResult{}, nil
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, fmt.Errorf("trafilatura: %w", err)
	}
	if result == nil {
		return &pagetext.ContentResult{}, nil
	}

	var contentHTML string
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, fmt.Errorf("trafilatura: render content: %w", err)
		}
		contentHTML = buf.String()
	}

	return &pagetext.ContentResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}
