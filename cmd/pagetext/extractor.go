package main

import (
	"strings"

	"github.com/fwojciec/pagetext"
	"github.com/fwojciec/pagetext/goquery"
	"github.com/fwojciec/pagetext/htmltomarkdown"
	"github.com/fwojciec/pagetext/readability"
	"github.com/fwojciec/pagetext/trafilatura"
)

// Ensure ConvertingExtractor implements pagetext.Extractor at compile time.
var _ pagetext.Extractor = (*ConvertingExtractor)(nil)

// ConvertingExtractor isolates the main content of a page and renders it
// as Markdown text.
type ConvertingExtractor struct {
	content   pagetext.ContentExtractor
	converter pagetext.Converter
}

// NewConvertingExtractor creates a new ConvertingExtractor.
func NewConvertingExtractor(content pagetext.ContentExtractor, converter pagetext.Converter) *ConvertingExtractor {
	return &ConvertingExtractor{content: content, converter: converter}
}

// Extract returns the Markdown rendering of the page's main content, or an
// empty string when no main content was found.
func (e *ConvertingExtractor) Extract(html string) (string, error) {
	result, err := e.content.Extract(html)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(result.ContentHTML) == "" {
		return "", nil
	}
	return e.converter.Convert(result.ContentHTML)
}

// NewExtractor returns the extractor registered under name.
func NewExtractor(name string) (pagetext.Extractor, error) {
	switch name {
	case ExtractorText:
		return goquery.NewTextExtractor(), nil
	case ExtractorTrafilatura:
		return NewConvertingExtractor(trafilatura.NewExtractor(), htmltomarkdown.NewConverter()), nil
	case ExtractorReadability:
		return NewConvertingExtractor(readability.NewExtractor(), htmltomarkdown.NewConverter()), nil
	default:
		return nil, pagetext.Errorf(pagetext.EINVALID, "unknown extractor %q", name)
	}
}
