// Package goquery implements the readable-text extractor on top of goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagetext"
)

const (
	// noiseSelector matches elements removed with all their descendants
	// before any text is read.
	noiseSelector = "script, style, noscript, svg, canvas, iframe, nav, header, footer"

	// contentSelector matches the elements whose text is kept, in document order.
	contentSelector = "h1, h2, h3, h4, h5, p, pre, table"

	cellSeparator = " | "
)

// Ensure TextExtractor implements pagetext.Extractor at compile time.
var _ pagetext.Extractor = (*TextExtractor)(nil)

// TextExtractor renders the headings, paragraphs, preformatted blocks and
// tables of an HTML page as normalized plain text.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// Extract returns the readable text of rawHTML.
// It never returns an error: input that cannot be parsed or has no body
// yields an empty string.
func (e *TextExtractor) Extract(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(strings.ToValidUTF8(rawHTML, "\uFFFD")))
	if err != nil {
		return "", nil
	}

	doc.Find(noiseSelector).Remove()

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return "", nil
	}

	var b strings.Builder
	body.Find(contentSelector).Each(func(_ int, sel *goquery.Selection) {
		switch goquery.NodeName(sel) {
		case "table":
			writeTable(&b, sel)
		default:
			// pre keeps its authored whitespace through textContent;
			// headings and paragraphs get it collapsed.
			if text := textContent(sel.Get(0)); text != "" {
				b.WriteString(text)
				b.WriteString("\n\n")
			}
		}
	})

	return strings.TrimSpace(pagetext.NormalizeWhitespace(b.String())), nil
}

// writeTable renders every row below table as its cells joined by " | ".
// Rows of nested tables are included. Rows without cells are skipped.
// A blank line always follows the table.
func writeTable(b *strings.Builder, table *goquery.Selection) {
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("th, td")
		if cells.Length() == 0 {
			return
		}

		texts := make([]string, 0, cells.Length())
		cells.Each(func(_ int, cell *goquery.Selection) {
			texts = append(texts, textContent(cell.Get(0)))
		})
		b.WriteString(strings.Join(texts, cellSeparator))
		b.WriteByte('\n')
	})
	b.WriteByte('\n')
}
