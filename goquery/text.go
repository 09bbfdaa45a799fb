package goquery

import (
	"strings"

	"golang.org/x/net/html"
)

// blockElements are the elements whose boundaries separate words in text content.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"body": true, "caption": true, "center": true, "col": true,
	"colgroup": true, "dd": true, "details": true, "div": true,
	"dl": true, "dt": true, "fieldset": true, "figcaption": true,
	"figure": true, "form": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true,
	"hgroup": true, "hr": true, "li": true, "main": true,
	"menu": true, "ol": true, "p": true, "pre": true,
	"section": true, "summary": true, "table": true, "tbody": true,
	"td": true, "tfoot": true, "th": true, "thead": true,
	"tr": true, "ul": true,
}

// textContent returns the trimmed text of n and its descendants.
//
// Whitespace inside text nodes is collapsed to single spaces and a space is
// inserted at block and <br> boundaries, so adjacent blocks never run their
// words together. Text within pre or textarea is kept as authored.
func textContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	writeText(&b, n, preservesWhitespace(n))
	return strings.TrimSpace(b.String())
}

func writeText(b *strings.Builder, n *html.Node, preserve bool) {
	switch n.Type {
	case html.TextNode:
		if preserve {
			b.WriteString(n.Data)
		} else {
			writeCollapsed(b, n.Data)
		}
		return
	case html.ElementNode:
		if b.Len() > 0 && (blockElements[n.Data] || n.Data == "br") && !endsWithSpace(b) {
			b.WriteByte(' ')
		}
		if n.Data == "pre" || n.Data == "textarea" {
			preserve = true
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c, preserve)
	}

	if n.Type == html.ElementNode && blockElements[n.Data] &&
		n.NextSibling != nil && n.NextSibling.Type == html.TextNode && !endsWithSpace(b) {
		b.WriteByte(' ')
	}
}

// writeCollapsed appends s with every whitespace run replaced by one space.
// A run is dropped entirely when b already ends in a space.
func writeCollapsed(b *strings.Builder, s string) {
	lastSpace := endsWithSpace(b)
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\f', '\r', '\u00a0':
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		case '\u200b', '\u00ad':
			// zero width space and soft hyphen are invisible
		default:
			b.WriteRune(r)
			lastSpace = false
		}
	}
}

func endsWithSpace(b *strings.Builder) bool {
	s := b.String()
	return len(s) > 0 && s[len(s)-1] == ' '
}

// preservesWhitespace reports whether n sits inside a pre or textarea element.
func preservesWhitespace(n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && (p.Data == "pre" || p.Data == "textarea") {
			return true
		}
	}
	return false
}
