package pagetext

import "regexp"

var (
	// Horizontal whitespace only; newlines carry the block structure.
	horizontalSpaceRe = regexp.MustCompile(`[ \t\x0B\f\r]+`)
	blankLinesRe      = regexp.MustCompile(`\n{3,}`)
)

// NormalizeWhitespace collapses every run of horizontal whitespace into a
// single space and then caps runs of blank lines at one.
// The passes run in that order; the result is stable under repeated application.
func NormalizeWhitespace(s string) string {
	s = horizontalSpaceRe.ReplaceAllString(s, " ")
	return blankLinesRe.ReplaceAllString(s, "\n\n")
}
