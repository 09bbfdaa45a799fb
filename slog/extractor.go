package slog

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagetext"
)

// Ensure LoggingExtractor implements pagetext.Extractor.
var _ pagetext.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging. Output is identified in
// the log by a 64-bit xxhash digest so identical pages can be spotted
// without logging their text.
type LoggingExtractor struct {
	next   pagetext.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagetext.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs sizes and digest.
func (e *LoggingExtractor) Extract(html string) (text string, err error) {
	defer func(begin time.Time) {
		logResult(e.logger, "extract", err,
			"bytes_in", len(html),
			"bytes_out", len(text),
			"digest", Digest(text),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(html)
}

// Digest returns the hex xxhash64 of s.
func Digest(s string) string {
	return strconv.FormatUint(xxhash.Sum64String(s), 16)
}
