package pagetext

import (
	"context"
	"strings"
)

// Record is one section of the report: a source URL together with the text
// extracted from it, or the reason it could not be produced.
type Record struct {
	URL  string
	Text string
	Err  error
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if strings.TrimSpace(r.URL) == "" {
		return Errorf(EINVALID, "record source URL required")
	}
	return nil
}

// Failed reports whether the record holds a failure instead of text.
func (r *Record) Failed() bool {
	return r.Err != nil
}

// RecordWriter appends records to a report.
// Implementations must persist each record before returning so that a later
// failure does not lose the records already written.
type RecordWriter interface {
	WriteRecord(ctx context.Context, record *Record) error
}

// Progress reports progress while records are produced.
type Progress struct {
	URL       string
	Completed int
	Total     int
	Error     error
}

// ProgressFunc is called after each record is written.
type ProgressFunc func(Progress)
