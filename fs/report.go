// Package fs writes extraction reports to the local filesystem.
package fs

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pagetext"
)

// Placeholders written in place of text for records that produced none.
const (
	NoTextMessage    = "Couldn't extract readable text."
	FetchFailMessage = "Couldn't reach website or something went wrong."
)

const reportExt = ".md"

// ResolvePath turns a user-supplied report name into an absolute file path.
// Surrounding whitespace is ignored and ".md" is appended unless the name
// already ends with it, compared case-insensitively.
func ResolvePath(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", pagetext.Errorf(pagetext.EINVALID, "output filename required")
	}
	if !strings.HasSuffix(strings.ToLower(name), reportExt) {
		name += reportExt
	}

	path, err := filepath.Abs(name)
	if err != nil {
		return "", pagetext.Errorf(pagetext.EINVALID, "resolve %q: %v", name, err)
	}
	return path, nil
}

// FormatRecord renders one report section.
func FormatRecord(record *pagetext.Record) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("Source: ")
	b.WriteString(record.URL)
	b.WriteString("\nText:\n\n")

	switch {
	case record.Failed():
		b.WriteString(FetchFailMessage)
		b.WriteString("\nReason: ")
		b.WriteString(pagetext.ErrorMessage(record.Err))
		b.WriteString("\n")
	case strings.TrimSpace(record.Text) == "":
		b.WriteString(NoTextMessage)
		b.WriteString("\n")
	default:
		b.WriteString(record.Text)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	return b.String()
}

// Ensure ReportWriter implements pagetext.RecordWriter at compile time.
var _ pagetext.RecordWriter = (*ReportWriter)(nil)

// ReportWriter appends formatted records to a report file.
// Every record is flushed to the file before WriteRecord returns.
type ReportWriter struct {
	path string
	file *os.File
	w    *bufio.Writer
}

// CreateReport creates or truncates the report file at path.
func CreateReport(path string) (*ReportWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, pagetext.Errorf(pagetext.EINTERNAL, "create report: %v", err)
	}
	return &ReportWriter{
		path: path,
		file: f,
		w:    bufio.NewWriter(f),
	}, nil
}

// Path returns the file the report is written to.
func (r *ReportWriter) Path() string {
	return r.path
}

// WriteRecord appends record to the report and flushes it.
func (r *ReportWriter) WriteRecord(ctx context.Context, record *pagetext.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}
	if _, err := r.w.WriteString(FormatRecord(record)); err != nil {
		return pagetext.Errorf(pagetext.EINTERNAL, "write report: %v", err)
	}
	if err := r.w.Flush(); err != nil {
		return pagetext.Errorf(pagetext.EINTERNAL, "write report: %v", err)
	}
	return nil
}

// Close flushes pending output and closes the report file.
func (r *ReportWriter) Close() error {
	flushErr := r.w.Flush()
	closeErr := r.file.Close()
	if flushErr != nil {
		return pagetext.Errorf(pagetext.EINTERNAL, "write report: %v", flushErr)
	}
	if closeErr != nil {
		return pagetext.Errorf(pagetext.EINTERNAL, "close report: %v", closeErr)
	}
	return nil
}
