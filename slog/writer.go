package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/pagetext"
)

// Ensure LoggingRecordWriter implements pagetext.RecordWriter.
var _ pagetext.RecordWriter = (*LoggingRecordWriter)(nil)

// LoggingRecordWriter wraps a RecordWriter with logging.
type LoggingRecordWriter struct {
	next   pagetext.RecordWriter
	logger *slog.Logger
}

// NewLoggingRecordWriter creates a new LoggingRecordWriter.
func NewLoggingRecordWriter(next pagetext.RecordWriter, logger *slog.Logger) *LoggingRecordWriter {
	return &LoggingRecordWriter{next: next, logger: logger}
}

// WriteRecord delegates to the wrapped writer and logs the record written.
func (w *LoggingRecordWriter) WriteRecord(ctx context.Context, record *pagetext.Record) (err error) {
	defer func() {
		logResult(w.logger, "write record", err,
			"url", record.URL,
			"failed", record.Failed(),
			"bytes", len(record.Text),
		)
	}()
	return w.next.WriteRecord(ctx, record)
}
