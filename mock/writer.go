package mock

import (
	"context"

	"github.com/fwojciec/pagetext"
)

var _ pagetext.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of pagetext.RecordWriter.
type RecordWriter struct {
	WriteRecordFn func(ctx context.Context, record *pagetext.Record) error
}

func (w *RecordWriter) WriteRecord(ctx context.Context, record *pagetext.Record) error {
	return w.WriteRecordFn(ctx, record)
}
