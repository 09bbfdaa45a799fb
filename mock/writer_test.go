package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pagetext"
	"github.com/fwojciec/pagetext/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordWriter_WriteRecord(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteRecordFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *pagetext.Record
		w := &mock.RecordWriter{
			WriteRecordFn: func(_ context.Context, record *pagetext.Record) error {
				calledWith = record
				return nil
			},
		}

		record := &pagetext.Record{
			URL:  "https://example.com/article",
			Text: "Title\n\nBody",
		}

		err := w.WriteRecord(context.Background(), record)

		require.NoError(t, err)
		assert.Equal(t, record, calledWith)
	})
}
