package main_test

import (
	"testing"
	"time"

	"github.com/fwojciec/pagetext"
	main "github.com/fwojciec/pagetext/cmd/pagetext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSettings() *main.Settings {
	return &main.Settings{
		Timeout:        30 * time.Second,
		ConnectTimeout: 15 * time.Second,
		UserAgent:      "HtmlToTextApp/1.0",
		Extractor:      main.ExtractorText,
	}
}

func TestSettings_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts defaults", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, validSettings().Validate())
	})

	tests := []struct {
		name   string
		modify func(*main.Settings)
		want   string
	}{
		{
			name:   "zero timeout",
			modify: func(s *main.Settings) { s.Timeout = 0 },
			want:   "--timeout must be greater than 0",
		},
		{
			name:   "negative connect timeout",
			modify: func(s *main.Settings) { s.ConnectTimeout = -time.Second },
			want:   "--connect-timeout must be greater than 0",
		},
		{
			name:   "empty user agent",
			modify: func(s *main.Settings) { s.UserAgent = "" },
			want:   "--user-agent is required",
		},
		{
			name:   "negative rate",
			modify: func(s *main.Settings) { s.Rate = -1 },
			want:   "--rate must be at least 0",
		},
		{
			name:   "unknown extractor",
			modify: func(s *main.Settings) { s.Extractor = "magic" },
			want:   "--extractor must be one of: text, trafilatura, readability",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := validSettings()
			tt.modify(s)

			err := s.Validate()

			require.Error(t, err)
			assert.Equal(t, pagetext.EINVALID, pagetext.ErrorCode(err))
			assert.Contains(t, pagetext.ErrorMessage(err), tt.want)
		})
	}

	t.Run("reports every invalid flag", func(t *testing.T) {
		t.Parallel()

		s := validSettings()
		s.Timeout = 0
		s.UserAgent = ""

		err := s.Validate()

		require.Error(t, err)
		assert.Contains(t, pagetext.ErrorMessage(err), "--timeout")
		assert.Contains(t, pagetext.ErrorMessage(err), "--user-agent")
	})
}
