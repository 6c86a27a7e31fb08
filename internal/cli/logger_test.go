package cli

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSelectLevel(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		want    zerolog.Level
	}{
		{name: "default", want: zerolog.InfoLevel},
		{name: "verbose", verbose: true, want: zerolog.DebugLevel},
		{name: "quiet", quiet: true, want: zerolog.WarnLevel},
		{name: "verbose wins", verbose: true, quiet: true, want: zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, selectLevel(tt.verbose, tt.quiet))
		})
	}
}

func TestInitLoggerWithWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLoggerWithWriter(false, true, &buf)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)
	assert.Equal(t, zerolog.WarnLevel, log.Logger.GetLevel())
}

func TestFileOnlyLogger_WithoutFileDiscards(t *testing.T) {
	CloseLogFile()
	var buf bytes.Buffer
	base := InitLoggerWithWriter(true, false, &buf)

	logger := fileOnlyLogger(base)
	logger.Error().Msg("dropped")

	assert.Empty(t, buf.String())
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}
