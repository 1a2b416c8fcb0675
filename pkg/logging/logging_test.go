// Test Type: Unit Test
// Description: Tests for the logging package - logger setup and component loggers

package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger_Verbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		level     zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{10, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		SetupLogger(tt.verbosity)
		assert.Equal(t, tt.level, zerolog.GlobalLevel(),
			"verbosity %d should map to level %s", tt.verbosity, tt.level)
	}
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger("matcher.builder")
	// The returned logger must be usable without further setup.
	logger.Debug().Msg("test message")
}

func TestGetLogFilePath(t *testing.T) {
	path := getLogFilePath()
	assert.Contains(t, path, "chunksplit")
	assert.Contains(t, path, "chunksplit.log")
}
