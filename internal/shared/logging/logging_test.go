package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		debug    bool
		expected zerolog.Level
	}{
		{"empty", "", false, DefaultLevel},
		{"info", "info", false, zerolog.InfoLevel},
		{"upper case", "ERROR", false, zerolog.ErrorLevel},
		{"garbage", "loud", false, DefaultLevel},
		{"debug flag wins", "error", true, zerolog.DebugLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.level, tt.debug))
		})
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn", false)

	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Warn().Str("case", "Current").Msg("gas heating set to zero")
	assert.Contains(t, buf.String(), "gas heating set to zero")
	assert.Contains(t, buf.String(), "Current")
}
