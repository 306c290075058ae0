// Package logging builds the diagnostic logger. User-facing output goes
// through the console; this logger is for --debug and --log-level.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel keeps the terminal quiet unless something is wrong.
const DefaultLevel = zerolog.WarnLevel

// ParseLevel parses level, falling back to DefaultLevel. debug forces the
// debug level.
func ParseLevel(level string, debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	if level == "" {
		return DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		return DefaultLevel
	}
	return lvl
}

// New returns a human-readable logger writing to w.
func New(w io.Writer, level string, debug bool) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(consoleWriter).
		Level(ParseLevel(level, debug)).
		With().
		Timestamp().
		Logger()
}
