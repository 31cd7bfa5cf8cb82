// Package logger builds the zerolog logger used across callsy.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// LevelForVerbosity maps the -v count onto a log level.
func LevelForVerbosity(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// New returns a human-readable logger writing to w.
func New(w io.Writer, verbosity int, noColor bool) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(out).
		Level(LevelForVerbosity(verbosity)).
		With().
		Timestamp().
		Logger()
}
