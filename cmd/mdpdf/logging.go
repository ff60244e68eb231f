package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger returns the diagnostics logger for one command run.
// Quiet keeps only errors; verbose enables debug events (timings, counts).
func newLogger(w io.Writer, quiet, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case quiet:
		level = zerolog.ErrorLevel
	case verbose:
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.TimeOnly,
	}).Level(level).With().Timestamp().Logger()
}
