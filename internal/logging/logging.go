// Package logging configures the process-wide zerolog logger used to
// report the end-of-scan summary and warnings surfaced by the pipeline.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Init configures the global zerolog logger. level is one of "debug",
// "info", "warn", "error" (case-insensitive); anything else defaults to
// "info". quiet suppresses everything below error level, for callers
// rendering machine-readable output (e.g. --format json) that shouldn't
// be interleaved with log lines on the same stream.
func Init(level string, quiet bool) zerolog.Logger {
	logLevel := parseLevel(level)
	if quiet {
		logLevel = zerolog.ErrorLevel
	}

	var out io.Writer = os.Stderr

	return zerolog.New(out).Level(logLevel).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
