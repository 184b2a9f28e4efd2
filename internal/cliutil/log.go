// Package cliutil holds small helpers shared by cmd/ionparse: structured
// logging setup and the teacher-style execution telemetry footer.
package cliutil

import (
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger returns a charmbracelet/log logger writing to stderr, with its
// level set from the ION_PARSE_LOG_LEVEL environment variable (debug,
// info, warn, error); unset or unrecognized values fall back to info.
func NewLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})
	logger.SetLevel(levelFromEnv())
	return logger
}

func levelFromEnv() log.Level {
	switch os.Getenv("ION_PARSE_LOG_LEVEL") {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
