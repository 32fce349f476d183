// Package logging provides charstream's structured logging on top of
// charmbracelet/log: a lazily created process-wide logger, level parsing,
// and context plumbing so the CLI can hand one logger down a call chain.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvLevel names the environment variable that sets the initial level of
// the process-wide logger. The --debug flag overrides it.
const EnvLevel = "CHARSTREAM_LOG"

//nolint:gochecknoglobals // One logger per process is the point.
var (
	defaultLogger *log.Logger
	defaultOnce   sync.Once
)

// New creates a stderr logger at the given level. Decoding runs on the hot
// path, so timestamps and caller reporting stay off.
func New(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(ParseLevel(level))
	return logger
}

// ParseLevel maps a level name to a charmbracelet/log level. Matching is
// case-insensitive; unrecognized or empty names fall back to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Default returns the process-wide logger, created on first use at the
// level named by CHARSTREAM_LOG (info when the variable is unset).
func Default() *log.Logger {
	defaultOnce.Do(func() {
		defaultLogger = New(os.Getenv(EnvLevel))
	})
	return defaultLogger
}

// SetDefault replaces the process-wide logger. A nil logger is ignored.
func SetDefault(logger *log.Logger) {
	if logger == nil {
		return
	}
	// Mark the lazy initialization done so Default cannot overwrite this.
	defaultOnce.Do(func() {})
	defaultLogger = logger
}

// SetLevel adjusts the process-wide logger's level, typically when the
// --debug flag is set.
func SetLevel(level string) {
	Default().SetLevel(ParseLevel(level))
}
