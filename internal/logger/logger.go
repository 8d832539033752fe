// Package logger exposes the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

var (
	base  zerolog.Logger
	out   io.Writer = os.Stderr
	ready atomic.Bool
)

// Init configures the global JSON logger. Output goes to stderr; stdout is
// reserved for command results.
//
// Environment variables (optional):
//   - LOG_LEVEL: debug|info|warn|error (default: warn)
//   - LOG_PRETTY: true|false (default: false)
func Init() {
	level := parseLevel(getenv("LOG_LEVEL", "warn"))
	pretty := strings.EqualFold(getenv("LOG_PRETTY", "false"), "true")

	zerolog.TimeFieldFormat = time.RFC3339Nano
	w := out
	if pretty {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	base = zerolog.New(w).With().Timestamp().Logger().Level(level)
	ready.Store(true)
}

// SetOutput redirects the logger and re-initializes it.
func SetOutput(w io.Writer) {
	out = w
	Init()
}

// L returns the global logger, initializing it on first use.
func L() *zerolog.Logger {
	if !ready.Load() {
		Init()
	}
	return &base
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error", "err":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}
