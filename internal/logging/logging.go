// =============================================================================
// MJML Compiler CLI - Logging
// =============================================================================
//
// This package builds the slog logger for a single invocation.
//
// DESTINATIONS:
//   --verbose          : debug-level text records on stderr
//   logging.file set   : JSON records appended to the file
//   both               : both of the above
//   neither            : records are discarded
//
// stdout is never a destination, and stderr is only used when --verbose is
// given, so the default stream contract is unaffected by logging.
//
// =============================================================================

package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ParseLevel converts a log level string to slog.Level.
// Valid values: "debug", "info", "warn", "error" (case-insensitive).
// Returns slog.LevelInfo for unrecognized values.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Options selects the log destinations.
type Options struct {
	// Level applies to the log file.
	Level slog.Level

	// File is the path to append JSON records to. Empty disables it.
	File string

	// Verbose adds debug-level text records on Stderr.
	Verbose bool

	// Stderr receives verbose records.
	Stderr io.Writer
}

// Setup builds the logger for one invocation. Every record carries a run_id
// attribute so entries from one run can be grouped in a shared log file.
// The returned cleanup closes the log file, if one was opened.
func Setup(opts Options) (*slog.Logger, func(), error) {
	var handlers []slog.Handler
	cleanup := func() {}

	if opts.File != "" {
		f, err := openLogFile(opts.File)
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() { f.Close() }
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: opts.Level}))
	}

	if opts.Verbose && opts.Stderr != nil {
		handlers = append(handlers, slog.NewTextHandler(opts.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	var handler slog.Handler
	switch len(handlers) {
	case 0:
		return Discard(), cleanup, nil
	case 1:
		handler = handlers[0]
	default:
		handler = fanout(handlers)
	}

	return slog.New(handler).With("run_id", uuid.NewString()), cleanup, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// New returns a text logger on w, for tests.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
}
