// Package applog is the pipeline's logging setup: a package-level
// *slog.Logger that discards output until Init is called, following
// the same Options/Init shape the teacher's hiveexplorer logger uses.
package applog

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// L is the global logger. It discards all output until Init configures it.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures Init.
type Options struct {
	// Enabled, when false, keeps L discarding everything.
	Enabled bool
	// File is the path to write logs to. Empty means stderr.
	File string
	// Level is the minimum level logged. Empty defaults to "info".
	Level string
	// JSON selects the JSON handler instead of text.
	JSON bool
}

// Init configures L from opts. Call once from main before any other
// package logs.
func Init(opts Options) error {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}

	var w io.Writer = os.Stderr
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		w = f
	}

	handlerOpts := &slog.HandlerOptions{Level: parseLevel(opts.Level)}
	if opts.JSON {
		L = slog.New(slog.NewJSONHandler(w, handlerOpts))
	} else {
		L = slog.New(slog.NewTextHandler(w, handlerOpts))
	}
	return nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
