// Package logger holds the process-wide diagnostic logger.
//
// Progress meant for the user goes through the terminal package; this logger
// records what the tool did for later inspection. It writes JSON to a log
// file when one is configured, text to stderr at debug level, and nothing
// otherwise.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

var defaultLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Init configures the default logger. The returned func closes the log file
// and must be called before the process exits.
func Init(level slog.Level, file string) (func() error, error) {
	opts := &slog.HandlerOptions{Level: level}

	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		defaultLogger = slog.New(slog.NewJSONHandler(f, opts))
		return f.Close, nil
	}

	if level <= slog.LevelDebug {
		defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, opts))
	} else {
		defaultLogger = slog.New(slog.NewTextHandler(io.Discard, opts))
	}
	return func() error { return nil }, nil
}

// L returns the default logger.
func L() *slog.Logger {
	return defaultLogger
}

// SetLogger replaces the default logger.
func SetLogger(l *slog.Logger) {
	defaultLogger = l
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}
