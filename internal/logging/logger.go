// Package logging is a thin global wrapper around charmbracelet/log. The
// package functions are no-ops until Init is called.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

var (
	// Logger is the global logger instance, nil before Init.
	Logger *log.Logger

	logFile *os.File
)

// Options configures Init.
type Options struct {
	// File is the log file path. Empty means Writer (or stderr).
	File      string
	Writer    io.Writer
	Level     string
	Formatter string
	Prefix    string
}

// Init opens the log destination and installs the global logger.
func Init(opts Options) error {
	var w io.Writer = os.Stderr
	if opts.Writer != nil {
		w = opts.Writer
	}
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		logFile = f
		w = f
	}
	Logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           ParseLevel(opts.Level),
		Formatter:       ParseFormatter(opts.Formatter),
		Prefix:          opts.Prefix,
	})
	return nil
}

// Close flushes and closes the log file, if any.
func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	Logger = nil
}

// ParseLevel maps a level name to a log.Level; unknown names mean info.
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

// ParseFormatter maps a formatter name to a log.Formatter; unknown names mean text.
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}
