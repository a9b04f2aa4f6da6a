// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging holds the process-wide logger. The TUI owns the terminal,
// so interactive sessions redirect it to a file with ToFile.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. Callers should use the helper functions
// below.
var L = clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "studygenie"})

// SetDebug switches between debug and info level.
func SetDebug(enabled bool) {
	if enabled {
		L.SetLevel(clog.DebugLevel)
	} else {
		L.SetLevel(clog.InfoLevel)
	}
}

// SetOutput replaces the writer of the package logger.
func SetOutput(w io.Writer) {
	L.SetOutput(w)
}

// ToFile sends log output to path, creating parent directories. The returned
// closer restores stderr.
func ToFile(path string) (func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("could not create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("could not open log file %s: %w", path, err)
	}
	L.SetOutput(f)
	return func() error {
		L.SetOutput(os.Stderr)
		return f.Close()
	}, nil
}

// Discard silences the logger, e.g. when no log file is configured for the
// TUI.
func Discard() {
	L.SetOutput(io.Discard)
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}
