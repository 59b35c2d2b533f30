// Package logging is a thin operator-message wrapper matching
// cmd/server/main.go and pkg/server/server.go's convention of
// emoji-prefixed fmt.Fprintf lines to stderr/stdout rather than a
// structured logging library — the teacher never imports one, so
// neither does this.
package logging

import (
	"fmt"
	"io"
	"os"
)

// Logger writes operator-facing progress and error lines.
type Logger struct {
	out io.Writer
	err io.Writer
}

// New returns a Logger writing to stdout/stderr.
func New() *Logger {
	return &Logger{out: os.Stdout, err: os.Stderr}
}

// Info prints a progress line to stdout, prefixed like the teacher's
// "✅"/"🚀"/"📁" operator messages.
func (l *Logger) Info(prefix, format string, args ...interface{}) {
	fmt.Fprintf(l.out, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

// Warn prints a warning line to stdout.
func (l *Logger) Warn(format string, args ...interface{}) {
	fmt.Fprintf(l.out, "⚠️  %s\n", fmt.Sprintf(format, args...))
}

// Error prints an error line to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	fmt.Fprintf(l.err, "❌ %s\n", fmt.Sprintf(format, args...))
}
