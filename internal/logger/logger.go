// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger with the
// constructors and context helpers used by the sync agent and the reference
// table server.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods are
// available directly on *Logger. Table-scoped loggers are derived with
// [Logger.ForTable] and [Logger.ForRow] so every sync log line carries the
// table_id and row_id fields.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Structured field names shared by all packages.
const (
	FieldTableID = "table_id"
	FieldRowID   = "row_id"
	FieldTraceID = "trace_id"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a JSON *Logger writing to os.Stdout for the given role
// label (e.g. "server", "sync-agent").
//
// Every entry carries the "role" field, a timestamp and a "func" caller
// field holding the fully-qualified function name.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger constructs a *Logger for the sync agent. Entries are
// appended to logPath; an empty logPath means a "logs" file next to the
// executable. Falls back to os.Stdout when the file cannot be opened.
func NewClientLogger(role, logPath string) *Logger {
	if logPath == "" {
		execPath, _ := os.Executable()
		logPath = filepath.Join(filepath.Dir(execPath), "logs")
	}

	var out io.Writer = os.Stdout
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		out = logFile
	}

	return newLogger(out, role)
}

func newLogger(out io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// ForTable returns a child logger carrying the table_id field.
func (l *Logger) ForTable(tableID string) *Logger {
	return &Logger{l.With().Str(FieldTableID, tableID).Logger()}
}

// ForTrace returns a child logger carrying the trace_id field.
func (l *Logger) ForTrace(traceID string) *Logger {
	return &Logger{l.With().Str(FieldTraceID, traceID).Logger()}
}

// ForRow returns a child logger carrying the row_id field.
func (l *Logger) ForRow(rowID string) *Logger {
	return &Logger{l.With().Str(FieldRowID, rowID).Logger()}
}

// WithContext attaches l to ctx so that [FromContext] finds it downstream.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromRequest extracts the request-scoped logger attached by middleware.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
