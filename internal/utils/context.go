// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across
// different parts of the application: context keys, HTTP response writing
// with content negotiation, the resty client wrapper, bearer token helpers,
// identifier generation and a per-key mutex.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SubjectCtxKey is the key used to store the authenticated caller in the
// context of a request served by the reference table server.
//
//	ctx := context.WithValue(ctx, utils.SubjectCtxKey, "agent-1")
var SubjectCtxKey = contextKey("subject")

// TraceIDCtxKey is the key of the trace id shared by the sync agent and the
// reference table server for one table synchronization.
var TraceIDCtxKey = contextKey("trace_id")

// TraceIDHeader carries the trace id between the sync agent and the server.
const TraceIDHeader = "X-Trace-ID"

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext retrieves the trace id stored by [WithTraceID].
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}

// GetSubjectFromContext retrieves the authenticated caller from the context.
//
// Returns ok == false when the value is missing or has an unexpected type.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectCtxKey).(string)
	return subject, ok
}
