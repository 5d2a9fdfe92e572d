// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-table-sync/internal/utils"
)

const traceIDHeader = utils.TraceIDHeader

// maxTraceIDLength bounds a trace id accepted from a caller.
const maxTraceIDLength = 128

// withTraceID attaches a request-scoped logger carrying trace_id to the
// request context. The id sent by the sync agent is reused when it is
// well-formed; otherwise a new one is generated.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !validTraceID(traceID) {
			traceID = uuid.NewString()
		}

		ctx := utils.WithTraceID(r.Context(), traceID)
		ctx = h.logger.ForTrace(traceID).WithContext(ctx)

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// validTraceID accepts non-empty ids of letters, digits, '-', '_' and '.'.
func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}
